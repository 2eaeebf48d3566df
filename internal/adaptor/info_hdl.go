package adaptor

import (
	"net/http"

	"tourism-booking/internal/dto/response"
	"tourism-booking/pkg/utils"

	"go.uber.org/zap"
)

type InfoHandler struct {
	log *zap.Logger
}

func NewInfoHandler(log *zap.Logger) *InfoHandler {
	return &InfoHandler{log: log}
}

// TourismInfo handles GET /api/tourism/info
func (h *InfoHandler) TourismInfo(w http.ResponseWriter, r *http.Request) {
	info := response.TourismInfo{
		State:   "Jharkhand",
		Capital: "Ranchi",
		PopularDestinations: []string{
			"Netarhat - Queen of Chotanagpur",
			"Hundru Falls - 98m waterfall",
			"Betla National Park - Wildlife sanctuary",
			"Deoghar - Temple town",
			"Hazaribagh - Hill station",
		},
		BestTime:  "October to March",
		Languages: []string{"Hindi", "English", "Santali", "Mundari"},
	}

	utils.ResponseSuccess(w, "Tourism information", info)
}
