package adaptor

import (
	"encoding/json"
	"net/http"

	"tourism-booking/internal/dto/request"
	"tourism-booking/internal/usecase"
	"tourism-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type SupportHandler struct {
	service usecase.SupportService
	log     *zap.Logger
}

func NewSupportHandler(service usecase.SupportService, log *zap.Logger) *SupportHandler {
	return &SupportHandler{
		service: service,
		log:     log,
	}
}

// CreateTicket handles POST /api/support/ticket
func (h *SupportHandler) CreateTicket(w http.ResponseWriter, r *http.Request) {
	var req request.CreateTicketRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// An authenticated caller files tickets as themselves
	if userID, ok := utils.GetUserIDFromContext(r.Context()); ok {
		req.UserID = userID.String()
	}

	response, err := h.service.CreateTicket(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create ticket")
		return
	}

	utils.ResponseCreated(w, "Support ticket created successfully", response)
}

// ListTickets handles GET /api/support/tickets, the agent queue. Admin only,
// enforced by the route middleware.
func (h *SupportHandler) ListTickets(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	listQuery := request.ListQuery{
		Limit:  utils.ParseInt(query.Get("limit"), 0),
		Offset: utils.ParseOffset(query.Get("offset")),
	}

	response, err := h.service.ListTickets(r.Context(), listQuery)
	if err != nil {
		handleServiceError(w, h.log, err, "list ticket queue")
		return
	}

	utils.ResponseSuccess(w, "Tickets retrieved", response)
}

// GetUserTickets handles GET /api/support/user/{userId}
func (h *SupportHandler) GetUserTickets(w http.ResponseWriter, r *http.Request) {
	userID, err := utils.ParseUUID(chi.URLParam(r, "userId"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid user id", nil)
		return
	}

	if !authorizeSelfOrAdmin(w, r, userID) {
		return
	}

	response, err := h.service.ListUserTickets(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "get user tickets")
		return
	}

	utils.ResponseSuccess(w, "Tickets retrieved", response)
}
