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

type PaymentHandler struct {
	service usecase.PaymentService
	log     *zap.Logger
}

func NewPaymentHandler(service usecase.PaymentService, log *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		service: service,
		log:     log,
	}
}

// CreateConversation handles POST /api/payments/conversation
func (h *PaymentHandler) CreateConversation(w http.ResponseWriter, r *http.Request) {
	var req request.CreatePaymentConversationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if userID, ok := utils.GetUserIDFromContext(r.Context()); ok {
		req.UserID = userID.String()
	}

	response, err := h.service.CreateConversation(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create payment conversation")
		return
	}

	utils.ResponseCreated(w, "Payment conversation created successfully", response)
}

// GetUserConversations handles GET /api/payments/user/{userId}
func (h *PaymentHandler) GetUserConversations(w http.ResponseWriter, r *http.Request) {
	userID, err := utils.ParseUUID(chi.URLParam(r, "userId"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid user id", nil)
		return
	}

	if !authorizeSelfOrAdmin(w, r, userID) {
		return
	}

	response, err := h.service.ListUserConversations(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "get payment conversations")
		return
	}

	utils.ResponseSuccess(w, "Payment conversations retrieved", response)
}
