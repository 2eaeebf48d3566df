package adaptor

import (
	"encoding/json"
	"net"
	"net/http"
	"strings"

	"tourism-booking/internal/dto/request"
	"tourism-booking/internal/usecase"
	"tourism-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ChatHandler struct {
	service usecase.ChatService
	log     *zap.Logger
}

func NewChatHandler(service usecase.ChatService, log *zap.Logger) *ChatHandler {
	return &ChatHandler{
		service: service,
		log:     log,
	}
}

// CreateSession handles POST /api/chat/session. Auth is optional here so the
// widget works for guests; a verified token overrides any user id in the body.
func (h *ChatHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req request.CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		if req.UserID == "" {
			utils.ResponseBadRequest(w, "User ID is required", nil)
			return
		}
		parsed, err := uuid.Parse(req.UserID)
		if err != nil {
			utils.ResponseBadRequest(w, "Invalid user id", nil)
			return
		}
		userID = parsed
	}

	response, err := h.service.CreateSession(r.Context(), userID, &req, r.UserAgent(), clientIP(r))
	if err != nil {
		handleServiceError(w, h.log, err, "create chat session")
		return
	}

	utils.ResponseCreated(w, "Chat session created successfully", response)
}

// PostMessage handles POST /api/chat/session/{sessionId}/message
func (h *ChatHandler) PostMessage(w http.ResponseWriter, r *http.Request) {
	sessionRef := chi.URLParam(r, "sessionId")

	var req request.PostMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	response, err := h.service.PostMessage(r.Context(), sessionRef, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "post message")
		return
	}

	utils.ResponseSuccess(w, "Message sent successfully", response)
}

// GetMessages handles GET /api/chat/session/{sessionId}/messages
func (h *ChatHandler) GetMessages(w http.ResponseWriter, r *http.Request) {
	sessionRef := chi.URLParam(r, "sessionId")
	query := r.URL.Query()

	limit := utils.ClampLimit(utils.ParseInt(query.Get("limit"), 100), 500)
	offset := utils.ParseOffset(query.Get("offset"))

	response, err := h.service.GetHistory(r.Context(), sessionRef, limit, offset)
	if err != nil {
		handleServiceError(w, h.log, err, "get chat history")
		return
	}

	utils.ResponseSuccess(w, "Messages retrieved", response)
}

// GetUserSessions handles GET /api/chat/sessions/user/{userId}
func (h *ChatHandler) GetUserSessions(w http.ResponseWriter, r *http.Request) {
	userID, err := utils.ParseUUID(chi.URLParam(r, "userId"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid user id", nil)
		return
	}

	if !authorizeSelfOrAdmin(w, r, userID) {
		return
	}

	response, err := h.service.GetUserSessions(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "get user sessions")
		return
	}

	utils.ResponseSuccess(w, "Sessions retrieved", response)
}

// CloseSession handles POST /api/chat/session/{sessionId}/close
func (h *ChatHandler) CloseSession(w http.ResponseWriter, r *http.Request) {
	sessionRef := chi.URLParam(r, "sessionId")

	var req request.CloseSessionRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.ResponseBadRequest(w, "Invalid request body", nil)
			return
		}
	}

	if err := h.service.CloseSession(r.Context(), sessionRef, &req); err != nil {
		handleServiceError(w, h.log, err, "close chat session")
		return
	}

	utils.ResponseSuccess(w, "Chat session closed successfully", nil)
}

// CreateTicket handles POST /api/chat/session/{sessionId}/create-ticket
func (h *ChatHandler) CreateTicket(w http.ResponseWriter, r *http.Request) {
	sessionRef := chi.URLParam(r, "sessionId")

	var req request.CreateTicketFromSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	response, err := h.service.CreateTicketFromSession(r.Context(), sessionRef, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create ticket from session")
		return
	}

	utils.ResponseCreated(w, "Support ticket created successfully", response)
}

// clientIP prefers the first X-Forwarded-For hop, falling back to the socket
// peer.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		parts := strings.Split(fwd, ",")
		return strings.TrimSpace(parts[0])
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
