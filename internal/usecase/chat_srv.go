package usecase

import (
	"context"
	"fmt"
	"time"

	"tourism-booking/internal/analytics"
	"tourism-booking/internal/convo"
	"tourism-booking/internal/data/entity"
	"tourism-booking/internal/data/repository"
	"tourism-booking/internal/dto/request"
	"tourism-booking/internal/dto/response"
	"tourism-booking/internal/metrics"
	"tourism-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ChatService interface {
	CreateSession(ctx context.Context, userID uuid.UUID, req *request.CreateSessionRequest, userAgent, clientIP string) (*response.SessionResponse, error)
	PostMessage(ctx context.Context, sessionRef string, req *request.PostMessageRequest) (*response.PostMessageResponse, error)
	GetHistory(ctx context.Context, sessionRef string, limit, offset int) (*response.HistoryResponse, error)
	GetUserSessions(ctx context.Context, userID uuid.UUID) ([]response.SessionResponse, error)
	CloseSession(ctx context.Context, sessionRef string, req *request.CloseSessionRequest) error
	CreateTicketFromSession(ctx context.Context, sessionRef string, req *request.CreateTicketFromSessionRequest) (*response.TicketResponse, error)
}

type chatService struct {
	repo      *repository.Repository
	support   SupportService
	metrics   *metrics.Metrics
	analytics *analytics.Producer
	log       *zap.Logger
}

func NewChatService(
	repo *repository.Repository,
	support SupportService,
	m *metrics.Metrics,
	producer *analytics.Producer,
	log *zap.Logger,
) ChatService {
	return &chatService{
		repo:      repo,
		support:   support,
		metrics:   m,
		analytics: producer,
		log:       log,
	}
}

func (s *chatService) CreateSession(ctx context.Context, userID uuid.UUID, req *request.CreateSessionRequest, userAgent, clientIP string) (*response.SessionResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create session validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	sessionType := entity.SessionGeneral
	if req.SessionType != "" {
		sessionType = entity.SessionType(req.SessionType)
	}
	priority := entity.PriorityMedium
	if req.Priority != "" {
		priority = entity.Priority(req.Priority)
	}
	userInfo := entity.UserInfo{}
	if req.UserInfo != nil {
		userInfo = req.UserInfo
	}

	now := time.Now()
	session := &entity.ChatSession{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		SessionID:        utils.GenerateSessionReference(),
		UserID:           userID,
		SessionType:      sessionType,
		Status:           entity.SessionActive,
		Priority:         priority,
		BookingReference: req.BookingReference,
		UserInfo:         userInfo,
		Metadata: entity.SessionMetadata{
			Browser:   userAgent,
			IP:        clientIP,
			Timestamp: now.Format(time.RFC3339),
		},
	}

	if err := s.repo.ChatSession.Create(ctx, session); err != nil {
		s.log.Error("Failed to create chat session", zap.Error(err))
		s.countError()
		return nil, fmt.Errorf("failed to create chat session")
	}

	s.log.Info("Chat session created",
		zap.String("session_id", session.SessionID),
		zap.String("user_id", userID.String()))

	return response.SessionToResponse(session), nil
}

// PostMessage stores the inbound message and, for user senders, computes and
// stores the bot reply. The user message is always persisted first so history
// reads back in conversational order.
func (s *chatService) PostMessage(ctx context.Context, sessionRef string, req *request.PostMessageRequest) (*response.PostMessageResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Post message validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	session, err := s.repo.ChatSession.FindByReference(ctx, sessionRef)
	if err != nil {
		s.log.Error("Failed to load session", zap.Error(err), zap.String("session_id", sessionRef))
		s.countError()
		return nil, fmt.Errorf("failed to send message")
	}
	if session == nil {
		return nil, fmt.Errorf("%w: chat session", ErrNotFound)
	}
	if session.Status == entity.SessionClosed {
		return nil, ErrSessionClosed
	}

	senderType := entity.SenderUser
	if req.SenderType != "" {
		senderType = entity.SenderType(req.SenderType)
	}
	messageType := entity.MessageText
	if req.MessageType != "" {
		messageType = entity.MessageType(req.MessageType)
	}

	// Merge client-extracted entities with our own extraction. On keys both
	// sides produce, the server value wins; client-only keys are kept as-is,
	// so a caller may still supply entities the text does not contain.
	entities := make(map[string]string, len(req.EntitiesExtracted))
	for k, v := range req.EntitiesExtracted {
		entities[k] = v
	}
	for k, v := range convo.ExtractEntities(req.MessageText) {
		entities[k] = v
	}

	now := time.Now()
	userMsg := &entity.ChatMessage{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: now,
		},
		SessionID:   sessionRef,
		SenderType:  senderType,
		MessageType: messageType,
		Content:     req.MessageText,
		Metadata:    entity.MessageMetadata{Entities: entities},
	}

	if err := s.repo.ChatMessage.Create(ctx, userMsg); err != nil {
		s.log.Error("Failed to store message", zap.Error(err), zap.String("session_id", sessionRef))
		s.countError()
		return nil, fmt.Errorf("failed to send message")
	}
	s.countMessage(string(senderType))

	resp := &response.PostMessageResponse{
		UserMessage: response.MessageToResponse(userMsg),
	}

	// Bot and agent messages get no automatic reply
	if senderType != entity.SenderUser {
		return resp, nil
	}

	result := convo.Respond(req.MessageText, entities)

	botMsg := &entity.ChatMessage{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: now.Add(time.Millisecond),
		},
		SessionID:   sessionRef,
		SenderType:  entity.SenderBot,
		MessageType: entity.MessageText,
		Content:     result.Reply,
		Metadata: entity.MessageMetadata{
			AutoResponse: true,
			Intent:       result.Intent,
			Entities:     entities,
		},
	}

	if err := s.repo.ChatMessage.Create(ctx, botMsg); err != nil {
		s.log.Error("Failed to store bot reply", zap.Error(err), zap.String("session_id", sessionRef))
		s.countError()
		return nil, fmt.Errorf("failed to send message")
	}
	s.countMessage(string(entity.SenderBot))
	s.countIntent(result.Intent)
	s.publishIntent(ctx, sessionRef, result.Intent, entities)

	resp.BotResponse = &response.BotReplyResponse{
		MessageResponse: response.MessageToResponse(botMsg),
		Intent:          result.Intent,
		QuickReplies:    result.QuickReplies,
	}

	return resp, nil
}

func (s *chatService) GetHistory(ctx context.Context, sessionRef string, limit, offset int) (*response.HistoryResponse, error) {
	session, err := s.repo.ChatSession.FindByReference(ctx, sessionRef)
	if err != nil {
		s.log.Error("Failed to load session", zap.Error(err), zap.String("session_id", sessionRef))
		s.countError()
		return nil, fmt.Errorf("failed to get chat history")
	}
	if session == nil {
		return nil, fmt.Errorf("%w: chat session", ErrNotFound)
	}

	messages, err := s.repo.ChatMessage.FindBySession(ctx, sessionRef, limit, offset)
	if err != nil {
		s.log.Error("Failed to get chat history", zap.Error(err), zap.String("session_id", sessionRef))
		s.countError()
		return nil, fmt.Errorf("failed to get chat history")
	}

	formatted := response.MessagesToResponse(messages)
	return &response.HistoryResponse{Messages: formatted, Total: len(formatted)}, nil
}

func (s *chatService) GetUserSessions(ctx context.Context, userID uuid.UUID) ([]response.SessionResponse, error) {
	sessions, err := s.repo.ChatSession.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to get user sessions", zap.Error(err), zap.String("user_id", userID.String()))
		s.countError()
		return nil, fmt.Errorf("failed to get user sessions")
	}

	return response.SessionsToResponse(sessions), nil
}

// CloseSession is idempotent: closing an already closed session leaves it
// closed and succeeds.
func (s *chatService) CloseSession(ctx context.Context, sessionRef string, req *request.CloseSessionRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	session, err := s.repo.ChatSession.FindByReference(ctx, sessionRef)
	if err != nil {
		s.log.Error("Failed to load session", zap.Error(err), zap.String("session_id", sessionRef))
		s.countError()
		return fmt.Errorf("failed to close session")
	}
	if session == nil {
		return fmt.Errorf("%w: chat session", ErrNotFound)
	}

	if err := s.repo.ChatSession.Close(ctx, sessionRef, req.Satisfaction, req.Feedback); err != nil {
		s.log.Error("Failed to close session", zap.Error(err), zap.String("session_id", sessionRef))
		s.countError()
		return fmt.Errorf("failed to close session")
	}

	s.log.Info("Chat session closed", zap.String("session_id", sessionRef))
	return nil
}

// CreateTicketFromSession escalates a conversation to a support ticket. The
// session record names the ticket owner.
func (s *chatService) CreateTicketFromSession(ctx context.Context, sessionRef string, req *request.CreateTicketFromSessionRequest) (*response.TicketResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	session, err := s.repo.ChatSession.FindByReference(ctx, sessionRef)
	if err != nil {
		s.log.Error("Failed to load session", zap.Error(err), zap.String("session_id", sessionRef))
		s.countError()
		return nil, fmt.Errorf("failed to create ticket")
	}
	if session == nil {
		return nil, fmt.Errorf("%w: chat session", ErrNotFound)
	}

	ticketReq := &request.CreateTicketRequest{
		UserID:           session.UserID.String(),
		ChatSessionID:    &session.SessionID,
		Category:         req.Category,
		Subcategory:      req.Subcategory,
		Subject:          req.Subject,
		Description:      req.Description,
		Priority:         req.Priority,
		BookingReference: session.BookingReference,
		CustomerInfo:     session.UserInfo,
	}

	return s.support.CreateTicket(ctx, ticketReq)
}

func (s *chatService) countMessage(sender string) {
	if s.metrics != nil {
		s.metrics.ChatMessages.WithLabelValues(sender).Inc()
	}
}

func (s *chatService) countIntent(intent string) {
	if s.metrics != nil {
		s.metrics.ChatIntents.WithLabelValues(intent).Inc()
	}
}

func (s *chatService) countError() {
	if s.metrics != nil {
		s.metrics.Errors.WithLabelValues("chat").Inc()
	}
}

func (s *chatService) publishIntent(ctx context.Context, sessionRef, intent string, entities map[string]string) {
	if s.analytics == nil {
		return
	}

	event := analytics.IntentEvent{
		SessionID: sessionRef,
		Intent:    intent,
		Entities:  entities,
		Timestamp: time.Now(),
	}
	if err := s.analytics.PublishIntent(ctx, event); err != nil {
		s.log.Warn("Intent event publish failed", zap.Error(err), zap.String("session_id", sessionRef))
	}
}
