package usecase

import (
	"context"
	"fmt"
	"time"

	"tourism-booking/internal/data/entity"
	"tourism-booking/internal/data/repository"
	"tourism-booking/internal/dto/request"
	"tourism-booking/internal/dto/response"
	"tourism-booking/internal/metrics"
	"tourism-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	ticketQueueDefaultLimit = 50
	ticketQueueMaxLimit     = 200
)

type SupportService interface {
	CreateTicket(ctx context.Context, req *request.CreateTicketRequest) (*response.TicketResponse, error)
	ListUserTickets(ctx context.Context, userID uuid.UUID) ([]response.TicketResponse, error)
	ListTickets(ctx context.Context, query request.ListQuery) ([]response.TicketResponse, error)
}

type supportService struct {
	repo    *repository.Repository
	metrics *metrics.Metrics
	log     *zap.Logger
}

func NewSupportService(repo *repository.Repository, m *metrics.Metrics, log *zap.Logger) SupportService {
	return &supportService{
		repo:    repo,
		metrics: m,
		log:     log,
	}
}

func (s *supportService) CreateTicket(ctx context.Context, req *request.CreateTicketRequest) (*response.TicketResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create ticket validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid user id", ErrValidation)
	}

	priority := entity.PriorityMedium
	if req.Priority != "" {
		priority = entity.Priority(req.Priority)
	}
	customerInfo := entity.UserInfo{}
	if req.CustomerInfo != nil {
		customerInfo = req.CustomerInfo
	}

	now := time.Now()
	ticket := &entity.SupportTicket{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		TicketID:         utils.GenerateTicketReference(),
		UserID:           userID,
		ChatSessionID:    req.ChatSessionID,
		Category:         entity.TicketCategory(req.Category),
		Subcategory:      req.Subcategory,
		Subject:          req.Subject,
		Description:      req.Description,
		Priority:         priority,
		Status:           entity.TicketOpen,
		Department:       entity.DefaultDepartment,
		BookingReference: req.BookingReference,
		CustomerInfo:     customerInfo,
	}

	if err := s.repo.SupportTicket.Create(ctx, ticket); err != nil {
		s.log.Error("Failed to create ticket", zap.Error(err), zap.String("ticket_id", ticket.TicketID))
		s.countError()
		return nil, fmt.Errorf("failed to create support ticket")
	}

	if s.metrics != nil {
		s.metrics.TicketsCreated.WithLabelValues(req.Category).Inc()
	}

	s.log.Info("Support ticket created",
		zap.String("ticket_id", ticket.TicketID),
		zap.String("user_id", userID.String()),
		zap.String("category", req.Category))

	return response.TicketToResponse(ticket), nil
}

func (s *supportService) ListUserTickets(ctx context.Context, userID uuid.UUID) ([]response.TicketResponse, error) {
	tickets, err := s.repo.SupportTicket.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to list tickets", zap.Error(err), zap.String("user_id", userID.String()))
		s.countError()
		return nil, fmt.Errorf("failed to get tickets")
	}

	return response.TicketsToResponse(tickets), nil
}

// ListTickets pages through the full ticket queue, newest first. Admin only,
// enforced at the route.
func (s *supportService) ListTickets(ctx context.Context, query request.ListQuery) ([]response.TicketResponse, error) {
	tickets, err := s.repo.SupportTicket.FindAll(ctx,
		query.ClampedLimit(ticketQueueDefaultLimit, ticketQueueMaxLimit),
		query.ClampedOffset())
	if err != nil {
		s.log.Error("Failed to list ticket queue", zap.Error(err))
		s.countError()
		return nil, fmt.Errorf("failed to get tickets")
	}

	return response.TicketsToResponse(tickets), nil
}

func (s *supportService) countError() {
	if s.metrics != nil {
		s.metrics.Errors.WithLabelValues("support").Inc()
	}
}
