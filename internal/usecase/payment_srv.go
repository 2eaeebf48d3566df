package usecase

import (
	"context"
	"fmt"
	"time"

	"tourism-booking/internal/data/entity"
	"tourism-booking/internal/data/repository"
	"tourism-booking/internal/dto/request"
	"tourism-booking/internal/dto/response"
	"tourism-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const defaultCurrency = "INR"

type PaymentService interface {
	CreateConversation(ctx context.Context, req *request.CreatePaymentConversationRequest) (*response.PaymentConversationResponse, error)
	ListUserConversations(ctx context.Context, userID uuid.UUID) ([]response.PaymentConversationResponse, error)
}

type paymentService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewPaymentService(repo *repository.Repository, log *zap.Logger) PaymentService {
	return &paymentService{
		repo: repo,
		log:  log,
	}
}

func (s *paymentService) CreateConversation(ctx context.Context, req *request.CreatePaymentConversationRequest) (*response.PaymentConversationResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create payment conversation validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid user id", ErrValidation)
	}

	var bookingID *uuid.UUID
	if req.BookingID != nil {
		id, err := uuid.Parse(*req.BookingID)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid booking id", ErrValidation)
		}
		bookingID = &id
	}

	var amount *decimal.Decimal
	if req.AmountDiscussed != nil {
		d, err := decimal.NewFromString(*req.AmountDiscussed)
		if err != nil || d.IsNegative() {
			return nil, fmt.Errorf("%w: invalid amount", ErrValidation)
		}
		amount = &d
	}

	currency := req.Currency
	if currency == "" {
		currency = defaultCurrency
	}
	conversationData := entity.UserInfo{}
	if req.ConversationData != nil {
		conversationData = req.ConversationData
	}

	now := time.Now()
	conversation := &entity.PaymentConversation{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		ConversationID:   utils.GeneratePaymentReference(),
		UserID:           userID,
		BookingID:        bookingID,
		PaymentReference: req.PaymentReference,
		ConversationType: entity.PaymentConversationType(req.ConversationType),
		AmountDiscussed:  amount,
		Currency:         currency,
		PaymentMethod:    req.PaymentMethod,
		TransactionID:    req.TransactionID,
		Status:           entity.ConversationOpen,
		ConversationData: conversationData,
	}

	if err := s.repo.PaymentConversation.Create(ctx, conversation); err != nil {
		s.log.Error("Failed to create payment conversation",
			zap.Error(err), zap.String("conversation_id", conversation.ConversationID))
		return nil, fmt.Errorf("failed to create payment conversation")
	}

	s.log.Info("Payment conversation created",
		zap.String("conversation_id", conversation.ConversationID),
		zap.String("user_id", userID.String()))

	return response.PaymentConversationToResponse(conversation), nil
}

func (s *paymentService) ListUserConversations(ctx context.Context, userID uuid.UUID) ([]response.PaymentConversationResponse, error) {
	conversations, err := s.repo.PaymentConversation.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to list payment conversations",
			zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to get payment conversations")
	}

	return response.PaymentConversationsToResponse(conversations), nil
}
