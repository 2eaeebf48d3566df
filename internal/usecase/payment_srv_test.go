package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"tourism-booking/internal/data/entity"
	"tourism-booking/internal/dto/request"

	"github.com/google/uuid"
)

func TestCreatePaymentConversationDefaults(t *testing.T) {
	svc := newTestService()

	amount := "2499.50"
	resp, err := svc.Payment.CreateConversation(context.Background(), &request.CreatePaymentConversationRequest{
		UserID:           uuid.NewString(),
		ConversationType: "refund_request",
		AmountDiscussed:  &amount,
	})
	if err != nil {
		t.Fatalf("CreateConversation: %v", err)
	}

	if !strings.HasPrefix(resp.ConversationID, "PAY") {
		t.Errorf("conversation reference %q lacks PAY prefix", resp.ConversationID)
	}
	if resp.Currency != "INR" {
		t.Errorf("currency = %q, want INR", resp.Currency)
	}
	if resp.Status != entity.ConversationOpen {
		t.Errorf("status = %q, want open", resp.Status)
	}
	if resp.AmountDiscussed == nil || *resp.AmountDiscussed != "2499.5" {
		t.Errorf("amount = %v, want 2499.5", resp.AmountDiscussed)
	}
}

func TestCreatePaymentConversationInvalidType(t *testing.T) {
	svc := newTestService()

	_, err := svc.Payment.CreateConversation(context.Background(), &request.CreatePaymentConversationRequest{
		UserID:           uuid.NewString(),
		ConversationType: "chargeback",
	})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("error = %v, want ErrValidation", err)
	}
}

func TestListUserConversations(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	userID := uuid.NewString()

	_, err := svc.Payment.CreateConversation(ctx, &request.CreatePaymentConversationRequest{
		UserID:           userID,
		ConversationType: "payment_inquiry",
	})
	if err != nil {
		t.Fatalf("CreateConversation: %v", err)
	}

	id, _ := uuid.Parse(userID)
	conversations, err := svc.Payment.ListUserConversations(ctx, id)
	if err != nil {
		t.Fatalf("ListUserConversations: %v", err)
	}
	if len(conversations) != 1 {
		t.Fatalf("got %d conversations, want 1", len(conversations))
	}
}
