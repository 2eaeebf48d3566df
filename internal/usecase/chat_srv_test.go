package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"tourism-booking/internal/data/entity"
	"tourism-booking/internal/data/repository"
	"tourism-booking/internal/dto/request"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func newChatFixture(t *testing.T) (*Service, *repository.Repository, string, uuid.UUID) {
	t.Helper()

	repo := newFakeRepository()
	svc := NewService(repo, testConfig(), zap.NewNop(), Deps{})

	userID := uuid.New()
	resp, err := svc.Chat.CreateSession(context.Background(), userID, &request.CreateSessionRequest{}, "test-agent", "127.0.0.1")
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}

	return svc, repo, resp.SessionID, userID
}

func TestCreateSessionDefaults(t *testing.T) {
	_, repo, sessionRef, _ := newChatFixture(t)

	if !strings.HasPrefix(sessionRef, "CHAT_") {
		t.Fatalf("session reference %q lacks CHAT_ prefix", sessionRef)
	}

	stored := repo.ChatSession.(*fakeChatSessionRepo).sessions[0]
	if stored.SessionType != entity.SessionGeneral {
		t.Errorf("session type = %q, want general", stored.SessionType)
	}
	if stored.Priority != entity.PriorityMedium {
		t.Errorf("priority = %q, want medium", stored.Priority)
	}
	if stored.Status != entity.SessionActive {
		t.Errorf("status = %q, want active", stored.Status)
	}
	if stored.Metadata.Browser != "test-agent" || stored.Metadata.IP != "127.0.0.1" {
		t.Errorf("metadata not captured: %+v", stored.Metadata)
	}
}

func TestPostMessageStoresUserAndBotTurns(t *testing.T) {
	svc, repo, sessionRef, _ := newChatFixture(t)

	resp, err := svc.Chat.PostMessage(context.Background(), sessionRef, &request.PostMessageRequest{
		MessageText: "show me tour packages",
	})
	if err != nil {
		t.Fatalf("PostMessage: %v", err)
	}

	messages := repo.ChatMessage.(*fakeChatMessageRepo).messages
	if len(messages) != 2 {
		t.Fatalf("stored %d messages, want 2", len(messages))
	}
	if messages[0].SenderType != entity.SenderUser {
		t.Errorf("first message sender = %q, want user", messages[0].SenderType)
	}
	if messages[1].SenderType != entity.SenderBot {
		t.Errorf("second message sender = %q, want bot", messages[1].SenderType)
	}
	if !messages[1].Metadata.AutoResponse {
		t.Error("bot message not marked auto_response")
	}
	if !messages[1].CreatedAt.After(messages[0].CreatedAt) {
		t.Error("bot message must sort after the user message")
	}

	if resp.BotResponse == nil {
		t.Fatal("expected a bot response")
	}
	if resp.BotResponse.Intent != "package_inquiry" {
		t.Errorf("intent = %q, want package_inquiry", resp.BotResponse.Intent)
	}
	if len(resp.BotResponse.QuickReplies) != 4 {
		t.Errorf("quick replies = %v, want 4 entries", resp.BotResponse.QuickReplies)
	}
}

func TestPostMessageAgentSkipsBot(t *testing.T) {
	svc, repo, sessionRef, _ := newChatFixture(t)

	resp, err := svc.Chat.PostMessage(context.Background(), sessionRef, &request.PostMessageRequest{
		MessageText: "An agent will call you shortly",
		SenderType:  "agent",
	})
	if err != nil {
		t.Fatalf("PostMessage: %v", err)
	}
	if resp.BotResponse != nil {
		t.Fatal("agent message must not trigger a bot reply")
	}
	if got := len(repo.ChatMessage.(*fakeChatMessageRepo).messages); got != 1 {
		t.Fatalf("stored %d messages, want 1", got)
	}
}

func TestPostMessageBookingReference(t *testing.T) {
	svc, _, sessionRef, _ := newChatFixture(t)

	resp, err := svc.Chat.PostMessage(context.Background(), sessionRef, &request.PostMessageRequest{
		MessageText: "any update on JH20251234?",
	})
	if err != nil {
		t.Fatalf("PostMessage: %v", err)
	}
	if resp.BotResponse.Intent != "booking_tracking" {
		t.Errorf("intent = %q, want booking_tracking", resp.BotResponse.Intent)
	}
	if !strings.Contains(resp.BotResponse.Text, "JH20251234") {
		t.Errorf("bot reply does not interpolate the reference: %q", resp.BotResponse.Text)
	}
}

func TestPostMessageClosedSession(t *testing.T) {
	svc, _, sessionRef, _ := newChatFixture(t)
	ctx := context.Background()

	if err := svc.Chat.CloseSession(ctx, sessionRef, &request.CloseSessionRequest{}); err != nil {
		t.Fatalf("CloseSession: %v", err)
	}

	_, err := svc.Chat.PostMessage(ctx, sessionRef, &request.PostMessageRequest{MessageText: "hello?"})
	if !errors.Is(err, ErrSessionClosed) {
		t.Fatalf("error = %v, want ErrSessionClosed", err)
	}
}

func TestPostMessageUnknownSession(t *testing.T) {
	svc, _, _, _ := newChatFixture(t)

	_, err := svc.Chat.PostMessage(context.Background(), "CHAT_0_nope", &request.PostMessageRequest{
		MessageText: "hello",
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}

func TestCloseSessionIdempotent(t *testing.T) {
	svc, repo, sessionRef, _ := newChatFixture(t)
	ctx := context.Background()

	rating := 5
	if err := svc.Chat.CloseSession(ctx, sessionRef, &request.CloseSessionRequest{Satisfaction: &rating}); err != nil {
		t.Fatalf("first close: %v", err)
	}
	if err := svc.Chat.CloseSession(ctx, sessionRef, &request.CloseSessionRequest{}); err != nil {
		t.Fatalf("second close must succeed: %v", err)
	}

	// A re-close carrying a different rating must not replace the first one
	lowball := 1
	if err := svc.Chat.CloseSession(ctx, sessionRef, &request.CloseSessionRequest{Satisfaction: &lowball}); err != nil {
		t.Fatalf("third close must succeed: %v", err)
	}

	stored := repo.ChatSession.(*fakeChatSessionRepo).sessions[0]
	if stored.Status != entity.SessionClosed {
		t.Errorf("status = %q, want closed", stored.Status)
	}
	if stored.SatisfactionRating == nil || *stored.SatisfactionRating != 5 {
		t.Errorf("satisfaction rating changed on re-close: %v", stored.SatisfactionRating)
	}
}

func TestGetHistoryChronological(t *testing.T) {
	svc, _, sessionRef, _ := newChatFixture(t)
	ctx := context.Background()

	for _, text := range []string{"hello", "show packages"} {
		if _, err := svc.Chat.PostMessage(ctx, sessionRef, &request.PostMessageRequest{MessageText: text}); err != nil {
			t.Fatalf("PostMessage(%q): %v", text, err)
		}
	}

	history, err := svc.Chat.GetHistory(ctx, sessionRef, 50, 0)
	if err != nil {
		t.Fatalf("GetHistory: %v", err)
	}
	if history.Total != 4 {
		t.Fatalf("total = %d, want 4 (two user turns, two bot turns)", history.Total)
	}
	if history.Messages[0].Text != "hello" {
		t.Errorf("first message = %q, want the oldest", history.Messages[0].Text)
	}
}

func TestCreateTicketFromSession(t *testing.T) {
	svc, repo, sessionRef, userID := newChatFixture(t)

	ticket, err := svc.Chat.CreateTicketFromSession(context.Background(), sessionRef, &request.CreateTicketFromSessionRequest{
		Category:    "booking",
		Subject:     "Need date change",
		Description: "Please move my trek to next weekend",
	})
	if err != nil {
		t.Fatalf("CreateTicketFromSession: %v", err)
	}

	if ticket.UserID != userID.String() {
		t.Errorf("ticket user = %s, want session owner %s", ticket.UserID, userID)
	}
	if ticket.ChatSessionID == nil || *ticket.ChatSessionID != sessionRef {
		t.Errorf("ticket not linked to session: %v", ticket.ChatSessionID)
	}

	stored := repo.SupportTicket.(*fakeTicketRepo).tickets
	if len(stored) != 1 {
		t.Fatalf("stored %d tickets, want 1", len(stored))
	}
}
