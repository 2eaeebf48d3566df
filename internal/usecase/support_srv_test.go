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

func TestCreateTicketDefaults(t *testing.T) {
	svc := newTestService()

	resp, err := svc.Support.CreateTicket(context.Background(), &request.CreateTicketRequest{
		UserID:      uuid.NewString(),
		Category:    "payment",
		Subject:     "Refund not received",
		Description: "Cancelled a week ago, still no refund",
	})
	if err != nil {
		t.Fatalf("CreateTicket: %v", err)
	}

	if !strings.HasPrefix(resp.TicketID, "TKT") {
		t.Errorf("ticket reference %q lacks TKT prefix", resp.TicketID)
	}
	if resp.Status != entity.TicketOpen {
		t.Errorf("status = %q, want open", resp.Status)
	}
	if resp.Priority != entity.PriorityMedium {
		t.Errorf("priority = %q, want medium", resp.Priority)
	}
	if resp.Department != entity.DefaultDepartment {
		t.Errorf("department = %q, want %q", resp.Department, entity.DefaultDepartment)
	}
}

func TestCreateTicketValidation(t *testing.T) {
	svc := newTestService()

	_, err := svc.Support.CreateTicket(context.Background(), &request.CreateTicketRequest{
		UserID:   uuid.NewString(),
		Category: "nonsense",
		Subject:  "x",
	})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("error = %v, want ErrValidation", err)
	}
}

func TestListUserTickets(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	userID := uuid.NewString()

	for _, subject := range []string{"First issue", "Second issue"} {
		_, err := svc.Support.CreateTicket(ctx, &request.CreateTicketRequest{
			UserID:      userID,
			Category:    "general",
			Subject:     subject,
			Description: "details",
		})
		if err != nil {
			t.Fatalf("CreateTicket: %v", err)
		}
	}

	id, _ := uuid.Parse(userID)
	tickets, err := svc.Support.ListUserTickets(ctx, id)
	if err != nil {
		t.Fatalf("ListUserTickets: %v", err)
	}
	if len(tickets) != 2 {
		t.Fatalf("got %d tickets, want 2", len(tickets))
	}
}

func TestListTicketsQueue(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	// Tickets from different users all land in the queue
	for i := 0; i < 3; i++ {
		_, err := svc.Support.CreateTicket(ctx, &request.CreateTicketRequest{
			UserID:      uuid.NewString(),
			Category:    "general",
			Subject:     "Queue item",
			Description: "details",
		})
		if err != nil {
			t.Fatalf("CreateTicket: %v", err)
		}
	}

	tickets, err := svc.Support.ListTickets(ctx, request.ListQuery{})
	if err != nil {
		t.Fatalf("ListTickets: %v", err)
	}
	if len(tickets) != 3 {
		t.Fatalf("got %d tickets, want 3", len(tickets))
	}

	paged, err := svc.Support.ListTickets(ctx, request.ListQuery{Limit: 2, Offset: 2})
	if err != nil {
		t.Fatalf("ListTickets paged: %v", err)
	}
	if len(paged) != 1 {
		t.Fatalf("got %d paged tickets, want 1", len(paged))
	}
}
