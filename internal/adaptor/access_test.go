package adaptor

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"tourism-booking/internal/dto/request"
	"tourism-booking/internal/dto/response"
	"tourism-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type stubSupportService struct {
	listCalls int
}

func (s *stubSupportService) CreateTicket(_ context.Context, _ *request.CreateTicketRequest) (*response.TicketResponse, error) {
	return &response.TicketResponse{}, nil
}

func (s *stubSupportService) ListUserTickets(_ context.Context, _ uuid.UUID) ([]response.TicketResponse, error) {
	s.listCalls++
	return nil, nil
}

func (s *stubSupportService) ListTickets(_ context.Context, _ request.ListQuery) ([]response.TicketResponse, error) {
	return nil, nil
}

func ticketListRequest(targetUser uuid.UUID, requester uuid.UUID, role string, authenticated bool) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/api/support/user/"+targetUser.String(), nil)

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("userId", targetUser.String())
	ctx := context.WithValue(r.Context(), chi.RouteCtxKey, rctx)

	if authenticated {
		ctx = utils.SetUserContext(ctx, requester, role)
	}

	return r.WithContext(ctx)
}

func TestGetUserTicketsOwnershipGate(t *testing.T) {
	owner := uuid.New()
	stranger := uuid.New()

	tests := []struct {
		name          string
		requester     uuid.UUID
		role          string
		authenticated bool
		wantStatus    int
		wantCalled    bool
	}{
		{"owner", owner, "user", true, http.StatusOK, true},
		{"admin", stranger, "admin", true, http.StatusOK, true},
		{"other user", stranger, "user", true, http.StatusForbidden, false},
		{"anonymous", uuid.Nil, "", false, http.StatusUnauthorized, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubSupportService{}
			handler := NewSupportHandler(stub, zap.NewNop())

			w := httptest.NewRecorder()
			handler.GetUserTickets(w, ticketListRequest(owner, tt.requester, tt.role, tt.authenticated))

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if called := stub.listCalls > 0; called != tt.wantCalled {
				t.Errorf("service called = %v, want %v", called, tt.wantCalled)
			}
		})
	}
}
