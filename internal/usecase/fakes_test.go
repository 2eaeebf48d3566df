package usecase

import (
	"context"
	"errors"
	"sort"

	"tourism-booking/internal/data/entity"
	"tourism-booking/internal/data/repository"

	"github.com/google/uuid"
)

// In-memory repository fakes. Each keeps its rows in a slice and mirrors the
// real repositories' contract: (nil, nil) on missing rows, newest-first
// listings where the SQL orders that way.

type fakeUserRepo struct {
	users []*entity.User
	err   error
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	if f.err != nil {
		return f.err
	}
	f.users = append(f.users, user)
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindActiveByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	u, err := f.FindByID(ctx, id)
	if err != nil || u == nil || !u.IsActive {
		return nil, err
	}
	return u, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	return f.err
}

func (f *fakeUserRepo) Deactivate(_ context.Context, id uuid.UUID) error {
	for _, u := range f.users {
		if u.ID == id {
			u.IsActive = false
		}
	}
	return f.err
}

type fakePackageRepo struct {
	packages []*entity.Package
	err      error
}

func (f *fakePackageRepo) FindAll(_ context.Context, filter repository.PackageFilter) ([]*entity.Package, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*entity.Package
	for _, p := range f.packages {
		if !p.IsActive {
			continue
		}
		if filter.Type != "" && p.Type != filter.Type {
			continue
		}
		if filter.FeaturedOnly && !p.Featured {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (f *fakePackageRepo) FindFeatured(_ context.Context, limit int) ([]*entity.Package, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*entity.Package
	for _, p := range f.packages {
		if p.IsActive && p.Featured && len(out) < limit {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePackageRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Package, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, p := range f.packages {
		if p.ID == id && p.IsActive {
			return p, nil
		}
	}
	return nil, nil
}

type fakeBookingRepo struct {
	bookings []*entity.Booking
	err      error
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *entity.Booking) error {
	if f.err != nil {
		return f.err
	}
	f.bookings = append(f.bookings, booking)
	return nil
}

func (f *fakeBookingRepo) FindByUserID(_ context.Context, userID uuid.UUID) ([]*entity.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*entity.Booking
	for _, b := range f.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) FindByReference(_ context.Context, ref string) (*entity.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, b := range f.bookings {
		if b.BookingID == ref {
			return b, nil
		}
	}
	return nil, nil
}

type fakeChatSessionRepo struct {
	sessions []*entity.ChatSession
	err      error
}

func (f *fakeChatSessionRepo) Create(_ context.Context, session *entity.ChatSession) error {
	if f.err != nil {
		return f.err
	}
	f.sessions = append(f.sessions, session)
	return nil
}

func (f *fakeChatSessionRepo) FindByReference(_ context.Context, ref string) (*entity.ChatSession, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, s := range f.sessions {
		if s.SessionID == ref {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeChatSessionRepo) FindByUserID(_ context.Context, userID uuid.UUID) ([]*entity.ChatSession, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*entity.ChatSession
	for _, s := range f.sessions {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeChatSessionRepo) Close(_ context.Context, ref string, satisfaction *int, feedback *string) error {
	if f.err != nil {
		return f.err
	}
	for _, s := range f.sessions {
		if s.SessionID == ref {
			s.Status = entity.SessionClosed
			// First recorded rating and feedback win, as in the SQL
			if s.SatisfactionRating == nil {
				s.SatisfactionRating = satisfaction
			}
			if s.Feedback == nil {
				s.Feedback = feedback
			}
			return nil
		}
	}
	return errors.New("chat session not found")
}

type fakeChatMessageRepo struct {
	messages []*entity.ChatMessage
	err      error
}

func (f *fakeChatMessageRepo) Create(_ context.Context, message *entity.ChatMessage) error {
	if f.err != nil {
		return f.err
	}
	f.messages = append(f.messages, message)
	return nil
}

func (f *fakeChatMessageRepo) FindBySession(_ context.Context, ref string, limit, offset int) ([]*entity.ChatMessage, error) {
	if f.err != nil {
		return nil, f.err
	}
	var all []*entity.ChatMessage
	for _, m := range f.messages {
		if m.SessionID == ref {
			all = append(all, m)
		}
	}
	if offset >= len(all) {
		return nil, nil
	}
	all = all[offset:]
	if limit > 0 && limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

type fakeTicketRepo struct {
	tickets []*entity.SupportTicket
	err     error
}

func (f *fakeTicketRepo) Create(_ context.Context, ticket *entity.SupportTicket) error {
	if f.err != nil {
		return f.err
	}
	f.tickets = append(f.tickets, ticket)
	return nil
}

func (f *fakeTicketRepo) FindByUserID(_ context.Context, userID uuid.UUID) ([]*entity.SupportTicket, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*entity.SupportTicket
	for _, t := range f.tickets {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTicketRepo) FindAll(_ context.Context, limit, offset int) ([]*entity.SupportTicket, error) {
	if f.err != nil {
		return nil, f.err
	}
	// Newest first, mirroring the SQL ordering
	sorted := make([]*entity.SupportTicket, len(f.tickets))
	copy(sorted, f.tickets)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})

	if offset >= len(sorted) {
		return nil, nil
	}
	sorted = sorted[offset:]
	if limit > 0 && limit < len(sorted) {
		sorted = sorted[:limit]
	}
	return sorted, nil
}

func (f *fakeTicketRepo) FindByReference(_ context.Context, ref string) (*entity.SupportTicket, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, t := range f.tickets {
		if t.TicketID == ref {
			return t, nil
		}
	}
	return nil, nil
}

type fakePaymentConversationRepo struct {
	conversations []*entity.PaymentConversation
	err           error
}

func (f *fakePaymentConversationRepo) Create(_ context.Context, c *entity.PaymentConversation) error {
	if f.err != nil {
		return f.err
	}
	f.conversations = append(f.conversations, c)
	return nil
}

func (f *fakePaymentConversationRepo) FindByUserID(_ context.Context, userID uuid.UUID) ([]*entity.PaymentConversation, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*entity.PaymentConversation
	for _, c := range f.conversations {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func newFakeRepository() *repository.Repository {
	return &repository.Repository{
		User:                &fakeUserRepo{},
		Package:             &fakePackageRepo{},
		Booking:             &fakeBookingRepo{},
		ChatSession:         &fakeChatSessionRepo{},
		ChatMessage:         &fakeChatMessageRepo{},
		SupportTicket:       &fakeTicketRepo{},
		PaymentConversation: &fakePaymentConversationRepo{},
	}
}
