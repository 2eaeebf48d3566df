package usecase

import (
	"context"
	"errors"
	"testing"

	"tourism-booking/internal/dto/request"
	"tourism-booking/pkg/utils"

	"go.uber.org/zap"
)

func testConfig() *utils.Config {
	return &utils.Config{
		JWT: utils.JWTConfig{Secret: "test-secret", ExpiryHours: 1},
	}
}

func newTestService() *Service {
	return NewService(newFakeRepository(), testConfig(), zap.NewNop(), Deps{})
}

func registerReq(email string) *request.RegisterRequest {
	return &request.RegisterRequest{
		Name:     "Asha Kumari",
		Email:    email,
		Password: "secret123",
	}
}

func TestRegisterIssuesToken(t *testing.T) {
	svc := newTestService()

	resp, err := svc.Auth.Register(context.Background(), registerReq("asha@example.com"))
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("expected a signed token")
	}

	userID, role, err := utils.ParseJWT(resp.Token, "test-secret")
	if err != nil {
		t.Fatalf("ParseJWT: %v", err)
	}
	if userID.String() != resp.User.ID {
		t.Errorf("token user id = %s, want %s", userID, resp.User.ID)
	}
	if role != "user" {
		t.Errorf("token role = %q, want user", role)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	if _, err := svc.Auth.Register(ctx, registerReq("dup@example.com")); err != nil {
		t.Fatalf("first register: %v", err)
	}

	_, err := svc.Auth.Register(ctx, registerReq("dup@example.com"))
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("duplicate register error = %v, want ErrConflict", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	svc := newTestService()

	_, err := svc.Auth.Register(context.Background(), &request.RegisterRequest{
		Name:     "A",
		Email:    "not-an-email",
		Password: "short",
	})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("error = %v, want ErrValidation", err)
	}
}

func TestLoginEnumerationResistance(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	if _, err := svc.Auth.Register(ctx, registerReq("known@example.com")); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, unknownErr := svc.Auth.Login(ctx, &request.LoginRequest{
		Email: "unknown@example.com", Password: "secret123",
	})
	_, wrongPassErr := svc.Auth.Login(ctx, &request.LoginRequest{
		Email: "known@example.com", Password: "wrongpass",
	})

	if !errors.Is(unknownErr, ErrInvalidCredentials) || !errors.Is(wrongPassErr, ErrInvalidCredentials) {
		t.Fatalf("errors = %v / %v, want ErrInvalidCredentials for both", unknownErr, wrongPassErr)
	}
	if unknownErr.Error() != wrongPassErr.Error() {
		t.Fatalf("unknown email and wrong password must be indistinguishable: %q vs %q",
			unknownErr.Error(), wrongPassErr.Error())
	}
}

func TestLoginDeactivatedAccount(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo, testConfig(), zap.NewNop(), Deps{})
	ctx := context.Background()

	if _, err := svc.Auth.Register(ctx, registerReq("gone@example.com")); err != nil {
		t.Fatalf("register: %v", err)
	}

	users := repo.User.(*fakeUserRepo)
	users.users[0].IsActive = false

	_, err := svc.Auth.Login(ctx, &request.LoginRequest{
		Email: "gone@example.com", Password: "secret123",
	})
	if !errors.Is(err, ErrAccountDeactivated) {
		t.Fatalf("error = %v, want ErrAccountDeactivated", err)
	}
}

func TestLoginSuccess(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	if _, err := svc.Auth.Register(ctx, registerReq("ok@example.com")); err != nil {
		t.Fatalf("register: %v", err)
	}

	resp, err := svc.Auth.Login(ctx, &request.LoginRequest{
		Email: "ok@example.com", Password: "secret123",
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if resp.Token == "" || resp.User.Email != "ok@example.com" {
		t.Fatalf("unexpected login response: %+v", resp)
	}
}

func TestCheckEmail(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	resp, err := svc.Auth.CheckEmail(ctx, "nobody@example.com")
	if err != nil {
		t.Fatalf("check email: %v", err)
	}
	if resp.Exists || resp.User != nil {
		t.Fatalf("expected no account, got %+v", resp)
	}

	if _, err := svc.Auth.Register(ctx, registerReq("somebody@example.com")); err != nil {
		t.Fatalf("register: %v", err)
	}

	resp, err = svc.Auth.CheckEmail(ctx, "somebody@example.com")
	if err != nil {
		t.Fatalf("check email: %v", err)
	}
	if !resp.Exists || resp.User == nil {
		t.Fatalf("expected existing account, got %+v", resp)
	}
}
