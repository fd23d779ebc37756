package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"adboard/internal/config/configs"
	"adboard/internal/core/domain"
	"adboard/internal/core/port/mocks"
	"adboard/internal/credentials"

	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func testCreds() *credentials.Store {
	// MinCost keeps the bcrypt work out of the test hot path
	return credentials.New(configs.Auth{
		Secret:     "test-secret",
		TokenTTL:   time.Hour,
		BcryptCost: bcrypt.MinCost,
	})
}

// TestRegisterAndLogin round-trips an account through registration and
// login, checking the issued tokens resolve to the same user.
func TestRegisterAndLogin(t *testing.T) {
	users := mocks.NewMockUserRepository(t)
	creds := testCreds()

	var storedHash string
	users.EXPECT().
		FindUserByEmail(mock.Anything, "a@example.com").
		Return(nil, nil).
		Once()
	users.EXPECT().
		CreateUser(mock.Anything, "a@example.com", mock.AnythingOfType("string")).
		RunAndReturn(func(ctx context.Context, email, hash string) (*domain.User, error) {
			storedHash = hash
			return &domain.User{ID: 42, Email: email, PasswordHash: hash}, nil
		})

	svc := NewAuthUseCase(users, creds)

	reg, err := svc.Register(context.Background(), "a@example.com", "hunter22")
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	claims, err := creds.ValidateToken(reg.Token)
	if err != nil {
		t.Fatalf("ValidateToken error: %v", err)
	}
	if claims.UserID != 42 {
		t.Fatalf("expected user id 42 in claims, got %d", claims.UserID)
	}

	users.EXPECT().
		FindUserByEmail(mock.Anything, "a@example.com").
		Return(&domain.User{ID: 42, Email: "a@example.com", PasswordHash: storedHash}, nil)

	login, err := svc.Login(context.Background(), "a@example.com", "hunter22")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if login.User.ID != 42 {
		t.Fatalf("expected user id 42, got %d", login.User.ID)
	}
}

// TestRegisterEmailTaken ensures a duplicate email is rejected.
func TestRegisterEmailTaken(t *testing.T) {
	users := mocks.NewMockUserRepository(t)

	users.EXPECT().
		FindUserByEmail(mock.Anything, "a@example.com").
		Return(&domain.User{ID: 1, Email: "a@example.com"}, nil)

	svc := NewAuthUseCase(users, testCreds())

	_, err := svc.Register(context.Background(), "a@example.com", "pw")
	if !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

// TestLoginBadCredentials ensures unknown email and wrong password fail
// identically.
func TestLoginBadCredentials(t *testing.T) {
	users := mocks.NewMockUserRepository(t)
	creds := testCreds()

	hash, err := creds.HashPassword("right")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	users.EXPECT().
		FindUserByEmail(mock.Anything, "missing@example.com").
		Return(nil, nil)
	users.EXPECT().
		FindUserByEmail(mock.Anything, "a@example.com").
		Return(&domain.User{ID: 1, Email: "a@example.com", PasswordHash: hash}, nil)

	svc := NewAuthUseCase(users, creds)

	if _, err = svc.Login(context.Background(), "missing@example.com", "whatever"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
	if _, err = svc.Login(context.Background(), "a@example.com", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for bad password, got %v", err)
	}
}
