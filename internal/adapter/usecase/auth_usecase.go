package usecase

import (
	"context"
	"time"

	"adboard/internal/core/domain"
	"adboard/internal/core/port"
	"adboard/internal/credentials"
)

// AuthUseCase implements account registration and login on top of the
// user repository and the credential store.
type AuthUseCase struct {
	users port.UserRepository
	creds *credentials.Store
}

// NewAuthUseCase creates a new auth usecase.
func NewAuthUseCase(users port.UserRepository, creds *credentials.Store) *AuthUseCase {
	return &AuthUseCase{users: users, creds: creds}
}

// Register creates an account for email and returns it with a session
// token. A taken email fails with domain.ErrEmailTaken; the unique index
// on users.email backs the same guarantee under concurrent registration.
func (u *AuthUseCase) Register(ctx context.Context, email, password string) (*port.AuthResult, error) {
	existing, err := u.users.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailTaken
	}

	hash, err := u.creds.HashPassword(password)
	if err != nil {
		return nil, err
	}
	user, err := u.users.CreateUser(ctx, email, hash)
	if err != nil {
		return nil, err
	}

	token, err := u.creds.IssueToken(user.ID, time.Now())
	if err != nil {
		return nil, err
	}
	return &port.AuthResult{User: user, Token: token}, nil
}

// Login verifies the credentials and returns the account with a session
// token. Unknown email and wrong password both fail with
// domain.ErrInvalidCredentials so callers cannot probe for accounts.
func (u *AuthUseCase) Login(ctx context.Context, email, password string) (*port.AuthResult, error) {
	user, err := u.users.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil || !u.creds.CheckPassword(password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := u.creds.IssueToken(user.ID, time.Now())
	if err != nil {
		return nil, err
	}
	return &port.AuthResult{User: user, Token: token}, nil
}
