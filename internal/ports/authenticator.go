package ports

import (
	"context"

	"github.com/norman-ai/norman-cli/internal/domain"
)

type LoginRequest struct {
	Strategy  domain.LoginStrategy
	AccountID domain.AccountID
	Username  string
	Email     string
	Password  domain.Secret
	APIKey    domain.Secret
	Code      string
}

type LoginResult struct {
	AccessToken domain.Secret
	Account     domain.Account
}

type SignupRequest struct {
	Name     string
	Email    string
	Password domain.Secret
}

// SecondFactor proves possession of a previous session when registering new
// authentication material.
type SecondFactor struct {
	AccountID   domain.AccountID
	SecondToken domain.Secret
}

type Authenticator interface {
	Login(ctx context.Context, req LoginRequest) (LoginResult, error)
	RequestEmailOTP(ctx context.Context, email string) error
	Signup(ctx context.Context, req SignupRequest) (LoginResult, error)

	RegisterAPIKey(ctx context.Context, token domain.Secret, factor SecondFactor) (domain.Secret, error)
	RegisterPassword(ctx context.Context, token domain.Secret, factor SecondFactor, password domain.Secret) error
	RegisterEmail(ctx context.Context, token domain.Secret, factor SecondFactor, email string) error
	VerifyEmail(ctx context.Context, token domain.Secret, email string, code string) error
	ResendEmailOTP(ctx context.Context, token domain.Secret, factor SecondFactor, email string) error
}
