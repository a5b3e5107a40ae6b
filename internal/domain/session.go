package domain

import "time"

type Account struct {
	ID    AccountID `json:"id"`
	Name  string    `json:"name,omitempty"`
	Email string    `json:"email,omitempty"`
}

type Session struct {
	Token   Secret
	Expiry  time.Time
	Account Account
}

func (s Session) IsZero() bool {
	return s.Token.IsZero()
}

type LoginStrategy string

const (
	LoginAccountPassword  LoginStrategy = "account_password"
	LoginAccountAPIKey    LoginStrategy = "account_api_key"
	LoginUsernamePassword LoginStrategy = "username_password"
	LoginEmailPassword    LoginStrategy = "email_password"
	LoginEmailOTP         LoginStrategy = "email_otp"
	LoginDefault          LoginStrategy = "default"
)
