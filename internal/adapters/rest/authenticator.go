package rest

import (
	"context"
	"fmt"

	"github.com/norman-ai/norman-cli/internal/domain"
	"github.com/norman-ai/norman-cli/internal/ports"
)

type Authenticator struct {
	client *Client
}

func NewAuthenticator(client *Client) *Authenticator {
	return &Authenticator{client: client}
}

var _ ports.Authenticator = (*Authenticator)(nil)

type loginResponse struct {
	AccessToken string         `json:"access_token"`
	Account     domain.Account `json:"account"`
}

func (r loginResponse) result() ports.LoginResult {
	return ports.LoginResult{
		AccessToken: domain.NewSecret(r.AccessToken),
		Account:     r.Account,
	}
}

type secondFactorFields struct {
	AccountID   domain.AccountID `json:"account_id"`
	SecondToken string           `json:"second_token"`
}

func secondFactor(factor ports.SecondFactor) secondFactorFields {
	return secondFactorFields{AccountID: factor.AccountID, SecondToken: factor.SecondToken.Reveal()}
}

func (a *Authenticator) Login(ctx context.Context, req ports.LoginRequest) (ports.LoginResult, error) {
	var (
		route  string
		params map[string]string
		body   any
	)

	switch req.Strategy {
	case domain.LoginAccountPassword:
		route = routeLoginAccountPassword
		body = map[string]string{"account_id": string(req.AccountID), "password": req.Password.Reveal()}
	case domain.LoginAccountAPIKey:
		route = routeLoginAPIKey
		body = map[string]string{"account_id": string(req.AccountID), "api_key": req.APIKey.Reveal()}
	case domain.LoginUsernamePassword:
		route = routeLoginNamePassword
		body = map[string]string{"name": req.Username, "password": req.Password.Reveal()}
	case domain.LoginEmailPassword:
		route = routeLoginEmailPassword
		body = map[string]string{"email": req.Email, "password": req.Password.Reveal()}
	case domain.LoginEmailOTP:
		route = routeVerifyEmailOTP
		body = map[string]string{"email": req.Email, "code": req.Code}
	case domain.LoginDefault:
		route = routeLoginDefault
		params = map[string]string{"account_id": string(req.AccountID)}
	default:
		return ports.LoginResult{}, fmt.Errorf("unsupported login strategy %q", req.Strategy)
	}

	var resp loginResponse
	if err := a.client.post(ctx, domain.Secret{}, route, params, body, &resp); err != nil {
		return ports.LoginResult{}, err
	}

	return resp.result(), nil
}

func (a *Authenticator) RequestEmailOTP(ctx context.Context, email string) error {
	return a.client.post(ctx, domain.Secret{}, routeLoginEmailOTP, nil, map[string]string{"email": email}, nil)
}

func (a *Authenticator) Signup(ctx context.Context, req ports.SignupRequest) (ports.LoginResult, error) {
	route := routeSignupDefault
	var body any
	if req.Name != "" || !req.Password.IsZero() {
		route = routeSignupPassword
		body = map[string]string{"name": req.Name, "email": req.Email, "password": req.Password.Reveal()}
	}

	var resp loginResponse
	if err := a.client.post(ctx, domain.Secret{}, route, nil, body, &resp); err != nil {
		return ports.LoginResult{}, err
	}

	return resp.result(), nil
}

func (a *Authenticator) RegisterAPIKey(ctx context.Context, token domain.Secret, factor ports.SecondFactor) (domain.Secret, error) {
	var key string
	if err := a.client.post(ctx, token, routeRegisterAPIKey, nil, secondFactor(factor), &key); err != nil {
		return domain.Secret{}, err
	}
	if key == "" {
		return domain.Secret{}, fmt.Errorf("POST %s: empty api key in response", routeRegisterAPIKey)
	}

	return domain.NewSecret(key), nil
}

func (a *Authenticator) RegisterPassword(ctx context.Context, token domain.Secret, factor ports.SecondFactor, password domain.Secret) error {
	body := struct {
		secondFactorFields
		Password string `json:"password"`
	}{secondFactor(factor), password.Reveal()}

	return a.client.post(ctx, token, routeRegisterPassword, nil, body, nil)
}

func (a *Authenticator) RegisterEmail(ctx context.Context, token domain.Secret, factor ports.SecondFactor, email string) error {
	body := struct {
		secondFactorFields
		Email string `json:"email"`
	}{secondFactor(factor), email}

	return a.client.post(ctx, token, routeRegisterEmail, nil, body, nil)
}

func (a *Authenticator) VerifyEmail(ctx context.Context, token domain.Secret, email, code string) error {
	return a.client.post(ctx, token, routeVerifyEmail, nil, map[string]string{"email": email, "code": code}, nil)
}

func (a *Authenticator) ResendEmailOTP(ctx context.Context, token domain.Secret, factor ports.SecondFactor, email string) error {
	body := struct {
		secondFactorFields
		Email string `json:"email"`
	}{secondFactor(factor), email}

	return a.client.post(ctx, token, routeResendEmailCode, nil, body, nil)
}
