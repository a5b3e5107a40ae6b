package rest

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/norman-ai/norman-cli/internal/domain"
	"github.com/norman-ai/norman-cli/internal/ports"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedRequest struct {
	Method    string
	Path      string
	Auth      string
	RequestID string
	Body      map[string]any
}

// platform is a scripted stand-in for the remote API keyed by request path.
type platform struct {
	mu        sync.Mutex
	requests  []capturedRequest
	responses map[string]func(w http.ResponseWriter)
}

func newPlatform(t *testing.T) (*platform, *Client) {
	t.Helper()

	p := &platform{responses: map[string]func(w http.ResponseWriter){}}
	server := httptest.NewServer(http.HandlerFunc(p.serve))
	t.Cleanup(server.Close)

	log, _ := test.NewNullLogger()
	return p, NewClient(Config{BaseURL: server.URL + "/", UserAgent: "norman-test"}, log)
}

func (p *platform) serve(w http.ResponseWriter, r *http.Request) {
	captured := capturedRequest{
		Method:    r.Method,
		Path:      r.URL.Path,
		Auth:      r.Header.Get("Authorization"),
		RequestID: r.Header.Get(requestIDHeader),
	}
	if data, _ := io.ReadAll(r.Body); len(data) > 0 {
		var body map[string]any
		if json.Unmarshal(data, &body) == nil {
			captured.Body = body
		}
	}

	p.mu.Lock()
	p.requests = append(p.requests, captured)
	respond, ok := p.responses[r.URL.Path]
	p.mu.Unlock()

	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	respond(w)
}

func (p *platform) on(path string, status int, body any) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.responses[path] = func(w http.ResponseWriter) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		switch b := body.(type) {
		case nil:
		case string:
			_, _ = io.WriteString(w, b)
		default:
			_ = json.NewEncoder(w).Encode(b)
		}
	}
}

func (p *platform) last(t *testing.T) capturedRequest {
	t.Helper()

	p.mu.Lock()
	defer p.mu.Unlock()
	require.NotEmpty(t, p.requests)
	return p.requests[len(p.requests)-1]
}

func TestClientSendsRequestIDAndBearer(t *testing.T) {
	t.Parallel()

	p, client := newPlatform(t)
	p.on(routeLoginEmailOTP, http.StatusOK, nil)

	err := client.post(context.Background(), domain.NewSecret("tok"), routeLoginEmailOTP, nil, map[string]string{"email": "a@b.c"}, nil)

	require.NoError(t, err)
	req := p.last(t)
	assert.Equal(t, "Bearer tok", req.Auth)
	_, err = uuid.Parse(req.RequestID)
	assert.NoError(t, err)
}

func TestClientOmitsAuthorizationWithoutToken(t *testing.T) {
	t.Parallel()

	p, client := newPlatform(t)

	require.NoError(t, client.post(context.Background(), domain.Secret{}, routeLoginEmailOTP, nil, nil, nil))
	assert.Empty(t, p.last(t).Auth)
}

func TestClientAPIError(t *testing.T) {
	t.Parallel()

	p, client := newPlatform(t)
	p.on(routeCreateModels, http.StatusUnauthorized, `{"detail":"expired"}`)

	err := client.post(context.Background(), domain.NewSecret("tok"), routeCreateModels, nil, []domain.Model{}, nil)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, routeCreateModels, apiErr.Route)
	assert.Contains(t, apiErr.Body, "expired")
	assert.NotEmpty(t, apiErr.RequestID)
	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
}

func TestClientServerErrorIsNotAuthentication(t *testing.T) {
	t.Parallel()

	p, client := newPlatform(t)
	p.on(routeCreateModels, http.StatusInternalServerError, strings.Repeat("x", maxErrorBody*2))

	err := client.post(context.Background(), domain.Secret{}, routeCreateModels, nil, nil, nil)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.NotErrorIs(t, err, domain.ErrNotAuthenticated)
	assert.Len(t, apiErr.Body, maxErrorBody+len("..."))
}

func TestClientUndecodableResponse(t *testing.T) {
	t.Parallel()

	p, client := newPlatform(t)
	p.on(routeCreateModels, http.StatusOK, "not json")

	var out map[string]domain.Model
	err := client.post(context.Background(), domain.Secret{}, routeCreateModels, nil, nil, &out)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode POST")
}

func TestAuthenticatorLoginStrategies(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		req      ports.LoginRequest
		wantPath string
		wantBody map[string]any
	}{
		{
			name:     "account password",
			req:      ports.LoginRequest{Strategy: domain.LoginAccountPassword, AccountID: "acc-1", Password: domain.NewSecret("pw")},
			wantPath: routeLoginAccountPassword,
			wantBody: map[string]any{"account_id": "acc-1", "password": "pw"},
		},
		{
			name:     "account api key",
			req:      ports.LoginRequest{Strategy: domain.LoginAccountAPIKey, AccountID: "acc-1", APIKey: domain.NewSecret("key")},
			wantPath: routeLoginAPIKey,
			wantBody: map[string]any{"account_id": "acc-1", "api_key": "key"},
		},
		{
			name:     "username password",
			req:      ports.LoginRequest{Strategy: domain.LoginUsernamePassword, Username: "ada", Password: domain.NewSecret("pw")},
			wantPath: routeLoginNamePassword,
			wantBody: map[string]any{"name": "ada", "password": "pw"},
		},
		{
			name:     "email password",
			req:      ports.LoginRequest{Strategy: domain.LoginEmailPassword, Email: "a@b.c", Password: domain.NewSecret("pw")},
			wantPath: routeLoginEmailPassword,
			wantBody: map[string]any{"email": "a@b.c", "password": "pw"},
		},
		{
			name:     "email otp",
			req:      ports.LoginRequest{Strategy: domain.LoginEmailOTP, Email: "a@b.c", Code: "123456"},
			wantPath: routeVerifyEmailOTP,
			wantBody: map[string]any{"email": "a@b.c", "code": "123456"},
		},
		{
			name:     "default",
			req:      ports.LoginRequest{Strategy: domain.LoginDefault, AccountID: "acc-1"},
			wantPath: "/authenticate/login/default/acc-1",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p, client := newPlatform(t)
			p.on(tt.wantPath, http.StatusOK, map[string]any{
				"access_token": "jwt",
				"account":      map[string]any{"id": "acc-1", "name": "ada"},
			})

			result, err := NewAuthenticator(client).Login(context.Background(), tt.req)

			require.NoError(t, err)
			assert.Equal(t, "jwt", result.AccessToken.Reveal())
			assert.Equal(t, domain.AccountID("acc-1"), result.Account.ID)

			req := p.last(t)
			assert.Equal(t, tt.wantPath, req.Path)
			assert.Equal(t, tt.wantBody, req.Body)
			assert.Empty(t, req.Auth)
		})
	}
}

func TestAuthenticatorLoginUnknownStrategy(t *testing.T) {
	t.Parallel()

	_, client := newPlatform(t)

	_, err := NewAuthenticator(client).Login(context.Background(), ports.LoginRequest{Strategy: "carrier_pigeon"})

	require.Error(t, err)
}

func TestAuthenticatorSignup(t *testing.T) {
	t.Parallel()

	p, client := newPlatform(t)
	p.on(routeSignupDefault, http.StatusOK, map[string]any{"access_token": "anon", "account": map[string]any{"id": "acc-9"}})
	p.on(routeSignupPassword, http.StatusOK, map[string]any{"access_token": "named", "account": map[string]any{"id": "acc-7"}})
	auth := NewAuthenticator(client)

	anon, err := auth.Signup(context.Background(), ports.SignupRequest{})
	require.NoError(t, err)
	assert.Equal(t, domain.AccountID("acc-9"), anon.Account.ID)
	assert.Equal(t, routeSignupDefault, p.last(t).Path)

	named, err := auth.Signup(context.Background(), ports.SignupRequest{Name: "ada", Password: domain.NewSecret("pw")})
	require.NoError(t, err)
	assert.Equal(t, "named", named.AccessToken.Reveal())
	assert.Equal(t, "pw", p.last(t).Body["password"])
}

func TestAuthenticatorRegisterAPIKey(t *testing.T) {
	t.Parallel()

	p, client := newPlatform(t)
	p.on(routeRegisterAPIKey, http.StatusOK, `"fresh-key"`)

	key, err := NewAuthenticator(client).RegisterAPIKey(context.Background(), domain.NewSecret("new-tok"), ports.SecondFactor{
		AccountID:   "acc-1",
		SecondToken: domain.NewSecret("old-tok"),
	})

	require.NoError(t, err)
	assert.Equal(t, "fresh-key", key.Reveal())

	req := p.last(t)
	assert.Equal(t, "Bearer new-tok", req.Auth)
	assert.Equal(t, map[string]any{"account_id": "acc-1", "second_token": "old-tok"}, req.Body)
}

func TestAuthenticatorRegisterAPIKeyEmpty(t *testing.T) {
	t.Parallel()

	p, client := newPlatform(t)
	p.on(routeRegisterAPIKey, http.StatusOK, `""`)

	_, err := NewAuthenticator(client).RegisterAPIKey(context.Background(), domain.NewSecret("t"), ports.SecondFactor{AccountID: "acc-1"})

	require.Error(t, err)
}

func TestAuthenticatorSecondFactorBodies(t *testing.T) {
	t.Parallel()

	p, client := newPlatform(t)
	auth := NewAuthenticator(client)
	factor := ports.SecondFactor{AccountID: "acc-1", SecondToken: domain.NewSecret("old")}
	token := domain.NewSecret("new")
	ctx := context.Background()

	require.NoError(t, auth.RegisterPassword(ctx, token, factor, domain.NewSecret("pw")))
	assert.Equal(t, map[string]any{"account_id": "acc-1", "second_token": "old", "password": "pw"}, p.last(t).Body)

	require.NoError(t, auth.RegisterEmail(ctx, token, factor, "a@b.c"))
	assert.Equal(t, routeRegisterEmail, p.last(t).Path)
	assert.Equal(t, "a@b.c", p.last(t).Body["email"])

	require.NoError(t, auth.ResendEmailOTP(ctx, token, factor, "a@b.c"))
	assert.Equal(t, routeResendEmailCode, p.last(t).Path)
	assert.Equal(t, "old", p.last(t).Body["second_token"])

	require.NoError(t, auth.VerifyEmail(ctx, token, "a@b.c", "999"))
	assert.Equal(t, map[string]any{"email": "a@b.c", "code": "999"}, p.last(t).Body)
	assert.Equal(t, "Bearer new", p.last(t).Auth)
}
