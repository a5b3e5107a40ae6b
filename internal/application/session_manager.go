package application

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/norman-ai/norman-cli/internal/domain"
	"github.com/norman-ai/norman-cli/internal/ports"
	"github.com/sirupsen/logrus"
)

// TokenExpiryLookahead is how far ahead of its real expiry a token is already
// treated as expired.
const TokenExpiryLookahead = 300 * time.Second

// TokenSource hands out a bearer token that is valid for at least
// TokenExpiryLookahead.
type TokenSource interface {
	Token(ctx context.Context) (domain.Secret, error)
}

type SessionManager struct {
	auth        ports.Authenticator
	decoder     ports.TokenDecoder
	clock       ports.Clock
	credentials *CredentialStore
	log         logrus.FieldLogger

	// mu guards session and is held for the whole check-then-login sequence.
	mu      sync.Mutex
	session domain.Session
}

func NewSessionManager(auth ports.Authenticator, decoder ports.TokenDecoder, credentials *CredentialStore, clock ports.Clock, log logrus.FieldLogger) *SessionManager {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	if credentials == nil {
		credentials = NewCredentialStore(domain.Credentials{})
	}

	return &SessionManager{
		auth:        auth,
		decoder:     decoder,
		clock:       clock,
		credentials: credentials,
		log:         log,
	}
}

var _ TokenSource = (*SessionManager)(nil)

func (m *SessionManager) Session() domain.Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.session
}

func (m *SessionManager) Credentials() domain.Credentials {
	return m.credentials.Snapshot()
}

func (m *SessionManager) UpdateCredentials(update domain.CredentialsUpdate) {
	m.credentials.Update(update)
}

func (m *SessionManager) IsExpired() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.isExpiredLocked()
}

func (m *SessionManager) isExpiredLocked() bool {
	if m.session.Token.IsZero() {
		return true
	}

	expiry, err := m.decoder.Expiry(m.session.Token.Reveal())
	if err != nil {
		return true
	}

	return expiry.Before(m.clock.Now().Add(TokenExpiryLookahead))
}

// EnsureValid returns the current session, logging in first when the token is
// missing or about to expire. Concurrent callers share one login.
func (m *SessionManager) EnsureValid(ctx context.Context) (domain.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.isExpiredLocked() {
		return m.session, nil
	}

	if err := m.loginStoredLocked(ctx); err != nil {
		return domain.Session{}, err
	}

	return m.session, nil
}

func (m *SessionManager) Token(ctx context.Context) (domain.Secret, error) {
	session, err := m.EnsureValid(ctx)
	if err != nil {
		return domain.Secret{}, err
	}

	return session.Token, nil
}

// Login authenticates with the stored credentials regardless of the current
// token's expiry.
func (m *SessionManager) Login(ctx context.Context) (domain.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.loginStoredLocked(ctx); err != nil {
		return domain.Session{}, err
	}

	return m.session, nil
}

func (m *SessionManager) loginStoredLocked(ctx context.Context) error {
	req, ok := resolveLoginRequest(m.credentials.Snapshot())
	if !ok {
		if m.session.Account.ID == "" {
			return fmt.Errorf("%w: no stored credential pair and no previous account to log in with", domain.ErrAuthentication)
		}
		req = ports.LoginRequest{Strategy: domain.LoginDefault, AccountID: m.session.Account.ID}
	}

	return m.loginLocked(ctx, req)
}

func (m *SessionManager) loginLocked(ctx context.Context, req ports.LoginRequest) error {
	log := m.log.WithFields(logrus.Fields{
		"strategy":   req.Strategy,
		"account_id": req.AccountID,
	})
	log.Debug("logging in")

	result, err := m.auth.Login(ctx, req)
	if err != nil {
		log.WithError(err).Debug("login rejected")
		return &domain.AuthenticationError{Strategy: req.Strategy, Err: err}
	}
	if result.AccessToken.IsZero() {
		return &domain.AuthenticationError{Strategy: req.Strategy, Err: fmt.Errorf("empty access token")}
	}

	m.replaceSessionLocked(result)
	log.WithField("expiry", m.session.Expiry).Debug("logged in")

	return nil
}

func (m *SessionManager) replaceSessionLocked(result ports.LoginResult) {
	expiry, err := m.decoder.Expiry(result.AccessToken.Reveal())
	if err != nil {
		m.log.WithError(err).Debug("access token expiry is unreadable; it will be refreshed on next use")
		expiry = time.Time{}
	}

	m.session = domain.Session{
		Token:   result.AccessToken,
		Expiry:  expiry,
		Account: result.Account,
	}
}

// loginAndRemember runs an explicit strategy and, on success, stores the
// credentials that worked.
func (m *SessionManager) loginAndRemember(ctx context.Context, req ports.LoginRequest, update domain.CredentialsUpdate) (domain.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.loginLocked(ctx, req); err != nil {
		return domain.Session{}, err
	}
	m.credentials.Update(update)

	return m.session, nil
}

func (m *SessionManager) LoginWithPassword(ctx context.Context, accountID domain.AccountID, password domain.Secret) (domain.Session, error) {
	return m.loginAndRemember(ctx,
		ports.LoginRequest{Strategy: domain.LoginAccountPassword, AccountID: accountID, Password: password},
		domain.CredentialsUpdate{AccountID: domain.Some(accountID), Password: domain.Some(password)},
	)
}

func (m *SessionManager) LoginWithAPIKey(ctx context.Context, accountID domain.AccountID, apiKey domain.Secret) (domain.Session, error) {
	return m.loginAndRemember(ctx,
		ports.LoginRequest{Strategy: domain.LoginAccountAPIKey, AccountID: accountID, APIKey: apiKey},
		domain.CredentialsUpdate{AccountID: domain.Some(accountID), APIKey: domain.Some(apiKey)},
	)
}

func (m *SessionManager) LoginWithUsernamePassword(ctx context.Context, username string, password domain.Secret) (domain.Session, error) {
	return m.loginAndRemember(ctx,
		ports.LoginRequest{Strategy: domain.LoginUsernamePassword, Username: username, Password: password},
		domain.CredentialsUpdate{Username: domain.Some(username), Password: domain.Some(password)},
	)
}

func (m *SessionManager) LoginWithEmailPassword(ctx context.Context, email string, password domain.Secret) (domain.Session, error) {
	return m.loginAndRemember(ctx,
		ports.LoginRequest{Strategy: domain.LoginEmailPassword, Email: email, Password: password},
		domain.CredentialsUpdate{Email: domain.Some(email), Password: domain.Some(password)},
	)
}

// LoginDefault logs into an account that has no password or key yet.
func (m *SessionManager) LoginDefault(ctx context.Context, accountID domain.AccountID) (domain.Session, error) {
	return m.loginAndRemember(ctx,
		ports.LoginRequest{Strategy: domain.LoginDefault, AccountID: accountID},
		domain.CredentialsUpdate{AccountID: domain.Some(accountID)},
	)
}

func (m *SessionManager) RequestEmailOTP(ctx context.Context, email string) error {
	if err := m.auth.RequestEmailOTP(ctx, email); err != nil {
		return fmt.Errorf("request email otp: %w", err)
	}

	return nil
}

func (m *SessionManager) VerifyEmailOTP(ctx context.Context, email, code string) (domain.Session, error) {
	return m.loginAndRemember(ctx,
		ports.LoginRequest{Strategy: domain.LoginEmailOTP, Email: email, Code: code},
		domain.CredentialsUpdate{Email: domain.Some(email)},
	)
}

// SignupDefault creates an anonymous account and logs into it.
func (m *SessionManager) SignupDefault(ctx context.Context) (domain.Session, error) {
	return m.signup(ctx, ports.SignupRequest{}, domain.CredentialsUpdate{})
}

func (m *SessionManager) SignupWithPassword(ctx context.Context, name string, password domain.Secret) (domain.Session, error) {
	return m.signup(ctx,
		ports.SignupRequest{Name: name, Password: password},
		domain.CredentialsUpdate{Username: domain.Some(name), Password: domain.Some(password)},
	)
}

func (m *SessionManager) signup(ctx context.Context, req ports.SignupRequest, update domain.CredentialsUpdate) (domain.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	result, err := m.auth.Signup(ctx, req)
	if err != nil {
		return domain.Session{}, fmt.Errorf("signup: %w", err)
	}

	if result.Account.ID != "" {
		update.AccountID = domain.Some(result.Account.ID)
	}
	m.credentials.Update(update)

	if result.AccessToken.IsZero() {
		m.session.Account = result.Account
		return m.session, nil
	}
	m.replaceSessionLocked(result)

	return m.session, nil
}

// GenerateAPIKey mints a new API key. The caller must already hold a token;
// it is presented as a second factor next to a freshly issued one.
func (m *SessionManager) GenerateAPIKey(ctx context.Context) (domain.Secret, error) {
	var key domain.Secret
	err := m.withSecondFactor(ctx, "generate api key", func(token domain.Secret, factor ports.SecondFactor) error {
		var err error
		key, err = m.auth.RegisterAPIKey(ctx, token, factor)
		return err
	})
	if err != nil {
		return domain.Secret{}, err
	}

	m.credentials.Update(domain.CredentialsUpdate{APIKey: domain.Some(key)})

	return key, nil
}

func (m *SessionManager) RegisterPassword(ctx context.Context, password domain.Secret) error {
	err := m.withSecondFactor(ctx, "register password", func(token domain.Secret, factor ports.SecondFactor) error {
		return m.auth.RegisterPassword(ctx, token, factor, password)
	})
	if err != nil {
		return err
	}

	m.credentials.Update(domain.CredentialsUpdate{Password: domain.Some(password)})

	return nil
}

func (m *SessionManager) RegisterEmail(ctx context.Context, email string) error {
	return m.withSecondFactor(ctx, "register email", func(token domain.Secret, factor ports.SecondFactor) error {
		return m.auth.RegisterEmail(ctx, token, factor, email)
	})
}

func (m *SessionManager) ResendEmailOTP(ctx context.Context, email string) error {
	return m.withSecondFactor(ctx, "resend email otp", func(token domain.Secret, factor ports.SecondFactor) error {
		return m.auth.ResendEmailOTP(ctx, token, factor, email)
	})
}

func (m *SessionManager) VerifyEmail(ctx context.Context, email, code string) error {
	token, err := m.Token(ctx)
	if err != nil {
		return err
	}

	if err := m.auth.VerifyEmail(ctx, token, email, code); err != nil {
		return fmt.Errorf("verify email: %w", err)
	}
	m.credentials.Update(domain.CredentialsUpdate{Email: domain.Some(email)})

	return nil
}

func (m *SessionManager) withSecondFactor(ctx context.Context, action string, fn func(token domain.Secret, factor ports.SecondFactor) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.session.Token.IsZero() {
		return fmt.Errorf("%s: %w", action, domain.ErrNotAuthenticated)
	}
	previous := m.session.Token

	if err := m.loginStoredLocked(ctx); err != nil {
		return fmt.Errorf("%s: %w", action, err)
	}

	factor := ports.SecondFactor{AccountID: m.session.Account.ID, SecondToken: previous}
	if err := fn(m.session.Token, factor); err != nil {
		return fmt.Errorf("%s: %w", action, err)
	}

	return nil
}

// Close wipes the session token and every stored secret.
func (m *SessionManager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.session.Token.Clear()
	m.session = domain.Session{}
	m.credentials.Clear()
}
