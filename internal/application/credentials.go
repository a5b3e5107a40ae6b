package application

import (
	"sync"

	"github.com/norman-ai/norman-cli/internal/domain"
	"github.com/norman-ai/norman-cli/internal/ports"
)

type CredentialStore struct {
	mu    sync.RWMutex
	creds domain.Credentials
}

func NewCredentialStore(initial domain.Credentials) *CredentialStore {
	return &CredentialStore{creds: initial}
}

func (s *CredentialStore) Snapshot() domain.Credentials {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.creds
}

func (s *CredentialStore) Update(update domain.CredentialsUpdate) {
	if update.Empty() {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.creds = s.creds.Apply(update)
}

func (s *CredentialStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.creds.Clear()
	s.creds = domain.Credentials{}
}

// resolveLoginRequest picks the first complete credential pair in priority
// order: account+password, account+api key, username+password, email+password.
func resolveLoginRequest(creds domain.Credentials) (ports.LoginRequest, bool) {
	switch {
	case creds.AccountID != "" && !creds.Password.IsZero():
		return ports.LoginRequest{Strategy: domain.LoginAccountPassword, AccountID: creds.AccountID, Password: creds.Password}, true
	case creds.AccountID != "" && !creds.APIKey.IsZero():
		return ports.LoginRequest{Strategy: domain.LoginAccountAPIKey, AccountID: creds.AccountID, APIKey: creds.APIKey}, true
	case creds.Username != "" && !creds.Password.IsZero():
		return ports.LoginRequest{Strategy: domain.LoginUsernamePassword, Username: creds.Username, Password: creds.Password}, true
	case creds.Email != "" && !creds.Password.IsZero():
		return ports.LoginRequest{Strategy: domain.LoginEmailPassword, Email: creds.Email, Password: creds.Password}, true
	default:
		return ports.LoginRequest{}, false
	}
}
