package domain

import (
	"fmt"
	"strings"
)

const DefaultProfileName = "default"

// Profile is the persisted, non-secret half of a caller's identity. Password
// and API key live in the secret store and are referenced by key.
type Profile struct {
	Name        string
	AccountID   AccountID
	Username    string
	Email       string
	APIBaseURL  string
	PasswordRef string
	APIKeyRef   string
}

func (p Profile) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return &ValidationError{Fields: []string{"name"}}
	}
	if strings.ContainsAny(p.Name, "/\\") {
		return &ValidationError{Fields: []string{"name"}, Reason: fmt.Sprintf("profile name %q must not contain path separators", p.Name)}
	}

	return nil
}

func PasswordSecretKey(profile string) string {
	return fmt.Sprintf("norman/%s/password", profile)
}

func APIKeySecretKey(profile string) string {
	return fmt.Sprintf("norman/%s/api_key", profile)
}
