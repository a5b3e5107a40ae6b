package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version  int             `toml:"version"`
	Profiles []profileSchema `toml:"profiles"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported profiles schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type profileSchema struct {
	Name       string        `toml:"name"`
	AccountID  string        `toml:"account_id,omitempty"`
	Username   string        `toml:"username,omitempty"`
	Email      string        `toml:"email,omitempty"`
	APIBaseURL string        `toml:"api_base_url,omitempty"`
	Secrets    secretsSchema `toml:"secrets"`
}

type secretsSchema struct {
	PasswordRef string `toml:"password_ref,omitempty"`
	APIKeyRef   string `toml:"api_key_ref,omitempty"`
}
