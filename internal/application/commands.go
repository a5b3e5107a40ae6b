package application

import (
	"github.com/norman-ai/norman-cli/internal/domain"
)

// SaveProfileCommand updates one stored profile. Unset fields keep their
// stored value; a set but empty secret removes it.
type SaveProfileCommand struct {
	Name        string
	Credentials domain.CredentialsUpdate
	APIBaseURL  domain.Optional[string]
}
