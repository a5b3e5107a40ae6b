package application

import (
	"github.com/norman-ai/norman-cli/internal/domain"
)

type ProfileStatus struct {
	Profile     domain.Profile
	HasPassword bool
	HasAPIKey   bool
}
