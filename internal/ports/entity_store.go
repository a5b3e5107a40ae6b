package ports

import (
	"context"

	"github.com/norman-ai/norman-cli/internal/domain"
)

type EntityStore interface {
	CreateModels(ctx context.Context, token domain.Secret, models []domain.Model) (map[string]domain.Model, error)
	CreateInvocations(ctx context.Context, token domain.Secret, counts map[string]int) ([]domain.Invocation, error)
	QueryStatusFlags(ctx context.Context, token domain.Secret, category domain.FlagCategory, entityIDs []string) (map[string][]domain.StatusFlag, error)
}
