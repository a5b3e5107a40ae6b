package rest

import (
	"context"

	"github.com/norman-ai/norman-cli/internal/domain"
	"github.com/norman-ai/norman-cli/internal/ports"
)

const entityIDColumn = "Entity_ID"

type EntityStore struct {
	client *Client
}

func NewEntityStore(client *Client) *EntityStore {
	return &EntityStore{client: client}
}

var _ ports.EntityStore = (*EntityStore)(nil)

func (s *EntityStore) CreateModels(ctx context.Context, token domain.Secret, models []domain.Model) (map[string]domain.Model, error) {
	created := map[string]domain.Model{}
	if err := s.client.post(ctx, token, routeCreateModels, nil, models, &created); err != nil {
		return nil, err
	}

	return created, nil
}

func (s *EntityStore) CreateInvocations(ctx context.Context, token domain.Secret, counts map[string]int) ([]domain.Invocation, error) {
	var created []domain.Invocation
	if err := s.client.post(ctx, token, routeCreateInvocations, nil, counts, &created); err != nil {
		return nil, err
	}

	return created, nil
}

type flagQuery struct {
	Category domain.FlagCategory `json:"category"`
	Column   string              `json:"column"`
	Values   []string            `json:"values"`
}

func (s *EntityStore) QueryStatusFlags(ctx context.Context, token domain.Secret, category domain.FlagCategory, entityIDs []string) (map[string][]domain.StatusFlag, error) {
	query := flagQuery{Category: category, Column: entityIDColumn, Values: entityIDs}

	flags := map[string][]domain.StatusFlag{}
	if err := s.client.post(ctx, token, routeStatusFlags, nil, query, &flags); err != nil {
		return nil, err
	}

	// Older platform responses omit entity_id on the flag itself.
	for id, entityFlags := range flags {
		for i := range entityFlags {
			if entityFlags[i].EntityID == "" {
				entityFlags[i].EntityID = id
			}
		}
	}

	return flags, nil
}
