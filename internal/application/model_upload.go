package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/norman-ai/norman-cli/internal/domain"
	"github.com/sirupsen/logrus"
)

var ErrModelNotCreated = errors.New("failed to create model")

// UploadModel creates the model described by config, uploads its assets and
// waits until the platform has processed both.
func (c *Client) UploadModel(ctx context.Context, config ModelConfig, bus *ProgressBus) (domain.Model, error) {
	config.applyDefaults()
	if err := config.Validate(); err != nil {
		return domain.Model{}, err
	}
	items, err := config.TransferItems()
	if err != nil {
		return domain.Model{}, err
	}

	session, err := c.authorized(ctx)
	if err != nil {
		return domain.Model{}, err
	}
	accountID := session.Account.ID
	progress := &stageEmitter{bus: bus, operation: domain.OperationModelUpload, accountID: accountID}
	log := c.log.WithFields(logrus.Fields{"model": config.Name, "account_id": accountID})

	progress.stage(ctx, domain.StageModelUpload, domain.StatusStarting)
	created, err := c.entities.CreateModels(ctx, session.Token, []domain.Model{config.ToModel(accountID)})
	if err != nil {
		return domain.Model{}, fmt.Errorf("create model %q: %w", config.Name, err)
	}
	model, ok := pickCreatedModel(created, config.Name)
	if !ok {
		return domain.Model{}, fmt.Errorf("%w %q", ErrModelNotCreated, config.Name)
	}
	progress.entityIDs = []string{model.ID}
	log = log.WithField("model_id", model.ID)
	log.Debug("model created")
	progress.stage(ctx, domain.StageModelUpload, domain.StatusWaiting)

	progress.stage(ctx, domain.StageInputsUpload, domain.StatusStarting)
	if err := c.transfers.UploadAll(ctx, domain.AssetTargets(model), items); err != nil {
		return domain.Model{}, err
	}
	progress.stage(ctx, domain.StageInputsUpload, domain.StatusFinished)

	progress.stage(ctx, domain.StageFlags, domain.StatusStarting)
	err = c.poller.AwaitCompletion(ctx, PollRequest{
		Operation: domain.OperationModelUpload,
		Queries: []FlagQuery{
			{Category: domain.FlagCategoryModel, EntityIDs: []string{model.ID}},
			{Category: domain.FlagCategoryAsset, EntityIDs: model.AssetIDs()},
		},
		Interval: c.modelInterval,
		Timeout:  c.pollTimeout,
		Emit:     func(flags []domain.StatusFlag) { progress.flags(ctx, flags) },
	})
	if err != nil {
		return domain.Model{}, err
	}
	progress.stage(ctx, domain.StageFlags, domain.StatusFinished)

	progress.stage(ctx, domain.StageModelUpload, domain.StatusFinished)
	log.Info("model uploaded")

	return model, nil
}

func pickCreatedModel(created map[string]domain.Model, name string) (domain.Model, bool) {
	if model, ok := created[name]; ok {
		return model, true
	}
	for _, model := range created {
		return model, true
	}
	return domain.Model{}, false
}
