package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/norman-ai/norman-cli/internal/domain"
	"github.com/sirupsen/logrus"
)

var ErrInvocationNotCreated = errors.New("failed to create invocation")

// Invoke runs the model named by config with its inputs and returns every
// output keyed by display title.
func (c *Client) Invoke(ctx context.Context, config InvocationConfig, bus *ProgressBus) (map[string][]byte, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	items, err := config.TransferItems()
	if err != nil {
		return nil, err
	}

	session, err := c.authorized(ctx)
	if err != nil {
		return nil, err
	}
	accountID := session.Account.ID
	progress := &stageEmitter{bus: bus, operation: domain.OperationInvocation, accountID: accountID}
	log := c.log.WithFields(logrus.Fields{"model": config.ModelName, "account_id": accountID})

	progress.stage(ctx, domain.StageInvocation, domain.StatusStarting)
	invocations, err := c.entities.CreateInvocations(ctx, session.Token, map[string]int{config.ModelName: 1})
	if err != nil {
		return nil, fmt.Errorf("create invocation of %q: %w", config.ModelName, err)
	}
	if len(invocations) == 0 {
		return nil, fmt.Errorf("%w of %q", ErrInvocationNotCreated, config.ModelName)
	}
	invocation := invocations[0]
	progress.entityIDs = []string{invocation.ID}
	log = log.WithField("invocation_id", invocation.ID)
	log.Debug("invocation created")
	progress.stage(ctx, domain.StageInvocation, domain.StatusWaiting)

	progress.stage(ctx, domain.StageInputsUpload, domain.StatusStarting)
	if err := c.transfers.UploadAll(ctx, domain.InputTargets(invocation), items); err != nil {
		return nil, err
	}
	progress.stage(ctx, domain.StageInputsUpload, domain.StatusFinished)

	progress.stage(ctx, domain.StageFlags, domain.StatusStarting)
	err = c.poller.AwaitCompletion(ctx, PollRequest{
		Operation: domain.OperationInvocation,
		Queries: []FlagQuery{
			{Category: domain.FlagCategoryInvocation, EntityIDs: []string{invocation.ID}, Required: true},
			{Category: domain.FlagCategoryInput, EntityIDs: invocation.InputIDs()},
		},
		Interval: c.invocationInterval,
		Timeout:  c.pollTimeout,
		Emit:     func(flags []domain.StatusFlag) { progress.flags(ctx, flags) },
	})
	if err != nil {
		return nil, err
	}
	progress.stage(ctx, domain.StageFlags, domain.StatusFinished)

	progress.stage(ctx, domain.StageResults, domain.StatusStarting)
	results, err := c.fetchOutputs(ctx, invocation)
	if err != nil {
		return nil, err
	}
	progress.stage(ctx, domain.StageResults, domain.StatusFinished)

	progress.stage(ctx, domain.StageInvocation, domain.StatusFinished)
	log.WithField("outputs", len(results)).Info("invocation finished")

	return results, nil
}

func (c *Client) fetchOutputs(ctx context.Context, invocation domain.Invocation) (map[string][]byte, error) {
	session, err := c.authorized(ctx)
	if err != nil {
		return nil, err
	}

	payloads := make([][]byte, len(invocation.Outputs))
	errs := make([]error, len(invocation.Outputs))
	var wg sync.WaitGroup
	for i, output := range invocation.Outputs {
		i, output := i, output
		wg.Add(1)
		go func() {
			defer wg.Done()
			payloads[i], errs[i] = c.readOutput(ctx, session, invocation, output)
		}()
	}
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	results := make(map[string][]byte, len(invocation.Outputs))
	for i, output := range invocation.Outputs {
		results[output.DisplayTitle] = payloads[i]
	}

	return results, nil
}

func (c *Client) readOutput(ctx context.Context, session domain.Session, invocation domain.Invocation, output domain.InvocationSignature) ([]byte, error) {
	accountID := output.AccountID
	if accountID == "" {
		accountID = invocation.AccountID
	}
	modelID := output.ModelID
	if modelID == "" {
		modelID = invocation.ModelID
	}

	stream, err := c.outputs.StreamOutput(ctx, session.Token, accountID, modelID, invocation.ID, output.ID)
	if err != nil {
		return nil, fmt.Errorf("fetch output %q: %w", output.DisplayTitle, err)
	}
	defer stream.Close()

	payload, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("read output %q: %w", output.DisplayTitle, err)
	}

	return payload, nil
}
