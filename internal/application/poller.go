package application

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/norman-ai/norman-cli/internal/domain"
	"github.com/norman-ai/norman-cli/internal/ports"
	"github.com/sirupsen/logrus"
)

const (
	ModelPollInterval      = 5 * time.Second
	InvocationPollInterval = 1 * time.Second
	DefaultPollTimeout     = 30 * time.Minute
)

type FlagQuery struct {
	Category  domain.FlagCategory
	EntityIDs []string
	// Required entities must report at least one flag on every poll.
	Required bool
}

// PollRequest describes one wait. Both the deadline and the pause between
// polls are measured on the poller's clock.
type PollRequest struct {
	Operation domain.Operation
	Queries   []FlagQuery
	Interval  time.Duration
	Timeout   time.Duration
	// Emit receives every snapshot before it is judged.
	Emit func(flags []domain.StatusFlag)
}

type ConvergencePoller struct {
	tokens  TokenSource
	store   ports.EntityStore
	clock   ports.Clock
	metrics ports.TransferMetrics
	log     logrus.FieldLogger
}

func NewConvergencePoller(tokens TokenSource, store ports.EntityStore, clock ports.Clock, metrics ports.TransferMetrics, log logrus.FieldLogger) *ConvergencePoller {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if metrics == nil {
		metrics = ports.NopMetrics{}
	}
	if log == nil {
		log = logrus.StandardLogger()
	}

	return &ConvergencePoller{
		tokens:  tokens,
		store:   store,
		clock:   clock,
		metrics: metrics,
		log:     log,
	}
}

// AwaitCompletion polls every query until all flags are Finished. The first
// Error flag ends the wait with a *domain.RemoteProcessingError, and a required
// entity without flags ends it with domain.ErrNoFlagsFound.
func (p *ConvergencePoller) AwaitCompletion(ctx context.Context, req PollRequest) error {
	if req.Interval <= 0 || req.Timeout <= 0 {
		return &domain.ValidationError{Fields: []string{"interval", "timeout"}, Reason: "poll interval and timeout must be positive"}
	}

	deadline := p.clock.Now().Add(req.Timeout)
	for tick := 1; ; tick++ {
		flags, err := p.fetch(ctx, req.Queries)
		if err != nil {
			return err
		}
		p.metrics.ObservePoll(req.Operation, flags)
		p.log.WithFields(logrus.Fields{
			"operation": req.Operation,
			"tick":      tick,
			"flags":     len(flags),
		}).Debug("polled status flags")

		if req.Emit != nil {
			req.Emit(flags)
		}

		if failed := domain.FailedFlags(flags); len(failed) > 0 {
			return &domain.RemoteProcessingError{Flags: failed}
		}
		if domain.AllFinished(flags) {
			return nil
		}

		if p.clock.Now().Add(req.Interval).After(deadline) {
			return fmt.Errorf("%s after %s: %w", req.Operation, req.Timeout, domain.ErrPollTimeout)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-p.clock.After(req.Interval):
		}
	}
}

func (p *ConvergencePoller) fetch(ctx context.Context, queries []FlagQuery) ([]domain.StatusFlag, error) {
	token, err := p.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	results := make([][]domain.StatusFlag, len(queries))
	errs := make([]error, len(queries))
	var wg sync.WaitGroup
	for i, query := range queries {
		i, query := i, query
		wg.Add(1)
		go func() {
			defer wg.Done()
			byEntity, err := p.store.QueryStatusFlags(ctx, token, query.Category, query.EntityIDs)
			if err != nil {
				errs[i] = fmt.Errorf("query %s: %w", query.Category, err)
				return
			}
			if query.Required {
				if missing := entitiesWithoutFlags(query.EntityIDs, byEntity); len(missing) > 0 {
					errs[i] = fmt.Errorf("%s flags for %s: %w", query.Category, strings.Join(missing, ", "), domain.ErrNoFlagsFound)
					return
				}
			}
			results[i] = flattenFlags(query.EntityIDs, byEntity)
		}()
	}
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	var flags []domain.StatusFlag
	for _, result := range results {
		flags = append(flags, result...)
	}

	return flags, nil
}

func entitiesWithoutFlags(entityIDs []string, byEntity map[string][]domain.StatusFlag) []string {
	var missing []string
	for _, id := range entityIDs {
		if len(byEntity[id]) == 0 {
			missing = append(missing, id)
		}
	}
	return missing
}

// flattenFlags orders flags by the requested entity ids, then by any extra
// entity the store returned.
func flattenFlags(entityIDs []string, byEntity map[string][]domain.StatusFlag) []domain.StatusFlag {
	seen := make(map[string]struct{}, len(byEntity))
	var flags []domain.StatusFlag
	for _, id := range entityIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		flags = append(flags, byEntity[id]...)
	}

	var extra []string
	for id := range byEntity {
		if _, ok := seen[id]; !ok {
			extra = append(extra, id)
		}
	}
	sort.Strings(extra)
	for _, id := range extra {
		flags = append(flags, byEntity[id]...)
	}

	return flags
}
