package application

import (
	"context"

	"github.com/norman-ai/norman-cli/internal/domain"
)

// ProgressBus delivers progress events to one consumer. A nil bus, or a bus
// without a consumer, drops events.
type ProgressBus struct {
	events chan<- domain.ProgressEvent
	fn     func(domain.ProgressEvent)
}

// NewProgressBus sends every event on events. Emit blocks until the event is
// received or the context ends.
func NewProgressBus(events chan<- domain.ProgressEvent) *ProgressBus {
	return &ProgressBus{events: events}
}

// ProgressFunc calls fn synchronously for every event.
func ProgressFunc(fn func(domain.ProgressEvent)) *ProgressBus {
	return &ProgressBus{fn: fn}
}

func (b *ProgressBus) Emit(ctx context.Context, event domain.ProgressEvent) {
	if b == nil {
		return
	}
	if b.fn != nil {
		b.fn(event)
		return
	}
	if b.events == nil {
		return
	}

	select {
	case b.events <- event:
	case <-ctx.Done():
	}
}

// stageEmitter stamps the operation, entities and account onto every event of
// one driver run.
type stageEmitter struct {
	bus       *ProgressBus
	operation domain.Operation
	entityIDs []string
	accountID domain.AccountID
}

func (e *stageEmitter) stage(ctx context.Context, stage domain.Stage, status domain.StageStatus) {
	e.bus.Emit(ctx, domain.ProgressEvent{
		Operation: e.operation,
		EntityIDs: e.entityIDs,
		AccountID: e.accountID,
		Stage:     stage,
		Status:    status,
	})
}

func (e *stageEmitter) flags(ctx context.Context, flags []domain.StatusFlag) {
	if flags == nil {
		flags = []domain.StatusFlag{}
	}
	e.bus.Emit(ctx, domain.ProgressEvent{
		Operation: e.operation,
		EntityIDs: e.entityIDs,
		AccountID: e.accountID,
		Stage:     domain.StageFlags,
		Status:    domain.StatusWaiting,
		Flags:     flags,
	})
}
