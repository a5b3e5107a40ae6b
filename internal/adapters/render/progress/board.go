package progress

import "github.com/norman-ai/norman-cli/internal/domain"

// Board folds a run's progress events into the latest state of each stage.
type Board struct {
	Operation domain.Operation
	EntityIDs []string
	AccountID domain.AccountID

	stages   []domain.Stage
	statuses map[domain.Stage]domain.StageStatus
	flags    []domain.StatusFlag
	polls    int
}

func NewBoard() *Board {
	return &Board{statuses: map[domain.Stage]domain.StageStatus{}}
}

func (b *Board) Apply(event domain.ProgressEvent) {
	if b.statuses == nil {
		b.statuses = map[domain.Stage]domain.StageStatus{}
	}
	if event.Operation != "" {
		b.Operation = event.Operation
	}
	if len(event.EntityIDs) > 0 {
		b.EntityIDs = event.EntityIDs
	}
	if event.AccountID != "" {
		b.AccountID = event.AccountID
	}

	if _, seen := b.statuses[event.Stage]; !seen {
		b.stages = append(b.stages, event.Stage)
	}
	if event.IsFlagEvent() {
		b.flags = event.Flags
		b.polls++
		// A flag snapshot never moves a finished stage back to waiting.
		if b.statuses[event.Stage] == domain.StatusFinished {
			return
		}
	}
	b.statuses[event.Stage] = event.Status
}

func (b *Board) Stages() []domain.Stage {
	return b.stages
}

func (b *Board) Status(stage domain.Stage) domain.StageStatus {
	return b.statuses[stage]
}

func (b *Board) Flags() []domain.StatusFlag {
	return b.flags
}

func (b *Board) Polls() int {
	return b.polls
}

// FlagCounts tallies the latest flag snapshot by value.
func (b *Board) FlagCounts() map[domain.FlagValue]int {
	counts := map[domain.FlagValue]int{}
	for _, flag := range b.flags {
		counts[flag.Value]++
	}
	return counts
}
