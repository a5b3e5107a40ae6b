package application

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/norman-ai/norman-cli/internal/domain"
	"github.com/norman-ai/norman-cli/internal/ports"
	"github.com/norman-ai/norman-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// scriptedFlagStore answers each category with the next scripted snapshot and
// repeats the last one once the script runs out.
type scriptedFlagStore struct {
	mu      sync.Mutex
	scripts map[domain.FlagCategory][]map[string][]domain.StatusFlag
	calls   map[domain.FlagCategory]int
	err     error
}

var _ ports.EntityStore = (*scriptedFlagStore)(nil)

func newScriptedFlagStore() *scriptedFlagStore {
	return &scriptedFlagStore{
		scripts: map[domain.FlagCategory][]map[string][]domain.StatusFlag{},
		calls:   map[domain.FlagCategory]int{},
	}
}

func (s *scriptedFlagStore) script(category domain.FlagCategory, snapshots ...map[string][]domain.StatusFlag) {
	s.scripts[category] = snapshots
}

func (s *scriptedFlagStore) CreateModels(context.Context, domain.Secret, []domain.Model) (map[string]domain.Model, error) {
	return nil, errors.New("not scripted")
}

func (s *scriptedFlagStore) CreateInvocations(context.Context, domain.Secret, map[string]int) ([]domain.Invocation, error) {
	return nil, errors.New("not scripted")
}

func (s *scriptedFlagStore) QueryStatusFlags(_ context.Context, _ domain.Secret, category domain.FlagCategory, _ []string) (map[string][]domain.StatusFlag, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.err != nil {
		return nil, s.err
	}
	script := s.scripts[category]
	call := s.calls[category]
	s.calls[category]++
	if len(script) == 0 {
		return map[string][]domain.StatusFlag{}, nil
	}
	if call >= len(script) {
		call = len(script) - 1
	}
	return script[call], nil
}

func (s *scriptedFlagStore) callCount(category domain.FlagCategory) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[category]
}

func flag(entity string, value domain.FlagValue) domain.StatusFlag {
	return domain.StatusFlag{EntityID: entity, Name: "status", Value: value}
}

func modelQueries() []FlagQuery {
	return []FlagQuery{
		{Category: domain.FlagCategoryModel, EntityIDs: []string{"m-1"}},
		{Category: domain.FlagCategoryAsset, EntityIDs: []string{"a-1", "a-2"}},
	}
}

func newTestPoller(store ports.EntityStore) *ConvergencePoller {
	return NewConvergencePoller(staticTokens{token: "tok"}, store, nil, nil, quietLogger())
}

func TestConvergencePollerSucceedsWhenAllFinished(t *testing.T) {
	t.Parallel()

	store := newScriptedFlagStore()
	store.script(domain.FlagCategoryModel,
		map[string][]domain.StatusFlag{"m-1": {flag("m-1", domain.FlagRunning)}},
		map[string][]domain.StatusFlag{"m-1": {flag("m-1", domain.FlagFinished)}},
	)
	store.script(domain.FlagCategoryAsset,
		map[string][]domain.StatusFlag{"a-2": {flag("a-2", domain.FlagFinished)}, "a-1": {flag("a-1", domain.FlagFinished)}},
	)

	var snapshots [][]domain.StatusFlag
	err := newTestPoller(store).AwaitCompletion(context.Background(), PollRequest{
		Queries:  modelQueries(),
		Interval: time.Millisecond,
		Timeout:  time.Second,
		Emit:     func(flags []domain.StatusFlag) { snapshots = append(snapshots, flags) },
	})
	require.NoError(t, err)

	require.Len(t, snapshots, 2)
	assert.Equal(t, []domain.StatusFlag{
		flag("m-1", domain.FlagRunning),
		flag("a-1", domain.FlagFinished),
		flag("a-2", domain.FlagFinished),
	}, snapshots[0])
	assert.Equal(t, 2, store.callCount(domain.FlagCategoryAsset))
}

func TestConvergencePollerFailsFastOnErrorFlag(t *testing.T) {
	t.Parallel()

	store := newScriptedFlagStore()
	store.script(domain.FlagCategoryModel, map[string][]domain.StatusFlag{"m-1": {flag("m-1", domain.FlagFinished)}})
	store.script(domain.FlagCategoryAsset, map[string][]domain.StatusFlag{
		"a-1": {flag("a-1", domain.FlagFinished)},
		"a-2": {flag("a-2", domain.FlagError)},
	})

	err := newTestPoller(store).AwaitCompletion(context.Background(), PollRequest{
		Queries:  modelQueries(),
		Interval: time.Hour,
		Timeout:  2 * time.Hour,
	})

	var remote *domain.RemoteProcessingError
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, []domain.StatusFlag{flag("a-2", domain.FlagError)}, remote.Flags)
	assert.ErrorIs(t, err, domain.ErrRemoteProcessingFailed)
	assert.Equal(t, 1, store.callCount(domain.FlagCategoryModel))
}

func TestConvergencePollerKeepsWaitingWhileRunning(t *testing.T) {
	t.Parallel()

	store := newScriptedFlagStore()
	store.script(domain.FlagCategoryModel, map[string][]domain.StatusFlag{"m-1": {flag("m-1", domain.FlagRunning)}})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var ticks int
	err := newTestPoller(store).AwaitCompletion(ctx, PollRequest{
		Queries:  modelQueries(),
		Interval: time.Millisecond,
		Timeout:  time.Minute,
		Emit: func(flags []domain.StatusFlag) {
			ticks++
			if ticks == 5 {
				cancel()
			}
		},
	})

	require.ErrorIs(t, err, context.Canceled)
	assert.GreaterOrEqual(t, ticks, 5)
}

func TestConvergencePollerTimesOut(t *testing.T) {
	t.Parallel()

	store := newScriptedFlagStore()
	store.script(domain.FlagCategoryModel, map[string][]domain.StatusFlag{"m-1": {flag("m-1", domain.FlagPending)}})

	err := newTestPoller(store).AwaitCompletion(context.Background(), PollRequest{
		Operation: domain.OperationModelUpload,
		Queries:   modelQueries(),
		Interval:  5 * time.Millisecond,
		Timeout:   20 * time.Millisecond,
	})
	require.ErrorIs(t, err, domain.ErrPollTimeout)
}

func TestConvergencePollerRequiresFlagsForRequiredQuery(t *testing.T) {
	t.Parallel()

	store := newScriptedFlagStore()

	err := newTestPoller(store).AwaitCompletion(context.Background(), PollRequest{
		Queries:  []FlagQuery{{Category: domain.FlagCategoryInvocation, EntityIDs: []string{"inv-1"}, Required: true}},
		Interval: time.Millisecond,
		Timeout:  time.Second,
	})
	require.ErrorIs(t, err, domain.ErrNoFlagsFound)
	assert.Contains(t, err.Error(), "inv-1")

	err = newTestPoller(store).AwaitCompletion(context.Background(), PollRequest{
		Queries:  []FlagQuery{{Category: domain.FlagCategoryInvocation, EntityIDs: []string{"inv-1"}}},
		Interval: time.Millisecond,
		Timeout:  time.Second,
	})
	require.NoError(t, err)
}

func TestConvergencePollerRequiredQueryIgnoresOtherCategories(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockEntityStore(t)
	store.EXPECT().
		QueryStatusFlags(mock.Anything, mock.Anything, domain.FlagCategoryInvocation, []string{"inv-1"}).
		Return(map[string][]domain.StatusFlag{}, nil).
		Once()
	store.EXPECT().
		QueryStatusFlags(mock.Anything, mock.Anything, domain.FlagCategoryInput, []string{"in-1"}).
		Return(map[string][]domain.StatusFlag{"in-1": {flag("in-1", domain.FlagFinished)}}, nil).
		Once()

	err := newTestPoller(store).AwaitCompletion(context.Background(), PollRequest{
		Operation: domain.OperationInvocation,
		Queries: []FlagQuery{
			{Category: domain.FlagCategoryInvocation, EntityIDs: []string{"inv-1"}, Required: true},
			{Category: domain.FlagCategoryInput, EntityIDs: []string{"in-1"}},
		},
		Interval: time.Millisecond,
		Timeout:  time.Second,
	})
	require.ErrorIs(t, err, domain.ErrNoFlagsFound)
}

func TestConvergencePollerRequiredQueryNamesEveryMissingEntity(t *testing.T) {
	t.Parallel()

	store := newScriptedFlagStore()
	store.script(domain.FlagCategoryAsset, map[string][]domain.StatusFlag{"a-1": {flag("a-1", domain.FlagFinished)}})

	err := newTestPoller(store).AwaitCompletion(context.Background(), PollRequest{
		Queries:  []FlagQuery{{Category: domain.FlagCategoryAsset, EntityIDs: []string{"a-1", "a-2", "a-3"}, Required: true}},
		Interval: time.Millisecond,
		Timeout:  time.Second,
	})
	require.ErrorIs(t, err, domain.ErrNoFlagsFound)
	assert.Contains(t, err.Error(), "a-2, a-3")
	assert.NotContains(t, err.Error(), "a-1")
}

func TestConvergencePollerWaitsOnItsClock(t *testing.T) {
	t.Parallel()

	ticks := make(chan time.Time, 1)
	ticks <- testNow.Add(5 * time.Minute)

	clock := mocks.NewMockClock(t)
	clock.EXPECT().Now().Return(testNow)
	clock.EXPECT().After(5 * time.Minute).Return(ticks).Once()

	store := mocks.NewMockEntityStore(t)
	store.EXPECT().
		QueryStatusFlags(mock.Anything, mock.Anything, domain.FlagCategoryModel, []string{"m-1"}).
		Return(map[string][]domain.StatusFlag{"m-1": {flag("m-1", domain.FlagRunning)}}, nil).
		Once()
	store.EXPECT().
		QueryStatusFlags(mock.Anything, mock.Anything, domain.FlagCategoryModel, []string{"m-1"}).
		Return(map[string][]domain.StatusFlag{"m-1": {flag("m-1", domain.FlagFinished)}}, nil).
		Once()

	poller := NewConvergencePoller(staticTokens{token: "tok"}, store, clock, nil, quietLogger())
	err := poller.AwaitCompletion(context.Background(), PollRequest{
		Operation: domain.OperationModelUpload,
		Queries:   []FlagQuery{{Category: domain.FlagCategoryModel, EntityIDs: []string{"m-1"}}},
		Interval:  5 * time.Minute,
		Timeout:   time.Hour,
	})
	require.NoError(t, err)
}

func TestConvergencePollerValidatesRequest(t *testing.T) {
	t.Parallel()

	err := newTestPoller(newScriptedFlagStore()).AwaitCompletion(context.Background(), PollRequest{Interval: time.Second})
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestConvergencePollerPropagatesQueryErrors(t *testing.T) {
	t.Parallel()

	store := newScriptedFlagStore()
	store.err = errors.New("backend down")

	err := newTestPoller(store).AwaitCompletion(context.Background(), PollRequest{
		Queries:  modelQueries(),
		Interval: time.Millisecond,
		Timeout:  time.Second,
	})
	require.ErrorIs(t, err, store.err)
}
