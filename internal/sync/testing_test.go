package sync

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/keptn-contrib/gh-label-sync/internal/label"
)

// mockLabelService is a testify mock of the GitHub label service.
type mockLabelService struct {
	mock.Mock
}

func (m *mockLabelService) ListLabels(ctx context.Context, owner, repo string) ([]label.Label, error) {
	args := m.Called(ctx, owner, repo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]label.Label), args.Error(1)
}

func (m *mockLabelService) CreateLabel(ctx context.Context, owner, repo string, l label.Label) error {
	args := m.Called(ctx, owner, repo, l)
	return args.Error(0)
}

func (m *mockLabelService) UpdateLabel(ctx context.Context, owner, repo, currentName string, l label.Label) error {
	args := m.Called(ctx, owner, repo, currentName, l)
	return args.Error(0)
}

// recordingLabelService records the kind of every mutation in submission
// order, for asserting that updates settle before creates start.
type recordingLabelService struct {
	mu     sync.Mutex
	events []string
	fail   map[string]error
}

func newRecordingLabelService() *recordingLabelService {
	return &recordingLabelService{fail: make(map[string]error)}
}

func (s *recordingLabelService) record(event string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
}

func (s *recordingLabelService) Events() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.events))
	copy(out, s.events)
	return out
}

func (s *recordingLabelService) ListLabels(ctx context.Context, owner, repo string) ([]label.Label, error) {
	s.record("list")
	return nil, s.fail["list"]
}

func (s *recordingLabelService) CreateLabel(ctx context.Context, owner, repo string, l label.Label) error {
	s.record("create:" + l.Name)
	return s.fail["create:"+l.Name]
}

func (s *recordingLabelService) UpdateLabel(ctx context.Context, owner, repo, currentName string, l label.Label) error {
	s.record("update:" + currentName)
	return s.fail["update:"+currentName]
}

// recordingAction remembers which plans it was applied to.
type recordingAction struct {
	mu    sync.Mutex
	plans []*label.SyncPlan
	err   error
}

func (a *recordingAction) Apply(ctx context.Context, plan *label.SyncPlan) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.plans = append(a.plans, plan)
	return a.err
}

func (a *recordingAction) Plans() []*label.SyncPlan {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]*label.SyncPlan, len(a.plans))
	copy(out, a.plans)
	return out
}

func requireEventIndex(t *testing.T, events []string, event string) int {
	t.Helper()
	for i, e := range events {
		if e == event {
			return i
		}
	}
	t.Fatalf("event %q not found in %v", event, events)
	return -1
}
