package deck

import (
	"context"
	"sync"

	"github.com/heartmarshall/storylingo-backend/internal/domain"
)

type deckRepoMock struct {
	CreateFunc func(ctx context.Context, name string, description *string) (*domain.Deck, error)
	ListFunc   func(ctx context.Context) ([]domain.Deck, error)
	DeleteFunc func(ctx context.Context, id int64) error

	mu          sync.Mutex
	createCalls []string
	deleteCalls []int64
}

func (m *deckRepoMock) Create(ctx context.Context, name string, description *string) (*domain.Deck, error) {
	m.mu.Lock()
	m.createCalls = append(m.createCalls, name)
	m.mu.Unlock()
	return m.CreateFunc(ctx, name, description)
}

func (m *deckRepoMock) List(ctx context.Context) ([]domain.Deck, error) {
	return m.ListFunc(ctx)
}

func (m *deckRepoMock) Delete(ctx context.Context, id int64) error {
	m.mu.Lock()
	m.deleteCalls = append(m.deleteCalls, id)
	m.mu.Unlock()
	return m.DeleteFunc(ctx, id)
}

func (m *deckRepoMock) CreateCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.createCalls
}

func (m *deckRepoMock) DeleteCalls() []int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.deleteCalls
}

type vocabRepoMock struct {
	CreateFunc        func(ctx context.Context, e *domain.VocabEntry) (*domain.VocabEntry, error)
	ListFunc          func(ctx context.Context, f domain.VocabFilter) ([]domain.VocabEntry, error)
	ListByDeckIDsFunc func(ctx context.Context, deckIDs []int64) (map[int64][]domain.VocabEntry, error)
	UpdateFunc        func(ctx context.Context, id int64, patch domain.VocabPatch) (*domain.VocabEntry, error)
	DeleteFunc        func(ctx context.Context, id int64) error

	mu          sync.Mutex
	createCalls []*domain.VocabEntry
	updateCalls []domain.VocabPatch
}

func (m *vocabRepoMock) Create(ctx context.Context, e *domain.VocabEntry) (*domain.VocabEntry, error) {
	m.mu.Lock()
	m.createCalls = append(m.createCalls, e)
	m.mu.Unlock()
	return m.CreateFunc(ctx, e)
}

func (m *vocabRepoMock) List(ctx context.Context, f domain.VocabFilter) ([]domain.VocabEntry, error) {
	return m.ListFunc(ctx, f)
}

func (m *vocabRepoMock) ListByDeckIDs(ctx context.Context, deckIDs []int64) (map[int64][]domain.VocabEntry, error) {
	return m.ListByDeckIDsFunc(ctx, deckIDs)
}

func (m *vocabRepoMock) Update(ctx context.Context, id int64, patch domain.VocabPatch) (*domain.VocabEntry, error) {
	m.mu.Lock()
	m.updateCalls = append(m.updateCalls, patch)
	m.mu.Unlock()
	return m.UpdateFunc(ctx, id, patch)
}

func (m *vocabRepoMock) Delete(ctx context.Context, id int64) error {
	return m.DeleteFunc(ctx, id)
}

func (m *vocabRepoMock) CreateCalls() []*domain.VocabEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.createCalls
}

func (m *vocabRepoMock) UpdateCalls() []domain.VocabPatch {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.updateCalls
}

type txManagerMock struct {
	RunInSnapshotFunc func(ctx context.Context, fn func(context.Context) error) error
}

func (m *txManagerMock) RunInSnapshot(ctx context.Context, fn func(context.Context) error) error {
	return m.RunInSnapshotFunc(ctx, fn)
}
