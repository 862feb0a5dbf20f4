package story

import (
	"context"
	"sync"

	"github.com/heartmarshall/storylingo-backend/internal/adapter/provider/llm"
	"github.com/heartmarshall/storylingo-backend/internal/domain"
)

type storyRepoMock struct {
	CreateFunc  func(ctx context.Context, s *domain.Story) (*domain.Story, error)
	GetByIDFunc func(ctx context.Context, id int64) (*domain.Story, error)
	ListFunc    func(ctx context.Context) ([]domain.Story, error)

	mu          sync.Mutex
	createCalls []*domain.Story
}

func (m *storyRepoMock) Create(ctx context.Context, s *domain.Story) (*domain.Story, error) {
	m.mu.Lock()
	m.createCalls = append(m.createCalls, s)
	m.mu.Unlock()
	return m.CreateFunc(ctx, s)
}

func (m *storyRepoMock) GetByID(ctx context.Context, id int64) (*domain.Story, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *storyRepoMock) List(ctx context.Context) ([]domain.Story, error) {
	return m.ListFunc(ctx)
}

func (m *storyRepoMock) CreateCalls() []*domain.Story {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.createCalls
}

type settingsReaderMock struct {
	GetStoryLanguageFunc func(ctx context.Context) (domain.Language, error)
}

func (m *settingsReaderMock) GetStoryLanguage(ctx context.Context) (domain.Language, error) {
	return m.GetStoryLanguageFunc(ctx)
}

type completerMock struct {
	CompleteFunc func(ctx context.Context, req llm.Request) (string, error)

	mu    sync.Mutex
	calls []llm.Request
}

func (m *completerMock) Complete(ctx context.Context, req llm.Request) (string, error) {
	m.mu.Lock()
	m.calls = append(m.calls, req)
	m.mu.Unlock()
	return m.CompleteFunc(ctx, req)
}

func (m *completerMock) CompleteCalls() []llm.Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

type articleFetcherMock struct {
	FetchFunc func(ctx context.Context, rawURL string) (*domain.Article, error)
}

func (m *articleFetcherMock) Fetch(ctx context.Context, rawURL string) (*domain.Article, error) {
	return m.FetchFunc(ctx, rawURL)
}
