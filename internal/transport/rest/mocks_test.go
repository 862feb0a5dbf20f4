package rest

import (
	"context"

	"github.com/heartmarshall/storylingo-backend/internal/domain"
	"github.com/heartmarshall/storylingo-backend/internal/service/deck"
	"github.com/heartmarshall/storylingo-backend/internal/service/story"
	"github.com/heartmarshall/storylingo-backend/internal/service/translation"
)

type storyServiceMock struct {
	GenerateFunc    func(ctx context.Context, input story.GenerateInput) (*domain.GeneratedStory, error)
	SuggestFormFunc func(ctx context.Context) (*domain.FormSuggestion, error)
	SaveFunc        func(ctx context.Context, input story.SaveInput) (*domain.Story, error)
	ListFunc        func(ctx context.Context) ([]domain.Story, error)
	GetFunc         func(ctx context.Context, id int64) (*domain.Story, error)
	AnnotateFunc    func(ctx context.Context, input story.AnnotateInput) (*story.AnnotatedStory, error)
	ImportFunc      func(ctx context.Context, input story.ImportInput) (*domain.Story, error)
}

func (m *storyServiceMock) Generate(ctx context.Context, input story.GenerateInput) (*domain.GeneratedStory, error) {
	return m.GenerateFunc(ctx, input)
}

func (m *storyServiceMock) SuggestForm(ctx context.Context) (*domain.FormSuggestion, error) {
	return m.SuggestFormFunc(ctx)
}

func (m *storyServiceMock) Save(ctx context.Context, input story.SaveInput) (*domain.Story, error) {
	return m.SaveFunc(ctx, input)
}

func (m *storyServiceMock) List(ctx context.Context) ([]domain.Story, error) {
	return m.ListFunc(ctx)
}

func (m *storyServiceMock) Get(ctx context.Context, id int64) (*domain.Story, error) {
	return m.GetFunc(ctx, id)
}

func (m *storyServiceMock) Annotate(ctx context.Context, input story.AnnotateInput) (*story.AnnotatedStory, error) {
	return m.AnnotateFunc(ctx, input)
}

func (m *storyServiceMock) Import(ctx context.Context, input story.ImportInput) (*domain.Story, error) {
	return m.ImportFunc(ctx, input)
}

type translationServiceMock struct {
	TranslateFunc func(ctx context.Context, input translation.TranslateInput) (string, error)
}

func (m *translationServiceMock) Translate(ctx context.Context, input translation.TranslateInput) (string, error) {
	return m.TranslateFunc(ctx, input)
}

type deckServiceMock struct {
	CreateDeckFunc       func(ctx context.Context, input deck.CreateDeckInput) (*domain.Deck, error)
	ListDecksFunc        func(ctx context.Context) ([]domain.Deck, error)
	DeleteDeckFunc       func(ctx context.Context, id int64) error
	CreateVocabEntryFunc func(ctx context.Context, input deck.CreateVocabInput) (*domain.VocabEntry, error)
	ListVocabularyFunc   func(ctx context.Context, filter domain.VocabFilter) ([]domain.VocabEntry, error)
	UpdateVocabEntryFunc func(ctx context.Context, input deck.UpdateVocabInput) (*domain.VocabEntry, error)
	DeleteVocabEntryFunc func(ctx context.Context, id int64) error
}

func (m *deckServiceMock) CreateDeck(ctx context.Context, input deck.CreateDeckInput) (*domain.Deck, error) {
	return m.CreateDeckFunc(ctx, input)
}

func (m *deckServiceMock) ListDecks(ctx context.Context) ([]domain.Deck, error) {
	return m.ListDecksFunc(ctx)
}

func (m *deckServiceMock) DeleteDeck(ctx context.Context, id int64) error {
	return m.DeleteDeckFunc(ctx, id)
}

func (m *deckServiceMock) CreateVocabEntry(ctx context.Context, input deck.CreateVocabInput) (*domain.VocabEntry, error) {
	return m.CreateVocabEntryFunc(ctx, input)
}

func (m *deckServiceMock) ListVocabulary(ctx context.Context, filter domain.VocabFilter) ([]domain.VocabEntry, error) {
	return m.ListVocabularyFunc(ctx, filter)
}

func (m *deckServiceMock) UpdateVocabEntry(ctx context.Context, input deck.UpdateVocabInput) (*domain.VocabEntry, error) {
	return m.UpdateVocabEntryFunc(ctx, input)
}

func (m *deckServiceMock) DeleteVocabEntry(ctx context.Context, id int64) error {
	return m.DeleteVocabEntryFunc(ctx, id)
}

type settingsServiceMock struct {
	GetStoryLanguageFunc func(ctx context.Context) (domain.Language, error)
	SetStoryLanguageFunc func(ctx context.Context, lang string) (domain.Language, error)
	AllFunc              func(ctx context.Context) (map[string]string, error)
}

func (m *settingsServiceMock) GetStoryLanguage(ctx context.Context) (domain.Language, error) {
	return m.GetStoryLanguageFunc(ctx)
}

func (m *settingsServiceMock) SetStoryLanguage(ctx context.Context, lang string) (domain.Language, error) {
	return m.SetStoryLanguageFunc(ctx, lang)
}

func (m *settingsServiceMock) All(ctx context.Context) (map[string]string, error) {
	return m.AllFunc(ctx)
}
