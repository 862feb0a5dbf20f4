package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/storylingo-backend/internal/domain"
	"github.com/heartmarshall/storylingo-backend/internal/reader"
	"github.com/heartmarshall/storylingo-backend/internal/service/story"
)

// storyService defines the minimal interface needed by StoryHandler.
type storyService interface {
	Generate(ctx context.Context, input story.GenerateInput) (*domain.GeneratedStory, error)
	SuggestForm(ctx context.Context) (*domain.FormSuggestion, error)
	Save(ctx context.Context, input story.SaveInput) (*domain.Story, error)
	List(ctx context.Context) ([]domain.Story, error)
	Get(ctx context.Context, id int64) (*domain.Story, error)
	Annotate(ctx context.Context, input story.AnnotateInput) (*story.AnnotatedStory, error)
	Import(ctx context.Context, input story.ImportInput) (*domain.Story, error)
}

const generateFailed = "Failed to generate story"

// StoryHandler serves story generation and library endpoints.
type StoryHandler struct {
	svc storyService
	log *slog.Logger
}

// NewStoryHandler creates a StoryHandler.
func NewStoryHandler(svc storyService, logger *slog.Logger) *StoryHandler {
	return &StoryHandler{svc: svc, log: logger.With("handler", "story")}
}

type generateRequest struct {
	Setting              string `json:"setting"`
	CharacterName        string `json:"characterName"`
	AdditionalCharacters string `json:"additionalCharacters"`
	ReadingLevel         string `json:"readingLevel"`
	WordCount            int    `json:"wordCount"`
	AdditionalContext    string `json:"additionalContext"`
	Language             string `json:"language"`
}

type saveStoryRequest struct {
	Title        string `json:"title"`
	Content      string `json:"content"`
	ReadingLevel string `json:"readingLevel"`
	WordCount    int    `json:"wordCount"`
	Language     string `json:"language"`
}

type importStoryRequest struct {
	URL          string `json:"url"`
	ReadingLevel string `json:"readingLevel"`
	Language     string `json:"language"`
}

type storyResponse struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	ReadingLevel string    `json:"readingLevel"`
	WordCount    int       `json:"wordCount"`
	Language     string    `json:"language"`
	SourceURL    *string   `json:"sourceUrl,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

type annotatedStoryResponse struct {
	Story     storyResponse     `json:"story"`
	Mode      string            `json:"mode"`
	Title     []reader.Token    `json:"title"`
	Sentences []reader.Sentence `json:"sentences"`
}

// Generate handles POST /api/generate.
func (h *StoryHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	generated, err := h.svc.Generate(r.Context(), story.GenerateInput{
		Setting:              req.Setting,
		CharacterName:        req.CharacterName,
		AdditionalCharacters: req.AdditionalCharacters,
		ReadingLevel:         req.ReadingLevel,
		WordCount:            req.WordCount,
		AdditionalContext:    req.AdditionalContext,
		Language:             req.Language,
	})
	if err != nil {
		handleError(w, r, h.log, err, generateFailed)
		return
	}

	writeJSON(w, http.StatusOK, generated)
}

// SuggestForm handles POST /api/generate-form.
func (h *StoryHandler) SuggestForm(w http.ResponseWriter, r *http.Request) {
	form, err := h.svc.SuggestForm(r.Context())
	if err != nil {
		handleError(w, r, h.log, err, "Failed to generate form data")
		return
	}

	writeJSON(w, http.StatusOK, form)
}

// Save handles POST /api/stories.
func (h *StoryHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req saveStoryRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	saved, err := h.svc.Save(r.Context(), story.SaveInput{
		Title:        req.Title,
		Content:      req.Content,
		ReadingLevel: req.ReadingLevel,
		WordCount:    req.WordCount,
		Language:     req.Language,
	})
	if err != nil {
		handleError(w, r, h.log, err, "")
		return
	}

	writeJSON(w, http.StatusCreated, toStoryResponse(saved))
}

// List handles GET /api/stories.
func (h *StoryHandler) List(w http.ResponseWriter, r *http.Request) {
	stories, err := h.svc.List(r.Context())
	if err != nil {
		handleError(w, r, h.log, err, "")
		return
	}

	resp := make([]storyResponse, len(stories))
	for i := range stories {
		resp[i] = toStoryResponse(&stories[i])
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /api/stories/{id}.
func (h *StoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	s, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err, "")
		return
	}

	writeJSON(w, http.StatusOK, toStoryResponse(s))
}

// Tokens handles GET /api/stories/{id}/tokens?mode=.
func (h *StoryHandler) Tokens(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	annotated, err := h.svc.Annotate(r.Context(), story.AnnotateInput{
		ID:   id,
		Mode: r.URL.Query().Get("mode"),
	})
	if err != nil {
		handleError(w, r, h.log, err, "")
		return
	}

	writeJSON(w, http.StatusOK, annotatedStoryResponse{
		Story:     toStoryResponse(annotated.Story),
		Mode:      string(annotated.Mode),
		Title:     nonNil(annotated.Title),
		Sentences: nonNil(annotated.Sentences),
	})
}

// Import handles POST /api/stories/import.
func (h *StoryHandler) Import(w http.ResponseWriter, r *http.Request) {
	var req importStoryRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	saved, err := h.svc.Import(r.Context(), story.ImportInput{
		URL:          req.URL,
		ReadingLevel: req.ReadingLevel,
		Language:     req.Language,
	})
	if err != nil {
		handleError(w, r, h.log, err, "Failed to import article")
		return
	}

	writeJSON(w, http.StatusCreated, toStoryResponse(saved))
}

func toStoryResponse(s *domain.Story) storyResponse {
	return storyResponse{
		ID:           s.ID,
		Title:        s.Title,
		Content:      s.Content,
		ReadingLevel: s.ReadingLevel.String(),
		WordCount:    s.WordCount,
		Language:     s.Language.String(),
		SourceURL:    s.SourceURL,
		CreatedAt:    s.CreatedAt,
	}
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
