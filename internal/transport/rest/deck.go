package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/storylingo-backend/internal/domain"
	"github.com/heartmarshall/storylingo-backend/internal/service/deck"
)

// deckService defines the minimal interface needed by DeckHandler and VocabHandler.
type deckService interface {
	CreateDeck(ctx context.Context, input deck.CreateDeckInput) (*domain.Deck, error)
	ListDecks(ctx context.Context) ([]domain.Deck, error)
	DeleteDeck(ctx context.Context, id int64) error
	CreateVocabEntry(ctx context.Context, input deck.CreateVocabInput) (*domain.VocabEntry, error)
	ListVocabulary(ctx context.Context, filter domain.VocabFilter) ([]domain.VocabEntry, error)
	UpdateVocabEntry(ctx context.Context, input deck.UpdateVocabInput) (*domain.VocabEntry, error)
	DeleteVocabEntry(ctx context.Context, id int64) error
}

// DeckHandler serves deck endpoints.
type DeckHandler struct {
	svc deckService
	log *slog.Logger
}

// NewDeckHandler creates a DeckHandler.
func NewDeckHandler(svc deckService, logger *slog.Logger) *DeckHandler {
	return &DeckHandler{svc: svc, log: logger.With("handler", "deck")}
}

type createDeckRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

type deckResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description *string         `json:"description"`
	CreatedAt   time.Time       `json:"createdAt"`
	Vocabulary  []vocabResponse `json:"vocabulary"`
}

// Create handles POST /api/decks.
func (h *DeckHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createDeckRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	d, err := h.svc.CreateDeck(r.Context(), deck.CreateDeckInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		handleError(w, r, h.log, err, "")
		return
	}

	writeJSON(w, http.StatusCreated, toDeckResponse(d))
}

// List handles GET /api/decks.
func (h *DeckHandler) List(w http.ResponseWriter, r *http.Request) {
	decks, err := h.svc.ListDecks(r.Context())
	if err != nil {
		handleError(w, r, h.log, err, "")
		return
	}

	resp := make([]deckResponse, len(decks))
	for i := range decks {
		resp[i] = toDeckResponse(&decks[i])
	}
	writeJSON(w, http.StatusOK, resp)
}

// Delete handles DELETE /api/decks/{id}.
func (h *DeckHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeleteDeck(r.Context(), id); err != nil {
		handleError(w, r, h.log, err, "")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toDeckResponse(d *domain.Deck) deckResponse {
	vocab := make([]vocabResponse, len(d.Vocabulary))
	for i := range d.Vocabulary {
		vocab[i] = toVocabResponse(&d.Vocabulary[i])
	}
	return deckResponse{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		CreatedAt:   d.CreatedAt,
		Vocabulary:  vocab,
	}
}

// VocabHandler serves vocabulary endpoints.
type VocabHandler struct {
	svc deckService
	log *slog.Logger
}

// NewVocabHandler creates a VocabHandler.
func NewVocabHandler(svc deckService, logger *slog.Logger) *VocabHandler {
	return &VocabHandler{svc: svc, log: logger.With("handler", "vocabulary")}
}

type createVocabRequest struct {
	Word         string  `json:"word"`
	Translation  string  `json:"translation"`
	PartOfSpeech string  `json:"partOfSpeech"`
	Context      *string `json:"context"`
	DeckID       int64   `json:"deckId"`
}

type updateVocabRequest struct {
	Word         *string `json:"word"`
	Translation  *string `json:"translation"`
	PartOfSpeech *string `json:"partOfSpeech"`
	Context      *string `json:"context"`
	DeckID       *int64  `json:"deckId"`
}

type vocabResponse struct {
	ID           int64     `json:"id"`
	Word         string    `json:"word"`
	Translation  string    `json:"translation"`
	PartOfSpeech string    `json:"partOfSpeech"`
	Context      *string   `json:"context"`
	DeckID       int64     `json:"deckId"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Create handles POST /api/vocabulary.
func (h *VocabHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createVocabRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	entry, err := h.svc.CreateVocabEntry(r.Context(), deck.CreateVocabInput{
		Word:         req.Word,
		Translation:  req.Translation,
		PartOfSpeech: req.PartOfSpeech,
		Context:      req.Context,
		DeckID:       req.DeckID,
	})
	if err != nil {
		handleError(w, r, h.log, err, "")
		return
	}

	writeJSON(w, http.StatusCreated, toVocabResponse(entry))
}

// List handles GET /api/vocabulary?deckId=.
func (h *VocabHandler) List(w http.ResponseWriter, r *http.Request) {
	var filter domain.VocabFilter
	if raw := r.URL.Query().Get("deckId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			writeError(w, http.StatusBadRequest, "invalid_request", "invalid deckId")
			return
		}
		filter.DeckID = &id
	}

	entries, err := h.svc.ListVocabulary(r.Context(), filter)
	if err != nil {
		handleError(w, r, h.log, err, "")
		return
	}

	resp := make([]vocabResponse, len(entries))
	for i := range entries {
		resp[i] = toVocabResponse(&entries[i])
	}
	writeJSON(w, http.StatusOK, resp)
}

// Update handles PUT /api/vocabulary/{id}.
func (h *VocabHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req updateVocabRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	entry, err := h.svc.UpdateVocabEntry(r.Context(), deck.UpdateVocabInput{
		ID:           id,
		Word:         req.Word,
		Translation:  req.Translation,
		PartOfSpeech: req.PartOfSpeech,
		Context:      req.Context,
		DeckID:       req.DeckID,
	})
	if err != nil {
		handleError(w, r, h.log, err, "")
		return
	}

	writeJSON(w, http.StatusOK, toVocabResponse(entry))
}

// Delete handles DELETE /api/vocabulary/{id}.
func (h *VocabHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeleteVocabEntry(r.Context(), id); err != nil {
		handleError(w, r, h.log, err, "")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toVocabResponse(e *domain.VocabEntry) vocabResponse {
	return vocabResponse{
		ID:           e.ID,
		Word:         e.Word,
		Translation:  e.Translation,
		PartOfSpeech: e.PartOfSpeech.String(),
		Context:      e.Context,
		DeckID:       e.DeckID,
		CreatedAt:    e.CreatedAt,
	}
}
