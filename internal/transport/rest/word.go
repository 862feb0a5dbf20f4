package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/storylingo-backend/internal/domain"
)

// wordLookup defines the minimal interface needed by WordHandler.
type wordLookup interface {
	Lookup(ctx context.Context, word, sentence string) (*domain.WordInfo, error)
}

// WordHandler serves word lookups for clicked tokens.
type WordHandler struct {
	svc wordLookup
	log *slog.Logger
}

// NewWordHandler creates a WordHandler.
func NewWordHandler(svc wordLookup, logger *slog.Logger) *WordHandler {
	return &WordHandler{svc: svc, log: logger.With("handler", "word")}
}

type wordInfoRequest struct {
	Word    string `json:"word"`
	Context string `json:"context"`
}

type wordInfoResponse struct {
	Word         string  `json:"word"`
	Translation  string  `json:"translation"`
	PartOfSpeech string  `json:"partOfSpeech"`
	Context      string  `json:"context"`
	Note         *string `json:"note,omitempty"`
	Strategy     string  `json:"strategy"`
}

// Lookup handles POST /api/word-info.
func (h *WordHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	var req wordInfoRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	info, err := h.svc.Lookup(r.Context(), req.Word, req.Context)
	if err != nil {
		handleError(w, r, h.log, err, domain.ErrLookupFailed.Error())
		return
	}

	writeJSON(w, http.StatusOK, wordInfoResponse{
		Word:         info.Word,
		Translation:  info.Translation,
		PartOfSpeech: info.PartOfSpeech.String(),
		Context:      info.Context,
		Note:         info.Note,
		Strategy:     info.Strategy.String(),
	})
}
