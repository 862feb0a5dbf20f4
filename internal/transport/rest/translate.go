package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/storylingo-backend/internal/service/translation"
)

// translationService defines the minimal interface needed by TranslateHandler.
type translationService interface {
	Translate(ctx context.Context, input translation.TranslateInput) (string, error)
}

// TranslateHandler serves sentence translation.
type TranslateHandler struct {
	svc translationService
	log *slog.Logger
}

// NewTranslateHandler creates a TranslateHandler.
func NewTranslateHandler(svc translationService, logger *slog.Logger) *TranslateHandler {
	return &TranslateHandler{svc: svc, log: logger.With("handler", "translate")}
}

type translateRequest struct {
	Sentence       string `json:"sentence"`
	TargetLanguage string `json:"targetLanguage"`
}

type translateResponse struct {
	Translation string `json:"translation"`
}

// Translate handles POST /api/translate.
func (h *TranslateHandler) Translate(w http.ResponseWriter, r *http.Request) {
	var req translateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	translated, err := h.svc.Translate(r.Context(), translation.TranslateInput{
		Sentence:       req.Sentence,
		TargetLanguage: req.TargetLanguage,
	})
	if err != nil {
		handleError(w, r, h.log, err, "Translation failed")
		return
	}

	writeJSON(w, http.StatusOK, translateResponse{Translation: translated})
}
