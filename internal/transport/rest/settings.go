package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/storylingo-backend/internal/domain"
)

// settingsService defines the minimal interface needed by SettingsHandler.
type settingsService interface {
	GetStoryLanguage(ctx context.Context) (domain.Language, error)
	SetStoryLanguage(ctx context.Context, lang string) (domain.Language, error)
	All(ctx context.Context) (map[string]string, error)
}

// SettingsHandler serves user settings.
type SettingsHandler struct {
	svc settingsService
	log *slog.Logger
}

// NewSettingsHandler creates a SettingsHandler.
func NewSettingsHandler(svc settingsService, logger *slog.Logger) *SettingsHandler {
	return &SettingsHandler{svc: svc, log: logger.With("handler", "settings")}
}

type settingsResponse struct {
	StoryLanguage string            `json:"storyLanguage"`
	Languages     []string          `json:"languages"`
	Values        map[string]string `json:"values"`
}

type setLanguageRequest struct {
	Language string `json:"language"`
}

type languageResponse struct {
	StoryLanguage string `json:"storyLanguage"`
}

// Get handles GET /api/settings.
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	lang, err := h.svc.GetStoryLanguage(r.Context())
	if err != nil {
		handleError(w, r, h.log, err, "")
		return
	}
	values, err := h.svc.All(r.Context())
	if err != nil {
		handleError(w, r, h.log, err, "")
		return
	}

	languages := make([]string, len(domain.Languages))
	for i, l := range domain.Languages {
		languages[i] = l.String()
	}

	writeJSON(w, http.StatusOK, settingsResponse{
		StoryLanguage: lang.String(),
		Languages:     languages,
		Values:        values,
	})
}

// SetLanguage handles PUT /api/settings/language.
func (h *SettingsHandler) SetLanguage(w http.ResponseWriter, r *http.Request) {
	var req setLanguageRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	lang, err := h.svc.SetStoryLanguage(r.Context(), req.Language)
	if err != nil {
		handleError(w, r, h.log, err, "")
		return
	}

	writeJSON(w, http.StatusOK, languageResponse{StoryLanguage: lang.String()})
}
