package rest

import "net/http"

// Handlers groups every REST handler mounted by NewRouter.
type Handlers struct {
	Health    *HealthHandler
	Story     *StoryHandler
	Translate *TranslateHandler
	Word      *WordHandler
	Deck      *DeckHandler
	Vocab     *VocabHandler
	Settings  *SettingsHandler
}

// NewRouter registers all routes. limitAI wraps the story generation
// endpoints, which are the expensive LLM calls.
func NewRouter(h Handlers, limitAI func(http.Handler) http.Handler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.Handle("POST /api/generate", limitAI(http.HandlerFunc(h.Story.Generate)))
	mux.Handle("POST /api/generate-form", limitAI(http.HandlerFunc(h.Story.SuggestForm)))

	mux.HandleFunc("POST /api/translate", h.Translate.Translate)
	mux.HandleFunc("POST /api/word-info", h.Word.Lookup)

	mux.HandleFunc("POST /api/stories", h.Story.Save)
	mux.HandleFunc("GET /api/stories", h.Story.List)
	mux.HandleFunc("GET /api/stories/{id}", h.Story.Get)
	mux.HandleFunc("GET /api/stories/{id}/tokens", h.Story.Tokens)
	mux.HandleFunc("POST /api/stories/import", h.Story.Import)

	mux.HandleFunc("POST /api/decks", h.Deck.Create)
	mux.HandleFunc("GET /api/decks", h.Deck.List)
	mux.HandleFunc("DELETE /api/decks/{id}", h.Deck.Delete)

	mux.HandleFunc("POST /api/vocabulary", h.Vocab.Create)
	mux.HandleFunc("GET /api/vocabulary", h.Vocab.List)
	mux.HandleFunc("PUT /api/vocabulary/{id}", h.Vocab.Update)
	mux.HandleFunc("DELETE /api/vocabulary/{id}", h.Vocab.Delete)

	mux.HandleFunc("GET /api/settings", h.Settings.Get)
	mux.HandleFunc("PUT /api/settings/language", h.Settings.SetLanguage)

	return mux
}
