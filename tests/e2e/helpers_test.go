//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/storylingo-backend/internal/adapter/cache"
	"github.com/heartmarshall/storylingo-backend/internal/adapter/postgres"
	deckrepo "github.com/heartmarshall/storylingo-backend/internal/adapter/postgres/deck"
	settingrepo "github.com/heartmarshall/storylingo-backend/internal/adapter/postgres/setting"
	storyrepo "github.com/heartmarshall/storylingo-backend/internal/adapter/postgres/story"
	"github.com/heartmarshall/storylingo-backend/internal/adapter/postgres/testhelper"
	vocabrepo "github.com/heartmarshall/storylingo-backend/internal/adapter/postgres/vocab"
	"github.com/heartmarshall/storylingo-backend/internal/adapter/provider/article"
	"github.com/heartmarshall/storylingo-backend/internal/adapter/provider/freedict"
	"github.com/heartmarshall/storylingo-backend/internal/adapter/provider/llm"
	"github.com/heartmarshall/storylingo-backend/internal/config"
	"github.com/heartmarshall/storylingo-backend/internal/domain"
	"github.com/heartmarshall/storylingo-backend/internal/reader"
	"github.com/heartmarshall/storylingo-backend/internal/service/deck"
	"github.com/heartmarshall/storylingo-backend/internal/service/lookup"
	"github.com/heartmarshall/storylingo-backend/internal/service/settings"
	"github.com/heartmarshall/storylingo-backend/internal/service/story"
	"github.com/heartmarshall/storylingo-backend/internal/service/translation"
	"github.com/heartmarshall/storylingo-backend/internal/transport/middleware"
	"github.com/heartmarshall/storylingo-backend/internal/transport/rest"
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	LLM    *fakeLLM
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// ---------------------------------------------------------------------------
// Fake upstreams
// ---------------------------------------------------------------------------

const storyContent = "Mina walked into the small cafe near the station. " +
	"She ordered a warm tea and sat by the window. " +
	"Rain tapped softly on the glass while people hurried past with umbrellas. " +
	"A friendly waiter asked if she wanted cake. " +
	"She smiled and said yes, because rainy days always felt better with something sweet. " +
	"Later her friend Joon arrived, shaking water from his coat and laughing."

// fakeLLM is an OpenAI-compatible chat completions server that answers by
// the kind of request it recognizes in the system prompt.
type fakeLLM struct {
	srv          *httptest.Server
	translations atomic.Int32
	status       atomic.Int32
}

func newFakeLLM(t *testing.T) *fakeLLM {
	t.Helper()

	f := &fakeLLM{}
	f.srv = httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(f.srv.Close)
	return f
}

// failWith makes every following completion fail with status.
func (f *fakeLLM) failWith(status int) { f.status.Store(int32(status)) }

func (f *fakeLLM) serve(w http.ResponseWriter, r *http.Request) {
	if status := int(f.status.Load()); status != 0 {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, `{"error":{"message":"simulated failure","type":"server_error"}}`)
		return
	}

	var req struct {
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var system string
	for _, m := range req.Messages {
		if m.Role == "system" {
			system = m.Content
		}
	}

	var content any
	switch {
	case strings.Contains(system, "creative writing assistant"):
		content = map[string]string{"title": "A Rainy Afternoon", "content": storyContent}
	case strings.Contains(system, "contemporary story setups"):
		content = map[string]any{
			"setting":              "coffee shop",
			"characterName":        "Mina",
			"additionalCharacters": []string{"Joon", "Sara"},
			"additionalContext":    "Mina is waiting for a friend on a rainy day.",
		}
	case strings.Contains(system, "language tutor"):
		content = map[string]string{"translation": "school", "partOfSpeech": "noun", "note": "학교 + 에 (location particle)"}
	case strings.Contains(system, "professional translator"):
		f.translations.Add(1)
		content = map[string]string{"translation": "I went to school."}
	default:
		http.Error(w, "unexpected prompt", http.StatusBadRequest)
		return
	}

	text, _ := json.Marshal(content)
	resp := map[string]any{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"created": time.Now().Unix(),
		"model":   "test-model",
		"choices": []map[string]any{{
			"index":         0,
			"message":       map[string]string{"role": "assistant", "content": string(text)},
			"finish_reason": "stop",
		}},
		"usage": map[string]int{"prompt_tokens": 10, "completion_tokens": 10, "total_tokens": 20},
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

// newFakeDictionary serves dictionaryapi.dev-shaped entries for "cat".
func newFakeDictionary(t *testing.T) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/cat") {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `[{"word":"cat","phonetic":"/kæt/","meanings":[`+
			`{"partOfSpeech":"noun","definitions":[{"definition":"A small domesticated carnivorous mammal."}]}]}]`)
	}))
	t.Cleanup(srv.Close)
	return srv
}

// newFakeArticle serves a readable article page.
func newFakeArticle(t *testing.T) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = io.WriteString(w, `<!doctype html><html><head><title>Morning Markets</title></head><body>
<nav>Home | News | About</nav>
<article><h1>Morning Markets</h1>
<p>Every morning the market opens before the sun rises. Farmers arrive with fresh vegetables and fruit from the hills.</p>
<p>Shoppers walk slowly between the stalls. They taste apples, talk about the weather and carry heavy bags home.</p>
<p>By noon the square is quiet again. Only the pigeons stay behind to look for crumbs on the warm stones.</p>
</article><footer>Copyright</footer></body></html>`)
	}))
	t.Cleanup(srv.Close)
	return srv
}

// ---------------------------------------------------------------------------
// setupTestServer bootstraps the full application stack backed by
// a real PostgreSQL container (shared via testhelper) and fake upstreams.
// ---------------------------------------------------------------------------

func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	// 1. Get pool from testcontainers-backed helper.
	pool := testhelper.SetupTestDB(t)

	// 2. Infrastructure.
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	txm := postgres.NewTxManager(pool)

	// 3. Repositories.
	stories := storyrepo.New(pool)
	decks := deckrepo.New(pool)
	vocab := vocabrepo.New(pool)
	settingStore := settingrepo.New(pool)

	// 4. External providers.
	fake := newFakeLLM(t)
	model, err := llm.New(config.LLMConfig{
		Provider: "openai",
		APIKey:   "test-key",
		Model:    "test-model",
		BaseURL:  fake.srv.URL + "/v1",
		Timeout:  5 * time.Second,
	}, logger)
	require.NoError(t, err)

	dict := freedict.NewProvider(newFakeDictionary(t).URL, 5*time.Second, logger)
	articles := article.NewFetcher(5*time.Second, logger, article.WithPrivateNetworks())

	seg, err := reader.NewSegmenter()
	require.NoError(t, err)
	annotator := reader.NewAnnotator(seg)

	// 5. Services.
	settingsSvc := settings.NewService(logger, settingStore)
	deckSvc := deck.NewService(logger, decks, vocab, txm)
	storySvc := story.NewService(logger, stories, settingsSvc, model, articles, annotator)
	translationSvc := translation.NewService(logger, model, cache.Noop{}, time.Hour)
	lookupSvc := lookup.NewDispatcher(logger, model, dict, domain.LanguageEnglish)

	// 6. HTTP.
	limiter := middleware.NewRateLimiter(time.Minute)
	t.Cleanup(limiter.Stop)

	mux := rest.NewRouter(rest.Handlers{
		Health:    rest.NewHealthHandler(pool, "e2e"),
		Story:     rest.NewStoryHandler(storySvc, logger),
		Translate: rest.NewTranslateHandler(translationSvc, logger),
		Word:      rest.NewWordHandler(lookupSvc, logger),
		Deck:      rest.NewDeckHandler(deckSvc, logger),
		Vocab:     rest.NewVocabHandler(deckSvc, logger),
		Settings:  rest.NewSettingsHandler(settingsSvc, logger),
	}, limiter.Limit(100))

	handler := middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,PUT,DELETE,OPTIONS",
			AllowedHeaders: "Content-Type,X-Request-Id",
		}),
	)(mux)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		LLM:    fake,
	}
}

// ---------------------------------------------------------------------------
// Request helpers
// ---------------------------------------------------------------------------

// doJSON sends body as JSON and decodes the response into out when out is
// not nil. It returns the status code.
func (ts *testServer) doJSON(t *testing.T, method, path string, body, out any) int {
	t.Helper()

	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ts.URL+path, r)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil && resp.StatusCode != http.StatusNoContent {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Fields  []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	} `json:"fields"`
}

type storyBody struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	Content      string  `json:"content"`
	ReadingLevel string  `json:"readingLevel"`
	WordCount    int     `json:"wordCount"`
	Language     string  `json:"language"`
	SourceURL    *string `json:"sourceUrl"`
}

type vocabBody struct {
	ID           int64   `json:"id"`
	Word         string  `json:"word"`
	Translation  string  `json:"translation"`
	PartOfSpeech string  `json:"partOfSpeech"`
	Context      *string `json:"context"`
	DeckID       int64   `json:"deckId"`
}

type deckBody struct {
	ID          int64       `json:"id"`
	Name        string      `json:"name"`
	Description *string     `json:"description"`
	Vocabulary  []vocabBody `json:"vocabulary"`
}
