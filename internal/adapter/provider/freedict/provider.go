// Package freedict looks English words up in the FreeDictionary API
// (dictionaryapi.dev).
package freedict

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/heartmarshall/storylingo-backend/internal/domain"
	"github.com/heartmarshall/storylingo-backend/internal/provider"
)

const retryDelay = 500 * time.Millisecond

// Provider fetches dictionary data from the FreeDictionary API.
type Provider struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// NewProvider creates a Provider for baseURL, e.g.
// https://api.dictionaryapi.dev/api/v2/entries/en.
func NewProvider(baseURL string, timeout time.Duration, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "freedict"),
	}
}

// Lookup fetches the dictionary entry for word.
// Returns nil, nil if the word is not in the dictionary (HTTP 404).
func (p *Provider) Lookup(ctx context.Context, word string) (*provider.DictionaryResult, error) {
	reqURL := p.baseURL + "/" + url.PathEscape(strings.ToLower(word))

	p.log.DebugContext(ctx, "freedict request", slog.String("word", word))

	resp, err := p.doWithRetry(ctx, reqURL, word)
	if err != nil {
		p.log.ErrorContext(ctx, "freedict request failed", slog.String("word", word), slog.String("error", err.Error()))
		return nil, fmt.Errorf("freedict: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("freedict: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("freedict: read body: %w", err)
	}

	var entries []apiEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("freedict: decode json: %w", err)
	}

	result := mapAPIResponse(entries)

	p.log.DebugContext(ctx, "freedict response",
		slog.String("word", word),
		slog.Int("senses", len(result.Senses)),
	)

	return result, nil
}

// doWithRetry executes a GET with a single retry on 5xx or network errors.
func (p *Provider) doWithRetry(ctx context.Context, reqURL, word string) (*http.Response, error) {
	var (
		resp *http.Response
		err  error
	)
	for attempt := 0; attempt < 2; attempt++ {
		if attempt > 0 {
			reason := "network error"
			if err == nil {
				reason = fmt.Sprintf("status %d", resp.StatusCode)
				resp.Body.Close()
			}
			p.log.WarnContext(ctx, "freedict retry", slog.String("word", word), slog.String("reason", reason))

			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(retryDelay):
			}
		}

		req, reqErr := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
		if reqErr != nil {
			return nil, fmt.Errorf("create request: %w", reqErr)
		}
		req.Header.Set("Accept", "application/json")

		resp, err = p.httpClient.Do(req)
		if err == nil && resp.StatusCode < 500 {
			return resp, nil
		}
		if ctx.Err() != nil {
			break
		}
	}
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// mapAPIResponse merges the API entries into a DictionaryResult: senses are
// concatenated in order and the first non-empty phonetic wins.
func mapAPIResponse(entries []apiEntry) *provider.DictionaryResult {
	result := &provider.DictionaryResult{Senses: []provider.SenseResult{}}
	if len(entries) == 0 {
		return result
	}

	result.Word = entries[0].Word

	for _, entry := range entries {
		if result.Phonetic == nil {
			result.Phonetic = firstPhonetic(entry)
		}
		for _, meaning := range entry.Meanings {
			pos := domain.ParsePartOfSpeech(meaning.PartOfSpeech)
			for _, def := range meaning.Definitions {
				sense := provider.SenseResult{
					Definition:   strings.TrimSpace(def.Definition),
					PartOfSpeech: pos,
				}
				if def.Example != "" {
					ex := def.Example
					sense.Example = &ex
				}
				result.Senses = append(result.Senses, sense)
			}
		}
	}

	return result
}

func firstPhonetic(e apiEntry) *string {
	if e.Phonetic != "" {
		ph := e.Phonetic
		return &ph
	}
	for _, ph := range e.Phonetics {
		if ph.Text != "" {
			text := ph.Text
			return &text
		}
	}
	return nil
}
