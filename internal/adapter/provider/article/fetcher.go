// Package article downloads a web page and extracts its readable text with
// go-readability.
package article

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/netip"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/go-shiori/go-readability"

	"github.com/heartmarshall/storylingo-backend/internal/domain"
)

// maxBodySize caps the downloaded HTML.
const maxBodySize = 10 * 1024 * 1024

var (
	reRT = regexp.MustCompile(`(?si)<rt\b[^>]*>.*?</rt>`)
	reRP = regexp.MustCompile(`(?si)<rp\b[^>]*>.*?</rp>`)
)

// Fetcher downloads articles over HTTP.
type Fetcher struct {
	httpClient   *http.Client
	allowPrivate bool
	log          *slog.Logger
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithPrivateNetworks lets the Fetcher reach loopback and private hosts.
// Only tests and local development should use it.
func WithPrivateNetworks() Option {
	return func(f *Fetcher) { f.allowPrivate = true }
}

// NewFetcher creates a Fetcher with the given request timeout. By default it
// refuses URLs that resolve to non-public addresses.
func NewFetcher(timeout time.Duration, logger *slog.Logger, opts ...Option) *Fetcher {
	f := &Fetcher{log: logger.With("adapter", "article")}
	for _, opt := range opts {
		opt(f)
	}
	f.httpClient = newHTTPClient(timeout, f.allowPrivate)
	return f
}

// Fetch downloads rawURL and returns its title and plain-text content.
// Invalid URLs, non-public hosts and pages with no readable text are
// validation errors; transport failures wrap domain.ErrUpstream.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*domain.Article, error) {
	parsed, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return nil, domain.NewValidationError("url", "must be an absolute http(s) URL")
	}
	if !f.allowPrivate {
		if addr, err := netip.ParseAddr(parsed.Hostname()); err == nil && !isPublicAddr(addr) {
			return nil, domain.NewValidationError("url", "host is not publicly reachable")
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, parsed.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("article: create request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; storylingo/1.0)")
	req.Header.Set("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, errBlockedAddress) {
			f.log.WarnContext(ctx, "article fetch blocked", slog.String("url", parsed.String()))
			return nil, domain.NewValidationError("url", "host is not publicly reachable")
		}
		f.log.WarnContext(ctx, "article fetch failed", slog.String("url", parsed.String()), slog.String("error", err.Error()))
		return nil, fmt.Errorf("article: %w: %v", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("article: %w: status %d", domain.ErrUpstream, resp.StatusCode)
	}
	if resp.ContentLength > maxBodySize {
		return nil, domain.NewValidationError("url", "page is too large")
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize+1))
	if err != nil {
		return nil, fmt.Errorf("article: read body: %w", err)
	}
	if len(body) > maxBodySize {
		return nil, domain.NewValidationError("url", "page is too large")
	}

	parsedArticle, err := readability.FromReader(bytes.NewReader(sanitizeRuby(body)), parsed)
	if err != nil {
		return nil, fmt.Errorf("article: extract: %w", err)
	}

	content := domain.CleanText(parsedArticle.TextContent)
	if content == "" {
		return nil, domain.NewValidationError("url", "no readable text found")
	}

	title := strings.TrimSpace(parsedArticle.Title)
	if title == "" {
		title = parsed.Host
	}

	f.log.InfoContext(ctx, "article extracted",
		slog.String("url", parsed.String()),
		slog.Int("chars", len(content)),
	)

	return &domain.Article{Title: title, Content: content, URL: parsed.String()}, nil
}

// sanitizeRuby drops furigana (<rt>, <rp>) so readings are not duplicated
// into the extracted text.
func sanitizeRuby(content []byte) []byte {
	cleaned := reRT.ReplaceAll(content, nil)
	return reRP.ReplaceAll(cleaned, nil)
}
