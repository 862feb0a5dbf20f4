package story

import (
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/storylingo-backend/internal/domain"
	"github.com/heartmarshall/storylingo-backend/internal/reader"
)

const (
	MinWordCount = 50
	MaxWordCount = 500

	maxTitleLength = 200
	maxFieldLength = 500
)

// GenerateInput holds the story form parameters.
type GenerateInput struct {
	Setting              string
	CharacterName        string
	AdditionalCharacters string
	ReadingLevel         string
	WordCount            int
	AdditionalContext    string
	// Language defaults to the stored story language.
	Language string
}

// Validate checks all fields and collects all errors.
func (i GenerateInput) Validate() error {
	var errs []domain.FieldError

	setting := strings.TrimSpace(i.Setting)
	if utf8.RuneCountInString(setting) < 2 {
		errs = append(errs, domain.FieldError{Field: "setting", Message: "must be at least 2 characters"})
	}
	if utf8.RuneCountInString(setting) > maxFieldLength {
		errs = append(errs, domain.FieldError{Field: "setting", Message: "max 500 characters"})
	}
	if strings.TrimSpace(i.CharacterName) == "" {
		errs = append(errs, domain.FieldError{Field: "characterName", Message: "required"})
	}
	if utf8.RuneCountInString(i.AdditionalCharacters) > maxFieldLength {
		errs = append(errs, domain.FieldError{Field: "additionalCharacters", Message: "max 500 characters"})
	}
	if utf8.RuneCountInString(i.AdditionalContext) > maxFieldLength*4 {
		errs = append(errs, domain.FieldError{Field: "additionalContext", Message: "max 2000 characters"})
	}
	errs = appendReadingLevel(errs, i.ReadingLevel)
	if i.WordCount < MinWordCount || i.WordCount > MaxWordCount {
		errs = append(errs, domain.FieldError{Field: "wordCount", Message: "must be between 50 and 500"})
	}
	errs = appendLanguage(errs, i.Language)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SaveInput holds the parameters for saving a generated story.
type SaveInput struct {
	Title        string
	Content      string
	ReadingLevel string
	// WordCount is computed from Content when zero.
	WordCount int
	Language  string
}

// Validate checks all fields and collects all errors.
func (i SaveInput) Validate() error {
	var errs []domain.FieldError

	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if utf8.RuneCountInString(title) > maxTitleLength {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}
	if strings.TrimSpace(i.Content) == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	}
	errs = appendReadingLevel(errs, i.ReadingLevel)
	if i.WordCount < 0 {
		errs = append(errs, domain.FieldError{Field: "wordCount", Message: "must not be negative"})
	}
	errs = appendLanguage(errs, i.Language)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ImportInput holds the parameters for importing a web article as a story.
type ImportInput struct {
	URL          string
	ReadingLevel string
	Language     string
}

// Validate checks all fields and collects all errors.
func (i ImportInput) Validate() error {
	var errs []domain.FieldError

	raw := strings.TrimSpace(i.URL)
	if raw == "" {
		errs = append(errs, domain.FieldError{Field: "url", Message: "required"})
	} else if u, err := url.ParseRequestURI(raw); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errs = append(errs, domain.FieldError{Field: "url", Message: "must be an http(s) URL"})
	}
	errs = appendReadingLevel(errs, i.ReadingLevel)
	errs = appendLanguage(errs, i.Language)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// AnnotateInput selects a story and, optionally, the tokenization mode.
type AnnotateInput struct {
	ID   int64
	Mode string
}

// Validate checks all fields and collects all errors.
func (i AnnotateInput) Validate() error {
	var errs []domain.FieldError
	if i.ID <= 0 {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Mode != "" && !reader.Mode(i.Mode).IsValid() {
		errs = append(errs, domain.FieldError{Field: "mode", Message: "must be one of words, characters, morphological"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func appendReadingLevel(errs []domain.FieldError, level string) []domain.FieldError {
	if strings.TrimSpace(level) == "" {
		return append(errs, domain.FieldError{Field: "readingLevel", Message: "required"})
	}
	if !domain.ParseReadingLevel(level).IsValid() {
		return append(errs, domain.FieldError{Field: "readingLevel", Message: "must be one of A1, A2, B1, B2, C1, C2"})
	}
	return errs
}

func appendLanguage(errs []domain.FieldError, lang string) []domain.FieldError {
	if strings.TrimSpace(lang) == "" {
		return errs
	}
	if _, ok := domain.ParseLanguage(lang); !ok {
		return append(errs, domain.FieldError{Field: "language", Message: "unsupported language"})
	}
	return errs
}
