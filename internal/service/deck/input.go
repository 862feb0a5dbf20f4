package deck

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/storylingo-backend/internal/domain"
)

const (
	maxNameLength        = 100
	maxDescriptionLength = 500
	maxWordLength        = 200
	maxTranslationLength = 1000
	maxContextLength     = 2000
)

// CreateDeckInput holds the parameters for creating a deck.
type CreateDeckInput struct {
	Name        string
	Description *string
}

// Validate checks all fields and collects all errors.
func (i CreateDeckInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 100 characters"})
	}
	if i.Description != nil && utf8.RuneCountInString(strings.TrimSpace(*i.Description)) > maxDescriptionLength {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 500 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CreateVocabInput holds the parameters for saving a word into a deck.
type CreateVocabInput struct {
	Word         string
	Translation  string
	PartOfSpeech string
	Context      *string
	DeckID       int64
}

// Validate checks all fields and collects all errors.
func (i CreateVocabInput) Validate() error {
	var errs []domain.FieldError

	errs = appendText(errs, "word", i.Word, maxWordLength)
	errs = appendText(errs, "translation", i.Translation, maxTranslationLength)

	if strings.TrimSpace(i.PartOfSpeech) == "" {
		errs = append(errs, domain.FieldError{Field: "partOfSpeech", Message: "required"})
	} else if !domain.PartOfSpeech(strings.ToLower(strings.TrimSpace(i.PartOfSpeech))).IsValid() {
		errs = append(errs, domain.FieldError{Field: "partOfSpeech", Message: "invalid value"})
	}
	if i.Context != nil && utf8.RuneCountInString(*i.Context) > maxContextLength {
		errs = append(errs, domain.FieldError{Field: "context", Message: "max 2000 characters"})
	}
	if i.DeckID <= 0 {
		errs = append(errs, domain.FieldError{Field: "deckId", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateVocabInput holds the parameters for a partial vocabulary update.
type UpdateVocabInput struct {
	ID           int64
	Word         *string
	Translation  *string
	PartOfSpeech *string
	Context      *string // nil = don't change; ptr("") = clear
	DeckID       *int64
}

// Validate checks all fields and collects all errors.
func (i UpdateVocabInput) Validate() error {
	var errs []domain.FieldError

	if i.ID <= 0 {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Word == nil && i.Translation == nil && i.PartOfSpeech == nil && i.Context == nil && i.DeckID == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Word != nil {
		errs = appendText(errs, "word", *i.Word, maxWordLength)
	}
	if i.Translation != nil {
		errs = appendText(errs, "translation", *i.Translation, maxTranslationLength)
	}
	if i.PartOfSpeech != nil && !domain.PartOfSpeech(strings.ToLower(strings.TrimSpace(*i.PartOfSpeech))).IsValid() {
		errs = append(errs, domain.FieldError{Field: "partOfSpeech", Message: "invalid value"})
	}
	if i.Context != nil && utf8.RuneCountInString(*i.Context) > maxContextLength {
		errs = append(errs, domain.FieldError{Field: "context", Message: "max 2000 characters"})
	}
	if i.DeckID != nil && *i.DeckID <= 0 {
		errs = append(errs, domain.FieldError{Field: "deckId", Message: "invalid value"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func appendText(errs []domain.FieldError, field, value string, limit int) []domain.FieldError {
	value = strings.TrimSpace(value)
	if value == "" {
		return append(errs, domain.FieldError{Field: field, Message: "required"})
	}
	if utf8.RuneCountInString(value) > limit {
		return append(errs, domain.FieldError{Field: field, Message: "too long"})
	}
	return errs
}
