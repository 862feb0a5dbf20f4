package translation

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/storylingo-backend/internal/domain"
)

const maxSentenceLength = 5000

// TranslateInput holds the parameters for translating one sentence.
type TranslateInput struct {
	Sentence string
	// TargetLanguage defaults to English when empty.
	TargetLanguage string
}

// Validate checks all fields and collects all errors.
func (i TranslateInput) Validate() error {
	var errs []domain.FieldError

	sentence := strings.TrimSpace(i.Sentence)
	if sentence == "" {
		errs = append(errs, domain.FieldError{Field: "sentence", Message: "required"})
	}
	if utf8.RuneCountInString(sentence) > maxSentenceLength {
		errs = append(errs, domain.FieldError{Field: "sentence", Message: "max 5000 characters"})
	}
	if strings.TrimSpace(i.TargetLanguage) != "" {
		if _, ok := domain.ParseLanguage(i.TargetLanguage); !ok {
			errs = append(errs, domain.FieldError{Field: "targetLanguage", Message: "unsupported language"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i TranslateInput) language() domain.Language {
	if lang, ok := domain.ParseLanguage(i.TargetLanguage); ok {
		return lang
	}
	return domain.DefaultLanguage
}
