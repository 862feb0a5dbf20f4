package domain

import "strings"

// ReadingLevel is a CEFR proficiency tag controlling generated-story complexity.
type ReadingLevel string

const (
	ReadingLevelA1 ReadingLevel = "A1"
	ReadingLevelA2 ReadingLevel = "A2"
	ReadingLevelB1 ReadingLevel = "B1"
	ReadingLevelB2 ReadingLevel = "B2"
	ReadingLevelC1 ReadingLevel = "C1"
	ReadingLevelC2 ReadingLevel = "C2"
)

func (l ReadingLevel) String() string { return string(l) }

func (l ReadingLevel) IsValid() bool {
	switch l {
	case ReadingLevelA1, ReadingLevelA2, ReadingLevelB1, ReadingLevelB2, ReadingLevelC1, ReadingLevelC2:
		return true
	}
	return false
}

// ParseReadingLevel accepts "b1", " B1 " and similar spellings.
func ParseReadingLevel(s string) ReadingLevel {
	return ReadingLevel(strings.ToUpper(strings.TrimSpace(s)))
}

// PartOfSpeech represents the grammatical category of a vocabulary entry.
type PartOfSpeech string

const (
	PartOfSpeechNoun         PartOfSpeech = "noun"
	PartOfSpeechVerb         PartOfSpeech = "verb"
	PartOfSpeechAdjective    PartOfSpeech = "adjective"
	PartOfSpeechAdverb       PartOfSpeech = "adverb"
	PartOfSpeechParticle     PartOfSpeech = "particle"
	PartOfSpeechPronoun      PartOfSpeech = "pronoun"
	PartOfSpeechPreposition  PartOfSpeech = "preposition"
	PartOfSpeechConjunction  PartOfSpeech = "conjunction"
	PartOfSpeechInterjection PartOfSpeech = "interjection"
	PartOfSpeechPhrase       PartOfSpeech = "phrase"
	PartOfSpeechOther        PartOfSpeech = "other"
)

func (p PartOfSpeech) String() string { return string(p) }

func (p PartOfSpeech) IsValid() bool {
	switch p {
	case PartOfSpeechNoun, PartOfSpeechVerb, PartOfSpeechAdjective, PartOfSpeechAdverb,
		PartOfSpeechParticle, PartOfSpeechPronoun, PartOfSpeechPreposition,
		PartOfSpeechConjunction, PartOfSpeechInterjection, PartOfSpeechPhrase, PartOfSpeechOther:
		return true
	}
	return false
}

// ParsePartOfSpeech lowercases s and maps common dictionary labels
// ("Noun", "adj.", "exclamation") onto the known set. Unknown labels map to
// PartOfSpeechOther; an empty string stays empty.
func ParsePartOfSpeech(s string) PartOfSpeech {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.TrimSuffix(s, ".")
	switch s {
	case "":
		return ""
	case "n":
		return PartOfSpeechNoun
	case "v":
		return PartOfSpeechVerb
	case "adj":
		return PartOfSpeechAdjective
	case "adv":
		return PartOfSpeechAdverb
	case "exclamation":
		return PartOfSpeechInterjection
	case "determiner", "article", "numeral", "suffix", "prefix", "idiom":
		return PartOfSpeechOther
	}
	if p := PartOfSpeech(s); p.IsValid() {
		return p
	}
	return PartOfSpeechOther
}

// Language is a target story language offered in settings.
type Language string

const (
	LanguageEnglish    Language = "English"
	LanguageSpanish    Language = "Spanish"
	LanguageFrench     Language = "French"
	LanguageGerman     Language = "German"
	LanguageItalian    Language = "Italian"
	LanguagePortuguese Language = "Portuguese"
	LanguageChinese    Language = "Chinese"
	LanguageJapanese   Language = "Japanese"
	LanguageKorean     Language = "Korean"
)

// DefaultLanguage is used when no story language has been configured.
const DefaultLanguage = LanguageEnglish

// Languages lists the supported story languages in display order.
var Languages = []Language{
	LanguageEnglish, LanguageSpanish, LanguageFrench, LanguageGerman, LanguageItalian,
	LanguagePortuguese, LanguageChinese, LanguageJapanese, LanguageKorean,
}

func (l Language) String() string { return string(l) }

func (l Language) IsValid() bool {
	for _, known := range Languages {
		if l == known {
			return true
		}
	}
	return false
}

// ParseLanguage matches s case-insensitively against the supported languages.
// Returns false if s is not supported.
func ParseLanguage(s string) (Language, bool) {
	s = strings.TrimSpace(s)
	for _, known := range Languages {
		if strings.EqualFold(s, string(known)) {
			return known, true
		}
	}
	return "", false
}
