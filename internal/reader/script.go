package reader

import (
	"unicode"

	"github.com/heartmarshall/storylingo-backend/internal/domain"
)

// Script is the dominant writing system of a piece of text.
type Script int

const (
	ScriptNone Script = iota
	ScriptLatin
	ScriptHangul
	ScriptHan
	ScriptKana
	ScriptCyrillic
	ScriptOther
)

var scriptNames = [...]string{"none", "latin", "hangul", "han", "kana", "cyrillic", "other"}

func (s Script) String() string {
	if int(s) < len(scriptNames) {
		return scriptNames[s]
	}
	return "unknown"
}

// DetectScript returns the script that most letters of s belong to.
// Ties go to the script listed first in the Script constants.
// Returns ScriptNone when s has no letters.
func DetectScript(s string) Script {
	var counts [len(scriptNames)]int
	for _, r := range s {
		if !unicode.IsLetter(r) {
			continue
		}
		counts[scriptOf(r)]++
	}

	best := ScriptNone
	for sc := ScriptLatin; sc <= ScriptOther; sc++ {
		if counts[sc] > counts[best] {
			best = sc
		}
	}
	return best
}

func scriptOf(r rune) Script {
	switch {
	case unicode.Is(unicode.Latin, r):
		return ScriptLatin
	case unicode.Is(unicode.Hangul, r):
		return ScriptHangul
	case unicode.Is(unicode.Hiragana, r), unicode.Is(unicode.Katakana, r):
		return ScriptKana
	case unicode.Is(unicode.Han, r):
		return ScriptHan
	case unicode.Is(unicode.Cyrillic, r):
		return ScriptCyrillic
	default:
		return ScriptOther
	}
}

// Mode selects how sentences are split into clickable tokens.
type Mode string

const (
	// ModeWords makes each letter/number run clickable.
	ModeWords Mode = "words"
	// ModeCharacters makes each letter clickable on its own.
	ModeCharacters Mode = "characters"
	// ModeMorphological uses a morphological analyzer (Japanese).
	ModeMorphological Mode = "morphological"
)

func (m Mode) IsValid() bool {
	switch m {
	case ModeWords, ModeCharacters, ModeMorphological:
		return true
	}
	return false
}

// ModeFor returns the default tokenization mode for a story language.
func ModeFor(lang domain.Language) Mode {
	switch lang {
	case domain.LanguageJapanese:
		return ModeMorphological
	case domain.LanguageChinese:
		return ModeCharacters
	default:
		return ModeWords
	}
}
