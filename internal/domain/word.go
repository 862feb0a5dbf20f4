package domain

// LookupStrategy identifies how a clicked word was looked up.
type LookupStrategy string

const (
	StrategyEnglishWord LookupStrategy = "english-word"
	StrategyKoreanWord  LookupStrategy = "korean-word"
	StrategyKoreanChar  LookupStrategy = "korean-char"
	StrategyForeignWord LookupStrategy = "foreign-word"
)

func (s LookupStrategy) String() string { return string(s) }

// WordInfo is the ephemeral result of a word lookup. It is persisted only
// when the user saves it to a deck.
type WordInfo struct {
	Word         string
	Translation  string
	PartOfSpeech PartOfSpeech
	Context      string
	Note         *string
	Strategy     LookupStrategy
}
