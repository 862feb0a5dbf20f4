package domain

import "time"

// Deck is a named collection of vocabulary entries.
// Deleting a deck deletes its entries.
type Deck struct {
	ID          int64
	Name        string
	Description *string
	CreatedAt   time.Time
	Vocabulary  []VocabEntry
}

// VocabEntry is a saved word. Every entry belongs to exactly one deck.
type VocabEntry struct {
	ID           int64
	Word         string
	Translation  string
	PartOfSpeech PartOfSpeech
	Context      *string
	DeckID       int64
	CreatedAt    time.Time
}

// VocabPatch is a partial update of a VocabEntry. Nil fields are left unchanged.
type VocabPatch struct {
	Word         *string
	Translation  *string
	PartOfSpeech *PartOfSpeech
	Context      *string
	DeckID       *int64
}

// IsEmpty reports whether the patch changes nothing.
func (p VocabPatch) IsEmpty() bool {
	return p.Word == nil && p.Translation == nil && p.PartOfSpeech == nil &&
		p.Context == nil && p.DeckID == nil
}

// VocabFilter narrows a vocabulary listing. A nil DeckID lists every entry.
type VocabFilter struct {
	DeckID *int64
}
