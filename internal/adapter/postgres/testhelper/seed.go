package testhelper

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/storylingo-backend/internal/domain"
)

// SeedDeck inserts a deck with the given name and returns it.
func SeedDeck(t *testing.T, pool *pgxpool.Pool, name string) domain.Deck {
	t.Helper()

	d := domain.Deck{Name: name, Vocabulary: []domain.VocabEntry{}}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO decks (name) VALUES ($1) RETURNING id, created_at`,
		name,
	).Scan(&d.ID, &d.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedDeck: %v", err)
	}
	return d
}

// SeedVocab inserts a noun entry for word into the given deck.
func SeedVocab(t *testing.T, pool *pgxpool.Pool, deckID int64, word string) domain.VocabEntry {
	t.Helper()

	e := domain.VocabEntry{
		Word:         word,
		Translation:  "translation of " + word,
		PartOfSpeech: domain.PartOfSpeechNoun,
		DeckID:       deckID,
	}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO vocabulary (word, translation, part_of_speech, deck_id)
		 VALUES ($1, $2, $3, $4) RETURNING id, created_at`,
		e.Word, e.Translation, string(e.PartOfSpeech), e.DeckID,
	).Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedVocab: %v", err)
	}
	return e
}

// SeedStory inserts an A1 English story and returns it.
func SeedStory(t *testing.T, pool *pgxpool.Pool, title, content string) domain.Story {
	t.Helper()

	s := domain.Story{
		Title:        title,
		Content:      content,
		ReadingLevel: domain.ReadingLevelA1,
		WordCount:    len(content),
		Language:     domain.LanguageEnglish,
	}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO stories (title, content, reading_level, word_count, language)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`,
		s.Title, s.Content, string(s.ReadingLevel), s.WordCount, string(s.Language),
	).Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedStory: %v", err)
	}
	return s
}
