package domain

import "time"

// Story is a saved story. Stories are immutable once persisted.
type Story struct {
	ID           int64
	Title        string
	Content      string
	ReadingLevel ReadingLevel
	WordCount    int
	Language     Language
	SourceURL    *string
	CreatedAt    time.Time
}

// GeneratedStory is the unsaved result of a generation request.
type GeneratedStory struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// StoryParams are the story form parameters sent to the generator.
type StoryParams struct {
	Setting              string
	CharacterName        string
	AdditionalCharacters string
	ReadingLevel         ReadingLevel
	WordCount            int
	AdditionalContext    string
	Language             Language
}

// FormSuggestion holds AI-suggested defaults for the story form.
type FormSuggestion struct {
	Setting              string `json:"setting"`
	CharacterName        string `json:"characterName"`
	AdditionalCharacters string `json:"additionalCharacters"`
	AdditionalContext    string `json:"additionalContext"`
}

// Article is readable text extracted from a web page.
type Article struct {
	Title   string
	Content string
	URL     string
}
