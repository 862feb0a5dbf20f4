package story

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/storylingo-backend/internal/adapter/provider/llm"
	"github.com/heartmarshall/storylingo-backend/internal/domain"
)

const (
	generateTemperature = 0.8
	generateMaxTokens   = 2000
	suggestTemperature  = 0.7
)

const storySystemPrompt = "You are a creative writing assistant. Always respond with a JSON object " +
	"containing exactly two fields: 'title' and 'content'. The title should be a creative name for " +
	"the story, and the content should be the complete story text."

// Generate asks the LLM for a story built from the form parameters.
// The result is not stored.
func (s *Service) Generate(ctx context.Context, input GenerateInput) (*domain.GeneratedStory, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	lang, err := s.resolveLanguage(ctx, input.Language)
	if err != nil {
		return nil, fmt.Errorf("resolve story language: %w", err)
	}

	params := domain.StoryParams{
		Setting:              strings.TrimSpace(input.Setting),
		CharacterName:        strings.TrimSpace(input.CharacterName),
		AdditionalCharacters: strings.TrimSpace(input.AdditionalCharacters),
		ReadingLevel:         domain.ParseReadingLevel(input.ReadingLevel),
		WordCount:            input.WordCount,
		AdditionalContext:    strings.TrimSpace(input.AdditionalContext),
		Language:             lang,
	}

	text, err := s.llm.Complete(ctx, llm.Request{
		System:      storySystemPrompt,
		Prompt:      storyPrompt(params),
		Temperature: generateTemperature,
		MaxTokens:   generateMaxTokens,
		JSON:        true,
	})
	if err != nil {
		return nil, fmt.Errorf("generate story: %w", err)
	}

	var story domain.GeneratedStory
	if err := llm.DecodeJSON(text, &story); err != nil {
		return nil, fmt.Errorf("generate story: %w", err)
	}
	story.Title = strings.TrimSpace(story.Title)
	story.Content = strings.TrimSpace(story.Content)
	if story.Title == "" || story.Content == "" {
		return nil, fmt.Errorf("generate story: %w: missing title or content", domain.ErrMalformedResponse)
	}

	s.log.InfoContext(ctx, "story generated",
		slog.String("language", lang.String()),
		slog.String("reading_level", params.ReadingLevel.String()),
		slog.Int("word_count", params.WordCount),
	)

	return &story, nil
}

func storyPrompt(p domain.StoryParams) string {
	var b strings.Builder
	fmt.Fprintf(&b, "As a creative writing assistant, create a story in %s with these parameters:\n", p.Language)
	fmt.Fprintf(&b, "- Setting: %s\n", p.Setting)
	fmt.Fprintf(&b, "- Main character: %s\n", p.CharacterName)
	fmt.Fprintf(&b, "- Additional characters: %s\n", orNone(p.AdditionalCharacters))
	fmt.Fprintf(&b, "- Reading level: %s\n", p.ReadingLevel)
	fmt.Fprintf(&b, "- Target word count: %d\n", p.WordCount)
	fmt.Fprintf(&b, "- Additional context: %s\n\n", orNone(p.AdditionalContext))
	fmt.Fprintf(&b, "The story should be appropriate for reading level %s. ", p.ReadingLevel)
	b.WriteString(`Respond with a JSON object containing exactly two fields: {"title": "...", "content": "..."}`)
	return b.String()
}

const suggestSystemPrompt = "You are a writing assistant that generates contemporary story setups. " +
	"Always use modern settings and realistic character names."

const suggestPrompt = `Suggest the setup for a short story. Requirements:
- The setting must be a modern, contemporary place, described in at most 3 words.
- The main character must have a modern, realistic name.
- List 2-3 additional characters with modern, realistic names.
- The additional context is 1-2 sentences describing the situation.
- No supernatural or fantasy elements.

Respond with a JSON object containing exactly these fields:
{"setting": "...", "characterName": "...", "additionalCharacters": "...", "additionalContext": "..."}`

// formResponse accepts additionalCharacters either as a string or as a list
// of names; models return both.
type formResponse struct {
	Setting              string          `json:"setting"`
	CharacterName        string          `json:"characterName"`
	AdditionalCharacters json.RawMessage `json:"additionalCharacters"`
	AdditionalContext    string          `json:"additionalContext"`
}

// SuggestForm asks the LLM for story form defaults.
func (s *Service) SuggestForm(ctx context.Context) (*domain.FormSuggestion, error) {
	text, err := s.llm.Complete(ctx, llm.Request{
		System:      suggestSystemPrompt,
		Prompt:      suggestPrompt,
		Temperature: suggestTemperature,
		JSON:        true,
	})
	if err != nil {
		return nil, fmt.Errorf("suggest form: %w", err)
	}

	var resp formResponse
	if err := llm.DecodeJSON(text, &resp); err != nil {
		return nil, fmt.Errorf("suggest form: %w", err)
	}
	form := domain.FormSuggestion{
		Setting:              strings.TrimSpace(resp.Setting),
		CharacterName:        strings.TrimSpace(resp.CharacterName),
		AdditionalCharacters: joinNames(resp.AdditionalCharacters),
		AdditionalContext:    strings.TrimSpace(resp.AdditionalContext),
	}
	if form.Setting == "" || form.CharacterName == "" {
		return nil, fmt.Errorf("suggest form: %w: missing setting or characterName", domain.ErrMalformedResponse)
	}

	return &form, nil
}

func joinNames(raw json.RawMessage) string {
	var one string
	if err := json.Unmarshal(raw, &one); err == nil {
		return strings.TrimSpace(one)
	}
	var many []string
	if err := json.Unmarshal(raw, &many); err == nil {
		return strings.Join(many, ", ")
	}
	return ""
}

func orNone(s string) string {
	if s == "" {
		return "None"
	}
	return s
}
