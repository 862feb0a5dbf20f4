package story

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/heartmarshall/storylingo-backend/internal/adapter/provider/llm"
	"github.com/heartmarshall/storylingo-backend/internal/domain"
	"github.com/heartmarshall/storylingo-backend/internal/reader"
)

type deps struct {
	stories  *storyRepoMock
	settings *settingsReaderMock
	llm      *completerMock
	articles *articleFetcherMock
}

func newDeps() *deps {
	return &deps{
		stories: &storyRepoMock{
			CreateFunc: func(ctx context.Context, s *domain.Story) (*domain.Story, error) {
				out := *s
				out.ID = 1
				out.CreatedAt = time.Now()
				return &out, nil
			},
		},
		settings: &settingsReaderMock{
			GetStoryLanguageFunc: func(ctx context.Context) (domain.Language, error) {
				return domain.LanguageKorean, nil
			},
		},
		llm:      &completerMock{},
		articles: &articleFetcherMock{},
	}
}

func (d *deps) service() *Service {
	return NewService(slog.Default(), d.stories, d.settings, d.llm, d.articles, reader.NewAnnotator(nil))
}

func validGenerateInput() GenerateInput {
	return GenerateInput{
		Setting:       "coffee shop",
		CharacterName: "Minji",
		ReadingLevel:  "b1",
		WordCount:     200,
	}
}

// ---------------------------------------------------------------------------
// Generate
// ---------------------------------------------------------------------------

func TestGenerate_Success(t *testing.T) {
	t.Parallel()

	d := newDeps()
	d.llm.CompleteFunc = func(ctx context.Context, req llm.Request) (string, error) {
		return `{"title": " The Last Latte ", "content": "민지는 커피를 마셨다."}`, nil
	}
	svc := d.service()

	got, err := svc.Generate(context.Background(), validGenerateInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Title != "The Last Latte" || got.Content != "민지는 커피를 마셨다." {
		t.Errorf("story: got %+v", got)
	}

	calls := d.llm.CompleteCalls()
	if len(calls) != 1 {
		t.Fatalf("Complete calls: got %d, want 1", len(calls))
	}
	req := calls[0]
	if req.Temperature != 0.8 || req.MaxTokens != 2000 || !req.JSON {
		t.Errorf("request options: got %+v", req)
	}
	for _, want := range []string{"create a story in Korean", "- Setting: coffee shop", "- Main character: Minji",
		"- Additional characters: None", "- Reading level: B1", "- Target word count: 200"} {
		if !strings.Contains(req.Prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, req.Prompt)
		}
	}
	if len(d.stories.CreateCalls()) != 0 {
		t.Error("generated stories are not saved automatically")
	}
}

func TestGenerate_ExplicitLanguageSkipsSettings(t *testing.T) {
	t.Parallel()

	d := newDeps()
	d.settings.GetStoryLanguageFunc = func(ctx context.Context) (domain.Language, error) {
		t.Error("settings should not be read")
		return "", nil
	}
	d.llm.CompleteFunc = func(ctx context.Context, req llm.Request) (string, error) {
		return `{"title": "T", "content": "C."}`, nil
	}
	svc := d.service()

	in := validGenerateInput()
	in.Language = "spanish"
	if _, err := svc.Generate(context.Background(), in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(d.llm.CompleteCalls()[0].Prompt, "story in Spanish") {
		t.Error("prompt should use the explicit language")
	}
}

func TestGenerate_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*GenerateInput)
		field  string
	}{
		{"short setting", func(i *GenerateInput) { i.Setting = "x" }, "setting"},
		{"missing character", func(i *GenerateInput) { i.CharacterName = " " }, "characterName"},
		{"missing reading level", func(i *GenerateInput) { i.ReadingLevel = "" }, "readingLevel"},
		{"bad reading level", func(i *GenerateInput) { i.ReadingLevel = "D1" }, "readingLevel"},
		{"too few words", func(i *GenerateInput) { i.WordCount = 49 }, "wordCount"},
		{"too many words", func(i *GenerateInput) { i.WordCount = 501 }, "wordCount"},
		{"unsupported language", func(i *GenerateInput) { i.Language = "Elvish" }, "language"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			in := validGenerateInput()
			tt.mutate(&in)

			d := newDeps()
			_, err := d.service().Generate(context.Background(), in)

			var verr *domain.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("got %v, want ValidationError", err)
			}
			if verr.Errors[0].Field != tt.field {
				t.Errorf("field: got %q, want %q", verr.Errors[0].Field, tt.field)
			}
			if len(d.llm.CompleteCalls()) != 0 {
				t.Error("LLM should not be called")
			}
		})
	}
}

func TestGenerate_MalformedResponse(t *testing.T) {
	t.Parallel()

	for _, body := range []string{
		"Once upon a time...",
		`{"title": "", "content": "text"}`,
		`{"title": "Only a title"}`,
	} {
		d := newDeps()
		d.llm.CompleteFunc = func(ctx context.Context, req llm.Request) (string, error) { return body, nil }

		_, err := d.service().Generate(context.Background(), validGenerateInput())
		if !errors.Is(err, domain.ErrMalformedResponse) {
			t.Errorf("body %q: got %v, want ErrMalformedResponse", body, err)
		}
	}
}

func TestGenerate_PassesProviderErrors(t *testing.T) {
	t.Parallel()

	for _, want := range []error{domain.ErrQuotaExceeded, domain.ErrRateLimited, domain.ErrUpstream} {
		d := newDeps()
		d.llm.CompleteFunc = func(ctx context.Context, req llm.Request) (string, error) {
			return "", want
		}

		_, err := d.service().Generate(context.Background(), validGenerateInput())
		if !errors.Is(err, want) {
			t.Errorf("got %v, want %v", err, want)
		}
	}
}

// ---------------------------------------------------------------------------
// SuggestForm
// ---------------------------------------------------------------------------

func TestSuggestForm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want string
	}{
		{"string list", `{"setting": "city park", "characterName": "Jordan Lee", "additionalCharacters": "Sam, Priya", "additionalContext": "A picnic."}`, "Sam, Priya"},
		{"json array", `{"setting": "city park", "characterName": "Jordan Lee", "additionalCharacters": ["Sam", "Priya", "Ana"], "additionalContext": "A picnic."}`, "Sam, Priya, Ana"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := newDeps()
			d.llm.CompleteFunc = func(ctx context.Context, req llm.Request) (string, error) { return tt.body, nil }

			got, err := d.service().SuggestForm(context.Background())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Setting != "city park" || got.CharacterName != "Jordan Lee" {
				t.Errorf("form: got %+v", got)
			}
			if got.AdditionalCharacters != tt.want {
				t.Errorf("additional characters: got %q, want %q", got.AdditionalCharacters, tt.want)
			}
			if req := d.llm.CompleteCalls()[0]; req.Temperature != 0.7 {
				t.Errorf("temperature: got %v", req.Temperature)
			}
		})
	}
}

func TestSuggestForm_Malformed(t *testing.T) {
	t.Parallel()

	d := newDeps()
	d.llm.CompleteFunc = func(ctx context.Context, req llm.Request) (string, error) {
		return `{"setting": ""}`, nil
	}

	_, err := d.service().SuggestForm(context.Background())
	if !errors.Is(err, domain.ErrMalformedResponse) {
		t.Fatalf("got %v, want ErrMalformedResponse", err)
	}
}

// ---------------------------------------------------------------------------
// Save / List / Get
// ---------------------------------------------------------------------------

func TestSave_ComputesWordCountAndLanguage(t *testing.T) {
	t.Parallel()

	d := newDeps()
	svc := d.service()

	got, err := svc.Save(context.Background(), SaveInput{
		Title:        " Rain ",
		Content:      "It rained. We stayed in.",
		ReadingLevel: "a2",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Title != "Rain" || got.ReadingLevel != domain.ReadingLevelA2 {
		t.Errorf("story: got %+v", got)
	}
	if got.WordCount != 5 {
		t.Errorf("word count: got %d, want 5", got.WordCount)
	}
	if got.Language != domain.LanguageKorean {
		t.Errorf("language should come from settings, got %q", got.Language)
	}
}

func TestSave_KeepsGivenWordCount(t *testing.T) {
	t.Parallel()

	d := newDeps()
	got, err := d.service().Save(context.Background(), SaveInput{
		Title: "T", Content: "Short.", ReadingLevel: "C1", WordCount: 300, Language: "German",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.WordCount != 300 || got.Language != domain.LanguageGerman {
		t.Errorf("story: got %+v", got)
	}
}

func TestSave_Validation(t *testing.T) {
	t.Parallel()

	d := newDeps()
	_, err := d.service().Save(context.Background(), SaveInput{Title: "", Content: " ", ReadingLevel: "Z9"})

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("got %v, want ValidationError", err)
	}
	if len(verr.Errors) != 3 {
		t.Errorf("field errors: got %d, want 3", len(verr.Errors))
	}
	if len(d.stories.CreateCalls()) != 0 {
		t.Error("repo should not be called")
	}
}

func TestList_EmptyIsNonNil(t *testing.T) {
	t.Parallel()

	d := newDeps()
	d.stories.ListFunc = func(ctx context.Context) ([]domain.Story, error) { return nil, nil }

	got, err := d.service().List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil {
		t.Error("expected empty, non-nil slice")
	}
}

func TestGet_NotFound(t *testing.T) {
	t.Parallel()

	d := newDeps()
	d.stories.GetByIDFunc = func(ctx context.Context, id int64) (*domain.Story, error) {
		return nil, domain.ErrNotFound
	}

	_, err := d.service().Get(context.Background(), 9)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

// ---------------------------------------------------------------------------
// Annotate
// ---------------------------------------------------------------------------

func TestAnnotate_ModeFromLanguage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		lang domain.Language
		mode string
		want reader.Mode
	}{
		{domain.LanguageKorean, "", reader.ModeWords},
		{domain.LanguageChinese, "", reader.ModeCharacters},
		{domain.LanguageKorean, "characters", reader.ModeCharacters},
	}
	for _, tt := range tests {
		d := newDeps()
		d.stories.GetByIDFunc = func(ctx context.Context, id int64) (*domain.Story, error) {
			return &domain.Story{ID: id, Title: "제목", Content: "첫 문장. 둘째 문장!", Language: tt.lang}, nil
		}

		got, err := d.service().Annotate(context.Background(), AnnotateInput{ID: 3, Mode: tt.mode})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Mode != tt.want {
			t.Errorf("%s/%q: mode got %q, want %q", tt.lang, tt.mode, got.Mode, tt.want)
		}
		if len(got.Sentences) != 2 {
			t.Errorf("sentences: got %d, want 2", len(got.Sentences))
		}
		if reader.Join(got.Title) != "제목" {
			t.Errorf("title tokens: got %q", reader.Join(got.Title))
		}
	}
}

func TestAnnotate_InvalidMode(t *testing.T) {
	t.Parallel()

	d := newDeps()
	_, err := d.service().Annotate(context.Background(), AnnotateInput{ID: 1, Mode: "syllables"})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("got %v, want ErrValidation", err)
	}
}

// ---------------------------------------------------------------------------
// Import
// ---------------------------------------------------------------------------

func TestImport_Success(t *testing.T) {
	t.Parallel()

	d := newDeps()
	d.articles.FetchFunc = func(ctx context.Context, rawURL string) (*domain.Article, error) {
		return &domain.Article{
			Title:   "Local news",
			Content: "The market opened early. Crowds arrived soon after.",
			URL:     rawURL,
		}, nil
	}

	got, err := d.service().Import(context.Background(), ImportInput{
		URL:          " https://example.com/news ",
		ReadingLevel: "B2",
		Language:     "English",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.SourceURL == nil || *got.SourceURL != "https://example.com/news" {
		t.Errorf("source url: got %v", got.SourceURL)
	}
	if got.WordCount != 8 {
		t.Errorf("word count: got %d, want 8", got.WordCount)
	}
	if got.Language != domain.LanguageEnglish {
		t.Errorf("language: got %q", got.Language)
	}
}

func TestImport_Validation(t *testing.T) {
	t.Parallel()

	d := newDeps()
	_, err := d.service().Import(context.Background(), ImportInput{URL: "ftp://example.com", ReadingLevel: "B1"})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("got %v, want ErrValidation", err)
	}
}

func TestImport_FetchFailure(t *testing.T) {
	t.Parallel()

	d := newDeps()
	d.articles.FetchFunc = func(ctx context.Context, rawURL string) (*domain.Article, error) {
		return nil, domain.ErrUpstream
	}

	_, err := d.service().Import(context.Background(), ImportInput{URL: "https://example.com", ReadingLevel: "B1"})
	if !errors.Is(err, domain.ErrUpstream) {
		t.Fatalf("got %v, want ErrUpstream", err)
	}
	if len(d.stories.CreateCalls()) != 0 {
		t.Error("nothing should be saved")
	}
}
