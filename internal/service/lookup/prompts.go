package lookup

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/storylingo-backend/internal/adapter/provider/llm"
	"github.com/heartmarshall/storylingo-backend/internal/domain"
)

const (
	temperature = 0.3
	maxTokens   = 300
)

var partsOfSpeech = strings.Join([]string{
	string(domain.PartOfSpeechNoun), string(domain.PartOfSpeechVerb),
	string(domain.PartOfSpeechAdjective), string(domain.PartOfSpeechAdverb),
	string(domain.PartOfSpeechParticle), string(domain.PartOfSpeechPronoun),
	string(domain.PartOfSpeechPreposition), string(domain.PartOfSpeechConjunction),
	string(domain.PartOfSpeechInterjection), string(domain.PartOfSpeechPhrase),
	string(domain.PartOfSpeechOther),
}, ", ")

const wordInfoFormat = "Always respond with a JSON object containing exactly three fields: " +
	"'translation', 'partOfSpeech' and 'note'. 'partOfSpeech' must be one of: %s. " +
	"'note' is a short remark for the learner, or an empty string."

func tutorSystem(explainIn domain.Language) string {
	return fmt.Sprintf("You are a patient language tutor who explains words to learners in %s. ", explainIn) +
		fmt.Sprintf(wordInfoFormat, partsOfSpeech)
}

func koreanWordRequest(word, sentence string) llm.Request {
	prompt := fmt.Sprintf("Korean word: %s\nSentence: %s\n\n"+
		"Give the English translation of the word as it is used in the sentence and its part of speech. "+
		"In 'note', give the dictionary form and name any particle or ending attached to it.",
		word, orNone(sentence))
	return llm.Request{
		System:      tutorSystem(domain.LanguageEnglish),
		Prompt:      prompt,
		Temperature: temperature,
		MaxTokens:   maxTokens,
		JSON:        true,
	}
}

func koreanCharRequest(char, sentence string) llm.Request {
	prompt := fmt.Sprintf("Korean syllable: %s\nSentence: %s\n\n"+
		"If the syllable is a grammatical particle or suffix here, use partOfSpeech 'particle', "+
		"give its English gloss as the translation and describe its function in 'note'. "+
		"Otherwise translate it into English as a standalone word.",
		char, orNone(sentence))
	return llm.Request{
		System:      tutorSystem(domain.LanguageEnglish),
		Prompt:      prompt,
		Temperature: temperature,
		MaxTokens:   maxTokens,
		JSON:        true,
	}
}

func foreignWordRequest(word, sentence string, into domain.Language) llm.Request {
	prompt := fmt.Sprintf("Word: %s\nSentence: %s\n\n"+
		"Translate the word into %s as it is used in the sentence and give its part of speech. "+
		"In 'note', name the language of the word and its dictionary form if it differs.",
		word, orNone(sentence), into)
	return llm.Request{
		System:      tutorSystem(into),
		Prompt:      prompt,
		Temperature: temperature,
		MaxTokens:   maxTokens,
		JSON:        true,
	}
}

func glossRequest(word, definition string, into domain.Language) llm.Request {
	prompt := fmt.Sprintf("English word: %s\nDefinition: %s\n\n"+
		"Translate this sense of the word into %s. Use one to three words.",
		word, definition, into)
	return llm.Request{
		System: fmt.Sprintf("You are a professional translator into %s. ", into) +
			"Always respond with a JSON object containing exactly one field: 'translation'.",
		Prompt:      prompt,
		Temperature: temperature,
		MaxTokens:   maxTokens,
		JSON:        true,
	}
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
