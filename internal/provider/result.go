// Package provider holds the result types shared by external data providers.
package provider

import "github.com/heartmarshall/storylingo-backend/internal/domain"

// DictionaryResult is the structured result from a dictionary API provider.
type DictionaryResult struct {
	Word     string
	Phonetic *string
	Senses   []SenseResult
}

// SenseResult represents a single word sense from an external dictionary.
type SenseResult struct {
	Definition   string
	PartOfSpeech domain.PartOfSpeech
	Example      *string
}

// Primary returns the first sense, or false when the entry has no senses.
func (r *DictionaryResult) Primary() (SenseResult, bool) {
	if r == nil || len(r.Senses) == 0 {
		return SenseResult{}, false
	}
	return r.Senses[0], true
}
