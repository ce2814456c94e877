// Package matcher implements the two negation-aware matching strategies
// found in radiology report screening: sentence-scoped suppression against a
// negation vocabulary, and whole-document suppression against a single
// derived phrase ("no evidence of <term>").
//
// Matching is raw substring containment on lowercase text. Negation phrases
// match even when they span word boundaries oddly (e.g. "unlikely" inside a
// longer token still suppresses); the two strategies are kept separate on
// purpose and must not be unified.
package matcher

import (
	"errors"
	"fmt"
	"strings"

	"radscan/internal/adapter/segmenter"
	"radscan/internal/port"
)

// Matching modes.
const (
	ModeSentenceScoped = "sentence_scoped"
	ModeWholeDocument  = "whole_document"
)

// ErrUnknownMode is returned for a matching mode that is not recognized.
var ErrUnknownMode = errors.New("unknown matching mode")

// NewStrategy builds the strategy for the given mode. The negation phrase
// list is only consulted in sentence-scoped mode; an empty list is legal and
// simply means nothing is ever negated.
func NewStrategy(mode string, negationPhrases []string) (port.MatchStrategy, error) {
	switch mode {
	case ModeSentenceScoped:
		return NewSentenceScoped(negationPhrases), nil
	case ModeWholeDocument:
		return WholeDocument{}, nil
	case "":
		return nil, fmt.Errorf("%w: mode is required", ErrUnknownMode)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
}

// SentenceScoped matches a term positively when at least one sentence
// contains the term and none of the negation phrases.
type SentenceScoped struct {
	negations []string
}

// NewSentenceScoped creates a sentence-scoped strategy.
func NewSentenceScoped(negationPhrases []string) *SentenceScoped {
	return &SentenceScoped{negations: negationPhrases}
}

func (s *SentenceScoped) Name() string { return ModeSentenceScoped }

func (s *SentenceScoped) Prepare(text string) port.PreparedDoc {
	return &sentenceDoc{
		sentences: segmenter.Split(text),
		negations: s.negations,
	}
}

type sentenceDoc struct {
	sentences []string
	negations []string
}

func (d *sentenceDoc) Match(term string) bool {
	for _, sentence := range d.sentences {
		if !strings.Contains(sentence, term) {
			continue
		}
		if !d.negated(sentence) {
			// One positive sentence is enough for the whole document.
			return true
		}
	}
	return false
}

func (d *sentenceDoc) negated(sentence string) bool {
	for _, neg := range d.negations {
		if strings.Contains(sentence, neg) {
			return true
		}
	}
	return false
}

// WholeDocument is the legacy strategy: a term matches when it appears
// anywhere in the text and the exact phrase "no evidence of <term>" does
// not. The negative phrase anywhere in the document suppresses the term,
// even when another sentence asserts it positively.
type WholeDocument struct{}

func (WholeDocument) Name() string { return ModeWholeDocument }

func (WholeDocument) Prepare(text string) port.PreparedDoc {
	return wholeDoc{text: text}
}

type wholeDoc struct {
	text string
}

func (d wholeDoc) Match(term string) bool {
	return strings.Contains(d.text, term) &&
		!strings.Contains(d.text, "no evidence of "+term)
}
