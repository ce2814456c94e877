// Package segmenter splits report text into sentences. Report text is
// semi-structured, so the rule is deliberately simple: a sentence ends at
// '.', '?' or '!' followed by whitespace. Linguistic boundary detection is
// out of scope.
package segmenter

import (
	"strings"
	"unicode"
)

// Split breaks text into trimmed, non-empty sentences. The terminal
// punctuation character that triggered a split is dropped; text without any
// terminal punctuation comes back as a single sentence.
func Split(text string) []string {
	var sentences []string
	var current strings.Builder

	flush := func() {
		s := strings.TrimSpace(current.String())
		if s != "" {
			sentences = append(sentences, s)
		}
		current.Reset()
	}

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if isTerminal(r) && i+1 < len(runes) && unicode.IsSpace(runes[i+1]) {
			flush()
			for i+1 < len(runes) && unicode.IsSpace(runes[i+1]) {
				i++
			}
			continue
		}
		current.WriteRune(r)
	}
	flush()

	return sentences
}

func isTerminal(r rune) bool {
	return r == '.' || r == '?' || r == '!'
}
