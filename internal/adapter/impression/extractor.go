// Package impression extracts the "impression" section from radiology
// report text.
package impression

import (
	"regexp"
	"strings"
)

var headingRe = regexp.MustCompile(`\n\s*impression\s*\n`)

// Extractor locates the impression section of a report. The section starts
// after an "impression:" label (or a standalone "impression" heading line)
// and ends at the first stop keyword, typically a signature block or an
// advice/note footer.
type Extractor struct {
	stopKeywords []string
}

// NewExtractor creates an extractor with the given stop keywords.
func NewExtractor(stopKeywords []string) *Extractor {
	return &Extractor{stopKeywords: stopKeywords}
}

// Extract returns the impression section of fullText with whitespace
// collapsed, or false when the report has no recognizable section.
// fullText is expected to be lowercase already.
func (e *Extractor) Extract(fullText string) (string, bool) {
	if fullText == "" {
		return "", false
	}

	start := -1
	if idx := strings.Index(fullText, "impression:"); idx >= 0 {
		start = idx + len("impression:")
	} else if loc := headingRe.FindStringIndex(fullText); loc != nil {
		start = loc[1]
	}
	if start < 0 {
		return "", false
	}

	end := len(fullText)
	for _, keyword := range e.stopKeywords {
		if idx := strings.Index(fullText[start:], keyword); idx >= 0 && start+idx < end {
			end = start + idx
		}
	}

	section := strings.Join(strings.Fields(fullText[start:end]), " ")
	if section == "" {
		return "", false
	}
	return section, true
}
