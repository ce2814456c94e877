package domain

// Document is a single report file discovered in the corpus.
type Document struct {
	Path    string
	ModTime int64
	Size    int64
}

// TermResult holds the aggregate outcome for one search term.
type TermResult struct {
	Term  string   `json:"term"`
	Count int      `json:"count"`
	Files []string `json:"files"` // sorted document paths with a positive match
}

// MatchReport is the aggregate over a whole corpus scan.
type MatchReport struct {
	Mode         string       `json:"mode"`
	Terms        []TermResult `json:"terms"`
	TotalUnique  int          `json:"total_unique"`
	DocsScanned  int          `json:"docs_scanned"`
	DocsSkipped  int          `json:"docs_skipped"`  // unreadable, excluded from all counts
	DocsFiltered int          `json:"docs_filtered"` // removed by the keyword pre-filter
}

// Result returns the TermResult for term, or nil if the report has none.
func (r *MatchReport) Result(term string) *TermResult {
	for i := range r.Terms {
		if r.Terms[i].Term == term {
			return &r.Terms[i]
		}
	}
	return nil
}

// Impression is an extracted "impression" section of one report.
type Impression struct {
	Path string `json:"path"`
	Text string `json:"text"`
}
