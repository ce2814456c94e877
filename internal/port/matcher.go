package port

// MatchStrategy decides whether a term occurs in a positive (non-negated)
// context. Prepare derives per-document state once (e.g. sentence splits) so
// that evaluating many terms against one document stays cheap.
//
// Text is required to be lowercase already; terms and negation phrases are
// compared by raw substring containment.
type MatchStrategy interface {
	Name() string
	Prepare(text string) PreparedDoc
}

// PreparedDoc evaluates terms against a single document's text.
type PreparedDoc interface {
	Match(term string) bool
}
