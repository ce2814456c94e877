package port

import "context"

// TextExtractor turns a report file into lowercase plain text.
// A failed extraction is an error; callers treat it as "skip this document".
type TextExtractor interface {
	Extract(ctx context.Context, path string) (string, error)
}
