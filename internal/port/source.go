package port

import "radscan/internal/domain"

// DocumentSource enumerates report files under a root directory.
// No ordering is guaranteed; scan results must not depend on it.
type DocumentSource interface {
	List(root string) ([]domain.Document, error)
}

// ProgressFunc is invoked once per document as a scan advances.
type ProgressFunc func(processed, total int, path string)
