package fs

import (
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	"radscan/internal/domain"
)

// Walker enumerates report files under a root directory using doublestar
// include/exclude patterns matched against root-relative paths.
type Walker struct {
	includes []string
	excludes []string
}

// NewWalker creates a walker. With no include patterns every file matches.
func NewWalker(includes, excludes []string) *Walker {
	if len(includes) == 0 {
		includes = []string{"**/*"}
	}
	return &Walker{
		includes: includes,
		excludes: excludes,
	}
}

// List implements port.DocumentSource. Paths are returned absolute, in
// directory-walk order; callers must not rely on the ordering.
func (w *Walker) List(root string) ([]domain.Document, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	var docs []domain.Document
	err = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		if info.IsDir() {
			if w.matches(w.excludes, relPath+"/") {
				return filepath.SkipDir
			}
			return nil
		}

		if w.matches(w.includes, relPath) && !w.matches(w.excludes, relPath) {
			docs = append(docs, domain.Document{
				Path:    path,
				ModTime: info.ModTime().Unix(),
				Size:    info.Size(),
			})
		}

		return nil
	})

	return docs, err
}

func (w *Walker) matches(patterns []string, path string) bool {
	for _, pattern := range patterns {
		matched, err := doublestar.Match(pattern, filepath.ToSlash(path))
		if err == nil && matched {
			return true
		}
	}
	return false
}
