package fs

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("report text"), 0644); err != nil {
		t.Fatal(err)
	}
}

func paths(t *testing.T, w *Walker, root string) map[string]bool {
	t.Helper()
	docs, err := w.List(root)
	if err != nil {
		t.Fatal(err)
	}
	found := make(map[string]bool, len(docs))
	for _, doc := range docs {
		rel, err := filepath.Rel(root, doc.Path)
		if err != nil {
			t.Fatal(err)
		}
		found[filepath.ToSlash(rel)] = true
	}
	return found
}

func TestWalkerIncludes(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.pdf"))
	writeFile(t, filepath.Join(root, "notes.txt"))
	writeFile(t, filepath.Join(root, "image.dcm"))
	writeFile(t, filepath.Join(root, "2024", "patient1", "report.pdf"))

	w := NewWalker([]string{"**/*.pdf", "**/*.txt"}, nil)
	found := paths(t, w, root)

	for _, want := range []string{"a.pdf", "notes.txt", "2024/patient1/report.pdf"} {
		if !found[want] {
			t.Errorf("missing %s in %v", want, found)
		}
	}
	if found["image.dcm"] {
		t.Error("image.dcm should not match")
	}
}

func TestWalkerExcludesDirectory(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "keep.pdf"))
	writeFile(t, filepath.Join(root, ".radscan", "cache.pdf"))

	w := NewWalker([]string{"**/*.pdf"}, []string{"**/.radscan/**"})
	found := paths(t, w, root)

	if !found["keep.pdf"] {
		t.Error("keep.pdf should be listed")
	}
	if found[".radscan/cache.pdf"] {
		t.Error("excluded directory content should be skipped")
	}
}

func TestWalkerFileMetadata(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.pdf"))

	w := NewWalker([]string{"**/*.pdf"}, nil)
	docs, err := w.List(root)
	if err != nil {
		t.Fatal(err)
	}
	if len(docs) != 1 {
		t.Fatalf("expected 1 document, got %d", len(docs))
	}
	if !filepath.IsAbs(docs[0].Path) {
		t.Errorf("expected absolute path, got %s", docs[0].Path)
	}
	if docs[0].Size == 0 || docs[0].ModTime == 0 {
		t.Errorf("expected size and modtime, got %+v", docs[0])
	}
}

func TestWalkerEmptyDir(t *testing.T) {
	w := NewWalker(nil, nil)
	docs, err := w.List(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if len(docs) != 0 {
		t.Errorf("expected no documents, got %d", len(docs))
	}
}
