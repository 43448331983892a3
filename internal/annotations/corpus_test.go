package annotations

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/onpoeet/cadence-detection/internal/testutil"
)

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteAnnotatorFile(t, dir, "alice", map[string][]int{
		"item_001": {3, 10},
		"item_002": {5},
	})
	testutil.WriteAnnotatorFile(t, dir, "bob", map[string][]int{
		"item_001": {4, 9},
	})

	corpus, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir returned error: %v", err)
	}

	expected := Corpus{
		"item_001": AnnotationSet{
			"alice": {3, 10},
			"bob":   {4, 9},
		},
		"item_002": AnnotationSet{
			"alice": {5},
		},
	}
	if diff := cmp.Diff(expected, corpus); diff != "" {
		t.Errorf("corpus mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadDirSkipsBlankLines(t *testing.T) {
	dir := t.TempDir()
	content := "item_001\t3\t10\n\n   \nitem_002\t5\n"
	if err := os.WriteFile(filepath.Join(dir, "carol.txt"), []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	corpus, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir returned error: %v", err)
	}
	if len(corpus) != 2 {
		t.Errorf("expected 2 items, got %d", len(corpus))
	}
}

func TestLoadDirHandlesCRLF(t *testing.T) {
	dir := t.TempDir()
	content := "item_001\t3\t10\r\nitem_002\t5\r\n"
	if err := os.WriteFile(filepath.Join(dir, "dave.txt"), []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	corpus, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir returned error: %v", err)
	}
	if diff := cmp.Diff([]int{3, 10}, corpus["item_001"]["dave"]); diff != "" {
		t.Errorf("markers mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadDirErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"missing markers", "item_001\n"},
		{"non-integer marker", "item_001\t3\tabc\n"},
		{"negative marker", "item_001\t3\t-2\n"},
		{"float marker", "item_001\t3.5\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if err := os.WriteFile(filepath.Join(dir, "erin.txt"), []byte(tt.content), 0o644); err != nil {
				t.Fatalf("failed to write fixture: %v", err)
			}
			if _, err := LoadDir(dir); err == nil {
				t.Errorf("expected parse error for %q, got nil", tt.content)
			}
		})
	}
}

func TestLoadDirEmptyDirectory(t *testing.T) {
	if _, err := LoadDir(t.TempDir()); err == nil {
		t.Error("expected error for directory without annotation files, got nil")
	}
}

func TestAnnotationSetOrdering(t *testing.T) {
	set := AnnotationSet{
		"zoe":   {1},
		"alice": {2},
		"mike":  {3},
	}

	annotators := set.Annotators()
	if diff := cmp.Diff([]string{"alice", "mike", "zoe"}, annotators); diff != "" {
		t.Errorf("annotator order mismatch (-want +got):\n%s", diff)
	}

	sequences := set.Sequences()
	if diff := cmp.Diff([][]int{{2}, {3}, {1}}, sequences); diff != "" {
		t.Errorf("sequence order mismatch (-want +got):\n%s", diff)
	}
}

func TestCorpusItemIDs(t *testing.T) {
	corpus := Corpus{
		"item_002": AnnotationSet{},
		"item_001": AnnotationSet{},
		"item_010": AnnotationSet{},
	}
	if diff := cmp.Diff([]string{"item_001", "item_002", "item_010"}, corpus.ItemIDs()); diff != "" {
		t.Errorf("item id order mismatch (-want +got):\n%s", diff)
	}
}
