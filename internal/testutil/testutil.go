// Package testutil provides shared test utilities and fixtures.
//
// This package centralises common test helpers to reduce code duplication
// across test files and improve test maintainability.
package testutil

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertError fails the test if err is nil.
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

// WriteAnnotatorFile writes one annotator's tab-separated annotation file
// into dir and returns its path. items maps item id to marker positions.
func WriteAnnotatorFile(t *testing.T, dir, annotator string, items map[string][]int) string {
	t.Helper()

	var sb strings.Builder
	for itemID, markers := range items {
		fields := []string{itemID}
		for _, m := range markers {
			fields = append(fields, strconv.Itoa(m))
		}
		sb.WriteString(strings.Join(fields, "\t"))
		sb.WriteString("\n")
	}

	path := filepath.Join(dir, annotator+".txt")
	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		t.Fatalf("failed to write annotation file: %v", err)
	}
	return path
}

// Seg converts a segmentation string like "000100000010" into the integer
// sequence used by the metrics, mapping '0' to 0 and anything else to 1.
func Seg(s string) []int {
	seq := make([]int, len(s))
	for i, c := range s {
		if c != '0' {
			seq[i] = 1
		}
	}
	return seq
}
