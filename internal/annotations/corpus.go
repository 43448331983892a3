// Package annotations loads cadence annotation files into an in-memory
// corpus. Each annotator contributes one tab-separated text file named
// <annotator>.txt where every line holds an item id followed by that
// annotator's integer cadence markers for the item.
package annotations

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// AnnotationSet maps annotator id to that annotator's marker sequence for
// one item.
type AnnotationSet map[string][]int

// Corpus maps item id to the annotations collected for it across all
// annotator files.
type Corpus map[string]AnnotationSet

// Annotators returns the annotator ids in sorted order.
func (s AnnotationSet) Annotators() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Sequences returns the marker sequences in sorted annotator order.
func (s AnnotationSet) Sequences() [][]int {
	seqs := make([][]int, 0, len(s))
	for _, id := range s.Annotators() {
		seqs = append(seqs, s[id])
	}
	return seqs
}

// ItemIDs returns the item ids in sorted order.
func (c Corpus) ItemIDs() []string {
	ids := make([]string, 0, len(c))
	for id := range c {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// LoadDir reads every .txt file in dir as one annotator's file, taking the
// annotator id from the file name without its extension.
func LoadDir(dir string) (Corpus, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.txt"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan annotations directory %s: %w", dir, err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no annotation files found in %s", dir)
	}

	corpus := Corpus{}
	for _, path := range paths {
		annotator := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		if err := loadFile(corpus, path, annotator); err != nil {
			return nil, err
		}
	}
	return corpus, nil
}

// loadFile parses one annotator file into the corpus. Lines have the form
// <item_id>\t<marker>\t<marker>... and blank lines are skipped.
func loadFile(corpus Corpus, path, annotator string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open annotation file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) < 2 {
			return fmt.Errorf("%s:%d: expected item id and at least one marker, got %d fields", path, lineNo, len(fields))
		}

		itemID := fields[0]
		markers := make([]int, 0, len(fields)-1)
		for _, field := range fields[1:] {
			m, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				return fmt.Errorf("%s:%d: invalid marker %q: %v", path, lineNo, field, err)
			}
			if m < 0 {
				return fmt.Errorf("%s:%d: negative marker %d", path, lineNo, m)
			}
			markers = append(markers, m)
		}

		if corpus[itemID] == nil {
			corpus[itemID] = AnnotationSet{}
		}
		corpus[itemID][annotator] = markers
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	return nil
}
