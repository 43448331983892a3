// Command gen-annotations generates synthetic annotator files for testing
// the agreement reporter. Each annotator gets one tab-separated .txt file;
// annotators mark the same underlying boundaries with per-annotator jitter
// so the corpus shows realistic partial agreement.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

func main() {
	output := flag.String("o", "annotations", "output directory")
	annotators := flag.Int("annotators", 3, "number of annotators")
	items := flag.Int("items", 20, "number of items")
	length := flag.Int("length", 120, "item length in positions")
	segments := flag.Int("segments", 6, "target segments per item")
	jitter := flag.Int("jitter", 2, "max positional jitter per annotator")
	seed := flag.Int64("seed", 1, "random seed")
	flag.Parse()

	if *annotators < 2 {
		log.Fatal("need at least 2 annotators")
	}
	if err := os.MkdirAll(*output, 0o755); err != nil {
		log.Fatalf("failed to create output directory: %v", err)
	}

	rng := rand.New(rand.NewSource(*seed))

	// True boundaries per item, shared by all annotators.
	truth := make([][]int, *items)
	for i := range truth {
		truth[i] = randomBoundaries(rng, *length, *segments)
	}

	for a := 0; a < *annotators; a++ {
		path := filepath.Join(*output, fmt.Sprintf("annotator_%02d.txt", a+1))
		if err := writeAnnotatorFile(path, truth, rng, *length, *jitter); err != nil {
			log.Fatalf("failed to write %s: %v", path, err)
		}
		log.Printf("wrote %s", path)
	}
	log.Printf("✓ Created %d annotator files for %d items in %s", *annotators, *items, *output)
}

// randomBoundaries picks n distinct boundary positions in (0, length).
func randomBoundaries(rng *rand.Rand, length, n int) []int {
	seen := map[int]bool{}
	for len(seen) < n {
		pos := 1 + rng.Intn(length-1)
		seen[pos] = true
	}
	positions := make([]int, 0, n)
	for pos := range seen {
		positions = append(positions, pos)
	}
	sort.Ints(positions)
	return positions
}

func writeAnnotatorFile(path string, truth [][]int, rng *rand.Rand, length, jitter int) error {
	var sb strings.Builder
	for i, boundaries := range truth {
		fields := []string{fmt.Sprintf("item_%03d", i+1)}
		for _, pos := range boundaries {
			marked := pos
			if jitter > 0 {
				marked += rng.Intn(2*jitter+1) - jitter
			}
			if marked < 0 {
				marked = 0
			}
			if marked >= length {
				marked = length - 1
			}
			fields = append(fields, fmt.Sprintf("%d", marked))
		}
		sb.WriteString(strings.Join(fields, "\t"))
		sb.WriteString("\n")
	}
	return os.WriteFile(path, []byte(sb.String()), 0o644)
}
