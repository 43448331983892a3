// Command cadence-detection computes inter-annotator agreement for cadence
// segmentation annotations. It reads one tab-separated file per annotator
// from a directory, scores every item with pairwise Cohen's Kappa, Pk, and
// WindowDiff, prints per-item and global results, and can persist the run
// to SQLite and export JSON or chart reports.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/onpoeet/cadence-detection/internal/agreement"
	"github.com/onpoeet/cadence-detection/internal/annotations"
	"github.com/onpoeet/cadence-detection/internal/config"
	"github.com/onpoeet/cadence-detection/internal/db"
	"github.com/onpoeet/cadence-detection/internal/version"
)

type cliFlags struct {
	annotationsDir string
	configPath     string
	dbPath         string
	migrationsDir  string
	jsonPath       string
	htmlPath       string
	pngPath        string
	windowSize     int
	boundary       int
	weighted       bool
	history        int
	migrateCmd     string
	showVersion    bool
}

func main() {
	cli := parseFlags()

	if cli.showVersion {
		fmt.Printf("cadence-detection %s (%s, built %s)\n", version.Version, version.GitSHA, version.BuildTime)
		return
	}

	cfg := config.Empty()
	if cli.configPath != "" {
		var err error
		cfg, err = config.Load(cli.configPath)
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}
	}
	resolve(&cli, cfg)

	if cli.migrateCmd != "" {
		if cli.dbPath == "" {
			log.Fatal("migrate requires a database path (-db)")
		}
		if err := runMigrate(cli); err != nil {
			log.Fatalf("migration failed: %v", err)
		}
		return
	}

	if cli.history > 0 {
		if cli.dbPath == "" {
			log.Fatal("history requires a database path (-db)")
		}
		if err := printHistory(cli.dbPath, cli.history); err != nil {
			log.Fatalf("failed to read run history: %v", err)
		}
		return
	}

	corpus, err := annotations.LoadDir(cli.annotationsDir)
	if err != nil {
		log.Fatalf("failed to load annotations: %v", err)
	}

	opts := agreement.Options{
		WindowSize: cli.windowSize,
		Boundary:   cli.boundary,
		Weighted:   cli.weighted,
	}
	summary := agreement.Evaluate(corpus, opts)
	printResults(summary)

	if cli.dbPath != "" {
		if err := recordRun(cli, opts, summary); err != nil {
			log.Fatalf("failed to persist run: %v", err)
		}
	}
	if cli.jsonPath != "" {
		if err := exportJSON(summary, cli.jsonPath); err != nil {
			log.Printf("Warning: failed to export JSON: %v", err)
		} else {
			log.Printf("Results exported to: %s", cli.jsonPath)
		}
	}
	if cli.htmlPath != "" {
		if err := agreement.WriteHTMLReport(cli.htmlPath, summary); err != nil {
			log.Printf("Warning: failed to write HTML report: %v", err)
		} else {
			log.Printf("HTML report written to: %s", cli.htmlPath)
		}
	}
	if cli.pngPath != "" {
		if err := agreement.WriteScorePlot(cli.pngPath, summary); err != nil {
			log.Printf("Warning: failed to write score plot: %v", err)
		} else {
			log.Printf("Score plot written to: %s", cli.pngPath)
		}
	}

	if len(summary.Items) == 0 {
		log.Fatal("no items could be evaluated")
	}
}

func parseFlags() cliFlags {
	cli := cliFlags{}

	flag.StringVar(&cli.annotationsDir, "annotations", "", "Directory of per-annotator .txt files")
	flag.StringVar(&cli.configPath, "config", "", "Path to JSON config file")
	flag.StringVar(&cli.dbPath, "db", "", "SQLite database for run persistence (optional)")
	flag.StringVar(&cli.migrationsDir, "migrations", "migrations", "Directory of schema migrations")
	flag.StringVar(&cli.jsonPath, "json", "", "Export results as JSON to this path")
	flag.StringVar(&cli.htmlPath, "html", "", "Write an HTML chart report to this path")
	flag.StringVar(&cli.pngPath, "png", "", "Write a PNG score plot to this path")
	flag.IntVar(&cli.windowSize, "k", 0, "WindowDiff window width (0 = use config or default)")
	flag.IntVar(&cli.boundary, "boundary", 0, "Boundary symbol (0 = use config or default)")
	flag.BoolVar(&cli.weighted, "weighted", false, "Use the weighted WindowDiff variant")
	flag.IntVar(&cli.history, "history", 0, "Print the N most recent persisted runs and exit")
	flag.StringVar(&cli.migrateCmd, "migrate", "", "Run a schema migration action (up, down, version) and exit")
	flag.BoolVar(&cli.showVersion, "version", false, "Print version information and exit")

	flag.Parse()
	return cli
}

// resolve fills unset flags from the config file and its defaults. Flags
// explicitly set on the command line win over the config.
func resolve(cli *cliFlags, cfg *config.Config) {
	if cli.annotationsDir == "" {
		cli.annotationsDir = cfg.GetAnnotationsDir()
	}
	if cli.dbPath == "" {
		cli.dbPath = cfg.GetDatabasePath()
	}
	if cli.htmlPath == "" {
		cli.htmlPath = cfg.GetReportHTML()
	}
	if cli.pngPath == "" {
		cli.pngPath = cfg.GetReportPNG()
	}
	if cli.windowSize == 0 {
		cli.windowSize = cfg.GetWindowSize()
	}
	if cli.boundary == 0 {
		cli.boundary = cfg.GetBoundary()
	}
	if !cli.weighted {
		cli.weighted = cfg.GetWeighted()
	}
}

func printResults(summary *agreement.Summary) {
	for _, item := range summary.Items {
		fmt.Println(item.ItemID)
		fmt.Printf("    K=%.4f\n", item.Kappa)
		fmt.Printf("    Pk=%.4f\n", item.Pk)
		fmt.Printf("    WD=%.4f\n", item.WindowDiff)
	}
	for _, failure := range summary.Failures {
		fmt.Printf("%s: SKIPPED (%s)\n", failure.ItemID, failure.Reason)
	}

	if len(summary.Items) > 0 {
		fmt.Printf("GLOBAL PAIRWISE KAPPA: %.4f (stddev %.4f)\n", summary.MeanKappa, summary.StdDevKappa)
		fmt.Printf("GLOBAL PAIRWISE Pk:    %.4f (stddev %.4f)\n", summary.MeanPk, summary.StdDevPk)
		fmt.Printf("GLOBAL PAIRWISE WD:    %.4f (stddev %.4f)\n", summary.MeanWindowDiff, summary.StdDevWindowDiff)
	}
}

func recordRun(cli cliFlags, opts agreement.Options, summary *agreement.Summary) error {
	store, err := db.NewDB(cli.dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer store.Close()

	runID, err := store.RecordRun(cli.annotationsDir, opts, summary)
	if err != nil {
		return err
	}
	log.Printf("Run recorded: %s", runID)
	return nil
}

func runMigrate(cli cliFlags) error {
	store, err := db.NewDB(cli.dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer store.Close()

	switch cli.migrateCmd {
	case "up":
		return store.MigrateUp(cli.migrationsDir)
	case "down":
		return store.MigrateDown(cli.migrationsDir)
	case "version":
		version, dirty, err := store.MigrateVersion(cli.migrationsDir)
		if err != nil {
			return err
		}
		fmt.Printf("version=%d dirty=%v\n", version, dirty)
		return nil
	default:
		return fmt.Errorf("unknown migrate action %q (want up, down, or version)", cli.migrateCmd)
	}
}

func printHistory(dbPath string, limit int) error {
	store, err := db.NewDB(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer store.Close()

	runs, err := store.Runs(limit)
	if err != nil {
		return err
	}
	for _, run := range runs {
		fmt.Printf("%s  %s  items=%d failed=%d  K=%.4f Pk=%.4f WD=%.4f\n",
			run.CreatedAt.Format("2006-01-02 15:04:05"), run.RunID,
			run.ItemCount, run.FailureCount,
			run.MeanKappa, run.MeanPk, run.MeanWindowDiff)
	}
	return nil
}

func exportJSON(summary *agreement.Summary, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	encoder := json.NewEncoder(f)
	encoder.SetIndent("", "  ")
	return encoder.Encode(summary)
}
