package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/platewise/menuscan/pkg/menuscan"
	"github.com/platewise/menuscan/pkg/menuscan/config"
	"github.com/platewise/menuscan/pkg/menuscan/htmltext"
	"github.com/platewise/menuscan/pkg/menuscan/store"
	"github.com/platewise/menuscan/pkg/menuscan/store/sqlite"
)

func main() {
	var (
		inputPath   = flag.String("input", "", "Input file (default: stdin)")
		mode        = flag.String("mode", "scan", "Pipeline: scan (ranked candidates) or paste (plain-text filter)")
		htmlInput   = flag.Bool("html", false, "Treat input as HTML and extract visible text first")
		lexiconPath = flag.String("lexicon", "", "Classifier lexicon YAML (optional)")
		filterPath  = flag.String("filter", "", "Plain-text filter thresholds YAML (optional)")
		dbPath      = flag.String("db", "", "SQLite path to save a snapshot (optional)")
	)
	flag.Parse()

	if *mode != "scan" && *mode != "paste" {
		log.Fatalf("unknown mode %q (want scan or paste)", *mode)
	}

	engine, err := buildEngine(*lexiconPath, *filterPath)
	if err != nil {
		log.Fatal(err)
	}

	text, err := readInput(*inputPath)
	if err != nil {
		log.Fatal(err)
	}

	var lines []string
	if *htmlInput {
		lines = htmltext.Lines(text)
	} else {
		lines = strings.Split(text, "\n")
	}

	ctx := context.Background()

	switch *mode {
	case "scan":
		cands := engine.Extract(lines)
		if len(cands) == 0 {
			fmt.Println("no candidates found")
		}
		for _, c := range cands {
			fmt.Printf("%.2f  %s\n", c.Confidence, c.Text)
		}
		if *dbPath != "" {
			items := make([]store.Item, len(cands))
			for i, c := range cands {
				items[i] = store.Item{Text: c.Text, Norm: c.Norm, Confidence: c.Confidence}
			}
			id, err := saveSnapshot(ctx, *dbPath, "scan", lines, items)
			if err != nil {
				log.Fatal(err)
			}
			fmt.Println("snapshot saved:", id)
		}
	case "paste":
		out := engine.FilterPlainText(strings.Join(lines, "\n"))
		if out == "" {
			fmt.Println("no lines accepted")
			return
		}
		fmt.Println(out)
	}
}

// buildEngine loads optional configuration and constructs the engine.
func buildEngine(lexiconPath, filterPath string) (*menuscan.Engine, error) {
	loader := &config.Loader{
		LexiconPath: lexiconPath,
		FilterPath:  filterPath,
	}
	comp, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return menuscan.New(menuscan.Options{
		Lexicon: &comp.Lexicon,
		Filter:  &comp.Filter,
	}), nil
}

func readInput(path string) (string, error) {
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(data), nil
}

func saveSnapshot(ctx context.Context, dbPath, source string, raw []string, items []store.Item) (string, error) {
	st, err := sqlite.Open(ctx, dbPath)
	if err != nil {
		return "", fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	snap := store.NewSnapshotBuilder().Build(source, raw, items)
	if err := st.SaveSnapshot(ctx, snap); err != nil {
		return "", fmt.Errorf("save snapshot: %w", err)
	}
	return snap.ID, nil
}
