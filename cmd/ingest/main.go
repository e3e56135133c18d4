// Command ingest builds persona dossiers from a registry of source
// documents. It extracts every declared source, writes one plain-text
// dossier per persona, and finishes with a manifest of the generated
// files.
//
// Usage:
//
//	ingest -registry personas.yaml -sources ./insights -out ./dossiers
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/UXdave/Synthetic-personas/dossier"
)

func main() {
	registryPath := flag.String("registry", "personas.yaml", "Persona registry YAML file")
	sourceRoot := flag.String("sources", ".", "Directory persona source paths are relative to")
	outDir := flag.String("out", "dossiers", "Output directory for dossiers and manifest")
	workers := flag.Int("workers", 0, "Extraction workers (default: one per CPU core)")
	quiet := flag.Bool("quiet", false, "Suppress per-file output")
	flag.Parse()

	if err := run(*registryPath, *sourceRoot, *outDir, *workers, *quiet); err != nil {
		fmt.Fprintf(os.Stderr, "ingest: %v\n", err)
		os.Exit(1)
	}
}

func run(registryPath, sourceRoot, outDir string, workers int, quiet bool) error {
	registry, err := dossier.LoadRegistry(registryPath)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := dossier.NewRunner(registry, dossier.RunnerConfig{
		SourceRoot: sourceRoot,
		OutDir:     outDir,
		Workers:    workers,
	})

	manifest, err := runner.Run(ctx)
	if err != nil {
		return err
	}

	if !quiet {
		for _, name := range manifest.GeneratedFiles {
			fmt.Println(name)
		}
		fmt.Printf("wrote %d dossiers to %s\n", len(manifest.GeneratedFiles), outDir)
	}
	return nil
}
