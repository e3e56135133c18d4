package dossier

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"

	personas "github.com/UXdave/Synthetic-personas"
)

// ExtractFunc extracts the text of one source file. The default uses the
// personas extractor; tests and callers with custom pipelines can
// substitute their own.
type ExtractFunc func(ctx context.Context, path string) (string, error)

// RunnerConfig configures a batch run.
type RunnerConfig struct {
	// SourceRoot is the directory persona source paths are relative to.
	SourceRoot string

	// OutDir is where dossiers and the manifest are written.
	OutDir string

	// Workers bounds the extraction pool. Zero means one worker per CPU
	// core.
	Workers int

	// Extract overrides the per-source extraction function.
	Extract ExtractFunc
}

// Runner extracts all of a registry's personas concurrently and writes
// their dossiers in declared order.
type Runner struct {
	registry Registry
	config   RunnerConfig
}

// NewRunner creates a Runner for a registry. Zero-value config fields
// are filled with defaults.
func NewRunner(registry Registry, config RunnerConfig) *Runner {
	if config.Workers <= 0 {
		config.Workers = runtime.NumCPU()
	}
	if config.Extract == nil {
		config.Extract = defaultExtract
	}
	return &Runner{registry: registry, config: config}
}

// defaultExtract runs the standard extractor, discarding warnings.
func defaultExtract(ctx context.Context, path string) (string, error) {
	extracted, _, err := personas.Open(path).TextContext(ctx)
	return extracted, err
}

// Run extracts every persona's sources on a bounded worker pool, then
// writes one dossier per persona plus the manifest, all in the
// registry's declared order. The first fatal error aborts the batch and
// nothing is written.
//
// Extraction itself is pure computation over independent buffers, so
// worker results are deterministic regardless of completion order.
func (r *Runner) Run(ctx context.Context) (*Manifest, error) {
	declared := r.registry.Personas()
	dossiers := make([]string, len(declared))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.config.Workers)

	for i, persona := range declared {
		i, persona := i, persona
		g.Go(func() error {
			built, err := r.buildDossier(ctx, persona)
			if err != nil {
				return err
			}
			dossiers[i] = built
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(r.config.OutDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	manifest := &Manifest{}
	for i, persona := range declared {
		filename := DossierFilename(persona)
		path := filepath.Join(r.config.OutDir, filename)
		if err := os.WriteFile(path, []byte(dossiers[i]), 0o644); err != nil {
			return nil, fmt.Errorf("writing dossier %s: %w", filename, err)
		}
		manifest.GeneratedFiles = append(manifest.GeneratedFiles, filename)
	}

	if err := manifest.Write(r.config.OutDir); err != nil {
		return nil, err
	}

	return manifest, nil
}

// buildDossier extracts one persona's sources in declared order.
func (r *Runner) buildDossier(ctx context.Context, persona Persona) (string, error) {
	sources := make([]SourceText, 0, len(persona.Sources))

	for _, rel := range persona.Sources {
		path := filepath.Join(r.config.SourceRoot, rel)
		if _, err := os.Stat(path); err != nil {
			return "", &MissingSourceError{PersonaID: persona.ID, Path: path}
		}

		extracted, err := r.config.Extract(ctx, path)
		if err != nil {
			return "", fmt.Errorf("persona %s: %w", persona.ID, err)
		}

		sources = append(sources, SourceText{Path: rel, Text: extracted})
	}

	return BuildDossier(persona, sources), nil
}
