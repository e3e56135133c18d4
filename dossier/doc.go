// Package dossier assembles per-persona plain-text dossier files from
// extracted source documents.
//
// A Registry declares the personas and their source files, loaded once
// from a YAML file and passed down as a value rather than read from
// global state. A Runner extracts every persona's sources on a bounded
// worker pool, then writes dossiers and the batch manifest in the
// registry's declared order. Documents are independent, so the batch is
// embarrassingly parallel; only the writes are ordered.
//
//	registry, err := dossier.LoadRegistry("personas.yaml")
//	runner := dossier.NewRunner(registry, dossier.RunnerConfig{
//	    SourceRoot: "./sources",
//	    OutDir:     "./data/dossiers",
//	})
//	manifest, err := runner.Run(ctx)
//
// A missing source file is fatal and aborts the whole batch; nothing is
// written unless every persona succeeds.
package dossier
