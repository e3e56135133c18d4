package dossier

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// NoTextMarker is written in place of a source's section body when
// extraction yielded nothing.
const NoTextMarker = "[NO EXTRACTED TEXT]"

// SourceText is one extracted source document: the path declared in the
// registry and whatever text came out of it.
type SourceText struct {
	Path string
	Text string
}

// BuildDossier renders one persona's dossier: identity headers followed
// by one section per source, each headed by a SOURCE marker line. The
// result always ends with a single trailing newline.
func BuildDossier(persona Persona, sources []SourceText) string {
	sections := []string{
		fmt.Sprintf("Persona ID: %s", persona.ID),
		fmt.Sprintf("Source slug: %s", persona.Slug),
		"",
	}

	for _, src := range sources {
		sections = append(sections, fmt.Sprintf("===== SOURCE: %s =====", src.Path))

		body := strings.TrimSpace(src.Text)
		if body == "" {
			body = NoTextMarker
		}
		sections = append(sections, body, "")
	}

	return strings.TrimSpace(strings.Join(sections, "\n")) + "\n"
}

// DossierFilename returns the output filename for a persona.
func DossierFilename(persona Persona) string {
	return fmt.Sprintf("%s_%s.txt", persona.ID, persona.Slug)
}

// Manifest records the files a batch run generated, in declared order.
type Manifest struct {
	GeneratedFiles []string `json:"generated_files"`
}

// Write stores the manifest as manifest.json in the output directory.
// It is written once, after every dossier has succeeded.
func (m *Manifest) Write(outDir string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding manifest: %w", err)
	}
	data = append(data, '\n')

	path := filepath.Join(outDir, "manifest.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}
	return nil
}
