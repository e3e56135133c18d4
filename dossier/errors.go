package dossier

import "fmt"

// MissingSourceError reports a declared source file that does not
// exist. It is fatal for the whole batch.
type MissingSourceError struct {
	PersonaID string
	Path      string
}

func (e *MissingSourceError) Error() string {
	return fmt.Sprintf("persona %s: missing source file: %s", e.PersonaID, e.Path)
}
