// Package docx extracts text from DOCX sources by delegating to an
// OS-level text conversion utility.
//
// The converter is a black box: it either writes plain text to stdout or
// exits non-zero with diagnostics on stderr. No DOCX parsing happens in
// this module; the converted text is filtered line by line with the same
// cleaner used for PDF segments, by the caller.
package docx

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// DefaultCommand is the conversion command used when none is configured:
// macOS textutil writing plain text to stdout. The source path is
// appended as the final argument.
var DefaultCommand = []string{"textutil", "-convert", "txt", "-stdout"}

// ToolError reports a converter that exited non-zero. The stderr output
// is attached because it is the only diagnostic the black box offers.
type ToolError struct {
	Path   string
	Stderr string
	Err    error
}

func (e *ToolError) Error() string {
	msg := fmt.Sprintf("failed to convert %s: %v", e.Path, e.Err)
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return msg
}

func (e *ToolError) Unwrap() error {
	return e.Err
}

// Converter runs an external text conversion command against DOCX files.
type Converter struct {
	command []string
}

// NewConverter returns a Converter using DefaultCommand.
func NewConverter() *Converter {
	return NewConverterWithCommand(DefaultCommand)
}

// NewConverterWithCommand returns a Converter running the given command.
// The source path is appended as the final argument.
func NewConverterWithCommand(command []string) *Converter {
	cloned := make([]string, len(command))
	copy(cloned, command)
	return &Converter{command: cloned}
}

// Convert runs the conversion command for one source file and returns its
// stdout as text. A non-zero exit is returned as a *ToolError; there are
// no retries.
func (c *Converter) Convert(ctx context.Context, path string) (string, error) {
	if len(c.command) == 0 {
		return "", fmt.Errorf("no conversion command configured")
	}

	args := append(append([]string(nil), c.command[1:]...), path)
	cmd := exec.CommandContext(ctx, c.command[0], args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", &ToolError{
			Path:   path,
			Stderr: strings.TrimSpace(stderr.String()),
			Err:    err,
		}
	}

	return stdout.String(), nil
}
