package domain

import (
	"fmt"
	"strings"
)

// ContentFinding locates one forbidden character in a file about to be
// committed, or in its name.
type ContentFinding struct {
	Path string
	Line int
	Col  int
	Rune rune
}

func (f ContentFinding) String() string {
	return fmt.Sprintf("%s:%d:%d U+%04X", f.Path, f.Line, f.Col, f.Rune)
}

// InvisibleCharsError reports invisible or otherwise forbidden Unicode
// found during the pre-commit content scan. The run fails before any
// repository mutation.
type InvisibleCharsError struct {
	Findings []ContentFinding
}

func (e *InvisibleCharsError) Error() string {
	parts := make([]string, 0, len(e.Findings))
	for _, f := range e.Findings {
		parts = append(parts, f.String())
	}
	return fmt.Sprintf("invisible or forbidden characters detected: %s", strings.Join(parts, ", "))
}
