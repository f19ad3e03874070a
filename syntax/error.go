package syntax

import "fmt"

// Error is a diagnostic produced while parsing. Parsing never aborts on
// an Error: it is accumulated and returned alongside the tree.
type Error struct {
	// Message is a human-readable description of the problem.
	Message string
	// Offset is the byte offset into the source text where the problem
	// was detected.
	Offset int
}

// Error implements the error interface so a syntax.Error can be used
// anywhere a plain Go error is expected.
func (e Error) Error() string {
	return fmt.Sprintf("%d: %s", e.Offset, e.Message)
}
