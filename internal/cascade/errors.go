package cascade

import (
	"errors"
	"fmt"
	"strings"
)

// ErrSchema indicates the headers do not describe a usable hierarchy.
var ErrSchema = errors.New("invalid cascade schema")

// SchemaError describes why a header set was rejected.
type SchemaError struct {
	// Reason is a human-readable explanation.
	Reason string

	// Levels holds the levels that were found, if any.
	Levels []Level
}

func (e *SchemaError) Error() string {
	if len(e.Levels) == 0 {
		return fmt.Sprintf("%v: %s", ErrSchema, e.Reason)
	}
	parts := make([]string, 0, len(e.Levels))
	for _, lvl := range e.Levels {
		parts = append(parts, fmt.Sprintf("%s (%s)", lvl.ID, lvl.Coverage()))
	}
	return fmt.Sprintf("%v: %s: %s", ErrSchema, e.Reason, strings.Join(parts, ", "))
}

// Is reports whether target is ErrSchema.
func (e *SchemaError) Is(target error) bool {
	return target == ErrSchema
}
