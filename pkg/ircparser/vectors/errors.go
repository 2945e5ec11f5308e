package vectors

import "fmt"

// ValidationError represents a schema-level validation error: the suite file
// itself violates structural requirements (missing version, no vectors).
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
}

// VectorError represents an error specific to an individual vector
// (missing ID, neither or both of want/want_err, unknown error kind).
type VectorError struct {
	Index   int    // 0-based index of the vector in the suite
	ID      string // vector ID (may be empty if the id field is missing)
	Field   string
	Message string
}

func (e *VectorError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("vector %q: %s: %s", e.ID, e.Field, e.Message)
	}
	return fmt.Sprintf("vector[%d]: %s: %s", e.Index, e.Field, e.Message)
}
