package vectors

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	// MaxSuiteFileSize is the maximum allowed size for a suite file (1MB).
	MaxSuiteFileSize = 1 * 1024 * 1024

	// MaxVectorCount is the maximum number of vectors allowed in one suite.
	MaxVectorCount = 1000

	// SupportedVersion is the currently supported suite format version.
	SupportedVersion = 1
)

// errorKinds are the accepted want_err values.
var errorKinds = map[string]bool{
	"empty_input":      true,
	"malformed_tags":   true,
	"malformed_prefix": true,
	"invalid_command":  true,
}

// sanitizePathError removes the path from os.PathError so error messages
// don't expose file system paths to users.
func sanitizePathError(err error) error {
	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		return fmt.Errorf("%s: %w", pathErr.Op, pathErr.Err)
	}
	return err
}

// Load reads and parses a suite file from the given path.
// Returns an error if the file cannot be read, is too large, or fails
// validation. Non-regular files (FIFO, device, socket) are rejected and the
// size limit is enforced during the read, not just at stat time.
func Load(path string) (*Suite, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open suite file: %w", sanitizePathError(err))
	}
	defer f.Close()

	// Stat the file descriptor (not the path) to avoid TOCTOU
	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat suite file: %w", sanitizePathError(err))
	}
	if !info.Mode().IsRegular() {
		return nil, errors.New("suite file must be a regular file (not FIFO, device, or special file)")
	}
	if info.Size() == 0 {
		return nil, errors.New("suite file is empty")
	}
	if info.Size() > MaxSuiteFileSize {
		return nil, fmt.Errorf("suite file too large: %d bytes (max %d)", info.Size(), MaxSuiteFileSize)
	}

	// Read MaxSuiteFileSize+1 to detect if the file grows beyond the limit
	data, err := io.ReadAll(io.LimitReader(f, MaxSuiteFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read suite file: %w", sanitizePathError(err))
	}
	if len(data) > MaxSuiteFileSize {
		return nil, fmt.Errorf("suite file too large: %d bytes (max %d)", len(data), MaxSuiteFileSize)
	}

	return LoadBytes(data)
}

// LoadBytes parses a suite from a byte slice.
func LoadBytes(data []byte) (*Suite, error) {
	if len(data) == 0 {
		return nil, errors.New("suite file is empty")
	}
	if len(data) > MaxSuiteFileSize {
		return nil, fmt.Errorf("suite file too large: %d bytes (max %d)", len(data), MaxSuiteFileSize)
	}

	var s Suite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// Validate performs schema-level validation on the suite:
//   - supported version number
//   - at least one vector, at most MaxVectorCount
//   - unique non-empty IDs
//   - exactly one of want / want_err per vector
//   - known want_err kind
func (s *Suite) Validate() error {
	if s.Version != SupportedVersion {
		return &ValidationError{
			Field:   "version",
			Message: fmt.Sprintf("unsupported version %d (only version %d is supported)", s.Version, SupportedVersion),
		}
	}

	if len(s.Vectors) == 0 {
		return &ValidationError{
			Field:   "vectors",
			Message: "at least one vector is required",
		}
	}
	if len(s.Vectors) > MaxVectorCount {
		return &ValidationError{
			Field:   "vectors",
			Message: fmt.Sprintf("too many vectors (%d), maximum allowed is %d", len(s.Vectors), MaxVectorCount),
		}
	}

	seenIDs := make(map[string]int, len(s.Vectors))

	for i, v := range s.Vectors {
		if v.ID == "" {
			return &VectorError{
				Index:   i,
				Field:   "id",
				Message: "id is required",
			}
		}
		if prevIndex, exists := seenIDs[v.ID]; exists {
			return &VectorError{
				Index:   i,
				ID:      v.ID,
				Field:   "id",
				Message: fmt.Sprintf("duplicate id (previously defined at vector[%d])", prevIndex),
			}
		}
		seenIDs[v.ID] = i

		if (v.Want == nil) == (v.WantErr == "") {
			return &VectorError{
				Index:   i,
				ID:      v.ID,
				Field:   "want",
				Message: "exactly one of want and want_err must be set",
			}
		}
		if v.WantErr != "" && !errorKinds[v.WantErr] {
			return &VectorError{
				Index:   i,
				ID:      v.ID,
				Field:   "want_err",
				Message: fmt.Sprintf("unknown error kind %q", v.WantErr),
			}
		}
		if v.Want != nil && v.Want.Command == "" {
			return &VectorError{
				Index:   i,
				ID:      v.ID,
				Field:   "want.command",
				Message: "command is required",
			}
		}
	}

	return nil
}
