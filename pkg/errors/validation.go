package errors

import (
	"strings"
	"unicode"
)

// ValidateVertexLabel validates a vertex label read from external input
// (graph documents, CLI arguments, HTTP payloads).
//
// The validation rules are intentionally conservative:
//   - No empty labels
//   - No control characters or null bytes
//   - Maximum length of 256 characters
//
// The graph engine itself accepts any comparable value; this guard applies
// only at trust boundaries where labels arrive as text.
func ValidateVertexLabel(label string) error {
	if label == "" {
		return New(ErrCodeInvalidVertex, "vertex label cannot be empty")
	}

	if len(label) > 256 {
		return New(ErrCodeInvalidVertex, "vertex label too long (max 256 characters)")
	}

	for _, r := range label {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidVertex, "vertex label contains invalid control characters")
		}
	}

	return nil
}

// ValidateOutputPath validates a user-supplied output file path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}

// ValidateGraphName validates a graph name used in manifests and cache keys.
// It ensures the name is a simple identifier without path components.
func ValidateGraphName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "graph name cannot be empty")
	}

	if strings.ContainsAny(name, "/\\") {
		return New(ErrCodeInvalidInput, "graph name cannot contain path separators")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "graph name contains invalid control characters")
		}
	}

	return nil
}
