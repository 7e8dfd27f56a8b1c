package errors

import (
	"strings"
	"unicode"
)

// maxComponentIDLength bounds component identifiers. Maven artifactIds and Go
// module paths are far shorter in practice.
const maxComponentIDLength = 256

// ValidateComponentID validates a component identifier read from a build
// manifest or a graph file.
//
// The rules are intentionally conservative:
//   - No empty identifiers
//   - No control characters or null bytes
//   - No surrounding whitespace
//   - Maximum length of 256 characters
func ValidateComponentID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidGraph, "component id cannot be empty")
	}

	if len(id) > maxComponentIDLength {
		return New(ErrCodeInvalidGraph, "component id too long (max %d characters)", maxComponentIDLength)
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidGraph, "component id %q contains control characters", id)
		}
	}

	if strings.TrimSpace(id) != id {
		return New(ErrCodeInvalidGraph, "component id %q has surrounding whitespace", id)
	}

	return nil
}

// ValidateModulePath validates a module directory declared inside a build
// manifest (a Maven <module> or a go.work use directive).
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No absolute paths (must be relative to the declaring manifest)
//
// Parent traversal ("../shared") is allowed since both Maven and Go
// workspaces permit modules outside the declaring directory.
func ValidateModulePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "module path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "module path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "module path contains invalid characters")
		}
	}

	if strings.HasPrefix(path, "/") || strings.HasPrefix(path, "\\") {
		return New(ErrCodeInvalidPath, "module path must be relative (got %q)", path)
	}

	return nil
}
