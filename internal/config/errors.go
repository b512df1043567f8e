package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is the root of every configuration error. Callers can
// test for it with errors.Is regardless of which rule was violated.
var ErrInvalidConfig = errors.New("invalid configuration")

// Configuration validation errors.
// These errors are returned by Config.Validate and LoadConfigFile. Each one
// wraps ErrInvalidConfig.
var (
	// ErrNoSourceFiles is returned when source-files is empty.
	ErrNoSourceFiles = fmt.Errorf("%w: source-files must list at least one document", ErrInvalidConfig)

	// ErrNoTagFile is returned when tag-file is not set.
	ErrNoTagFile = fmt.Errorf("%w: tag-file is required", ErrInvalidConfig)

	// ErrNoCompiledDirectory is returned when compiled-directory is not set
	// but documents are to be compiled.
	ErrNoCompiledDirectory = fmt.Errorf("%w: compiled-directory is required", ErrInvalidConfig)

	// ErrNoTagField is returned when tag-field is empty.
	ErrNoTagField = fmt.Errorf("%w: tag-field must not be empty", ErrInvalidConfig)

	// ErrInvalidTagSuffix is returned when tag-suffix is not a single word
	// character. Any other suffix would produce entries outside the tag
	// grammar.
	ErrInvalidTagSuffix = fmt.Errorf("%w: tag-suffix must be a single letter, digit or underscore", ErrInvalidConfig)

	// ErrDuplicateSourceFile is returned when the same document is listed twice.
	ErrDuplicateSourceFile = fmt.Errorf("%w: source-files lists a document twice", ErrInvalidConfig)
)
