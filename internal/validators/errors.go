package validators

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrInvalidEntry is the umbrella error for every vault entry rule below.
	ErrInvalidEntry = errors.New("invalid vault entry")

	ErrEmptyID            = fmt.Errorf("%w: id is required", ErrInvalidEntry)
	ErrEmptyService       = fmt.Errorf("%w: service is required", ErrInvalidEntry)
	ErrShortCiphertext    = fmt.Errorf("%w: secret ciphertext is too short", ErrInvalidEntry)
	ErrNoFieldsToUpdate   = fmt.Errorf("%w: at least one field must be provided for update", ErrInvalidEntry)
	ErrFieldContainsNulls = fmt.Errorf("%w: field contains NUL bytes", ErrInvalidEntry)
)
