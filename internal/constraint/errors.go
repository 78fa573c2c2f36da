package constraint

import (
	"errors"
	"fmt"
)

// ErrInvalidConfiguration is the class for all construction-time
// configuration failures. Specific sentinels wrap it, so callers can match
// the class or the exact cause with errors.Is.
var ErrInvalidConfiguration = errors.New("invalid constraint configuration")

// Configuration errors.
var (
	ErrInvalidMaxLines = fmt.Errorf("%w: max_lines must be >= 1", ErrInvalidConfiguration)
	ErrInvalidMaxChars = fmt.Errorf("%w: max_chars must be >= 1", ErrInvalidConfiguration)
)
