package folder

import (
	"errors"
	"fmt"
)

// ErrInvalidConfiguration is the class for all construction-time
// configuration failures in this package. Specific sentinels wrap it, so
// callers can match either the class or the exact cause with errors.Is.
var ErrInvalidConfiguration = errors.New("invalid folder configuration")

// Configuration errors.
var (
	ErrInvalidHeadRatio = fmt.Errorf("%w: head_ratio must be in (0, 1) exclusive", ErrInvalidConfiguration)
	ErrInvalidPattern   = fmt.Errorf("%w: structural pattern does not compile", ErrInvalidConfiguration)
)
