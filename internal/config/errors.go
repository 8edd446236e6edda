package config

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownEnvironment is returned when FINOVA_ENV or the --env flag
	// names a tier that is not development, staging, or production.
	ErrUnknownEnvironment = errors.New("unknown environment")
)

// InvalidValueError reports an environment variable that was present but
// could not be converted to its target type. Malformed values are fatal at
// startup so operator misconfiguration is never masked by a silent default.
type InvalidValueError struct {
	Key   string
	Value string
	Err   error
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid value %q for %s: %v", e.Value, e.Key, e.Err)
}

func (e *InvalidValueError) Unwrap() error {
	return e.Err
}
