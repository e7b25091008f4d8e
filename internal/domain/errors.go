package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrInputRead     = errors.New("input read failure")
	ErrOutputWrite   = errors.New("output write failure")
	ErrInvalidConfig = errors.New("invalid config")
	ErrNotFound      = errors.New("not found")
	ErrLogSetup      = errors.New("log setup failure")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindInputRead     ErrorKind = "input_read"
	KindOutputWrite   ErrorKind = "output_write"
	KindInvalidConfig ErrorKind = "invalid_config"
	KindNotFound      ErrorKind = "not_found"
	KindLogSetup      ErrorKind = "log_setup"
)

var sentinels = map[ErrorKind]error{
	KindInputRead:     ErrInputRead,
	KindOutputWrite:   ErrOutputWrite,
	KindInvalidConfig: ErrInvalidConfig,
	KindNotFound:      ErrNotFound,
	KindLogSetup:      ErrLogSetup,
}

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // Optional: relevant file path
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is lets errors.Is match an OpError against the sentinel for its kind.
func (e *OpError) Is(target error) bool {
	if e == nil {
		return false
	}
	s, ok := sentinels[e.Kind]
	return ok && s == target
}

// IsKind helps callers classify errors without depending on infra packages.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}
