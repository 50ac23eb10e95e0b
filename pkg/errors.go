package pkg

import (
	"github.com/pkg/errors"
)

var (
	ErrInsufficientPrivilege = errors.New("insufficient privilege")
	ErrOpen                  = errors.New("open failure")
	ErrWrite                 = errors.New("write failure")
)

// kindError attaches one of the kinds above to the underlying os error.
// Error() returns only the os error text, which is what the operator sees.
type kindError struct {
	kind  error
	cause error
}

func (e *kindError) Error() string { return e.cause.Error() }

func (e *kindError) Cause() error { return e.cause }

func (e *kindError) Unwrap() error { return e.cause }

func (e *kindError) Is(target error) bool { return target == e.kind }

func withKind(kind, cause error) error {
	return &kindError{kind: kind, cause: cause}
}
