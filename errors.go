package scopedstats

import (
	"fmt"

	goerrors "github.com/go-errors/errors"
)

// UsageError indicates a query that requires a recording which never
// happened. Match with errors.As.
type UsageError struct {
	msg string
}

var _ error = (*UsageError)(nil)

func (e *UsageError) Error() string {
	return e.msg
}

// ValidationError indicates a rejected instrumentation value, such as a
// non-finite increment amount. Match with errors.As.
type ValidationError struct {
	msg string
}

var _ error = (*ValidationError)(nil)

func (e *ValidationError) Error() string {
	return e.msg
}

// newUsageError wraps the error to capture the caller's stack, which is
// usually the only hint to where the recorder was misused.
func newUsageError(format string, a ...any) error {
	return goerrors.Wrap(&UsageError{msg: fmt.Sprintf(format, a...)}, 2)
}

func newValidationError(format string, a ...any) error {
	return goerrors.Wrap(&ValidationError{msg: fmt.Sprintf(format, a...)}, 2)
}
