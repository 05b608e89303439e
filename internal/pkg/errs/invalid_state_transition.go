package errs

import "fmt"

// InvalidStateTransitionError indicates that a lifecycle state change was
// rejected by a transition rule. ParamName names the state field, From and
// To describe the rejected transition.
type InvalidStateTransitionError struct {
	ParamName string
	From      string
	To        string
	Cause     error
}

// NewInvalidStateTransitionError creates an InvalidStateTransitionError
// without a cause.
func NewInvalidStateTransitionError(paramName string, from string, to string) *InvalidStateTransitionError {
	return &InvalidStateTransitionError{
		ParamName: paramName,
		From:      from,
		To:        to,
	}
}

// NewInvalidStateTransitionErrorWithCause creates an
// InvalidStateTransitionError wrapping an underlying cause that states the
// violated rule.
func NewInvalidStateTransitionErrorWithCause(
	paramName string,
	from string,
	to string,
	cause error,
) *InvalidStateTransitionError {
	return &InvalidStateTransitionError{
		ParamName: paramName,
		From:      from,
		To:        to,
		Cause:     cause,
	}
}

func (e *InvalidStateTransitionError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s cannot go from %s to %s (cause: %s)",
			ErrInvalidStateTransition, e.ParamName, e.From, e.To, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s cannot go from %s to %s",
		ErrInvalidStateTransition, e.ParamName, e.From, e.To))
}

func (e *InvalidStateTransitionError) Unwrap() error {
	return ErrInvalidStateTransition
}
