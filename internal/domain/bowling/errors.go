package bowling

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidOperation matches every error returned by this package.
	ErrInvalidOperation = errors.New("invalid operation")
	// ErrInvalidRoll is the kind of errors caused by an illegal roll.
	ErrInvalidRoll = errors.New("invalid roll")
	// ErrInvalidFrame is the kind of errors caused by an illegal frame lookup or insertion.
	ErrInvalidFrame = errors.New("invalid frame")
)

// OperationError reports a rejected operation on a Frame or a Game.
// Error returns only the human readable message.
type OperationError struct {
	Kind    error
	Message string
}

func (e *OperationError) Error() string {
	return e.Message
}

// Unwrap exposes both the generic and the specific kind to errors.Is.
func (e *OperationError) Unwrap() []error {
	return []error{ErrInvalidOperation, e.Kind}
}

func invalidRoll(format string, args ...interface{}) error {
	return &OperationError{Kind: ErrInvalidRoll, Message: fmt.Sprintf(format, args...)}
}

func invalidFrame(format string, args ...interface{}) error {
	return &OperationError{Kind: ErrInvalidFrame, Message: fmt.Sprintf(format, args...)}
}
