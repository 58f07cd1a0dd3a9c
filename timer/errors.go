package timer

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	ErrInvalidTransition = errors.New("invalid transition")
	ErrNegativeDuration  = errors.New("negative duration")
)

// InvalidTransitionError names the rejected command and the state it was issued in
type InvalidTransitionError struct {
	Op   string
	From State
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s not permitted while %s: %v", e.Op, e.From, ErrInvalidTransition)
}

// Is matches ErrInvalidTransition
func (e *InvalidTransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}
