// core/classify/errors.go
package classify

import "fmt"

// InsufficientDataError means a training class was empty after label
// filtering. No model is produced.
type InsufficientDataError struct {
	Dark  int
	Light int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("need at least one dark and one light sequence (got %d dark, %d light)", e.Dark, e.Light)
}

// LengthMismatchError means a query sequence does not share the model's
// alignment length, so column indices would be meaningless. No score is
// produced.
type LengthMismatchError struct {
	SequenceID string
	Got        int
	Want       int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("sequence %s has length %d, model was trained on alignment length %d (align to the same reference as training)", e.SequenceID, e.Got, e.Want)
}
