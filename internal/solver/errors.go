package solver

import "fmt"

/*
ConstraintConflictError means the input snapshot is not reachable from
any valid mine placement: a derived constraint demanded a negative
mine count, more mines than it has cells, or both a safe and a mine
verdict for the same cell. It always indicates unsound input, never an
expected runtime condition, so it propagates to the caller untouched.
*/
type ConstraintConflictError struct {
	message string
}

// [ConstraintConflictError] implements [error]
func (e ConstraintConflictError) Error() string {
	return e.message
}

func conflictf(format string, args ...any) ConstraintConflictError {
	return ConstraintConflictError{fmt.Sprintf(format, args...)}
}
