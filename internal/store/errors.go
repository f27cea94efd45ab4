package store

import "fmt"

// ErrUnavailable indicates a backing-store read failed. Callers either
// propagate it or, where the prediction policy allows, degrade to empty
// defaults.
type ErrUnavailable struct {
	Op  string
	Err error
}

func (e *ErrUnavailable) Error() string {
	return fmt.Sprintf("store unavailable (%s): %v", e.Op, e.Err)
}

func (e *ErrUnavailable) Unwrap() error { return e.Err }

// ErrPersistence indicates a backing-store write failed. Propagated to the
// caller; never retried here.
type ErrPersistence struct {
	Op  string
	Err error
}

func (e *ErrPersistence) Error() string {
	return fmt.Sprintf("persistence failed (%s): %v", e.Op, e.Err)
}

func (e *ErrPersistence) Unwrap() error { return e.Err }

// ErrAssessmentNotFound indicates the assessment referenced by a prediction
// or readiness check does not exist.
type ErrAssessmentNotFound struct {
	AssessmentID string
}

func (e *ErrAssessmentNotFound) Error() string {
	return fmt.Sprintf("assessment %q not found", e.AssessmentID)
}

// ErrInvalidRecord indicates a stored record failed boundary validation
// (e.g. a mastery score outside 0-100 or an unknown cell code). Out-of-range
// data is rejected here rather than clamped inside the engine.
type ErrInvalidRecord struct {
	Entity string
	Reason string
}

func (e *ErrInvalidRecord) Error() string {
	return fmt.Sprintf("invalid %s record: %s", e.Entity, e.Reason)
}
