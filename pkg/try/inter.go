package try

// Outcome is the read side shared by both variants of a Try.
type Outcome[T any] interface {
	// IsSuccess returns true if the computation produced a value
	IsSuccess() bool
	// IsFailure returns true if the computation failed
	IsFailure() bool
	// Err returns the failure, nil on success
	Err() error
	// GetOrElse returns the value, or alternative on failure
	GetOrElse(alternative T) T
}

var _ Outcome[any] = Try[any]{}
