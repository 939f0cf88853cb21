package try

import "github.com/zeebo/errs"

var (
	// ErrUnwrap wraps the stored error when the value of a failed Try is requested.
	ErrUnwrap = errs.Class("try: get on failed result")

	// ErrPanic wraps a panic recovered while running a computation.
	ErrPanic = errs.Class("try: recovered panic")

	class = errs.Class("try")

	// ErrEmpty is held by the zero Try and by Failure(nil).
	ErrEmpty = class.New("empty result")
)
