package try

// Given runs computation once and captures its outcome. A non-nil error or
// a panic of any value produces a failed Try; Given itself never panics.
// Any non-nil error counts as a failure, including a nil pointer stored in
// the error interface. A panicked value is stored wrapped in ErrPanic, so a
// panicked error e is reachable through errors.Is and errors.As but is not
// itself the stored error.
func Given[T any](computation func() (T, error)) (t Try[T]) {
	defer func() {
		if r := recover(); r != nil {
			t = Failure[T](fromPanic(r))
		}
	}()

	v, err := computation()
	if err != nil {
		return Failure[T](err)
	}
	return Success(v)
}

// GivenValue is Given for computations that can only fail by panicking.
func GivenValue[T any](computation func() T) Try[T] {
	return Given(func() (T, error) {
		return computation(), nil
	})
}
