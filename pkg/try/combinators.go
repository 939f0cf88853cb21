package try

// Map applies transform to the value of a successful Try inside the same
// boundary as Given. A failed input is passed through and transform is
// never called.
func Map[In, Out any](input Try[In], transform func(v In) Out) Try[Out] {
	if input.IsSuccess() {
		return GivenValue(func() Out {
			return transform(input.value)
		})
	}
	return failureFrom[In, Out](input)
}

// Then is Map for transforms that report failure with an error.
func Then[In, Out any](input Try[In], transform func(v In) (Out, error)) Try[Out] {
	if input.IsSuccess() {
		return Given(func() (Out, error) {
			return transform(input.value)
		})
	}
	return failureFrom[In, Out](input)
}

// FlatMap switches a successful Try to the Try returned by onSuccess.
func FlatMap[In, Out any](input Try[In], onSuccess func(v In) Try[Out]) Try[Out] {
	if input.IsSuccess() {
		out := GivenValue(func() Try[Out] {
			return onSuccess(input.value)
		})
		if out.IsFailure() {
			return failureFrom[Try[Out], Out](out)
		}
		return out.value
	}
	return failureFrom[In, Out](input)
}

// Fold reduces a Try to a concrete value, calling exactly one handler.
func Fold[In, Out any](input Try[In],
	onSuccess func(v In) Out,
	onFailure func(err error) Out) Out {

	if input.IsSuccess() {
		return onSuccess(input.value)
	}
	return onFailure(input.Err())
}
