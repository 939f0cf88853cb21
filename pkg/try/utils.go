package try

func fromPanic(recovered interface{}) error {
	if err, ok := recovered.(error); ok {
		return ErrPanic.Wrap(err)
	}
	return ErrPanic.New("%v", recovered)
}
