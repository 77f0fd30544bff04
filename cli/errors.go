package cli

// ParseError is returned when arguments do not match the recognized flag set.
type ParseError struct {
	err error
}

func (e ParseError) Error() string {
	return e.err.Error()
}

// Unwrap returns the next error in the error chain.
func (e ParseError) Unwrap() error {
	return e.err
}

// CollaboratorError wraps the failure returned by the collaborator.
type CollaboratorError struct {
	err error
}

func (e CollaboratorError) Error() string {
	return e.err.Error()
}

// Unwrap returns the next error in the error chain.
func (e CollaboratorError) Unwrap() error {
	return e.err
}
