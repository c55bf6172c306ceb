package customerr

// BadRequestError marks a caller mistake: a missing required parameter or
// an unresolvable required enum value.
type BadRequestError struct {
	Err string
}

func (e *BadRequestError) Error() string {
	return e.Err
}

// UnsupportedIntentError marks an intent name the dispatcher does not know.
type UnsupportedIntentError struct {
	Intent string
}

func (e *UnsupportedIntentError) Error() string {
	return "intent not supported: " + e.Intent
}
