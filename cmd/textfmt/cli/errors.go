package cli

// SilentError marks an error whose message has already reached the user.
// main.go skips printing errors of this type so nothing shows up twice.
type SilentError struct {
	Err error
}

func (e *SilentError) Error() string {
	return e.Err.Error()
}

func (e *SilentError) Unwrap() error {
	return e.Err
}

// NewSilentError wraps err so that main.go exits non-zero without printing it
// again. Use it after writing a user-facing message yourself.
func NewSilentError(err error) *SilentError {
	return &SilentError{Err: err}
}
