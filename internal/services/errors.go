package services

// UpstreamError reports a failed call to a third-party provider. Its
// message is the provider's own error text.
type UpstreamError struct {
	Provider string
	Err      error
}

func (e *UpstreamError) Error() string { return e.Err.Error() }

func (e *UpstreamError) Unwrap() error { return e.Err }
