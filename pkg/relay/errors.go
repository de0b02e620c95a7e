package relay

// CompletionError reports a failed call to the completion provider.
type CompletionError struct {
	Err error
}

func (e *CompletionError) Error() string {
	return "Groq API error: " + e.Err.Error()
}

func (e *CompletionError) Unwrap() error {
	return e.Err
}

// SynthesisError reports a failed, timed out or rejected call to the
// synthesis provider.
type SynthesisError struct {
	Err error
}

func (e *SynthesisError) Error() string {
	return "TTS error: " + e.Err.Error()
}

func (e *SynthesisError) Unwrap() error {
	return e.Err
}
