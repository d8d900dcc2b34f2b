package router

import "fmt"

// ClassificationError reports a failed classification: the model call errored,
// or its output did not conform to the route enumeration. The orchestrator
// decides fallback policy; no default route is guessed here.
type ClassificationError struct {
	Output string // raw model output, when the call itself succeeded
	Err    error
}

func (e *ClassificationError) Error() string {
	if e.Output != "" {
		return fmt.Sprintf("classification failed: %v (output: %q)", e.Err, e.Output)
	}
	return fmt.Sprintf("classification failed: %v", e.Err)
}

func (e *ClassificationError) Unwrap() error {
	return e.Err
}
