package refine

import "fmt"

// TransportError represents a failure to reach the AI service or an error
// returned by it. Authentication is set when the failure is a credential
// problem rather than a transient one.
type TransportError struct {
	Message        string
	Authentication bool
	Cause          error
}

func (e *TransportError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}

// ResponseFormatError indicates the AI service replied, but the reply could
// not be interpreted as a refined result.
type ResponseFormatError struct {
	Detail string
	Cause  error
}

func (e *ResponseFormatError) Error() string {
	return "The AI service returned an unexpected response"
}

func (e *ResponseFormatError) Unwrap() error {
	return e.Cause
}
