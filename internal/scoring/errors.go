package scoring

import "fmt"

// ErrTransport indicates the scoring request could not complete: network
// failure, connection refused, or a non-2xx status. Distinct from a
// payload-level error field, which the backend uses for application errors.
type ErrTransport struct {
	StatusCode int // 0 when the request never got a response
	Err        error
}

func (e *ErrTransport) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("scoring request failed with status %d", e.StatusCode)
	}
	return fmt.Sprintf("scoring request failed: %v", e.Err)
}

func (e *ErrTransport) Unwrap() error { return e.Err }

// ErrTimeout indicates the scoring request exceeded the configured deadline.
type ErrTimeout struct {
	Err error
}

func (e *ErrTimeout) Error() string {
	return fmt.Sprintf("scoring request timed out: %v", e.Err)
}

func (e *ErrTimeout) Unwrap() error { return e.Err }

// ErrServer indicates a 2xx response carrying an application-level error
// field instead of a result.
type ErrServer struct {
	Message string
}

func (e *ErrServer) Error() string {
	return fmt.Sprintf("scoring server error: %s", e.Message)
}

// ErrInvalidPayload indicates a 2xx response whose body does not conform to
// the expected result shape.
type ErrInvalidPayload struct {
	Body []byte
	Err  error
}

func (e *ErrInvalidPayload) Error() string {
	return fmt.Sprintf("invalid scoring payload: %v", e.Err)
}

func (e *ErrInvalidPayload) Unwrap() error { return e.Err }
