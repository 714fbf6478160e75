package api

import "fmt"

// RequestError reports a transport failure or a non-200 status.
type RequestError struct {
	Path   string
	Status int   // 0 when the request never got a response
	Err    error // underlying transport error, if any
}

func (e *RequestError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("request %s failed: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("request %s failed: status %d", e.Path, e.Status)
}

func (e *RequestError) Unwrap() error { return e.Err }

// DecodeError reports a 200 response whose body could not be decoded
// into the declared response shape.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding response from %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
