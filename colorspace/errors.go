package colorspace

import "fmt"

// ConversionError reports color input that could not be converted.
type ConversionError struct {
	Input  string
	Reason string
	Err    error
}

func (e *ConversionError) Error() string {
	s := fmt.Sprintf("cannot convert %s: %s", e.Input, e.Reason)
	if e.Err != nil {
		s += fmt.Sprintf(": %v", e.Err)
	}
	return s
}

// Unwrap returns the underlying cause for errors.Is/As.
func (e *ConversionError) Unwrap() error { return e.Err }
