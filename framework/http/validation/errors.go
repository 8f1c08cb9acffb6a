package validation

import "strings"

// ValidationError is a single failed field. It is always recoverable: the
// caller redisplays the form with Message next to Field.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ErrorList is the error value of a rejected submission, one entry per
// invalid field.
type ErrorList []*ValidationError

func (l ErrorList) Error() string {
	switch len(l) {
	case 0:
		return "validation passed"
	case 1:
		return l[0].Error()
	}
	msgs := make([]string, len(l))
	for i, e := range l {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}

// Unwrap lets errors.As reach the individual *ValidationError values.
func (l ErrorList) Unwrap() []error {
	out := make([]error, len(l))
	for i, e := range l {
		out[i] = e
	}
	return out
}

// Errors converts the list back into a field → message map.
func (l ErrorList) Errors() Errors {
	out := make(Errors, len(l))
	for _, e := range l {
		out.Set(e.Field, e.Message)
	}
	return out
}
