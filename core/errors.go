package core

import "strconv"

// ErrorKind classifies failures of the registry
type ErrorKind uint8

const (
	// UnknownInstance: the object given to Resolve is not in the identity
	// table. This is a test setup mistake, not a lazily created category.
	UnknownInstance ErrorKind = iota + 1
)

var kindMessages = map[ErrorKind]string{
	UnknownInstance: "Unknown instance",
}

func (k ErrorKind) String() string {
	if msg, ok := kindMessages[k]; ok {
		return msg
	}
	return "ErrorKind(" + strconv.Itoa(int(k)) + ")"
}

// Error is returned by Resolve. Its message is the fixed text of its kind.
type Error struct {
	Kind ErrorKind

	// Identity is the object that could not be resolved
	Identity any
}

func (e *Error) Error() string {
	return e.Kind.String()
}

// Is matches any *Error of the same kind, so errors.Is(err,
// ErrUnknownInstance) works regardless of Identity.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// ErrUnknownInstance is the sentinel for UnknownInstance errors
var ErrUnknownInstance = &Error{Kind: UnknownInstance}
