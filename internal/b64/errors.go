package b64

import (
	"errors"
	"fmt"
	pkgerrors "github.com/pkg/errors"
)

type ErrorKind int

const (
	NoInput ErrorKind = iota + 1
	UnknownCommand
	NotBase64
	MalformedBase64
	NotUtf8
)

var kindNames = map[ErrorKind]string{
	NoInput:         "NoInput",
	UnknownCommand:  "UnknownCommand",
	NotBase64:       "NotBase64",
	MalformedBase64: "MalformedBase64",
	NotUtf8:         "NotUtf8",
}

func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error is the user facing failure of a slash command invocation
type Error struct {
	Kind ErrorKind
	// Command is set for UnknownCommand
	Command string
	cause   error
}

func NewError(kind ErrorKind) *Error {
	return &Error{Kind: kind}
}

func NewUnknownCommandError(command string) *Error {
	return &Error{Kind: UnknownCommand, Command: command}
}

func wrapError(kind ErrorKind, cause error) *Error {
	return &Error{Kind: kind, cause: cause}
}

func (e *Error) Error() string {
	switch e.Kind {
	case NoInput:
		return "No input provided"
	case UnknownCommand:
		return fmt.Sprintf("Unknown slash command: %s", e.Command)
	case NotBase64:
		return "The input doesn't appear to be Base64-encoded. Use /encode to encode text."
	case MalformedBase64:
		return fmt.Sprintf("Decoding error: %s. Please ensure your input is valid Base64.", e.diagnostic())
	case NotUtf8:
		return "The decoded data is not valid UTF-8 text."
	}
	return e.Kind.String()
}

// diagnostic is the message of the underlying codec error, without our wrapping context
func (e *Error) diagnostic() string {
	if e.cause == nil {
		return "invalid input"
	}
	return pkgerrors.Cause(e.cause).Error()
}

func (e *Error) Unwrap() error {
	return e.cause
}

// KindOf extracts the ErrorKind from err, looking through any wrapping
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
