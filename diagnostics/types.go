// Error classification shared by the loaders, the generator and the command line.

package diagnostics

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrorKind classifies the failures of a generation run.
type ErrorKind uint

const (
	// A required flag is missing or has an invalid value
	ErrorKindUsage ErrorKind = iota
	// A configuration file does not exist
	ErrorKindConfigNotFound
	// A configuration file exists but does not have the expected shape
	ErrorKindConfigMalformed
	// The function identifier is not part of the application settings
	ErrorKindUnknownFunction
	// The function is not reachable from the left menu or any tab
	ErrorKindNoPlacement
	// The output could not be written
	ErrorKindIO
)

func (k ErrorKind) String() string {
	switch k {
	case ErrorKindUsage:
		return "usage error"
	case ErrorKindConfigNotFound:
		return "configuration not found"
	case ErrorKindConfigMalformed:
		return "malformed configuration"
	case ErrorKindUnknownFunction:
		return "unknown function"
	case ErrorKindNoPlacement:
		return "no placement"
	case ErrorKindIO:
		return "i/o error"
	}
	return "unknown error"
}

// Error is a classified failure. Path names the offending file or flag when known.
type Error struct {
	Kind        ErrorKind
	Path        string
	Line        int
	Description string
	Err         error
}

func (e *Error) Error() string {
	msg := e.Description
	if e.Err != nil {
		if msg == "" {
			msg = e.Err.Error()
		} else {
			msg = fmt.Sprintf("%s: %s", msg, e.Err)
		}
	}
	switch {
	case e.Path != "" && e.Line > 0:
		return fmt.Sprintf("%s: %s:%d: %s", e.Kind, e.Path, e.Line, msg)
	case e.Path != "":
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.Path, msg)
	}
	return fmt.Sprintf("%s: %s", e.Kind, msg)
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Cause() error { return e.Err }

// Usage reports a problem with the command line. The description is shown verbatim to the user.
func Usage(description string) error {
	return &Error{Kind: ErrorKindUsage, Description: description}
}

// ConfigNotFound reports a missing configuration file.
func ConfigNotFound(path string, err error) error {
	return &Error{Kind: ErrorKindConfigNotFound, Path: path, Err: err}
}

// ConfigMalformed reports a configuration file that does not have the expected shape. A line of
// zero means the position is unknown.
func ConfigMalformed(path string, line int, format string, args ...interface{}) error {
	return &Error{Kind: ErrorKindConfigMalformed, Path: path, Line: line, Description: fmt.Sprintf(format, args...)}
}

// UnknownFunction reports a function identifier missing from the application settings.
func UnknownFunction(function string) error {
	return &Error{Kind: ErrorKindUnknownFunction, Description: fmt.Sprintf("function `%s` is not defined in the application settings", function)}
}

// NoPlacement reports a function that is neither in the left menu nor on a tab.
func NoPlacement(function string) error {
	return &Error{Kind: ErrorKindNoPlacement, Description: fmt.Sprintf("function `%s` is not placed in the left menu, the customer tab or the place tab", function)}
}

// IO reports a failure writing or reading a report file.
func IO(path string, err error) error {
	return &Error{Kind: ErrorKindIO, Path: path, Err: err}
}

// Is returns true if err, or any error it wraps, is a diagnostics error of the given kind.
func Is(err error, kind ErrorKind) bool {
	var diag *Error
	if errors.As(err, &diag) {
		return diag.Kind == kind
	}
	return false
}

// Description returns the user facing description of a classified error, or the error text for
// any other error.
func Description(err error) string {
	var diag *Error
	if errors.As(err, &diag) && diag.Description != "" {
		return diag.Description
	}
	return err.Error()
}
