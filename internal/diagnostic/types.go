package diagnostic

import (
	"errors"
	"fmt"
	"strings"
)

// Codes reported by the generation services.
const (
	CodeUnmappedType = "unmapped-type"
)

// Diagnostics collects the problems found during one generation step.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
}

// Diagnostic is a single problem attributed to a model type.
type Diagnostic struct {
	Severity Severity
	// Code identifies the kind of problem.
	Code    string
	Message string
	// TypeName is the qualified name of the offending model type, if any.
	TypeName string
}

// Severity of a diagnostic.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// AddError records an error diagnostic.
func (d *Diagnostics) AddError(code, message, typeName string) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity: SeverityError,
		Code:     code,
		Message:  message,
		TypeName: typeName,
	})
}

// AddWarning records a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, typeName string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity: SeverityWarning,
		Code:     code,
		Message:  message,
		TypeName: typeName,
	})
}

// HasErrors reports whether any error was recorded.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Err joins all error diagnostics into one error, or returns nil.
func (d *Diagnostics) Err() error {
	if !d.HasErrors() {
		return nil
	}

	parts := make([]string, 0, len(d.Errors))
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String formats the diagnostic as "[type]: [code] message".
func (d Diagnostic) String() string {
	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if d.TypeName != "" {
		return "[" + d.TypeName + "]: " + msg
	}

	return msg
}
