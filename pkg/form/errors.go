package form

import "fmt"

// ParseError reports a field line whose modifier syntax could not be parsed.
// Lines that merely fail to look like a field fall through as plain text and
// never produce a ParseError; this error only fires once a field grammar has
// matched and its bracketed modifier is invalid.
type ParseError struct {
	Line    string
	LineNum int
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("form: line %d %q: %v", e.LineNum, e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ConfigurationError reports unbalanced or nested collapse directives.
type ConfigurationError struct {
	Directive string
	LineNum   int
	Reason    string
}

func (e *ConfigurationError) Error() string {
	if e.Directive == "" {
		return fmt.Sprintf("form: %s", e.Reason)
	}
	return fmt.Sprintf("form: line %d %q: %s", e.LineNum, e.Directive, e.Reason)
}

// DuplicateFieldError reports two declarations resolving to the same
// variable name within the same section scope.
type DuplicateFieldError struct {
	VariableName  string
	Label         string
	PreviousLabel string
}

func (e *DuplicateFieldError) Error() string {
	return fmt.Sprintf("form: duplicate variable name %q: label %q collides with earlier label %q",
		e.VariableName, e.Label, e.PreviousLabel)
}

// WarningCode identifies a class of non-fatal findings collected during a
// parse.
type WarningCode string

const (
	// WarnCollapseControlMissing flags a named collapse block whose control
	// name does not refer to a select field carrying a collapse marker.
	WarnCollapseControlMissing WarningCode = "collapse-control-missing"

	// WarnCollapseBlockMissing flags a select field with a collapse marker
	// but no collapse block named after it.
	WarnCollapseBlockMissing WarningCode = "collapse-block-missing"
)

// Warning is a non-fatal finding. Rendering can proceed; the behaviour the
// warning describes is simply not wired up.
type Warning struct {
	Code    WarningCode
	Name    string
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Code, w.Message)
}
