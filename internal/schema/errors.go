package schema

// MaxRawDiagnostic bounds how much raw upstream text a validation error
// carries. Full model output never leaves the server in error details.
const MaxRawDiagnostic = 4000

// ValidationError wraps a sentinel failure kind with field-level issues and
// a truncated prefix of the raw text that produced them. errors.Is matches
// against the wrapped kind.
type ValidationError struct {
	Kind   error
	Issues Issues
	Raw    string
}

// NewValidationError builds a ValidationError, truncating raw to MaxRawDiagnostic.
func NewValidationError(kind error, issues Issues, raw string) *ValidationError {
	if len(raw) > MaxRawDiagnostic {
		raw = raw[:MaxRawDiagnostic]
	}
	return &ValidationError{
		Kind:   kind,
		Issues: issues,
		Raw:    raw,
	}
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return e.Kind.Error()
	}
	return e.Kind.Error() + ":\n" + e.Issues.Flatten()
}

func (e *ValidationError) Unwrap() error {
	return e.Kind
}
