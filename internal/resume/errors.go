package resume

import "fmt"

// ParseError represents a structural error in resume Markdown. Section and
// Context locate the failure precisely enough for a user-facing message.
type ParseError struct {
	Section string // top-level section header, e.g. "Experience"
	Context string // entity within the section, e.g. "Role #2"
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Section != "" {
		msg += " in " + e.Section
	}
	if e.Context != "" {
		msg += fmt.Sprintf(" (%s)", e.Context)
	}
	msg += ": " + e.Message
	if e.Cause != nil {
		msg += fmt.Sprintf(": %v", e.Cause)
	}
	return msg
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// DateFormatError reports a date literal that is neither MM/YYYY nor
// ISO-8601.
type DateFormatError struct {
	Literal string
	Context string // entity context, e.g. "Role #2 start date"
}

func (e *DateFormatError) Error() string {
	return fmt.Sprintf("invalid date %q for %s: expected MM/YYYY or YYYY-MM-DD", e.Literal, e.Context)
}

// InvalidSectionError reports an unknown section name supplied by a caller.
type InvalidSectionError struct {
	Name string
}

func (e *InvalidSectionError) Error() string {
	return fmt.Sprintf("invalid section %q: expected one of personal, education, experience, certifications, full", e.Name)
}

// ReconstructionError reports that refined section Markdown could not be
// parsed back as its section type and therefore could not be merged.
type ReconstructionError struct {
	Section SectionKind
	Cause   error
}

func (e *ReconstructionError) Error() string {
	return fmt.Sprintf("refined %s section could not be merged back: %v", e.Section, e.Cause)
}

func (e *ReconstructionError) Unwrap() error {
	return e.Cause
}
