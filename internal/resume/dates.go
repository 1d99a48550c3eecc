package resume

import (
	"fmt"
	"strings"
	"time"
)

// Date is a calendar date with month or day precision. The zero value means
// the date was absent, which is valid for open-ended ranges such as a
// current role.
type Date struct {
	Year  int        `json:"year,omitempty"`
	Month time.Month `json:"month,omitempty"`
	Day   int        `json:"day,omitempty"` // 0 when the source had month precision only
}

// IsZero reports whether the date is absent.
func (d Date) IsZero() bool {
	return d == Date{}
}

// String renders the canonical form: MM/YYYY for month precision,
// YYYY-MM-DD when the source carried a day.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	if d.Day > 0 {
		return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
	}
	return fmt.Sprintf("%02d/%04d", int(d.Month), d.Year)
}

// MarshalJSON renders the canonical string form.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", d.String())), nil
}

// UnmarshalJSON accepts the canonical string form or an empty string.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	parsed, err := parseDate(s, "date")
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// parseDate parses MM/YYYY or ISO-8601 YYYY-MM-DD. An empty literal is a
// valid absent date. Anything else fails with a DateFormatError carrying the
// literal and the entity context (e.g. "Role #2 start date").
func parseDate(literal, context string) (Date, error) {
	s := strings.TrimSpace(literal)
	if s == "" {
		return Date{}, nil
	}

	if t, err := time.Parse("01/2006", s); err == nil {
		return Date{Year: t.Year(), Month: t.Month()}, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
	}

	return Date{}, &DateFormatError{Literal: s, Context: context}
}
