// Package dateutil owns the canonical YYYY-MM-DD date-string format used as
// the workout primary key. Dates are always built from local calendar
// components, never from a timestamp string, so the stored day never shifts
// when the device's local date differs from UTC.
package dateutil

import (
	"fmt"
	"math"
	"regexp"
	"time"
)

var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Today returns the current local date in canonical format.
func Today() string {
	return FormatDate(time.Now())
}

// FormatDate renders the local calendar components of t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%04d-%02d-%02d", t.Year(), int(t.Month()), t.Day())
}

// ParseDate reconstructs a local midnight time from the three numeric
// components of a canonical date string. It is deliberately not a generic
// date parser: the components are reassembled in the local zone.
func ParseDate(dateString string) (time.Time, error) {
	if !dateRegex.MatchString(dateString) {
		return time.Time{}, fmt.Errorf("invalid date format: %s", dateString)
	}
	var year, month, day int
	if _, err := fmt.Sscanf(dateString, "%d-%d-%d", &year, &month, &day); err != nil {
		return time.Time{}, fmt.Errorf("invalid date format: %s", dateString)
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local), nil
}

// IsValidDateString reports whether s is canonical YYYY-MM-DD and names a
// real calendar date. Overflowing components such as 2024-02-30 normalize
// under time.Date and fail the round-trip check.
func IsValidDateString(s string) bool {
	parsed, err := ParseDate(s)
	if err != nil {
		return false
	}
	return FormatDate(parsed) == s
}

// RelativeDateLabel returns a human label for the date relative to today:
// "Today"/"Yesterday"/"Tomorrow" for offsets 0/-1/+1, the weekday name for
// the last six days, and the canonical string otherwise. Exactly seven days
// ago falls through to the canonical string.
func RelativeDateLabel(dateString string) string {
	return relativeDateLabel(dateString, time.Now())
}

func relativeDateLabel(dateString string, now time.Time) string {
	date, err := ParseDate(dateString)
	if err != nil {
		return dateString
	}
	today, _ := ParseDate(FormatDate(now))

	diffDays := int(math.Round(date.Sub(today).Hours() / 24))

	switch diffDays {
	case 0:
		return "Today"
	case -1:
		return "Yesterday"
	case 1:
		return "Tomorrow"
	}

	if diffDays > -7 && diffDays < 0 {
		return date.Weekday().String()
	}

	return FormatDate(date)
}
