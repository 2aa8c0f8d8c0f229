package record

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// NAKALA created dates use W3C-DTF: YYYY, YYYY-MM, or YYYY-MM-DD.
var (
	yearRegex      = regexp.MustCompile(`^\d{4}$`)
	yearMonthRegex = regexp.MustCompile(`^(\d{4})-(\d{2})$`)
	fullDateRegex  = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)
)

// ValidDate reports whether s is a valid W3C-DTF date at year, month, or
// day precision.
func ValidDate(s string) bool {
	return CheckDate(s) == nil
}

// CheckDate validates a W3C-DTF date string, returning a descriptive
// error for bad input.
func CheckDate(s string) error {
	switch {
	case s == "":
		return fmt.Errorf("empty date")
	case yearRegex.MatchString(s):
		return nil
	case yearMonthRegex.MatchString(s):
		m := yearMonthRegex.FindStringSubmatch(s)
		month, _ := strconv.Atoi(m[2])
		if month < 1 || month > 12 {
			return fmt.Errorf("month out of range in %q", s)
		}
		return nil
	case fullDateRegex.MatchString(s):
		if _, err := time.Parse("2006-01-02", s); err != nil {
			return fmt.Errorf("invalid calendar date %q", s)
		}
		return nil
	}
	return fmt.Errorf("date %q is not YYYY, YYYY-MM, or YYYY-MM-DD", s)
}

// Today returns the current date at day precision, the value stamped on
// uploaded files as their embargo date.
func Today() string {
	return time.Now().Format("2006-01-02")
}
