package forms

import (
	"regexp"
	"time"
)

// SaveFunc is the caller-supplied persistence callback. Forms never talk to
// the network themselves; a page hands them a closure over a store mutator.
// The callback reports success and, on failure, the message to surface in the
// form's submit-error slot.
type SaveFunc func(payload interface{}) (bool, string)

// dateLayout is the wire format for effective dates.
const dateLayout = "2006-01-02"

var (
	phonePattern = regexp.MustCompile(`^[6-9][0-9]{9}$`)
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
)

// validDate reports whether s parses as YYYY-MM-DD.
func validDate(s string) bool {
	_, err := time.Parse(dateLayout, s)
	return err == nil
}

// dateAfter reports whether b is strictly after a; both must be valid dates.
func dateAfter(a, b string) bool {
	ta, errA := time.Parse(dateLayout, a)
	tb, errB := time.Parse(dateLayout, b)
	if errA != nil || errB != nil {
		return false
	}
	return tb.After(ta)
}

// validPhone accepts a 10-digit Indian mobile number starting with 6-9.
func validPhone(s string) bool {
	return phonePattern.MatchString(s)
}

// validEmail checks the email address format.
func validEmail(s string) bool {
	return emailPattern.MatchString(s)
}
