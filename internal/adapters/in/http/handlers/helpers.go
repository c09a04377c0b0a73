// internal/adapters/in/http/handlers/helpers.go
package handlers

import (
	"regexp"
	"strings"
	"time"
)

var (
	yearMonthRe = regexp.MustCompile(`^\d{4}-\d{2}$`)
	dateRe      = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	branchRe    = regexp.MustCompile(`^[A-Za-z]{3}$`)
)

func isYearMonth(s string) bool { return yearMonthRe.MatchString(s) }
func isDate(s string) bool      { return dateRe.MatchString(s) }

// validBranches checks the 3-letter branch code convention.
func validBranches(branches []string) bool {
	for _, b := range branches {
		if !branchRe.MatchString(b) {
			return false
		}
	}
	return true
}

// parseDateFlexible accepts either a bare calendar date or a full RFC3339
// timestamp (the front-end sends both). The time-of-day is discarded
// downstream anyway for placeholder creation.
func parseDateFlexible(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.In(time.Local), true
	}
	return time.Time{}, false
}
