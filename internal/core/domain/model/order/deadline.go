package order

import (
	"fmt"
	"strings"
	"time"

	"solverdesk/internal/pkg/errs"
)

// deadlineLayouts are tried in order. The second one is what an HTML
// datetime-local input submits.
var deadlineLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseDeadline parses a deadline as entered by the requester. Values without a
// zone are interpreted in loc. A blank value is a missing field, anything that
// no layout accepts is ErrInvalidDeadline.
func ParseDeadline(raw string, loc *time.Location) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, errs.NewValueIsRequiredErrorWithCause("deadline", ErrMissingField)
	}
	if loc == nil {
		loc = time.UTC
	}

	for _, layout := range deadlineLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t, nil
		}
	}

	return time.Time{}, errs.NewValueIsInvalidErrorWithCause(
		"deadline",
		fmt.Errorf("%w: %q does not match a known layout", ErrInvalidDeadline, raw),
	)
}

// validateDeadline requires deadline to be strictly after now.
func validateDeadline(deadline, now time.Time) error {
	if deadline.IsZero() {
		return errs.NewValueIsRequiredErrorWithCause("deadline", ErrMissingField)
	}
	if !deadline.After(now) {
		return errs.NewValueIsInvalidErrorWithCause(
			"deadline",
			fmt.Errorf("%w: %s is not after %s", ErrPastDeadline,
				deadline.Format(time.RFC3339), now.Format(time.RFC3339)),
		)
	}
	return nil
}
