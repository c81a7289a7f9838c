package kernel

import (
	"errors"
	"strings"

	"solverdesk/internal/pkg/errs"
)

const (
	// PhoneMinDigits is the smallest accepted number of digits in a phone number.
	PhoneMinDigits = 7
	// PhoneMaxDigits is the largest accepted number of digits in a phone number.
	PhoneMaxDigits = 15
)

var (
	// ErrPhoneIsRequired is the cause attached when the phone is blank.
	ErrPhoneIsRequired = errors.New("phone is required")
	// ErrInvalidPhone is the cause attached when the digit count is out of range.
	ErrInvalidPhone = errors.New("phone is invalid")
)

// Phone is a contact number as entered by the requester. Only the ASCII digits
// 0-9 are counted for validation; everything else, other scripts' digits
// included, is kept for display only.
type Phone struct {
	raw    string
	digits string
}

// NewPhone trims raw and checks that it carries between PhoneMinDigits and
// PhoneMaxDigits digits.
//
// A blank value yields a ValueIsRequiredError wrapping ErrPhoneIsRequired, an
// out-of-range digit count a ValueIsOutOfRangeError wrapping ErrInvalidPhone.
func NewPhone(raw string) (Phone, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Phone{}, errs.NewValueIsRequiredErrorWithCause("phone", ErrPhoneIsRequired)
	}

	digits := strings.Map(func(r rune) rune {
		if '0' <= r && r <= '9' {
			return r
		}
		return -1
	}, trimmed)

	if n := len(digits); n < PhoneMinDigits || n > PhoneMaxDigits {
		return Phone{}, errs.NewValueIsOutOfRangeErrorWithCause(
			"phone digits", n, PhoneMinDigits, PhoneMaxDigits, ErrInvalidPhone,
		)
	}

	return Phone{raw: trimmed, digits: digits}, nil
}

// String returns the phone as entered, trimmed.
func (p Phone) String() string {
	return p.raw
}

// Digits returns only the digits of the phone.
func (p Phone) Digits() string {
	return p.digits
}

// IsEqual compares phones by their digits.
func (p Phone) IsEqual(other Phone) bool {
	return p.digits == other.digits
}

// Validate fails for a zero-value Phone.
func (p Phone) Validate() error {
	if p.digits == "" {
		return errs.NewValueIsRequiredErrorWithCause("phone", ErrPhoneIsRequired)
	}
	return nil
}
