package order

import (
	"errors"
	"strings"

	"solverdesk/internal/core/domain/model/kernel"
	"solverdesk/internal/pkg/errs"
)

// Requester holds the student-supplied details of an order. All text fields
// are stored trimmed and must be non-empty.
type Requester struct {
	studentName string
	subject     string
	description string
	phone       kernel.Phone
}

// NewRequester trims and validates every field, reporting all problems at once.
// Blank fields produce ValueIsRequiredError wrapping ErrMissingField, a phone
// with a wrong digit count a ValueIsOutOfRangeError wrapping ErrInvalidPhone.
func NewRequester(studentName, subject, description, phone string) (Requester, error) {
	r := Requester{}

	if err := errors.Join(
		r.setStudentName(studentName),
		r.setSubject(subject),
		r.setDescription(description),
		r.setPhone(phone),
	); err != nil {
		return Requester{}, err
	}

	return r, nil
}

// StudentName returns the requester's name.
func (r Requester) StudentName() string {
	return r.studentName
}

// Subject returns the homework subject.
func (r Requester) Subject() string {
	return r.subject
}

// Description returns the task description.
func (r Requester) Description() string {
	return r.description
}

// Phone returns the contact phone.
func (r Requester) Phone() kernel.Phone {
	return r.phone
}

// Validate fails for a zero-value Requester.
func (r Requester) Validate() error {
	if r.studentName == "" || r.subject == "" || r.description == "" {
		return errs.NewValueIsRequiredErrorWithCause("requester", ErrMissingField)
	}
	return r.phone.Validate()
}

func (r *Requester) setStudentName(v string) error {
	v, err := requiredText("student name", v)
	r.studentName = v
	return err
}

func (r *Requester) setSubject(v string) error {
	v, err := requiredText("subject", v)
	r.subject = v
	return err
}

func (r *Requester) setDescription(v string) error {
	v, err := requiredText("description", v)
	r.description = v
	return err
}

func (r *Requester) setPhone(v string) error {
	phone, err := kernel.NewPhone(v)
	if errors.Is(err, kernel.ErrPhoneIsRequired) {
		return errs.NewValueIsRequiredErrorWithCause("phone", ErrMissingField)
	}
	if err != nil {
		return err
	}
	r.phone = phone
	return nil
}

func requiredText(name, v string) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", errs.NewValueIsRequiredErrorWithCause(name, ErrMissingField)
	}
	return v, nil
}
