// Package validate holds the input masks the UI applies before asking for
// dorks. The dork builders do not depend on it.
package validate

import (
	"errors"
	"regexp"
	"strings"

	"github.com/SuperMag99/FootPrintX/internal/dork"
)

var (
	ErrEmpty         = errors.New("this field is required")
	ErrInvalidHandle = errors.New("invalid handle: use 1-30 letters, digits, dots or underscores")
	ErrInvalidName   = errors.New("invalid name: use 2-50 letters, spaces, hyphens or apostrophes")
	ErrInvalidEmail  = errors.New("invalid email format")
)

var (
	emailPattern  = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	handlePattern = regexp.MustCompile(`^[a-zA-Z0-9._]{1,30}$`)
	namePattern   = regexp.MustCompile(`^[a-zA-Z\s\-']{2,50}$`)
)

// Handle checks an Instagram or X handle. A leading "@" is allowed.
func Handle(s string) error {
	h := dork.NormalizeHandle(s)
	if h == "" {
		return ErrEmpty
	}
	if !handlePattern.MatchString(h) {
		return ErrInvalidHandle
	}
	return nil
}

// Name checks a single name field.
func Name(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return ErrEmpty
	}
	if !namePattern.MatchString(s) {
		return ErrInvalidName
	}
	return nil
}

// Email checks an email address.
func Email(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return ErrEmpty
	}
	if !emailPattern.MatchString(s) {
		return ErrInvalidEmail
	}
	return nil
}

// Field is the validation state of one form input.
type Field struct {
	Dirty bool
	Err   error
}

// Valid reports whether the field passed validation.
func (f Field) Valid() bool {
	return f.Err == nil
}

// Message is the inline text shown under a dirty, invalid field.
func (f Field) Message() string {
	if !f.Dirty || f.Err == nil {
		return ""
	}
	return f.Err.Error()
}

// Check runs fn on value and records whether anything was typed yet.
func Check(value string, fn func(string) error) Field {
	return Field{
		Dirty: strings.TrimSpace(value) != "",
		Err:   fn(value),
	}
}
