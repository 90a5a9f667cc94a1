package dork

import (
	"errors"
	"fmt"
	"strings"
)

// Kind identifies which builder handles an input.
type Kind string

const (
	KindInstagram Kind = "instagram"
	KindX         Kind = "x"
	KindPerson    Kind = "person"
	KindLinkedIn  Kind = "linkedin"
	KindEmail     Kind = "email"
)

// ErrUnknownKind is returned by ParseKind and Generate for unsupported kinds.
var ErrUnknownKind = errors.New("unknown identity kind")

// Kinds returns the supported kinds in menu order.
func Kinds() []Kind {
	return []Kind{KindInstagram, KindPerson, KindX, KindLinkedIn, KindEmail}
}

// Label is the human name of the kind.
func (k Kind) Label() string {
	switch k {
	case KindInstagram:
		return "Instagram"
	case KindX:
		return "X (Twitter)"
	case KindPerson:
		return "Person"
	case KindLinkedIn:
		return "LinkedIn"
	case KindEmail:
		return "Email"
	}
	return string(k)
}

// ParseKind accepts a kind name or the alias "twitter" for X.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "twitter" {
		return KindX, nil
	}
	for _, k := range Kinds() {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Input carries the raw fields for any builder. Only the fields relevant to
// the chosen kind are read.
type Input struct {
	Handle    string
	FirstName string
	LastName  string
	Name      string
	Email     string
	Person    PersonOptions
	LinkedIn  LinkedInOptions
}

// Generate dispatches in to the builder for k.
func Generate(k Kind, in Input) ([]Category, error) {
	switch k {
	case KindInstagram:
		return Instagram(in.Handle), nil
	case KindX:
		return X(in.Handle), nil
	case KindPerson:
		return Person(in.FirstName, in.LastName, in.Person), nil
	case KindLinkedIn:
		return LinkedIn(in.Name, in.LinkedIn), nil
	case KindEmail:
		return Email(in.Email), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, k)
}
