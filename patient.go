package health

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ErrInvalidPatient is returned when a patient name cannot be used as a storage key.
var ErrInvalidPatient = errors.New("invalid patient name")

// ErrNoPatient is returned when neither an existing nor a new patient was given.
var ErrNoPatient = errors.New("no patient selected")

const maxPatientLen = 64

// reserved suffixes name the artifacts derived from a patient table.
var reservedSuffixes = []string{"_report", "_data"}

// ValidatePatient returns the canonical form of name (trimmed) or an error
// wrapping ErrInvalidPatient.
//
// Names are never rewritten beyond trimming: a name is either usable verbatim
// as a file name in the store or rejected, so two different names can never
// share a table.
func ValidatePatient(name string) (string, error) {
	name = strings.TrimSpace(name)
	switch {
	case name == "":
		return "", fmt.Errorf("%w: empty name", ErrInvalidPatient)
	case utf8.RuneCountInString(name) > maxPatientLen:
		return "", fmt.Errorf("%w: %q is longer than %d characters", ErrInvalidPatient, name, maxPatientLen)
	case !utf8.ValidString(name):
		return "", fmt.Errorf("%w: %q is not valid UTF-8", ErrInvalidPatient, name)
	case strings.HasPrefix(name, "."):
		return "", fmt.Errorf("%w: %q cannot start with '.'", ErrInvalidPatient, name)
	}
	for _, r := range name {
		if r == '/' || r == '\\' || unicode.IsControl(r) {
			return "", fmt.Errorf("%w: %q contains the forbidden character %q", ErrInvalidPatient, name, r)
		}
	}
	for _, suffix := range reservedSuffixes {
		if strings.HasSuffix(name, suffix) {
			return "", fmt.Errorf("%w: %q cannot end with %q", ErrInvalidPatient, name, suffix)
		}
	}
	return name, nil
}

// SelectPatient resolves the patient from an existing selection and a typed
// new name. The typed name takes precedence. When both are empty it returns
// ErrNoPatient.
func SelectPatient(selected, typed string) (string, error) {
	switch {
	case strings.TrimSpace(typed) != "":
		return ValidatePatient(typed)
	case strings.TrimSpace(selected) != "":
		return ValidatePatient(selected)
	default:
		return "", ErrNoPatient
	}
}
