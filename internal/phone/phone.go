// Package phone normalizes US phone numbers scraped from search results
// into the (XXX) XXX-XXXX form the merged output files use.
package phone

import (
	"errors"
	"fmt"

	"github.com/nyaruka/phonenumbers"
)

// ErrInvalidNumber is returned for input that does not represent a valid
// US phone number.
var ErrInvalidNumber = errors.New("not a valid US phone number")

const usRegion = "US"

// Normalize parses raw as a US phone number and returns it formatted as
// "(XXX) XXX-XXXX". A leading country code 1 is accepted and stripped.
func Normalize(raw string) (string, error) {
	if raw == "" {
		return "", ErrInvalidNumber
	}

	num, err := phonenumbers.Parse(raw, usRegion)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidNumber, err)
	}

	if !phonenumbers.IsValidNumberForRegion(num, usRegion) {
		return "", ErrInvalidNumber
	}

	return phonenumbers.Format(num, phonenumbers.NATIONAL), nil
}

// IsValid reports whether raw normalizes to a valid US number.
func IsValid(raw string) bool {
	_, err := Normalize(raw)
	return err == nil
}
