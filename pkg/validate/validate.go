// Package validate checks and filters login form input.
package validate

import (
	"errors"
	"strings"
)

var (
	// ErrUsername is returned for usernames with non-letter characters.
	ErrUsername = errors.New("Username must contain only letters")

	// ErrPhone is returned for phones with characters outside the allowed set.
	ErrPhone = errors.New("Phone must contain only numbers and symbols (-, +, (), x)")
)

const phoneSymbols = " -+().x"

// Username accepts non-empty strings of ASCII letters only.
func Username(s string) error {
	if s == "" {
		return nil
	}
	for _, r := range s {
		if !isLetter(r) {
			return ErrUsername
		}
	}
	return nil
}

// Phone accepts non-empty strings of digits and the symbols " -+().x".
func Phone(s string) error {
	if s == "" {
		return nil
	}
	for _, r := range s {
		if !isPhoneRune(r) {
			return ErrPhone
		}
	}
	return nil
}

// FormValid reports whether the pair is non-blank and passes both checks.
func FormValid(username, phone string) bool {
	return strings.TrimSpace(username) != "" &&
		strings.TrimSpace(phone) != "" &&
		Username(username) == nil &&
		Phone(phone) == nil
}

// FilterUsername strips every character Username would reject.
func FilterUsername(s string) string {
	return strings.Map(func(r rune) rune {
		if isLetter(r) {
			return r
		}
		return -1
	}, s)
}

// FilterPhone strips every character Phone would reject.
func FilterPhone(s string) string {
	return strings.Map(func(r rune) rune {
		if isPhoneRune(r) {
			return r
		}
		return -1
	}, s)
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isPhoneRune(r rune) bool {
	return (r >= '0' && r <= '9') || strings.ContainsRune(phoneSymbols, r)
}
