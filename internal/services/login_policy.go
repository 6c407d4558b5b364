package services

import (
	"errors"
	"math/rand"
	"strings"
)

const (
	otpMin = 100000
	otpMax = 999999
)

var ErrInvalidMobileNumber = errors.New("invalid mobile number")

// NormalizeMobileNumber trims surrounding whitespace; the number itself is
// stored as submitted.
func NormalizeMobileNumber(raw string) string {
	return strings.TrimSpace(raw)
}

// ValidateMobileNumber applies the loose E.164-ish rule: longer than ten
// characters and starting with "+". Nothing stricter is attempted.
func ValidateMobileNumber(mobileNumber string) error {
	if len(mobileNumber) > 10 && strings.HasPrefix(mobileNumber, "+") {
		return nil
	}
	return ErrInvalidMobileNumber
}

// GenerateOTP produces a six-digit passcode in [100000, 999999]. A
// pseudo-random source is sufficient here: the code is short-lived,
// delivered out-of-band, and compared server-side.
func GenerateOTP() int {
	return otpMin + rand.Intn(otpMax-otpMin+1)
}
