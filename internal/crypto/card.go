package crypto

import (
	"encoding/hex"
	"strings"
	"unicode"

	"golang.org/x/crypto/blake2b"
)

// tokenBytes is how much of the digest is kept in a token.
const tokenBytes = 16

// digits drops everything that is not a decimal digit, so "4111 1111-..."
// and "41111111..." tokenize the same.
func digits(pan string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, pan)
}

// CardToken returns a short hex token for a card number.
//
// It hashes the digits with BLAKE2b-256 and truncates to 16 bytes (32 hex chars).
func CardToken(pan string) string {
	sum := blake2b.Sum256([]byte(digits(pan)))
	return hex.EncodeToString(sum[:tokenBytes])
}

// MaskPAN replaces every digit but the last four with '*'.
// Separators are dropped.
func MaskPAN(pan string) string {
	d := digits(pan)
	if len(d) <= 4 {
		return d
	}
	return strings.Repeat("*", len(d)-4) + d[len(d)-4:]
}

// ValidPAN reports whether pan has a plausible length and passes the Luhn check.
func ValidPAN(pan string) bool {
	for _, r := range pan {
		if !unicode.IsDigit(r) && r != ' ' && r != '-' {
			return false
		}
	}
	d := digits(pan)
	if len(d) < 12 || len(d) > 19 {
		return false
	}
	sum := 0
	double := false
	for i := len(d) - 1; i >= 0; i-- {
		n := int(d[i] - '0')
		if double {
			n *= 2
			if n > 9 {
				n -= 9
			}
		}
		sum += n
		double = !double
	}
	return sum%10 == 0
}
