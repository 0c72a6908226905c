package models

import (
	"regexp"
	"strings"
	"time"

	pkgvalidator "github.com/ghuser/personregistry/pkg/validator"
)

// phonePattern matches a 2-digit area code followed by an 8 or 9 digit
// number, no separators or country prefix (e.g. "16982532656").
var phonePattern = regexp.MustCompile(`^\d{2}\d{8,9}$`)

// IsBlank reports whether s is empty or whitespace only.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// ValidPhone reports whether phone matches the required shape.
func ValidPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

// ValidEmail reports whether email has valid local@domain syntax.
func ValidEmail(email string) bool {
	return pkgvalidator.Email(email)
}

// IsFutureDate reports whether date falls strictly after today in the
// local reference clock. The comparison is at day granularity.
func IsFutureDate(date time.Time) bool {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, now.Location())
	return d.After(today)
}

// ValidDocument reports whether document is a well-formed CPF: eleven
// digits, not all the same, with both check digits matching the modulo-11
// scheme.
func ValidDocument(document string) bool {
	if len(document) != 11 {
		return false
	}
	digits := make([]int, 11)
	same := true
	for i, r := range document {
		if r < '0' || r > '9' {
			return false
		}
		digits[i] = int(r - '0')
		if digits[i] != digits[0] {
			same = false
		}
	}
	if same {
		return false
	}
	return digits[9] == checkDigit(digits[:9]) && digits[10] == checkDigit(digits[:10])
}

// checkDigit computes a CPF check digit over the given digit prefix.
// Weights descend from len(prefix)+1 down to 2; remainders below 2 map to 0.
func checkDigit(prefix []int) int {
	sum := 0
	for i, d := range prefix {
		sum += d * (len(prefix) + 1 - i)
	}
	rem := sum % 11
	if rem < 2 {
		return 0
	}
	return 11 - rem
}
