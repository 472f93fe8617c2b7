package validators

import (
	"regexp"
	"strings"

	"github.com/kitalk/kiosk-backend/apperr"
)

// Mobile numbers only: 010 followed by eight digits, hyphens and spaces ignored.
var phonePattern = regexp.MustCompile(`^010\d{8}$`)

func ValidateSessionIDForPhone(sessionID string) error {
	if strings.TrimSpace(sessionID) == "" {
		return apperr.ErrInvalidSessionForPhone
	}
	return nil
}

func ValidatePhoneNumber(phoneNumber string) error {
	if strings.TrimSpace(phoneNumber) == "" {
		return apperr.ErrPhoneNumberRequired
	}
	if !phonePattern.MatchString(stripPhone(phoneNumber)) {
		return apperr.ErrInvalidPhoneNumber
	}
	return nil
}

// NormalizePhoneNumber canonicalizes a valid mobile number to 010-XXXX-XXXX.
// Input that does not fit the expected shape is returned unchanged.
func NormalizePhoneNumber(phoneNumber string) string {
	clean := stripPhone(phoneNumber)
	if len(clean) != 11 || !strings.HasPrefix(clean, "010") {
		return phoneNumber
	}
	return clean[0:3] + "-" + clean[3:7] + "-" + clean[7:]
}

// MaskPhoneNumber hides every digit except the last four, for logging.
func MaskPhoneNumber(phoneNumber string) string {
	if phoneNumber == "" {
		return ""
	}
	digitsSeen := 0
	for _, r := range phoneNumber {
		if r >= '0' && r <= '9' {
			digitsSeen++
		}
	}
	masked := []rune(phoneNumber)
	remaining := digitsSeen
	for i, r := range masked {
		if r >= '0' && r <= '9' {
			if remaining > 4 {
				masked[i] = '*'
			}
			remaining--
		}
	}
	return string(masked)
}

func stripPhone(phoneNumber string) string {
	clean := strings.ReplaceAll(phoneNumber, "-", "")
	return strings.ReplaceAll(clean, " ", "")
}
