package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kitalk/kiosk-backend/apperr"
)

func TestValidateSessionIDForPhone(t *testing.T) {
	assert.NoError(t, ValidateSessionIDForPhone("kiosk-01"))
	assert.Equal(t, apperr.ErrInvalidSessionForPhone, ValidateSessionIDForPhone(""))
	assert.Equal(t, apperr.ErrInvalidSessionForPhone, ValidateSessionIDForPhone("  "))
}

func TestValidatePhoneNumber(t *testing.T) {
	valid := []string{
		"01012345678",
		"010-1234-5678",
		"010 1234 5678",
		"010-12345678",
	}
	for _, number := range valid {
		assert.NoError(t, ValidatePhoneNumber(number), number)
	}

	assert.Equal(t, apperr.ErrPhoneNumberRequired, ValidatePhoneNumber(""))
	assert.Equal(t, apperr.ErrPhoneNumberRequired, ValidatePhoneNumber("   "))

	invalid := []string{
		"02-555-1234",    // landline
		"0101234567",     // too short
		"010123456789",   // too long
		"011-1234-5678",  // old prefix
		"010-1234-567a",  // non-digit
		"+821012345678",  // international form
	}
	for _, number := range invalid {
		assert.Equal(t, apperr.ErrInvalidPhoneNumber, ValidatePhoneNumber(number), number)
	}
}

func TestNormalizePhoneNumber(t *testing.T) {
	assert.Equal(t, "010-1234-5678", NormalizePhoneNumber("01012345678"))
	assert.Equal(t, "010-1234-5678", NormalizePhoneNumber("010-1234-5678"))
	assert.Equal(t, "010-1234-5678", NormalizePhoneNumber("010 1234 5678"))

	// inputs that do not fit the mobile shape pass through untouched
	assert.Equal(t, "02-555-1234", NormalizePhoneNumber("02-555-1234"))
	assert.Equal(t, "hello", NormalizePhoneNumber("hello"))
}

func TestMaskPhoneNumber(t *testing.T) {
	assert.Equal(t, "***-****-5678", MaskPhoneNumber("010-1234-5678"))
	assert.Equal(t, "*******5678", MaskPhoneNumber("01012345678"))
	assert.Equal(t, "1234", MaskPhoneNumber("1234"))
	assert.Equal(t, "", MaskPhoneNumber(""))
}
