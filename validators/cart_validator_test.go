package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kitalk/kiosk-backend/apperr"
)

func TestValidateSessionID(t *testing.T) {
	assert.NoError(t, ValidateSessionID("kiosk-01"))
	assert.Equal(t, apperr.ErrInvalidSessionID, ValidateSessionID(""))
	assert.Equal(t, apperr.ErrInvalidSessionID, ValidateSessionID("   "))
}

func TestValidateMenuID(t *testing.T) {
	assert.NoError(t, ValidateMenuID(1))
	assert.Equal(t, apperr.ErrInvalidMenuID, ValidateMenuID(0))
	assert.Equal(t, apperr.ErrInvalidMenuID, ValidateMenuID(-3))
}

func TestValidateAddQuantity(t *testing.T) {
	assert.NoError(t, ValidateAddQuantity(1))
	assert.NoError(t, ValidateAddQuantity(99))
	assert.Equal(t, apperr.ErrInvalidQuantity, ValidateAddQuantity(0))
	assert.Equal(t, apperr.ErrInvalidQuantity, ValidateAddQuantity(-1))
}

func TestValidateUpdateQuantity(t *testing.T) {
	zero := 0
	two := 2
	negative := -1

	assert.NoError(t, ValidateUpdateQuantity(&two))
	// zero means "delete this line" and is valid on update
	assert.NoError(t, ValidateUpdateQuantity(&zero))
	assert.Equal(t, apperr.ErrInvalidQuantity, ValidateUpdateQuantity(&negative))
	assert.Equal(t, apperr.ErrInvalidQuantity, ValidateUpdateQuantity(nil))
}

func TestValidatePackagingType(t *testing.T) {
	for _, label := range []string{"포장", "매장", "takeout", "dine-in"} {
		assert.NoError(t, ValidatePackagingType(label), label)
	}

	for _, label := range []string{"", "  ", "TAKEOUT", "배달", "dine in", "포장 "} {
		assert.Equal(t, apperr.ErrInvalidPackagingType, ValidatePackagingType(label), label)
	}
}
