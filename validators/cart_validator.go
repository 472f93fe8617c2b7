package validators

import (
	"strings"

	"github.com/kitalk/kiosk-backend/apperr"
)

// Packaging labels accepted as-is; Korean and English forms of takeout/dine-in.
var validPackagingTypes = []string{"포장", "매장", "takeout", "dine-in"}

func ValidateSessionID(sessionID string) error {
	if strings.TrimSpace(sessionID) == "" {
		return apperr.ErrInvalidSessionID
	}
	return nil
}

func ValidateMenuID(menuID int64) error {
	if menuID <= 0 {
		return apperr.ErrInvalidMenuID
	}
	return nil
}

// ValidateAddQuantity rejects anything below one; adding zero is expressed
// through update or remove instead.
func ValidateAddQuantity(quantity int) error {
	if quantity <= 0 {
		return apperr.ErrInvalidQuantity
	}
	return nil
}

// ValidateUpdateQuantity allows zero, which encodes deletion of the line.
func ValidateUpdateQuantity(quantity *int) error {
	if quantity == nil || *quantity < 0 {
		return apperr.ErrInvalidQuantity
	}
	return nil
}

func ValidatePackagingType(packagingType string) error {
	if strings.TrimSpace(packagingType) == "" {
		return apperr.ErrInvalidPackagingType
	}
	for _, valid := range validPackagingTypes {
		if packagingType == valid {
			return nil
		}
	}
	return apperr.ErrInvalidPackagingType
}
