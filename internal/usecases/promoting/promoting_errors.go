package promoting

import "errors"

var (
	ErrPriceRequired      = errors.New("current price is required")
	ErrExpiryDateRequired = errors.New("expiry date is required")
	ErrInvalidExpiryDate  = errors.New("invalid expiry date")
)
