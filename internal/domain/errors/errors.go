package errors

import "errors"

var (
	ErrAlreadyExists      = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("forbidden")

	ErrInvalidDate     = errors.New("invalid date")
	ErrDateRequired    = errors.New("appointment date is required")
	ErrSlotRequired    = errors.New("appointment slot is required")
	ErrSlotUnavailable = errors.New("selected slot is no longer available, pick another time")

	ErrEmptyCart       = errors.New("cart is empty")
	ErrInvalidQuantity = errors.New("invalid quantity")
	ErrInvalidItem     = errors.New("line item product is required")
)
