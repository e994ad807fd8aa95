package usecase

import (
	"regexp"

	domainErrors "github.com/polkiloo/atelier/internal/domain/errors"
	"github.com/polkiloo/atelier/internal/domain/model"
)

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ValidateDate checks the YYYY-MM-DD shape only. Calendar validity is not checked.
func ValidateDate(date string) bool {
	return datePattern.MatchString(date)
}

// ValidateCheckoutItems rejects empty carts, blank products and non-positive quantities.
func ValidateCheckoutItems(items []model.CheckoutItem) error {
	if len(items) == 0 {
		return domainErrors.ErrEmptyCart
	}
	for _, it := range items {
		if it.ProductName == "" {
			return domainErrors.ErrInvalidItem
		}
		if it.Quantity <= 0 {
			return domainErrors.ErrInvalidQuantity
		}
	}
	return nil
}
