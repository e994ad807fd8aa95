package test

import (
	"fmt"
	"math/rand/v2"

	"github.com/polkiloo/atelier/internal/domain/model"
)

const loginAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

var products = []string{"oxford", "derby", "chelsea boot", "loafer", "monk strap", "brogue"}

// RandomLogin returns a lowercase login of 7 to 14 characters.
func RandomLogin() string {
	return randomString(loginAlphabet, 7, 14)
}

// RandomPassword returns printable ASCII that fits the bcrypt input limit.
func RandomPassword() string {
	const printable = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!#$%&*+-=?@^_"
	return randomString(printable, 16, 32)
}

// RandomSlot picks one slot from the working-day grid.
func RandomSlot() model.Slot {
	return model.Slot(fmt.Sprintf("%02d:00", 9+rand.IntN(10)))
}

// RandomCart builds n valid cart lines with distinct product names.
func RandomCart(n int) []model.CheckoutItem {
	items := make([]model.CheckoutItem, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, model.CheckoutItem{
			ProductName: fmt.Sprintf("%s #%d", products[rand.IntN(len(products))], i+1),
			Quantity:    1 + rand.IntN(3),
		})
	}
	return items
}

func randomString(alphabet string, minLen, maxLen int) string {
	buf := make([]byte, minLen+rand.IntN(maxLen-minLen+1))
	for i := range buf {
		buf[i] = alphabet[rand.IntN(len(alphabet))]
	}
	return string(buf)
}
