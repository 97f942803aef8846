package identity

import "time"

// User is a registered shopper. The cart lives on the user record: exactly one
// cart per user, keyed by product id.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash []byte
	Cart         Cart
	CreatedAt    time.Time
}

// Cart maps a product id (rendered as a string key) to a quantity. Absent keys
// read as zero and quantities never drop below zero.
type Cart map[string]int64

// Quantity returns the quantity stored for a product id, zero when absent.
func (c Cart) Quantity(productID string) int64 {
	if c == nil {
		return 0
	}
	return c[productID]
}

// Clone returns an independent copy so callers cannot alias stored state.
func (c Cart) Clone() Cart {
	out := make(Cart, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}

// Signup captures the fields required to register a shopper.
type Signup struct {
	Name     string
	Email    string
	Password string
}
