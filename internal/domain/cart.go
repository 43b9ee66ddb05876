package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// CartLine is one (product, quantity) pair inside a user's cart.
// A cart never holds two lines for the same product and a persisted
// line always has quantity >= 1.
type CartLine struct {
	Product  primitive.ObjectID `bson:"product" json:"product"`
	Quantity int64              `bson:"quantity" json:"quantity"`
}

type Cart []CartLine

// Add merges qty into the existing line for the product, or appends a
// new line when the product is not in the cart yet. Identity is the
// product id, never the snapshot fields.
func (c Cart) Add(productID primitive.ObjectID, qty int64) Cart {
	if qty < 1 {
		qty = 1
	}

	for i, line := range c {
		if line.Product == productID {
			updated := make(Cart, len(c))
			copy(updated, c)
			updated[i].Quantity += qty
			return updated
		}
	}

	return append(append(Cart{}, c...), CartLine{Product: productID, Quantity: qty})
}

// Decrease lowers the line's quantity by one, dropping the line
// entirely when it would reach zero. The second return value reports
// whether the product was in the cart at all.
func (c Cart) Decrease(productID primitive.ObjectID) (Cart, bool) {
	updated := make(Cart, 0, len(c))
	found := false
	for _, line := range c {
		if line.Product == productID {
			found = true
			if line.Quantity > 1 {
				updated = append(updated, CartLine{Product: line.Product, Quantity: line.Quantity - 1})
			}
			continue
		}
		updated = append(updated, line)
	}
	return updated, found
}

// Remove drops the product's line unconditionally. Removing an absent
// product is a no-op.
func (c Cart) Remove(productID primitive.ObjectID) Cart {
	updated := make(Cart, 0, len(c))
	for _, line := range c {
		if line.Product == productID {
			continue
		}
		updated = append(updated, line)
	}
	return updated
}

// Quantity returns the quantity for the product, or 0 when absent.
func (c Cart) Quantity(productID primitive.ObjectID) int64 {
	for _, line := range c {
		if line.Product == productID {
			return line.Quantity
		}
	}
	return 0
}

func (c Cart) ProductIDs() []primitive.ObjectID {
	ids := make([]primitive.ObjectID, 0, len(c))
	for _, line := range c {
		ids = append(ids, line.Product)
	}
	return ids
}
