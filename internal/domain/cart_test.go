package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCartAddMergesExistingLine(t *testing.T) {
	productID := primitive.NewObjectID()
	cart := Cart{{Product: productID, Quantity: 2}}

	updated := cart.Add(productID, 3)

	assert.Len(t, updated, 1)
	assert.Equal(t, int64(5), updated.Quantity(productID))
	assert.Equal(t, int64(2), cart.Quantity(productID))
}

func TestCartAddAppendsNewLine(t *testing.T) {
	existing := primitive.NewObjectID()
	incoming := primitive.NewObjectID()
	cart := Cart{{Product: existing, Quantity: 1}}

	updated := cart.Add(incoming, 2)

	assert.Len(t, updated, 2)
	assert.Equal(t, int64(2), updated.Quantity(incoming))
}

func TestCartAddFloorsQuantityAtOne(t *testing.T) {
	productID := primitive.NewObjectID()

	updated := Cart{}.Add(productID, 0)
	assert.Equal(t, int64(1), updated.Quantity(productID))

	updated = Cart{}.Add(productID, -4)
	assert.Equal(t, int64(1), updated.Quantity(productID))
}

func TestCartNeverHoldsDuplicateLines(t *testing.T) {
	productID := primitive.NewObjectID()

	cart := Cart{}.Add(productID, 1).Add(productID, 1).Add(productID, 1)

	assert.Len(t, cart, 1)
	assert.Equal(t, int64(3), cart.Quantity(productID))
}

func TestCartDecreaseLowersQuantity(t *testing.T) {
	productID := primitive.NewObjectID()
	cart := Cart{{Product: productID, Quantity: 3}}

	updated, found := cart.Decrease(productID)

	assert.True(t, found)
	assert.Equal(t, int64(2), updated.Quantity(productID))
}

func TestCartDecreaseDropsLineAtOne(t *testing.T) {
	productID := primitive.NewObjectID()
	cart := Cart{{Product: productID, Quantity: 1}}

	updated, found := cart.Decrease(productID)

	assert.True(t, found)
	assert.Empty(t, updated)
}

func TestCartDecreaseMissingProduct(t *testing.T) {
	cart := Cart{{Product: primitive.NewObjectID(), Quantity: 2}}

	updated, found := cart.Decrease(primitive.NewObjectID())

	assert.False(t, found)
	assert.Equal(t, cart, updated)
}

func TestCartRemove(t *testing.T) {
	productID := primitive.NewObjectID()
	other := primitive.NewObjectID()
	cart := Cart{{Product: productID, Quantity: 5}, {Product: other, Quantity: 1}}

	updated := cart.Remove(productID)

	assert.Len(t, updated, 1)
	assert.Equal(t, int64(0), updated.Quantity(productID))
	assert.Equal(t, int64(1), updated.Quantity(other))
}

func TestCartRemoveAbsentIsNoOp(t *testing.T) {
	cart := Cart{{Product: primitive.NewObjectID(), Quantity: 2}}

	updated := cart.Remove(primitive.NewObjectID())

	assert.Equal(t, cart, updated)
}
