package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addBurger(t *testing.T, cart *Cart, qty int) *CartLine {
	t.Helper()
	catalog := testCatalog()
	sel := NewOptionSelection()
	sel.ToggleAdd(3) // Tomato +300
	line, err := cart.AddLine(burgerMenu(), sel, catalog, qty)
	require.NoError(t, err)
	return line
}

func TestCartAddLineFreezesPrice(t *testing.T) {
	cart := NewCart(1)
	line := addBurger(t, cart, 2)

	assert.Equal(t, int64(5300), line.UnitPrice)
	assert.Equal(t, int64(10600), line.Total)
	assert.Equal(t, []string{"+Tomato"}, line.Labels)
	assert.Equal(t, CartBuilding, cart.State())
	assert.Equal(t, int64(10600), cart.Total())
}

func TestCartAddLineClampsQuantity(t *testing.T) {
	cart := NewCart(1)
	line := addBurger(t, cart, 0)
	assert.Equal(t, 1, line.Qty)
}

func TestCartIdenticalConfigsStaySeparateLines(t *testing.T) {
	cart := NewCart(1)
	addBurger(t, cart, 1)
	addBurger(t, cart, 1)

	lines := cart.Lines()
	require.Len(t, lines, 2)
	assert.NotEqual(t, lines[0].ID, lines[1].ID)
	assert.Equal(t, int64(10600), cart.Total())
}

func TestCartUpdateQuantity(t *testing.T) {
	cart := NewCart(1)
	line := addBurger(t, cart, 1)

	require.NoError(t, cart.UpdateQuantity(line.ID, 2))
	assert.Equal(t, int64(15900), cart.Total())

	// Dropping to zero or below removes the line and empties the cart.
	require.NoError(t, cart.UpdateQuantity(line.ID, -5))
	assert.Empty(t, cart.Lines())
	assert.Equal(t, CartEmpty, cart.State())
	assert.Equal(t, int64(0), cart.Total())
}

func TestCartRemoveLine(t *testing.T) {
	cart := NewCart(1)
	a := addBurger(t, cart, 1)
	addBurger(t, cart, 3)

	require.NoError(t, cart.RemoveLine(a.ID))
	assert.Len(t, cart.Lines(), 1)
	assert.Equal(t, int64(3*5300), cart.Total())

	assert.ErrorIs(t, cart.RemoveLine("nope"), ErrLineNotFound)
}

func TestCartTotalAlwaysSumOfLines(t *testing.T) {
	cart := NewCart(1)
	a := addBurger(t, cart, 2)
	b := addBurger(t, cart, 1)
	addBurger(t, cart, 4)

	require.NoError(t, cart.UpdateQuantity(a.ID, 1))
	require.NoError(t, cart.RemoveLine(b.ID))
	require.NoError(t, cart.UpdateQuantity(a.ID, -2))

	var want int64
	for _, l := range cart.Lines() {
		want += l.Total
	}
	assert.Equal(t, want, cart.Total())
}

func TestCartCheckoutStateMachine(t *testing.T) {
	cart := NewCart(1)

	// Empty carts cannot enter checkout.
	assert.ErrorIs(t, cart.beginCheckout(), ErrEmptyCart)

	line := addBurger(t, cart, 1)
	require.NoError(t, cart.beginCheckout())
	assert.Equal(t, CartCheckingOut, cart.State())

	// The cart is locked while a checkout is in flight.
	assert.ErrorIs(t, cart.beginCheckout(), ErrCheckoutInFlight)
	_, err := cart.AddLine(burgerMenu(), nil, testCatalog(), 1)
	assert.ErrorIs(t, err, ErrCheckoutInFlight)
	assert.ErrorIs(t, cart.UpdateQuantity(line.ID, 1), ErrCheckoutInFlight)
	assert.ErrorIs(t, cart.RemoveLine(line.ID), ErrCheckoutInFlight)

	// Failure returns to building with lines intact.
	cart.finishCheckout(false)
	assert.Equal(t, CartBuilding, cart.State())
	assert.Len(t, cart.Lines(), 1)

	// Success clears the cart.
	require.NoError(t, cart.beginCheckout())
	cart.finishCheckout(true)
	assert.Equal(t, CartSubmitted, cart.State())
	assert.Empty(t, cart.Lines())
}

func TestCartServiceSessions(t *testing.T) {
	svc := NewCartService()

	sid := svc.CreateSession(7)
	cart, err := svc.Get(sid)
	require.NoError(t, err)
	assert.Equal(t, uint(7), cart.BranchID())
	assert.Equal(t, CartEmpty, cart.State())

	other := svc.CreateSession(7)
	assert.NotEqual(t, sid, other)

	svc.Drop(sid)
	_, err = svc.Get(sid)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
