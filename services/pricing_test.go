package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shstksdbs/ERP-Project-sub001/entity"
)

func testCatalog() OptionCatalog {
	return NewOptionCatalog([]entity.Option{
		{Model: gormModel(1), OptionName: "Cheese", Category: entity.OptionTopping, Price: 500, QuantityPriced: true, MaxQuantity: 5},
		{Model: gormModel(2), OptionName: "Bacon", Category: entity.OptionTopping, Price: 700, QuantityPriced: true, MaxQuantity: 3},
		{Model: gormModel(3), OptionName: "Tomato", Category: entity.OptionTopping, Price: 300, MaxQuantity: 1},
		{Model: gormModel(4), OptionName: "Pickle", Category: entity.OptionTopping, Price: 0, MaxQuantity: 1},
		{Model: gormModel(10), OptionName: "Cheese Fries", Category: entity.OptionSide, Price: 500, MaxQuantity: 1},
		{Model: gormModel(11), OptionName: "Ade", Category: entity.OptionDrink, Price: 500, MaxQuantity: 1},
	})
}

func burgerMenu() *entity.Menu {
	m := &entity.Menu{MenuName: "Classic Burger", Category: entity.CategoryBurger, Price: 5000}
	m.ID = 100
	return m
}

func setMenu() *entity.Menu {
	m := &entity.Menu{MenuName: "Classic Set", Category: entity.CategorySet, Price: 8000}
	m.ID = 101
	return m
}

func TestComputeUnitPriceBaseOnly(t *testing.T) {
	got := ComputeUnitPrice(burgerMenu(), NewOptionSelection(), testCatalog())
	assert.Equal(t, int64(5000), got)

	assert.Equal(t, int64(5000), ComputeUnitPrice(burgerMenu(), nil, testCatalog()))
}

func TestComputeUnitPriceAddedToppings(t *testing.T) {
	catalog := testCatalog()
	sel := NewOptionSelection()
	sel.ToggleAdd(3) // Tomato 300

	got := ComputeUnitPrice(burgerMenu(), sel, catalog)
	assert.Equal(t, int64(5300), got)

	// Quantity-priced topping charges price x quantity.
	cheese := catalog[1]
	sel.ToggleAdd(1)
	sel.SetQuantity(&cheese, 3)
	got = ComputeUnitPrice(burgerMenu(), sel, catalog)
	assert.Equal(t, int64(5300+1500), got)
}

func TestComputeUnitPriceRemovedNeverDiscounts(t *testing.T) {
	sel := NewOptionSelection()
	sel.ToggleRemove(3)
	sel.ToggleRemove(4)

	got := ComputeUnitPrice(burgerMenu(), sel, testCatalog())
	assert.Equal(t, int64(5000), got)
}

func TestComputeUnitPriceSideDrinkOnlyForSets(t *testing.T) {
	catalog := testCatalog()
	sel := NewOptionSelection()
	sel.SideID = 10  // +500
	sel.DrinkID = 11 // +500

	assert.Equal(t, int64(9000), ComputeUnitPrice(setMenu(), sel, catalog))
	// Same selection against a plain burger contributes nothing.
	assert.Equal(t, int64(5000), ComputeUnitPrice(burgerMenu(), sel, catalog))
}

func TestComputeUnitPriceUnknownOptionPricesZero(t *testing.T) {
	sel := NewOptionSelection()
	sel.ToggleAdd(999)
	sel.ToggleAdd(3)

	got := ComputeUnitPrice(burgerMenu(), sel, testCatalog())
	assert.Equal(t, int64(5300), got)

	assert.Equal(t, []uint{999}, MissingOptionIDs(sel, testCatalog()))
}

func TestComputeUnitPriceNeverBelowBase(t *testing.T) {
	catalog := testCatalog()
	sel := NewOptionSelection()
	sel.ToggleRemove(1)
	sel.ToggleRemove(2)
	sel.ToggleRemove(3)
	sel.ToggleAdd(4) // free pickle

	got := ComputeUnitPrice(burgerMenu(), sel, catalog)
	assert.GreaterOrEqual(t, got, burgerMenu().Price)
}

func TestComputeTotalPrice(t *testing.T) {
	assert.Equal(t, int64(15900), ComputeTotalPrice(5300, 3))
}

func TestToggleAddRemoveMutuallyExclusive(t *testing.T) {
	sel := NewOptionSelection()

	sel.ToggleAdd(1)
	assert.Equal(t, ToppingAdd, sel.Toppings[1])

	sel.ToggleRemove(1)
	assert.Equal(t, ToppingRemove, sel.Toppings[1])

	sel.ToggleRemove(1)
	_, ok := sel.Toppings[1]
	assert.False(t, ok, "second toggle clears the mark")
}

func TestSetQuantityClamps(t *testing.T) {
	catalog := testCatalog()
	cheese := catalog[1] // cap 5
	tomato := catalog[3] // not quantity priced

	sel := NewOptionSelection()
	sel.SetQuantity(&cheese, 9)
	assert.Equal(t, 5, sel.Quantity(cheese.ID))

	sel.SetQuantity(&cheese, 0)
	assert.Equal(t, 1, sel.Quantity(cheese.ID))

	sel.AdjustQuantity(&cheese, 2)
	assert.Equal(t, 3, sel.Quantity(cheese.ID))

	sel.SetQuantity(&tomato, 4)
	assert.Equal(t, 1, sel.Quantity(tomato.ID), "fixed toppings stay at 1")
}

func TestNormalizeSelectionSortedAndFrozen(t *testing.T) {
	catalog := testCatalog()
	sel := NewOptionSelection()
	sel.ToggleAdd(3)
	sel.ToggleAdd(1)
	cheese := catalog[1]
	sel.SetQuantity(&cheese, 2)
	sel.ToggleRemove(4)
	sel.SideID = 10
	sel.DrinkID = 11

	out := NormalizeSelection(setMenu(), sel, catalog)

	require.Len(t, out.Added, 2)
	assert.Equal(t, uint(1), out.Added[0].OptionID)
	assert.Equal(t, 2, out.Added[0].Quantity)
	assert.Equal(t, uint(3), out.Added[1].OptionID)
	assert.Equal(t, 1, out.Added[1].Quantity)

	require.Len(t, out.Removed, 1)
	assert.Equal(t, "Pickle", out.Removed[0].Name)

	require.NotNil(t, out.Side)
	assert.Equal(t, "Cheese Fries", out.Side.Name)
	require.NotNil(t, out.Drink)
	assert.Equal(t, int64(500), out.Drink.Price)
}
