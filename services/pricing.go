package services

import (
	"sort"

	"github.com/shstksdbs/ERP-Project-sub001/entity"
)

// OptionCatalog indexes the options available for one menu item by id.
type OptionCatalog map[uint]entity.Option

func NewOptionCatalog(opts []entity.Option) OptionCatalog {
	c := make(OptionCatalog, len(opts))
	for _, o := range opts {
		c[o.ID] = o
	}
	return c
}

// DisplayOptions is the frozen, display-ready projection of a selection, stored
// on the cart line and serialized into order lines. Entries are sorted by option
// id: the serialized items feed the order security hash, so order must be stable.
type DisplayOptions struct {
	Added   []AddedTopping   `json:"added"`
	Removed []RemovedTopping `json:"removed"`
	Side    *PickedOption    `json:"side,omitempty"`
	Drink   *PickedOption    `json:"drink,omitempty"`
}

type AddedTopping struct {
	OptionID uint   `json:"optionId"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Quantity int    `json:"quantity"`
}

type RemovedTopping struct {
	OptionID uint   `json:"optionId"`
	Name     string `json:"name"`
}

type PickedOption struct {
	OptionID uint   `json:"optionId"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
}

// ComputeUnitPrice prices one unit: base price plus added-topping deltas, plus
// side/drink deltas for set menus. Removed toppings never discount. Option ids
// missing from the catalog contribute zero; callers should report those via
// MissingOptionIDs.
func ComputeUnitPrice(menu *entity.Menu, sel *OptionSelection, catalog OptionCatalog) int64 {
	price := menu.Price
	if sel == nil {
		return price
	}

	for id, state := range sel.Toppings {
		if state != ToppingAdd {
			continue
		}
		def, ok := catalog[id]
		if !ok {
			continue
		}
		if def.QuantityPriced {
			price += def.Price * int64(sel.Quantity(id))
		} else {
			price += def.Price
		}
	}

	// Side/drink swaps only exist on set menus.
	if menu.Category == entity.CategorySet {
		if def, ok := catalog[sel.SideID]; ok && sel.SideID != 0 {
			price += def.Price
		}
		if def, ok := catalog[sel.DrinkID]; ok && sel.DrinkID != 0 {
			price += def.Price
		}
	}
	return price
}

// ComputeTotalPrice is unit price times quantity. Quantity is clamped to >= 1
// by the caller before lines are created.
func ComputeTotalPrice(unitPrice int64, qty int) int64 {
	return unitPrice * int64(qty)
}

// NormalizeSelection projects a selection into its frozen display form.
// Pure; no side effects on the selection.
func NormalizeSelection(menu *entity.Menu, sel *OptionSelection, catalog OptionCatalog) DisplayOptions {
	out := DisplayOptions{
		Added:   []AddedTopping{},
		Removed: []RemovedTopping{},
	}
	if sel == nil {
		return out
	}

	for id, state := range sel.Toppings {
		def, ok := catalog[id]
		if !ok {
			continue
		}
		switch state {
		case ToppingAdd:
			qty := 1
			if def.QuantityPriced {
				qty = sel.Quantity(id)
			}
			out.Added = append(out.Added, AddedTopping{
				OptionID: def.ID, Name: def.OptionName, Price: def.Price, Quantity: qty,
			})
		case ToppingRemove:
			out.Removed = append(out.Removed, RemovedTopping{OptionID: def.ID, Name: def.OptionName})
		}
	}
	sort.Slice(out.Added, func(i, j int) bool { return out.Added[i].OptionID < out.Added[j].OptionID })
	sort.Slice(out.Removed, func(i, j int) bool { return out.Removed[i].OptionID < out.Removed[j].OptionID })

	if menu.Category == entity.CategorySet {
		if def, ok := catalog[sel.SideID]; ok && sel.SideID != 0 {
			out.Side = &PickedOption{OptionID: def.ID, Name: def.OptionName, Price: def.Price}
		}
		if def, ok := catalog[sel.DrinkID]; ok && sel.DrinkID != 0 {
			out.Drink = &PickedOption{OptionID: def.ID, Name: def.OptionName, Price: def.Price}
		}
	}
	return out
}

// MissingOptionIDs lists referenced option ids absent from the catalog, so the
// caller can log a data-integrity warning (the pricer itself treats them as zero).
func MissingOptionIDs(sel *OptionSelection, catalog OptionCatalog) []uint {
	if sel == nil {
		return nil
	}
	var missing []uint
	for id := range sel.Toppings {
		if _, ok := catalog[id]; !ok {
			missing = append(missing, id)
		}
	}
	if sel.SideID != 0 {
		if _, ok := catalog[sel.SideID]; !ok {
			missing = append(missing, sel.SideID)
		}
	}
	if sel.DrinkID != 0 {
		if _, ok := catalog[sel.DrinkID]; !ok {
			missing = append(missing, sel.DrinkID)
		}
	}
	sort.Slice(missing, func(i, j int) bool { return missing[i] < missing[j] })
	return missing
}
