package services

import (
	"github.com/shstksdbs/ERP-Project-sub001/entity"
)

// ToppingState is the per-topping choice. A single tri-state value replaces the
// old paired add/remove booleans, so both can never hold at once.
type ToppingState int

const (
	ToppingUnset ToppingState = iota
	ToppingAdd
	ToppingRemove
)

// OptionSelection is the in-progress choice state for one menu item, before it
// becomes a cart line. Discarded on cancel, frozen into the line on confirm.
type OptionSelection struct {
	Toppings   map[uint]ToppingState
	Quantities map[uint]int // quantity-priced toppings only; absent means 1
	SideID     uint         // 0 = none chosen
	DrinkID    uint
}

func NewOptionSelection() *OptionSelection {
	return &OptionSelection{
		Toppings:   make(map[uint]ToppingState),
		Quantities: make(map[uint]int),
	}
}

// ToggleAdd flips the add mark for a topping. Marking add drops any remove mark.
func (s *OptionSelection) ToggleAdd(optionID uint) {
	if s.Toppings[optionID] == ToppingAdd {
		delete(s.Toppings, optionID)
		return
	}
	s.Toppings[optionID] = ToppingAdd
}

// ToggleRemove flips the remove mark for a topping. Marking remove drops any add mark.
func (s *OptionSelection) ToggleRemove(optionID uint) {
	if s.Toppings[optionID] == ToppingRemove {
		delete(s.Toppings, optionID)
		return
	}
	s.Toppings[optionID] = ToppingRemove
}

// Quantity returns the chosen count for a quantity-priced topping, defaulting to 1.
func (s *OptionSelection) Quantity(optionID uint) int {
	if q, ok := s.Quantities[optionID]; ok {
		return q
	}
	return 1
}

// SetQuantity sets the count for a quantity-priced topping, clamped to
// [1, opt.MaxQuantity]. Non-quantity-priced toppings stay fixed at 1.
func (s *OptionSelection) SetQuantity(opt *entity.Option, n int) {
	if !opt.QuantityPriced {
		return
	}
	cap := opt.MaxQuantity
	if cap < 1 {
		cap = 1
	}
	if n < 1 {
		n = 1
	}
	if n > cap {
		n = cap
	}
	s.Quantities[opt.ID] = n
}

// AdjustQuantity applies a +/- step from the current count, with the same clamp.
func (s *OptionSelection) AdjustQuantity(opt *entity.Option, delta int) {
	s.SetQuantity(opt, s.Quantity(opt.ID)+delta)
}
