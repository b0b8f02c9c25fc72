package entity

// Menu categories. The set is closed and goes out on the wire as itemType.
const (
	CategoryBurger = "burger"
	CategorySet    = "set"
	CategorySide   = "side"
	CategoryDrink  = "drink"
)

// Option categories.
const (
	OptionTopping = "topping"
	OptionSide    = "side"
	OptionDrink   = "drink"
)

// MenuCategories in display order.
var MenuCategories = []string{CategoryBurger, CategorySet, CategorySide, CategoryDrink}

// OptionCategories in display order.
var OptionCategories = []string{OptionTopping, OptionSide, OptionDrink}

func IsMenuCategory(c string) bool {
	for _, v := range MenuCategories {
		if v == c {
			return true
		}
	}
	return false
}

func IsOptionCategory(c string) bool {
	for _, v := range OptionCategories {
		if v == c {
			return true
		}
	}
	return false
}
