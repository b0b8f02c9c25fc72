package entity

import (
	"gorm.io/gorm"
)

// Option is a selectable modifier: a topping delta, or a side/drink swap for
// set menus. QuantityPriced toppings charge Price per unit up to MaxQuantity;
// everything else is fixed at one unit.
type Option struct {
	gorm.Model
	OptionName     string `json:"optionName"`
	Category       string `gorm:"index" json:"category"` // topping | side | drink
	Price          int64  `json:"price"`
	QuantityPriced bool   `json:"quantityPriced"`
	MaxQuantity    int    `gorm:"not null;default:1" json:"maxQuantity"`
	IsDefault      bool   `json:"isDefault"` // free default side/drink of a set
	SortOrder      int    `json:"sortOrder"`

	Menus []Menu `gorm:"many2many:menu_options;" json:"-"`
}
