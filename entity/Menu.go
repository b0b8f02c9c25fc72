package entity

import (
	"gorm.io/gorm"
)

type Menu struct {
	gorm.Model
	MenuName    string `json:"menuName"`
	Category    string `gorm:"index" json:"category"` // burger | set | side | drink
	Price       int64  `json:"price"`
	Description string `json:"description"`
	Image       string `json:"image"`

	Options    []Option    `gorm:"many2many:menu_options;" json:"-"`
	OrderItems []OrderItem `json:"-"`
}
