package entity

import (
	"gorm.io/gorm"
)

type OrderItemOption struct {
	gorm.Model
	OrderItemID uint      `json:"orderItemId"`
	OrderItem   OrderItem `json:"-"`

	OptionID   uint   `json:"optionId"`
	OptionName string `json:"optionName"` // snapshot
	Quantity   int    `json:"quantity"`
	UnitPrice  int64  `json:"unitPrice"`
	Action     string `json:"action"` // add | remove
}
