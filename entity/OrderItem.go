package entity

import (
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	MenuID   uint   `json:"menuId"`
	Menu     Menu   `json:"-"`
	MenuName string `json:"menuName"` // snapshot; menus are editable at HQ

	Qty         int    `json:"qty"`
	UnitPrice   int64  `json:"unitPrice"`
	Total       int64  `json:"total"`
	DisplayName string `json:"displayName"`
	ItemType    string `json:"itemType"`

	Selections []OrderItemOption `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"selections"`
}
