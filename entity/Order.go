package entity

import (
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	OrderNo     string `gorm:"uniqueIndex" json:"orderNo"`
	TotalAmount int64  `json:"totalAmount"`

	BranchID uint   `json:"branchId"`
	Branch   Branch `json:"-"`

	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
	OrderType     string `json:"orderType"` // takeout | dine-in
	PaymentMethod string `json:"paymentMethod"`

	SecurityHash string `json:"-"`
	RequestedAt  int64  `json:"requestedAt"` // client request timestamp, ms

	OrderStatusID uint        `json:"orderStatusId"`
	OrderStatus   OrderStatus `json:"orderStatus"`

	Items []OrderItem `json:"-"`
}
