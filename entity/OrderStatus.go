package entity

import (
	"gorm.io/gorm"
)

type OrderStatus struct {
	gorm.Model
	StatusName string `gorm:"uniqueIndex" json:"statusName"`
}
