package entity

import (
	"gorm.io/gorm"
)

type Branch struct {
	gorm.Model
	BranchName string `gorm:"uniqueIndex" json:"branchName"`
	Address    string `json:"address"`
	Phone      string `json:"phone"`
	Status     string `gorm:"not null;default:open" json:"status"`

	Orders []Order `json:"-"`
}
