package entity

import (
	"gorm.io/gorm"
)

// User is a console account: HQ staff or a branch manager. Kiosk sessions are
// anonymous and never map to a User.
type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"`
	Name     string `json:"name"`
	Role     string `gorm:"not null;default:branch" json:"role"` // hq | branch

	BranchID uint    `json:"branchId"` // 0 for hq accounts
	Branch   *Branch `json:"-"`
}
