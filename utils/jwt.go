package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carried by console tokens. BranchID is 0 for HQ accounts.
type Claims struct {
	UserID   uint   `json:"userId"`
	Role     string `json:"role"`
	BranchID uint   `json:"branchId"`
	jwt.RegisteredClaims
}

func GenerateToken(userID uint, role string, branchID uint, secret string, ttl time.Duration) (string, error) {
	claims := &Claims{
		UserID:   userID,
		Role:     role,
		BranchID: branchID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
