package entities

import (
	"research-admin/pkg/types"
)

// User is a back-office administrator account.
type User struct {
	ID           uint64 `json:"id"`
	FullName     string `json:"full_name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	IsActive     bool   `json:"is_active"`

	types.BaseEntity
}
