package entities

import (
	"research-admin/pkg/types"
)

// Equipment is a shared catalog item; many labs may reference the same row.
type Equipment struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`

	types.BaseEntity
}
