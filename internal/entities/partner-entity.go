package entities

import (
	"research-admin/pkg/types"
)

type Partner struct {
	ID       uint64  `json:"id"`
	Name     string  `json:"name"`
	Country  *string `json:"country,omitempty"`
	Kind     string  `json:"kind"` // "University", "Industry", "Government"
	Website  *string `json:"website,omitempty"`
	LogoPath *string `json:"logo_path,omitempty"`

	types.BaseEntity
}
