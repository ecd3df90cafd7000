package dto

import "github.com/aarondl/null/v8"

type CreatePartnerDTO struct {
	Name    string      `json:"name" validate:"required"`
	Country null.String `json:"country"`
	Kind    string      `json:"kind" validate:"required,oneof=University Industry Government"`
	Website null.String `json:"website" validate:"omitempty,url"`
}

type UpdatePartnerDTO struct {
	Name    *string     `json:"name" validate:"omitempty,min=1"`
	Country null.String `json:"country"`
	Kind    *string     `json:"kind" validate:"omitempty,oneof=University Industry Government"`
	Website null.String `json:"website" validate:"omitempty,url"`
}

type PartnerDTO struct {
	ID        uint64  `json:"id"`
	Name      string  `json:"name"`
	Country   *string `json:"country,omitempty"`
	Kind      string  `json:"kind"`
	Website   *string `json:"website,omitempty"`
	LogoPath  *string `json:"logo_path,omitempty"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}
