package dto

import "github.com/aarondl/null/v8"

// LabEquipmentInputDTO is one row of the equipment picker on the lab form.
type LabEquipmentInputDTO struct {
	EquipmentID uint64 `json:"equipment_id" validate:"required,gt=0"`
	Quantity    int    `json:"quantity" validate:"gte=0"`
}

type CreateLabDTO struct {
	Name         string      `json:"name" validate:"required"`
	HeadName     string      `json:"head_name" validate:"required"`
	HeadEmail    null.String `json:"head_email" validate:"omitempty,email"`
	Type         string      `json:"type" validate:"required"`
	Status       string      `json:"status" validate:"required"`
	ResearchArea null.String `json:"research_area"`
	Description  null.String `json:"description"`
	Location     null.String `json:"location"`
	ContactPhone null.String `json:"contact_phone" validate:"omitempty,phone_loose"`

	// Full replacement set of equipment assignments for the lab.
	Equipment []LabEquipmentInputDTO `json:"equipment" validate:"omitempty,dive"`
}

type UpdateLabDTO struct {
	Name         *string     `json:"name" validate:"omitempty,min=1"`
	HeadName     *string     `json:"head_name" validate:"omitempty,min=1"`
	HeadEmail    null.String `json:"head_email" validate:"omitempty,email"`
	Type         *string     `json:"type"`
	Status       *string     `json:"status"`
	ResearchArea null.String `json:"research_area"`
	Description  null.String `json:"description"`
	Location     null.String `json:"location"`
	ContactPhone null.String `json:"contact_phone" validate:"omitempty,phone_loose"`

	// nil leaves assignments untouched; non-nil (including empty) replaces
	// the whole set.
	Equipment *[]LabEquipmentInputDTO `json:"equipment" validate:"omitempty,dive"`
}

type LabEquipmentDTO struct {
	EquipmentID uint64 `json:"equipment_id"`
	Name        string `json:"name"`
	Quantity    int    `json:"quantity"`
}

type LabDTO struct {
	ID           uint64  `json:"id"`
	Name         string  `json:"name"`
	HeadName     string  `json:"head_name"`
	HeadEmail    *string `json:"head_email,omitempty"`
	Type         string  `json:"type"`
	Status       string  `json:"status"`
	ResearchArea *string `json:"research_area,omitempty"`
	Description  *string `json:"description,omitempty"`
	Location     *string `json:"location,omitempty"`
	ContactPhone *string `json:"contact_phone,omitempty"`

	Equipment []LabEquipmentDTO `json:"equipment"`

	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type ShortLabDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}
