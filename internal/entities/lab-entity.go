package entities

import (
	"research-admin/pkg/types"
)

type Lab struct {
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

	// Legacy free-text equipment list. Kept only until public pages move to
	// the normalized relation; the backfill migration parses it into
	// lab_equipments rows.
	EquipmentText *string `json:"equipment_text,omitempty"`

	types.BaseEntity

	// Related rows, not columns.
	Equipment []LabEquipment `json:"equipment,omitempty" db:"-"`
}
