package entities

import (
	"research-admin/pkg/types"
)

type Publication struct {
	ID      uint64  `json:"id"`
	Title   string  `json:"title"`
	Authors string  `json:"authors"`
	Venue   *string `json:"venue,omitempty"`
	Year    int     `json:"year"`
	DOI     *string `json:"doi,omitempty"`
	LabID   *uint64 `json:"lab_id,omitempty"`

	types.BaseEntity

	Lab *Lab `json:"lab,omitempty" db:"-"`
}
