package entities

import (
	"time"

	"research-admin/pkg/types"
)

type Grant struct {
	ID        uint64     `json:"id"`
	Title     string     `json:"title"`
	Agency    string     `json:"agency"`
	Amount    float64    `json:"amount"`
	Status    string     `json:"status"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	LabID     *uint64    `json:"lab_id,omitempty"`

	types.BaseEntity

	Lab *Lab `json:"lab,omitempty" db:"-"`
}
