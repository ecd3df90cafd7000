package entities

import (
	"time"

	"research-admin/pkg/types"
)

// Event covers both announcements and scheduled events; announcements have
// no start/end times.
type Event struct {
	ID        uint64     `json:"id"`
	Title     string     `json:"title"`
	Body      string     `json:"body"`
	Location  *string    `json:"location,omitempty"`
	StartsAt  *time.Time `json:"starts_at,omitempty"`
	EndsAt    *time.Time `json:"ends_at,omitempty"`
	ImagePath *string    `json:"image_path,omitempty"`
	Published bool       `json:"published"`

	types.BaseEntity
}
