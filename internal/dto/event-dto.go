package dto

import "github.com/aarondl/null/v8"

type CreateEventDTO struct {
	Title     string      `json:"title" validate:"required"`
	Body      string      `json:"body" validate:"required"`
	Location  null.String `json:"location"`
	StartsAt  null.Time   `json:"starts_at"`
	EndsAt    null.Time   `json:"ends_at"`
	Published bool        `json:"published"`
}

type UpdateEventDTO struct {
	Title     *string     `json:"title" validate:"omitempty,min=1"`
	Body      *string     `json:"body" validate:"omitempty,min=1"`
	Location  null.String `json:"location"`
	StartsAt  null.Time   `json:"starts_at"`
	EndsAt    null.Time   `json:"ends_at"`
	Published *bool       `json:"published"`
}

type EventDTO struct {
	ID        uint64  `json:"id"`
	Title     string  `json:"title"`
	Body      string  `json:"body"`
	Location  *string `json:"location,omitempty"`
	StartsAt  *string `json:"starts_at,omitempty"`
	EndsAt    *string `json:"ends_at,omitempty"`
	ImagePath *string `json:"image_path,omitempty"`
	Published bool    `json:"published"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}
