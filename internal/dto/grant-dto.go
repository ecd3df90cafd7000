package dto

import "github.com/aarondl/null/v8"

type CreateGrantDTO struct {
	Title     string    `json:"title" validate:"required"`
	Agency    string    `json:"agency" validate:"required"`
	Amount    float64   `json:"amount" validate:"gte=0"`
	Status    string    `json:"status" validate:"required"`
	StartDate null.Time `json:"start_date"`
	EndDate   null.Time `json:"end_date"`
	LabID     null.Int  `json:"lab_id" validate:"omitempty,gt=0"`
}

type UpdateGrantDTO struct {
	Title     *string   `json:"title" validate:"omitempty,min=1"`
	Agency    *string   `json:"agency" validate:"omitempty,min=1"`
	Amount    *float64  `json:"amount" validate:"omitempty,gte=0"`
	Status    *string   `json:"status"`
	StartDate null.Time `json:"start_date"`
	EndDate   null.Time `json:"end_date"`
	LabID     null.Int  `json:"lab_id" validate:"omitempty,gt=0"`
}

type GrantDTO struct {
	ID        uint64       `json:"id"`
	Title     string       `json:"title"`
	Agency    string       `json:"agency"`
	Amount    float64      `json:"amount"`
	Status    string       `json:"status"`
	StartDate *string      `json:"start_date,omitempty"`
	EndDate   *string      `json:"end_date,omitempty"`
	Lab       *ShortLabDTO `json:"lab,omitempty"`
	CreatedAt string       `json:"created_at"`
	UpdatedAt string       `json:"updated_at"`
}
