package dto

import "github.com/aarondl/null/v8"

type CreatePublicationDTO struct {
	Title   string      `json:"title" validate:"required"`
	Authors string      `json:"authors" validate:"required"`
	Venue   null.String `json:"venue"`
	Year    int         `json:"year" validate:"required,pub_year"`
	DOI     null.String `json:"doi" validate:"omitempty,doi"`
	LabID   null.Int    `json:"lab_id" validate:"omitempty,gt=0"`
}

type UpdatePublicationDTO struct {
	Title   *string     `json:"title" validate:"omitempty,min=1"`
	Authors *string     `json:"authors" validate:"omitempty,min=1"`
	Venue   null.String `json:"venue"`
	Year    *int        `json:"year" validate:"omitempty,pub_year"`
	DOI     null.String `json:"doi" validate:"omitempty,doi"`
	LabID   null.Int    `json:"lab_id" validate:"omitempty,gt=0"`
}

type PublicationDTO struct {
	ID        uint64       `json:"id"`
	Title     string       `json:"title"`
	Authors   string       `json:"authors"`
	Venue     *string      `json:"venue,omitempty"`
	Year      int          `json:"year"`
	DOI       *string      `json:"doi,omitempty"`
	Lab       *ShortLabDTO `json:"lab,omitempty"`
	CreatedAt string       `json:"created_at"`
	UpdatedAt string       `json:"updated_at"`
}
