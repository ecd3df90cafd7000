package types

import "time"

// BaseEntity carries the audit timestamps shared by every table.
type BaseEntity struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
