package entities

import "time"

// GrantReportRow is one line of the grant funding export.
type GrantReportRow struct {
	GrantID   uint64
	Title     string
	Agency    string
	Amount    float64
	Status    string
	StartDate string
	EndDate   string
	LabName   string
}

// LabReportRow is one line of the lab inventory export.
type LabReportRow struct {
	LabID          uint64
	LabName        string
	HeadName       string
	HeadEmail      string
	Type           string
	Status         string
	Location       string
	ResearchArea   string
	EquipmentCount int
	EquipmentList  string
	CreatedAt      time.Time
}
