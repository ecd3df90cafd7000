package constants

// Lab types as used by the research office.
const (
	LabTypeIKohza    = "i-Kohza"
	LabTypeResearch  = "Research Lab"
	LabTypeSatellite = "Satellite Lab"
	LabTypeTeaching  = "Teaching Lab"
	LabTypeService   = "Service Lab"
)

var LabTypes = []string{
	LabTypeIKohza,
	LabTypeResearch,
	LabTypeSatellite,
	LabTypeTeaching,
	LabTypeService,
}

// Lab operational statuses.
const (
	LabStatusActive           = "Active"
	LabStatusUnderMaintenance = "Under Maintenance"
	LabStatusUnavailable      = "Unavailable"
)

var LabStatuses = []string{
	LabStatusActive,
	LabStatusUnderMaintenance,
	LabStatusUnavailable,
}

func IsValidLabType(t string) bool {
	for _, v := range LabTypes {
		if v == t {
			return true
		}
	}
	return false
}

func IsValidLabStatus(s string) bool {
	for _, v := range LabStatuses {
		if v == s {
			return true
		}
	}
	return false
}
