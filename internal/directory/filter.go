package directory

import (
	"strings"

	"research-admin/internal/entities"
)

// Criteria is one directory query. Every field is optional; an empty field
// matches all labs on that dimension. Supplied criteria combine with AND.
type Criteria struct {
	// Query matches case-insensitively against lab name, head name or
	// research area.
	Query string
	// LabType must equal the lab's type exactly.
	LabType string
	// EquipmentQuery matches against the raw equipment text, intentionally
	// looser than the parsed-token match below.
	EquipmentQuery string
	// Equipment matches case-insensitively against any parsed equipment
	// token (set when the user clicks a facet badge).
	Equipment string
}

// FilterLabs returns the labs matching every supplied criterion. Missing or
// empty lab fields never match; they never raise.
func FilterLabs(labs []entities.Lab, c Criteria) []entities.Lab {
	out := make([]entities.Lab, 0, len(labs))
	for _, lab := range labs {
		if matches(lab, c) {
			out = append(out, lab)
		}
	}
	return out
}

func matches(lab entities.Lab, c Criteria) bool {
	if q := strings.TrimSpace(c.Query); q != "" {
		needle := strings.ToLower(q)
		if !containsFold(lab.Name, needle) &&
			!containsFold(lab.HeadName, needle) &&
			!containsFold(deref(lab.ResearchArea), needle) {
			return false
		}
	}

	if c.LabType != "" && lab.Type != c.LabType {
		return false
	}

	if q := strings.TrimSpace(c.EquipmentQuery); q != "" {
		if !containsFold(equipmentText(lab), strings.ToLower(q)) {
			return false
		}
	}

	if c.Equipment != "" {
		needle := strings.ToLower(c.Equipment)
		found := false
		for _, token := range ParseEquipmentList(equipmentText(lab)) {
			if strings.Contains(strings.ToLower(token), needle) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}

// containsFold reports whether s contains needle; needle must already be
// lowercased.
func containsFold(s, needle string) bool {
	return strings.Contains(strings.ToLower(s), needle)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
