package directory

import (
	"sort"
	"strings"

	"research-admin/internal/entities"
)

// LabTypes returns the distinct non-empty lab types present in the
// collection, sorted ascending.
func LabTypes(labs []entities.Lab) []string {
	seen := make(map[string]struct{})
	for _, lab := range labs {
		if lab.Type == "" {
			continue
		}
		seen[lab.Type] = struct{}{}
	}

	out := make([]string, 0, len(seen))
	for t := range seen {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// EquipmentTags returns the distinct equipment tokens across every lab's
// parsed equipment text, sorted ascending.
func EquipmentTags(labs []entities.Lab) []string {
	seen := make(map[string]struct{})
	for _, lab := range labs {
		for _, token := range ParseEquipmentList(equipmentText(lab)) {
			seen[token] = struct{}{}
		}
	}

	out := make([]string, 0, len(seen))
	for t := range seen {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// CountLabsWithEquipment returns how many labs have at least one parsed
// equipment token containing tag as a case-insensitive substring. Used to
// annotate facet badges with "N labs".
func CountLabsWithEquipment(labs []entities.Lab, tag string) int {
	needle := strings.ToLower(tag)
	count := 0
	for _, lab := range labs {
		for _, token := range ParseEquipmentList(equipmentText(lab)) {
			if strings.Contains(strings.ToLower(token), needle) {
				count++
				break
			}
		}
	}
	return count
}

// EquipmentTagCounts computes CountLabsWithEquipment for every distinct tag.
func EquipmentTagCounts(labs []entities.Lab) map[string]int {
	counts := make(map[string]int)
	for _, tag := range EquipmentTags(labs) {
		counts[tag] = CountLabsWithEquipment(labs, tag)
	}
	return counts
}

func equipmentText(lab entities.Lab) string {
	if lab.EquipmentText == nil {
		return ""
	}
	return *lab.EquipmentText
}
