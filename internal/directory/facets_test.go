package directory

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"research-admin/internal/entities"
	"research-admin/pkg/utils"
)

func labWithEquipment(name, text string) entities.Lab {
	return entities.Lab{Name: name, EquipmentText: utils.StringPtr(text)}
}

func TestLabTypes_DistinctSorted(t *testing.T) {
	labs := []entities.Lab{
		{Name: "A", Type: "Research Lab"},
		{Name: "B", Type: "i-Kohza"},
		{Name: "C", Type: "Research Lab"},
		{Name: "D", Type: ""},
	}

	assert.Equal(t, []string{"Research Lab", "i-Kohza"}, LabTypes(labs))
}

func TestEquipmentTags_UnionSorted(t *testing.T) {
	labs := []entities.Lab{
		labWithEquipment("A", "Oscilloscope, 3D Printer"),
		labWithEquipment("B", "3D Printer; Laser Cutter"),
		{Name: "C"}, // no equipment text at all
	}

	assert.Equal(t, []string{"3D Printer", "Laser Cutter", "Oscilloscope"}, EquipmentTags(labs))
}

func TestCountLabsWithEquipment(t *testing.T) {
	labs := []entities.Lab{
		labWithEquipment("A", "Oscilloscope, 3D Printer"),
		labWithEquipment("B", "3D Printer"),
	}

	assert.Equal(t, 2, CountLabsWithEquipment(labs, "3D Printer"))
	assert.Equal(t, 1, CountLabsWithEquipment(labs, "Oscilloscope"))
	assert.Equal(t, 0, CountLabsWithEquipment(labs, "Autoclave"))
}

func TestCountLabsWithEquipment_CaseInsensitiveSubstring(t *testing.T) {
	labs := []entities.Lab{
		labWithEquipment("A", "HPLC System"),
	}

	assert.Equal(t, 1, CountLabsWithEquipment(labs, "hplc"))
}

func TestEquipmentTagCounts(t *testing.T) {
	labs := []entities.Lab{
		labWithEquipment("A", "Oscilloscope, 3D Printer"),
		labWithEquipment("B", "3D Printer"),
	}

	counts := EquipmentTagCounts(labs)
	assert.Equal(t, map[string]int{"3D Printer": 2, "Oscilloscope": 1}, counts)
}
