package directory

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseEquipmentList_SplitsOnAllSeparators(t *testing.T) {
	got := ParseEquipmentList("A, B;C\nD")
	assert.Equal(t, []string{"A", "B", "C", "D"}, got)
}

func TestParseEquipmentList_EmptyInputs(t *testing.T) {
	assert.Empty(t, ParseEquipmentList(""))
	assert.Empty(t, ParseEquipmentList("   "))
	assert.Empty(t, ParseEquipmentList(",;\n\r"))
}

func TestParseEquipmentList_TrimsAndKeepsOrder(t *testing.T) {
	got := ParseEquipmentList("  Oscilloscope ,, 3D Printer ;\r\n Laser Cutter ")
	assert.Equal(t, []string{"Oscilloscope", "3D Printer", "Laser Cutter"}, got)
}

func TestParseEquipmentList_KeepsDuplicates(t *testing.T) {
	got := ParseEquipmentList("Pump, Pump, Valve")
	assert.Equal(t, []string{"Pump", "Pump", "Valve"}, got)
}

func TestParseEquipmentList_Idempotent(t *testing.T) {
	inputs := []string{
		"A, B;C\nD",
		"Oscilloscope, 3D Printer",
		" x ;; y \r\n z,",
		"single",
		"",
	}
	for _, s := range inputs {
		once := ParseEquipmentList(s)
		again := ParseEquipmentList(strings.Join(once, ","))
		assert.Equal(t, once, again, "input %q", s)
	}
}
