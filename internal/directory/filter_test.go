package directory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"research-admin/internal/entities"
	"research-admin/pkg/utils"
)

func sampleLabs() []entities.Lab {
	return []entities.Lab{
		{
			Name:          "Optics Lab",
			HeadName:      "Dr. Tan",
			Type:          "Research Lab",
			ResearchArea:  utils.StringPtr("Photonics"),
			EquipmentText: utils.StringPtr("Oscilloscope, Laser Cutter"),
		},
		{
			Name:          "Robotics Lab",
			HeadName:      "Dr. Lee",
			Type:          "i-Kohza",
			ResearchArea:  utils.StringPtr("Autonomous Systems"),
			EquipmentText: utils.StringPtr("3D Printer; Servo Rig"),
		},
		{
			Name:     "Materials Lab",
			HeadName: "Dr. Iskandar",
			Type:     "Research Lab",
			// no research area, no equipment text
		},
	}
}

func names(labs []entities.Lab) []string {
	out := make([]string, 0, len(labs))
	for _, l := range labs {
		out = append(out, l.Name)
	}
	return out
}

func TestFilterLabs_EmptyCriteriaMatchesEverything(t *testing.T) {
	labs := sampleLabs()
	got := FilterLabs(labs, Criteria{})
	assert.Equal(t, names(labs), names(got))
}

func TestFilterLabs_QueryMatchesHeadName(t *testing.T) {
	got := FilterLabs(sampleLabs(), Criteria{Query: "tan"})
	assert.Equal(t, []string{"Optics Lab"}, names(got))
}

func TestFilterLabs_QueryMatchesResearchArea(t *testing.T) {
	got := FilterLabs(sampleLabs(), Criteria{Query: "photon"})
	assert.Equal(t, []string{"Optics Lab"}, names(got))
}

func TestFilterLabs_WhitespaceQueryMatchesAll(t *testing.T) {
	got := FilterLabs(sampleLabs(), Criteria{Query: "   "})
	assert.Len(t, got, 3)
}

func TestFilterLabs_LabTypeExactMatch(t *testing.T) {
	got := FilterLabs(sampleLabs(), Criteria{LabType: "Research Lab"})
	assert.Equal(t, []string{"Optics Lab", "Materials Lab"}, names(got))

	// No partial type matches.
	got = FilterLabs(sampleLabs(), Criteria{LabType: "Research"})
	assert.Empty(t, got)
}

func TestFilterLabs_EquipmentQueryAgainstRawText(t *testing.T) {
	got := FilterLabs(sampleLabs(), Criteria{EquipmentQuery: "laser"})
	assert.Equal(t, []string{"Optics Lab"}, names(got))
}

func TestFilterLabs_EquipmentFacetAgainstParsedTokens(t *testing.T) {
	got := FilterLabs(sampleLabs(), Criteria{Equipment: "3d printer"})
	assert.Equal(t, []string{"Robotics Lab"}, names(got))
}

func TestFilterLabs_MissingFieldsNeverMatch(t *testing.T) {
	// Materials Lab has no equipment text; it must be filtered out, not panic.
	got := FilterLabs(sampleLabs(), Criteria{Equipment: "Oscilloscope"})
	assert.Equal(t, []string{"Optics Lab"}, names(got))
}

func TestFilterLabs_CriteriaCombineWithAND(t *testing.T) {
	got := FilterLabs(sampleLabs(), Criteria{Query: "lab", LabType: "i-Kohza"})
	assert.Equal(t, []string{"Robotics Lab"}, names(got))
}

func TestFilterLabs_AddingCriterionNeverGrowsResult(t *testing.T) {
	labs := sampleLabs()

	base := FilterLabs(labs, Criteria{Query: "lab"})
	narrowed := FilterLabs(labs, Criteria{Query: "lab", LabType: "Research Lab"})

	require.LessOrEqual(t, len(narrowed), len(base))
	baseNames := names(base)
	for _, n := range names(narrowed) {
		assert.Contains(t, baseNames, n)
	}
}
