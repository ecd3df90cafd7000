package directory

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"research-admin/internal/entities"
)

func TestSortLabsByName_Ascending(t *testing.T) {
	labs := []entities.Lab{
		{Name: "Robotics Lab"},
		{Name: "optics lab"},
		{Name: "Materials Lab"},
	}

	got := SortLabsByName(labs, false)
	assert.Equal(t, []string{"Materials Lab", "optics lab", "Robotics Lab"}, names(got))
}

func TestSortLabsByName_Descending(t *testing.T) {
	labs := []entities.Lab{
		{Name: "Materials Lab"},
		{Name: "Robotics Lab"},
		{Name: "Optics Lab"},
	}

	got := SortLabsByName(labs, true)
	assert.Equal(t, []string{"Robotics Lab", "Optics Lab", "Materials Lab"}, names(got))
}

func TestSortLabsByName_StableOnTies(t *testing.T) {
	labs := []entities.Lab{
		{ID: 1, Name: "Shared Lab"},
		{ID: 2, Name: "Analysis Lab"},
		{ID: 3, Name: "Shared Lab"},
	}

	got := SortLabsByName(labs, false)
	require.Len(t, got, 3)
	assert.Equal(t, uint64(2), got[0].ID)
	assert.Equal(t, uint64(1), got[1].ID)
	assert.Equal(t, uint64(3), got[2].ID)
}

func TestSortLabsByName_DoesNotMutateInput(t *testing.T) {
	labs := []entities.Lab{{Name: "B"}, {Name: "A"}}
	_ = SortLabsByName(labs, false)
	assert.Equal(t, []string{"B", "A"}, names(labs))
}

func TestPaginate_23LabsPageSize10(t *testing.T) {
	labs := make([]entities.Lab, 23)
	for i := range labs {
		labs[i] = entities.Lab{ID: uint64(i + 1)}
	}

	page1, total := Paginate(labs, 1, 10)
	assert.Equal(t, 23, total)
	assert.Len(t, page1, 10)

	page3, _ := Paginate(labs, 3, 10)
	assert.Len(t, page3, 3)

	page4, _ := Paginate(labs, 4, 10)
	assert.Empty(t, page4)
}

func TestPaginate_InvalidPageOrSize(t *testing.T) {
	labs := []entities.Lab{{ID: 1}}

	got, total := Paginate(labs, 0, 10)
	assert.Empty(t, got)
	assert.Equal(t, 1, total)

	got, _ = Paginate(labs, 1, 0)
	assert.Empty(t, got)
}

func TestPaginate_CoversCollectionExactlyOnce(t *testing.T) {
	for _, tc := range []struct{ n, size int }{
		{0, 5}, {1, 1}, {9, 3}, {10, 3}, {11, 3}, {23, 10},
	} {
		t.Run(fmt.Sprintf("n=%d_size=%d", tc.n, tc.size), func(t *testing.T) {
			labs := make([]entities.Lab, tc.n)
			for i := range labs {
				labs[i] = entities.Lab{ID: uint64(i + 1)}
			}

			var rebuilt []entities.Lab
			for page := 1; ; page++ {
				slice, total := Paginate(labs, page, tc.size)
				require.Equal(t, tc.n, total)
				if len(slice) == 0 {
					break
				}
				rebuilt = append(rebuilt, slice...)
			}

			require.Len(t, rebuilt, tc.n)
			for i, lab := range rebuilt {
				assert.Equal(t, uint64(i+1), lab.ID)
			}
		})
	}
}
