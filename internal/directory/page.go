package directory

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"research-admin/internal/entities"
)

// SortLabsByName returns a new slice ordered by lab name using a
// locale-aware, case-insensitive collation. The sort is stable: labs with
// equal names keep their input order.
func SortLabsByName(labs []entities.Lab, descending bool) []entities.Lab {
	out := make([]entities.Lab, len(labs))
	copy(out, labs)

	col := collate.New(language.English, collate.IgnoreCase)
	sort.SliceStable(out, func(i, j int) bool {
		cmp := col.CompareString(out[i].Name, out[j].Name)
		if descending {
			return cmp > 0
		}
		return cmp < 0
	})
	return out
}

// Paginate slices labs into the requested page and returns it together with
// the total count of the input. Page numbers start at 1; a page past the end
// yields an empty slice, never an error.
func Paginate(labs []entities.Lab, page, pageSize int) ([]entities.Lab, int) {
	total := len(labs)
	if page < 1 || pageSize < 1 {
		return []entities.Lab{}, total
	}

	offset := (page - 1) * pageSize
	if offset >= total {
		return []entities.Lab{}, total
	}

	end := offset + pageSize
	if end > total {
		end = total
	}
	return labs[offset:end], total
}
