// Package directory implements the lab directory query engine: parsing the
// legacy free-text equipment lists, extracting filter facets, applying
// search criteria and sorting/paginating the result. Everything here is pure
// and operates on in-memory lab collections; repositories fetch, this shapes.
package directory

import "strings"

func isSeparator(r rune) bool {
	return r == ',' || r == ';' || r == '\n' || r == '\r'
}

// ParseEquipmentList splits a free-text equipment field into trimmed,
// non-empty tokens. Order follows first occurrence; duplicates are kept.
// Empty or whitespace-only input yields an empty list.
func ParseEquipmentList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	parts := strings.FieldsFunc(s, isSeparator)
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		tokens = append(tokens, p)
	}
	return tokens
}
