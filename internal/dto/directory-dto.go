package dto

import "research-admin/pkg/types"

// EquipmentFacetDTO annotates a facet badge with "N labs".
type EquipmentFacetDTO struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// DirectoryFacetsDTO drives the public filter UI.
type DirectoryFacetsDTO struct {
	LabTypes  []string            `json:"lab_types"`
	Equipment []EquipmentFacetDTO `json:"equipment"`
}

// DirectoryPageDTO is one rendered page of the public lab directory.
type DirectoryPageDTO struct {
	Labs       []LabDTO            `json:"labs"`
	Pagination types.Pagination    `json:"pagination"`
	Facets     *DirectoryFacetsDTO `json:"facets,omitempty"`
}
