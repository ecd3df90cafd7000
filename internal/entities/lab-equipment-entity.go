package entities

// LabEquipment links a lab to a catalog equipment item with a quantity.
// At most one row per (lab, equipment) pair; quantity is always > 0 in
// storage; zero-quantity entries are dropped before persistence.
type LabEquipment struct {
	LabID       uint64 `json:"lab_id"`
	EquipmentID uint64 `json:"equipment_id"`
	Quantity    int    `json:"quantity"`

	// Joined from the equipment catalog for display.
	EquipmentName string `json:"equipment_name,omitempty" db:"-"`
}
