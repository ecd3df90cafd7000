package dto

type CreateEquipmentDTO struct {
	Name string `json:"name" validate:"required"`
}

type UpdateEquipmentDTO struct {
	Name *string `json:"name" validate:"omitempty,min=1"`
}

type EquipmentDTO struct {
	ID        uint64 `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type ShortEquipmentDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}
