package services

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"research-admin/internal/dto"
	"research-admin/internal/entities"
	"research-admin/internal/repositories"
	apperrors "research-admin/pkg/errors"
	"research-admin/pkg/types"
	"research-admin/pkg/utils"
)

type EquipmentServiceInterface interface {
	GetEquipments(ctx context.Context, filter types.Filter) ([]dto.EquipmentDTO, uint64, error)
	FindEquipment(ctx context.Context, id uint64) (*dto.EquipmentDTO, error)
	CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*dto.EquipmentDTO, error)
	UpdateEquipment(ctx context.Context, id uint64, payload dto.UpdateEquipmentDTO) (*dto.EquipmentDTO, error)
	DeleteEquipment(ctx context.Context, id uint64) error
}

type EquipmentService struct {
	equipmentRepository repositories.EquipmentRepositoryInterface
	logger              *zap.Logger
}

func NewEquipmentService(equipmentRepository repositories.EquipmentRepositoryInterface, logger *zap.Logger) EquipmentServiceInterface {
	return &EquipmentService{
		equipmentRepository: equipmentRepository,
		logger:              logger,
	}
}

func mapEquipmentToDTO(e entities.Equipment) dto.EquipmentDTO {
	return dto.EquipmentDTO{
		ID:        e.ID,
		Name:      e.Name,
		CreatedAt: utils.FormatTimestamp(e.CreatedAt),
		UpdatedAt: utils.FormatTimestamp(e.UpdatedAt),
	}
}

func (s *EquipmentService) GetEquipments(ctx context.Context, filter types.Filter) ([]dto.EquipmentDTO, uint64, error) {
	items, total, err := s.equipmentRepository.GetEquipments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	out := make([]dto.EquipmentDTO, 0, len(items))
	for _, e := range items {
		out = append(out, mapEquipmentToDTO(e))
	}
	return out, total, nil
}

func (s *EquipmentService) FindEquipment(ctx context.Context, id uint64) (*dto.EquipmentDTO, error) {
	e, err := s.equipmentRepository.FindEquipment(ctx, id)
	if err != nil {
		return nil, err
	}
	mapped := mapEquipmentToDTO(*e)
	return &mapped, nil
}

func (s *EquipmentService) CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*dto.EquipmentDTO, error) {
	id, err := s.equipmentRepository.CreateEquipment(ctx, payload.Name)
	if err != nil {
		s.logger.Error("CreateEquipment: insert failed", zap.String("name", payload.Name), zap.Error(err))
		return nil, err
	}
	return s.FindEquipment(ctx, id)
}

func (s *EquipmentService) UpdateEquipment(ctx context.Context, id uint64, payload dto.UpdateEquipmentDTO) (*dto.EquipmentDTO, error) {
	current, err := s.equipmentRepository.FindEquipment(ctx, id)
	if err != nil {
		return nil, err
	}

	name := current.Name
	if payload.Name != nil {
		name = *payload.Name
	}

	if err := s.equipmentRepository.UpdateEquipment(ctx, id, name); err != nil {
		return nil, err
	}
	return s.FindEquipment(ctx, id)
}

// DeleteEquipment refuses to remove a catalog item that labs still
// reference; the admin must unassign it first.
func (s *EquipmentService) DeleteEquipment(ctx context.Context, id uint64) error {
	assigned, err := s.equipmentRepository.CountAssignments(ctx, id)
	if err != nil {
		return err
	}
	if assigned > 0 {
		return apperrors.NewHttpError(
			http.StatusConflict,
			"equipment is still assigned to labs",
			nil,
			map[string]interface{}{"equipment_id": id, "assigned_labs": assigned},
		)
	}

	return s.equipmentRepository.DeleteEquipment(ctx, id)
}
