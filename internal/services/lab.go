package services

import (
	"context"
	"net/http"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"research-admin/internal/dto"
	"research-admin/internal/entities"
	"research-admin/internal/repositories"
	"research-admin/pkg/constants"
	apperrors "research-admin/pkg/errors"
	"research-admin/pkg/types"
	"research-admin/pkg/utils"
)

type LabServiceInterface interface {
	GetLabs(ctx context.Context, filter types.Filter) ([]dto.LabDTO, uint64, error)
	FindLab(ctx context.Context, id uint64) (*dto.LabDTO, error)
	CreateLab(ctx context.Context, payload dto.CreateLabDTO) (*dto.LabDTO, error)
	UpdateLab(ctx context.Context, id uint64, payload dto.UpdateLabDTO) (*dto.LabDTO, error)
	DeleteLab(ctx context.Context, id uint64) error
}

type LabService struct {
	labRepository repositories.LabRepositoryInterface
	txManager     repositories.TxManagerInterface
	cache         repositories.CacheRepositoryInterface
	logger        *zap.Logger
}

func NewLabService(
	labRepository repositories.LabRepositoryInterface,
	txManager repositories.TxManagerInterface,
	cache repositories.CacheRepositoryInterface,
	logger *zap.Logger,
) LabServiceInterface {
	return &LabService{
		labRepository: labRepository,
		txManager:     txManager,
		cache:         cache,
		logger:        logger,
	}
}

func (s *LabService) GetLabs(ctx context.Context, filter types.Filter) ([]dto.LabDTO, uint64, error) {
	labs, total, err := s.labRepository.GetLabs(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	out := make([]dto.LabDTO, 0, len(labs))
	for _, lab := range labs {
		out = append(out, MapLabToDTO(lab))
	}
	return out, total, nil
}

func (s *LabService) FindLab(ctx context.Context, id uint64) (*dto.LabDTO, error) {
	lab, err := s.labRepository.FindLab(ctx, id)
	if err != nil {
		return nil, err
	}
	mapped := MapLabToDTO(*lab)
	return &mapped, nil
}

// CreateLab validates the enumerated fields, then inserts the lab row and
// its equipment assignments in one transaction. Either everything lands or
// nothing does.
func (s *LabService) CreateLab(ctx context.Context, payload dto.CreateLabDTO) (*dto.LabDTO, error) {
	if fields := validateLabEnums(payload.Type, payload.Status); len(fields) > 0 {
		return nil, apperrors.NewHttpError(http.StatusBadRequest, "invalid lab payload", nil, nil).WithDetails(fields)
	}

	lab := entities.Lab{
		Name:         payload.Name,
		HeadName:     payload.HeadName,
		HeadEmail:    payload.HeadEmail.Ptr(),
		Type:         payload.Type,
		Status:       payload.Status,
		ResearchArea: payload.ResearchArea.Ptr(),
		Description:  payload.Description.Ptr(),
		Location:     payload.Location.Ptr(),
		ContactPhone: payload.ContactPhone.Ptr(),
	}

	items := assignmentsFromInput(payload.Equipment)

	var newID uint64
	err := s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		id, err := s.labRepository.CreateLab(ctx, tx, lab)
		if err != nil {
			return err
		}
		newID = id
		return s.labRepository.ReplaceEquipment(ctx, tx, id, items)
	})
	if err != nil {
		s.logger.Error("CreateLab: transaction failed", zap.String("name", payload.Name), zap.Error(err))
		return nil, err
	}

	s.invalidateDirectoryCache(ctx)
	s.logger.Info("lab created", zap.Uint64("id", newID), zap.String("name", payload.Name))

	return s.FindLab(ctx, newID)
}

// UpdateLab merges the patch onto the stored lab and replaces the equipment
// set when the payload carries one. The whole edit is one transaction; a
// concurrent editor's assignment set is overwritten wholesale (last write
// wins).
func (s *LabService) UpdateLab(ctx context.Context, id uint64, payload dto.UpdateLabDTO) (*dto.LabDTO, error) {
	current, err := s.labRepository.FindLab(ctx, id)
	if err != nil {
		return nil, err
	}

	merged := mergeLabPatch(*current, payload)

	if fields := validateLabEnums(merged.Type, merged.Status); len(fields) > 0 {
		return nil, apperrors.NewHttpError(http.StatusBadRequest, "invalid lab payload", nil, nil).WithDetails(fields)
	}

	err = s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		if err := s.labRepository.UpdateLab(ctx, tx, id, merged); err != nil {
			return err
		}
		if payload.Equipment != nil {
			items := assignmentsFromInput(*payload.Equipment)
			return s.labRepository.ReplaceEquipment(ctx, tx, id, items)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("UpdateLab: transaction failed", zap.Uint64("id", id), zap.Error(err))
		return nil, err
	}

	s.invalidateDirectoryCache(ctx)

	return s.FindLab(ctx, id)
}

func (s *LabService) DeleteLab(ctx context.Context, id uint64) error {
	if err := s.labRepository.DeleteLab(ctx, id); err != nil {
		return err
	}
	s.invalidateDirectoryCache(ctx)
	s.logger.Info("lab deleted", zap.Uint64("id", id))
	return nil
}

func (s *LabService) invalidateDirectoryCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, directoryFacetsCacheKey); err != nil {
		s.logger.Warn("failed to invalidate directory facet cache", zap.Error(err))
	}
}

// assignmentsFromInput drops zero and negative quantities before persistence;
// a quantity of 0 means "not assigned".
func assignmentsFromInput(input []dto.LabEquipmentInputDTO) []entities.LabEquipment {
	items := make([]entities.LabEquipment, 0, len(input))
	for _, in := range input {
		if in.Quantity <= 0 {
			continue
		}
		items = append(items, entities.LabEquipment{
			EquipmentID: in.EquipmentID,
			Quantity:    in.Quantity,
		})
	}
	return items
}

func validateLabEnums(labType, status string) map[string]string {
	fields := make(map[string]string)
	if !constants.IsValidLabType(labType) {
		fields["type"] = "unknown lab type"
	}
	if !constants.IsValidLabStatus(status) {
		fields["status"] = "unknown lab status"
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}

func mergeLabPatch(current entities.Lab, patch dto.UpdateLabDTO) entities.Lab {
	merged := current

	if patch.Name != nil {
		merged.Name = *patch.Name
	}
	if patch.HeadName != nil {
		merged.HeadName = *patch.HeadName
	}
	if patch.HeadEmail.Valid {
		merged.HeadEmail = patch.HeadEmail.Ptr()
	}
	if patch.Type != nil {
		merged.Type = *patch.Type
	}
	if patch.Status != nil {
		merged.Status = *patch.Status
	}
	if patch.ResearchArea.Valid {
		merged.ResearchArea = patch.ResearchArea.Ptr()
	}
	if patch.Description.Valid {
		merged.Description = patch.Description.Ptr()
	}
	if patch.Location.Valid {
		merged.Location = patch.Location.Ptr()
	}
	if patch.ContactPhone.Valid {
		merged.ContactPhone = patch.ContactPhone.Ptr()
	}

	return merged
}

func MapLabToDTO(lab entities.Lab) dto.LabDTO {
	equipment := make([]dto.LabEquipmentDTO, 0, len(lab.Equipment))
	for _, item := range lab.Equipment {
		equipment = append(equipment, dto.LabEquipmentDTO{
			EquipmentID: item.EquipmentID,
			Name:        item.EquipmentName,
			Quantity:    item.Quantity,
		})
	}

	return dto.LabDTO{
		ID:           lab.ID,
		Name:         lab.Name,
		HeadName:     lab.HeadName,
		HeadEmail:    lab.HeadEmail,
		Type:         lab.Type,
		Status:       lab.Status,
		ResearchArea: lab.ResearchArea,
		Description:  lab.Description,
		Location:     lab.Location,
		ContactPhone: lab.ContactPhone,
		Equipment:    equipment,
		CreatedAt:    utils.FormatTimestamp(lab.CreatedAt),
		UpdatedAt:    utils.FormatTimestamp(lab.UpdatedAt),
	}
}
