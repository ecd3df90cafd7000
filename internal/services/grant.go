package services

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"research-admin/internal/dto"
	"research-admin/internal/entities"
	"research-admin/internal/repositories"
	"research-admin/pkg/constants"
	apperrors "research-admin/pkg/errors"
	"research-admin/pkg/types"
	"research-admin/pkg/utils"
)

type GrantServiceInterface interface {
	GetGrants(ctx context.Context, filter types.Filter) ([]dto.GrantDTO, uint64, error)
	FindGrant(ctx context.Context, id uint64) (*dto.GrantDTO, error)
	CreateGrant(ctx context.Context, payload dto.CreateGrantDTO) (*dto.GrantDTO, error)
	UpdateGrant(ctx context.Context, id uint64, payload dto.UpdateGrantDTO) (*dto.GrantDTO, error)
	DeleteGrant(ctx context.Context, id uint64) error
}

type GrantService struct {
	grantRepository repositories.GrantRepositoryInterface
	labRepository   repositories.LabRepositoryInterface
	logger          *zap.Logger
}

func NewGrantService(
	grantRepository repositories.GrantRepositoryInterface,
	labRepository repositories.LabRepositoryInterface,
	logger *zap.Logger,
) GrantServiceInterface {
	return &GrantService{
		grantRepository: grantRepository,
		labRepository:   labRepository,
		logger:          logger,
	}
}

func mapGrantToDTO(g entities.Grant) dto.GrantDTO {
	out := dto.GrantDTO{
		ID:        g.ID,
		Title:     g.Title,
		Agency:    g.Agency,
		Amount:    g.Amount,
		Status:    g.Status,
		StartDate: utils.FormatDatePtr(g.StartDate),
		EndDate:   utils.FormatDatePtr(g.EndDate),
		CreatedAt: utils.FormatTimestamp(g.CreatedAt),
		UpdatedAt: utils.FormatTimestamp(g.UpdatedAt),
	}
	if g.Lab != nil {
		out.Lab = &dto.ShortLabDTO{ID: g.Lab.ID, Name: g.Lab.Name}
	}
	return out
}

func invalidGrantStatus(status string) error {
	return apperrors.NewHttpError(http.StatusBadRequest, "invalid grant payload", nil, nil).
		WithDetails(map[string]string{"status": "unknown status: " + status})
}

func validateGrantDates(start, end *time.Time) error {
	if start != nil && end != nil && end.Before(*start) {
		return apperrors.NewHttpError(http.StatusBadRequest, "invalid grant payload", nil, nil).
			WithDetails(map[string]string{"end_date": "must not be before start_date"})
	}
	return nil
}

func (s *GrantService) GetGrants(ctx context.Context, filter types.Filter) ([]dto.GrantDTO, uint64, error) {
	grants, total, err := s.grantRepository.GetGrants(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	out := make([]dto.GrantDTO, 0, len(grants))
	for _, g := range grants {
		out = append(out, mapGrantToDTO(g))
	}
	return out, total, nil
}

func (s *GrantService) FindGrant(ctx context.Context, id uint64) (*dto.GrantDTO, error) {
	g, err := s.grantRepository.FindGrant(ctx, id)
	if err != nil {
		return nil, err
	}
	mapped := mapGrantToDTO(*g)
	return &mapped, nil
}

func (s *GrantService) checkLabExists(ctx context.Context, labID uint64) error {
	if _, err := s.labRepository.FindLab(ctx, labID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewHttpError(http.StatusBadRequest, "invalid grant payload", nil, nil).
				WithDetails(map[string]string{"lab_id": "no such lab"})
		}
		return err
	}
	return nil
}

func (s *GrantService) CreateGrant(ctx context.Context, payload dto.CreateGrantDTO) (*dto.GrantDTO, error) {
	if !constants.IsValidGrantStatus(payload.Status) {
		return nil, invalidGrantStatus(payload.Status)
	}

	grant := entities.Grant{
		Title:     payload.Title,
		Agency:    payload.Agency,
		Amount:    payload.Amount,
		Status:    payload.Status,
		StartDate: payload.StartDate.Ptr(),
		EndDate:   payload.EndDate.Ptr(),
	}
	if err := validateGrantDates(grant.StartDate, grant.EndDate); err != nil {
		return nil, err
	}
	if payload.LabID.Valid {
		labID := uint64(payload.LabID.Int)
		if err := s.checkLabExists(ctx, labID); err != nil {
			return nil, err
		}
		grant.LabID = &labID
	}

	id, err := s.grantRepository.CreateGrant(ctx, grant)
	if err != nil {
		s.logger.Error("CreateGrant: insert failed", zap.String("title", payload.Title), zap.Error(err))
		return nil, err
	}
	return s.FindGrant(ctx, id)
}

func (s *GrantService) UpdateGrant(ctx context.Context, id uint64, payload dto.UpdateGrantDTO) (*dto.GrantDTO, error) {
	current, err := s.grantRepository.FindGrant(ctx, id)
	if err != nil {
		return nil, err
	}

	merged := *current
	if payload.Title != nil {
		merged.Title = *payload.Title
	}
	if payload.Agency != nil {
		merged.Agency = *payload.Agency
	}
	if payload.Amount != nil {
		merged.Amount = *payload.Amount
	}
	if payload.Status != nil {
		if !constants.IsValidGrantStatus(*payload.Status) {
			return nil, invalidGrantStatus(*payload.Status)
		}
		merged.Status = *payload.Status
	}
	if payload.StartDate.Valid {
		merged.StartDate = payload.StartDate.Ptr()
	}
	if payload.EndDate.Valid {
		merged.EndDate = payload.EndDate.Ptr()
	}
	if err := validateGrantDates(merged.StartDate, merged.EndDate); err != nil {
		return nil, err
	}
	if payload.LabID.Valid {
		labID := uint64(payload.LabID.Int)
		if err := s.checkLabExists(ctx, labID); err != nil {
			return nil, err
		}
		merged.LabID = &labID
	}

	if err := s.grantRepository.UpdateGrant(ctx, id, merged); err != nil {
		return nil, err
	}
	return s.FindGrant(ctx, id)
}

func (s *GrantService) DeleteGrant(ctx context.Context, id uint64) error {
	return s.grantRepository.DeleteGrant(ctx, id)
}
