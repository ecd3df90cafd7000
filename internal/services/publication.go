package services

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"research-admin/internal/dto"
	"research-admin/internal/entities"
	"research-admin/internal/repositories"
	apperrors "research-admin/pkg/errors"
	"research-admin/pkg/types"
	"research-admin/pkg/utils"
)

type PublicationServiceInterface interface {
	GetPublications(ctx context.Context, filter types.Filter) ([]dto.PublicationDTO, uint64, error)
	FindPublication(ctx context.Context, id uint64) (*dto.PublicationDTO, error)
	CreatePublication(ctx context.Context, payload dto.CreatePublicationDTO) (*dto.PublicationDTO, error)
	UpdatePublication(ctx context.Context, id uint64, payload dto.UpdatePublicationDTO) (*dto.PublicationDTO, error)
	DeletePublication(ctx context.Context, id uint64) error
}

type PublicationService struct {
	publicationRepository repositories.PublicationRepositoryInterface
	labRepository         repositories.LabRepositoryInterface
	logger                *zap.Logger
}

func NewPublicationService(
	publicationRepository repositories.PublicationRepositoryInterface,
	labRepository repositories.LabRepositoryInterface,
	logger *zap.Logger,
) PublicationServiceInterface {
	return &PublicationService{
		publicationRepository: publicationRepository,
		labRepository:         labRepository,
		logger:                logger,
	}
}

func mapPublicationToDTO(p entities.Publication) dto.PublicationDTO {
	out := dto.PublicationDTO{
		ID:        p.ID,
		Title:     p.Title,
		Authors:   p.Authors,
		Venue:     p.Venue,
		Year:      p.Year,
		DOI:       p.DOI,
		CreatedAt: utils.FormatTimestamp(p.CreatedAt),
		UpdatedAt: utils.FormatTimestamp(p.UpdatedAt),
	}
	if p.Lab != nil {
		out.Lab = &dto.ShortLabDTO{ID: p.Lab.ID, Name: p.Lab.Name}
	}
	return out
}

func (s *PublicationService) GetPublications(ctx context.Context, filter types.Filter) ([]dto.PublicationDTO, uint64, error) {
	pubs, total, err := s.publicationRepository.GetPublications(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	out := make([]dto.PublicationDTO, 0, len(pubs))
	for _, p := range pubs {
		out = append(out, mapPublicationToDTO(p))
	}
	return out, total, nil
}

func (s *PublicationService) FindPublication(ctx context.Context, id uint64) (*dto.PublicationDTO, error) {
	p, err := s.publicationRepository.FindPublication(ctx, id)
	if err != nil {
		return nil, err
	}
	mapped := mapPublicationToDTO(*p)
	return &mapped, nil
}

// checkLabExists turns a dangling lab reference into a field error before
// the insert can hit the foreign key.
func (s *PublicationService) checkLabExists(ctx context.Context, labID uint64) error {
	if _, err := s.labRepository.FindLab(ctx, labID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewHttpError(http.StatusBadRequest, "invalid publication payload", nil, nil).
				WithDetails(map[string]string{"lab_id": "no such lab"})
		}
		return err
	}
	return nil
}

func (s *PublicationService) CreatePublication(ctx context.Context, payload dto.CreatePublicationDTO) (*dto.PublicationDTO, error) {
	pub := entities.Publication{
		Title:   payload.Title,
		Authors: payload.Authors,
		Venue:   payload.Venue.Ptr(),
		Year:    payload.Year,
		DOI:     payload.DOI.Ptr(),
	}
	if payload.LabID.Valid {
		labID := uint64(payload.LabID.Int)
		if err := s.checkLabExists(ctx, labID); err != nil {
			return nil, err
		}
		pub.LabID = &labID
	}

	id, err := s.publicationRepository.CreatePublication(ctx, pub)
	if err != nil {
		s.logger.Error("CreatePublication: insert failed", zap.String("title", payload.Title), zap.Error(err))
		return nil, err
	}
	return s.FindPublication(ctx, id)
}

func (s *PublicationService) UpdatePublication(ctx context.Context, id uint64, payload dto.UpdatePublicationDTO) (*dto.PublicationDTO, error) {
	current, err := s.publicationRepository.FindPublication(ctx, id)
	if err != nil {
		return nil, err
	}

	merged := *current
	if payload.Title != nil {
		merged.Title = *payload.Title
	}
	if payload.Authors != nil {
		merged.Authors = *payload.Authors
	}
	if payload.Venue.Valid {
		merged.Venue = payload.Venue.Ptr()
	}
	if payload.Year != nil {
		merged.Year = *payload.Year
	}
	if payload.DOI.Valid {
		merged.DOI = payload.DOI.Ptr()
	}
	if payload.LabID.Valid {
		labID := uint64(payload.LabID.Int)
		if err := s.checkLabExists(ctx, labID); err != nil {
			return nil, err
		}
		merged.LabID = &labID
	}

	if err := s.publicationRepository.UpdatePublication(ctx, id, merged); err != nil {
		return nil, err
	}
	return s.FindPublication(ctx, id)
}

func (s *PublicationService) DeletePublication(ctx context.Context, id uint64) error {
	return s.publicationRepository.DeletePublication(ctx, id)
}
