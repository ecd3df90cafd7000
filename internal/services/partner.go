package services

import (
	"context"

	"go.uber.org/zap"

	"research-admin/internal/dto"
	"research-admin/internal/entities"
	"research-admin/internal/repositories"
	"research-admin/pkg/types"
	"research-admin/pkg/utils"
)

type PartnerServiceInterface interface {
	GetPartners(ctx context.Context, filter types.Filter) ([]dto.PartnerDTO, uint64, error)
	FindPartner(ctx context.Context, id uint64) (*dto.PartnerDTO, error)
	CreatePartner(ctx context.Context, payload dto.CreatePartnerDTO) (*dto.PartnerDTO, error)
	UpdatePartner(ctx context.Context, id uint64, payload dto.UpdatePartnerDTO) (*dto.PartnerDTO, error)
	DeletePartner(ctx context.Context, id uint64) error
	AttachLogo(ctx context.Context, id uint64, path string) error
}

type PartnerService struct {
	partnerRepository repositories.PartnerRepositoryInterface
	logger            *zap.Logger
}

func NewPartnerService(partnerRepository repositories.PartnerRepositoryInterface, logger *zap.Logger) PartnerServiceInterface {
	return &PartnerService{partnerRepository: partnerRepository, logger: logger}
}

func mapPartnerToDTO(p entities.Partner) dto.PartnerDTO {
	return dto.PartnerDTO{
		ID:        p.ID,
		Name:      p.Name,
		Country:   p.Country,
		Kind:      p.Kind,
		Website:   p.Website,
		LogoPath:  p.LogoPath,
		CreatedAt: utils.FormatTimestamp(p.CreatedAt),
		UpdatedAt: utils.FormatTimestamp(p.UpdatedAt),
	}
}

func (s *PartnerService) GetPartners(ctx context.Context, filter types.Filter) ([]dto.PartnerDTO, uint64, error) {
	partners, total, err := s.partnerRepository.GetPartners(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	out := make([]dto.PartnerDTO, 0, len(partners))
	for _, p := range partners {
		out = append(out, mapPartnerToDTO(p))
	}
	return out, total, nil
}

func (s *PartnerService) FindPartner(ctx context.Context, id uint64) (*dto.PartnerDTO, error) {
	p, err := s.partnerRepository.FindPartner(ctx, id)
	if err != nil {
		return nil, err
	}
	mapped := mapPartnerToDTO(*p)
	return &mapped, nil
}

func (s *PartnerService) CreatePartner(ctx context.Context, payload dto.CreatePartnerDTO) (*dto.PartnerDTO, error) {
	partner := entities.Partner{
		Name:    payload.Name,
		Country: payload.Country.Ptr(),
		Kind:    payload.Kind,
		Website: payload.Website.Ptr(),
	}

	id, err := s.partnerRepository.CreatePartner(ctx, partner)
	if err != nil {
		s.logger.Error("CreatePartner: insert failed", zap.String("name", payload.Name), zap.Error(err))
		return nil, err
	}
	return s.FindPartner(ctx, id)
}

func (s *PartnerService) UpdatePartner(ctx context.Context, id uint64, payload dto.UpdatePartnerDTO) (*dto.PartnerDTO, error) {
	current, err := s.partnerRepository.FindPartner(ctx, id)
	if err != nil {
		return nil, err
	}

	merged := *current
	if payload.Name != nil {
		merged.Name = *payload.Name
	}
	if payload.Country.Valid {
		merged.Country = payload.Country.Ptr()
	}
	if payload.Kind != nil {
		merged.Kind = *payload.Kind
	}
	if payload.Website.Valid {
		merged.Website = payload.Website.Ptr()
	}

	if err := s.partnerRepository.UpdatePartner(ctx, id, merged); err != nil {
		return nil, err
	}
	return s.FindPartner(ctx, id)
}

func (s *PartnerService) DeletePartner(ctx context.Context, id uint64) error {
	return s.partnerRepository.DeletePartner(ctx, id)
}

func (s *PartnerService) AttachLogo(ctx context.Context, id uint64, path string) error {
	if _, err := s.partnerRepository.FindPartner(ctx, id); err != nil {
		return err
	}
	return s.partnerRepository.SetLogoPath(ctx, id, path)
}
