package services

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"research-admin/internal/directory"
	"research-admin/internal/entities"
	"research-admin/internal/repositories"
	"research-admin/pkg/types"
)

type ReportServiceInterface interface {
	GetLabInventoryReport(ctx context.Context) ([]entities.LabReportRow, error)
	GetGrantFundingReport(ctx context.Context) ([]entities.GrantReportRow, error)
}

type ReportService struct {
	labRepository   repositories.LabRepositoryInterface
	grantRepository repositories.GrantRepositoryInterface
	logger          *zap.Logger
}

func NewReportService(
	labRepository repositories.LabRepositoryInterface,
	grantRepository repositories.GrantRepositoryInterface,
	logger *zap.Logger,
) ReportServiceInterface {
	return &ReportService{
		labRepository:   labRepository,
		grantRepository: grantRepository,
		logger:          logger,
	}
}

// GetLabInventoryReport flattens every lab with its equipment into export
// rows, ordered the same way the public directory sorts.
func (s *ReportService) GetLabInventoryReport(ctx context.Context) ([]entities.LabReportRow, error) {
	labs, err := s.labRepository.GetAllLabs(ctx)
	if err != nil {
		s.logger.Error("GetLabInventoryReport: fetch failed", zap.Error(err))
		return nil, err
	}

	sorted := directory.SortLabsByName(labs, false)
	rows := make([]entities.LabReportRow, 0, len(sorted))
	for _, lab := range sorted {
		tokens := directory.ParseEquipmentList(stringOrEmpty(lab.EquipmentText))
		rows = append(rows, entities.LabReportRow{
			LabID:          lab.ID,
			LabName:        lab.Name,
			HeadName:       lab.HeadName,
			HeadEmail:      stringOrEmpty(lab.HeadEmail),
			Type:           lab.Type,
			Status:         lab.Status,
			Location:       stringOrEmpty(lab.Location),
			ResearchArea:   stringOrEmpty(lab.ResearchArea),
			EquipmentCount: len(tokens),
			EquipmentList:  strings.Join(tokens, ", "),
			CreatedAt:      lab.CreatedAt,
		})
	}
	return rows, nil
}

// GetGrantFundingReport lists every grant, newest start date first, with the
// owning lab's name resolved.
func (s *ReportService) GetGrantFundingReport(ctx context.Context) ([]entities.GrantReportRow, error) {
	grants, _, err := s.grantRepository.GetGrants(ctx, types.Filter{
		Sort: map[string]string{"start_date": "desc"},
	})
	if err != nil {
		s.logger.Error("GetGrantFundingReport: fetch failed", zap.Error(err))
		return nil, err
	}

	rows := make([]entities.GrantReportRow, 0, len(grants))
	for _, grant := range grants {
		row := entities.GrantReportRow{
			GrantID:   grant.ID,
			Title:     grant.Title,
			Agency:    grant.Agency,
			Amount:    grant.Amount,
			Status:    grant.Status,
			StartDate: dateOrEmpty(grant.StartDate),
			EndDate:   dateOrEmpty(grant.EndDate),
		}
		if grant.Lab != nil {
			row.LabName = grant.Lab.Name
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func dateOrEmpty(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
