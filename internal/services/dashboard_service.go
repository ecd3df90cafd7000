package services

import (
	"context"

	"go.uber.org/zap"

	"research-admin/internal/repositories"
	"research-admin/pkg/types"
)

type DashboardServiceInterface interface {
	GetSummary(ctx context.Context) (*types.DashboardSummary, error)
	GetLabsByType(ctx context.Context) ([]types.DashboardCountByGroup, error)
	GetLabsByStatus(ctx context.Context) ([]types.DashboardCountByGroup, error)
	GetPublicationsPerYear(ctx context.Context) ([]types.DashboardChartData, error)
	GetGrantsByAgency(ctx context.Context) ([]types.DashboardCountByGroup, error)
	GetGrantAmountPerYear(ctx context.Context) ([]types.DashboardChartData, error)
}

type DashboardService struct {
	dashboardRepository repositories.DashboardRepositoryInterface
	logger              *zap.Logger
}

func NewDashboardService(dashboardRepository repositories.DashboardRepositoryInterface, logger *zap.Logger) DashboardServiceInterface {
	return &DashboardService{dashboardRepository: dashboardRepository, logger: logger}
}

func (s *DashboardService) GetSummary(ctx context.Context) (*types.DashboardSummary, error) {
	summary, err := s.dashboardRepository.GetSummary(ctx)
	if err != nil {
		s.logger.Error("GetSummary: query failed", zap.Error(err))
		return nil, err
	}
	return summary, nil
}

func (s *DashboardService) GetLabsByType(ctx context.Context) ([]types.DashboardCountByGroup, error) {
	return s.dashboardRepository.GetLabsByType(ctx)
}

func (s *DashboardService) GetLabsByStatus(ctx context.Context) ([]types.DashboardCountByGroup, error) {
	return s.dashboardRepository.GetLabsByStatus(ctx)
}

func (s *DashboardService) GetPublicationsPerYear(ctx context.Context) ([]types.DashboardChartData, error) {
	return s.dashboardRepository.GetPublicationsPerYear(ctx)
}

func (s *DashboardService) GetGrantsByAgency(ctx context.Context) ([]types.DashboardCountByGroup, error) {
	return s.dashboardRepository.GetGrantsByAgency(ctx)
}

func (s *DashboardService) GetGrantAmountPerYear(ctx context.Context) ([]types.DashboardChartData, error) {
	return s.dashboardRepository.GetGrantAmountPerYear(ctx)
}
