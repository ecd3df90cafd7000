package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"research-admin/internal/services"
	"research-admin/pkg/utils"
)

type DashboardController struct {
	dashboardService services.DashboardServiceInterface
	logger           *zap.Logger
}

func NewDashboardController(dashboardService services.DashboardServiceInterface, logger *zap.Logger) *DashboardController {
	return &DashboardController{dashboardService: dashboardService, logger: logger}
}

func (c *DashboardController) GetSummary(ctx echo.Context) error {
	res, err := c.dashboardService.GetSummary(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "dashboard summary retrieved", http.StatusOK)
}

// GetCharts bundles every chart in one response so the admin landing page
// renders with a single request.
func (c *DashboardController) GetCharts(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	labsByType, err := c.dashboardService.GetLabsByType(reqCtx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	labsByStatus, err := c.dashboardService.GetLabsByStatus(reqCtx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	publicationsPerYear, err := c.dashboardService.GetPublicationsPerYear(reqCtx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	grantsByAgency, err := c.dashboardService.GetGrantsByAgency(reqCtx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	grantAmountPerYear, err := c.dashboardService.GetGrantAmountPerYear(reqCtx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res := map[string]interface{}{
		"labs_by_type":          labsByType,
		"labs_by_status":        labsByStatus,
		"publications_per_year": publicationsPerYear,
		"grants_by_agency":      grantsByAgency,
		"grant_amount_per_year": grantAmountPerYear,
	}
	return utils.SuccessResponse(ctx, res, "dashboard charts retrieved", http.StatusOK)
}
