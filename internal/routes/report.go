package routes

import (
	"github.com/labstack/echo/v4"

	"research-admin/internal/controllers"
)

func runReportRouter(g *echo.Group, ctrl *controllers.ReportController) {
	g.GET("/reports/labs", ctrl.GetLabInventoryReport)
	g.GET("/reports/grants", ctrl.GetGrantFundingReport)
}
