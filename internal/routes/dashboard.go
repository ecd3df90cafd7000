package routes

import (
	"github.com/labstack/echo/v4"

	"research-admin/internal/controllers"
)

func runDashboardRouter(g *echo.Group, ctrl *controllers.DashboardController) {
	dashboardGroup := g.Group("/dashboard")
	{
		dashboardGroup.GET("/summary", ctrl.GetSummary)
		dashboardGroup.GET("/charts", ctrl.GetCharts)
	}
}
