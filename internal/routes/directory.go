package routes

import (
	"github.com/labstack/echo/v4"

	"research-admin/internal/controllers"
)

func runDirectoryRouter(api *echo.Group, ctrl *controllers.DirectoryController) {
	directoryGroup := api.Group("/directory")
	{
		directoryGroup.GET("/labs", ctrl.GetLabs)
		directoryGroup.GET("/facets", ctrl.GetFacets)
	}
}
