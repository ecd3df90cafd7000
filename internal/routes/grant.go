package routes

import (
	"github.com/labstack/echo/v4"

	"research-admin/internal/controllers"
)

func runGrantRouter(g *echo.Group, ctrl *controllers.GrantController) {
	g.GET("/grants", ctrl.GetGrants)
	g.GET("/grants/:id", ctrl.FindGrant)
	g.POST("/grants", ctrl.CreateGrant)
	g.PUT("/grants/:id", ctrl.UpdateGrant)
	g.DELETE("/grants/:id", ctrl.DeleteGrant)
}
