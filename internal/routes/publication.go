package routes

import (
	"github.com/labstack/echo/v4"

	"research-admin/internal/controllers"
)

func runPublicationRouter(g *echo.Group, ctrl *controllers.PublicationController) {
	g.GET("/publications", ctrl.GetPublications)
	g.GET("/publications/:id", ctrl.FindPublication)
	g.POST("/publications", ctrl.CreatePublication)
	g.PUT("/publications/:id", ctrl.UpdatePublication)
	g.DELETE("/publications/:id", ctrl.DeletePublication)
}
