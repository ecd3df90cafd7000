package routes

import (
	"github.com/labstack/echo/v4"

	"research-admin/internal/controllers"
)

func runPartnerRouter(g *echo.Group, ctrl *controllers.PartnerController) {
	g.GET("/partners", ctrl.GetPartners)
	g.GET("/partners/:id", ctrl.FindPartner)
	g.POST("/partners", ctrl.CreatePartner)
	g.PUT("/partners/:id", ctrl.UpdatePartner)
	g.DELETE("/partners/:id", ctrl.DeletePartner)
}
