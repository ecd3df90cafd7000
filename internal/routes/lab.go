package routes

import (
	"github.com/labstack/echo/v4"

	"research-admin/internal/controllers"
)

func runLabRouter(g *echo.Group, ctrl *controllers.LabController) {
	g.GET("/labs", ctrl.GetLabs)
	g.GET("/labs/:id", ctrl.FindLab)
	g.POST("/labs", ctrl.CreateLab)
	g.PUT("/labs/:id", ctrl.UpdateLab)
	g.DELETE("/labs/:id", ctrl.DeleteLab)
}
