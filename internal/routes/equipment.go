package routes

import (
	"github.com/labstack/echo/v4"

	"research-admin/internal/controllers"
)

func runEquipmentRouter(g *echo.Group, ctrl *controllers.EquipmentController) {
	g.GET("/equipments", ctrl.GetEquipments)
	g.GET("/equipments/:id", ctrl.FindEquipment)
	g.POST("/equipments", ctrl.CreateEquipment)
	g.PUT("/equipments/:id", ctrl.UpdateEquipment)
	g.DELETE("/equipments/:id", ctrl.DeleteEquipment)
}
