package routes

import (
	"github.com/labstack/echo/v4"

	"research-admin/internal/controllers"
)

func runEventRouter(g *echo.Group, ctrl *controllers.EventController) {
	g.GET("/events", ctrl.GetEvents)
	g.GET("/events/:id", ctrl.FindEvent)
	g.POST("/events", ctrl.CreateEvent)
	g.PUT("/events/:id", ctrl.UpdateEvent)
	g.DELETE("/events/:id", ctrl.DeleteEvent)
}

// runPublicEventRouter exposes the published announcements to the public
// site, no auth required.
func runPublicEventRouter(api *echo.Group, ctrl *controllers.EventController) {
	api.GET("/events", ctrl.GetPublishedEvents)
}
