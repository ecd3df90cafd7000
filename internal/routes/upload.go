package routes

import (
	"github.com/labstack/echo/v4"

	"research-admin/internal/controllers"
)

func runUploadRouter(g *echo.Group, ctrl *controllers.UploadController) {
	g.POST("/events/:id/image", ctrl.UploadEventImage)
	g.POST("/partners/:id/logo", ctrl.UploadPartnerLogo)
}
