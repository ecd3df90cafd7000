package routes

import (
	"github.com/labstack/echo/v4"

	"research-admin/internal/controllers"
	"research-admin/pkg/middleware"
)

func runAuthRouter(api *echo.Group, ctrl *controllers.AuthController, authMW *middleware.AuthMiddleware) {
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", ctrl.Login)
		authGroup.POST("/refresh_token", ctrl.RefreshToken)
		authGroup.GET("/me", ctrl.GetProfile, authMW.Auth)
	}
}
