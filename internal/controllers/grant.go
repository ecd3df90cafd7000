package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"research-admin/internal/dto"
	"research-admin/internal/services"
	apperrors "research-admin/pkg/errors"
	"research-admin/pkg/utils"
)

type GrantController struct {
	grantService services.GrantServiceInterface
	logger       *zap.Logger
}

func NewGrantController(grantService services.GrantServiceInterface, logger *zap.Logger) *GrantController {
	return &GrantController{grantService: grantService, logger: logger}
}

func (c *GrantController) GetGrants(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())

	res, total, err := c.grantService.GetGrants(ctx.Request().Context(), filter)
	if err != nil {
		c.logger.Error("GetGrants: listing failed", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "grants retrieved", http.StatusOK, total)
}

func (c *GrantController) FindGrant(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.grantService.FindGrant(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "grant retrieved", http.StatusOK)
}

func (c *GrantController) CreateGrant(ctx echo.Context) error {
	var payload dto.CreateGrantDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "malformed request body", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.grantService.CreateGrant(ctx.Request().Context(), payload)
	if err != nil {
		c.logger.Error("CreateGrant: create failed", zap.String("title", payload.Title), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "grant created", http.StatusCreated)
}

func (c *GrantController) UpdateGrant(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.UpdateGrantDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "malformed request body", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.grantService.UpdateGrant(ctx.Request().Context(), id, payload)
	if err != nil {
		c.logger.Error("UpdateGrant: update failed", zap.Uint64("id", id), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "grant updated", http.StatusOK)
}

func (c *GrantController) DeleteGrant(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.grantService.DeleteGrant(ctx.Request().Context(), id); err != nil {
		c.logger.Error("DeleteGrant: delete failed", zap.Uint64("id", id), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, struct{}{}, "grant deleted", http.StatusOK)
}
