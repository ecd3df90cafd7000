package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"research-admin/internal/dto"
	"research-admin/internal/services"
	apperrors "research-admin/pkg/errors"
	"research-admin/pkg/utils"
)

type LabController struct {
	labService services.LabServiceInterface
	logger     *zap.Logger
}

func NewLabController(labService services.LabServiceInterface, logger *zap.Logger) *LabController {
	return &LabController{labService: labService, logger: logger}
}

func parseIDParam(ctx echo.Context) (uint64, error) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return 0, apperrors.NewHttpError(
			http.StatusBadRequest,
			"invalid id",
			err,
			map[string]interface{}{"param": ctx.Param("id")},
		)
	}
	return id, nil
}

func (c *LabController) GetLabs(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())

	res, total, err := c.labService.GetLabs(ctx.Request().Context(), filter)
	if err != nil {
		c.logger.Error("GetLabs: listing failed", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "labs retrieved", http.StatusOK, total)
}

func (c *LabController) FindLab(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.labService.FindLab(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "lab retrieved", http.StatusOK)
}

func (c *LabController) CreateLab(ctx echo.Context) error {
	var payload dto.CreateLabDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "malformed request body", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.labService.CreateLab(ctx.Request().Context(), payload)
	if err != nil {
		c.logger.Error("CreateLab: create failed", zap.String("name", payload.Name), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "lab created", http.StatusCreated)
}

func (c *LabController) UpdateLab(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.UpdateLabDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "malformed request body", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.labService.UpdateLab(ctx.Request().Context(), id, payload)
	if err != nil {
		c.logger.Error("UpdateLab: update failed", zap.Uint64("id", id), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "lab updated", http.StatusOK)
}

func (c *LabController) DeleteLab(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.labService.DeleteLab(ctx.Request().Context(), id); err != nil {
		c.logger.Error("DeleteLab: delete failed", zap.Uint64("id", id), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, struct{}{}, "lab deleted", http.StatusOK)
}
