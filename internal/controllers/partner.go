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

type PartnerController struct {
	partnerService services.PartnerServiceInterface
	logger         *zap.Logger
}

func NewPartnerController(partnerService services.PartnerServiceInterface, logger *zap.Logger) *PartnerController {
	return &PartnerController{partnerService: partnerService, logger: logger}
}

func (c *PartnerController) GetPartners(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())

	res, total, err := c.partnerService.GetPartners(ctx.Request().Context(), filter)
	if err != nil {
		c.logger.Error("GetPartners: listing failed", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "partners retrieved", http.StatusOK, total)
}

func (c *PartnerController) FindPartner(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.partnerService.FindPartner(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "partner retrieved", http.StatusOK)
}

func (c *PartnerController) CreatePartner(ctx echo.Context) error {
	var payload dto.CreatePartnerDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "malformed request body", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.partnerService.CreatePartner(ctx.Request().Context(), payload)
	if err != nil {
		c.logger.Error("CreatePartner: create failed", zap.String("name", payload.Name), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "partner created", http.StatusCreated)
}

func (c *PartnerController) UpdatePartner(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.UpdatePartnerDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "malformed request body", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.partnerService.UpdatePartner(ctx.Request().Context(), id, payload)
	if err != nil {
		c.logger.Error("UpdatePartner: update failed", zap.Uint64("id", id), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "partner updated", http.StatusOK)
}

func (c *PartnerController) DeletePartner(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.partnerService.DeletePartner(ctx.Request().Context(), id); err != nil {
		c.logger.Error("DeletePartner: delete failed", zap.Uint64("id", id), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, struct{}{}, "partner deleted", http.StatusOK)
}
