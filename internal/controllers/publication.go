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

type PublicationController struct {
	publicationService services.PublicationServiceInterface
	logger             *zap.Logger
}

func NewPublicationController(publicationService services.PublicationServiceInterface, logger *zap.Logger) *PublicationController {
	return &PublicationController{publicationService: publicationService, logger: logger}
}

func (c *PublicationController) GetPublications(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())

	res, total, err := c.publicationService.GetPublications(ctx.Request().Context(), filter)
	if err != nil {
		c.logger.Error("GetPublications: listing failed", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "publications retrieved", http.StatusOK, total)
}

func (c *PublicationController) FindPublication(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.publicationService.FindPublication(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "publication retrieved", http.StatusOK)
}

func (c *PublicationController) CreatePublication(ctx echo.Context) error {
	var payload dto.CreatePublicationDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "malformed request body", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.publicationService.CreatePublication(ctx.Request().Context(), payload)
	if err != nil {
		c.logger.Error("CreatePublication: create failed", zap.String("title", payload.Title), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "publication created", http.StatusCreated)
}

func (c *PublicationController) UpdatePublication(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.UpdatePublicationDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "malformed request body", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.publicationService.UpdatePublication(ctx.Request().Context(), id, payload)
	if err != nil {
		c.logger.Error("UpdatePublication: update failed", zap.Uint64("id", id), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "publication updated", http.StatusOK)
}

func (c *PublicationController) DeletePublication(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.publicationService.DeletePublication(ctx.Request().Context(), id); err != nil {
		c.logger.Error("DeletePublication: delete failed", zap.Uint64("id", id), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, struct{}{}, "publication deleted", http.StatusOK)
}
