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

type EventController struct {
	eventService services.EventServiceInterface
	logger       *zap.Logger
}

func NewEventController(eventService services.EventServiceInterface, logger *zap.Logger) *EventController {
	return &EventController{eventService: eventService, logger: logger}
}

// GetEvents serves the admin view: drafts included.
func (c *EventController) GetEvents(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())

	res, total, err := c.eventService.GetEvents(ctx.Request().Context(), filter, false)
	if err != nil {
		c.logger.Error("GetEvents: listing failed", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "events retrieved", http.StatusOK, total)
}

// GetPublishedEvents serves the public site: published events only.
func (c *EventController) GetPublishedEvents(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())

	res, total, err := c.eventService.GetEvents(ctx.Request().Context(), filter, true)
	if err != nil {
		c.logger.Error("GetPublishedEvents: listing failed", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "events retrieved", http.StatusOK, total)
}

func (c *EventController) FindEvent(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.eventService.FindEvent(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "event retrieved", http.StatusOK)
}

func (c *EventController) CreateEvent(ctx echo.Context) error {
	var payload dto.CreateEventDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "malformed request body", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.eventService.CreateEvent(ctx.Request().Context(), payload)
	if err != nil {
		c.logger.Error("CreateEvent: create failed", zap.String("title", payload.Title), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "event created", http.StatusCreated)
}

func (c *EventController) UpdateEvent(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.UpdateEventDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "malformed request body", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.eventService.UpdateEvent(ctx.Request().Context(), id, payload)
	if err != nil {
		c.logger.Error("UpdateEvent: update failed", zap.Uint64("id", id), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "event updated", http.StatusOK)
}

func (c *EventController) DeleteEvent(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.eventService.DeleteEvent(ctx.Request().Context(), id); err != nil {
		c.logger.Error("DeleteEvent: delete failed", zap.Uint64("id", id), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, struct{}{}, "event deleted", http.StatusOK)
}
