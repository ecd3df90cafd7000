package controllers

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"research-admin/internal/services"
	"research-admin/pkg/config"
	apperrors "research-admin/pkg/errors"
	"research-admin/pkg/filestorage"
	"research-admin/pkg/utils"
)

type UploadController struct {
	fileStorage    filestorage.FileStorageInterface
	eventService   services.EventServiceInterface
	partnerService services.PartnerServiceInterface
	uploadConfig   config.UploadConfig
	logger         *zap.Logger
}

func NewUploadController(
	fileStorage filestorage.FileStorageInterface,
	eventService services.EventServiceInterface,
	partnerService services.PartnerServiceInterface,
	uploadConfig config.UploadConfig,
	logger *zap.Logger,
) *UploadController {
	return &UploadController{
		fileStorage:    fileStorage,
		eventService:   eventService,
		partnerService: partnerService,
		uploadConfig:   uploadConfig,
		logger:         logger,
	}
}

func (ctrl *UploadController) validateUpload(fileHeader *multipart.FileHeader) error {
	maxBytes := ctrl.uploadConfig.MaxSizeMB * 1024 * 1024
	if fileHeader.Size > maxBytes {
		return apperrors.NewHttpError(
			http.StatusBadRequest,
			fmt.Sprintf("file exceeds the %d MB limit", ctrl.uploadConfig.MaxSizeMB),
			apperrors.ErrBadRequest,
			nil,
		)
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	for _, allowed := range ctrl.uploadConfig.AllowedExts {
		if ext == allowed {
			return nil
		}
	}
	return apperrors.NewHttpError(
		http.StatusBadRequest,
		"file type not allowed",
		apperrors.ErrBadRequest,
		map[string]interface{}{"ext": ext},
	)
}

func (ctrl *UploadController) saveUpload(ctx echo.Context, prefix string) (string, error) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return "", apperrors.NewHttpError(http.StatusBadRequest, "no file in request", apperrors.ErrBadRequest, nil)
	}

	if err := ctrl.validateUpload(fileHeader); err != nil {
		return "", err
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", apperrors.NewHttpError(http.StatusInternalServerError, "failed to read uploaded file", err, nil)
	}
	defer src.Close()

	savedPath, err := ctrl.fileStorage.Save(src, fileHeader.Filename, prefix)
	if err != nil {
		ctrl.logger.Error("file save failed", zap.Error(err))
		return "", apperrors.NewHttpError(http.StatusInternalServerError, "failed to store file", err, nil)
	}
	return savedPath, nil
}

// UploadEventImage stores the image and attaches it to the event.
func (ctrl *UploadController) UploadEventImage(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, ctrl.logger)
	}

	savedPath, err := ctrl.saveUpload(ctx, "events")
	if err != nil {
		return utils.ErrorResponse(ctx, err, ctrl.logger)
	}

	if err := ctrl.eventService.AttachImage(ctx.Request().Context(), id, savedPath); err != nil {
		// Orphaned file cleanup so a failed attach does not leak disk.
		if delErr := ctrl.fileStorage.Delete(savedPath); delErr != nil {
			ctrl.logger.Warn("failed to remove orphaned upload", zap.String("path", savedPath), zap.Error(delErr))
		}
		return utils.ErrorResponse(ctx, err, ctrl.logger)
	}

	response := map[string]interface{}{
		"url":      "/uploads/" + savedPath,
		"filePath": savedPath,
	}
	return utils.SuccessResponse(ctx, response, "image uploaded", http.StatusOK)
}

// UploadPartnerLogo stores the logo and attaches it to the partner.
func (ctrl *UploadController) UploadPartnerLogo(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, ctrl.logger)
	}

	savedPath, err := ctrl.saveUpload(ctx, "partners")
	if err != nil {
		return utils.ErrorResponse(ctx, err, ctrl.logger)
	}

	if err := ctrl.partnerService.AttachLogo(ctx.Request().Context(), id, savedPath); err != nil {
		if delErr := ctrl.fileStorage.Delete(savedPath); delErr != nil {
			ctrl.logger.Warn("failed to remove orphaned upload", zap.String("path", savedPath), zap.Error(delErr))
		}
		return utils.ErrorResponse(ctx, err, ctrl.logger)
	}

	response := map[string]interface{}{
		"url":      "/uploads/" + savedPath,
		"filePath": savedPath,
	}
	return utils.SuccessResponse(ctx, response, "logo uploaded", http.StatusOK)
}
