package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"research-admin/internal/directory"
	"research-admin/internal/services"
	"research-admin/pkg/utils"
)

const (
	directoryDefaultPageSize = 12
	directoryMaxPageSize     = 100
)

// DirectoryController serves the public lab directory. No auth; every
// parameter is optional and bad values fall back to defaults rather than
// erroring.
type DirectoryController struct {
	directoryService services.DirectoryServiceInterface
	logger           *zap.Logger
}

func NewDirectoryController(directoryService services.DirectoryServiceInterface, logger *zap.Logger) *DirectoryController {
	return &DirectoryController{directoryService: directoryService, logger: logger}
}

func parseDirectoryQuery(ctx echo.Context) services.DirectoryQuery {
	q := services.DirectoryQuery{
		Criteria: directory.Criteria{
			Query:          ctx.QueryParam("q"),
			LabType:        ctx.QueryParam("type"),
			EquipmentQuery: ctx.QueryParam("equipment_q"),
			Equipment:      ctx.QueryParam("equipment"),
		},
		SortDescending: ctx.QueryParam("sort") == "desc",
		Page:           1,
		PageSize:       directoryDefaultPageSize,
		WithFacets:     ctx.QueryParam("facets") == "true",
	}

	if p, err := strconv.Atoi(ctx.QueryParam("page")); err == nil && p > 0 {
		q.Page = p
	}
	if ps, err := strconv.Atoi(ctx.QueryParam("page_size")); err == nil && ps > 0 {
		if ps > directoryMaxPageSize {
			ps = directoryMaxPageSize
		}
		q.PageSize = ps
	}
	return q
}

func (c *DirectoryController) GetLabs(ctx echo.Context) error {
	query := parseDirectoryQuery(ctx)

	res, err := c.directoryService.QueryLabs(ctx.Request().Context(), query)
	if err != nil {
		c.logger.Error("directory query failed", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "directory page retrieved", http.StatusOK)
}

func (c *DirectoryController) GetFacets(ctx echo.Context) error {
	res, err := c.directoryService.GetFacets(ctx.Request().Context())
	if err != nil {
		c.logger.Error("facet computation failed", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "directory facets retrieved", http.StatusOK)
}
