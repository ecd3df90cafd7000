package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"research-admin/internal/entities"
	"research-admin/internal/services"
	"research-admin/pkg/utils"
)

type ReportController struct {
	reportService services.ReportServiceInterface
	logger        *zap.Logger
}

func NewReportController(reportService services.ReportServiceInterface, logger *zap.Logger) *ReportController {
	return &ReportController{reportService: reportService, logger: logger}
}

// GetLabInventoryReport serves the lab inventory export. format=xlsx streams
// a spreadsheet; anything else answers JSON.
func (c *ReportController) GetLabInventoryReport(ctx echo.Context) error {
	rows, err := c.reportService.GetLabInventoryReport(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if strings.ToLower(ctx.QueryParam("format")) == "xlsx" {
		return c.respondWithXLSX(ctx, rows)
	}

	return utils.SuccessResponse(ctx, rows, "report generated", http.StatusOK)
}

// GetGrantFundingReport serves the grant funding export, JSON by default and
// a spreadsheet for format=xlsx.
func (c *ReportController) GetGrantFundingReport(ctx echo.Context) error {
	rows, err := c.reportService.GetGrantFundingReport(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if strings.ToLower(ctx.QueryParam("format")) == "xlsx" {
		return c.respondWithGrantsXLSX(ctx, rows)
	}

	return utils.SuccessResponse(ctx, rows, "report generated", http.StatusOK)
}

var labReportHeaders = []string{
	"#", "Lab", "Head", "Email", "Type", "Status", "Location", "Research Area",
	"Equipment Count", "Equipment", "Registered",
}

func labReportRow(item entities.LabReportRow) []interface{} {
	return []interface{}{
		item.LabID, item.LabName, item.HeadName, item.HeadEmail, item.Type,
		item.Status, item.Location, item.ResearchArea, item.EquipmentCount,
		item.EquipmentList, item.CreatedAt.Format("02.01.2006"),
	}
}

func (c *ReportController) respondWithXLSX(ctx echo.Context, rows []entities.LabReportRow) error {
	f := excelize.NewFile()
	sheet := "Lab Inventory"
	f.SetSheetName("Sheet1", sheet)
	f.SetSheetRow(sheet, "A1", &labReportHeaders)
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(sheet, "A1", "K1", style)

	for i, item := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := labReportRow(item)
		f.SetSheetRow(sheet, cell, &row)
	}
	f.SetColWidth(sheet, "B", "B", 30)
	f.SetColWidth(sheet, "C", "D", 25)
	f.SetColWidth(sheet, "G", "H", 25)
	f.SetColWidth(sheet, "J", "J", 60)

	return writeXLSXAttachment(ctx, f, fmt.Sprintf("lab_inventory_%s.xlsx", time.Now().Format("2006-01-02")))
}

var grantReportHeaders = []string{
	"#", "Title", "Agency", "Amount", "Status", "Start", "End", "Lab",
}

func (c *ReportController) respondWithGrantsXLSX(ctx echo.Context, rows []entities.GrantReportRow) error {
	f := excelize.NewFile()
	sheet := "Grant Funding"
	f.SetSheetName("Sheet1", sheet)
	f.SetSheetRow(sheet, "A1", &grantReportHeaders)
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(sheet, "A1", "H1", style)

	for i, item := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []interface{}{
			item.GrantID, item.Title, item.Agency, item.Amount, item.Status,
			item.StartDate, item.EndDate, item.LabName,
		}
		f.SetSheetRow(sheet, cell, &row)
	}
	f.SetColWidth(sheet, "B", "C", 35)
	f.SetColWidth(sheet, "F", "H", 15)

	return writeXLSXAttachment(ctx, f, fmt.Sprintf("grant_funding_%s.xlsx", time.Now().Format("2006-01-02")))
}

func writeXLSXAttachment(ctx echo.Context, f *excelize.File, fileName string) error {
	ctx.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().Header().Set("Content-Disposition", "attachment; filename="+fileName)
	ctx.Response().WriteHeader(http.StatusOK)
	return f.Write(ctx.Response().Writer)
}
