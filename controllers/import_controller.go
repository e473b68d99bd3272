// File: /controllers/import_controller.go
package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"strings"

	"eventdesk-api/repositories"
	"eventdesk-api/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ImportController struct {
	importService *services.ImportService
	exportService *services.ExportService
}

func NewImportController(db *gorm.DB) *ImportController {
	eventRepo := repositories.NewEventRepository(db)
	statsService := services.NewStatsService(db)

	return &ImportController{
		importService: services.NewImportService(eventRepo, statsService),
		exportService: services.NewExportService(),
	}
}

// ImportEvents accepts an uploaded .xlsx/.xls document and creates one event
// per valid row on behalf of the authenticated user.
func (ic *ImportController) ImportEvents(c *gin.Context) {
	userID := c.GetString("user_id")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if ext != ".xlsx" && ext != ".xls" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File must be an Excel file (.xlsx or .xls)"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read uploaded file"})
		return
	}
	defer file.Close()

	result, err := ic.importService.Import(file, userID)
	if err != nil {
		var missingCols *services.MissingColumnsError
		if errors.As(err, &missingCols) || errors.Is(err, services.ErrNotTabular) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to import events"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":        fmt.Sprintf("Imported %d of %d rows", result.ImportedCount, result.TotalRows),
		"imported_count": result.ImportedCount,
		"total_rows":     result.TotalRows,
		"errors":         result.Errors,
		"error_count":    result.ErrorCount,
	})
}

// DownloadTemplate serves an .xlsx template whose header row matches exactly
// what ImportEvents accepts.
func (ic *ImportController) DownloadTemplate(c *gin.Context) {
	workbook, err := ic.exportService.BuildTemplate()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build template"})
		return
	}

	c.Header("Content-Type", xlsxContentType)
	c.Header("Content-Disposition", `attachment; filename="events_template.xlsx"`)
	c.Status(http.StatusOK)

	if err := workbook.Write(c.Writer); err != nil {
		log.Printf("Failed to stream template: %v", err)
	}
}
