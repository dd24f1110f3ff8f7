// Package api exposes the interactive surface over HTTP: year and category
// enumeration, editable tables, recomputed reports, and spreadsheet export.
package api

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rose307/ticket-analysis/internal/baseline"
	"github.com/rose307/ticket-analysis/internal/exporter"
	"github.com/rose307/ticket-analysis/internal/model"
	"github.com/rose307/ticket-analysis/internal/report"
	"github.com/rose307/ticket-analysis/internal/store"
)

const downloadTTL = 10 * time.Minute

// Handlers carries the wired components behind the API routes.
type Handlers struct {
	store     *store.Store
	builder   *report.Builder
	baseline  *baseline.Source
	exportDir string
	logger    *zap.Logger
	downloads *downloadStore
}

// NewHandlers creates the API handlers. exportDir is where generated
// workbooks are parked until downloaded.
func NewHandlers(st *store.Store, src *baseline.Source, exportDir string, logger *zap.Logger) *Handlers {
	return &Handlers{
		store:     st,
		builder:   report.NewBuilder(st, src),
		baseline:  src,
		exportDir: exportDir,
		logger:    logger,
		downloads: newDownloadStore(),
	}
}

// RegisterRoutes attaches all API routes to the group.
func (h *Handlers) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/status", h.GetStatus)
	router.GET("/years", h.ListYears)
	router.GET("/categories", h.ListCategories)

	router.GET("/tables/:category", h.GetTable)
	router.PUT("/tables/:category", h.SaveTable)

	router.GET("/reports", h.GetReports)

	router.POST("/export", h.Export)
	router.GET("/export/download/:token", h.DownloadExport)

	router.POST("/baseline/reload", h.ReloadBaseline)
}

// Response is the common envelope for every API reply.
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

func errorResponse(c *gin.Context, code int, message string) {
	c.JSON(http.StatusOK, Response{
		Code:    code,
		Message: message,
	})
}

// Version is the application version reported by /status.
const Version = "1.0.0"

// GetStatus reports basic application facts.
func (h *Handlers) GetStatus(c *gin.Context) {
	success(c, gin.H{
		"app":        "faretrack",
		"version":    Version,
		"categories": len(model.Categories),
		"years":      len(model.Years()),
		"baseline":   model.BaselineYear,
	})
}

// ListYears returns the editable fiscal-year labels.
func (h *Handlers) ListYears(c *gin.Context) {
	success(c, model.Years())
}

type categoryInfo struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// ListCategories returns the fare categories in display order.
func (h *Handlers) ListCategories(c *gin.Context) {
	out := make([]categoryInfo, 0, len(model.Categories))
	for _, cat := range model.Categories {
		out = append(out, categoryInfo{ID: string(cat), Title: cat.Title()})
	}
	success(c, out)
}

func (h *Handlers) categoryParam(c *gin.Context) (model.Category, bool) {
	cat, ok := model.ParseCategory(c.Param("category"))
	if !ok {
		errorResponse(c, 1001, "unknown category")
	}
	return cat, ok
}

func (h *Handlers) yearQuery(c *gin.Context) (string, bool) {
	year := c.Query("year")
	if !model.ValidYear(year) {
		errorResponse(c, 1002, "year is missing or outside the editable range")
		return "", false
	}
	return year, true
}

// GetTable returns the saved table for (category, year), or zeros when
// nothing has been saved yet.
func (h *Handlers) GetTable(c *gin.Context) {
	cat, ok := h.categoryParam(c)
	if !ok {
		return
	}
	year, ok := h.yearQuery(c)
	if !ok {
		return
	}

	saved := true
	table, err := h.store.Load(cat, year)
	if errors.Is(err, store.ErrNotFound) {
		table, saved = model.ZeroTable(), false
	} else if err != nil {
		errorResponse(c, 5001, err.Error())
		return
	}

	success(c, gin.H{
		"category": cat,
		"year":     year,
		"saved":    saved,
		"rows":     table,
	})
}

type saveTableRequest struct {
	Year string           `json:"year"`
	Rows []model.MonthRow `json:"rows"`
}

// SaveTable persists the submitted rows for (category, year). Rows are
// reindexed to the canonical month order before writing.
func (h *Handlers) SaveTable(c *gin.Context) {
	cat, ok := h.categoryParam(c)
	if !ok {
		return
	}

	var req saveTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, 1003, "invalid request body")
		return
	}
	if !model.ValidYear(req.Year) {
		errorResponse(c, 1002, "year is missing or outside the editable range")
		return
	}

	if err := h.store.Save(cat, req.Year, model.MonthlyTable(req.Rows)); err != nil {
		h.logger.Error("save failed",
			zap.String("category", string(cat)),
			zap.String("year", req.Year),
			zap.Error(err))
		errorResponse(c, 5002, "save failed: "+err.Error())
		return
	}

	h.logger.Info("table saved",
		zap.String("category", string(cat)),
		zap.String("year", req.Year))
	success(c, gin.H{"saved": true})
}

// GetReports recomputes all seven categories' comparative and cumulative
// tables for the requested year.
func (h *Handlers) GetReports(c *gin.Context) {
	year, ok := h.yearQuery(c)
	if !ok {
		return
	}

	reports, err := h.builder.Build(year)
	if err != nil {
		errorResponse(c, 5003, err.Error())
		return
	}
	success(c, gin.H{
		"year":    year,
		"reports": reports,
	})
}

// Export builds the combined workbook for a year and registers it under a
// one-shot download token.
func (h *Handlers) Export(c *gin.Context) {
	year, ok := h.yearQuery(c)
	if !ok {
		return
	}

	tables, err := h.builder.ExportTables(year)
	if err != nil {
		errorResponse(c, 5004, err.Error())
		return
	}

	f, err := exporter.Export(tables)
	if err != nil {
		h.logger.Error("export failed", zap.String("year", year), zap.Error(err))
		errorResponse(c, 5005, "export failed: "+err.Error())
		return
	}
	defer f.Close()

	path := filepath.Join(h.exportDir, fmt.Sprintf("export_%s.xlsx", uuid.New().String()))
	if err := f.SaveAs(path); err != nil {
		h.logger.Error("export write failed", zap.String("year", year), zap.Error(err))
		errorResponse(c, 5005, "export failed: "+err.Error())
		return
	}

	token := h.downloads.put(path, year, downloadTTL)
	h.logger.Info("export ready", zap.String("year", year))
	success(c, gin.H{
		"downloadUrl": "/api/export/download/" + token,
		"fileName":    exportFileName(year),
	})
}

// DownloadExport streams a previously generated workbook, then invalidates
// the token and removes the file.
func (h *Handlers) DownloadExport(c *gin.Context) {
	token := c.Param("token")
	item, ok := h.downloads.get(token)
	if !ok {
		errorResponse(c, 4041, "download link expired")
		return
	}
	if _, err := os.Stat(item.filePath); err != nil {
		h.downloads.delete(token)
		errorResponse(c, 4042, "export file missing")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exportFileName(item.year)))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.File(item.filePath)

	h.downloads.delete(token)
	_ = os.Remove(item.filePath)
}

// ReloadBaseline drops the baseline cache and re-reads the file.
func (h *Handlers) ReloadBaseline(c *gin.Context) {
	h.baseline.Reset()
	if err := h.baseline.Load(); err != nil {
		errorResponse(c, 5006, "baseline reload failed: "+err.Error())
		return
	}
	h.logger.Info("baseline reloaded")
	success(c, gin.H{"reloaded": true})
}

func exportFileName(year string) string {
	return fmt.Sprintf("fare-summary-%s.xlsx", year)
}
