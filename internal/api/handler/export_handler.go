package handler

import (
	"bytes"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"pharmaplan/backend/internal/service"
	"pharmaplan/backend/pkg/response"
)

const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypeCSV  = "text/csv; charset=utf-8"
	contentTypeICS  = "text/calendar; charset=utf-8"
)

// ExportHandler 导出模块 HTTP 处理器
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler 创建 ExportHandler
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// parseYearMonth 解析导出月份参数，缺省为当前月
func parseYearMonth(c *gin.Context) (int, int, bool) {
	now := time.Now()
	year, month := now.Year(), int(now.Month())-1

	if v := c.Query("year"); v != "" {
		y, err := strconv.Atoi(v)
		if err != nil || y < 1970 || y > 9999 {
			response.BadRequest(c, 10001, "year 格式无效")
			return 0, 0, false
		}
		year = y
	}
	if v := c.Query("month"); v != "" {
		m, err := strconv.Atoi(v)
		if err != nil || m < 0 || m > 11 {
			response.BadRequest(c, 10001, "month 须为 0-11")
			return 0, 0, false
		}
		month = m
	}
	return year, month, true
}

// ExportScheduleXLSX 导出月度排班表（Excel）
// GET /api/v1/export/schedule?year=2026&month=7
func (h *ExportHandler) ExportScheduleXLSX(c *gin.Context) {
	year, month, ok := parseYearMonth(c)
	if !ok {
		return
	}

	buf, filename, err := h.exportSvc.ExportScheduleXLSX(c.Request.Context(), year, month)
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	writeAttachment(c, buf, filename, contentTypeXLSX)
}

// ExportPlansCSV 导出全部生产计划（CSV）
// GET /api/v1/export/plans
func (h *ExportHandler) ExportPlansCSV(c *gin.Context) {
	buf, filename, err := h.exportSvc.ExportPlansCSV(c.Request.Context())
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	writeAttachment(c, buf, filename, contentTypeCSV)
}

// ExportScheduleICS 导出月度排班表（iCalendar，可导入日历客户端）
// GET /api/v1/export/schedule.ics?year=2026&month=7
func (h *ExportHandler) ExportScheduleICS(c *gin.Context) {
	year, month, ok := parseYearMonth(c)
	if !ok {
		return
	}

	buf, filename, err := h.exportSvc.ExportScheduleICS(c.Request.Context(), year, month)
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	writeAttachment(c, buf, filename, contentTypeICS)
}

// writeAttachment 设置下载响应头并写出文件内容
func writeAttachment(c *gin.Context, buf *bytes.Buffer, filename, contentType string) {
	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Header("Content-Type", contentType)
	c.Data(http.StatusOK, contentType, buf.Bytes())
}

func (h *ExportHandler) handleExportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrExportNoEntries):
		response.NotFound(c, 17001, "该月份暂无排班条目")
	case errors.Is(err, service.ErrExportGenerateFail):
		response.InternalError(c)
	default:
		response.InternalError(c)
	}
}
