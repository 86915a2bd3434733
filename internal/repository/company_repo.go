package repository

import (
	"context"

	"gorm.io/gorm"

	"pharmaplan/backend/internal/model"
)

// CompanyRepository 公司信息数据访问接口（单行表）
type CompanyRepository interface {
	Get(ctx context.Context) (*model.CompanyProfile, error)
	Upsert(ctx context.Context, profile *model.CompanyProfile) error
}

type companyRepo struct {
	db *gorm.DB
}

// NewCompanyRepo 创建 CompanyRepository 实例
func NewCompanyRepo(db *gorm.DB) CompanyRepository {
	return &companyRepo{db: db}
}

func (r *companyRepo) Get(ctx context.Context) (*model.CompanyProfile, error) {
	var profile model.CompanyProfile
	err := r.db.WithContext(ctx).
		Where("profile_id = 1").
		First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *companyRepo) Upsert(ctx context.Context, profile *model.CompanyProfile) error {
	profile.ProfileID = 1
	return r.db.WithContext(ctx).Save(profile).Error
}
