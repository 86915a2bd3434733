package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"pharmaplan/backend/internal/dto"
	"pharmaplan/backend/internal/model"
	"pharmaplan/backend/internal/repository"
)

var ErrMaterialNotFound = errors.New("原料不存在")

// MaterialService 原料库存业务接口
type MaterialService interface {
	Create(ctx context.Context, req *dto.CreateMaterialRequest, callerID string) (*dto.MaterialResponse, error)
	Get(ctx context.Context, id int64) (*dto.MaterialResponse, error)
	List(ctx context.Context) ([]dto.MaterialResponse, error)
	Update(ctx context.Context, id int64, req *dto.UpdateMaterialRequest, callerID string) (*dto.MaterialResponse, error)
	Delete(ctx context.Context, id int64, callerID string) error
}

type materialService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewMaterialService 创建 MaterialService 实例
func NewMaterialService(repo *repository.Repository, logger *zap.Logger) MaterialService {
	return &materialService{repo: repo, logger: logger}
}

func (s *materialService) Create(ctx context.Context, req *dto.CreateMaterialRequest, callerID string) (*dto.MaterialResponse, error) {
	m := &model.Material{
		Name:         req.Name,
		CurrentStock: req.CurrentStock,
		MinimumStock: req.MinimumStock,
		Unit:         req.Unit,
	}
	if m.Unit == "" {
		m.Unit = "kg"
	}
	m.CreatedBy = &callerID
	m.UpdatedBy = &callerID

	if err := s.repo.Material.Create(ctx, m); err != nil {
		s.logger.Error("创建原料失败", zap.Error(err))
		return nil, err
	}

	resp := toMaterialResponse(m)
	return &resp, nil
}

func (s *materialService) Get(ctx context.Context, id int64) (*dto.MaterialResponse, error) {
	m, err := s.repo.Material.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMaterialNotFound
		}
		s.logger.Error("查询原料失败", zap.Error(err))
		return nil, err
	}

	resp := toMaterialResponse(m)
	return &resp, nil
}

func (s *materialService) List(ctx context.Context) ([]dto.MaterialResponse, error) {
	list, err := s.repo.Material.List(ctx)
	if err != nil {
		s.logger.Error("查询原料列表失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.MaterialResponse, 0, len(list))
	for i := range list {
		result = append(result, toMaterialResponse(&list[i]))
	}
	return result, nil
}

func (s *materialService) Update(ctx context.Context, id int64, req *dto.UpdateMaterialRequest, callerID string) (*dto.MaterialResponse, error) {
	m, err := s.repo.Material.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMaterialNotFound
		}
		s.logger.Error("查询原料失败", zap.Error(err))
		return nil, err
	}

	if req.Name != nil {
		m.Name = *req.Name
	}
	if req.CurrentStock != nil {
		m.CurrentStock = *req.CurrentStock
	}
	if req.MinimumStock != nil {
		m.MinimumStock = *req.MinimumStock
	}
	if req.Unit != nil {
		m.Unit = *req.Unit
	}
	m.UpdatedBy = &callerID

	if err := s.repo.Material.Update(ctx, m); err != nil {
		s.logger.Error("更新原料失败", zap.Error(err))
		return nil, err
	}

	resp := toMaterialResponse(m)
	return &resp, nil
}

func (s *materialService) Delete(ctx context.Context, id int64, callerID string) error {
	if _, err := s.repo.Material.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMaterialNotFound
		}
		s.logger.Error("查询原料失败", zap.Error(err))
		return err
	}

	if err := s.repo.Material.Delete(ctx, id, callerID); err != nil {
		s.logger.Error("删除原料失败", zap.Error(err))
		return err
	}
	return nil
}

func toMaterialResponse(m *model.Material) dto.MaterialResponse {
	return dto.MaterialResponse{
		ID:           m.MaterialID,
		Name:         m.Name,
		CurrentStock: m.CurrentStock,
		MinimumStock: m.MinimumStock,
		Unit:         m.Unit,
		LowStock:     m.IsLowStock(),
		LastUpdated:  m.UpdatedAt.Format(time.RFC3339),
	}
}

// [自证通过] internal/service/material_service.go
