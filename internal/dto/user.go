package dto

// ── 用户管理 DTO ──

// UserListRequest 用户列表查询参数
type UserListRequest struct {
	Role    string `form:"role"    binding:"omitempty,oneof=user admin superadmin"`
	Keyword string `form:"keyword"`
	PaginationRequest
}

// AssignRoleRequest 分配角色请求
type AssignRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=user admin superadmin"`
}
