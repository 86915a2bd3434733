package dto

// ── 公司信息 DTO ──

// UpdateCompanyRequest 更新公司信息请求（superadmin）
type UpdateCompanyRequest struct {
	Name    *string `json:"name"     binding:"omitempty,min=1,max=100"`
	LogoURL *string `json:"logo_url" binding:"omitempty,max=500000"`
}

// CompanyResponse 公司信息响应
type CompanyResponse struct {
	Name    string `json:"name"`
	LogoURL string `json:"logo_url"`
}
