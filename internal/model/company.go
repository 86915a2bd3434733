package model

import "time"

// CompanyProfile 公司信息（单行表）— 对应 company_profile
type CompanyProfile struct {
	ProfileID int16     `gorm:"primaryKey;default:1" json:"-"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	LogoURL   string    `gorm:"type:text;not null;default:''" json:"logo_url"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName 指定表名
func (CompanyProfile) TableName() string { return "company_profile" }
