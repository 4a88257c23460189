package dto

// ── 战报模块 DTO ──

// MissionReportResponse 任务战报聚合数据
type MissionReportResponse struct {
	GeneratedAt          string              `json:"generated_at"`
	OperationName        string              `json:"operation_name"`
	Narrative            string              `json:"narrative"`
	TotalSectors         int                 `json:"total_sectors"`
	TotalWorksites       int                 `json:"total_worksites"`
	CompletedWorksites   int                 `json:"completed_worksites"`
	TotalAssignments     int                 `json:"total_assignments"`
	CompletedAssignments int                 `json:"completed_assignments"`
	CompletionRate       int                 `json:"completion_rate"` // 完工派遣/派遣总数，0-100 四舍五入
	TotalPersonnel       int                 `json:"total_personnel"`
	TotalCountries       int                 `json:"total_countries"`
	TotalTeams           int                 `json:"total_teams"`
	ActiveAssignments    int                 `json:"active_assignments"`
	TotalSites           int                 `json:"total_sites"`       // 现场评估表数
	TotalBuildings       int                 `json:"total_buildings"`   // 建筑清册数
	TotalAssets          int                 `json:"total_assets"`      // 文物登记数
	JobTitleSummary      string              `json:"job_title_summary"` // 前 8 常见头衔
	SQBreakdown          []CountItem         `json:"sq_breakdown"`
	ExpertiseBreakdown   []CountItem         `json:"expertise_breakdown"`
	CountryBreakdown     []CountItem         `json:"country_breakdown"`
	EditorActivity       []CountItem         `json:"editor_activity"` // 各编辑人提交的现场评估数
	RedList              []RedListItem       `json:"red_list"`        // 最近 10 条重大损伤
	DamageDistribution   []DamageChartSlice  `json:"damage_distribution"`
	SectorProgress       []SectorProgressRow `json:"sector_progress"`
}

// DashboardResponse 首页概览：核心计数 + 最近损伤 + 作业态势图层
type DashboardResponse struct {
	GeneratedAt       string                `json:"generated_at"`
	ActiveAssignments int                   `json:"active_assignments"`
	CriticalBuildings int                   `json:"critical_buildings"` // 存在 SEVERE/COLLAPSED 损伤的建筑数
	TotalAssets       int                   `json:"total_assets"`
	TotalPersonnel    int                   `json:"total_personnel"`
	RecentDamages     []RedListItem         `json:"recent_damages"` // 最近 5 条，不限等级
	OperationalMap    *MapFeatureCollection `json:"operational_map"`
}

// CountItem 通用「名称-数量」统计项
type CountItem struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// RedListItem 重大损伤清单项（SEVERE / COLLAPSED）
type RedListItem struct {
	WorksiteName string `json:"worksite_name"`
	BuildingName string `json:"building_name"`
	DamageLevel  string `json:"damage_level"`
	TeamName     string `json:"team_name"`
	ReportedAt   string `json:"reported_at"`
}

// DamageChartSlice 损伤等级分布切片（自带图例色）
type DamageChartSlice struct {
	Level string `json:"level"`
	Count int    `json:"count"`
	Color string `json:"color"`
}

// SectorProgressRow 分区进度行
type SectorProgressRow struct {
	SectorName string `json:"sector_name"`
	Total      int    `json:"total"`
	Completed  int    `json:"completed"`
}

// [自证通过] internal/dto/report.go
