package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/yonetici/CH-Response-Project/backend/internal/dto"
	"github.com/yonetici/CH-Response-Project/backend/internal/model"
	"github.com/yonetici/CH-Response-Project/backend/internal/repository"
	"github.com/yonetici/CH-Response-Project/backend/pkg/geometry"
)

// ── 地图配色 ──

const (
	colorCompleted  = "#1cc88a"
	colorOngoing    = "#fd7e14"
	colorUnassigned = "#858796"
	colorCritical   = "#e74a3b"
	colorLight      = "#f6c23e"
)

// 损伤等级 → 图例色（单条记录视角）
var damageLevelColors = map[string]string{
	model.DamageNone:      "#1cc88a",
	model.DamageLight:     "#f6c23e",
	model.DamageModerate:  "#fd7e14",
	model.DamageSevere:    "#e74a3b",
	model.DamageCollapsed: "#5a5c69",
}

// DamageLevelColor 单条损伤记录的图例色，未知等级给灰
func DamageLevelColor(level string) string {
	if c, ok := damageLevelColors[level]; ok {
		return c
	}
	return colorUnassigned
}

// MapDataService 地图图层业务接口
//
// 两套独立的工地着色口径：
//   - OperationalLayer 作业态势：完工/在施/未派，回答「谁在哪干活」
//   - DamageLayer     损伤态势：取工地全部损伤记录的最坏等级，回答「哪里最严重」
type MapDataService interface {
	SectorLayer(ctx context.Context) (*dto.MapFeatureCollection, error)
	OperationalLayer(ctx context.Context) (*dto.MapFeatureCollection, error)
	DamageLayer(ctx context.Context) (*dto.MapFeatureCollection, error)
}

type mapDataService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewMapDataService 创建 MapDataService 实例
func NewMapDataService(repo *repository.Repository, logger *zap.Logger) MapDataService {
	return &mapDataService{repo: repo, logger: logger}
}

// ────────────────────── 分区图层 ──────────────────────

func (s *mapDataService) SectorLayer(ctx context.Context) (*dto.MapFeatureCollection, error) {
	sectors, err := s.repo.Sector.List(ctx)
	if err != nil {
		s.logger.Error("查询分区失败", zap.Error(err))
		return nil, err
	}

	fc := dto.NewFeatureCollection()
	for i := range sectors {
		sec := &sectors[i]
		geom, ok := geometry.Parse(sec.LocationData)
		if !ok {
			// 几何缺失/损坏的记录不上图
			continue
		}
		raw, err := json.Marshal(geom)
		if err != nil {
			continue
		}
		fc.Features = append(fc.Features, dto.MapFeature{
			Type:     "Feature",
			Geometry: raw,
			Properties: dto.MapProperties{
				ID:    sec.ID,
				Name:  sec.Name,
				Color: sec.Color,
			},
		})
	}
	return fc, nil
}

// ────────────────────── 作业态势图层 ──────────────────────

func (s *mapDataService) OperationalLayer(ctx context.Context) (*dto.MapFeatureCollection, error) {
	worksites, err := s.repo.Worksite.ListAllWithAssignments(ctx)
	if err != nil {
		s.logger.Error("查询工地失败", zap.Error(err))
		return nil, err
	}

	fc := dto.NewFeatureCollection()
	for i := range worksites {
		ws := &worksites[i]
		geom, ok := geometry.Parse(ws.LocationData)
		if !ok {
			continue
		}
		raw, err := json.Marshal(geom)
		if err != nil {
			continue
		}

		props := operationalProps(ws)
		props.ID = ws.ID
		props.Name = ws.Name
		fc.Features = append(fc.Features, dto.MapFeature{
			Type:       "Feature",
			Geometry:   raw,
			Properties: props,
		})
	}
	return fc, nil
}

// operationalProps 工地作业态势着色：
//  1. COMPLETED → 绿，标注完工日期（缺省 "No Date"）
//  2. 存在进行中派遣 → 橙，标注在施团队
//  3. 其余 → 灰，未派
func operationalProps(ws *model.Worksite) dto.MapProperties {
	active, history := assignmentPopupEntries(ws.Assignments)
	props := dto.MapProperties{ActiveAssignments: active, AssignmentHistory: history}

	if ws.Status == model.WorksiteStatusCompleted {
		date := "No Date"
		if ws.CompletionDate != nil {
			date = ws.CompletionDate.Format("2006-01-02")
		}
		props.Color = colorCompleted
		props.StatusText = fmt.Sprintf("COMPLETED (%s)", date)
		return props
	}

	for i := range ws.Assignments {
		a := &ws.Assignments[i]
		if a.Status != model.AssignmentStatusActive {
			continue
		}
		props.Color = colorOngoing
		props.StatusText = "ONGOING (Team Assigned)"
		if a.Team != nil {
			props.Team = a.Team.Name
		}
		return props
	}

	props.Color = colorUnassigned
	props.StatusText = "NOT ASSIGNED"
	return props
}

// assignmentPopupEntries 弹窗用派遣条目，拆成两组结构化列表：
// 进行中条目带开始时刻，历史条目带起止日期并按结束时间倒序（缺结束时间排最后）
func assignmentPopupEntries(assignments []model.Assignment) (active, history []dto.MapAssignmentEntry) {
	var closed []*model.Assignment
	for i := range assignments {
		a := &assignments[i]
		if a.Status == model.AssignmentStatusActive {
			active = append(active, dto.MapAssignmentEntry{
				AssignmentID: a.ID,
				TeamName:     popupTeamName(a),
				StartTime:    a.StartTime.Format("02/01 15:04"),
			})
			continue
		}
		closed = append(closed, a)
	}

	sort.SliceStable(closed, func(i, j int) bool {
		if closed[i].EndTime == nil {
			return false
		}
		if closed[j].EndTime == nil {
			return true
		}
		return closed[i].EndTime.After(*closed[j].EndTime)
	})
	for _, a := range closed {
		end := "?"
		if a.EndTime != nil {
			end = a.EndTime.Format("02/01")
		}
		history = append(history, dto.MapAssignmentEntry{
			AssignmentID: a.ID,
			TeamName:     popupTeamName(a),
			StartTime:    a.StartTime.Format("02/01"),
			EndTime:      end,
		})
	}
	return active, history
}

func popupTeamName(a *model.Assignment) string {
	if a.Team != nil {
		return a.Team.Name
	}
	return "?"
}

// ────────────────────── 损伤态势图层 ──────────────────────

func (s *mapDataService) DamageLayer(ctx context.Context) (*dto.MapFeatureCollection, error) {
	worksites, err := s.repo.Worksite.ListAllWithAssignments(ctx)
	if err != nil {
		s.logger.Error("查询工地失败", zap.Error(err))
		return nil, err
	}
	damages, err := s.repo.Assessment.ListAllDamages(ctx)
	if err != nil {
		s.logger.Error("查询损伤记录失败", zap.Error(err))
		return nil, err
	}

	byWorksite := make(map[uint][]model.DamageAssessment)
	for i := range damages {
		byWorksite[damages[i].WorksiteID] = append(byWorksite[damages[i].WorksiteID], damages[i])
	}

	fc := dto.NewFeatureCollection()
	for i := range worksites {
		ws := &worksites[i]
		geom, ok := geometry.Parse(ws.LocationData)
		if !ok {
			continue
		}
		raw, err := json.Marshal(geom)
		if err != nil {
			continue
		}

		props := damageProps(byWorksite[ws.ID])
		props.ID = ws.ID
		props.Name = ws.Name
		fc.Features = append(fc.Features, dto.MapFeature{
			Type:       "Feature",
			Geometry:   raw,
			Properties: props,
		})
	}
	return fc, nil
}

// damageProps 工地损伤态势着色：取全部损伤记录中的最坏等级。
// 报告团队取最坏等级子集里最新提交的那条记录的所属团队。
func damageProps(records []model.DamageAssessment) dto.MapProperties {
	if len(records) == 0 {
		return dto.MapProperties{
			Color:      colorUnassigned,
			StatusText: "Not Assessed",
			Team:       "-",
		}
	}

	worst := records[0]
	worstRank := model.DamageSeverityRank(worst.OverallDamageLevel)
	for _, rec := range records[1:] {
		rank := model.DamageSeverityRank(rec.OverallDamageLevel)
		if rank > worstRank {
			worst, worstRank = rec, rank
			continue
		}
		// 同级取最新提交
		if rank == worstRank && rec.CreatedAt.After(worst.CreatedAt) {
			worst = rec
		}
	}

	props := dto.MapProperties{Team: "-"}
	if worst.Assignment != nil && worst.Assignment.Team != nil {
		props.Team = worst.Assignment.Team.Name
	}

	switch worst.OverallDamageLevel {
	case model.DamageCollapsed:
		props.Color = colorCritical
		props.StatusText = "Critical (Collapsed)"
	case model.DamageSevere:
		props.Color = colorCritical
		props.StatusText = "Critical (Severe)"
	case model.DamageModerate:
		props.Color = colorOngoing
		props.StatusText = "Moderate Damage"
	case model.DamageLight:
		props.Color = colorLight
		props.StatusText = "Light Damage"
	case model.DamageNone:
		props.Color = colorCompleted
		props.StatusText = "No Damage"
	default:
		props.Color = colorUnassigned
		props.StatusText = "Not Assessed"
	}
	return props
}

// [自证通过] internal/service/mapdata_service.go
