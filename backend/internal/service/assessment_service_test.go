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

type assessmentTestEnv struct {
	svc            AssessmentService
	assignmentRepo *mockAssignmentRepo
	assessmentRepo *mockAssessmentRepo
	worksiteRepo   *mockWorksiteRepo
	personnelRepo  *mockPersonnelRepo
}

func setupTestAssessmentService() *assessmentTestEnv {
	env := &assessmentTestEnv{
		assignmentRepo: newMockAssignmentRepo(),
		assessmentRepo: newMockAssessmentRepo(),
		worksiteRepo:   newMockWorksiteRepo(),
		personnelRepo:  newMockPersonnelRepo(),
	}
	repo := &repository.Repository{
		Assignment: env.assignmentRepo,
		Assessment: env.assessmentRepo,
		Worksite:   env.worksiteRepo,
		Personnel:  env.personnelRepo,
	}
	env.svc = NewAssessmentService(repo, zap.NewNop())
	return env
}

// createTestDeployment 造一条工地 + 派遣，返回派遣供表头引用
func (env *assessmentTestEnv) createTestDeployment(worksiteName string) *model.Assignment {
	ctx := context.Background()
	ws := &model.Worksite{Name: worksiteName, Status: model.WorksiteStatusOpen}
	env.worksiteRepo.Create(ctx, ws)

	a := &model.Assignment{WorksiteID: ws.ID, TeamID: 1, Status: model.AssignmentStatusActive}
	env.assignmentRepo.Create(ctx, a)
	return a
}

func formHeaderReq(a *model.Assignment) dto.FormHeaderRequest {
	return dto.FormHeaderRequest{AssignmentID: a.ID, WorksiteID: a.WorksiteID}
}

// ── 表头校验 ──

func TestCreateSiteAssessment_UnknownAssignment(t *testing.T) {
	env := setupTestAssessmentService()

	_, err := env.svc.CreateSiteAssessment(context.Background(), &dto.SiteAssessmentRequest{
		FormHeaderRequest: dto.FormHeaderRequest{AssignmentID: 999, WorksiteID: 1},
	}, "编辑甲")
	if !errors.Is(err, ErrFormAssignmentNotFound) {
		t.Fatalf("派遣不存在应返回 ErrFormAssignmentNotFound，实际=%v", err)
	}
}

func TestCreateSiteAssessment_WorksiteMismatch(t *testing.T) {
	env := setupTestAssessmentService()
	a := env.createTestDeployment("Citadel")

	_, err := env.svc.CreateSiteAssessment(context.Background(), &dto.SiteAssessmentRequest{
		FormHeaderRequest: dto.FormHeaderRequest{AssignmentID: a.ID, WorksiteID: a.WorksiteID + 100},
	}, "编辑甲")
	if !errors.Is(err, ErrFormWorksiteMismatch) {
		t.Fatalf("派遣与工地不匹配应返回 ErrFormWorksiteMismatch，实际=%v", err)
	}
}

func TestCreateSiteAssessment_EditorSnapshot(t *testing.T) {
	env := setupTestAssessmentService()
	a := env.createTestDeployment("Citadel")
	ctx := context.Background()

	// 表头未填编辑人时落当前登录者
	resp, err := env.svc.CreateSiteAssessment(ctx, &dto.SiteAssessmentRequest{
		FormHeaderRequest: formHeaderReq(a),
	}, "编辑甲")
	if err != nil {
		t.Fatalf("创建现场评估失败: %v", err)
	}
	rec, err := env.svc.GetSiteAssessment(ctx, resp.ID)
	if err != nil {
		t.Fatalf("读取现场评估失败: %v", err)
	}
	if rec.EditorName != "编辑甲" {
		t.Errorf("期望编辑人快照=编辑甲，实际=%s", rec.EditorName)
	}

	// 表头显式填写时尊重填写值
	resp, err = env.svc.CreateSiteAssessment(ctx, &dto.SiteAssessmentRequest{
		FormHeaderRequest: dto.FormHeaderRequest{
			AssignmentID: a.ID,
			WorksiteID:   a.WorksiteID,
			EditorName:   "现场记录员",
		},
	}, "编辑甲")
	if err != nil {
		t.Fatalf("创建现场评估失败: %v", err)
	}
	rec, _ = env.svc.GetSiteAssessment(ctx, resp.ID)
	if rec.EditorName != "现场记录员" {
		t.Errorf("期望编辑人快照=现场记录员，实际=%s", rec.EditorName)
	}
}

func TestCreateSiteAssessment_LeaderSnapshot(t *testing.T) {
	env := setupTestAssessmentService()
	a := env.createTestDeployment("Citadel")
	ctx := context.Background()

	leader := &model.Personnel{FirstName: "Maria", LastName: "Rossi"}
	env.personnelRepo.Create(ctx, leader)
	a.Team = &model.Team{Name: "Team Alpha", LeaderID: &leader.ID}

	resp, err := env.svc.CreateSiteAssessment(ctx, &dto.SiteAssessmentRequest{
		FormHeaderRequest: formHeaderReq(a),
	}, "编辑甲")
	if err != nil {
		t.Fatalf("创建现场评估失败: %v", err)
	}
	rec, _ := env.svc.GetSiteAssessment(ctx, resp.ID)
	if rec.TeamLeader != "Maria Rossi" {
		t.Errorf("期望队长快照=Maria Rossi，实际=%s", rec.TeamLeader)
	}
}

func TestCreateSiteAssessment_Defaults(t *testing.T) {
	env := setupTestAssessmentService()
	a := env.createTestDeployment("Citadel")

	resp, err := env.svc.CreateSiteAssessment(context.Background(), &dto.SiteAssessmentRequest{
		FormHeaderRequest: formHeaderReq(a),
	}, "编辑甲")
	if err != nil {
		t.Fatalf("创建现场评估失败: %v", err)
	}
	rec, _ := env.svc.GetSiteAssessment(context.Background(), resp.ID)
	if rec.SiteType != model.SiteTypeOther {
		t.Errorf("缺省场所类型应为 OTHER，实际=%s", rec.SiteType)
	}
	if rec.IsProtected != model.ProtectionUnknown {
		t.Errorf("缺省保护状态应为 UNKNOWN，实际=%s", rec.IsProtected)
	}
	if rec.NumberOfBuildings != 1 {
		t.Errorf("缺省建筑数应为 1，实际=%d", rec.NumberOfBuildings)
	}
	if string(rec.HazardData) != "{}" {
		t.Errorf("未填 JSON 块应落空对象，实际=%s", rec.HazardData)
	}
}

// ── 上级关联链 ──

func TestCreateBuilding_ParentMismatch(t *testing.T) {
	env := setupTestAssessmentService()
	a1 := env.createTestDeployment("Citadel")
	a2 := env.createTestDeployment("North Tower")
	ctx := context.Background()

	// 现场评估挂在另一个工地上
	other, err := env.svc.CreateSiteAssessment(ctx, &dto.SiteAssessmentRequest{
		FormHeaderRequest: formHeaderReq(a2),
	}, "编辑甲")
	if err != nil {
		t.Fatalf("创建现场评估失败: %v", err)
	}

	_, err = env.svc.CreateBuilding(ctx, &dto.BuildingInventoryRequest{
		FormHeaderRequest: formHeaderReq(a1),
		SiteAssessmentID:  other.ID,
	}, "编辑甲")
	if !errors.Is(err, ErrFormParentMismatch) {
		t.Fatalf("跨工地挂接应返回 ErrFormParentMismatch，实际=%v", err)
	}
}

func TestCreateBuilding_UnknownParent(t *testing.T) {
	env := setupTestAssessmentService()
	a := env.createTestDeployment("Citadel")

	_, err := env.svc.CreateBuilding(context.Background(), &dto.BuildingInventoryRequest{
		FormHeaderRequest: formHeaderReq(a),
		SiteAssessmentID:  999,
	}, "编辑甲")
	if !errors.Is(err, ErrSiteAssessmentNotFound) {
		t.Fatalf("上级现场评估不存在应返回 ErrSiteAssessmentNotFound，实际=%v", err)
	}
}

func TestCreateDamage_ParentMismatch(t *testing.T) {
	env := setupTestAssessmentService()
	a1 := env.createTestDeployment("Citadel")
	a2 := env.createTestDeployment("North Tower")
	ctx := context.Background()

	site, err := env.svc.CreateSiteAssessment(ctx, &dto.SiteAssessmentRequest{
		FormHeaderRequest: formHeaderReq(a2),
	}, "编辑甲")
	if err != nil {
		t.Fatalf("创建现场评估失败: %v", err)
	}
	building, err := env.svc.CreateBuilding(ctx, &dto.BuildingInventoryRequest{
		FormHeaderRequest: formHeaderReq(a2),
		SiteAssessmentID:  site.ID,
	}, "编辑甲")
	if err != nil {
		t.Fatalf("创建建筑清册失败: %v", err)
	}

	_, err = env.svc.CreateDamage(ctx, &dto.DamageAssessmentRequest{
		FormHeaderRequest: formHeaderReq(a1),
		BuildingID:        building.ID,
	}, "编辑甲")
	if !errors.Is(err, ErrFormParentMismatch) {
		t.Fatalf("跨工地挂接建筑应返回 ErrFormParentMismatch，实际=%v", err)
	}
}

func TestCreateDamage_Defaults(t *testing.T) {
	env := setupTestAssessmentService()
	a := env.createTestDeployment("Citadel")
	ctx := context.Background()

	site, _ := env.svc.CreateSiteAssessment(ctx, &dto.SiteAssessmentRequest{
		FormHeaderRequest: formHeaderReq(a),
	}, "编辑甲")
	building, _ := env.svc.CreateBuilding(ctx, &dto.BuildingInventoryRequest{
		FormHeaderRequest: formHeaderReq(a),
		SiteAssessmentID:  site.ID,
	}, "编辑甲")

	resp, err := env.svc.CreateDamage(ctx, &dto.DamageAssessmentRequest{
		FormHeaderRequest: formHeaderReq(a),
		BuildingID:        building.ID,
	}, "编辑甲")
	if err != nil {
		t.Fatalf("创建损伤评估失败: %v", err)
	}
	rec, _ := env.svc.GetDamage(ctx, resp.ID)
	if rec.HazardType != model.HazardSeismic {
		t.Errorf("缺省灾种应为 SEISMIC，实际=%s", rec.HazardType)
	}
	if rec.OverallDamageLevel != model.DamageNone {
		t.Errorf("缺省损伤等级应为 NONE，实际=%s", rec.OverallDamageLevel)
	}
}

func TestCreateAsset_OptionalBuilding(t *testing.T) {
	env := setupTestAssessmentService()
	a := env.createTestDeployment("Citadel")
	ctx := context.Background()

	// 散落文物可不挂建筑
	resp, err := env.svc.CreateAsset(ctx, &dto.MovableHeritageRequest{
		FormHeaderRequest: formHeaderReq(a),
		ObjectName:        "Bronze Statue",
	}, "编辑甲")
	if err != nil {
		t.Fatalf("创建文物登记失败: %v", err)
	}
	rec, _ := env.svc.GetAsset(ctx, resp.ID)
	if rec.BuildingID != nil {
		t.Error("未指定建筑时 BuildingID 应为空")
	}
	if rec.Quantity != 1 {
		t.Errorf("缺省数量应为 1，实际=%d", rec.Quantity)
	}

	// 指定建筑时必须同工地
	a2 := env.createTestDeployment("North Tower")
	site, _ := env.svc.CreateSiteAssessment(ctx, &dto.SiteAssessmentRequest{
		FormHeaderRequest: formHeaderReq(a2),
	}, "编辑甲")
	building, _ := env.svc.CreateBuilding(ctx, &dto.BuildingInventoryRequest{
		FormHeaderRequest: formHeaderReq(a2),
		SiteAssessmentID:  site.ID,
	}, "编辑甲")

	_, err = env.svc.CreateAsset(ctx, &dto.MovableHeritageRequest{
		FormHeaderRequest: formHeaderReq(a),
		BuildingID:        &building.ID,
		ObjectName:        "Fresco Fragment",
	}, "编辑甲")
	if !errors.Is(err, ErrFormParentMismatch) {
		t.Fatalf("跨工地挂接建筑应返回 ErrFormParentMismatch，实际=%v", err)
	}
}

func TestCreateTracking_UnknownAsset(t *testing.T) {
	env := setupTestAssessmentService()
	a := env.createTestDeployment("Citadel")

	_, err := env.svc.CreateTracking(context.Background(), &dto.MovableTrackingRequest{
		FormHeaderRequest: formHeaderReq(a),
		AssetID:           999,
	}, "编辑甲")
	if !errors.Is(err, ErrAssetNotFound) {
		t.Fatalf("文物不存在应返回 ErrAssetNotFound，实际=%v", err)
	}
}

func TestCreateTracking_TransferDateParsed(t *testing.T) {
	env := setupTestAssessmentService()
	a := env.createTestDeployment("Citadel")
	ctx := context.Background()

	asset, _ := env.svc.CreateAsset(ctx, &dto.MovableHeritageRequest{
		FormHeaderRequest: formHeaderReq(a),
		ObjectName:        "Bronze Statue",
	}, "编辑甲")

	resp, err := env.svc.CreateTracking(ctx, &dto.MovableTrackingRequest{
		FormHeaderRequest: formHeaderReq(a),
		AssetID:           asset.ID,
		TransferDate:      "2026-03-15",
		Destination:       "Regional Depot",
	}, "编辑甲")
	if err != nil {
		t.Fatalf("创建转移记录失败: %v", err)
	}
	if resp.FormType != "movable_tracking" {
		t.Errorf("期望表单类型 movable_tracking，实际=%s", resp.FormType)
	}

	rec, err := env.svc.GetTracking(ctx, resp.ID)
	if err != nil {
		t.Fatalf("查询转移记录失败: %v", err)
	}
	if rec.Destination != "Regional Depot" {
		t.Errorf("期望目的地 Regional Depot，实际=%s", rec.Destination)
	}
}

func TestGetTracking_NotFound(t *testing.T) {
	env := setupTestAssessmentService()

	_, err := env.svc.GetTracking(context.Background(), 999)
	if !errors.Is(err, ErrTrackingNotFound) {
		t.Fatalf("转移记录不存在应返回 ErrTrackingNotFound，实际=%v", err)
	}
}

// ── 更新 ──

func TestUpdateDamage_PartialFields(t *testing.T) {
	env := setupTestAssessmentService()
	a := env.createTestDeployment("Citadel")
	ctx := context.Background()

	site, _ := env.svc.CreateSiteAssessment(ctx, &dto.SiteAssessmentRequest{
		FormHeaderRequest: formHeaderReq(a),
	}, "编辑甲")
	building, _ := env.svc.CreateBuilding(ctx, &dto.BuildingInventoryRequest{
		FormHeaderRequest: formHeaderReq(a),
		SiteAssessmentID:  site.ID,
	}, "编辑甲")
	created, _ := env.svc.CreateDamage(ctx, &dto.DamageAssessmentRequest{
		FormHeaderRequest:  formHeaderReq(a),
		BuildingID:         building.ID,
		HazardType:         model.HazardFire,
		OverallDamageLevel: model.DamageLight,
	}, "编辑甲")

	// 空字段不覆盖已有值
	_, err := env.svc.UpdateDamage(ctx, created.ID, &dto.DamageAssessmentRequest{
		FormHeaderRequest:  formHeaderReq(a),
		BuildingID:         building.ID,
		OverallDamageLevel: model.DamageSevere,
	})
	if err != nil {
		t.Fatalf("更新损伤评估失败: %v", err)
	}
	rec, _ := env.svc.GetDamage(ctx, created.ID)
	if rec.OverallDamageLevel != model.DamageSevere {
		t.Errorf("期望损伤等级升级为 SEVERE，实际=%s", rec.OverallDamageLevel)
	}
	if rec.HazardType != model.HazardFire {
		t.Errorf("未填灾种不应被清空，实际=%s", rec.HazardType)
	}
}

func TestUpdateSiteAssessment_NotFound(t *testing.T) {
	env := setupTestAssessmentService()

	_, err := env.svc.UpdateSiteAssessment(context.Background(), 999, &dto.SiteAssessmentRequest{})
	if !errors.Is(err, ErrSiteAssessmentNotFound) {
		t.Fatalf("记录不存在应返回 ErrSiteAssessmentNotFound，实际=%v", err)
	}
}

// ── 工地台账 ──

func TestWorksiteForms_Ledger(t *testing.T) {
	env := setupTestAssessmentService()
	a := env.createTestDeployment("Citadel")
	other := env.createTestDeployment("North Tower")
	ctx := context.Background()

	site, _ := env.svc.CreateSiteAssessment(ctx, &dto.SiteAssessmentRequest{
		FormHeaderRequest: formHeaderReq(a),
	}, "编辑甲")
	env.svc.CreateBuilding(ctx, &dto.BuildingInventoryRequest{
		FormHeaderRequest: formHeaderReq(a),
		SiteAssessmentID:  site.ID,
	}, "编辑甲")
	env.svc.CreateIntangible(ctx, &dto.IntangibleHeritageRequest{
		FormHeaderRequest: formHeaderReq(a),
		ElementName:       "Folk Weaving",
	}, "编辑甲")
	// 别的工地的记录不应混入台账
	env.svc.CreateSiteAssessment(ctx, &dto.SiteAssessmentRequest{
		FormHeaderRequest: formHeaderReq(other),
	}, "编辑甲")

	forms, err := env.svc.WorksiteForms(ctx, a.WorksiteID)
	if err != nil {
		t.Fatalf("读取工地台账失败: %v", err)
	}
	if len(forms.SiteAssessments) != 1 {
		t.Errorf("期望 1 条现场评估，实际=%d", len(forms.SiteAssessments))
	}
	if len(forms.Buildings) != 1 {
		t.Errorf("期望 1 条建筑清册，实际=%d", len(forms.Buildings))
	}
	if len(forms.Intangibles) != 1 {
		t.Errorf("期望 1 条非遗记录，实际=%d", len(forms.Intangibles))
	}
	if len(forms.Damages) != 0 {
		t.Errorf("期望 0 条损伤评估，实际=%d", len(forms.Damages))
	}
}

func TestWorksiteForms_UnknownWorksite(t *testing.T) {
	env := setupTestAssessmentService()

	_, err := env.svc.WorksiteForms(context.Background(), 999)
	if !errors.Is(err, ErrWorksiteNotFound) {
		t.Fatalf("工地不存在应返回 ErrWorksiteNotFound，实际=%v", err)
	}
}

// ── 更新与删除 ──

func TestUpdateAsset_BuildingMismatch(t *testing.T) {
	env := setupTestAssessmentService()
	a := env.createTestDeployment("Citadel")
	other := env.createTestDeployment("Bazaar")
	ctx := context.Background()

	site, _ := env.svc.CreateSiteAssessment(ctx, &dto.SiteAssessmentRequest{
		FormHeaderRequest: formHeaderReq(other),
	}, "编辑甲")
	building, _ := env.svc.CreateBuilding(ctx, &dto.BuildingInventoryRequest{
		FormHeaderRequest: formHeaderReq(other),
		SiteAssessmentID:  site.ID,
	}, "编辑甲")
	asset, _ := env.svc.CreateAsset(ctx, &dto.MovableHeritageRequest{
		FormHeaderRequest: formHeaderReq(a),
		ObjectName:        "Bronze Censer",
	}, "编辑甲")

	// 改挂到别的工地的建筑应被拒绝
	_, err := env.svc.UpdateAsset(ctx, asset.ID, &dto.MovableHeritageRequest{
		BuildingID: &building.ID,
		ObjectName: "Bronze Censer",
	})
	if !errors.Is(err, ErrFormParentMismatch) {
		t.Fatalf("跨工地挂靠应返回 ErrFormParentMismatch，实际=%v", err)
	}
}

func TestUpdateIntangible_Fields(t *testing.T) {
	env := setupTestAssessmentService()
	a := env.createTestDeployment("Citadel")
	ctx := context.Background()

	created, err := env.svc.CreateIntangible(ctx, &dto.IntangibleHeritageRequest{
		FormHeaderRequest: formHeaderReq(a),
		ElementName:       "Folk Weaving",
		Domain:            "CRAFT",
	}, "编辑甲")
	if err != nil {
		t.Fatalf("创建非遗记录失败: %v", err)
	}

	if _, err := env.svc.UpdateIntangible(ctx, created.ID, &dto.IntangibleHeritageRequest{
		ElementName: "Folk Weaving Tradition",
		Domain:      "ORAL",
	}); err != nil {
		t.Fatalf("更新非遗记录失败: %v", err)
	}

	rec, _ := env.svc.GetIntangible(ctx, created.ID)
	if rec.ElementName != "Folk Weaving Tradition" || rec.Domain != "ORAL" {
		t.Errorf("非遗字段未更新: name=%s domain=%s", rec.ElementName, rec.Domain)
	}
}

func TestDeleteSiteAssessment(t *testing.T) {
	env := setupTestAssessmentService()
	a := env.createTestDeployment("Citadel")
	ctx := context.Background()

	created, _ := env.svc.CreateSiteAssessment(ctx, &dto.SiteAssessmentRequest{
		FormHeaderRequest: formHeaderReq(a),
	}, "编辑甲")

	if err := env.svc.DeleteSiteAssessment(ctx, created.ID); err != nil {
		t.Fatalf("删除现场评估失败: %v", err)
	}
	if _, err := env.svc.GetSiteAssessment(ctx, created.ID); !errors.Is(err, ErrSiteAssessmentNotFound) {
		t.Errorf("删除后查询应返回 ErrSiteAssessmentNotFound，实际=%v", err)
	}
	// 重复删除同样报不存在
	if err := env.svc.DeleteSiteAssessment(ctx, created.ID); !errors.Is(err, ErrSiteAssessmentNotFound) {
		t.Errorf("重复删除应返回 ErrSiteAssessmentNotFound，实际=%v", err)
	}
}

func TestDeleteDamage_NotFound(t *testing.T) {
	env := setupTestAssessmentService()

	if err := env.svc.DeleteDamage(context.Background(), 999); !errors.Is(err, ErrDamageNotFound) {
		t.Fatalf("损伤记录不存在应返回 ErrDamageNotFound，实际=%v", err)
	}
}

// ── 派遣工作台 ──

func TestAssignmentDashboard_Nesting(t *testing.T) {
	env := setupTestAssessmentService()
	a := env.createTestDeployment("Citadel")
	ctx := context.Background()

	site, _ := env.svc.CreateSiteAssessment(ctx, &dto.SiteAssessmentRequest{
		FormHeaderRequest: formHeaderReq(a),
		SiteReferenceCode: "CIT-01",
	}, "编辑甲")
	building, _ := env.svc.CreateBuilding(ctx, &dto.BuildingInventoryRequest{
		FormHeaderRequest: formHeaderReq(a),
		SiteAssessmentID:  site.ID,
		BuildingName:      "Great Hall",
	}, "编辑甲")
	env.svc.CreateDamage(ctx, &dto.DamageAssessmentRequest{
		FormHeaderRequest:  formHeaderReq(a),
		BuildingID:         building.ID,
		OverallDamageLevel: model.DamageModerate,
	}, "编辑甲")
	env.svc.CreateDamage(ctx, &dto.DamageAssessmentRequest{
		FormHeaderRequest:  formHeaderReq(a),
		BuildingID:         building.ID,
		OverallDamageLevel: model.DamageSevere,
	}, "编辑甲")
	env.svc.CreateAsset(ctx, &dto.MovableHeritageRequest{
		FormHeaderRequest: formHeaderReq(a),
		BuildingID:        &building.ID,
		ObjectName:        "Bronze Censer",
	}, "编辑甲")
	env.svc.CreateAsset(ctx, &dto.MovableHeritageRequest{
		FormHeaderRequest: formHeaderReq(a),
		ObjectName:        "Scattered Icon",
	}, "编辑甲")

	dash, err := env.svc.AssignmentDashboard(ctx, a.ID)
	if err != nil {
		t.Fatalf("读取派遣工作台失败: %v", err)
	}
	if len(dash.Sites) != 1 {
		t.Fatalf("期望 1 个现场评估节点，实际=%d", len(dash.Sites))
	}
	if len(dash.Sites[0].Buildings) != 1 {
		t.Fatalf("期望 1 个建筑节点，实际=%d", len(dash.Sites[0].Buildings))
	}
	node := dash.Sites[0].Buildings[0]
	if len(node.Damages) != 2 {
		t.Errorf("期望建筑下挂 2 条损伤，实际=%d", len(node.Damages))
	}
	if node.WorstDamage != model.DamageSevere {
		t.Errorf("期望最坏等级 SEVERE，实际=%s", node.WorstDamage)
	}
	if len(node.Assets) != 1 {
		t.Errorf("期望建筑下挂 1 件文物，实际=%d", len(node.Assets))
	}
	if len(dash.LooseAssets) != 1 {
		t.Errorf("期望 1 件散落文物，实际=%d", len(dash.LooseAssets))
	}
	if dash.TotalBuildings != 1 || dash.TotalDamages != 2 || dash.TotalAssets != 2 {
		t.Errorf("汇总计数不符: buildings=%d damages=%d assets=%d",
			dash.TotalBuildings, dash.TotalDamages, dash.TotalAssets)
	}
}

func TestAssignmentDashboard_UnknownAssignment(t *testing.T) {
	env := setupTestAssessmentService()

	_, err := env.svc.AssignmentDashboard(context.Background(), 999)
	if !errors.Is(err, ErrFormAssignmentNotFound) {
		t.Fatalf("派遣不存在应返回 ErrFormAssignmentNotFound，实际=%v", err)
	}
}

// [自证通过] internal/service/assessment_service_test.go
