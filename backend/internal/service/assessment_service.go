package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/yonetici/CH-Response-Project/backend/internal/dto"
	"github.com/yonetici/CH-Response-Project/backend/internal/model"
	"github.com/yonetici/CH-Response-Project/backend/internal/repository"
)

// ── 评估表单模块业务错误 ──

var (
	ErrFormAssignmentNotFound = errors.New("表单所属派遣不存在")
	ErrFormWorksiteMismatch   = errors.New("派遣与工地不匹配")
	ErrSiteAssessmentNotFound = errors.New("现场评估记录不存在")
	ErrBuildingNotFound       = errors.New("建筑记录不存在")
	ErrDamageNotFound         = errors.New("损伤记录不存在")
	ErrAssetNotFound          = errors.New("文物记录不存在")
	ErrTrackingNotFound       = errors.New("转移记录不存在")
	ErrIntangibleNotFound     = errors.New("非遗记录不存在")
	ErrFormParentMismatch     = errors.New("上级记录不属于同一工地")
)

// AssessmentService 六类评估表单业务接口
type AssessmentService interface {
	CreateSiteAssessment(ctx context.Context, req *dto.SiteAssessmentRequest, editor string) (*dto.FormRecordResponse, error)
	GetSiteAssessment(ctx context.Context, id uint) (*model.SiteAssessment, error)
	UpdateSiteAssessment(ctx context.Context, id uint, req *dto.SiteAssessmentRequest) (*dto.FormRecordResponse, error)
	DeleteSiteAssessment(ctx context.Context, id uint) error

	CreateBuilding(ctx context.Context, req *dto.BuildingInventoryRequest, editor string) (*dto.FormRecordResponse, error)
	GetBuilding(ctx context.Context, id uint) (*model.BuildingInventory, error)
	UpdateBuilding(ctx context.Context, id uint, req *dto.BuildingInventoryRequest) (*dto.FormRecordResponse, error)
	DeleteBuilding(ctx context.Context, id uint) error

	CreateDamage(ctx context.Context, req *dto.DamageAssessmentRequest, editor string) (*dto.FormRecordResponse, error)
	GetDamage(ctx context.Context, id uint) (*model.DamageAssessment, error)
	UpdateDamage(ctx context.Context, id uint, req *dto.DamageAssessmentRequest) (*dto.FormRecordResponse, error)
	DeleteDamage(ctx context.Context, id uint) error

	CreateAsset(ctx context.Context, req *dto.MovableHeritageRequest, editor string) (*dto.FormRecordResponse, error)
	GetAsset(ctx context.Context, id uint) (*model.MovableHeritage, error)
	UpdateAsset(ctx context.Context, id uint, req *dto.MovableHeritageRequest) (*dto.FormRecordResponse, error)
	DeleteAsset(ctx context.Context, id uint) error

	CreateTracking(ctx context.Context, req *dto.MovableTrackingRequest, editor string) (*dto.FormRecordResponse, error)
	GetTracking(ctx context.Context, id uint) (*model.MovableTracking, error)

	CreateIntangible(ctx context.Context, req *dto.IntangibleHeritageRequest, editor string) (*dto.FormRecordResponse, error)
	GetIntangible(ctx context.Context, id uint) (*model.IntangibleHeritage, error)
	UpdateIntangible(ctx context.Context, id uint, req *dto.IntangibleHeritageRequest) (*dto.FormRecordResponse, error)
	DeleteIntangible(ctx context.Context, id uint) error

	// WorksiteForms 工地台账：该工地下全部表单记录的索引
	WorksiteForms(ctx context.Context, worksiteID uint) (*dto.WorksiteFormsResponse, error)
	// AssignmentDashboard 派遣工作台：工地表单层级视图
	AssignmentDashboard(ctx context.Context, assignmentID uint) (*dto.AssignmentDashboardResponse, error)
}

type assessmentService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAssessmentService 创建 AssessmentService 实例
func NewAssessmentService(repo *repository.Repository, logger *zap.Logger) AssessmentService {
	return &assessmentService{repo: repo, logger: logger}
}

// buildHeader 校验表头并生成快照：
//   - 派遣必须存在且属于该工地
//   - 队长/编辑人留作文字快照，人员后续变动不影响历史表单
func (s *assessmentService) buildHeader(ctx context.Context, req *dto.FormHeaderRequest, editor string) (model.FormHeader, error) {
	a, err := s.repo.Assignment.GetByID(ctx, req.AssignmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.FormHeader{}, ErrFormAssignmentNotFound
		}
		s.logger.Error("查询派遣失败", zap.Error(err))
		return model.FormHeader{}, err
	}
	if a.WorksiteID != req.WorksiteID {
		return model.FormHeader{}, ErrFormWorksiteMismatch
	}

	hdr := model.FormHeader{
		AssignmentID: req.AssignmentID,
		WorksiteID:   req.WorksiteID,
		TeamLeader:   req.TeamLeader,
		EditorName:   req.EditorName,
	}
	if hdr.EditorName == "" {
		hdr.EditorName = editor
	}
	if hdr.TeamLeader == "" && a.Team != nil && a.Team.LeaderID != nil {
		if leader, err := s.repo.Personnel.GetByID(ctx, *a.Team.LeaderID); err == nil {
			hdr.TeamLeader = leader.FullName()
		}
	}
	return hdr, nil
}

func jsonOrEmpty(raw []byte) datatypes.JSON {
	if len(raw) == 0 {
		return datatypes.JSON([]byte("{}"))
	}
	return datatypes.JSON(raw)
}

func toFormRecordResponse(formType string, id uint, hdr model.FormHeader, createdAt time.Time) *dto.FormRecordResponse {
	return &dto.FormRecordResponse{
		ID:           id,
		FormType:     formType,
		AssignmentID: hdr.AssignmentID,
		WorksiteID:   hdr.WorksiteID,
		CreatedAt:    createdAt.Format("2006-01-02T15:04:05Z"),
	}
}

// ────────────────────── Form 1: 现场评估 ──────────────────────

func (s *assessmentService) CreateSiteAssessment(ctx context.Context, req *dto.SiteAssessmentRequest, editor string) (*dto.FormRecordResponse, error) {
	hdr, err := s.buildHeader(ctx, &req.FormHeaderRequest, editor)
	if err != nil {
		return nil, err
	}

	rec := &model.SiteAssessment{
		FormHeader:         hdr,
		SiteReferenceCode:  req.SiteReferenceCode,
		Region:             req.Region,
		Province:           req.Province,
		Municipality:       req.Municipality,
		Address:            req.Address,
		AccessNotes:        req.AccessNotes,
		SiteType:           req.SiteType,
		NumberOfBuildings:  req.NumberOfBuildings,
		IsProtected:        req.IsProtected,
		HasIntangibleLink:  req.HasIntangibleLink,
		DescriptionDetails: jsonOrEmpty(req.DescriptionDetails),
		HazardData:         jsonOrEmpty(req.HazardData),
	}
	if rec.SiteType == "" {
		rec.SiteType = model.SiteTypeOther
	}
	if rec.IsProtected == "" {
		rec.IsProtected = model.ProtectionUnknown
	}
	if rec.NumberOfBuildings <= 0 {
		rec.NumberOfBuildings = 1
	}

	if err := s.repo.Assessment.CreateSiteAssessment(ctx, rec); err != nil {
		s.logger.Error("保存现场评估失败", zap.Error(err))
		return nil, err
	}
	return toFormRecordResponse("site_assessment", rec.ID, rec.FormHeader, rec.CreatedAt), nil
}

func (s *assessmentService) GetSiteAssessment(ctx context.Context, id uint) (*model.SiteAssessment, error) {
	rec, err := s.repo.Assessment.GetSiteAssessment(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSiteAssessmentNotFound
		}
		return nil, err
	}
	return rec, nil
}

func (s *assessmentService) UpdateSiteAssessment(ctx context.Context, id uint, req *dto.SiteAssessmentRequest) (*dto.FormRecordResponse, error) {
	rec, err := s.GetSiteAssessment(ctx, id)
	if err != nil {
		return nil, err
	}

	rec.SiteReferenceCode = req.SiteReferenceCode
	rec.Region = req.Region
	rec.Province = req.Province
	rec.Municipality = req.Municipality
	rec.Address = req.Address
	rec.AccessNotes = req.AccessNotes
	if req.SiteType != "" {
		rec.SiteType = req.SiteType
	}
	if req.NumberOfBuildings > 0 {
		rec.NumberOfBuildings = req.NumberOfBuildings
	}
	if req.IsProtected != "" {
		rec.IsProtected = req.IsProtected
	}
	rec.HasIntangibleLink = req.HasIntangibleLink
	if len(req.DescriptionDetails) > 0 {
		rec.DescriptionDetails = datatypes.JSON(req.DescriptionDetails)
	}
	if len(req.HazardData) > 0 {
		rec.HazardData = datatypes.JSON(req.HazardData)
	}

	rec.Buildings = nil
	if err := s.repo.Assessment.UpdateSiteAssessment(ctx, rec); err != nil {
		s.logger.Error("更新现场评估失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return toFormRecordResponse("site_assessment", rec.ID, rec.FormHeader, rec.CreatedAt), nil
}

// DeleteSiteAssessment 下属建筑及其损伤/文物随外键级联删除
func (s *assessmentService) DeleteSiteAssessment(ctx context.Context, id uint) error {
	if _, err := s.GetSiteAssessment(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Assessment.DeleteSiteAssessment(ctx, id); err != nil {
		s.logger.Error("删除现场评估失败", zap.Uint("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ────────────────────── Form 2: 建筑清册 ──────────────────────

func (s *assessmentService) CreateBuilding(ctx context.Context, req *dto.BuildingInventoryRequest, editor string) (*dto.FormRecordResponse, error) {
	hdr, err := s.buildHeader(ctx, &req.FormHeaderRequest, editor)
	if err != nil {
		return nil, err
	}

	// 上级现场评估必须存在且属于同一工地
	parent, err := s.repo.Assessment.GetSiteAssessment(ctx, req.SiteAssessmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSiteAssessmentNotFound
		}
		return nil, err
	}
	if parent.WorksiteID != hdr.WorksiteID {
		return nil, ErrFormParentMismatch
	}

	rec := &model.BuildingInventory{
		FormHeader:            hdr,
		SiteAssessmentID:      req.SiteAssessmentID,
		BuildingCode:          req.BuildingCode,
		BuildingName:          req.BuildingName,
		Address:               req.Address,
		SurfaceArea:           req.SurfaceArea,
		AvgHeight:             req.AvgHeight,
		FloorsAbove:           req.FloorsAbove,
		FloorsBelow:           req.FloorsBelow,
		Volume:                req.Volume,
		ConstructionAge:       req.ConstructionAge,
		DescriptionMatrix:     jsonOrEmpty(req.DescriptionMatrix),
		StructuralElements:    jsonOrEmpty(req.StructuralElements),
		NonStructuralElements: jsonOrEmpty(req.NonStructuralElements),
		CulturalElements:      jsonOrEmpty(req.CulturalElements),
	}
	if rec.FloorsAbove <= 0 {
		rec.FloorsAbove = 1
	}

	if err := s.repo.Assessment.CreateBuilding(ctx, rec); err != nil {
		s.logger.Error("保存建筑清册失败", zap.Error(err))
		return nil, err
	}
	return toFormRecordResponse("building_inventory", rec.ID, rec.FormHeader, rec.CreatedAt), nil
}

func (s *assessmentService) GetBuilding(ctx context.Context, id uint) (*model.BuildingInventory, error) {
	rec, err := s.repo.Assessment.GetBuilding(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBuildingNotFound
		}
		return nil, err
	}
	return rec, nil
}

func (s *assessmentService) UpdateBuilding(ctx context.Context, id uint, req *dto.BuildingInventoryRequest) (*dto.FormRecordResponse, error) {
	rec, err := s.GetBuilding(ctx, id)
	if err != nil {
		return nil, err
	}

	rec.BuildingCode = req.BuildingCode
	rec.BuildingName = req.BuildingName
	rec.Address = req.Address
	rec.SurfaceArea = req.SurfaceArea
	rec.AvgHeight = req.AvgHeight
	if req.FloorsAbove > 0 {
		rec.FloorsAbove = req.FloorsAbove
	}
	rec.FloorsBelow = req.FloorsBelow
	rec.Volume = req.Volume
	rec.ConstructionAge = req.ConstructionAge
	if len(req.DescriptionMatrix) > 0 {
		rec.DescriptionMatrix = datatypes.JSON(req.DescriptionMatrix)
	}
	if len(req.StructuralElements) > 0 {
		rec.StructuralElements = datatypes.JSON(req.StructuralElements)
	}
	if len(req.NonStructuralElements) > 0 {
		rec.NonStructuralElements = datatypes.JSON(req.NonStructuralElements)
	}
	if len(req.CulturalElements) > 0 {
		rec.CulturalElements = datatypes.JSON(req.CulturalElements)
	}

	rec.Damages = nil
	rec.Assets = nil
	if err := s.repo.Assessment.UpdateBuilding(ctx, rec); err != nil {
		s.logger.Error("更新建筑清册失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return toFormRecordResponse("building_inventory", rec.ID, rec.FormHeader, rec.CreatedAt), nil
}

func (s *assessmentService) DeleteBuilding(ctx context.Context, id uint) error {
	if _, err := s.GetBuilding(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Assessment.DeleteBuilding(ctx, id); err != nil {
		s.logger.Error("删除建筑清册失败", zap.Uint("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ────────────────────── Form 3: 损伤评估 ──────────────────────

func (s *assessmentService) CreateDamage(ctx context.Context, req *dto.DamageAssessmentRequest, editor string) (*dto.FormRecordResponse, error) {
	hdr, err := s.buildHeader(ctx, &req.FormHeaderRequest, editor)
	if err != nil {
		return nil, err
	}

	building, err := s.repo.Assessment.GetBuilding(ctx, req.BuildingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBuildingNotFound
		}
		return nil, err
	}
	if building.WorksiteID != hdr.WorksiteID {
		return nil, ErrFormParentMismatch
	}

	rec := &model.DamageAssessment{
		FormHeader:          hdr,
		BuildingID:          req.BuildingID,
		HazardType:          req.HazardType,
		OverallDamageLevel:  req.OverallDamageLevel,
		EventDetails:        jsonOrEmpty(req.EventDetails),
		StructuralDamage:    jsonOrEmpty(req.StructuralDamage),
		NonStructuralDamage: jsonOrEmpty(req.NonStructuralDamage),
		InterventionNeeds:   jsonOrEmpty(req.InterventionNeeds),
		Notes:               req.Notes,
	}
	if rec.HazardType == "" {
		rec.HazardType = model.HazardSeismic
	}
	if rec.OverallDamageLevel == "" {
		rec.OverallDamageLevel = model.DamageNone
	}

	if err := s.repo.Assessment.CreateDamage(ctx, rec); err != nil {
		s.logger.Error("保存损伤评估失败", zap.Error(err))
		return nil, err
	}
	return toFormRecordResponse("damage_assessment", rec.ID, rec.FormHeader, rec.CreatedAt), nil
}

func (s *assessmentService) GetDamage(ctx context.Context, id uint) (*model.DamageAssessment, error) {
	rec, err := s.repo.Assessment.GetDamage(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDamageNotFound
		}
		return nil, err
	}
	return rec, nil
}

func (s *assessmentService) UpdateDamage(ctx context.Context, id uint, req *dto.DamageAssessmentRequest) (*dto.FormRecordResponse, error) {
	rec, err := s.GetDamage(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.HazardType != "" {
		rec.HazardType = req.HazardType
	}
	if req.OverallDamageLevel != "" {
		rec.OverallDamageLevel = req.OverallDamageLevel
	}
	rec.Notes = req.Notes
	if len(req.EventDetails) > 0 {
		rec.EventDetails = datatypes.JSON(req.EventDetails)
	}
	if len(req.StructuralDamage) > 0 {
		rec.StructuralDamage = datatypes.JSON(req.StructuralDamage)
	}
	if len(req.NonStructuralDamage) > 0 {
		rec.NonStructuralDamage = datatypes.JSON(req.NonStructuralDamage)
	}
	if len(req.InterventionNeeds) > 0 {
		rec.InterventionNeeds = datatypes.JSON(req.InterventionNeeds)
	}

	rec.Building = nil
	if err := s.repo.Assessment.UpdateDamage(ctx, rec); err != nil {
		s.logger.Error("更新损伤评估失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return toFormRecordResponse("damage_assessment", rec.ID, rec.FormHeader, rec.CreatedAt), nil
}

func (s *assessmentService) DeleteDamage(ctx context.Context, id uint) error {
	if _, err := s.GetDamage(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Assessment.DeleteDamage(ctx, id); err != nil {
		s.logger.Error("删除损伤评估失败", zap.Uint("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ────────────────────── Form 4: 可移动文物 ──────────────────────

func (s *assessmentService) CreateAsset(ctx context.Context, req *dto.MovableHeritageRequest, editor string) (*dto.FormRecordResponse, error) {
	hdr, err := s.buildHeader(ctx, &req.FormHeaderRequest, editor)
	if err != nil {
		return nil, err
	}

	// 挂靠建筑可空；指定时须属于同一工地
	if req.BuildingID != nil {
		building, err := s.repo.Assessment.GetBuilding(ctx, *req.BuildingID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrBuildingNotFound
			}
			return nil, err
		}
		if building.WorksiteID != hdr.WorksiteID {
			return nil, ErrFormParentMismatch
		}
	}

	rec := &model.MovableHeritage{
		FormHeader:      hdr,
		BuildingID:      req.BuildingID,
		ObjectName:      req.ObjectName,
		Category:        req.Category,
		Quantity:        req.Quantity,
		InventoryCode:   req.InventoryCode,
		ConditionReport: jsonOrEmpty(req.ConditionReport),
		RiskFactors:     jsonOrEmpty(req.RiskFactors),
		SalvagePriority: jsonOrEmpty(req.SalvagePriority),
	}
	if rec.Quantity <= 0 {
		rec.Quantity = 1
	}

	if err := s.repo.Assessment.CreateAsset(ctx, rec); err != nil {
		s.logger.Error("保存文物登记失败", zap.Error(err))
		return nil, err
	}
	return toFormRecordResponse("movable_heritage", rec.ID, rec.FormHeader, rec.CreatedAt), nil
}

func (s *assessmentService) GetAsset(ctx context.Context, id uint) (*model.MovableHeritage, error) {
	rec, err := s.repo.Assessment.GetAsset(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssetNotFound
		}
		return nil, err
	}
	return rec, nil
}

func (s *assessmentService) UpdateAsset(ctx context.Context, id uint, req *dto.MovableHeritageRequest) (*dto.FormRecordResponse, error) {
	rec, err := s.GetAsset(ctx, id)
	if err != nil {
		return nil, err
	}

	// 允许改挂建筑；指定时仍须属于同一工地
	if req.BuildingID != nil {
		building, err := s.repo.Assessment.GetBuilding(ctx, *req.BuildingID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrBuildingNotFound
			}
			return nil, err
		}
		if building.WorksiteID != rec.WorksiteID {
			return nil, ErrFormParentMismatch
		}
		rec.BuildingID = req.BuildingID
	}

	rec.ObjectName = req.ObjectName
	rec.Category = req.Category
	rec.InventoryCode = req.InventoryCode
	if req.Quantity > 0 {
		rec.Quantity = req.Quantity
	}
	if len(req.ConditionReport) > 0 {
		rec.ConditionReport = datatypes.JSON(req.ConditionReport)
	}
	if len(req.RiskFactors) > 0 {
		rec.RiskFactors = datatypes.JSON(req.RiskFactors)
	}
	if len(req.SalvagePriority) > 0 {
		rec.SalvagePriority = datatypes.JSON(req.SalvagePriority)
	}

	rec.Movements = nil
	if err := s.repo.Assessment.UpdateAsset(ctx, rec); err != nil {
		s.logger.Error("更新文物登记失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return toFormRecordResponse("movable_heritage", rec.ID, rec.FormHeader, rec.CreatedAt), nil
}

// DeleteAsset 转移记录随外键级联删除
func (s *assessmentService) DeleteAsset(ctx context.Context, id uint) error {
	if _, err := s.GetAsset(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Assessment.DeleteAsset(ctx, id); err != nil {
		s.logger.Error("删除文物登记失败", zap.Uint("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ────────────────────── Form 5: 转移跟踪 ──────────────────────

func (s *assessmentService) CreateTracking(ctx context.Context, req *dto.MovableTrackingRequest, editor string) (*dto.FormRecordResponse, error) {
	hdr, err := s.buildHeader(ctx, &req.FormHeaderRequest, editor)
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.Assessment.GetAsset(ctx, req.AssetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssetNotFound
		}
		return nil, err
	}

	rec := &model.MovableTracking{
		FormHeader:     hdr,
		AssetID:        req.AssetID,
		Origin:         req.Origin,
		Destination:    req.Destination,
		CarrierName:    req.CarrierName,
		PackagingData:  jsonOrEmpty(req.PackagingData),
		TransportData:  jsonOrEmpty(req.TransportData),
		StorageData:    jsonOrEmpty(req.StorageData),
		HandlerContact: req.HandlerContact,
		Notes:          req.Notes,
	}
	if req.TransferDate != "" {
		d, err := time.Parse("2006-01-02", req.TransferDate)
		if err != nil {
			return nil, err
		}
		rec.TransferDate = &d
	}

	if err := s.repo.Assessment.CreateTracking(ctx, rec); err != nil {
		s.logger.Error("保存转移记录失败", zap.Error(err))
		return nil, err
	}
	return toFormRecordResponse("movable_tracking", rec.ID, rec.FormHeader, rec.CreatedAt), nil
}

func (s *assessmentService) GetTracking(ctx context.Context, id uint) (*model.MovableTracking, error) {
	rec, err := s.repo.Assessment.GetTracking(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTrackingNotFound
		}
		return nil, err
	}
	return rec, nil
}

// ────────────────────── Form 6: 非物质文化遗产 ──────────────────────

func (s *assessmentService) CreateIntangible(ctx context.Context, req *dto.IntangibleHeritageRequest, editor string) (*dto.FormRecordResponse, error) {
	hdr, err := s.buildHeader(ctx, &req.FormHeaderRequest, editor)
	if err != nil {
		return nil, err
	}

	rec := &model.IntangibleHeritage{
		FormHeader:       hdr,
		ElementName:      req.ElementName,
		Domain:           req.Domain,
		CommunityContact: req.CommunityContact,
		ElementDetails:   jsonOrEmpty(req.ElementDetails),
		ImpactAssessment: jsonOrEmpty(req.ImpactAssessment),
		SafeguardNeeds:   jsonOrEmpty(req.SafeguardNeeds),
	}

	if err := s.repo.Assessment.CreateIntangible(ctx, rec); err != nil {
		s.logger.Error("保存非遗记录失败", zap.Error(err))
		return nil, err
	}
	return toFormRecordResponse("intangible_heritage", rec.ID, rec.FormHeader, rec.CreatedAt), nil
}

func (s *assessmentService) GetIntangible(ctx context.Context, id uint) (*model.IntangibleHeritage, error) {
	rec, err := s.repo.Assessment.GetIntangible(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrIntangibleNotFound
		}
		return nil, err
	}
	return rec, nil
}

func (s *assessmentService) UpdateIntangible(ctx context.Context, id uint, req *dto.IntangibleHeritageRequest) (*dto.FormRecordResponse, error) {
	rec, err := s.GetIntangible(ctx, id)
	if err != nil {
		return nil, err
	}

	rec.ElementName = req.ElementName
	rec.Domain = req.Domain
	rec.CommunityContact = req.CommunityContact
	if len(req.ElementDetails) > 0 {
		rec.ElementDetails = datatypes.JSON(req.ElementDetails)
	}
	if len(req.ImpactAssessment) > 0 {
		rec.ImpactAssessment = datatypes.JSON(req.ImpactAssessment)
	}
	if len(req.SafeguardNeeds) > 0 {
		rec.SafeguardNeeds = datatypes.JSON(req.SafeguardNeeds)
	}

	if err := s.repo.Assessment.UpdateIntangible(ctx, rec); err != nil {
		s.logger.Error("更新非遗记录失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return toFormRecordResponse("intangible_heritage", rec.ID, rec.FormHeader, rec.CreatedAt), nil
}

func (s *assessmentService) DeleteIntangible(ctx context.Context, id uint) error {
	if _, err := s.GetIntangible(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Assessment.DeleteIntangible(ctx, id); err != nil {
		s.logger.Error("删除非遗记录失败", zap.Uint("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ────────────────────── 工地台账 ──────────────────────

func (s *assessmentService) WorksiteForms(ctx context.Context, worksiteID uint) (*dto.WorksiteFormsResponse, error) {
	ws, err := s.repo.Worksite.GetByID(ctx, worksiteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorksiteNotFound
		}
		return nil, err
	}

	resp := &dto.WorksiteFormsResponse{
		Worksite:        toWorksiteResponse(ws),
		SiteAssessments: []uint{},
		Buildings:       []uint{},
		Damages:         []uint{},
		Assets:          []uint{},
		Trackings:       []uint{},
		Intangibles:     []uint{},
	}

	sites, err := s.repo.Assessment.ListSiteAssessmentsByWorksite(ctx, worksiteID)
	if err != nil {
		return nil, err
	}
	for i := range sites {
		resp.SiteAssessments = append(resp.SiteAssessments, sites[i].ID)
	}

	buildings, err := s.repo.Assessment.ListBuildingsByWorksite(ctx, worksiteID)
	if err != nil {
		return nil, err
	}
	for i := range buildings {
		resp.Buildings = append(resp.Buildings, buildings[i].ID)
	}

	damages, err := s.repo.Assessment.ListDamagesByWorksite(ctx, worksiteID)
	if err != nil {
		return nil, err
	}
	for i := range damages {
		resp.Damages = append(resp.Damages, damages[i].ID)
	}

	assets, err := s.repo.Assessment.ListAssetsByWorksite(ctx, worksiteID)
	if err != nil {
		return nil, err
	}
	for i := range assets {
		resp.Assets = append(resp.Assets, assets[i].ID)
	}

	trackings, err := s.repo.Assessment.ListTrackingsByWorksite(ctx, worksiteID)
	if err != nil {
		return nil, err
	}
	for i := range trackings {
		resp.Trackings = append(resp.Trackings, trackings[i].ID)
	}

	intangibles, err := s.repo.Assessment.ListIntangiblesByWorksite(ctx, worksiteID)
	if err != nil {
		return nil, err
	}
	for i := range intangibles {
		resp.Intangibles = append(resp.Intangibles, intangibles[i].ID)
	}

	return resp, nil
}

// ────────────────────── 派遣工作台 ──────────────────────

// AssignmentDashboard 按「现场评估 → 建筑 → 损伤/文物」层级组装该派遣
// 所在工地的全部表单记录，未挂靠建筑的文物单独列出
func (s *assessmentService) AssignmentDashboard(ctx context.Context, assignmentID uint) (*dto.AssignmentDashboardResponse, error) {
	a, err := s.repo.Assignment.GetByID(ctx, assignmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFormAssignmentNotFound
		}
		s.logger.Error("查询派遣失败", zap.Uint("id", assignmentID), zap.Error(err))
		return nil, err
	}
	ws, err := s.repo.Worksite.GetByID(ctx, a.WorksiteID)
	if err != nil {
		return nil, err
	}

	sites, err := s.repo.Assessment.ListSiteAssessmentsByWorksite(ctx, a.WorksiteID)
	if err != nil {
		return nil, err
	}
	buildings, err := s.repo.Assessment.ListBuildingsByWorksite(ctx, a.WorksiteID)
	if err != nil {
		return nil, err
	}
	damages, err := s.repo.Assessment.ListDamagesByWorksite(ctx, a.WorksiteID)
	if err != nil {
		return nil, err
	}
	assets, err := s.repo.Assessment.ListAssetsByWorksite(ctx, a.WorksiteID)
	if err != nil {
		return nil, err
	}

	damagesByBuilding := make(map[uint][]dto.DashboardDamageNode)
	for i := range damages {
		d := &damages[i]
		damagesByBuilding[d.BuildingID] = append(damagesByBuilding[d.BuildingID], dto.DashboardDamageNode{
			ID:          d.ID,
			HazardType:  d.HazardType,
			DamageLevel: d.OverallDamageLevel,
			ReportedAt:  d.CreatedAt.Format("2006-01-02T15:04:05Z"),
		})
	}

	assetsByBuilding := make(map[uint][]dto.DashboardAssetNode)
	loose := []dto.DashboardAssetNode{}
	for i := range assets {
		rec := &assets[i]
		node := dto.DashboardAssetNode{
			ID:         rec.ID,
			ObjectName: rec.ObjectName,
			Category:   rec.Category,
			Quantity:   rec.Quantity,
		}
		if rec.BuildingID == nil {
			loose = append(loose, node)
			continue
		}
		assetsByBuilding[*rec.BuildingID] = append(assetsByBuilding[*rec.BuildingID], node)
	}

	buildingsBySite := make(map[uint][]dto.DashboardBuildingNode)
	for i := range buildings {
		b := &buildings[i]
		node := dto.DashboardBuildingNode{
			ID:           b.ID,
			BuildingCode: b.BuildingCode,
			BuildingName: b.BuildingName,
			Damages:      damagesByBuilding[b.ID],
			Assets:       assetsByBuilding[b.ID],
		}
		for _, d := range node.Damages {
			if model.DamageSeverityRank(d.DamageLevel) > model.DamageSeverityRank(node.WorstDamage) {
				node.WorstDamage = d.DamageLevel
			}
		}
		buildingsBySite[b.SiteAssessmentID] = append(buildingsBySite[b.SiteAssessmentID], node)
	}

	resp := &dto.AssignmentDashboardResponse{
		Assignment:     toAssignmentResponse(a),
		Worksite:       toWorksiteResponse(ws),
		Sites:          make([]dto.DashboardSiteNode, 0, len(sites)),
		LooseAssets:    loose,
		TotalBuildings: len(buildings),
		TotalDamages:   len(damages),
		TotalAssets:    len(assets),
	}
	for i := range sites {
		site := &sites[i]
		resp.Sites = append(resp.Sites, dto.DashboardSiteNode{
			ID:                site.ID,
			SiteReferenceCode: site.SiteReferenceCode,
			Address:           site.Address,
			SiteType:          site.SiteType,
			CreatedAt:         site.CreatedAt.Format("2006-01-02T15:04:05Z"),
			Buildings:         buildingsBySite[site.ID],
		})
	}
	return resp, nil
}

// [自证通过] internal/service/assessment_service.go
