package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/yonetici/CH-Response-Project/backend/internal/model"
)

// AssessmentRepository 六类评估表单数据访问接口
type AssessmentRepository interface {
	CreateSiteAssessment(ctx context.Context, rec *model.SiteAssessment) error
	GetSiteAssessment(ctx context.Context, id uint) (*model.SiteAssessment, error)
	ListSiteAssessmentsByWorksite(ctx context.Context, worksiteID uint) ([]model.SiteAssessment, error)
	UpdateSiteAssessment(ctx context.Context, rec *model.SiteAssessment) error
	DeleteSiteAssessment(ctx context.Context, id uint) error

	CreateBuilding(ctx context.Context, rec *model.BuildingInventory) error
	GetBuilding(ctx context.Context, id uint) (*model.BuildingInventory, error)
	ListBuildingsByWorksite(ctx context.Context, worksiteID uint) ([]model.BuildingInventory, error)
	UpdateBuilding(ctx context.Context, rec *model.BuildingInventory) error
	DeleteBuilding(ctx context.Context, id uint) error

	CreateDamage(ctx context.Context, rec *model.DamageAssessment) error
	GetDamage(ctx context.Context, id uint) (*model.DamageAssessment, error)
	ListDamagesByWorksite(ctx context.Context, worksiteID uint) ([]model.DamageAssessment, error)
	ListAllDamages(ctx context.Context) ([]model.DamageAssessment, error)
	UpdateDamage(ctx context.Context, rec *model.DamageAssessment) error
	DeleteDamage(ctx context.Context, id uint) error

	CreateAsset(ctx context.Context, rec *model.MovableHeritage) error
	GetAsset(ctx context.Context, id uint) (*model.MovableHeritage, error)
	ListAssetsByWorksite(ctx context.Context, worksiteID uint) ([]model.MovableHeritage, error)
	UpdateAsset(ctx context.Context, rec *model.MovableHeritage) error
	DeleteAsset(ctx context.Context, id uint) error

	CreateTracking(ctx context.Context, rec *model.MovableTracking) error
	GetTracking(ctx context.Context, id uint) (*model.MovableTracking, error)
	ListTrackingsByWorksite(ctx context.Context, worksiteID uint) ([]model.MovableTracking, error)

	CreateIntangible(ctx context.Context, rec *model.IntangibleHeritage) error
	GetIntangible(ctx context.Context, id uint) (*model.IntangibleHeritage, error)
	ListIntangiblesByWorksite(ctx context.Context, worksiteID uint) ([]model.IntangibleHeritage, error)
	UpdateIntangible(ctx context.Context, rec *model.IntangibleHeritage) error
	DeleteIntangible(ctx context.Context, id uint) error
}

// assessmentRepo AssessmentRepository 的 GORM 实现
type assessmentRepo struct {
	db *gorm.DB
}

// NewAssessmentRepo 创建 AssessmentRepository 实例
func NewAssessmentRepo(db *gorm.DB) AssessmentRepository {
	return &assessmentRepo{db: db}
}

// ── Form 1: SiteAssessment ──

func (r *assessmentRepo) CreateSiteAssessment(ctx context.Context, rec *model.SiteAssessment) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *assessmentRepo) GetSiteAssessment(ctx context.Context, id uint) (*model.SiteAssessment, error) {
	var rec model.SiteAssessment
	err := r.db.WithContext(ctx).
		Preload("Buildings").
		First(&rec, id).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *assessmentRepo) ListSiteAssessmentsByWorksite(ctx context.Context, worksiteID uint) ([]model.SiteAssessment, error) {
	var list []model.SiteAssessment
	err := r.db.WithContext(ctx).
		Where("worksite_id = ?", worksiteID).
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}

func (r *assessmentRepo) UpdateSiteAssessment(ctx context.Context, rec *model.SiteAssessment) error {
	return r.db.WithContext(ctx).Save(rec).Error
}

// DeleteSiteAssessment 级联删除由外键 ON DELETE CASCADE 完成（下属建筑一并删除）
func (r *assessmentRepo) DeleteSiteAssessment(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.SiteAssessment{}, id).Error
}

// ── Form 2: BuildingInventory ──

func (r *assessmentRepo) CreateBuilding(ctx context.Context, rec *model.BuildingInventory) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *assessmentRepo) GetBuilding(ctx context.Context, id uint) (*model.BuildingInventory, error) {
	var rec model.BuildingInventory
	err := r.db.WithContext(ctx).
		Preload("Damages").
		Preload("Assets").
		First(&rec, id).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *assessmentRepo) ListBuildingsByWorksite(ctx context.Context, worksiteID uint) ([]model.BuildingInventory, error) {
	var list []model.BuildingInventory
	err := r.db.WithContext(ctx).
		Where("worksite_id = ?", worksiteID).
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}

func (r *assessmentRepo) UpdateBuilding(ctx context.Context, rec *model.BuildingInventory) error {
	return r.db.WithContext(ctx).Save(rec).Error
}

func (r *assessmentRepo) DeleteBuilding(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.BuildingInventory{}, id).Error
}

// ── Form 3: DamageAssessment ──

func (r *assessmentRepo) CreateDamage(ctx context.Context, rec *model.DamageAssessment) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *assessmentRepo) GetDamage(ctx context.Context, id uint) (*model.DamageAssessment, error) {
	var rec model.DamageAssessment
	err := r.db.WithContext(ctx).
		Preload("Building").
		First(&rec, id).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *assessmentRepo) ListDamagesByWorksite(ctx context.Context, worksiteID uint) ([]model.DamageAssessment, error) {
	var list []model.DamageAssessment
	err := r.db.WithContext(ctx).
		Preload("Assignment.Team").
		Where("worksite_id = ?", worksiteID).
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}

// ListAllDamages 全量损伤记录 + 所属派遣团队，供损伤态势图层一次取齐
func (r *assessmentRepo) ListAllDamages(ctx context.Context) ([]model.DamageAssessment, error) {
	var list []model.DamageAssessment
	err := r.db.WithContext(ctx).
		Preload("Assignment.Team").
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}

func (r *assessmentRepo) UpdateDamage(ctx context.Context, rec *model.DamageAssessment) error {
	return r.db.WithContext(ctx).Save(rec).Error
}

func (r *assessmentRepo) DeleteDamage(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.DamageAssessment{}, id).Error
}

// ── Form 4: MovableHeritage ──

func (r *assessmentRepo) CreateAsset(ctx context.Context, rec *model.MovableHeritage) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *assessmentRepo) GetAsset(ctx context.Context, id uint) (*model.MovableHeritage, error) {
	var rec model.MovableHeritage
	err := r.db.WithContext(ctx).
		Preload("Movements").
		First(&rec, id).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *assessmentRepo) ListAssetsByWorksite(ctx context.Context, worksiteID uint) ([]model.MovableHeritage, error) {
	var list []model.MovableHeritage
	err := r.db.WithContext(ctx).
		Where("worksite_id = ?", worksiteID).
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}

func (r *assessmentRepo) UpdateAsset(ctx context.Context, rec *model.MovableHeritage) error {
	return r.db.WithContext(ctx).Save(rec).Error
}

// DeleteAsset 文物的转移记录随外键级联删除
func (r *assessmentRepo) DeleteAsset(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.MovableHeritage{}, id).Error
}

// ── Form 5: MovableTracking ──

func (r *assessmentRepo) CreateTracking(ctx context.Context, rec *model.MovableTracking) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *assessmentRepo) GetTracking(ctx context.Context, id uint) (*model.MovableTracking, error) {
	var rec model.MovableTracking
	err := r.db.WithContext(ctx).First(&rec, id).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *assessmentRepo) ListTrackingsByWorksite(ctx context.Context, worksiteID uint) ([]model.MovableTracking, error) {
	var list []model.MovableTracking
	err := r.db.WithContext(ctx).
		Where("worksite_id = ?", worksiteID).
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}

// ── Form 6: IntangibleHeritage ──

func (r *assessmentRepo) CreateIntangible(ctx context.Context, rec *model.IntangibleHeritage) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *assessmentRepo) GetIntangible(ctx context.Context, id uint) (*model.IntangibleHeritage, error) {
	var rec model.IntangibleHeritage
	if err := r.db.WithContext(ctx).First(&rec, id).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *assessmentRepo) ListIntangiblesByWorksite(ctx context.Context, worksiteID uint) ([]model.IntangibleHeritage, error) {
	var list []model.IntangibleHeritage
	err := r.db.WithContext(ctx).
		Where("worksite_id = ?", worksiteID).
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}

func (r *assessmentRepo) UpdateIntangible(ctx context.Context, rec *model.IntangibleHeritage) error {
	return r.db.WithContext(ctx).Save(rec).Error
}

func (r *assessmentRepo) DeleteIntangible(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.IntangibleHeritage{}, id).Error
}

// [自证通过] internal/repository/assessment_repo.go
