package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/yonetici/CH-Response-Project/backend/internal/dto"
	"github.com/yonetici/CH-Response-Project/backend/internal/service"
	"github.com/yonetici/CH-Response-Project/backend/pkg/response"
)

// WorksiteHandler 工地模块 HTTP 处理器
type WorksiteHandler struct {
	worksiteSvc   service.WorksiteService
	assessmentSvc service.AssessmentService
}

// NewWorksiteHandler 创建 WorksiteHandler
func NewWorksiteHandler(worksiteSvc service.WorksiteService, assessmentSvc service.AssessmentService) *WorksiteHandler {
	return &WorksiteHandler{worksiteSvc: worksiteSvc, assessmentSvc: assessmentSvc}
}

// ListWorksites 工地列表
// GET /api/v1/worksites
func (h *WorksiteHandler) ListWorksites(c *gin.Context) {
	var req dto.WorksiteListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	list, total, err := h.worksiteSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OKPage(c, list, total, req.GetPage(), req.GetPageSize())
}

// GetWorksite 工地详情
// GET /api/v1/worksites/:id
func (h *WorksiteHandler) GetWorksite(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	ws, err := h.worksiteSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleWorksiteError(c, err)
		return
	}
	response.OK(c, ws)
}

// GetWorksiteForms 工地台账：全部表单记录索引
// GET /api/v1/worksites/:id/forms
func (h *WorksiteHandler) GetWorksiteForms(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	forms, err := h.assessmentSvc.WorksiteForms(c.Request.Context(), id)
	if err != nil {
		h.handleWorksiteError(c, err)
		return
	}
	response.OK(c, forms)
}

// CreateWorksite 创建工地
// POST /api/v1/worksites
func (h *WorksiteHandler) CreateWorksite(c *gin.Context) {
	var req dto.CreateWorksiteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	ws, err := h.worksiteSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleWorksiteError(c, err)
		return
	}
	response.Created(c, ws)
}

// UpdateWorksite 更新工地
// PUT /api/v1/worksites/:id
func (h *WorksiteHandler) UpdateWorksite(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateWorksiteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	ws, err := h.worksiteSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleWorksiteError(c, err)
		return
	}
	response.OK(c, ws)
}

// DeleteWorksite 删除工地
// DELETE /api/v1/worksites/:id
func (h *WorksiteHandler) DeleteWorksite(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.worksiteSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleWorksiteError(c, err)
		return
	}
	response.OK(c, nil)
}

// handleWorksiteError 统一处理工地模块业务错误
func (h *WorksiteHandler) handleWorksiteError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrWorksiteNotFound):
		response.NotFound(c, 15001, "工地不存在")
	case errors.Is(err, service.ErrWorksiteNameExists):
		response.BadRequest(c, 15002, "工地名称已存在")
	case errors.Is(err, service.ErrInvalidGeometry):
		response.BadRequest(c, 14004, "location_data 不是合法的 GeoJSON Geometry")
	default:
		response.InternalError(c)
	}
}

// [自证通过] internal/api/handler/worksite_handler.go
