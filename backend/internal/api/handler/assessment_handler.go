package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/yonetici/CH-Response-Project/backend/internal/dto"
	"github.com/yonetici/CH-Response-Project/backend/internal/service"
	"github.com/yonetici/CH-Response-Project/backend/pkg/response"
)

// AssessmentHandler 评估表单模块 HTTP 处理器
type AssessmentHandler struct {
	assessmentSvc service.AssessmentService
}

// NewAssessmentHandler 创建 AssessmentHandler
func NewAssessmentHandler(assessmentSvc service.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{assessmentSvc: assessmentSvc}
}

// ── Form 1: 现场评估 ──

// CreateSiteAssessment 提交现场评估表单
// POST /api/v1/forms/site-assessments
func (h *AssessmentHandler) CreateSiteAssessment(c *gin.Context) {
	var req dto.SiteAssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	rec, err := h.assessmentSvc.CreateSiteAssessment(c.Request.Context(), &req, GetDisplayName(c))
	if err != nil {
		h.handleAssessmentError(c, err)
		return
	}
	response.Created(c, rec)
}

// GetSiteAssessment 现场评估详情
// GET /api/v1/forms/site-assessments/:id
func (h *AssessmentHandler) GetSiteAssessment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	rec, err := h.assessmentSvc.GetSiteAssessment(c.Request.Context(), id)
	if err != nil {
		h.handleAssessmentError(c, err)
		return
	}
	response.OK(c, rec)
}

// UpdateSiteAssessment 更新现场评估
// PUT /api/v1/forms/site-assessments/:id
func (h *AssessmentHandler) UpdateSiteAssessment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.SiteAssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	rec, err := h.assessmentSvc.UpdateSiteAssessment(c.Request.Context(), id, &req)
	if err != nil {
		h.handleAssessmentError(c, err)
		return
	}
	response.OK(c, rec)
}

// DeleteSiteAssessment 删除现场评估（下属建筑级联删除）
// DELETE /api/v1/forms/site-assessments/:id
func (h *AssessmentHandler) DeleteSiteAssessment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.assessmentSvc.DeleteSiteAssessment(c.Request.Context(), id); err != nil {
		h.handleAssessmentError(c, err)
		return
	}
	response.OK(c, nil)
}

// ── Form 2: 建筑清册 ──

// CreateBuilding 提交建筑清册表单
// POST /api/v1/forms/buildings
func (h *AssessmentHandler) CreateBuilding(c *gin.Context) {
	var req dto.BuildingInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	rec, err := h.assessmentSvc.CreateBuilding(c.Request.Context(), &req, GetDisplayName(c))
	if err != nil {
		h.handleAssessmentError(c, err)
		return
	}
	response.Created(c, rec)
}

// GetBuilding 建筑详情
// GET /api/v1/forms/buildings/:id
func (h *AssessmentHandler) GetBuilding(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	rec, err := h.assessmentSvc.GetBuilding(c.Request.Context(), id)
	if err != nil {
		h.handleAssessmentError(c, err)
		return
	}
	response.OK(c, rec)
}

// UpdateBuilding 更新建筑清册
// PUT /api/v1/forms/buildings/:id
func (h *AssessmentHandler) UpdateBuilding(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.BuildingInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	rec, err := h.assessmentSvc.UpdateBuilding(c.Request.Context(), id, &req)
	if err != nil {
		h.handleAssessmentError(c, err)
		return
	}
	response.OK(c, rec)
}

// DeleteBuilding 删除建筑（损伤与文物级联删除）
// DELETE /api/v1/forms/buildings/:id
func (h *AssessmentHandler) DeleteBuilding(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.assessmentSvc.DeleteBuilding(c.Request.Context(), id); err != nil {
		h.handleAssessmentError(c, err)
		return
	}
	response.OK(c, nil)
}

// ── Form 3: 损伤评估 ──

// CreateDamage 提交损伤评估表单
// POST /api/v1/forms/damages
func (h *AssessmentHandler) CreateDamage(c *gin.Context) {
	var req dto.DamageAssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	rec, err := h.assessmentSvc.CreateDamage(c.Request.Context(), &req, GetDisplayName(c))
	if err != nil {
		h.handleAssessmentError(c, err)
		return
	}
	response.Created(c, rec)
}

// GetDamage 损伤详情
// GET /api/v1/forms/damages/:id
func (h *AssessmentHandler) GetDamage(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	rec, err := h.assessmentSvc.GetDamage(c.Request.Context(), id)
	if err != nil {
		h.handleAssessmentError(c, err)
		return
	}
	response.OK(c, rec)
}

// UpdateDamage 更新损伤评估
// PUT /api/v1/forms/damages/:id
func (h *AssessmentHandler) UpdateDamage(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.DamageAssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	rec, err := h.assessmentSvc.UpdateDamage(c.Request.Context(), id, &req)
	if err != nil {
		h.handleAssessmentError(c, err)
		return
	}
	response.OK(c, rec)
}

// DeleteDamage 删除损伤评估
// DELETE /api/v1/forms/damages/:id
func (h *AssessmentHandler) DeleteDamage(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.assessmentSvc.DeleteDamage(c.Request.Context(), id); err != nil {
		h.handleAssessmentError(c, err)
		return
	}
	response.OK(c, nil)
}

// ── Form 4: 可移动文物 ──

// CreateAsset 提交文物登记表单
// POST /api/v1/forms/assets
func (h *AssessmentHandler) CreateAsset(c *gin.Context) {
	var req dto.MovableHeritageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	rec, err := h.assessmentSvc.CreateAsset(c.Request.Context(), &req, GetDisplayName(c))
	if err != nil {
		h.handleAssessmentError(c, err)
		return
	}
	response.Created(c, rec)
}

// GetAsset 文物详情（含转移历史）
// GET /api/v1/forms/assets/:id
func (h *AssessmentHandler) GetAsset(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	rec, err := h.assessmentSvc.GetAsset(c.Request.Context(), id)
	if err != nil {
		h.handleAssessmentError(c, err)
		return
	}
	response.OK(c, rec)
}

// UpdateAsset 更新文物登记
// PUT /api/v1/forms/assets/:id
func (h *AssessmentHandler) UpdateAsset(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.MovableHeritageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	rec, err := h.assessmentSvc.UpdateAsset(c.Request.Context(), id, &req)
	if err != nil {
		h.handleAssessmentError(c, err)
		return
	}
	response.OK(c, rec)
}

// DeleteAsset 删除文物登记（转移记录级联删除）
// DELETE /api/v1/forms/assets/:id
func (h *AssessmentHandler) DeleteAsset(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.assessmentSvc.DeleteAsset(c.Request.Context(), id); err != nil {
		h.handleAssessmentError(c, err)
		return
	}
	response.OK(c, nil)
}

// ── Form 5: 转移跟踪 ──

// CreateTracking 提交转移跟踪表单
// POST /api/v1/forms/trackings
func (h *AssessmentHandler) CreateTracking(c *gin.Context) {
	var req dto.MovableTrackingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	rec, err := h.assessmentSvc.CreateTracking(c.Request.Context(), &req, GetDisplayName(c))
	if err != nil {
		h.handleAssessmentError(c, err)
		return
	}
	response.Created(c, rec)
}

// GetTracking 转移记录详情
// GET /api/v1/forms/trackings/:id
func (h *AssessmentHandler) GetTracking(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	rec, err := h.assessmentSvc.GetTracking(c.Request.Context(), id)
	if err != nil {
		h.handleAssessmentError(c, err)
		return
	}
	response.OK(c, rec)
}

// ── Form 6: 非物质文化遗产 ──

// CreateIntangible 提交非遗表单
// POST /api/v1/forms/intangibles
func (h *AssessmentHandler) CreateIntangible(c *gin.Context) {
	var req dto.IntangibleHeritageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	rec, err := h.assessmentSvc.CreateIntangible(c.Request.Context(), &req, GetDisplayName(c))
	if err != nil {
		h.handleAssessmentError(c, err)
		return
	}
	response.Created(c, rec)
}

// GetIntangible 非遗详情
// GET /api/v1/forms/intangibles/:id
func (h *AssessmentHandler) GetIntangible(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	rec, err := h.assessmentSvc.GetIntangible(c.Request.Context(), id)
	if err != nil {
		h.handleAssessmentError(c, err)
		return
	}
	response.OK(c, rec)
}

// UpdateIntangible 更新非遗记录
// PUT /api/v1/forms/intangibles/:id
func (h *AssessmentHandler) UpdateIntangible(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.IntangibleHeritageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	rec, err := h.assessmentSvc.UpdateIntangible(c.Request.Context(), id, &req)
	if err != nil {
		h.handleAssessmentError(c, err)
		return
	}
	response.OK(c, rec)
}

// DeleteIntangible 删除非遗记录
// DELETE /api/v1/forms/intangibles/:id
func (h *AssessmentHandler) DeleteIntangible(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.assessmentSvc.DeleteIntangible(c.Request.Context(), id); err != nil {
		h.handleAssessmentError(c, err)
		return
	}
	response.OK(c, nil)
}

// ── 派遣工作台 ──

// AssignmentDashboard 派遣工作台：工地表单层级视图
// GET /api/v1/assignments/:id/dashboard
func (h *AssessmentHandler) AssignmentDashboard(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	resp, err := h.assessmentSvc.AssignmentDashboard(c.Request.Context(), id)
	if err != nil {
		h.handleAssessmentError(c, err)
		return
	}
	response.OK(c, resp)
}

// handleAssessmentError 统一处理评估表单模块业务错误
func (h *AssessmentHandler) handleAssessmentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrFormAssignmentNotFound):
		response.NotFound(c, 17001, "表单所属派遣不存在")
	case errors.Is(err, service.ErrFormWorksiteMismatch):
		response.BadRequest(c, 17002, "派遣与工地不匹配")
	case errors.Is(err, service.ErrSiteAssessmentNotFound):
		response.NotFound(c, 17003, "现场评估记录不存在")
	case errors.Is(err, service.ErrBuildingNotFound):
		response.NotFound(c, 17004, "建筑记录不存在")
	case errors.Is(err, service.ErrDamageNotFound):
		response.NotFound(c, 17005, "损伤记录不存在")
	case errors.Is(err, service.ErrAssetNotFound):
		response.NotFound(c, 17006, "文物记录不存在")
	case errors.Is(err, service.ErrTrackingNotFound):
		response.NotFound(c, 17007, "转移记录不存在")
	case errors.Is(err, service.ErrIntangibleNotFound):
		response.NotFound(c, 17008, "非遗记录不存在")
	case errors.Is(err, service.ErrFormParentMismatch):
		response.BadRequest(c, 17009, "上级记录不属于同一工地")
	case errors.Is(err, service.ErrWorksiteNotFound):
		response.NotFound(c, 15001, "工地不存在")
	default:
		response.InternalError(c)
	}
}

// [自证通过] internal/api/handler/assessment_handler.go
