package service

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/yonetici/CH-Response-Project/backend/internal/model"
	"github.com/yonetici/CH-Response-Project/backend/internal/repository"
)

// ── Mock LookupRepository ──

type mockLookupRepo struct {
	countries    map[uint]*model.Country
	institutions map[uint]*model.Institution
	jobTitles    map[uint]*model.JobTitle
	expertises   map[uint]*model.ExpertiseType
	nextID       uint
}

func newMockLookupRepo() *mockLookupRepo {
	return &mockLookupRepo{
		countries:    make(map[uint]*model.Country),
		institutions: make(map[uint]*model.Institution),
		jobTitles:    make(map[uint]*model.JobTitle),
		expertises:   make(map[uint]*model.ExpertiseType),
	}
}

func (m *mockLookupRepo) nid() uint {
	m.nextID++
	return m.nextID
}

func (m *mockLookupRepo) GetCountryByID(_ context.Context, id uint) (*model.Country, error) {
	if c, ok := m.countries[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockLookupRepo) GetOrCreateCountry(_ context.Context, name string) (*model.Country, error) {
	for _, c := range m.countries {
		if strings.EqualFold(c.Name, name) {
			return c, nil
		}
	}
	c := &model.Country{BaseModel: model.BaseModel{ID: m.nid()}, Name: name}
	m.countries[c.ID] = c
	return c, nil
}

func (m *mockLookupRepo) ListCountries(_ context.Context) ([]model.Country, error) {
	var result []model.Country
	for _, c := range m.countries {
		result = append(result, *c)
	}
	return result, nil
}

func (m *mockLookupRepo) GetInstitutionByID(_ context.Context, id uint) (*model.Institution, error) {
	if inst, ok := m.institutions[id]; ok {
		return inst, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockLookupRepo) GetOrCreateInstitution(_ context.Context, name string) (*model.Institution, error) {
	for _, inst := range m.institutions {
		if strings.EqualFold(inst.Name, name) {
			return inst, nil
		}
	}
	inst := &model.Institution{BaseModel: model.BaseModel{ID: m.nid()}, Name: name}
	m.institutions[inst.ID] = inst
	return inst, nil
}

func (m *mockLookupRepo) GetJobTitleByID(_ context.Context, id uint) (*model.JobTitle, error) {
	if jt, ok := m.jobTitles[id]; ok {
		return jt, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockLookupRepo) GetOrCreateJobTitle(_ context.Context, name string) (*model.JobTitle, error) {
	for _, jt := range m.jobTitles {
		if strings.EqualFold(jt.Title, name) {
			return jt, nil
		}
	}
	jt := &model.JobTitle{BaseModel: model.BaseModel{ID: m.nid()}, Title: name}
	m.jobTitles[jt.ID] = jt
	return jt, nil
}

func (m *mockLookupRepo) GetExpertiseByID(_ context.Context, id uint) (*model.ExpertiseType, error) {
	if e, ok := m.expertises[id]; ok {
		return e, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockLookupRepo) GetOrCreateExpertise(_ context.Context, name string) (*model.ExpertiseType, error) {
	for _, e := range m.expertises {
		if strings.EqualFold(e.Code, name) {
			return e, nil
		}
	}
	e := &model.ExpertiseType{BaseModel: model.BaseModel{ID: m.nid()}, Code: name, Description: name}
	m.expertises[e.ID] = e
	return e, nil
}

// ── Mock PersonnelRepository ──

type mockPersonnelRepo struct {
	people map[uint]*model.Personnel
	nextID uint
}

func newMockPersonnelRepo() *mockPersonnelRepo {
	return &mockPersonnelRepo{people: make(map[uint]*model.Personnel)}
}

func (m *mockPersonnelRepo) Create(_ context.Context, p *model.Personnel) error {
	if p.ID == 0 {
		m.nextID++
		p.ID = m.nextID
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	m.people[p.ID] = p
	return nil
}

func (m *mockPersonnelRepo) GetByID(_ context.Context, id uint) (*model.Personnel, error) {
	if p, ok := m.people[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockPersonnelRepo) GetByEmail(_ context.Context, email string) (*model.Personnel, error) {
	for _, p := range m.people {
		if strings.EqualFold(p.Email, email) {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockPersonnelRepo) List(_ context.Context, filter repository.PersonnelFilter) ([]model.Personnel, int64, error) {
	var result []model.Personnel
	for _, p := range m.people {
		if filter.TeamID != nil && (p.TeamID == nil || *p.TeamID != *filter.TeamID) {
			continue
		}
		if filter.SQType != "" && p.SQType != filter.SQType {
			continue
		}
		result = append(result, *p)
	}
	return result, int64(len(result)), nil
}

func (m *mockPersonnelRepo) Update(_ context.Context, p *model.Personnel) error {
	if _, ok := m.people[p.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.people[p.ID] = p
	return nil
}

func (m *mockPersonnelRepo) Delete(_ context.Context, id uint) error {
	delete(m.people, id)
	return nil
}

func (m *mockPersonnelRepo) ReplaceJobTitles(_ context.Context, p *model.Personnel, titles []model.JobTitle) error {
	p.JobTitles = titles
	if stored, ok := m.people[p.ID]; ok {
		stored.JobTitles = titles
	}
	return nil
}

func (m *mockPersonnelRepo) AppendJobTitle(_ context.Context, p *model.Personnel, title *model.JobTitle) error {
	p.JobTitles = append(p.JobTitles, *title)
	if stored, ok := m.people[p.ID]; ok && stored != p {
		stored.JobTitles = p.JobTitles
	}
	return nil
}

func (m *mockPersonnelRepo) SetTeam(_ context.Context, personnelIDs []uint, teamID *uint) error {
	for _, id := range personnelIDs {
		if p, ok := m.people[id]; ok {
			p.TeamID = teamID
		}
	}
	return nil
}

func (m *mockPersonnelRepo) DetachFromTeamExcept(_ context.Context, teamID uint, keepIDs []uint) error {
	keep := make(map[uint]bool, len(keepIDs))
	for _, id := range keepIDs {
		keep[id] = true
	}
	for _, p := range m.people {
		if p.TeamID != nil && *p.TeamID == teamID && !keep[p.ID] {
			p.TeamID = nil
		}
	}
	return nil
}

func (m *mockPersonnelRepo) ListByTeam(_ context.Context, teamID uint) ([]model.Personnel, error) {
	var result []model.Personnel
	for _, p := range m.people {
		if p.TeamID != nil && *p.TeamID == teamID {
			result = append(result, *p)
		}
	}
	return result, nil
}

func (m *mockPersonnelRepo) ListUnassigned(_ context.Context) ([]model.Personnel, error) {
	var result []model.Personnel
	for _, p := range m.people {
		if p.TeamID == nil {
			result = append(result, *p)
		}
	}
	return result, nil
}

// ── Mock TeamRepository ──

type mockTeamRepo struct {
	teams  map[uint]*model.Team
	nextID uint
}

func newMockTeamRepo() *mockTeamRepo {
	return &mockTeamRepo{teams: make(map[uint]*model.Team)}
}

func (m *mockTeamRepo) Create(_ context.Context, team *model.Team) error {
	if team.ID == 0 {
		m.nextID++
		team.ID = m.nextID
	}
	m.teams[team.ID] = team
	return nil
}

func (m *mockTeamRepo) GetByID(_ context.Context, id uint) (*model.Team, error) {
	if t, ok := m.teams[id]; ok {
		return t, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTeamRepo) GetByName(_ context.Context, name string) (*model.Team, error) {
	for _, t := range m.teams {
		if strings.EqualFold(t.Name, name) {
			return t, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTeamRepo) List(_ context.Context) ([]model.Team, error) {
	var result []model.Team
	for _, t := range m.teams {
		result = append(result, *t)
	}
	return result, nil
}

func (m *mockTeamRepo) Update(_ context.Context, team *model.Team) error {
	if _, ok := m.teams[team.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.teams[team.ID] = team
	return nil
}

func (m *mockTeamRepo) Delete(_ context.Context, id uint) error {
	delete(m.teams, id)
	return nil
}

func (m *mockTeamRepo) SetLeader(_ context.Context, teamID uint, leaderID *uint) error {
	t, ok := m.teams[teamID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	t.LeaderID = leaderID
	t.Leader = nil
	return nil
}

// ── Mock SectorRepository ──

type mockSectorRepo struct {
	sectors       map[uint]*model.Sector
	worksiteCount map[uint]int64
	nextID        uint
}

func newMockSectorRepo() *mockSectorRepo {
	return &mockSectorRepo{
		sectors:       make(map[uint]*model.Sector),
		worksiteCount: make(map[uint]int64),
	}
}

func (m *mockSectorRepo) Create(_ context.Context, sector *model.Sector) error {
	if sector.ID == 0 {
		m.nextID++
		sector.ID = m.nextID
	}
	m.sectors[sector.ID] = sector
	return nil
}

func (m *mockSectorRepo) GetByID(_ context.Context, id uint) (*model.Sector, error) {
	if s, ok := m.sectors[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSectorRepo) GetByName(_ context.Context, name string) (*model.Sector, error) {
	for _, s := range m.sectors {
		if strings.EqualFold(s.Name, name) {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSectorRepo) List(_ context.Context) ([]model.Sector, error) {
	var result []model.Sector
	for _, s := range m.sectors {
		result = append(result, *s)
	}
	return result, nil
}

func (m *mockSectorRepo) Update(_ context.Context, sector *model.Sector) error {
	if _, ok := m.sectors[sector.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.sectors[sector.ID] = sector
	return nil
}

func (m *mockSectorRepo) Delete(_ context.Context, id uint) error {
	delete(m.sectors, id)
	return nil
}

func (m *mockSectorRepo) CountWorksites(_ context.Context, sectorID uint) (int64, error) {
	return m.worksiteCount[sectorID], nil
}

// ── Mock WorksiteRepository ──

type mockWorksiteRepo struct {
	worksites map[uint]*model.Worksite
	nextID    uint
}

func newMockWorksiteRepo() *mockWorksiteRepo {
	return &mockWorksiteRepo{worksites: make(map[uint]*model.Worksite)}
}

func (m *mockWorksiteRepo) Create(_ context.Context, ws *model.Worksite) error {
	if ws.ID == 0 {
		m.nextID++
		ws.ID = m.nextID
	}
	m.worksites[ws.ID] = ws
	return nil
}

func (m *mockWorksiteRepo) GetByID(_ context.Context, id uint) (*model.Worksite, error) {
	if ws, ok := m.worksites[id]; ok {
		return ws, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockWorksiteRepo) GetByName(_ context.Context, name string) (*model.Worksite, error) {
	for _, ws := range m.worksites {
		if strings.EqualFold(ws.Name, name) {
			return ws, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockWorksiteRepo) List(_ context.Context, filter repository.WorksiteFilter) ([]model.Worksite, int64, error) {
	var result []model.Worksite
	for _, ws := range m.worksites {
		if filter.SectorID != nil && (ws.SectorID == nil || *ws.SectorID != *filter.SectorID) {
			continue
		}
		if filter.Status != "" && ws.Status != filter.Status {
			continue
		}
		result = append(result, *ws)
	}
	return result, int64(len(result)), nil
}

func (m *mockWorksiteRepo) ListAllWithAssignments(_ context.Context) ([]model.Worksite, error) {
	var result []model.Worksite
	for _, ws := range m.worksites {
		result = append(result, *ws)
	}
	return result, nil
}

func (m *mockWorksiteRepo) Update(_ context.Context, ws *model.Worksite) error {
	if _, ok := m.worksites[ws.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.worksites[ws.ID] = ws
	return nil
}

func (m *mockWorksiteRepo) Delete(_ context.Context, id uint) error {
	delete(m.worksites, id)
	return nil
}

// ── Mock AssignmentRepository ──

type mockAssignmentRepo struct {
	assignments map[uint]*model.Assignment
	nextID      uint
}

func newMockAssignmentRepo() *mockAssignmentRepo {
	return &mockAssignmentRepo{assignments: make(map[uint]*model.Assignment)}
}

func (m *mockAssignmentRepo) Create(_ context.Context, a *model.Assignment) error {
	if a.ID == 0 {
		m.nextID++
		a.ID = m.nextID
	}
	m.assignments[a.ID] = a
	return nil
}

func (m *mockAssignmentRepo) GetByID(_ context.Context, id uint) (*model.Assignment, error) {
	if a, ok := m.assignments[id]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAssignmentRepo) List(_ context.Context, filter repository.AssignmentFilter) ([]model.Assignment, int64, error) {
	var result []model.Assignment
	for _, a := range m.assignments {
		if filter.TeamID != nil && a.TeamID != *filter.TeamID {
			continue
		}
		if filter.WorksiteID != nil && a.WorksiteID != *filter.WorksiteID {
			continue
		}
		if filter.Status != "" && a.Status != filter.Status {
			continue
		}
		result = append(result, *a)
	}
	return result, int64(len(result)), nil
}

func (m *mockAssignmentRepo) Update(_ context.Context, a *model.Assignment) error {
	if _, ok := m.assignments[a.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.assignments[a.ID] = a
	return nil
}

func (m *mockAssignmentRepo) Delete(_ context.Context, id uint) error {
	delete(m.assignments, id)
	return nil
}

func (m *mockAssignmentRepo) GetActiveByWorksite(_ context.Context, worksiteID uint) (*model.Assignment, error) {
	for _, a := range m.assignments {
		if a.WorksiteID == worksiteID && a.Status == model.AssignmentStatusActive {
			return a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAssignmentRepo) CountActiveByTeam(_ context.Context, teamID uint) (int64, error) {
	var count int64
	for _, a := range m.assignments {
		if a.TeamID == teamID && a.Status == model.AssignmentStatusActive {
			count++
		}
	}
	return count, nil
}

// ── Mock AssessmentRepository ──

type mockAssessmentRepo struct {
	siteAssessments map[uint]*model.SiteAssessment
	buildings       map[uint]*model.BuildingInventory
	damages         map[uint]*model.DamageAssessment
	assets          map[uint]*model.MovableHeritage
	trackings       map[uint]*model.MovableTracking
	intangibles     map[uint]*model.IntangibleHeritage
	nextID          uint
}

func newMockAssessmentRepo() *mockAssessmentRepo {
	return &mockAssessmentRepo{
		siteAssessments: make(map[uint]*model.SiteAssessment),
		buildings:       make(map[uint]*model.BuildingInventory),
		damages:         make(map[uint]*model.DamageAssessment),
		assets:          make(map[uint]*model.MovableHeritage),
		trackings:       make(map[uint]*model.MovableTracking),
		intangibles:     make(map[uint]*model.IntangibleHeritage),
	}
}

func (m *mockAssessmentRepo) nid() uint {
	m.nextID++
	return m.nextID
}

func (m *mockAssessmentRepo) CreateSiteAssessment(_ context.Context, rec *model.SiteAssessment) error {
	if rec.ID == 0 {
		rec.ID = m.nid()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}
	m.siteAssessments[rec.ID] = rec
	return nil
}

func (m *mockAssessmentRepo) GetSiteAssessment(_ context.Context, id uint) (*model.SiteAssessment, error) {
	if rec, ok := m.siteAssessments[id]; ok {
		return rec, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAssessmentRepo) ListSiteAssessmentsByWorksite(_ context.Context, worksiteID uint) ([]model.SiteAssessment, error) {
	var result []model.SiteAssessment
	for _, rec := range m.siteAssessments {
		if rec.WorksiteID == worksiteID {
			result = append(result, *rec)
		}
	}
	return result, nil
}

func (m *mockAssessmentRepo) UpdateSiteAssessment(_ context.Context, rec *model.SiteAssessment) error {
	m.siteAssessments[rec.ID] = rec
	return nil
}

func (m *mockAssessmentRepo) DeleteSiteAssessment(_ context.Context, id uint) error {
	delete(m.siteAssessments, id)
	return nil
}

func (m *mockAssessmentRepo) CreateBuilding(_ context.Context, rec *model.BuildingInventory) error {
	if rec.ID == 0 {
		rec.ID = m.nid()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}
	m.buildings[rec.ID] = rec
	return nil
}

func (m *mockAssessmentRepo) GetBuilding(_ context.Context, id uint) (*model.BuildingInventory, error) {
	if rec, ok := m.buildings[id]; ok {
		return rec, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAssessmentRepo) ListBuildingsByWorksite(_ context.Context, worksiteID uint) ([]model.BuildingInventory, error) {
	var result []model.BuildingInventory
	for _, rec := range m.buildings {
		if rec.WorksiteID == worksiteID {
			result = append(result, *rec)
		}
	}
	return result, nil
}

func (m *mockAssessmentRepo) UpdateBuilding(_ context.Context, rec *model.BuildingInventory) error {
	m.buildings[rec.ID] = rec
	return nil
}

func (m *mockAssessmentRepo) DeleteBuilding(_ context.Context, id uint) error {
	delete(m.buildings, id)
	return nil
}

func (m *mockAssessmentRepo) CreateDamage(_ context.Context, rec *model.DamageAssessment) error {
	if rec.ID == 0 {
		rec.ID = m.nid()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}
	m.damages[rec.ID] = rec
	return nil
}

func (m *mockAssessmentRepo) GetDamage(_ context.Context, id uint) (*model.DamageAssessment, error) {
	if rec, ok := m.damages[id]; ok {
		return rec, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAssessmentRepo) ListDamagesByWorksite(_ context.Context, worksiteID uint) ([]model.DamageAssessment, error) {
	var result []model.DamageAssessment
	for _, rec := range m.damages {
		if rec.WorksiteID == worksiteID {
			result = append(result, *rec)
		}
	}
	return result, nil
}

func (m *mockAssessmentRepo) ListAllDamages(_ context.Context) ([]model.DamageAssessment, error) {
	var result []model.DamageAssessment
	for _, rec := range m.damages {
		result = append(result, *rec)
	}
	return result, nil
}

func (m *mockAssessmentRepo) UpdateDamage(_ context.Context, rec *model.DamageAssessment) error {
	m.damages[rec.ID] = rec
	return nil
}

func (m *mockAssessmentRepo) DeleteDamage(_ context.Context, id uint) error {
	delete(m.damages, id)
	return nil
}

func (m *mockAssessmentRepo) CreateAsset(_ context.Context, rec *model.MovableHeritage) error {
	if rec.ID == 0 {
		rec.ID = m.nid()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}
	m.assets[rec.ID] = rec
	return nil
}

func (m *mockAssessmentRepo) GetAsset(_ context.Context, id uint) (*model.MovableHeritage, error) {
	if rec, ok := m.assets[id]; ok {
		return rec, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAssessmentRepo) ListAssetsByWorksite(_ context.Context, worksiteID uint) ([]model.MovableHeritage, error) {
	var result []model.MovableHeritage
	for _, rec := range m.assets {
		if rec.WorksiteID == worksiteID {
			result = append(result, *rec)
		}
	}
	return result, nil
}

func (m *mockAssessmentRepo) UpdateAsset(_ context.Context, rec *model.MovableHeritage) error {
	m.assets[rec.ID] = rec
	return nil
}

func (m *mockAssessmentRepo) DeleteAsset(_ context.Context, id uint) error {
	delete(m.assets, id)
	return nil
}

func (m *mockAssessmentRepo) CreateTracking(_ context.Context, rec *model.MovableTracking) error {
	if rec.ID == 0 {
		rec.ID = m.nid()
	}
	m.trackings[rec.ID] = rec
	return nil
}

func (m *mockAssessmentRepo) GetTracking(_ context.Context, id uint) (*model.MovableTracking, error) {
	if rec, ok := m.trackings[id]; ok {
		return rec, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAssessmentRepo) ListTrackingsByWorksite(_ context.Context, worksiteID uint) ([]model.MovableTracking, error) {
	var result []model.MovableTracking
	for _, rec := range m.trackings {
		if rec.WorksiteID == worksiteID {
			result = append(result, *rec)
		}
	}
	return result, nil
}

func (m *mockAssessmentRepo) CreateIntangible(_ context.Context, rec *model.IntangibleHeritage) error {
	if rec.ID == 0 {
		rec.ID = m.nid()
	}
	m.intangibles[rec.ID] = rec
	return nil
}

func (m *mockAssessmentRepo) GetIntangible(_ context.Context, id uint) (*model.IntangibleHeritage, error) {
	if rec, ok := m.intangibles[id]; ok {
		return rec, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAssessmentRepo) ListIntangiblesByWorksite(_ context.Context, worksiteID uint) ([]model.IntangibleHeritage, error) {
	var result []model.IntangibleHeritage
	for _, rec := range m.intangibles {
		if rec.WorksiteID == worksiteID {
			result = append(result, *rec)
		}
	}
	return result, nil
}

func (m *mockAssessmentRepo) UpdateIntangible(_ context.Context, rec *model.IntangibleHeritage) error {
	m.intangibles[rec.ID] = rec
	return nil
}

func (m *mockAssessmentRepo) DeleteIntangible(_ context.Context, id uint) error {
	delete(m.intangibles, id)
	return nil
}

// ── Mock AccountRepository ──

type mockAccountRepo struct {
	accounts map[uint]*model.Account
	nextID   uint
}

func newMockAccountRepo() *mockAccountRepo {
	return &mockAccountRepo{accounts: make(map[uint]*model.Account)}
}

func (m *mockAccountRepo) Create(_ context.Context, a *model.Account) error {
	if a.ID == 0 {
		m.nextID++
		a.ID = m.nextID
	}
	m.accounts[a.ID] = a
	return nil
}

func (m *mockAccountRepo) GetByID(_ context.Context, id uint) (*model.Account, error) {
	if a, ok := m.accounts[id]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAccountRepo) GetByEmail(_ context.Context, email string) (*model.Account, error) {
	for _, a := range m.accounts {
		if strings.EqualFold(a.Email, email) {
			return a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAccountRepo) Update(_ context.Context, a *model.Account) error {
	if _, ok := m.accounts[a.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.accounts[a.ID] = a
	return nil
}

// ── Mock ReportRepository ──

// mockReportRepo 直接返回预置的统计值
type mockReportRepo struct {
	sectors              int64
	worksites            int64
	completed            int64
	personnel            int64
	personnelCountrys    int64
	teams                int64
	assignments          int64
	completedAssignments int64
	activeAssignments    int64
	sites                int64
	buildings            int64
	jobTitles            []repository.NameCount
	sqCounts             []repository.NameCount
	expertiseCounts      []repository.NameCount
	countryCounts        []repository.NameCount
	editorCounts         []repository.NameCount
	criticals            []model.DamageAssessment
	damageLevels         []repository.NameCount
	sectorProgress       []repository.SectorProgress
	assets               int64
	criticalBuildings    int64
	recents              []model.DamageAssessment
}

func (m *mockReportRepo) CountSectors(_ context.Context) (int64, error)   { return m.sectors, nil }
func (m *mockReportRepo) CountWorksites(_ context.Context) (int64, error) { return m.worksites, nil }
func (m *mockReportRepo) CountCompletedWorksites(_ context.Context) (int64, error) {
	return m.completed, nil
}
func (m *mockReportRepo) CountPersonnel(_ context.Context) (int64, error) { return m.personnel, nil }
func (m *mockReportRepo) CountPersonnelCountries(_ context.Context) (int64, error) {
	return m.personnelCountrys, nil
}
func (m *mockReportRepo) CountTeams(_ context.Context) (int64, error) { return m.teams, nil }
func (m *mockReportRepo) CountAssignments(_ context.Context) (int64, error) {
	return m.assignments, nil
}
func (m *mockReportRepo) CountCompletedAssignments(_ context.Context) (int64, error) {
	return m.completedAssignments, nil
}
func (m *mockReportRepo) CountActiveAssignments(_ context.Context) (int64, error) {
	return m.activeAssignments, nil
}
func (m *mockReportRepo) CountSites(_ context.Context) (int64, error)     { return m.sites, nil }
func (m *mockReportRepo) CountBuildings(_ context.Context) (int64, error) { return m.buildings, nil }
func (m *mockReportRepo) CountAssets(_ context.Context) (int64, error)    { return m.assets, nil }
func (m *mockReportRepo) CountCriticalBuildings(_ context.Context) (int64, error) {
	return m.criticalBuildings, nil
}
func (m *mockReportRepo) JobTitleCounts(_ context.Context, limit int) ([]repository.NameCount, error) {
	if len(m.jobTitles) > limit {
		return m.jobTitles[:limit], nil
	}
	return m.jobTitles, nil
}
func (m *mockReportRepo) SQCounts(_ context.Context) ([]repository.NameCount, error) {
	return m.sqCounts, nil
}
func (m *mockReportRepo) ExpertiseCounts(_ context.Context) ([]repository.NameCount, error) {
	return m.expertiseCounts, nil
}
func (m *mockReportRepo) CountryCounts(_ context.Context) ([]repository.NameCount, error) {
	return m.countryCounts, nil
}
func (m *mockReportRepo) EditorAssessmentCounts(_ context.Context) ([]repository.NameCount, error) {
	return m.editorCounts, nil
}
func (m *mockReportRepo) RecentCriticalDamages(_ context.Context, limit int) ([]model.DamageAssessment, error) {
	if len(m.criticals) > limit {
		return m.criticals[:limit], nil
	}
	return m.criticals, nil
}
func (m *mockReportRepo) RecentDamages(_ context.Context, limit int) ([]model.DamageAssessment, error) {
	if len(m.recents) > limit {
		return m.recents[:limit], nil
	}
	return m.recents, nil
}
func (m *mockReportRepo) DamageLevelCounts(_ context.Context) ([]repository.NameCount, error) {
	return m.damageLevels, nil
}
func (m *mockReportRepo) SectorProgressRows(_ context.Context) ([]repository.SectorProgress, error) {
	return m.sectorProgress, nil
}

// [自证通过] internal/service/mock_repos_test.go
