package service

import (
	"time"

	"github.com/sangkips/leadflow-api/internal/application/analytics"
	"github.com/sangkips/leadflow-api/internal/domain/entity"
	"github.com/sangkips/leadflow-api/internal/domain/enum"
	"github.com/sangkips/leadflow-api/pkg/daterange"
	"github.com/sangkips/leadflow-api/pkg/pagination"
)

// LeadSource is the read side of the in-memory lead set
type LeadSource interface {
	List() []entity.Lead
}

// StaffNamer resolves staff ids to display names
type StaffNamer interface {
	Names() analytics.StaffNames
}

// DashboardService derives period metrics and list views from the in-memory
// lead set
type DashboardService struct {
	leads LeadSource
	staff StaffNamer
	loc   *time.Location
	now   func() time.Time
}

// NewDashboardService creates a new dashboard service. Date ranges are
// resolved in loc.
func NewDashboardService(leads LeadSource, staff StaffNamer, loc *time.Location) *DashboardService {
	if loc == nil {
		loc = time.UTC
	}
	return &DashboardService{
		leads: leads,
		staff: staff,
		loc:   loc,
		now:   time.Now,
	}
}

// ListLeadsInput represents the lead list filters
type ListLeadsInput struct {
	Range         daterange.Selector
	Search        string
	SearchCountry bool
	Status        *enum.LeadStatus
	Pagination    *pagination.PaginationParams
}

// Resolve resolves a selector against the current time
func (s *DashboardService) Resolve(sel daterange.Selector) daterange.Range {
	return sel.Resolve(s.now(), s.loc)
}

// GetSummary returns the headline figures for the selected period
func (s *DashboardService) GetSummary(sel daterange.Selector) analytics.Summary {
	return analytics.Summarize(s.leads.List(), s.Resolve(sel))
}

// GetReport returns the full breakdown for the selected period
func (s *DashboardService) GetReport(sel daterange.Selector) analytics.Report {
	return analytics.Compute(s.leads.List(), s.Resolve(sel), s.staff.Names())
}

// ListLeads returns the page of leads matching the filters, newest first
func (s *DashboardService) ListLeads(input *ListLeadsInput) *pagination.PaginatedResult[entity.Lead] {
	params := input.Pagination
	if params == nil {
		params = pagination.DefaultPagination()
	}

	filtered := analytics.FilterLeads(s.leads.List(), analytics.Filter{
		Range:         s.Resolve(input.Range),
		Search:        input.Search,
		SearchCountry: input.SearchCountry,
		Status:        input.Status,
	})
	return pagination.Paginate(filtered, params)
}
