package analytics

import (
	"sort"

	"github.com/google/uuid"
	"github.com/sangkips/leadflow-api/internal/domain/entity"
	"github.com/sangkips/leadflow-api/internal/domain/enum"
	"github.com/sangkips/leadflow-api/pkg/daterange"
	"github.com/shopspring/decimal"
)

// UnassignedName labels the bucket for leads without a setter or closer
const UnassignedName = "Unassigned"

// Funnel stage names in display order
const (
	StageAgendas  = "agendas"
	StageAttended = "attended"
	StageOffers   = "offers"
	StageSales    = "sales"
)

var hundred = decimal.NewFromInt(100)

// StaffNames maps staff ids to display names
type StaffNames map[uuid.UUID]string

// Summary holds the headline pipeline figures for a period
type Summary struct {
	Range               daterange.Range `json:"range"`
	AgendaCount         int             `json:"agenda_count"`
	SalesCount          int             `json:"sales_count"`
	OffersCount         int             `json:"offers_count"`
	AttendanceCount     int             `json:"attendance_count"`
	CashCollected       decimal.Decimal `json:"cash_collected"`
	GrossRevenue        decimal.Decimal `json:"gross_revenue"`
	ClosureRateOnOffers float64         `json:"closure_rate_on_offers"`
	ConversionRate      float64         `json:"conversion_rate"`
}

// Report is the full period breakdown shown on the reports screen
type Report struct {
	Summary

	TotalSetterCommissions decimal.Decimal `json:"total_setter_commissions"`
	TotalCloserCommissions decimal.Decimal `json:"total_closer_commissions"`
	TotalCommissions       decimal.Decimal `json:"total_commissions"`
	NetMargin              decimal.Decimal `json:"net_margin"`
	AverageTicket          decimal.Decimal `json:"average_ticket"`
	PendingCollection      decimal.Decimal `json:"pending_collection"`
	CollectionEfficiency   float64         `json:"collection_efficiency"`

	Funnel           []FunnelStep         `json:"funnel"`
	QualificationMix []QualificationShare `json:"qualification_mix"`
	OriginMix        []OriginShare        `json:"origin_mix"`
	Setters          []PersonPerformance  `json:"setters"`
	Closers          []PersonPerformance  `json:"closers"`
}

// FunnelStep is one stage of agendas → attended → offers → sales
type FunnelStep struct {
	Stage   string  `json:"stage"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// QualificationShare counts agenda leads at one qualification level
type QualificationShare struct {
	Qualification enum.Qualification `json:"qualification"`
	Count         int                `json:"count"`
	Percent       float64            `json:"percent"`
}

// OriginShare counts agenda leads per acquisition channel
type OriginShare struct {
	Origin  enum.LeadOrigin `json:"origin"`
	Count   int             `json:"count"`
	Percent float64         `json:"percent"`
}

// PersonPerformance aggregates one setter or closer. StaffID is nil for the
// unassigned bucket.
type PersonPerformance struct {
	StaffID    *uuid.UUID      `json:"staff_id,omitempty"`
	Name       string          `json:"name"`
	Leads      int             `json:"leads"`
	Sales      int             `json:"sales"`
	Commission decimal.Decimal `json:"commission"`
	Efficiency float64         `json:"efficiency"`
}

// population splits leads into the call_date and first_payment_date views of a range
type population struct {
	agenda []entity.Lead
	sales  []entity.Lead
}

func split(leads []entity.Lead, r daterange.Range) population {
	var p population
	for _, l := range leads {
		if r.Contains(l.CallDate) {
			p.agenda = append(p.agenda, l)
		}
		if l.Bought && r.Contains(l.FirstPaymentDate) {
			p.sales = append(p.sales, l)
		}
	}
	return p
}

// Summarize computes the headline figures for the range
func Summarize(leads []entity.Lead, r daterange.Range) Summary {
	return summarize(split(leads, r), r)
}

func summarize(p population, r daterange.Range) Summary {
	s := Summary{
		Range:         r,
		AgendaCount:   len(p.agenda),
		SalesCount:    len(p.sales),
		CashCollected: decimal.Zero,
		GrossRevenue:  decimal.Zero,
	}

	for _, l := range p.agenda {
		if l.OfferMade {
			s.OffersCount++
		}
		if l.Attended == enum.ConfirmationYes {
			s.AttendanceCount++
		}
	}
	for _, l := range p.sales {
		s.CashCollected = s.CashCollected.Add(l.CollectedAmount)
		s.GrossRevenue = s.GrossRevenue.Add(l.Revenue)
	}

	s.ClosureRateOnOffers = Percent(s.SalesCount, s.OffersCount)
	s.ConversionRate = Percent(s.SalesCount, max(s.AgendaCount, 1))
	return s
}

// Compute builds the full report for the range. The result depends only on
// the arguments.
func Compute(leads []entity.Lead, r daterange.Range, names StaffNames) Report {
	p := split(leads, r)
	rep := Report{Summary: summarize(p, r)}

	rep.TotalSetterCommissions = decimal.Zero
	rep.TotalCloserCommissions = decimal.Zero
	for _, l := range p.sales {
		rep.TotalSetterCommissions = rep.TotalSetterCommissions.Add(l.SetterCommission)
		rep.TotalCloserCommissions = rep.TotalCloserCommissions.Add(l.CloserCommission)
	}
	rep.TotalCommissions = rep.TotalSetterCommissions.Add(rep.TotalCloserCommissions)
	rep.NetMargin = rep.CashCollected.Sub(rep.TotalCommissions)
	rep.PendingCollection = rep.GrossRevenue.Sub(rep.CashCollected)

	rep.AverageTicket = decimal.Zero
	if rep.SalesCount > 0 {
		rep.AverageTicket = rep.GrossRevenue.Div(decimal.NewFromInt(int64(rep.SalesCount))).Round(2)
	}
	if !rep.GrossRevenue.IsZero() {
		rep.CollectionEfficiency = rep.CashCollected.Div(rep.GrossRevenue).Mul(hundred).Round(2).InexactFloat64()
	}

	rep.Funnel = funnel(rep.Summary)
	rep.QualificationMix = qualificationMix(p.agenda)
	rep.OriginMix = originMix(p.agenda)
	rep.Setters = breakdown(p, names, func(l *entity.Lead) (*uuid.UUID, decimal.Decimal) {
		return l.SetterID, l.SetterCommission
	})
	rep.Closers = breakdown(p, names, func(l *entity.Lead) (*uuid.UUID, decimal.Decimal) {
		return l.CloserID, l.CloserCommission
	})
	return rep
}

func funnel(s Summary) []FunnelStep {
	steps := []FunnelStep{
		{Stage: StageAgendas, Count: s.AgendaCount},
		{Stage: StageAttended, Count: s.AttendanceCount},
		{Stage: StageOffers, Count: s.OffersCount},
		{Stage: StageSales, Count: s.SalesCount},
	}
	for i := range steps {
		steps[i].Percent = Percent(steps[i].Count, s.AgendaCount)
	}
	return steps
}

func qualificationMix(agenda []entity.Lead) []QualificationShare {
	counts := make(map[enum.Qualification]int)
	for _, l := range agenda {
		if l.Qualification != nil {
			counts[*l.Qualification]++
		}
	}

	levels := enum.Qualifications()
	mix := make([]QualificationShare, 0, len(levels))
	for _, q := range levels {
		mix = append(mix, QualificationShare{
			Qualification: q,
			Count:         counts[q],
			Percent:       Percent(counts[q], len(agenda)),
		})
	}
	return mix
}

func originMix(agenda []entity.Lead) []OriginShare {
	counts := make(map[enum.LeadOrigin]int)
	for _, l := range agenda {
		counts[l.Origin]++
	}

	origins := enum.LeadOrigins()
	mix := make([]OriginShare, 0, len(origins))
	for _, o := range origins {
		mix = append(mix, OriginShare{
			Origin:  o,
			Count:   counts[o],
			Percent: Percent(counts[o], len(agenda)),
		})
	}
	return mix
}

type roleFunc func(l *entity.Lead) (*uuid.UUID, decimal.Decimal)

func breakdown(p population, names StaffNames, role roleFunc) []PersonPerformance {
	groups := make(map[uuid.UUID]*PersonPerformance)
	var unassigned *PersonPerformance

	group := func(id *uuid.UUID) *PersonPerformance {
		if id == nil {
			if unassigned == nil {
				unassigned = &PersonPerformance{Name: UnassignedName, Commission: decimal.Zero}
			}
			return unassigned
		}
		g, ok := groups[*id]
		if !ok {
			staffID := *id
			g = &PersonPerformance{StaffID: &staffID, Name: displayName(names, staffID), Commission: decimal.Zero}
			groups[staffID] = g
		}
		return g
	}

	for i := range p.agenda {
		id, _ := role(&p.agenda[i])
		group(id).Leads++
	}
	for i := range p.sales {
		id, commission := role(&p.sales[i])
		g := group(id)
		g.Sales++
		g.Commission = g.Commission.Add(commission)
	}

	result := make([]PersonPerformance, 0, len(groups)+1)
	for _, g := range groups {
		result = append(result, *g)
	}
	if unassigned != nil {
		result = append(result, *unassigned)
	}
	for i := range result {
		result[i].Efficiency = Percent(result[i].Sales, max(result[i].Leads, 1))
	}

	sort.Slice(result, func(i, j int) bool {
		a, b := result[i], result[j]
		if c := a.Commission.Cmp(b.Commission); c != 0 {
			return c > 0
		}
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return staffKey(a.StaffID) < staffKey(b.StaffID)
	})
	return result
}

func displayName(names StaffNames, id uuid.UUID) string {
	if name, ok := names[id]; ok && name != "" {
		return name
	}
	return id.String()
}

func staffKey(id *uuid.UUID) string {
	if id == nil {
		return ""
	}
	return id.String()
}

// Percent returns part/whole*100 rounded to two decimals, or 0 when whole is 0
func Percent(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return decimal.NewFromInt(int64(part)).
		Mul(hundred).
		Div(decimal.NewFromInt(int64(whole))).
		Round(2).
		InexactFloat64()
}
