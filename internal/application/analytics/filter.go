package analytics

import (
	"strings"

	"github.com/sangkips/leadflow-api/internal/domain/entity"
	"github.com/sangkips/leadflow-api/internal/domain/enum"
	"github.com/sangkips/leadflow-api/pkg/daterange"
)

// Filter selects the leads shown in list views
type Filter struct {
	Range         daterange.Range
	Search        string
	SearchCountry bool
	Status        *enum.LeadStatus
}

// FilterLeads keeps the order of leads. The date predicate applies to
// call_date, except for an unbounded range where leads without a call date
// are listed too.
func FilterLeads(leads []entity.Lead, f Filter) []entity.Lead {
	query := strings.ToLower(strings.TrimSpace(f.Search))

	result := make([]entity.Lead, 0, len(leads))
	for _, l := range leads {
		if !f.Range.IsAll() && !f.Range.Contains(l.CallDate) {
			continue
		}
		if f.Status != nil && l.Status != *f.Status {
			continue
		}
		if !MatchesSearch(&l, query, f.SearchCountry) {
			continue
		}
		result = append(result, l)
	}
	return result
}

// MatchesSearch reports whether query (already lower-cased) is a substring of
// the lead's name or email, and optionally its country. An empty query matches.
func MatchesSearch(l *entity.Lead, query string, includeCountry bool) bool {
	if query == "" {
		return true
	}
	if strings.Contains(strings.ToLower(l.Name), query) {
		return true
	}
	if strings.Contains(strings.ToLower(l.Email), query) {
		return true
	}
	return includeCountry && strings.Contains(strings.ToLower(l.Country), query)
}
