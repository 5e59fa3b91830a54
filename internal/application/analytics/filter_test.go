package analytics

import (
	"testing"

	"github.com/sangkips/leadflow-api/internal/domain/entity"
	"github.com/sangkips/leadflow-api/internal/domain/enum"
	"github.com/sangkips/leadflow-api/pkg/daterange"
	"github.com/stretchr/testify/assert"
)

func leadNames(leads []entity.Lead) []string {
	out := make([]string, 0, len(leads))
	for _, l := range leads {
		out = append(out, l.Name)
	}
	return out
}

func TestFilterLeads(t *testing.T) {
	leads := []entity.Lead{
		{Name: "Ana Gomez", Email: "ana@acme.io", Country: "Chile", CallDate: at(now)},
		{Name: "Bruno Diaz", Email: "bruno@mail.com", Country: "Argentina", CallDate: at(now.AddDate(0, -3, 0))},
		{Name: "Carla Ruiz", Email: "carla@ACME.io", Country: "Mexico"},
	}
	contacted := enum.LeadStatusContacted
	leads[1].Status = enum.LeadStatusContacted

	tests := []struct {
		name     string
		filter   Filter
		expected []string
	}{
		{"all lists leads without call date", Filter{Range: resolve(daterange.KindAll)}, []string{"Ana Gomez", "Bruno Diaz", "Carla Ruiz"}},
		{"bounded range needs call date", Filter{Range: resolve(daterange.KindThisMonth)}, []string{"Ana Gomez"}},
		{"search by name is case insensitive", Filter{Range: resolve(daterange.KindAll), Search: "GOMEZ"}, []string{"Ana Gomez"}},
		{"search by email", Filter{Range: resolve(daterange.KindAll), Search: "acme"}, []string{"Ana Gomez", "Carla Ruiz"}},
		{"country ignored by default", Filter{Range: resolve(daterange.KindAll), Search: "mexico"}, []string{}},
		{"country when requested", Filter{Range: resolve(daterange.KindAll), Search: "mexico", SearchCountry: true}, []string{"Carla Ruiz"}},
		{"search and range are combined", Filter{Range: resolve(daterange.KindThisMonth), Search: "carla"}, []string{}},
		{"status", Filter{Range: resolve(daterange.KindAll), Status: &contacted}, []string{"Bruno Diaz"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, leadNames(FilterLeads(leads, tt.filter)))
		})
	}
}
