package analytics

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/leadflow-api/internal/domain/entity"
	"github.com/sangkips/leadflow-api/internal/domain/enum"
	"github.com/sangkips/leadflow-api/pkg/daterange"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

func at(t time.Time) *time.Time { return &t }

func money(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func assertMoney(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()
	assert.Equal(t, expected, actual.String())
}

func resolve(kind daterange.Kind) daterange.Range {
	return daterange.Selector{Kind: kind}.Resolve(now, time.UTC)
}

func qual(q enum.Qualification) *enum.Qualification { return &q }

func TestSummarize_SalesScenario(t *testing.T) {
	leads := []entity.Lead{
		{
			ID:               "L-a",
			Name:             "A",
			Bought:           true,
			FirstPaymentDate: at(now),
			CollectedAmount:  money(500),
			Revenue:          money(1000),
		},
		{
			ID:              "L-b",
			Name:            "B",
			Bought:          false,
			CollectedAmount: money(300),
			Revenue:         money(700),
		},
	}

	s := Summarize(leads, resolve(daterange.KindThisMonth))

	assert.Equal(t, 1, s.SalesCount)
	assertMoney(t, "500", s.CashCollected)
	assertMoney(t, "1000", s.GrossRevenue)
}

func TestSummarize_BoughtWithoutPaymentDateIsNotASale(t *testing.T) {
	leads := []entity.Lead{{Name: "A", Bought: true, Revenue: money(100)}}

	s := Summarize(leads, resolve(daterange.KindAll))

	assert.Equal(t, 0, s.SalesCount)
	assert.True(t, s.GrossRevenue.IsZero())
}

func TestSummarize_Rates(t *testing.T) {
	t.Run("closure rate is zero without offers", func(t *testing.T) {
		leads := []entity.Lead{
			{Name: "sale", Bought: true, FirstPaymentDate: at(now)},
			{Name: "agenda", CallDate: at(now)},
		}
		s := Summarize(leads, resolve(daterange.KindAll))

		assert.Equal(t, 0, s.OffersCount)
		assert.Equal(t, 1, s.SalesCount)
		assert.Equal(t, 0.0, s.ClosureRateOnOffers)
	})

	t.Run("conversion floors agenda at one", func(t *testing.T) {
		leads := []entity.Lead{{Name: "sale", Bought: true, FirstPaymentDate: at(now)}}
		s := Summarize(leads, resolve(daterange.KindAll))

		assert.Equal(t, 0, s.AgendaCount)
		assert.Equal(t, 100.0, s.ConversionRate)
	})

	t.Run("rates over populated period", func(t *testing.T) {
		leads := []entity.Lead{
			{Name: "1", CallDate: at(now), OfferMade: true, Attended: enum.ConfirmationYes, Bought: true, FirstPaymentDate: at(now)},
			{Name: "2", CallDate: at(now), OfferMade: true, Attended: enum.ConfirmationYes},
			{Name: "3", CallDate: at(now), OfferMade: true},
		}
		s := Summarize(leads, resolve(daterange.KindAll))

		assert.Equal(t, 3, s.AgendaCount)
		assert.Equal(t, 3, s.OffersCount)
		assert.Equal(t, 2, s.AttendanceCount)
		assert.Equal(t, 33.33, s.ClosureRateOnOffers)
		assert.Equal(t, 33.33, s.ConversionRate)
	})
}

func TestSummarize_OffersScopedToAgenda(t *testing.T) {
	old := now.AddDate(0, -2, 0)
	leads := []entity.Lead{
		{Name: "old offer", CallDate: at(old), OfferMade: true},
		{Name: "recent", CallDate: at(now), OfferMade: true},
	}

	s := Summarize(leads, resolve(daterange.KindThisMonth))

	assert.Equal(t, 1, s.AgendaCount)
	assert.Equal(t, 1, s.OffersCount)
}

func TestSummarize_AllContainsEveryBoundedRange(t *testing.T) {
	leads := []entity.Lead{
		{Name: "today", CallDate: at(now)},
		{Name: "last week", CallDate: at(now.AddDate(0, 0, -5))},
		{Name: "last month", CallDate: at(now.AddDate(0, -1, 0))},
		{Name: "last year", CallDate: at(now.AddDate(-1, 0, 0))},
		{Name: "no date"},
	}
	custom, err := daterange.Custom(now.AddDate(0, -2, 0), now)
	require.NoError(t, err)

	all := Summarize(leads, resolve(daterange.KindAll)).AgendaCount
	assert.Equal(t, 4, all)

	for _, r := range []daterange.Range{
		resolve(daterange.KindLast7Days),
		resolve(daterange.KindThisMonth),
		custom.Resolve(now, time.UTC),
	} {
		assert.GreaterOrEqual(t, all, Summarize(leads, r).AgendaCount)
	}
}

func TestCompute_Commissions(t *testing.T) {
	ana, bruno := uuid.New(), uuid.New()
	carla := uuid.New()
	names := StaffNames{ana: "Ana", bruno: "Bruno", carla: "Carla"}

	leads := []entity.Lead{
		{Name: "1", CallDate: at(now), SetterID: &ana, CloserID: &carla, Bought: true, FirstPaymentDate: at(now),
			CollectedAmount: money(800), Revenue: money(1000), SetterCommission: money(50), CloserCommission: money(100)},
		{Name: "2", CallDate: at(now), SetterID: &bruno, CloserID: &carla, Bought: true, FirstPaymentDate: at(now),
			CollectedAmount: money(400), Revenue: money(600), SetterCommission: money(80), CloserCommission: money(60)},
		{Name: "3", CallDate: at(now), Bought: true, FirstPaymentDate: at(now),
			CollectedAmount: money(100), Revenue: money(100), SetterCommission: money(10)},
		{Name: "4", CallDate: at(now), SetterID: &ana},
	}

	rep := Compute(leads, resolve(daterange.KindAll), names)

	assertMoney(t, "140", rep.TotalSetterCommissions)
	assertMoney(t, "160", rep.TotalCloserCommissions)
	assertMoney(t, "300", rep.TotalCommissions)
	assertMoney(t, "1300", rep.CashCollected)
	assertMoney(t, "1000", rep.NetMargin)
	assertMoney(t, "400", rep.PendingCollection)
	assertMoney(t, "566.67", rep.AverageTicket)
	assert.Equal(t, 76.47, rep.CollectionEfficiency)

	require.Len(t, rep.Setters, 3)
	assert.Equal(t, "Bruno", rep.Setters[0].Name)
	assertMoney(t, "80", rep.Setters[0].Commission)
	assert.Equal(t, "Ana", rep.Setters[1].Name)
	assert.Equal(t, 2, rep.Setters[1].Leads)
	assert.Equal(t, 1, rep.Setters[1].Sales)
	assert.Equal(t, 50.0, rep.Setters[1].Efficiency)
	assert.Equal(t, UnassignedName, rep.Setters[2].Name)
	assert.Nil(t, rep.Setters[2].StaffID)

	require.Len(t, rep.Closers, 2)
	assert.Equal(t, "Carla", rep.Closers[0].Name)
	assertMoney(t, "160", rep.Closers[0].Commission)
	assert.Equal(t, UnassignedName, rep.Closers[1].Name)
	assert.True(t, rep.Closers[1].Commission.IsZero())
}

func TestCompute_PerPersonCommissionsSumToTotals(t *testing.T) {
	staff := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	var leads []entity.Lead
	for i := 0; i < 12; i++ {
		l := entity.Lead{
			Name:             "lead",
			CallDate:         at(now.AddDate(0, 0, -i)),
			Bought:           i%2 == 0,
			FirstPaymentDate: at(now.AddDate(0, 0, -i)),
			SetterCommission: money(int64(10 * (i + 1))),
			CloserCommission: money(int64(7 * (i + 1))),
		}
		if i%4 != 3 {
			l.SetterID = &staff[i%3]
			l.CloserID = &staff[(i+1)%3]
		}
		leads = append(leads, l)
	}

	for _, kind := range []daterange.Kind{daterange.KindAll, daterange.KindLast7Days, daterange.KindThisMonth} {
		rep := Compute(leads, resolve(kind), nil)

		setterSum := decimal.Zero
		for _, p := range rep.Setters {
			setterSum = setterSum.Add(p.Commission)
		}
		closerSum := decimal.Zero
		for _, p := range rep.Closers {
			closerSum = closerSum.Add(p.Commission)
		}

		assert.True(t, setterSum.Equal(rep.TotalSetterCommissions), "kind %s", kind)
		assert.True(t, closerSum.Equal(rep.TotalCloserCommissions), "kind %s", kind)
	}
}

func TestCompute_UnknownStaffFallsBackToID(t *testing.T) {
	id := uuid.New()
	leads := []entity.Lead{{Name: "x", CallDate: at(now), SetterID: &id}}

	rep := Compute(leads, resolve(daterange.KindAll), StaffNames{})

	require.Len(t, rep.Setters, 1)
	assert.Equal(t, id.String(), rep.Setters[0].Name)
}

func TestCompute_QualificationMix(t *testing.T) {
	leads := []entity.Lead{
		{Name: "a", CallDate: at(now), Qualification: qual(enum.QualificationNotQualified)},
		{Name: "b", CallDate: at(now), Qualification: qual(enum.QualificationLevel1)},
		{Name: "c", CallDate: at(now), Qualification: qual(enum.QualificationLevel1)},
		{Name: "d", CallDate: at(now)},
		{Name: "outside", Qualification: qual(enum.QualificationLevel2)},
	}

	rep := Compute(leads, resolve(daterange.KindAll), nil)

	require.Len(t, rep.QualificationMix, 4)
	assert.Equal(t, enum.QualificationLevel1, rep.QualificationMix[0].Qualification)
	assert.Equal(t, 2, rep.QualificationMix[0].Count)
	assert.Equal(t, 50.0, rep.QualificationMix[0].Percent)
	assert.Equal(t, 0, rep.QualificationMix[1].Count)
	assert.Equal(t, enum.QualificationNotQualified, rep.QualificationMix[3].Qualification)
	assert.Equal(t, 25.0, rep.QualificationMix[3].Percent)
}

func TestCompute_Funnel(t *testing.T) {
	leads := []entity.Lead{
		{Name: "1", CallDate: at(now), Attended: enum.ConfirmationYes, OfferMade: true, Bought: true, FirstPaymentDate: at(now)},
		{Name: "2", CallDate: at(now), Attended: enum.ConfirmationYes, OfferMade: true},
		{Name: "3", CallDate: at(now), Attended: enum.ConfirmationYes},
		{Name: "4", CallDate: at(now), Attended: enum.ConfirmationNo},
	}

	rep := Compute(leads, resolve(daterange.KindAll), nil)

	expected := []FunnelStep{
		{Stage: StageAgendas, Count: 4, Percent: 100},
		{Stage: StageAttended, Count: 3, Percent: 75},
		{Stage: StageOffers, Count: 2, Percent: 50},
		{Stage: StageSales, Count: 1, Percent: 25},
	}
	assert.Equal(t, expected, rep.Funnel)
}

func TestCompute_EmptyPeriod(t *testing.T) {
	rep := Compute(nil, resolve(daterange.KindLast7Days), nil)

	assert.Equal(t, 0, rep.AgendaCount)
	assert.True(t, rep.AverageTicket.IsZero())
	assert.Equal(t, 0.0, rep.CollectionEfficiency)
	assert.Empty(t, rep.Setters)
	for _, step := range rep.Funnel {
		assert.Equal(t, 0.0, step.Percent)
	}
}

func TestCompute_IsDeterministic(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	names := StaffNames{a: "Same", b: "Same"}
	leads := []entity.Lead{
		{Name: "1", CallDate: at(now), SetterID: &a, Bought: true, FirstPaymentDate: at(now), SetterCommission: money(10)},
		{Name: "2", CallDate: at(now), SetterID: &b, Bought: true, FirstPaymentDate: at(now), SetterCommission: money(10)},
		{Name: "3", CallDate: at(now), OfferMade: true},
	}
	r := resolve(daterange.KindThisMonth)

	first := Compute(leads, r, names)
	second := Compute(leads, r, names)

	assert.Equal(t, first, second)
}
