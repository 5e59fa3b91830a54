package daterange

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, time.March, 15, 14, 30, 0, 0, time.UTC)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		kind     string
		expected Kind
	}{
		{"empty defaults to all", "", KindAll},
		{"last 7 days", "last7days", KindLast7Days},
		{"7days alias", "7days", KindLast7Days},
		{"this month", "thisMonth", KindThisMonth},
		{"month alias", "MONTH", KindThisMonth},
		{"all", "all", KindAll},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel, err := Parse(tt.kind, "", "", time.UTC)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, sel.Kind)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse("yesterday", "", "", time.UTC)
	assert.ErrorIs(t, err, ErrUnknownKind)

	_, err = Parse("custom", "2024-03-01", "", time.UTC)
	assert.ErrorIs(t, err, ErrMissingBounds)

	_, err = Parse("custom", "2024-03-10", "2024-03-01", time.UTC)
	assert.ErrorIs(t, err, ErrInvertedBounds)

	_, err = Parse("custom", "not-a-date", "2024-03-01", time.UTC)
	assert.Error(t, err)
}

func TestParse_CustomAcceptsRFC3339(t *testing.T) {
	sel, err := Parse("custom", "2024-03-01T10:00:00Z", "2024-03-02", time.UTC)
	require.NoError(t, err)

	r := sel.Resolve(fixedNow, time.UTC)
	assert.Equal(t, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), *r.From)
}

func TestResolve_Last7Days(t *testing.T) {
	r := Selector{Kind: KindLast7Days}.Resolve(fixedNow, time.UTC)

	require.NotNil(t, r.From)
	require.NotNil(t, r.Until)
	assert.Equal(t, time.Date(2024, time.March, 8, 0, 0, 0, 0, time.UTC), *r.From)
	assert.Equal(t, fixedNow, *r.Until)
}

func TestResolve_ThisMonth(t *testing.T) {
	r := Selector{Kind: KindThisMonth}.Resolve(fixedNow, time.UTC)

	assert.Equal(t, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), *r.From)
	assert.Equal(t, fixedNow, *r.Until)
}

func TestResolve_All(t *testing.T) {
	r := Selector{Kind: KindAll}.Resolve(fixedNow, time.UTC)
	old := time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.True(t, r.IsAll())
	assert.True(t, r.Contains(&old))
	assert.False(t, r.Contains(nil))
}

func TestContains_NowIsIncluded(t *testing.T) {
	now := fixedNow
	for _, kind := range []Kind{KindLast7Days, KindThisMonth} {
		r := Selector{Kind: kind}.Resolve(fixedNow, time.UTC)
		assert.True(t, r.Contains(&now), "kind %s", kind)
	}
}

func TestContains_CustomBoundaries(t *testing.T) {
	sel, err := Custom(
		time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC),
		time.Date(2024, time.March, 10, 9, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	r := sel.Resolve(fixedNow, time.UTC)

	start := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	lastMilli := time.Date(2024, time.March, 10, 23, 59, 59, int(999*time.Millisecond), time.UTC)
	pastEnd := lastMilli.Add(time.Millisecond)
	beforeStart := start.Add(-time.Millisecond)

	assert.True(t, r.Contains(&start))
	assert.True(t, r.Contains(&lastMilli))
	assert.False(t, r.Contains(&pastEnd))
	assert.False(t, r.Contains(&beforeStart))
}

func TestResolve_UsesLocation(t *testing.T) {
	loc := time.FixedZone("UTC-3", -3*60*60)
	// 02:00 UTC on the 1st is still the previous month at UTC-3
	now := time.Date(2024, time.April, 1, 2, 0, 0, 0, time.UTC)

	r := Selector{Kind: KindThisMonth}.Resolve(now, loc)

	assert.Equal(t, time.March, r.From.Month())
	assert.Equal(t, 1, r.From.Day())
}
