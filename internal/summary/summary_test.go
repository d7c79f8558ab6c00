package summary

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AngelCh415/SDR_GO/internal/derive"
	"github.com/AngelCh415/SDR_GO/internal/generate"
	"github.com/AngelCh415/SDR_GO/internal/models"
	"github.com/AngelCh415/SDR_GO/internal/store"
)

func TestBuildIsRegenerable(t *testing.T) {
	ds := generate.Dataset("regen")
	derived := derive.Derive(ds.Events)

	a := Build(derived, ds)
	b := Build(derived, ds)
	assert.Equal(t, a, b, "summaries must be a pure function of their input")
}

func TestBuildTotalsAndRates(t *testing.T) {
	ds := generate.Dataset("totals")
	derived := derive.Derive(ds.Events)
	sum := Build(derived, ds)

	assert.Equal(t, ds.Seed, sum.Seed)
	assert.Equal(t, len(ds.Events), sum.Totals.Events)
	assert.Greater(t, sum.Totals.Leads, 0)
	assert.GreaterOrEqual(t, sum.Totals.Connects, sum.Totals.Conversations)

	require.NotNil(t, sum.DialToConnect.Rate)
	assert.Equal(t, sum.Totals.Dials, sum.DialToConnect.Denominator)

	assert.NotEmpty(t, sum.CompanyFunnels)
	assert.LessOrEqual(t, len(sum.CompanyFunnels), 5)
	assert.NotEmpty(t, sum.SDRStats)
	assert.NotEmpty(t, sum.WeeklyVolume)
}

func TestBuildEmptyInput(t *testing.T) {
	sum := Build(nil, models.GeneratedDataset{Seed: "empty"})

	assert.Equal(t, 0, sum.Totals.Events)
	assert.Nil(t, sum.DialToConnect.Rate)
	assert.Nil(t, sum.ConnectToConversation.Rate)
	assert.Nil(t, sum.MeetingToQualified.Rate)
	assert.Nil(t, sum.NoShowRate.Rate)
	assert.Nil(t, sum.TimeToMeetingMeanDays)
	assert.Nil(t, sum.TimeToMeetingMedianDays)
	assert.Empty(t, sum.SDRStats)
}

func TestEntityStatsRankedAndScored(t *testing.T) {
	ds := generate.Dataset("ranked")
	derived := derive.Derive(ds.Events)
	sum := Build(derived, ds)

	for i, row := range sum.SDRStats {
		require.NotNil(t, row.PipelineHealth, "row %d", i)
		require.GreaterOrEqual(t, *row.PipelineHealth, 0)
		require.LessOrEqual(t, *row.PipelineHealth, 100)
		if i > 0 {
			prev := *sum.SDRStats[i-1].PipelineHealth
			require.GreaterOrEqual(t, prev, *row.PipelineHealth, "ranking must be descending")
		}
	}
}

func TestServiceDashboardFilters(t *testing.T) {
	ds := generate.Dataset("filters")
	st := store.NewStore()
	st.Replace(ds, derive.Derive(ds.Events))
	svc := NewService(st)

	full := svc.Dashboard(url.Values{})
	assert.Equal(t, len(ds.Events), full.Totals.Events)

	team := ds.Teams[0]
	filtered := svc.Dashboard(url.Values{"team": []string{team}})
	assert.Less(t, filtered.Totals.Events, full.Totals.Events)
	assert.Greater(t, filtered.Totals.Events, 0)
	require.Len(t, filtered.TeamFunnels, 1)
	assert.Equal(t, team, filtered.TeamFunnels[0].Name)

	calls := svc.Dashboard(url.Values{"channel": []string{"call"}})
	assert.Equal(t, calls.Totals.Events, calls.Totals.Dials)

	none := svc.Dashboard(url.Values{"channel": []string{"carrier-pigeon"}})
	assert.Equal(t, 0, none.Totals.Events)
}
