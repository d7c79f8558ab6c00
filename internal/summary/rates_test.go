package summary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AngelCh415/SDR_GO/internal/models"
)

func dial(connected bool) models.DerivedEvent {
	return models.DerivedEvent{
		OutreachEvent: models.OutreachEvent{Channel: models.ChannelCall},
		IsDial:        true,
		IsConnected:   connected,
	}
}

func TestDialToConnectConcrete(t *testing.T) {
	var evs []models.DerivedEvent
	for i := 0; i < 4; i++ {
		evs = append(evs, dial(true))
	}
	for i := 0; i < 6; i++ {
		evs = append(evs, dial(false))
	}
	got := DialToConnect(evs)
	assert.Equal(t, 4, got.Numerator)
	assert.Equal(t, 10, got.Denominator)
	require.NotNil(t, got.Rate)
	assert.Equal(t, 0.4, *got.Rate)
}

func TestRatesNilSafeOnEmptyInput(t *testing.T) {
	var evs []models.DerivedEvent
	for _, got := range []models.RateSummary{
		DialToConnect(evs), ConnectToConversation(evs), MeetingToQualified(evs), NoShowRate(evs),
	} {
		assert.Equal(t, 0, got.Numerator)
		assert.Equal(t, 0, got.Denominator)
		assert.Nil(t, got.Rate)
	}
}

func TestRatesNilSafeWithoutDenominatorMatches(t *testing.T) {
	// Emails only: no dials, so Dial->Connect has a zero denominator.
	evs := []models.DerivedEvent{
		{OutreachEvent: models.OutreachEvent{Channel: models.ChannelEmail}, IsConnected: true},
	}
	got := DialToConnect(evs)
	assert.Equal(t, 0, got.Denominator)
	assert.Nil(t, got.Rate)
}

func TestNoShowRate(t *testing.T) {
	evs := []models.DerivedEvent{
		{IsMeetingBooked: true, IsNoShow: true},
		{IsMeetingBooked: true},
		{IsMeetingBooked: true},
		{IsMeetingBooked: true},
	}
	got := NoShowRate(evs)
	assert.Equal(t, 1, got.Numerator)
	assert.Equal(t, 4, got.Denominator)
	require.NotNil(t, got.Rate)
	assert.Equal(t, 0.25, *got.Rate)
}

func rateOf(v float64, den int) models.RateSummary {
	num := int(v * float64(den))
	return models.RateSummary{Numerator: num, Denominator: den, Rate: &v}
}

func TestPipelineHealthConcrete(t *testing.T) {
	got := PipelineHealth(rateOf(0.8, 10), rateOf(0.6, 10), rateOf(0.4, 10))
	require.NotNil(t, got)
	assert.Equal(t, 60, *got)
}

func TestPipelineHealthSkipsNilRates(t *testing.T) {
	got := PipelineHealth(rateOf(0.8, 10), models.RateSummary{}, models.RateSummary{})
	require.NotNil(t, got)
	assert.Equal(t, 80, *got)
}

func TestPipelineHealthAllNil(t *testing.T) {
	assert.Nil(t, PipelineHealth(models.RateSummary{}, models.RateSummary{}, models.RateSummary{}))
}

func TestPipelineHealthRoundsOnlyAtTheEnd(t *testing.T) {
	// 1/3, 1/3, 1/3 -> mean 33.333...% -> 33, not round(33)+round(...) drift.
	third := 1.0 / 3.0
	got := PipelineHealth(rateOf(third, 3), rateOf(third, 3), rateOf(third, 3))
	require.NotNil(t, got)
	assert.Equal(t, 33, *got)
}

func TestMedian(t *testing.T) {
	assert.Nil(t, Median(nil))

	odd := Median([]float64{5, 1, 3})
	require.NotNil(t, odd)
	assert.Equal(t, 3.0, *odd)

	even := Median([]float64{4, 1, 3, 2})
	require.NotNil(t, even)
	assert.Equal(t, 2.5, *even)
}

func TestMedianDoesNotMutateInput(t *testing.T) {
	in := []float64{3, 1, 2}
	Median(in)
	assert.Equal(t, []float64{3, 1, 2}, in)
}
