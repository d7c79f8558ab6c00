package summary

import (
	"math"
	"sort"

	"github.com/AngelCh415/SDR_GO/internal/models"
)

// rate builds a RateSummary with a nil Rate when the denominator is zero.
func rate(num, den int) models.RateSummary {
	out := models.RateSummary{Numerator: num, Denominator: den}
	if den > 0 {
		r := float64(num) / float64(den)
		out.Rate = &r
	}
	return out
}

func countRate(evs []models.DerivedEvent, den, num func(models.DerivedEvent) bool) models.RateSummary {
	var n, d int
	for _, ev := range evs {
		if den(ev) {
			d++
			if num(ev) {
				n++
			}
		}
	}
	return rate(n, d)
}

// DialToConnect is connects over dials, restricted to the call channel.
func DialToConnect(evs []models.DerivedEvent) models.RateSummary {
	return countRate(evs,
		func(e models.DerivedEvent) bool { return e.IsDial },
		func(e models.DerivedEvent) bool { return e.IsConnected })
}

func ConnectToConversation(evs []models.DerivedEvent) models.RateSummary {
	return countRate(evs,
		func(e models.DerivedEvent) bool { return e.IsConnected },
		func(e models.DerivedEvent) bool { return e.IsConversation })
}

func MeetingToQualified(evs []models.DerivedEvent) models.RateSummary {
	return countRate(evs,
		func(e models.DerivedEvent) bool { return e.IsMeetingHeld },
		func(e models.DerivedEvent) bool { return e.IsQualified })
}

func NoShowRate(evs []models.DerivedEvent) models.RateSummary {
	return countRate(evs,
		func(e models.DerivedEvent) bool { return e.IsMeetingBooked },
		func(e models.DerivedEvent) bool { return e.IsNoShow })
}

// PipelineHealth averages the available stage rates as percentages, skipping
// nil rates, and rounds only the final composite. All-nil entities carry no
// score.
func PipelineHealth(dialToConnect, connectToConversation, meetingToQualified models.RateSummary) *int {
	var sum float64
	var n int
	for _, r := range []models.RateSummary{dialToConnect, connectToConversation, meetingToQualified} {
		if r.Rate != nil {
			sum += *r.Rate * 100
			n++
		}
	}
	if n == 0 {
		return nil
	}
	score := int(math.Round(sum / float64(n)))
	return &score
}

// Median returns nil for empty input; even-length inputs average the two
// central values.
func Median(values []float64) *float64 {
	if len(values) == 0 {
		return nil
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	var m float64
	if len(sorted)%2 == 0 {
		m = (sorted[mid-1] + sorted[mid]) / 2
	} else {
		m = sorted[mid]
	}
	return &m
}
