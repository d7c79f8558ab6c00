// Package generate builds a synthetic outreach dataset from a seed alone.
// Every draw goes through one seeded stream in a fixed order, so a seed maps
// to exactly one dataset. Generation never fails.
package generate

import (
	"fmt"
	"time"

	"github.com/gosimple/slug"

	"github.com/AngelCh415/SDR_GO/internal/models"
	"github.com/AngelCh415/SDR_GO/internal/rng"
)

// referenceMonday anchors every generated window. Seeded offsets move the
// window in whole weeks so it always starts on a Monday.
var referenceMonday = time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)

var channelWeights = []rng.Weighted[models.Channel]{
	{Item: models.ChannelCall, Weight: 0.62},
	{Item: models.ChannelEmail, Weight: 0.28},
	{Item: models.ChannelLinkedIn, Weight: 0.10},
}

// Per-channel outcome tables. Voicemail carries weight 0 off the call
// channel: the option stays listed but is never drawn.
var outcomeWeights = map[models.Channel][]rng.Weighted[models.Outcome]{
	models.ChannelCall: {
		{Item: models.OutcomeNoAnswer, Weight: 38},
		{Item: models.OutcomeVoicemail, Weight: 18},
		{Item: models.OutcomeConnected, Weight: 16},
		{Item: models.OutcomeConversation, Weight: 14},
		{Item: models.OutcomeMeetingBooked, Weight: 7},
		{Item: models.OutcomeMeetingHeld, Weight: 4},
		{Item: models.OutcomeNoShow, Weight: 1.5},
		{Item: models.OutcomeQualified, Weight: 1.5},
	},
	models.ChannelEmail: {
		{Item: models.OutcomeNoAnswer, Weight: 58},
		{Item: models.OutcomeVoicemail, Weight: 0},
		{Item: models.OutcomeConnected, Weight: 15},
		{Item: models.OutcomeConversation, Weight: 14},
		{Item: models.OutcomeMeetingBooked, Weight: 7},
		{Item: models.OutcomeMeetingHeld, Weight: 3},
		{Item: models.OutcomeNoShow, Weight: 1},
		{Item: models.OutcomeQualified, Weight: 2},
	},
	models.ChannelLinkedIn: {
		{Item: models.OutcomeNoAnswer, Weight: 48},
		{Item: models.OutcomeVoicemail, Weight: 0},
		{Item: models.OutcomeConnected, Weight: 20},
		{Item: models.OutcomeConversation, Weight: 19},
		{Item: models.OutcomeMeetingBooked, Weight: 8},
		{Item: models.OutcomeMeetingHeld, Weight: 3},
		{Item: models.OutcomeNoShow, Weight: 1},
		{Item: models.OutcomeQualified, Weight: 1},
	},
}

var objectionWeights = []rng.Weighted[models.Objection]{
	{Item: models.ObjectionTiming, Weight: 42},
	{Item: models.ObjectionBudget, Weight: 32},
	{Item: models.ObjectionAuthority, Weight: 10},
	{Item: models.ObjectionNeed, Weight: 8},
	{Item: models.ObjectionOther, Weight: 8},
}

// Dataset generates the full universe for a seed. Idempotent: the same seed
// yields a byte-identical dataset.
func Dataset(seed string) models.GeneratedDataset {
	s := rng.New(seed)

	teams := pickTeams(s)
	industries := pickIndustries(s)
	sdrs := pickSDRs(s, teams)
	companies := pickCompanies(s, industries)
	leadsByCompany := buildLeadPools(s, companies)

	days := buildWindow(s)
	dayOptions := make([]rng.Weighted[time.Time], len(days))
	for i, d := range days {
		dayOptions[i] = rng.Weighted[time.Time]{Item: d, Weight: dayWeight(d)}
	}
	var tueThu []time.Time
	for _, d := range days {
		switch d.Weekday() {
		case time.Tuesday, time.Wednesday, time.Thursday:
			tueThu = append(tueThu, d)
		}
	}

	companiesByIndustry := make(map[string][]models.Company)
	for _, c := range companies {
		companiesByIndustry[c.Industry] = append(companiesByIndustry[c.Industry], c)
	}
	quiet := make(map[string]bool, len(industries))
	for _, ind := range industries {
		quiet[ind.Name] = ind.Quiet
	}

	n := s.IntBetween(2000, 3000)
	events := make([]models.OutreachEvent, 0, n)
	for i := 0; i < n; i++ {
		day := rng.PickWeighted(s, dayOptions)
		sdr := rng.Sample(s, sdrs)
		industry := rng.Sample(s, industries)
		company := rng.Sample(s, companiesByIndustry[industry.Name])
		lead := rng.Sample(s, leadsByCompany[company.ID])
		channel := rng.PickWeighted(s, channelWeights)
		outcome := pickOutcome(s, channel, quiet[industry.Name])
		ts := pickTimestamp(s, day, tueThu, outcome)

		events = append(events, models.OutreachEvent{
			EventID:   fmt.Sprintf("evt-%06d", i+1),
			LeadID:    lead,
			Timestamp: ts,
			WeekStart: WeekStartUTC(ts),
			SDRID:     sdr.ID,
			SDRName:   sdr.Name,
			Team:      sdr.Team,
			Company:   company.Name,
			Industry:  industry.Name,
			Channel:   channel,
			Outcome:   outcome,
			Objection: pickObjection(s, outcome),
		})
	}

	return models.GeneratedDataset{
		Seed:       seed,
		Events:     events,
		SDRs:       sdrs,
		Teams:      teams,
		Industries: industries,
		Companies:  companies,
	}
}

// WeekStartUTC returns the Monday 00:00 UTC of the week containing t.
func WeekStartUTC(t time.Time) time.Time {
	t = t.UTC()
	offset := (int(t.Weekday()) + 6) % 7 // Monday=0 ... Sunday=6
	y, m, d := t.AddDate(0, 0, -offset).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func pickTeams(s *rng.Stream) []string {
	pool := append([]string(nil), teamPool...)
	rng.Shuffle(s, pool)
	return pool[:s.IntBetween(2, 3)]
}

func pickIndustries(s *rng.Stream) []models.Industry {
	pool := append([]string(nil), industryPool...)
	rng.Shuffle(s, pool)
	n := s.IntBetween(6, 8)
	out := make([]models.Industry, 0, n)
	for _, name := range pool[:n] {
		out = append(out, models.Industry{Name: name, Quiet: s.Chance(0.3)})
	}
	return out
}

func pickSDRs(s *rng.Stream, teams []string) []models.SDR {
	first := append([]string(nil), firstNamePool...)
	last := append([]string(nil), lastNamePool...)
	rng.Shuffle(s, first)
	rng.Shuffle(s, last)
	n := s.IntBetween(10, 15)
	out := make([]models.SDR, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, models.SDR{
			ID:   fmt.Sprintf("sdr-%02d", i+1),
			Name: first[i] + " " + last[i],
			Team: rng.Sample(s, teams),
		})
	}
	return out
}

func pickCompanies(s *rng.Stream, industries []models.Industry) []models.Company {
	// Pre-shuffled stem x suffix grid keeps names unique without retry loops.
	combos := make([]string, 0, len(companyStemPool)*len(companySuffixPool))
	for _, stem := range companyStemPool {
		for _, suffix := range companySuffixPool {
			combos = append(combos, stem+" "+suffix)
		}
	}
	rng.Shuffle(s, combos)

	var out []models.Company
	next := 0
	for _, ind := range industries {
		n := s.IntBetween(6, 10)
		for i := 0; i < n; i++ {
			name := combos[next]
			next++
			out = append(out, models.Company{
				ID:       slug.Make(name),
				Name:     name,
				Industry: ind.Name,
			})
		}
	}
	return out
}

// buildLeadPools gives each company 8-20 leads. Events pick a lead uniformly
// from the pool of the chosen company, so leads accumulate multiple events.
func buildLeadPools(s *rng.Stream, companies []models.Company) map[string][]string {
	pools := make(map[string][]string, len(companies))
	for _, c := range companies {
		n := s.IntBetween(8, 20)
		leads := make([]string, n)
		for i := range leads {
			leads[i] = fmt.Sprintf("%s-lead-%02d", c.ID, i+1)
		}
		pools[c.ID] = leads
	}
	return pools
}

// buildWindow returns 14-21 contiguous days starting at the reference Monday
// plus a seeded offset of 0, 7 or 14 days, keeping the window Monday-aligned.
func buildWindow(s *rng.Stream) []time.Time {
	start := referenceMonday.AddDate(0, 0, 7*s.IntBetween(0, 2))
	length := s.IntBetween(14, 21)
	days := make([]time.Time, length)
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}

func dayWeight(d time.Time) float64 {
	switch d.Weekday() {
	case time.Monday, time.Tuesday, time.Wednesday, time.Thursday:
		return 1.15
	case time.Friday:
		return 0.9
	default:
		return 0.65
	}
}

// pickOutcome draws from the channel table, scaled for quiet industries
// (meeting stages x0.6, connect/conversation x1.2) and renormalized to sum 1
// before sampling.
func pickOutcome(s *rng.Stream, channel models.Channel, quietIndustry bool) models.Outcome {
	base := outcomeWeights[channel]
	if !quietIndustry {
		return rng.PickWeighted(s, base)
	}
	adjusted := make([]rng.Weighted[models.Outcome], len(base))
	var sum float64
	for i, o := range base {
		w := o.Weight
		switch {
		case o.Item.MeetingStage():
			w *= 0.6
		case o.Item == models.OutcomeConnected || o.Item == models.OutcomeConversation:
			w *= 1.2
		}
		adjusted[i] = rng.Weighted[models.Outcome]{Item: o.Item, Weight: w}
		sum += w
	}
	for i := range adjusted {
		adjusted[i].Weight /= sum
	}
	return rng.PickWeighted(s, adjusted)
}

// pickTimestamp places the event within its day. Meeting-stage outcomes are
// biased toward Tue-Thu 70% of the time and constrained to 10:00-16:00;
// everything else lands in 08:00-18:00.
func pickTimestamp(s *rng.Stream, day time.Time, tueThu []time.Time, outcome models.Outcome) time.Time {
	var hour int
	if outcome.MeetingStage() {
		if s.Chance(0.7) && !isTueThu(day) && len(tueThu) > 0 {
			day = rng.Sample(s, tueThu)
		}
		hour = s.IntBetween(10, 16)
	} else {
		hour = s.IntBetween(8, 18)
	}
	return time.Date(day.Year(), day.Month(), day.Day(),
		hour, s.IntBetween(0, 59), s.IntBetween(0, 59), 0, time.UTC)
}

func isTueThu(d time.Time) bool {
	switch d.Weekday() {
	case time.Tuesday, time.Wednesday, time.Thursday:
		return true
	}
	return false
}

func pickObjection(s *rng.Stream, outcome models.Outcome) *models.Objection {
	var p float64
	switch outcome {
	case models.OutcomeConversation, models.OutcomeMeetingBooked, models.OutcomeMeetingHeld:
		p = 0.45
	case models.OutcomeQualified:
		p = 0.25
	case models.OutcomeNoAnswer, models.OutcomeVoicemail, models.OutcomeConnected, models.OutcomeNoShow:
		return nil
	}
	if !s.Chance(p) {
		return nil
	}
	obj := rng.PickWeighted(s, objectionWeights)
	return &obj
}
