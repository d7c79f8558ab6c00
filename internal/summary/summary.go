// Package summary is the rate and aggregate engine: canonical conversion
// rates, distinct-lead funnels, pipeline health scores and the dashboard
// snapshot. Everything here is a pure function over a derived-event slice.
package summary

import (
	"sort"
	"time"

	"github.com/AngelCh415/SDR_GO/internal/models"
)

// Build computes the full dashboard snapshot for a derived view. The owning
// dataset supplies directory lookups (SDR names, teams, industries); the
// result carries no state of its own and can be rebuilt at any time.
func Build(derived []models.DerivedEvent, ds models.GeneratedDataset) models.DashboardSummaries {
	out := models.DashboardSummaries{
		Seed:                  ds.Seed,
		Totals:                totals(derived),
		DialToConnect:         DialToConnect(derived),
		ConnectToConversation: ConnectToConversation(derived),
		MeetingToQualified:    MeetingToQualified(derived),
		NoShowRate:            NoShowRate(derived),
		CompanyFunnels: Funnel(derived, func(e models.DerivedEvent) string { return e.Company }),
		TeamFunnels:    Funnel(derived, func(e models.DerivedEvent) string { return e.Team }),
		SDRFunnels:     Funnel(derived, func(e models.DerivedEvent) string { return e.SDRName }),
		WeeklyVolume:   weeklyVolume(derived),
	}

	out.SDRStats = entityStats(derived, ds.SDRs)
	out.TeamStats = groupStats(derived, func(e models.DerivedEvent) string { return e.Team })
	out.IndustryStats = groupStats(derived, func(e models.DerivedEvent) string { return e.Industry })

	var ttm []float64
	for _, ev := range derived {
		if ev.TimeToMeetingDays != nil {
			ttm = append(ttm, *ev.TimeToMeetingDays)
		}
	}
	if len(ttm) > 0 {
		var sum float64
		for _, v := range ttm {
			sum += v
		}
		mean := sum / float64(len(ttm))
		out.TimeToMeetingMeanDays = &mean
	}
	out.TimeToMeetingMedianDays = Median(ttm)

	return out
}

func totals(derived []models.DerivedEvent) models.Totals {
	t := models.Totals{Events: len(derived)}
	leads := map[string]struct{}{}
	for _, ev := range derived {
		leads[ev.LeadID] = struct{}{}
		if ev.IsDial {
			t.Dials++
		}
		if ev.IsConnected {
			t.Connects++
		}
		if ev.IsConversation {
			t.Conversations++
		}
		if ev.IsMeetingBooked {
			t.MeetingsBooked++
		}
		if ev.IsMeetingHeld {
			t.MeetingsHeld++
		}
		if ev.IsQualified {
			t.Qualified++
		}
	}
	t.Leads = len(leads)
	return t
}

// entityStats ranks SDRs by pipeline health. Entities with no score (all
// three stage rates nil) are excluded from ranked output.
func entityStats(derived []models.DerivedEvent, sdrs []models.SDR) []models.EntityStats {
	byID := make(map[string][]models.DerivedEvent)
	for _, ev := range derived {
		byID[ev.SDRID] = append(byID[ev.SDRID], ev)
	}
	var out []models.EntityStats
	for _, sdr := range sdrs {
		evs := byID[sdr.ID]
		row := statsRow(sdr.Name, evs)
		if row.PipelineHealth == nil {
			continue
		}
		row.ID = sdr.ID
		row.Team = sdr.Team
		out = append(out, row)
	}
	rankStats(out)
	return out
}

func groupStats(derived []models.DerivedEvent, key func(models.DerivedEvent) string) []models.EntityStats {
	groups := make(map[string][]models.DerivedEvent)
	var order []string
	for _, ev := range derived {
		k := key(ev)
		if _, ok := groups[k]; !ok {
			order = append(order, k)
		}
		groups[k] = append(groups[k], ev)
	}
	var out []models.EntityStats
	for _, k := range order {
		row := statsRow(k, groups[k])
		if row.PipelineHealth == nil {
			continue
		}
		out = append(out, row)
	}
	rankStats(out)
	return out
}

func statsRow(name string, evs []models.DerivedEvent) models.EntityStats {
	row := models.EntityStats{
		Name:                  name,
		Events:                len(evs),
		DialToConnect:         DialToConnect(evs),
		ConnectToConversation: ConnectToConversation(evs),
		MeetingToQualified:    MeetingToQualified(evs),
		NoShowRate:            NoShowRate(evs),
	}
	row.PipelineHealth = PipelineHealth(row.DialToConnect, row.ConnectToConversation, row.MeetingToQualified)
	return row
}

func rankStats(rows []models.EntityStats) {
	sort.Slice(rows, func(i, j int) bool {
		if *rows[i].PipelineHealth != *rows[j].PipelineHealth {
			return *rows[i].PipelineHealth > *rows[j].PipelineHealth
		}
		return rows[i].Name < rows[j].Name
	})
}

func weeklyVolume(derived []models.DerivedEvent) []models.WeekVolume {
	byWeek := make(map[time.Time]*models.WeekVolume)
	for _, ev := range derived {
		w, ok := byWeek[ev.WeekStart]
		if !ok {
			w = &models.WeekVolume{WeekStart: ev.WeekStart}
			byWeek[ev.WeekStart] = w
		}
		w.Events++
		if ev.Outcome.MeetingStage() {
			w.Meetings++
		}
	}
	out := make([]models.WeekVolume, 0, len(byWeek))
	for _, w := range byWeek {
		out = append(out, *w)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].WeekStart.Before(out[j].WeekStart) })
	return out
}
