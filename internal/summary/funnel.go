package summary

import (
	"sort"

	"github.com/AngelCh415/SDR_GO/internal/models"
)

// topFunnels is how many ranked groups display-oriented summaries keep.
const topFunnels = 5

type leadSets struct {
	dials          map[string]struct{}
	connects       map[string]struct{}
	conversations  map[string]struct{}
	meetingsBooked map[string]struct{}
	meetingsHeld   map[string]struct{}
	qualified      map[string]struct{}
}

func newLeadSets() *leadSets {
	return &leadSets{
		dials:          map[string]struct{}{},
		connects:       map[string]struct{}{},
		conversations:  map[string]struct{}{},
		meetingsBooked: map[string]struct{}{},
		meetingsHeld:   map[string]struct{}{},
		qualified:      map[string]struct{}{},
	}
}

func (l *leadSets) add(ev models.DerivedEvent) {
	if ev.IsDial {
		l.dials[ev.LeadID] = struct{}{}
	}
	if ev.IsConnected {
		l.connects[ev.LeadID] = struct{}{}
	}
	if ev.IsConversation {
		l.conversations[ev.LeadID] = struct{}{}
	}
	if ev.IsMeetingBooked {
		l.meetingsBooked[ev.LeadID] = struct{}{}
	}
	if ev.IsMeetingHeld {
		l.meetingsHeld[ev.LeadID] = struct{}{}
	}
	if ev.IsQualified {
		l.qualified[ev.LeadID] = struct{}{}
	}
}

func (l *leadSets) stages() models.FunnelStages {
	return models.FunnelStages{
		Dials:          len(l.dials),
		Connects:       len(l.connects),
		Conversations:  len(l.conversations),
		MeetingsBooked: len(l.meetingsBooked),
		MeetingsHeld:   len(l.meetingsHeld),
		Qualified:      len(l.qualified),
	}
}

// Funnel groups events by key and counts distinct leads per stage, since one
// lead usually produces several events. Groups are ranked by qualified desc,
// then dials desc, then name asc; only the top 5 are kept.
func Funnel(evs []models.DerivedEvent, key func(models.DerivedEvent) string) []models.FunnelRow {
	groups := make(map[string]*leadSets)
	var order []string
	for _, ev := range evs {
		k := key(ev)
		g, ok := groups[k]
		if !ok {
			g = newLeadSets()
			groups[k] = g
			order = append(order, k)
		}
		g.add(ev)
	}

	rows := make([]models.FunnelRow, 0, len(order))
	for _, k := range order {
		rows = append(rows, models.FunnelRow{Name: k, Stages: groups[k].stages()})
	}
	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Stages.Qualified != b.Stages.Qualified {
			return a.Stages.Qualified > b.Stages.Qualified
		}
		if a.Stages.Dials != b.Stages.Dials {
			return a.Stages.Dials > b.Stages.Dials
		}
		return a.Name < b.Name
	})
	if len(rows) > topFunnels {
		rows = rows[:topFunnels]
	}
	return rows
}
