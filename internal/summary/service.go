package summary

import (
	"net/url"
	"strings"
	"time"

	"github.com/AngelCh415/SDR_GO/internal/models"
	"github.com/AngelCh415/SDR_GO/internal/store"
)

// Service answers dashboard queries over the store's current snapshot. The
// UI layer only ever calls this; it never recomputes rates itself.
type Service struct{ st *store.Store }

func NewService(st *store.Store) *Service { return &Service{st: st} }

func norm(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

func csvSet(s string) map[string]struct{} {
	out := map[string]struct{}{}
	for _, p := range strings.Split(s, ",") {
		p = norm(p)
		if p != "" {
			out[p] = struct{}{}
		}
	}
	return out
}

// Dashboard filters the derived view by team, sdr, industry, channel and an
// inclusive from/to date window, then builds the snapshot. Unparsable dates
// are ignored, unknown filter values simply match nothing.
func (s *Service) Dashboard(v url.Values) models.DashboardSummaries {
	ds, derived := s.st.Snapshot()

	teamSet := csvSet(v.Get("team"))
	sdrSet := csvSet(v.Get("sdr"))
	industrySet := csvSet(v.Get("industry"))
	channelSet := csvSet(v.Get("channel"))

	var from, to *time.Time
	if t, err := time.Parse("2006-01-02", v.Get("from")); err == nil {
		from = &t
	}
	if t, err := time.Parse("2006-01-02", v.Get("to")); err == nil {
		end := t.AddDate(0, 0, 1)
		to = &end
	}

	filtered := make([]models.DerivedEvent, 0, len(derived))
	for _, ev := range derived {
		if !inSet(teamSet, ev.Team) || !inSet(sdrSet, ev.SDRID) ||
			!inSet(industrySet, ev.Industry) || !inSet(channelSet, string(ev.Channel)) {
			continue
		}
		if from != nil && ev.Timestamp.Before(*from) {
			continue
		}
		if to != nil && !ev.Timestamp.Before(*to) {
			continue
		}
		filtered = append(filtered, ev)
	}
	return Build(filtered, ds)
}

func inSet(set map[string]struct{}, v string) bool {
	if len(set) == 0 {
		return true
	}
	_, ok := set[norm(v)]
	return ok
}
