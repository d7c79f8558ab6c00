// Package derive turns raw outreach events into derived events carrying
// funnel-stage flags and first-contact / first-meeting attribution. Derive is
// a pure function: output order equals input order and the input is never
// mutated.
package derive

import (
	"sort"

	"github.com/AngelCh415/SDR_GO/internal/models"
)

type outcomeFlags struct {
	connected     bool
	conversation  bool
	meetingBooked bool
	meetingHeld   bool
	qualified     bool
	noShow        bool
}

// flagTable encodes the outcome progression: each outcome implies the flags
// of all weaker outcomes. no_show implies meeting_booked only.
var flagTable = map[models.Outcome]outcomeFlags{
	models.OutcomeNoAnswer:      {},
	models.OutcomeVoicemail:     {},
	models.OutcomeConnected:     {connected: true},
	models.OutcomeConversation:  {connected: true, conversation: true},
	models.OutcomeMeetingBooked: {connected: true, conversation: true, meetingBooked: true},
	models.OutcomeMeetingHeld:   {connected: true, conversation: true, meetingBooked: true, meetingHeld: true},
	models.OutcomeNoShow:        {connected: true, conversation: true, meetingBooked: true, noShow: true},
	models.OutcomeQualified:     {connected: true, conversation: true, meetingBooked: true, meetingHeld: true, qualified: true},
}

type leadFirsts struct {
	contactID   string
	contactTime int64 // unix milliseconds
	meetingID   string
	meetingTime int64
	hasMeeting  bool
}

// Derive computes the derived view of events. Attribution scans a
// timestamp-sorted copy; equal timestamps keep input order, which is the
// documented tie-break for same-moment first-meeting events.
func Derive(events []models.OutreachEvent) []models.DerivedEvent {
	sorted := append([]models.OutreachEvent(nil), events...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})

	firsts := make(map[string]*leadFirsts)
	for _, ev := range sorted {
		f, ok := firsts[ev.LeadID]
		if !ok {
			f = &leadFirsts{contactID: ev.EventID, contactTime: ev.Timestamp.UnixMilli()}
			firsts[ev.LeadID] = f
		}
		if !f.hasMeeting && ev.Outcome.MeetingStage() {
			f.hasMeeting = true
			f.meetingID = ev.EventID
			f.meetingTime = ev.Timestamp.UnixMilli()
		}
	}

	out := make([]models.DerivedEvent, len(events))
	for i, ev := range events {
		flags := flagTable[ev.Outcome]
		d := models.DerivedEvent{
			OutreachEvent:   ev,
			IsConnected:     flags.connected,
			IsConversation:  flags.conversation,
			IsMeetingBooked: flags.meetingBooked,
			IsMeetingHeld:   flags.meetingHeld,
			IsQualified:     flags.qualified,
			IsNoShow:        flags.noShow,
			IsDial:          ev.Channel == models.ChannelCall,
		}
		f := firsts[ev.LeadID]
		d.IsFirstContact = ev.EventID == f.contactID
		if f.hasMeeting && ev.EventID == f.meetingID {
			days := float64(f.meetingTime-f.contactTime) / 86400000.0
			d.TimeToMeetingDays = &days
		}
		out[i] = d
	}
	return out
}
