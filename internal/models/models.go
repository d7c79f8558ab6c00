package models

import "time"

// Channel is the outreach medium of one attempt.
type Channel string

const (
	ChannelCall     Channel = "call"
	ChannelEmail    Channel = "email"
	ChannelLinkedIn Channel = "linkedin"
)

func Channels() []Channel {
	return []Channel{ChannelCall, ChannelEmail, ChannelLinkedIn}
}

func (c Channel) Valid() bool {
	switch c {
	case ChannelCall, ChannelEmail, ChannelLinkedIn:
		return true
	}
	return false
}

// Outcome is the result of one outreach attempt. Outcomes form a strict
// progression: each implies the flags of all weaker outcomes. no_show is the
// exception: it implies meeting_booked but not meeting_held or qualified.
type Outcome string

const (
	OutcomeNoAnswer      Outcome = "no_answer"
	OutcomeVoicemail     Outcome = "voicemail"
	OutcomeConnected     Outcome = "connected"
	OutcomeConversation  Outcome = "conversation"
	OutcomeMeetingBooked Outcome = "meeting_booked"
	OutcomeMeetingHeld   Outcome = "meeting_held"
	OutcomeNoShow        Outcome = "no_show"
	OutcomeQualified     Outcome = "qualified"
)

func Outcomes() []Outcome {
	return []Outcome{
		OutcomeNoAnswer, OutcomeVoicemail, OutcomeConnected, OutcomeConversation,
		OutcomeMeetingBooked, OutcomeMeetingHeld, OutcomeNoShow, OutcomeQualified,
	}
}

func (o Outcome) Valid() bool {
	switch o {
	case OutcomeNoAnswer, OutcomeVoicemail, OutcomeConnected, OutcomeConversation,
		OutcomeMeetingBooked, OutcomeMeetingHeld, OutcomeNoShow, OutcomeQualified:
		return true
	}
	return false
}

// MeetingStage reports whether the outcome is a booked-or-later meeting state.
func (o Outcome) MeetingStage() bool {
	switch o {
	case OutcomeMeetingBooked, OutcomeMeetingHeld, OutcomeQualified:
		return true
	case OutcomeNoAnswer, OutcomeVoicemail, OutcomeConnected, OutcomeConversation, OutcomeNoShow:
		return false
	}
	return false
}

// Objection is the reason a lead pushed back, when one was recorded.
type Objection string

const (
	ObjectionBudget    Objection = "budget"
	ObjectionTiming    Objection = "timing"
	ObjectionAuthority Objection = "authority"
	ObjectionNeed      Objection = "need"
	ObjectionOther     Objection = "other"
)

func Objections() []Objection {
	return []Objection{ObjectionBudget, ObjectionTiming, ObjectionAuthority, ObjectionNeed, ObjectionOther}
}

func (o Objection) Valid() bool {
	switch o {
	case ObjectionBudget, ObjectionTiming, ObjectionAuthority, ObjectionNeed, ObjectionOther:
		return true
	}
	return false
}

// OutreachEvent is one immutable outreach attempt against a lead.
type OutreachEvent struct {
	EventID   string     `json:"event_id"`
	LeadID    string     `json:"lead_id"`
	Timestamp time.Time  `json:"timestamp"`
	WeekStart time.Time  `json:"week_start"`
	SDRID     string     `json:"sdr_id"`
	SDRName   string     `json:"sdr_name"`
	Team      string     `json:"team"`
	Company   string     `json:"company"`
	Industry  string     `json:"industry"`
	Channel   Channel    `json:"channel"`
	Outcome   Outcome    `json:"outcome"`
	Objection *Objection `json:"objection"`
}

// DerivedEvent is an OutreachEvent augmented with funnel-stage flags and
// first-contact / first-meeting attribution.
type DerivedEvent struct {
	OutreachEvent

	IsConnected       bool     `json:"is_connected"`
	IsConversation    bool     `json:"is_conversation"`
	IsMeetingBooked   bool     `json:"is_meeting_booked"`
	IsMeetingHeld     bool     `json:"is_meeting_held"`
	IsQualified       bool     `json:"is_qualified"`
	IsNoShow          bool     `json:"is_no_show"`
	IsDial            bool     `json:"is_dial"`
	IsFirstContact    bool     `json:"is_first_contact"`
	TimeToMeetingDays *float64 `json:"time_to_meeting_days"`
}

// RateSummary is a numerator/denominator pair. Rate is nil iff the
// denominator is zero; the engine never divides by zero.
type RateSummary struct {
	Numerator   int      `json:"numerator"`
	Denominator int      `json:"denominator"`
	Rate        *float64 `json:"rate"`
}

type SDR struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Team string `json:"team"`
}

type Industry struct {
	Name  string `json:"name"`
	Quiet bool   `json:"quiet"`
}

type Company struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Industry string `json:"industry"`
}

// GeneratedDataset is a closed universe: every event references entries in
// the directories below. It is replaced wholesale on reseed or import, never
// mutated field by field.
type GeneratedDataset struct {
	Seed       string          `json:"seed"`
	Events     []OutreachEvent `json:"events"`
	SDRs       []SDR           `json:"sdrs"`
	Teams      []string        `json:"teams"`
	Industries []Industry      `json:"industries"`
	Companies  []Company       `json:"companies"`
}

// Totals are raw event counts over the whole derived set.
type Totals struct {
	Events         int `json:"events"`
	Leads          int `json:"leads"`
	Dials          int `json:"dials"`
	Connects       int `json:"connects"`
	Conversations  int `json:"conversations"`
	MeetingsBooked int `json:"meetings_booked"`
	MeetingsHeld   int `json:"meetings_held"`
	Qualified      int `json:"qualified"`
}

// FunnelStages holds distinct-lead counts for the six ordered stages.
type FunnelStages struct {
	Dials          int `json:"dials"`
	Connects       int `json:"connects"`
	Conversations  int `json:"conversations"`
	MeetingsBooked int `json:"meetings_booked"`
	MeetingsHeld   int `json:"meetings_held"`
	Qualified      int `json:"qualified"`
}

type FunnelRow struct {
	Name   string       `json:"name"`
	Stages FunnelStages `json:"stages"`
}

// EntityStats is one ranked row of per-SDR/team/industry aggregates.
type EntityStats struct {
	ID                    string      `json:"id,omitempty"`
	Name                  string      `json:"name"`
	Team                  string      `json:"team,omitempty"`
	Events                int         `json:"events"`
	DialToConnect         RateSummary `json:"dial_to_connect"`
	ConnectToConversation RateSummary `json:"connect_to_conversation"`
	MeetingToQualified    RateSummary `json:"meeting_to_qualified"`
	NoShowRate            RateSummary `json:"no_show_rate"`
	PipelineHealth        *int        `json:"pipeline_health"`
}

type WeekVolume struct {
	WeekStart time.Time `json:"week_start"`
	Events    int       `json:"events"`
	Meetings  int       `json:"meetings"`
}

// DashboardSummaries is a pure derived view over a DerivedEvent collection.
// It holds no independent state and is rebuilt whenever the dataset changes.
type DashboardSummaries struct {
	Seed                  string      `json:"seed"`
	Totals                Totals      `json:"totals"`
	DialToConnect         RateSummary `json:"dial_to_connect"`
	ConnectToConversation RateSummary `json:"connect_to_conversation"`
	MeetingToQualified    RateSummary `json:"meeting_to_qualified"`
	NoShowRate            RateSummary `json:"no_show_rate"`

	CompanyFunnels []FunnelRow `json:"company_funnels"`
	TeamFunnels    []FunnelRow `json:"team_funnels"`
	SDRFunnels     []FunnelRow `json:"sdr_funnels"`

	SDRStats      []EntityStats `json:"sdr_stats"`
	TeamStats     []EntityStats `json:"team_stats"`
	IndustryStats []EntityStats `json:"industry_stats"`

	TimeToMeetingMeanDays   *float64 `json:"time_to_meeting_mean_days"`
	TimeToMeetingMedianDays *float64 `json:"time_to_meeting_median_days"`

	WeeklyVolume []WeekVolume `json:"weekly_volume"`
}
