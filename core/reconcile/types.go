package reconcile

// Direction identifies which way events are being pushed. The matching
// heuristic differs per direction because pushed-to-calendar titles are
// prefixed with an emoji while database titles are not.
type Direction string

const (
	// DirectionDatabaseToCalendar pushes database events missing from the calendar.
	DirectionDatabaseToCalendar Direction = "database_to_calendar"
	// DirectionCalendarToDatabase pushes calendar events missing from the database.
	DirectionCalendarToDatabase Direction = "calendar_to_database"
)

// Target returns the origin written to in this direction.
func (d Direction) Target() string {
	if d == DirectionDatabaseToCalendar {
		return "calendar"
	}
	return "database"
}

// Outcome labels what happened to a single candidate event during a pass.
type Outcome string

const (
	// OutcomePushed means the event was created on the opposite origin.
	OutcomePushed Outcome = "pushed"
	// OutcomeIgnored means the event was judged already present and skipped.
	OutcomeIgnored Outcome = "ignored"
	// OutcomeFailed means the create call failed; the pass continued.
	OutcomeFailed Outcome = "failed"
)

// EventOutcome is the per-event result entry of a sync report.
type EventOutcome struct {
	// Title is the candidate event's title.
	Title string `json:"title"`

	// Direction is the push direction the event was considered for.
	Direction Direction `json:"direction"`

	// Outcome labels the result: pushed, ignored, or failed.
	Outcome Outcome `json:"outcome"`

	// Reason explains ignored and failed outcomes. Empty for pushes.
	Reason string `json:"reason,omitempty"`
}

// Summary provides aggregate counts over all outcomes of a pass.
type Summary struct {
	// Pushed counts events created on the opposite origin.
	Pushed int `json:"pushed"`

	// Ignored counts events judged already present.
	Ignored int `json:"ignored"`

	// Failed counts events whose create call failed.
	Failed int `json:"failed"`
}

// SyncReport aggregates the result of one full bidirectional pass.
type SyncReport struct {
	// FetchedDatabase is the number of events fetched from the database origin.
	FetchedDatabase int `json:"fetched_database"`

	// FetchedCalendar is the number of events fetched from the calendar origin.
	FetchedCalendar int `json:"fetched_calendar"`

	// Outcomes contains one entry per candidate event, in processing order.
	Outcomes []EventOutcome `json:"outcomes"`

	// Summary provides aggregate counts.
	Summary Summary `json:"summary"`
}

func (r *SyncReport) record(o EventOutcome) {
	r.Outcomes = append(r.Outcomes, o)
	switch o.Outcome {
	case OutcomePushed:
		r.Summary.Pushed++
	case OutcomeIgnored:
		r.Summary.Ignored++
	case OutcomeFailed:
		r.Summary.Failed++
	}
}
