package audit

import (
	"strconv"
	"time"

	"actionkernel/pkg/domain"
)

const (
	eventIDPrefix  = "audit-"
	reportIDPrefix = "report-"
)

// Stamper assigns IDs and timestamps to audit records. IDs are derived from
// the stamping time and are for log correlation only, not uniqueness.
type Stamper struct {
	now func() time.Time
}

// Option configures a Stamper.
type Option func(*Stamper)

// WithClock replaces the wall clock, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Stamper) {
		if now != nil {
			s.now = now
		}
	}
}

// NewStamper returns a Stamper using the wall clock unless overridden.
func NewStamper(opts ...Option) *Stamper {
	s := &Stamper{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var defaultStamper = NewStamper()

// NewEvent stamps an event with the wall clock.
func NewEvent(decision Decision, purpose domain.ConsentPurpose, scope domain.DataScope, contextID domain.ExecutionContextID, reason domain.DenyReason) Event {
	return defaultStamper.Event(decision, purpose, scope, contextID, reason)
}

// NewReport builds a report with the wall clock.
func NewReport(events []Event) Report {
	return defaultStamper.Report(events)
}

// Event builds a fresh audit event.
func (s *Stamper) Event(decision Decision, purpose domain.ConsentPurpose, scope domain.DataScope, contextID domain.ExecutionContextID, reason domain.DenyReason) Event {
	ts := s.stamp()
	return Event{
		ID:        eventIDPrefix + base36Millis(ts),
		Timestamp: ts,
		Decision:  decision,
		Purpose:   purpose,
		Scope:     scope,
		ContextID: contextID,
		Reason:    reason,
	}
}

// Report snapshots events; later changes to the caller's slice do not leak in.
// Invariant: Summary.Allowed + Summary.Denied == len(Events).
func (s *Stamper) Report(events []Event) Report {
	ts := s.stamp()
	snapshot := make([]Event, len(events))
	copy(snapshot, events)

	allowed := 0
	for _, e := range snapshot {
		if e.Decision == DecisionAllow {
			allowed++
		}
	}

	return Report{
		ID:        reportIDPrefix + base36Millis(ts),
		Timestamp: ts,
		Events:    snapshot,
		Summary: Summary{
			Allowed: allowed,
			Denied:  len(snapshot) - allowed,
		},
	}
}

// stamp returns the current time in UTC at millisecond precision, matching
// what the base36 ID encodes.
func (s *Stamper) stamp() time.Time {
	return s.now().UTC().Truncate(time.Millisecond)
}

func base36Millis(t time.Time) string {
	return strconv.FormatInt(t.UnixMilli(), 36)
}
