package event

import (
	"time"

	"weatherornot/internal/model"
)

// Unset marks a template field the dialogue has not learned yet. It is never
// a valid field value: genuine user content is compared against it verbatim,
// so it must stay distinct from "", "false" and "0".
const Unset = "PLEASE FILL OUT!"

// TemplateField describes one slot of the event template. Expected is the
// content description handed to the extraction oracle.
type TemplateField struct {
	Name     string
	Expected string
}

// TemplateFields is the canonical, ordered event template. The clarifying
// question always addresses the first field still holding Unset, so order
// matters.
var TemplateFields = []TemplateField{
	{Name: "title", Expected: "a short name for the event"},
	{Name: "date", Expected: "the calendar date of the event in YYYY-MM-DD format"},
	{Name: "startTime", Expected: "the local time the event starts, in HH:MM 24-hour format"},
	{Name: "endTime", Expected: "the local time the event ends, in HH:MM 24-hour format"},
	{Name: "activity", Expected: "the kind of activity, one of: walking, running, cycling, hiking, swimming, skiing, picnic, other"},
	{Name: "description", Expected: "a one-sentence description of the planned activity"},
	{Name: "latitude", Expected: "the latitude of the event location as a decimal number"},
	{Name: "longitude", Expected: "the longitude of the event location as a decimal number"},
	{Name: "indoor", Expected: "whether the event takes place indoors, true or false"},
}

// PartialEvent maps every template field name to a concrete value or Unset.
type PartialEvent map[string]string

// NewPartialEvent returns a template with every field Unset.
func NewPartialEvent() PartialEvent {
	p := make(PartialEvent, len(TemplateFields))
	for _, f := range TemplateFields {
		p[f.Name] = Unset
	}
	return p
}

// Backfill restores any structurally missing template key to Unset.
func (p PartialEvent) Backfill() {
	for _, f := range TemplateFields {
		if _, ok := p[f.Name]; !ok {
			p[f.Name] = Unset
		}
	}
}

// Complete reports whether no field holds Unset.
func (p PartialEvent) Complete() bool {
	for _, f := range TemplateFields {
		if p[f.Name] == Unset {
			return false
		}
	}
	return true
}

// FirstUnset returns the first template field still holding Unset, in
// template order. Second result is false when the template is complete.
func (p PartialEvent) FirstUnset() (TemplateField, bool) {
	for _, f := range TemplateFields {
		if p[f.Name] == Unset {
			return f, true
		}
	}
	return TemplateField{}, false
}

// Clone returns an independent copy.
func (p PartialEvent) Clone() PartialEvent {
	c := make(PartialEvent, len(p))
	for k, v := range p {
		c[k] = v
	}
	return c
}

// AdvanceInput is one dialogue turn. Partial is nil on the very first turn;
// Messages is the full utterance history resent by the caller, of which only
// the last one or two entries are read.
type AdvanceInput struct {
	Partial  PartialEvent
	Messages []string
}

// AdvanceOutput is the result of one dialogue turn. Exactly one of three
// shapes: Success with a validated Event and a confirmation summary, a
// terminal rejection (Rejected set, caller must restart), or a clarifying
// question with the current Partial.
type AdvanceOutput struct {
	Success  bool
	Rejected bool
	Event    *model.Event
	Partial  PartialEvent
	Message  string
}

// SuitabilityVerdict is the weather decision for one time window.
type SuitabilityVerdict struct {
	Suitable bool   `json:"suitable"`
	Reason   string `json:"reason"`
}

// SlotProposal is the outcome of the alternative-slot search. When no
// candidate in the bounded search space is accepted, NewTime carries the
// original start time and Accepted is false.
type SlotProposal struct {
	NewTime  time.Time `json:"new_time"`
	Accepted bool      `json:"accepted"`
}
