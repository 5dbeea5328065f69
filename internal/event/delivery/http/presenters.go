package http

import (
	"time"

	"weatherornot/internal/event"
	"weatherornot/internal/model"
)

// --- Request DTOs ---

type dialogueReq struct {
	// Event is the partial template from the previous turn; absent on the
	// first turn.
	Event    map[string]string `json:"event"`
	Messages []string          `json:"messages" binding:"required,min=1"`
}

func (r dialogueReq) toInput() event.AdvanceInput {
	var partial event.PartialEvent
	if r.Event != nil {
		partial = event.PartialEvent(r.Event)
	}
	return event.AdvanceInput{
		Partial:  partial,
		Messages: r.Messages,
	}
}

type eventReq struct {
	Title       string  `json:"title"       binding:"required,min=1,max=255"`
	Date        string  `json:"date"        binding:"required"`
	StartTime   string  `json:"start_time"  binding:"required"`
	EndTime     string  `json:"end_time"    binding:"required"`
	Activity    string  `json:"activity"    binding:"required"`
	Description string  `json:"description" binding:"max=1000"`
	Latitude    float64 `json:"latitude"    binding:"min=-90,max=90"`
	Longitude   float64 `json:"longitude"   binding:"min=-180,max=180"`
	Indoor      bool    `json:"indoor"`
}

func (r eventReq) toModel() model.Event {
	return model.Event{
		Title:       r.Title,
		Date:        r.Date,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		Activity:    r.Activity,
		Description: r.Description,
		Latitude:    r.Latitude,
		Longitude:   r.Longitude,
		Indoor:      r.Indoor,
	}
}

// --- Response DTOs ---

type eventResp struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Date        string    `json:"date"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	Activity    string    `json:"activity"`
	Description string    `json:"description"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Indoor      bool      `json:"indoor"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func newEventResp(ev model.Event) eventResp {
	return eventResp{
		ID:          ev.ID,
		Title:       ev.Title,
		Date:        ev.Date,
		StartTime:   ev.StartTime,
		EndTime:     ev.EndTime,
		Activity:    ev.Activity,
		Description: ev.Description,
		Latitude:    ev.Latitude,
		Longitude:   ev.Longitude,
		Indoor:      ev.Indoor,
		CreatedAt:   ev.CreatedAt,
		UpdatedAt:   ev.UpdatedAt,
	}
}

type dialogueResp struct {
	Success  bool              `json:"success"`
	Rejected bool              `json:"rejected,omitempty"`
	Event    *eventResp        `json:"event,omitempty"`
	Partial  map[string]string `json:"partial,omitempty"`
	Message  string            `json:"message"`
}

func newDialogueResp(out event.AdvanceOutput) dialogueResp {
	resp := dialogueResp{
		Success:  out.Success,
		Rejected: out.Rejected,
		Message:  out.Message,
	}
	if out.Event != nil {
		ev := newEventResp(*out.Event)
		resp.Event = &ev
	}
	if out.Partial != nil {
		resp.Partial = map[string]string(out.Partial)
	}
	return resp
}

type verdictResp struct {
	Suitable bool   `json:"suitable"`
	Reason   string `json:"reason"`
}

type slotResp struct {
	NewTime  time.Time `json:"new_time"`
	Accepted bool      `json:"accepted"`
}

type listResp struct {
	Events []eventResp `json:"events"`
	Count  int         `json:"count"`
}

func newListResp(events []model.Event) listResp {
	items := make([]eventResp, len(events))
	for i, ev := range events {
		items[i] = newEventResp(ev)
	}
	return listResp{Events: items, Count: len(items)}
}
