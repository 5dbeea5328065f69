package usecase

import (
	"context"
	"fmt"

	"weatherornot/internal/event"
	"weatherornot/internal/event/repository"
	"weatherornot/internal/model"
	"weatherornot/pkg/gcalendar"
)

// Create validates and stores a completed event, then attempts a calendar
// export (non-blocking on failure).
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, ev model.Event) (model.Event, error) {
	if ev.Title == "" || ev.Date == "" || ev.StartTime == "" || ev.EndTime == "" {
		return model.Event{}, event.ErrIncompleteEvent
	}

	startsAt, _, err := uc.eventWindow(ev)
	if err != nil {
		return model.Event{}, err
	}

	stored, err := uc.repo.CreateEvent(ctx, sc, repository.CreateEventOptions{
		Title:       ev.Title,
		Date:        ev.Date,
		StartTime:   ev.StartTime,
		EndTime:     ev.EndTime,
		Activity:    normalizeActivity(ev.Activity),
		Description: ev.Description,
		Latitude:    ev.Latitude,
		Longitude:   ev.Longitude,
		Indoor:      ev.Indoor,
		StartsAt:    startsAt,
	})
	if err != nil {
		return model.Event{}, fmt.Errorf("failed to store event: %w", err)
	}

	uc.l.Infof(ctx, "Create: stored event id=%d user=%s title=%q", stored.ID, sc.UserID, stored.Title)

	uc.tryCreateCalendarEvent(ctx, stored)

	return stored, nil
}

// List returns all events in the user scope.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope) ([]model.Event, error) {
	return uc.repo.ListEvents(ctx, sc, repository.ListEventsOptions{})
}

// Detail returns one event by ID.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id int64) (model.Event, error) {
	ev, err := uc.repo.GetOneEvent(ctx, sc, id)
	if err != nil {
		return model.Event{}, err
	}
	if ev.ID == 0 {
		return model.Event{}, event.ErrEventNotFound
	}
	return ev, nil
}

// Update replaces a stored event's fields.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, ev model.Event) (model.Event, error) {
	startsAt, _, err := uc.eventWindow(ev)
	if err != nil {
		return model.Event{}, err
	}

	updated, err := uc.repo.UpdateEvent(ctx, sc, repository.UpdateEventOptions{
		ID:          ev.ID,
		Title:       ev.Title,
		Date:        ev.Date,
		StartTime:   ev.StartTime,
		EndTime:     ev.EndTime,
		Activity:    normalizeActivity(ev.Activity),
		Description: ev.Description,
		Latitude:    ev.Latitude,
		Longitude:   ev.Longitude,
		Indoor:      ev.Indoor,
		StartsAt:    startsAt,
	})
	if err != nil {
		return model.Event{}, err
	}
	if updated.ID == 0 {
		return model.Event{}, event.ErrEventNotFound
	}
	return updated, nil
}

// Delete removes a stored event.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id int64) error {
	ev, err := uc.repo.GetOneEvent(ctx, sc, id)
	if err != nil {
		return err
	}
	if ev.ID == 0 {
		return event.ErrEventNotFound
	}
	return uc.repo.DeleteEvent(ctx, sc, id)
}

// tryCreateCalendarEvent exports a stored event to the configured calendar.
// Failures degrade gracefully to a warning.
func (uc *implUseCase) tryCreateCalendarEvent(ctx context.Context, ev model.Event) {
	if uc.calendar == nil {
		return
	}

	start, end, err := uc.eventWindow(ev)
	if err != nil {
		return
	}

	_, err = uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  uc.calendarID,
		Summary:     ev.Title,
		Description: ev.Description,
		Location:    fmt.Sprintf("%g, %g", ev.Latitude, ev.Longitude),
		StartTime:   start,
		EndTime:     end,
		Timezone:    uc.location.String(),
	})
	if err != nil {
		uc.l.Warnf(ctx, "Create: calendar export failed for event %d (non-fatal): %v", ev.ID, err)
	}
}
