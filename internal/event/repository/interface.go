package repository

import (
	"context"
	"time"

	"weatherornot/internal/model"
)

// Repository is the composed interface for the event domain data store.
type Repository interface {
	EventRepository
}

// EventRepository defines all data access methods for the Event entity.
// Every method is scoped to the calling user except ListUpcomingOutdoorEvents,
// which the weather watcher uses across all users.
type EventRepository interface {
	CreateEvent(ctx context.Context, sc model.Scope, opt CreateEventOptions) (model.Event, error)
	GetOneEvent(ctx context.Context, sc model.Scope, id int64) (model.Event, error)
	ListEvents(ctx context.Context, sc model.Scope, opt ListEventsOptions) ([]model.Event, error)
	UpdateEvent(ctx context.Context, sc model.Scope, opt UpdateEventOptions) (model.Event, error)
	DeleteEvent(ctx context.Context, sc model.Scope, id int64) error

	ListUpcomingOutdoorEvents(ctx context.Context, from, to time.Time) ([]model.Event, error)
}
