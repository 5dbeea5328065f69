package repository

import "time"

// CreateEventOptions holds parameters for inserting a new Event.
// StartsAt is the absolute start timestamp derived from Date and StartTime;
// the store keeps it so the watcher can query by time window.
type CreateEventOptions struct {
	Title       string
	Date        string
	StartTime   string
	EndTime     string
	Activity    string
	Description string
	Latitude    float64
	Longitude   float64
	Indoor      bool
	StartsAt    time.Time
}

// ListEventsOptions holds pagination parameters for listing Events.
type ListEventsOptions struct {
	Limit  int
	Offset int
}

// UpdateEventOptions holds parameters for updating an existing Event.
type UpdateEventOptions struct {
	ID          int64
	Title       string
	Date        string
	StartTime   string
	EndTime     string
	Activity    string
	Description string
	Latitude    float64
	Longitude   float64
	Indoor      bool
	StartsAt    time.Time
}
