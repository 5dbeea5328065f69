package model

import "time"

// Event is a planned activity with a resolved schedule and location.
// Date and the time-of-day fields stay in their wire formats ("2006-01-02"
// and "15:04"); absolute timestamps are derived where needed.
type Event struct {
	ID          int64
	UserID      string
	Title       string
	Date        string
	StartTime   string
	EndTime     string
	Activity    string
	Description string
	Latitude    float64
	Longitude   float64
	Indoor      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
