package gcalendar

import "time"

// CreateEventRequest carries everything needed to insert a calendar event.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	Location    string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string
}

// Event is the subset of the inserted event the service cares about.
type Event struct {
	ID       string
	HtmlLink string
}
