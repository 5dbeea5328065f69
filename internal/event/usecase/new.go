package usecase

import (
	"context"
	"time"

	"weatherornot/internal/event"
	"weatherornot/internal/event/repository"
	"weatherornot/pkg/edr"
	"weatherornot/pkg/gcalendar"
	"weatherornot/pkg/log"
	"weatherornot/pkg/openai"
)

// Completer is the completion oracle the dialogue engine and the verdict
// step talk to. Satisfied by openai.IOpenAI.
type Completer interface {
	Complete(ctx context.Context, req *openai.Request) (string, error)
}

// ForecastProvider fetches forecast parameter values for a point and time
// window. Satisfied by *edr.Client.
type ForecastProvider interface {
	FetchForecast(ctx context.Context, lat, lon float64, from, to time.Time, activityHint string) (map[string]edr.ParameterValue, error)
}

// CalendarClient exports confirmed events to an external calendar.
// Satisfied by *gcalendar.Client.
type CalendarClient interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

// ConsistencyOracle decides whether a fully filled template is valid.
// The default implementation asks the completion oracle; tests may swap in a
// deterministic validator.
type ConsistencyOracle interface {
	Validate(ctx context.Context, partial event.PartialEvent) (bool, error)
}

// Config holds use-case level settings.
type Config struct {
	// Timezone is the IANA zone event date/time fields are interpreted in.
	Timezone string
	// CalendarID is the target Google calendar; empty selects "primary".
	CalendarID string
}

type implUseCase struct {
	l           log.Logger
	oracle      Completer
	forecast    ForecastProvider
	repo        repository.Repository
	calendar    CalendarClient
	consistency ConsistencyOracle
	location    *time.Location
	calendarID  string
	now         func() time.Time
}

// New creates a new event UseCase instance. A nil consistency oracle selects
// the LLM-backed default; a nil calendar disables calendar export.
func New(
	l log.Logger,
	oracle Completer,
	forecast ForecastProvider,
	repo repository.Repository,
	calendar CalendarClient,
	consistency ConsistencyOracle,
	cfg Config,
) *implUseCase {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		loc = time.UTC
	}

	uc := &implUseCase{
		l:           l,
		oracle:      oracle,
		forecast:    forecast,
		repo:        repo,
		calendar:    calendar,
		consistency: consistency,
		location:    loc,
		calendarID:  cfg.CalendarID,
		now:         time.Now,
	}
	if uc.consistency == nil {
		uc.consistency = &llmConsistency{oracle: oracle}
	}
	return uc
}

// SetClock overrides the time source. Test seam for the slot search.
func (uc *implUseCase) SetClock(now func() time.Time) {
	uc.now = now
}
