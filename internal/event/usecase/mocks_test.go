package usecase_test

import (
	"context"
	"errors"
	"time"

	"weatherornot/internal/event"
	"weatherornot/internal/event/repository"
	"weatherornot/internal/model"
	"weatherornot/pkg/edr"
	"weatherornot/pkg/gcalendar"
	"weatherornot/pkg/openai"
)

// mock dependencies

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// mockOracle scripts completion responses by inspecting the request.
type mockOracle struct {
	handler func(req *openai.Request) (string, error)
	calls   int
}

func (m *mockOracle) Complete(ctx context.Context, req *openai.Request) (string, error) {
	m.calls++
	if m.handler == nil {
		return "", errors.New("no oracle handler configured")
	}
	return m.handler(req)
}

// systemPrompt returns the system message of a request, or "".
func systemPrompt(req *openai.Request) string {
	for _, msg := range req.Messages {
		if msg.Role == "system" {
			return msg.Content
		}
	}
	return ""
}

// mockForecast scripts forecast responses per requested window.
type mockForecast struct {
	handler func(from, to time.Time) (map[string]edr.ParameterValue, error)
	calls   int
	windows []time.Time
}

func (m *mockForecast) FetchForecast(ctx context.Context, lat, lon float64, from, to time.Time, activityHint string) (map[string]edr.ParameterValue, error) {
	m.calls++
	m.windows = append(m.windows, from)
	if m.handler == nil {
		return map[string]edr.ParameterValue{}, nil
	}
	return m.handler(from, to)
}

// mockRepo is an in-memory event store.
type mockRepo struct {
	nextID          int64
	events          map[int64]model.Event
	failCreate      bool
	failListUpcoming bool
}

func newMockRepo() *mockRepo {
	return &mockRepo{events: map[int64]model.Event{}}
}

func (m *mockRepo) CreateEvent(ctx context.Context, sc model.Scope, opt repository.CreateEventOptions) (model.Event, error) {
	if m.failCreate {
		return model.Event{}, errors.New("db error")
	}
	m.nextID++
	ev := model.Event{
		ID:          m.nextID,
		UserID:      sc.UserID,
		Title:       opt.Title,
		Date:        opt.Date,
		StartTime:   opt.StartTime,
		EndTime:     opt.EndTime,
		Activity:    opt.Activity,
		Description: opt.Description,
		Latitude:    opt.Latitude,
		Longitude:   opt.Longitude,
		Indoor:      opt.Indoor,
	}
	m.events[ev.ID] = ev
	return ev, nil
}

func (m *mockRepo) GetOneEvent(ctx context.Context, sc model.Scope, id int64) (model.Event, error) {
	ev, ok := m.events[id]
	if !ok || ev.UserID != sc.UserID {
		return model.Event{}, nil
	}
	return ev, nil
}

func (m *mockRepo) ListEvents(ctx context.Context, sc model.Scope, opt repository.ListEventsOptions) ([]model.Event, error) {
	var out []model.Event
	for _, ev := range m.events {
		if ev.UserID == sc.UserID {
			out = append(out, ev)
		}
	}
	return out, nil
}

func (m *mockRepo) UpdateEvent(ctx context.Context, sc model.Scope, opt repository.UpdateEventOptions) (model.Event, error) {
	ev, ok := m.events[opt.ID]
	if !ok || ev.UserID != sc.UserID {
		return model.Event{}, nil
	}
	ev.Title = opt.Title
	ev.Date = opt.Date
	ev.StartTime = opt.StartTime
	ev.EndTime = opt.EndTime
	ev.Activity = opt.Activity
	ev.Description = opt.Description
	ev.Latitude = opt.Latitude
	ev.Longitude = opt.Longitude
	ev.Indoor = opt.Indoor
	m.events[opt.ID] = ev
	return ev, nil
}

func (m *mockRepo) DeleteEvent(ctx context.Context, sc model.Scope, id int64) error {
	delete(m.events, id)
	return nil
}

func (m *mockRepo) ListUpcomingOutdoorEvents(ctx context.Context, from, to time.Time) ([]model.Event, error) {
	if m.failListUpcoming {
		return nil, errors.New("db error")
	}
	var out []model.Event
	for _, ev := range m.events {
		if !ev.Indoor {
			out = append(out, ev)
		}
	}
	return out, nil
}

type mockCalendar struct {
	calls int
	fail  bool
	last  gcalendar.CreateEventRequest
}

func (m *mockCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	m.calls++
	m.last = req
	if m.fail {
		return nil, errors.New("cal error")
	}
	return &gcalendar.Event{}, nil
}

type mockConsistency struct {
	valid bool
	err   error
	calls int
}

func (m *mockConsistency) Validate(ctx context.Context, partial event.PartialEvent) (bool, error) {
	m.calls++
	return m.valid, m.err
}
