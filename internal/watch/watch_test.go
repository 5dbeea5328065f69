package watch

import (
	"context"
	"errors"
	"testing"
	"time"

	"weatherornot/internal/event"
	"weatherornot/internal/event/repository"
	"weatherornot/internal/model"
)

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

type mockRepo struct {
	upcoming []model.Event
	err      error
	window   time.Duration
}

func (m *mockRepo) CreateEvent(ctx context.Context, sc model.Scope, opt repository.CreateEventOptions) (model.Event, error) {
	return model.Event{}, nil
}
func (m *mockRepo) GetOneEvent(ctx context.Context, sc model.Scope, id int64) (model.Event, error) {
	return model.Event{}, nil
}
func (m *mockRepo) ListEvents(ctx context.Context, sc model.Scope, opt repository.ListEventsOptions) ([]model.Event, error) {
	return nil, nil
}
func (m *mockRepo) UpdateEvent(ctx context.Context, sc model.Scope, opt repository.UpdateEventOptions) (model.Event, error) {
	return model.Event{}, nil
}
func (m *mockRepo) DeleteEvent(ctx context.Context, sc model.Scope, id int64) error {
	return nil
}
func (m *mockRepo) ListUpcomingOutdoorEvents(ctx context.Context, from, to time.Time) ([]model.Event, error) {
	m.window = to.Sub(from)
	return m.upcoming, m.err
}

type mockUseCase struct {
	checked  []int64
	verdicts map[int64]event.SuitabilityVerdict
	errs     map[int64]error
}

func (m *mockUseCase) Advance(ctx context.Context, sc model.Scope, input event.AdvanceInput) (event.AdvanceOutput, error) {
	return event.AdvanceOutput{}, nil
}
func (m *mockUseCase) CheckSuitability(ctx context.Context, ev model.Event) (event.SuitabilityVerdict, error) {
	m.checked = append(m.checked, ev.ID)
	if err, ok := m.errs[ev.ID]; ok {
		return event.SuitabilityVerdict{}, err
	}
	return m.verdicts[ev.ID], nil
}
func (m *mockUseCase) FindAlternativeSlot(ctx context.Context, ev model.Event) (event.SlotProposal, error) {
	return event.SlotProposal{}, nil
}
func (m *mockUseCase) Create(ctx context.Context, sc model.Scope, ev model.Event) (model.Event, error) {
	return ev, nil
}
func (m *mockUseCase) List(ctx context.Context, sc model.Scope) ([]model.Event, error) {
	return nil, nil
}
func (m *mockUseCase) Detail(ctx context.Context, sc model.Scope, id int64) (model.Event, error) {
	return model.Event{}, nil
}
func (m *mockUseCase) Update(ctx context.Context, sc model.Scope, ev model.Event) (model.Event, error) {
	return ev, nil
}
func (m *mockUseCase) Delete(ctx context.Context, sc model.Scope, id int64) error {
	return nil
}

func TestSweep(t *testing.T) {
	ctx := context.Background()

	t.Run("every upcoming event is checked, errors skip to the next", func(t *testing.T) {
		repo := &mockRepo{upcoming: []model.Event{{ID: 1}, {ID: 2}, {ID: 3}}}
		uc := &mockUseCase{
			verdicts: map[int64]event.SuitabilityVerdict{
				1: {Suitable: true},
				3: {Suitable: false, Reason: "heavy rain"},
			},
			errs: map[int64]error{2: errors.New("oracle down")},
		}

		w := New(&mockLogger{}, repo, uc, "@every 1h")
		w.sweep(ctx)

		if len(uc.checked) != 3 {
			t.Fatalf("checked %d events, want 3", len(uc.checked))
		}
		if repo.window != lookahead {
			t.Errorf("scan window = %s, want %s", repo.window, lookahead)
		}
	})

	t.Run("listing failure aborts the sweep", func(t *testing.T) {
		repo := &mockRepo{err: errors.New("db gone")}
		uc := &mockUseCase{}

		w := New(&mockLogger{}, repo, uc, "@every 1h")
		w.sweep(ctx)

		if len(uc.checked) != 0 {
			t.Errorf("checked %d events after a list failure", len(uc.checked))
		}
	})
}
