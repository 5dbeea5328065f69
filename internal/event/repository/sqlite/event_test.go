package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"weatherornot/internal/event/repository"
	"weatherornot/internal/event/repository/sqlite"
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

func newTestRepo(t *testing.T) repository.Repository {
	t.Helper()

	db, err := sqlite.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return sqlite.New(db, &mockLogger{})
}

func createOpts(title string, indoor bool, startsAt time.Time) repository.CreateEventOptions {
	return repository.CreateEventOptions{
		Title:       title,
		Date:        startsAt.Format("2006-01-02"),
		StartTime:   startsAt.Format("15:04"),
		EndTime:     startsAt.Add(time.Hour).Format("15:04"),
		Activity:    "running",
		Description: "A short run.",
		Latitude:    48.1628,
		Longitude:   17.1785,
		Indoor:      indoor,
		StartsAt:    startsAt,
	}
}

func TestEventRepository(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}
	start := time.Date(2024, 6, 15, 8, 0, 0, 0, time.UTC)

	t.Run("create issues sequential ids and round-trips fields", func(t *testing.T) {
		repo := newTestRepo(t)

		first, err := repo.CreateEvent(ctx, sc, createOpts("Run", false, start))
		if err != nil {
			t.Fatalf("CreateEvent failed: %v", err)
		}
		second, err := repo.CreateEvent(ctx, sc, createOpts("Swim", false, start.Add(time.Hour)))
		if err != nil {
			t.Fatalf("CreateEvent failed: %v", err)
		}

		if first.ID == 0 || second.ID != first.ID+1 {
			t.Errorf("ids not sequential: %d, %d", first.ID, second.ID)
		}
		if first.Title != "Run" || first.UserID != "u1" {
			t.Errorf("round-trip mismatch: %+v", first)
		}
		if first.Latitude != 48.1628 {
			t.Errorf("latitude = %v", first.Latitude)
		}
		if first.Indoor {
			t.Error("indoor should round-trip false")
		}
		if first.CreatedAt.IsZero() {
			t.Error("created_at should be set")
		}
	})

	t.Run("get respects user scope and absence is not an error", func(t *testing.T) {
		repo := newTestRepo(t)

		stored, err := repo.CreateEvent(ctx, sc, createOpts("Run", false, start))
		if err != nil {
			t.Fatalf("CreateEvent failed: %v", err)
		}

		foreign, err := repo.GetOneEvent(ctx, model.Scope{UserID: "u2"}, stored.ID)
		if err != nil {
			t.Fatalf("GetOneEvent failed: %v", err)
		}
		if foreign.ID != 0 {
			t.Error("foreign scope must not see the event")
		}

		absent, err := repo.GetOneEvent(ctx, sc, 9999)
		if err != nil {
			t.Fatalf("GetOneEvent failed: %v", err)
		}
		if absent.ID != 0 {
			t.Error("absent id should return a zero event")
		}
	})

	t.Run("list orders by start time within scope", func(t *testing.T) {
		repo := newTestRepo(t)

		if _, err := repo.CreateEvent(ctx, sc, createOpts("Later", false, start.Add(2*time.Hour))); err != nil {
			t.Fatalf("CreateEvent failed: %v", err)
		}
		if _, err := repo.CreateEvent(ctx, sc, createOpts("Earlier", false, start)); err != nil {
			t.Fatalf("CreateEvent failed: %v", err)
		}
		if _, err := repo.CreateEvent(ctx, model.Scope{UserID: "u2"}, createOpts("Other user", false, start)); err != nil {
			t.Fatalf("CreateEvent failed: %v", err)
		}

		events, err := repo.ListEvents(ctx, sc, repository.ListEventsOptions{})
		if err != nil {
			t.Fatalf("ListEvents failed: %v", err)
		}
		if len(events) != 2 {
			t.Fatalf("listed %d events, want 2", len(events))
		}
		if events[0].Title != "Earlier" || events[1].Title != "Later" {
			t.Errorf("wrong order: %q, %q", events[0].Title, events[1].Title)
		}
	})

	t.Run("update changes fields and misses return a zero event", func(t *testing.T) {
		repo := newTestRepo(t)

		stored, err := repo.CreateEvent(ctx, sc, createOpts("Run", false, start))
		if err != nil {
			t.Fatalf("CreateEvent failed: %v", err)
		}

		updated, err := repo.UpdateEvent(ctx, sc, repository.UpdateEventOptions{
			ID:        stored.ID,
			Title:     "Long run",
			Date:      stored.Date,
			StartTime: stored.StartTime,
			EndTime:   stored.EndTime,
			Activity:  stored.Activity,
			Latitude:  stored.Latitude,
			Longitude: stored.Longitude,
			StartsAt:  start,
		})
		if err != nil {
			t.Fatalf("UpdateEvent failed: %v", err)
		}
		if updated.Title != "Long run" {
			t.Errorf("title = %q", updated.Title)
		}

		missed, err := repo.UpdateEvent(ctx, sc, repository.UpdateEventOptions{ID: 9999, StartsAt: start})
		if err != nil {
			t.Fatalf("UpdateEvent failed: %v", err)
		}
		if missed.ID != 0 {
			t.Error("updating an absent id should return a zero event")
		}
	})

	t.Run("delete removes the row", func(t *testing.T) {
		repo := newTestRepo(t)

		stored, err := repo.CreateEvent(ctx, sc, createOpts("Run", false, start))
		if err != nil {
			t.Fatalf("CreateEvent failed: %v", err)
		}
		if err := repo.DeleteEvent(ctx, sc, stored.ID); err != nil {
			t.Fatalf("DeleteEvent failed: %v", err)
		}

		got, err := repo.GetOneEvent(ctx, sc, stored.ID)
		if err != nil {
			t.Fatalf("GetOneEvent failed: %v", err)
		}
		if got.ID != 0 {
			t.Error("deleted event still present")
		}
	})

	t.Run("upcoming outdoor scan crosses user scopes and skips indoor", func(t *testing.T) {
		repo := newTestRepo(t)

		if _, err := repo.CreateEvent(ctx, sc, createOpts("Outdoor in window", false, start)); err != nil {
			t.Fatalf("CreateEvent failed: %v", err)
		}
		if _, err := repo.CreateEvent(ctx, model.Scope{UserID: "u2"}, createOpts("Other user outdoor", false, start.Add(time.Hour))); err != nil {
			t.Fatalf("CreateEvent failed: %v", err)
		}
		if _, err := repo.CreateEvent(ctx, sc, createOpts("Indoor", true, start)); err != nil {
			t.Fatalf("CreateEvent failed: %v", err)
		}
		if _, err := repo.CreateEvent(ctx, sc, createOpts("Too late", false, start.Add(200*time.Hour))); err != nil {
			t.Fatalf("CreateEvent failed: %v", err)
		}

		events, err := repo.ListUpcomingOutdoorEvents(ctx, start.Add(-time.Hour), start.Add(96*time.Hour))
		if err != nil {
			t.Fatalf("ListUpcomingOutdoorEvents failed: %v", err)
		}
		if len(events) != 2 {
			t.Fatalf("listed %d events, want 2", len(events))
		}
		for _, ev := range events {
			if ev.Indoor {
				t.Errorf("indoor event %q in outdoor scan", ev.Title)
			}
		}
	})
}
