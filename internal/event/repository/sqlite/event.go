package sqlite

import (
	"context"
	"database/sql"
	"time"

	"weatherornot/internal/event/repository"
	"weatherornot/internal/model"
)

const eventColumns = `id, user_id, title, date, start_time, end_time, activity, description, latitude, longitude, indoor, starts_at, created_at, updated_at`

// CreateEvent inserts a new Event row and returns the created entity.
func (r *implRepository) CreateEvent(ctx context.Context, sc model.Scope, opt repository.CreateEventOptions) (model.Event, error) {
	const query = `
		INSERT INTO events (user_id, title, date, start_time, end_time, activity, description, latitude, longitude, indoor, starts_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx, query,
		sc.UserID, opt.Title, opt.Date, opt.StartTime, opt.EndTime, opt.Activity,
		opt.Description, opt.Latitude, opt.Longitude, boolToInt(opt.Indoor),
		opt.StartsAt.UTC().Format(time.RFC3339), now.Format(time.RFC3339), now.Format(time.RFC3339),
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateEvent"), err)
		return model.Event{}, repository.ErrFailedToInsert
	}

	id, err := res.LastInsertId()
	if err != nil {
		r.l.Errorf(ctx, "%s: last insert id: %v", r.dsn("CreateEvent"), err)
		return model.Event{}, repository.ErrFailedToInsert
	}

	return r.GetOneEvent(ctx, sc, id)
}

// GetOneEvent retrieves a single Event by ID within the user scope.
// Returns zero-value Event (ID == 0) when not found — no error for not-found.
func (r *implRepository) GetOneEvent(ctx context.Context, sc model.Scope, id int64) (model.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = ? AND user_id = ? LIMIT 1`

	ev, err := scanEvent(r.db.QueryRowContext(ctx, query, id, sc.UserID))
	if err == sql.ErrNoRows {
		return model.Event{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneEvent"), err)
		return model.Event{}, repository.ErrFailedToGet
	}
	return ev, nil
}

// ListEvents returns the user's events ordered by start time.
func (r *implRepository) ListEvents(ctx context.Context, sc model.Scope, opt repository.ListEventsOptions) ([]model.Event, error) {
	limit := opt.Limit
	if limit <= 0 {
		limit = 100
	}
	query := `SELECT ` + eventColumns + ` FROM events WHERE user_id = ? ORDER BY starts_at LIMIT ? OFFSET ?`

	rows, err := r.db.QueryContext(ctx, query, sc.UserID, limit, opt.Offset)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListEvents"), err)
		return nil, repository.ErrFailedToList
	}
	defer rows.Close()

	return collectEvents(rows)
}

// UpdateEvent updates an Event by ID and returns the updated entity.
func (r *implRepository) UpdateEvent(ctx context.Context, sc model.Scope, opt repository.UpdateEventOptions) (model.Event, error) {
	const query = `
		UPDATE events
		SET title = ?, date = ?, start_time = ?, end_time = ?, activity = ?, description = ?,
		    latitude = ?, longitude = ?, indoor = ?, starts_at = ?, updated_at = ?
		WHERE id = ? AND user_id = ?`

	res, err := r.db.ExecContext(ctx, query,
		opt.Title, opt.Date, opt.StartTime, opt.EndTime, opt.Activity, opt.Description,
		opt.Latitude, opt.Longitude, boolToInt(opt.Indoor),
		opt.StartsAt.UTC().Format(time.RFC3339), time.Now().UTC().Format(time.RFC3339),
		opt.ID, sc.UserID,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateEvent"), err)
		return model.Event{}, repository.ErrFailedToUpdate
	}

	affected, err := res.RowsAffected()
	if err != nil || affected == 0 {
		return model.Event{}, nil
	}
	return r.GetOneEvent(ctx, sc, opt.ID)
}

// DeleteEvent removes an Event by ID within the user scope.
func (r *implRepository) DeleteEvent(ctx context.Context, sc model.Scope, id int64) error {
	const query = `DELETE FROM events WHERE id = ? AND user_id = ?`

	if _, err := r.db.ExecContext(ctx, query, id, sc.UserID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteEvent"), err)
		return repository.ErrFailedToDelete
	}
	return nil
}

// ListUpcomingOutdoorEvents returns outdoor events across all users starting
// within [from, to]. Used by the weather watcher.
func (r *implRepository) ListUpcomingOutdoorEvents(ctx context.Context, from, to time.Time) ([]model.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE indoor = 0 AND starts_at >= ? AND starts_at <= ? ORDER BY starts_at`

	rows, err := r.db.QueryContext(ctx, query,
		from.UTC().Format(time.RFC3339), to.UTC().Format(time.RFC3339))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListUpcomingOutdoorEvents"), err)
		return nil, repository.ErrFailedToList
	}
	defer rows.Close()

	return collectEvents(rows)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (model.Event, error) {
	var (
		ev       model.Event
		indoor   int
		startsAt string
		created  string
		updated  string
	)
	err := row.Scan(
		&ev.ID, &ev.UserID, &ev.Title, &ev.Date, &ev.StartTime, &ev.EndTime,
		&ev.Activity, &ev.Description, &ev.Latitude, &ev.Longitude, &indoor,
		&startsAt, &created, &updated,
	)
	if err != nil {
		return model.Event{}, err
	}
	ev.Indoor = indoor != 0
	ev.CreatedAt, _ = time.Parse(time.RFC3339, created)
	ev.UpdatedAt, _ = time.Parse(time.RFC3339, updated)
	return ev, nil
}

func collectEvents(rows *sql.Rows) ([]model.Event, error) {
	var events []model.Event
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			return nil, repository.ErrFailedToList
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, repository.ErrFailedToList
	}
	return events, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
