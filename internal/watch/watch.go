// Package watch periodically re-checks upcoming outdoor events against
// the latest forecast and logs the ones that are no longer suitable.
package watch

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"weatherornot/internal/event"
	"weatherornot/internal/event/repository"
	"weatherornot/pkg/log"
)

// lookahead bounds how far into the future the watcher inspects events.
// It matches the forecast horizon: anything beyond it has no usable data.
const lookahead = 96 * time.Hour

// Watcher drives the periodic suitability sweep.
type Watcher struct {
	l    log.Logger
	repo repository.EventRepository
	uc   event.UseCase
	cron *cron.Cron
	spec string
}

func New(l log.Logger, repo repository.EventRepository, uc event.UseCase, spec string) *Watcher {
	return &Watcher{
		l:    l,
		repo: repo,
		uc:   uc,
		cron: cron.New(),
		spec: spec,
	}
}

// Start registers the sweep on the cron schedule and begins running it.
func (w *Watcher) Start(ctx context.Context) error {
	if _, err := w.cron.AddFunc(w.spec, func() { w.sweep(ctx) }); err != nil {
		return err
	}
	w.cron.Start()
	w.l.Infof(ctx, "watch: scheduled suitability sweep with spec %q", w.spec)
	return nil
}

// Stop halts the schedule and waits for a running sweep to finish.
func (w *Watcher) Stop() {
	stopCtx := w.cron.Stop()
	<-stopCtx.Done()
}

func (w *Watcher) sweep(ctx context.Context) {
	now := time.Now()

	events, err := w.repo.ListUpcomingOutdoorEvents(ctx, now, now.Add(lookahead))
	if err != nil {
		w.l.Errorf(ctx, "watch: listing upcoming events failed: %v", err)
		return
	}

	if len(events) == 0 {
		w.l.Debug(ctx, "watch: no upcoming outdoor events")
		return
	}

	for _, ev := range events {
		verdict, err := w.uc.CheckSuitability(ctx, ev)
		if err != nil {
			w.l.Warnf(ctx, "watch: suitability check failed for event %d: %v", ev.ID, err)
			continue
		}
		if verdict.Suitable {
			continue
		}
		w.l.Warnf(ctx, "watch: event %d (%s on %s %s) no longer suitable: %s",
			ev.ID, ev.Title, ev.Date, ev.StartTime, verdict.Reason)
	}
}
