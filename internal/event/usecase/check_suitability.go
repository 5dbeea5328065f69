package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"weatherornot/internal/event"
	"weatherornot/internal/model"
	"weatherornot/pkg/edr"
)

// CheckSuitability decides whether forecast weather fits the event window.
// Indoor events short-circuit to suitable without touching the forecast
// provider or the oracle.
func (uc *implUseCase) CheckSuitability(ctx context.Context, ev model.Event) (event.SuitabilityVerdict, error) {
	if ev.Indoor {
		return event.SuitabilityVerdict{Suitable: true, Reason: reasonIndoorEvent}, nil
	}

	from, to, err := uc.eventWindow(ev)
	if err != nil {
		return event.SuitabilityVerdict{}, err
	}

	return uc.checkWindow(ctx, ev, from, to)
}

// checkWindow fetches forecast values for [from, to] and asks the verdict
// oracle. A window outside provider coverage is a domain result, not an
// error.
func (uc *implUseCase) checkWindow(ctx context.Context, ev model.Event, from, to time.Time) (event.SuitabilityVerdict, error) {
	values, err := uc.forecast.FetchForecast(ctx, ev.Latitude, ev.Longitude, from, to, ev.Description)
	if errors.Is(err, edr.ErrUnavailable) {
		return event.SuitabilityVerdict{Suitable: false, Reason: reasonAlreadyStarted}, nil
	}
	if err != nil {
		return event.SuitabilityVerdict{}, fmt.Errorf("forecast fetch failed: %w", err)
	}

	uc.l.Debugf(ctx, "checkWindow: fetched %d parameters for window %s..%s", len(values), from, to)

	return uc.weatherVerdict(ctx, ev, values)
}

// weatherVerdict asks the verdict oracle to judge the fetched parameters.
func (uc *implUseCase) weatherVerdict(ctx context.Context, ev model.Event, values map[string]edr.ParameterValue) (event.SuitabilityVerdict, error) {
	var params strings.Builder
	for name, pv := range values {
		desc := pv.Description
		if desc == "" {
			desc = name
		}
		unit := pv.Unit
		if unit == "" {
			unit = "n/a"
		}
		fmt.Fprintf(&params, "- %s (%s): %g\n", desc, unit, pv.Value)
	}

	activity := fmt.Sprintf("Planned activity: %s (%s). %s", ev.Title, ev.Activity, ev.Description)

	raw, err := uc.completeJSON(ctx, verdictSystemPrompt,
		activity,
		"The forecast parameters are:\n"+params.String(),
	)
	if err != nil {
		return event.SuitabilityVerdict{}, err
	}

	var verdict event.SuitabilityVerdict
	if err := json.Unmarshal([]byte(raw), &verdict); err != nil {
		return event.SuitabilityVerdict{}, fmt.Errorf("%w: unparseable verdict JSON: %v", event.ErrOracle, err)
	}
	return verdict, nil
}
