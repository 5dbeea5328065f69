package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"weatherornot/internal/event"
	"weatherornot/internal/event/usecase"
	"weatherornot/internal/model"
	"weatherornot/pkg/edr"
	"weatherornot/pkg/openai"
)

func outdoorEvent() model.Event {
	return model.Event{
		Title:       "Morning run",
		Date:        "2024-06-15",
		StartTime:   "08:00",
		EndTime:     "09:00",
		Activity:    "running",
		Description: "A run along the river.",
		Latitude:    48.1628,
		Longitude:   17.1785,
	}
}

func TestCheckSuitability(t *testing.T) {
	ctx := context.Background()

	t.Run("indoor events skip forecast and oracle entirely", func(t *testing.T) {
		oracle := &mockOracle{}
		forecast := &mockForecast{}
		uc := usecase.New(&mockLogger{}, oracle, forecast, newMockRepo(), nil, nil, usecase.Config{Timezone: "Europe/Bratislava"})

		ev := outdoorEvent()
		ev.Indoor = true

		verdict, err := uc.CheckSuitability(ctx, ev)
		if err != nil {
			t.Fatalf("CheckSuitability failed: %v", err)
		}
		if !verdict.Suitable {
			t.Error("indoor event must be suitable")
		}
		if forecast.calls != 0 {
			t.Errorf("forecast called %d times for an indoor event", forecast.calls)
		}
		if oracle.calls != 0 {
			t.Errorf("oracle called %d times for an indoor event", oracle.calls)
		}
	})

	t.Run("forecast values reach the verdict oracle", func(t *testing.T) {
		forecast := &mockForecast{handler: func(from, to time.Time) (map[string]edr.ParameterValue, error) {
			return map[string]edr.ParameterValue{
				"temperature": {Unit: "K", Description: "Temperature", Value: 291.15},
				"rain":        {Unit: "kg.m-2", Description: "Rain precipitation rate", Value: 0},
			}, nil
		}}
		oracle := &mockOracle{handler: func(req *openai.Request) (string, error) {
			return `{"suitable": true, "reason": "mild and dry"}`, nil
		}}
		uc := usecase.New(&mockLogger{}, oracle, forecast, newMockRepo(), nil, nil, usecase.Config{Timezone: "Europe/Bratislava"})

		verdict, err := uc.CheckSuitability(ctx, outdoorEvent())
		if err != nil {
			t.Fatalf("CheckSuitability failed: %v", err)
		}
		if !verdict.Suitable {
			t.Errorf("expected suitable, got %+v", verdict)
		}
		if verdict.Reason != "mild and dry" {
			t.Errorf("reason = %q", verdict.Reason)
		}
		if forecast.calls != 1 {
			t.Errorf("forecast called %d times, want 1", forecast.calls)
		}
	})

	t.Run("window outside coverage is a negative verdict, not an error", func(t *testing.T) {
		forecast := &mockForecast{handler: func(from, to time.Time) (map[string]edr.ParameterValue, error) {
			return nil, edr.ErrUnavailable
		}}
		oracle := &mockOracle{}
		uc := usecase.New(&mockLogger{}, oracle, forecast, newMockRepo(), nil, nil, usecase.Config{Timezone: "Europe/Bratislava"})

		verdict, err := uc.CheckSuitability(ctx, outdoorEvent())
		if err != nil {
			t.Fatalf("CheckSuitability failed: %v", err)
		}
		if verdict.Suitable {
			t.Error("uncovered window must not be suitable")
		}
		if oracle.calls != 0 {
			t.Errorf("oracle called %d times without forecast data", oracle.calls)
		}
	})

	t.Run("transport failure propagates as an error", func(t *testing.T) {
		forecast := &mockForecast{handler: func(from, to time.Time) (map[string]edr.ParameterValue, error) {
			return nil, errors.New("connection refused")
		}}
		uc := usecase.New(&mockLogger{}, &mockOracle{}, forecast, newMockRepo(), nil, nil, usecase.Config{Timezone: "Europe/Bratislava"})

		if _, err := uc.CheckSuitability(ctx, outdoorEvent()); err == nil {
			t.Fatal("expected an error")
		}
	})

	t.Run("unparseable verdict surfaces as ErrOracle", func(t *testing.T) {
		forecast := &mockForecast{}
		oracle := &mockOracle{handler: func(req *openai.Request) (string, error) {
			return "looks fine to me", nil
		}}
		uc := usecase.New(&mockLogger{}, oracle, forecast, newMockRepo(), nil, nil, usecase.Config{Timezone: "Europe/Bratislava"})

		_, err := uc.CheckSuitability(ctx, outdoorEvent())
		if !errors.Is(err, event.ErrOracle) {
			t.Fatalf("expected ErrOracle, got %v", err)
		}
	})

	t.Run("malformed event window is rejected", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, &mockOracle{}, &mockForecast{}, newMockRepo(), nil, nil, usecase.Config{Timezone: "Europe/Bratislava"})

		ev := outdoorEvent()
		ev.Date = "sometime soon"

		if _, err := uc.CheckSuitability(ctx, ev); err == nil {
			t.Fatal("expected an error for an unparseable date")
		}
	})
}
