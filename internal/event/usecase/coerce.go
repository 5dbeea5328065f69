package usecase

import (
	"strconv"
	"strings"

	"weatherornot/internal/event"
	"weatherornot/internal/model"
)

// activityVocabulary is the fixed activity classification set.
var activityVocabulary = map[string]bool{
	"walking": true, "running": true, "cycling": true, "hiking": true,
	"swimming": true, "skiing": true, "picnic": true, "other": true,
}

// parseBoolToken maps a case-insensitive truthy token to true and anything
// else to false. Only called once the field is no longer Unset.
func parseBoolToken(s string) bool {
	return truthyTokens[strings.ToLower(strings.TrimSpace(s))]
}

// parseCoordinate parses a coordinate field, substituting the fallback when
// the value does not parse as a float.
func parseCoordinate(s string, fallback float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fallback
	}
	return v
}

// normalizeActivity lowers the activity and folds anything outside the fixed
// vocabulary to "other".
func normalizeActivity(s string) string {
	a := strings.ToLower(strings.TrimSpace(s))
	if activityVocabulary[a] {
		return a
	}
	return "other"
}

// invalidDateTimeFields returns the date/time fields of a complete template
// that fail structural parsing, in template order.
func (uc *implUseCase) invalidDateTimeFields(p event.PartialEvent) []string {
	var invalid []string
	if _, err := uc.combineDateTime(p["date"], "00:00"); err != nil {
		invalid = append(invalid, "date")
	}
	for _, f := range []string{"startTime", "endTime"} {
		if _, err := uc.combineDateTime("2000-01-01", p[f]); err != nil {
			invalid = append(invalid, f)
		}
	}
	return invalid
}

// buildEvent coerces a complete, structurally valid template into an Event.
// Coercion is idempotent: re-coercing an already coerced value is a no-op.
func buildEvent(p event.PartialEvent) model.Event {
	return model.Event{
		Title:       p["title"],
		Date:        strings.TrimSpace(p["date"]),
		StartTime:   strings.TrimSpace(p["startTime"]),
		EndTime:     strings.TrimSpace(p["endTime"]),
		Activity:    normalizeActivity(p["activity"]),
		Description: p["description"],
		Latitude:    parseCoordinate(p["latitude"], fallbackLatitude),
		Longitude:   parseCoordinate(p["longitude"], fallbackLongitude),
		Indoor:      parseBoolToken(p["indoor"]),
	}
}
