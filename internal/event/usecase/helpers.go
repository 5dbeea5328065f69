package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"weatherornot/internal/event"
	"weatherornot/internal/model"
	"weatherornot/pkg/openai"
)

// oracleTemperature keeps structured output near-deterministic.
const oracleTemperature = 0.2

// completeJSON asks the oracle for a JSON object and returns the sanitized
// response body.
func (uc *implUseCase) completeJSON(ctx context.Context, system string, userMessages ...string) (string, error) {
	text, err := uc.complete(ctx, system, true, userMessages...)
	if err != nil {
		return "", err
	}
	return sanitizeJSONResponse(text), nil
}

// completeText asks the oracle for free text.
func (uc *implUseCase) completeText(ctx context.Context, system string, userMessages ...string) (string, error) {
	return uc.complete(ctx, system, false, userMessages...)
}

func (uc *implUseCase) complete(ctx context.Context, system string, jsonMode bool, userMessages ...string) (string, error) {
	messages := make([]openai.Message, 0, len(userMessages)+1)
	messages = append(messages, openai.Message{Role: "system", Content: system})
	for _, m := range userMessages {
		messages = append(messages, openai.Message{Role: "user", Content: m})
	}

	text, err := uc.oracle.Complete(ctx, &openai.Request{
		Messages:    messages,
		JSONMode:    jsonMode,
		Temperature: oracleTemperature,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", event.ErrOracle, err)
	}
	return strings.TrimSpace(text), nil
}

// sanitizeJSONResponse removes markdown code fences and leading/trailing
// prose that LLMs often add around JSON output.
func sanitizeJSONResponse(text string) string {
	re := regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")
	matches := re.FindStringSubmatch(text)
	if len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}

	// No code block: find first [ or { and last ] or }
	start := strings.IndexAny(text, "[{")
	if start == -1 {
		return text
	}
	end := strings.LastIndexAny(text, "]}")
	if end == -1 || end < start {
		return text
	}
	return strings.TrimSpace(text[start : end+1])
}

// fieldNames returns the comma-separated template key list for prompts.
func fieldNames() string {
	names := make([]string, len(event.TemplateFields))
	for i, f := range event.TemplateFields {
		names[i] = fmt.Sprintf("%q", f.Name)
	}
	return strings.Join(names, ", ")
}

// fieldDescriptions returns the per-field expected-content block for prompts.
func fieldDescriptions() string {
	var sb strings.Builder
	for _, f := range event.TemplateFields {
		sb.WriteString(fmt.Sprintf("- %s: %s\n", f.Name, f.Expected))
	}
	return sb.String()
}

// combineDateTime builds an absolute timestamp from a date ("2006-01-02")
// and a clock time ("15:04") in the use case's location.
func (uc *implUseCase) combineDateTime(date, clock string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02 15:04", date+" "+clock, uc.location)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date/time %q %q: %w", date, clock, err)
	}
	return t, nil
}

// eventWindow derives the absolute start and end of the event. An end clock
// time at or before the start is taken to mean the event runs past midnight.
func (uc *implUseCase) eventWindow(ev model.Event) (time.Time, time.Time, error) {
	start, err := uc.combineDateTime(ev.Date, ev.StartTime)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := uc.combineDateTime(ev.Date, ev.EndTime)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if !end.After(start) {
		end = end.AddDate(0, 0, 1)
	}
	return start, end, nil
}

// isDaytime classifies a slot by its local clock time: 07:00-19:00 inclusive
// is daytime.
func (uc *implUseCase) isDaytime(t time.Time) bool {
	local := t.In(uc.location)
	minutes := local.Hour()*60 + local.Minute()
	return minutes >= daytimeStartMinutes && minutes <= daytimeEndMinutes
}
