package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"weatherornot/internal/event"
	"weatherornot/internal/model"
)

// Advance runs one slot-filling dialogue turn. The caller resends the full
// utterance history each call; only the last one or two entries are read.
func (uc *implUseCase) Advance(ctx context.Context, sc model.Scope, input event.AdvanceInput) (event.AdvanceOutput, error) {
	if len(input.Messages) == 0 {
		return event.AdvanceOutput{}, event.ErrEmptyHistory
	}
	latest := input.Messages[len(input.Messages)-1]

	uc.l.Infof(ctx, "Advance: user=%s history_len=%d first_turn=%t", sc.UserID, len(input.Messages), input.Partial == nil)

	var (
		partial event.PartialEvent
		err     error
	)
	if input.Partial == nil {
		partial, err = uc.extractTemplate(ctx, latest)
	} else {
		prevQuestion := ""
		if len(input.Messages) >= 2 {
			prevQuestion = input.Messages[len(input.Messages)-2]
		}
		partial, err = uc.updateTemplate(ctx, input.Partial, prevQuestion, latest)
	}
	if err != nil {
		return event.AdvanceOutput{}, err
	}

	// Defensive default: any key the oracle dropped goes back to Unset.
	partial.Backfill()

	// A filled date/time that does not parse is treated as still unknown so
	// the next question can re-ask it.
	if partial.Complete() {
		for _, f := range uc.invalidDateTimeFields(partial) {
			partial[f] = event.Unset
		}
	}

	if !partial.Complete() {
		question, qErr := uc.clarifyingQuestion(ctx, partial)
		if qErr != nil {
			return event.AdvanceOutput{}, qErr
		}
		return event.AdvanceOutput{
			Success: false,
			Partial: partial,
			Message: question,
		}, nil
	}

	valid, err := uc.consistency.Validate(ctx, partial)
	if err != nil {
		return event.AdvanceOutput{}, err
	}
	if !valid {
		uc.l.Warnf(ctx, "Advance: consistency check rejected template for user=%s", sc.UserID)
		return event.AdvanceOutput{
			Success:  false,
			Rejected: true,
			Partial:  partial,
			Message:  rejectionMessage,
		}, nil
	}

	ev := buildEvent(partial)
	ev.UserID = sc.UserID

	summary, err := uc.narrate(ctx, ev)
	if err != nil {
		return event.AdvanceOutput{}, err
	}

	return event.AdvanceOutput{
		Success: true,
		Event:   &ev,
		Message: summary,
	}, nil
}

// extractTemplate asks the extraction oracle to fill a fresh template from
// the first utterance.
func (uc *implUseCase) extractTemplate(ctx context.Context, utterance string) (event.PartialEvent, error) {
	system := fmt.Sprintf(extractionSystemPrompt, fieldNames(), fieldDescriptions(), event.Unset)

	raw, err := uc.completeJSON(ctx, system, utterance)
	if err != nil {
		return nil, err
	}
	return parseTemplateJSON(raw)
}

// updateTemplate asks the update oracle to merge the latest answer into the
// current template, given the question it answers.
func (uc *implUseCase) updateTemplate(ctx context.Context, current event.PartialEvent, question, answer string) (event.PartialEvent, error) {
	system := fmt.Sprintf(updateSystemPrompt, event.Unset, fieldNames(), fieldDescriptions())

	currentJSON, err := json.Marshal(current)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal template: %w", err)
	}

	raw, err := uc.completeJSON(ctx, system,
		fmt.Sprintf("Current template: %s", currentJSON),
		fmt.Sprintf("Question asked: %s", question),
		fmt.Sprintf("User answer: %s", answer),
	)
	if err != nil {
		return nil, err
	}
	return parseTemplateJSON(raw)
}

// clarifyingQuestion asks the question oracle for one question addressing
// the first Unset field.
func (uc *implUseCase) clarifyingQuestion(ctx context.Context, partial event.PartialEvent) (string, error) {
	field, ok := partial.FirstUnset()
	if !ok {
		return "", event.ErrIncompleteEvent
	}
	system := fmt.Sprintf(questionSystemPrompt, field.Name, field.Expected)
	return uc.completeText(ctx, system, "Please ask the question now.")
}

// narrate asks the narration oracle for a confirmation summary of the
// completed event.
func (uc *implUseCase) narrate(ctx context.Context, ev model.Event) (string, error) {
	body, err := json.Marshal(map[string]any{
		"title":       ev.Title,
		"date":        ev.Date,
		"startTime":   ev.StartTime,
		"endTime":     ev.EndTime,
		"activity":    ev.Activity,
		"description": ev.Description,
		"latitude":    ev.Latitude,
		"longitude":   ev.Longitude,
		"indoor":      ev.Indoor,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal event: %w", err)
	}
	return uc.completeText(ctx, narrationSystemPrompt, string(body))
}

// parseTemplateJSON decodes an oracle response into a PartialEvent.
// Non-string values are stringified so coercion stays in one place.
func parseTemplateJSON(raw string) (event.PartialEvent, error) {
	var loose map[string]any
	if err := json.Unmarshal([]byte(raw), &loose); err != nil {
		return nil, fmt.Errorf("%w: unparseable template JSON: %v", event.ErrOracle, err)
	}

	partial := make(event.PartialEvent, len(loose))
	for k, v := range loose {
		switch val := v.(type) {
		case string:
			partial[k] = val
		case nil:
			partial[k] = event.Unset
		default:
			partial[k] = fmt.Sprintf("%v", val)
		}
	}
	return partial, nil
}
