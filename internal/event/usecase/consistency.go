package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"weatherornot/internal/event"
	"weatherornot/pkg/openai"
)

// llmConsistency asks the completion oracle to judge a filled template
// against the field descriptions. Only an unambiguous positive counts as
// valid.
type llmConsistency struct {
	oracle Completer
}

var _ ConsistencyOracle = (*llmConsistency)(nil)

func (c *llmConsistency) Validate(ctx context.Context, partial event.PartialEvent) (bool, error) {
	body, err := json.Marshal(partial)
	if err != nil {
		return false, fmt.Errorf("failed to marshal template: %w", err)
	}

	text, err := c.oracle.Complete(ctx, &openai.Request{
		Messages: []openai.Message{
			{Role: "system", Content: fmt.Sprintf(consistencySystemPrompt, fieldDescriptions())},
			{Role: "user", Content: string(body)},
		},
		Temperature: oracleTemperature,
	})
	if err != nil {
		return false, fmt.Errorf("%w: %v", event.ErrOracle, err)
	}

	return strings.HasPrefix(strings.ToUpper(strings.TrimSpace(text)), "YES"), nil
}
