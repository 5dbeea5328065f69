package event

import (
	"context"

	"weatherornot/internal/model"
)

// UseCase defines the business logic interface for the event domain.
type UseCase interface {
	// Advance runs one slot-filling dialogue turn: merges the latest user
	// utterance into the partial event and returns either a completed event,
	// a terminal rejection, or a clarifying question.
	Advance(ctx context.Context, sc model.Scope, input AdvanceInput) (AdvanceOutput, error)

	// CheckSuitability decides whether forecast weather fits the event window.
	CheckSuitability(ctx context.Context, ev model.Event) (SuitabilityVerdict, error)

	// FindAlternativeSlot scans nearby time slots for one with acceptable
	// weather, honoring day/night continuity and the search horizon.
	FindAlternativeSlot(ctx context.Context, ev model.Event) (SlotProposal, error)

	// Event CRUD
	Create(ctx context.Context, sc model.Scope, ev model.Event) (model.Event, error)
	List(ctx context.Context, sc model.Scope) ([]model.Event, error)
	Detail(ctx context.Context, sc model.Scope, id int64) (model.Event, error)
	Update(ctx context.Context, sc model.Scope, ev model.Event) (model.Event, error)
	Delete(ctx context.Context, sc model.Scope, id int64) error
}
