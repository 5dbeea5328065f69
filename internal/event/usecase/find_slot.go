package usecase

import (
	"context"

	"weatherornot/internal/event"
	"weatherornot/internal/model"
)

// FindAlternativeSlot scans a bounded window around the event for the first
// slot with acceptable weather. Candidates step forward from the original
// start in 3-hour increments up to 96 hours after now, then backward from
// now toward the original start when it lies in the past. A candidate must
// share the original slot's day/night classification. The first accepted
// candidate in scan order wins; an exhausted search returns the original
// start with Accepted false.
func (uc *implUseCase) FindAlternativeSlot(ctx context.Context, ev model.Event) (event.SlotProposal, error) {
	original, _, err := uc.eventWindow(ev)
	if err != nil {
		return event.SlotProposal{}, err
	}

	now := uc.now()
	horizon := now.Add(forwardHorizon)
	wantDaytime := uc.isDaytime(original)

	uc.l.Infof(ctx, "FindAlternativeSlot: original=%s daytime=%t horizon=%s", original, wantDaytime, horizon)

	// Forward scan: future slots only; anything between a past original and
	// now belongs to the backward scan.
	for t := original.Add(slotStep); !t.After(horizon); t = t.Add(slotStep) {
		if t.Before(now) {
			continue
		}
		if uc.isDaytime(t) != wantDaytime {
			continue
		}
		verdict, err := uc.checkWindow(ctx, ev, t, t.Add(candidateWindow))
		if err != nil {
			// A failed candidate aborts the whole search.
			return event.SlotProposal{}, err
		}
		if verdict.Suitable {
			return event.SlotProposal{NewTime: t, Accepted: true}, nil
		}
	}

	// Backward scan: from now toward a past original start.
	if original.Before(now) {
		for t := now; !t.Before(original); t = t.Add(-slotStep) {
			if uc.isDaytime(t) != wantDaytime {
				continue
			}
			verdict, err := uc.checkWindow(ctx, ev, t, t.Add(candidateWindow))
			if err != nil {
				return event.SlotProposal{}, err
			}
			if verdict.Suitable {
				return event.SlotProposal{NewTime: t, Accepted: true}, nil
			}
		}
	}

	return event.SlotProposal{NewTime: original, Accepted: false}, nil
}
