package shipment

import "fmt"

// MarkerOp says what a transition does to one lifecycle timestamp.
type MarkerOp int

const (
	OpKeep  MarkerOp = iota // leave the stored value untouched
	OpSet                   // write the transition time
	OpClear                 // null the column
)

// TransitionPlan is the set/clear matrix for one target status. Exactly one
// marker is ever set; later-stage markers that no longer apply are cleared
// and everything else is kept, which makes re-applying a target idempotent.
type TransitionPlan struct {
	ConfirmedAt MarkerOp
	DeliveredAt MarkerOp
	FinishedAt  MarkerOp
	CollectedAt MarkerOp
	RefusedAt   MarkerOp
}

// PlanTransition resolves the target status into its timestamp plan.
// Unknown targets are rejected before any write happens.
func PlanTransition(target Status) (TransitionPlan, error) {
	switch target {
	case StatusRefused:
		return TransitionPlan{RefusedAt: OpSet}, nil
	case StatusCollected:
		return TransitionPlan{CollectedAt: OpSet, RefusedAt: OpClear}, nil
	case StatusFinished:
		return TransitionPlan{FinishedAt: OpSet, CollectedAt: OpClear, RefusedAt: OpClear}, nil
	case StatusInProduction:
		return TransitionPlan{DeliveredAt: OpSet, FinishedAt: OpClear, CollectedAt: OpClear, RefusedAt: OpClear}, nil
	case StatusConfirmed:
		return TransitionPlan{ConfirmedAt: OpSet, DeliveredAt: OpClear, FinishedAt: OpClear, CollectedAt: OpClear, RefusedAt: OpClear}, nil
	case StatusPending:
		return TransitionPlan{ConfirmedAt: OpClear, DeliveredAt: OpClear, FinishedAt: OpClear, CollectedAt: OpClear, RefusedAt: OpClear}, nil
	default:
		return TransitionPlan{}, fmt.Errorf("%w: %q", ErrInvalidStatus, target)
	}
}
