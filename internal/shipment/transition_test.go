package shipment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stitchworks/atelier/internal/shipment"
)

func TestPlanTransition(t *testing.T) {
	tests := []struct {
		target shipment.Status
		want   shipment.TransitionPlan
	}{
		{
			target: shipment.StatusRefused,
			want:   shipment.TransitionPlan{RefusedAt: shipment.OpSet},
		},
		{
			target: shipment.StatusCollected,
			want: shipment.TransitionPlan{
				CollectedAt: shipment.OpSet,
				RefusedAt:   shipment.OpClear,
			},
		},
		{
			target: shipment.StatusFinished,
			want: shipment.TransitionPlan{
				FinishedAt:  shipment.OpSet,
				CollectedAt: shipment.OpClear,
				RefusedAt:   shipment.OpClear,
			},
		},
		{
			target: shipment.StatusInProduction,
			want: shipment.TransitionPlan{
				DeliveredAt: shipment.OpSet,
				FinishedAt:  shipment.OpClear,
				CollectedAt: shipment.OpClear,
				RefusedAt:   shipment.OpClear,
			},
		},
		{
			target: shipment.StatusConfirmed,
			want: shipment.TransitionPlan{
				ConfirmedAt: shipment.OpSet,
				DeliveredAt: shipment.OpClear,
				FinishedAt:  shipment.OpClear,
				CollectedAt: shipment.OpClear,
				RefusedAt:   shipment.OpClear,
			},
		},
		{
			target: shipment.StatusPending,
			want: shipment.TransitionPlan{
				ConfirmedAt: shipment.OpClear,
				DeliveredAt: shipment.OpClear,
				FinishedAt:  shipment.OpClear,
				CollectedAt: shipment.OpClear,
				RefusedAt:   shipment.OpClear,
			},
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.target), func(t *testing.T) {
			plan, err := shipment.PlanTransition(tt.target)
			require.NoError(t, err)
			assert.Equal(t, tt.want, plan)
		})
	}
}

func TestPlanTransition_UnknownTarget(t *testing.T) {
	_, err := shipment.PlanTransition(shipment.Status("Enviado"))
	assert.ErrorIs(t, err, shipment.ErrInvalidStatus)
	assert.Contains(t, err.Error(), "Enviado")
}

// A plan never sets more than one marker, so re-applying any target leaves
// the derivation at that target.
func TestPlanTransition_SingleSet(t *testing.T) {
	for _, target := range []shipment.Status{
		shipment.StatusPending, shipment.StatusConfirmed, shipment.StatusInProduction,
		shipment.StatusFinished, shipment.StatusCollected, shipment.StatusRefused,
	} {
		plan, err := shipment.PlanTransition(target)
		require.NoError(t, err)

		sets := 0
		for _, op := range []shipment.MarkerOp{
			plan.ConfirmedAt, plan.DeliveredAt, plan.FinishedAt,
			plan.CollectedAt, plan.RefusedAt,
		} {
			if op == shipment.OpSet {
				sets++
			}
		}

		if target == shipment.StatusPending {
			assert.Zero(t, sets)
		} else {
			assert.Equal(t, 1, sets, "target %s", target)
		}
	}
}
