package shipment_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/stitchworks/atelier/internal/events"
	"github.com/stitchworks/atelier/internal/shipment"
)

// capturePublisher records published events in order.
type capturePublisher struct {
	events   []string
	keys     []string
	payloads []any
	err      error
}

func (p *capturePublisher) Publish(_ context.Context, event, key string, payload any) error {
	p.events = append(p.events, event)
	p.keys = append(p.keys, key)
	p.payloads = append(p.payloads, payload)

	return p.err
}

func (p *capturePublisher) Close() error { return nil }

func TestService_Update(t *testing.T) {
	id := uuid.New()
	status := shipment.StatusConfirmed

	type testCase struct {
		name      string
		params    shipment.UpdateParams
		setupMock func(m *shipment.MockRepository)
		wantErr   error
		wantEvent bool
	}

	tests := []testCase{
		{
			name:   "TransitionApplied",
			params: shipment.UpdateParams{ID: id, Status: &status},
			setupMock: func(m *shipment.MockRepository) {
				wantPlan := shipment.TransitionPlan{
					ConfirmedAt: shipment.OpSet,
					DeliveredAt: shipment.OpClear,
					FinishedAt:  shipment.OpClear,
					CollectedAt: shipment.OpClear,
					RefusedAt:   shipment.OpClear,
				}

				m.EXPECT().
					ApplyTransition(gomock.Any(), id, wantPlan, shipment.UpdateFields{}, gomock.Any()).
					DoAndReturn(func(_ context.Context, id uuid.UUID, _ shipment.TransitionPlan, _ shipment.UpdateFields, now time.Time) (*shipment.Shipment, error) {
						return &shipment.Shipment{ID: id, ConfirmedAt: &now}, nil
					})
			},
			wantEvent: true,
		},
		{
			name: "PatchWithoutStatus",
			params: shipment.UpdateParams{
				ID:     id,
				Fields: shipment.UpdateFields{InformedEstimation: ts(2026, 9, 1)},
			},
			setupMock: func(m *shipment.MockRepository) {
				m.EXPECT().
					ApplyTransition(gomock.Any(), id, shipment.TransitionPlan{}, gomock.Any(), gomock.Any()).
					Return(&shipment.Shipment{ID: id}, nil)
			},
			wantEvent: true,
		},
		{
			name: "UnknownStatusRejectedBeforeWrite",
			params: shipment.UpdateParams{
				ID:     id,
				Status: func() *shipment.Status { s := shipment.Status("Enviado"); return &s }(),
			},
			setupMock: func(m *shipment.MockRepository) {},
			wantErr:   shipment.ErrInvalidStatus,
		},
		{
			name:   "NotFound",
			params: shipment.UpdateParams{ID: id, Status: &status},
			setupMock: func(m *shipment.MockRepository) {
				m.EXPECT().
					ApplyTransition(gomock.Any(), id, gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, shipment.ErrNotFound)
			},
			wantErr: shipment.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := shipment.NewMockRepository(ctrl)
			tt.setupMock(repo)

			pub := &capturePublisher{}
			svc := shipment.NewService(repo, pub)

			view, err := svc.Update(context.Background(), tt.params)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, pub.events)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, view)

			if tt.wantEvent {
				require.Equal(t, []string{events.ShipmentUpdate}, pub.events)
				assert.Equal(t, id.String(), pub.keys[0])
			}
		})
	}
}

func TestService_Update_DerivesStatusOnView(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()
	target := shipment.StatusRefused

	repo := shipment.NewMockRepository(ctrl)
	repo.EXPECT().
		ApplyTransition(gomock.Any(), id, gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, id uuid.UUID, _ shipment.TransitionPlan, _ shipment.UpdateFields, now time.Time) (*shipment.Shipment, error) {
			return &shipment.Shipment{ID: id, ConfirmedAt: &now, RefusedAt: &now}, nil
		})

	svc := shipment.NewService(repo, &capturePublisher{})

	view, err := svc.Update(context.Background(), shipment.UpdateParams{ID: id, Status: &target})
	require.NoError(t, err)
	assert.Equal(t, shipment.StatusRefused, view.Status)
}

func TestService_UpdateBatch_AbortsOnFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	okID, badID := uuid.New(), uuid.New()
	status := shipment.StatusCollected

	repo := shipment.NewMockRepository(ctrl)
	repo.EXPECT().
		ApplyTransition(gomock.Any(), okID, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&shipment.Shipment{ID: okID}, nil)
	repo.EXPECT().
		ApplyTransition(gomock.Any(), badID, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, shipment.ErrNotFound)

	svc := shipment.NewService(repo, &capturePublisher{})

	views, err := svc.UpdateBatch(context.Background(), []shipment.UpdateParams{
		{ID: okID, Status: &status},
		{ID: badID, Status: &status},
	})

	require.ErrorIs(t, err, shipment.ErrNotFound)
	assert.Contains(t, err.Error(), badID.String())
	assert.Nil(t, views)
}

func TestService_Delete_PublishesUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()

	repo := shipment.NewMockRepository(ctrl)
	repo.EXPECT().
		SoftDeleteShipment(gomock.Any(), id).
		Return(&shipment.Shipment{ID: id}, nil)

	pub := &capturePublisher{}
	svc := shipment.NewService(repo, pub)

	require.NoError(t, svc.Delete(context.Background(), id))
	assert.Equal(t, []string{events.ShipmentUpdate}, pub.events)
}

func TestService_Update_PublishFailureDoesNotFailUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()
	status := shipment.StatusConfirmed

	repo := shipment.NewMockRepository(ctrl)
	repo.EXPECT().
		ApplyTransition(gomock.Any(), id, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&shipment.Shipment{ID: id}, nil)

	pub := &capturePublisher{err: errors.New("broker down")}
	svc := shipment.NewService(repo, pub)

	view, err := svc.Update(context.Background(), shipment.UpdateParams{ID: id, Status: &status})
	require.NoError(t, err)
	assert.NotNil(t, view)
}
