package shipment

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/stitchworks/atelier/internal/events"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=shipment
type Repository interface {
	GetShipment(ctx context.Context, id uuid.UUID) (*Shipment, error)
	ListShipments(ctx context.Context, filter ListFilter) ([]*Shipment, error)

	// ApplyTransition writes the plan and patch in a single UPDATE so the
	// stored markers are never observable in a half-applied state.
	ApplyTransition(ctx context.Context, id uuid.UUID, plan TransitionPlan, patch UpdateFields, now time.Time) (*Shipment, error)
	SoftDeleteShipment(ctx context.Context, id uuid.UUID) (*Shipment, error)
}

// ListFilter narrows shipment listings. Archived selects the archive view:
// everything ever confirmed, including archived rows.
type ListFilter struct {
	Archived    bool
	RecipientID *uuid.UUID
}

// UpdateFields is the optional patch that may ride along a status change.
type UpdateFields struct {
	InformedEstimation *time.Time
	SystemEstimation   *time.Time
	ArchivedAt         *time.Time
}

// UpdateParams is one requested shipment update: an optional target status
// plus an optional field patch.
type UpdateParams struct {
	ID     uuid.UUID
	Status *Status
	Fields UpdateFields
}

type Service struct {
	repo      Repository
	publisher events.Publisher
}

func NewService(repo Repository, publisher events.Publisher) *Service {
	return &Service{repo: repo, publisher: publisher}
}

// View is a shipment together with its derived status and estimation
// offset, the shape every consumer-facing surface works with.
type View struct {
	*Shipment
	Status     Status `json:"status"`
	OffsetDays int    `json:"offsetDays"`
}

// NewView derives the status and estimation offset for a shipment.
func NewView(s *Shipment) *View {
	return &View{Shipment: s, Status: DeriveStatus(s), OffsetDays: OffsetDays(s)}
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*View, error) {
	sh, err := s.repo.GetShipment(ctx, id)
	if err != nil {
		return nil, err
	}

	return NewView(sh), nil
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*View, error) {
	shipments, err := s.repo.ListShipments(ctx, filter)
	if err != nil {
		return nil, err
	}

	views := make([]*View, len(shipments))
	for i, sh := range shipments {
		views[i] = NewView(sh)
	}

	return views, nil
}

// Update applies one transition request. The target status is translated
// into a timestamp plan before any write; an unknown target is rejected
// with ErrInvalidStatus and nothing is touched.
func (s *Service) Update(ctx context.Context, params UpdateParams) (*View, error) {
	plan := TransitionPlan{}

	if params.Status != nil {
		var err error

		plan, err = PlanTransition(*params.Status)
		if err != nil {
			return nil, err
		}
	}

	updated, err := s.repo.ApplyTransition(ctx, params.ID, plan, params.Fields, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("applying transition: %w", err)
	}

	view := NewView(updated)
	s.publish(ctx, events.ShipmentUpdate, view)

	return view, nil
}

// UpdateBatch applies several transition requests, collecting the updated
// views. A failing entry aborts the batch and surfaces the failing id.
func (s *Service) UpdateBatch(ctx context.Context, batch []UpdateParams) ([]*View, error) {
	views := make([]*View, 0, len(batch))

	for _, params := range batch {
		view, err := s.Update(ctx, params)
		if err != nil {
			return nil, fmt.Errorf("shipment %s: %w", params.ID, err)
		}

		views = append(views, view)
	}

	return views, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.repo.SoftDeleteShipment(ctx, id)
	if err != nil {
		return err
	}

	s.publish(ctx, events.ShipmentUpdate, NewView(deleted))

	return nil
}

func (s *Service) publish(ctx context.Context, event string, view *View) {
	if err := s.publisher.Publish(ctx, event, view.ID.String(), view); err != nil {
		slog.Error("failed to publish shipment event", "event", event, "id", view.ID, "error", err)
	}
}
