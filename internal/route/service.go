package route

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/stitchworks/atelier/internal/events"
	"github.com/stitchworks/atelier/internal/shipment"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=route
type Repository interface {
	ListAssignedRoutes(ctx context.Context, driverID uuid.UUID, dayStart, dayEnd time.Time) ([]*Route, error)
	StartRoute(ctx context.Context, routeID, driverID uuid.UUID, now time.Time) (*Route, error)
	EndRoute(ctx context.Context, routeID, driverID uuid.UUID, now time.Time) (*Route, error)
	UpsertDriverPosition(ctx context.Context, driverID uuid.UUID, lat, lng decimal.Decimal) (*Position, error)
}

// ShipmentLoader fetches the shipment a route carries so events go out
// with the derived status attached.
type ShipmentLoader interface {
	GetShipment(ctx context.Context, id uuid.UUID) (*shipment.Shipment, error)
}

type Service struct {
	repo      Repository
	shipments ShipmentLoader
	publisher events.Publisher
}

func NewService(repo Repository, shipments ShipmentLoader, publisher events.Publisher) *Service {
	return &Service{repo: repo, shipments: shipments, publisher: publisher}
}

// AssignedView pairs a route with the shipment it carries.
type AssignedView struct {
	*Route
	Shipment *shipment.View `json:"shipment"`
}

// ListAssigned returns the driver's open routes plus the ones finished
// today, each with its shipment and derived status.
func (s *Service) ListAssigned(ctx context.Context, driverID uuid.UUID, now time.Time) ([]*AssignedView, error) {
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.Add(24*time.Hour - time.Nanosecond)

	routes, err := s.repo.ListAssignedRoutes(ctx, driverID, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("listing assigned routes: %w", err)
	}

	views := make([]*AssignedView, 0, len(routes))

	for _, r := range routes {
		sh, err := s.shipments.GetShipment(ctx, r.ShipmentID)
		if err != nil {
			return nil, fmt.Errorf("loading shipment %s: %w", r.ShipmentID, err)
		}

		views = append(views, &AssignedView{Route: r, Shipment: shipment.NewView(sh)})
	}

	return views, nil
}

// Start marks the route as begun. A driver can only attend one route at
// a time.
func (s *Service) Start(ctx context.Context, routeID, driverID uuid.UUID) (*Route, error) {
	r, err := s.repo.StartRoute(ctx, routeID, driverID, time.Now())
	if err != nil {
		return nil, err
	}

	s.publishRoute(ctx, r)

	return r, nil
}

// End closes the route and marks its shipment as delivered to the
// seamstress, which moves the derived status to InProduction.
func (s *Service) End(ctx context.Context, routeID, driverID uuid.UUID) (*Route, error) {
	r, err := s.repo.EndRoute(ctx, routeID, driverID, time.Now())
	if err != nil {
		return nil, err
	}

	view := s.publishRoute(ctx, r)

	// Ending the route wrote delivered_at on the shipments row, so the
	// shipment's own consumers get an update as well.
	if view != nil {
		if err := s.publisher.Publish(ctx, events.ShipmentUpdate, view.ID.String(), view); err != nil {
			slog.Error("publishing shipment update", "shipment_id", view.ID, "error", err)
		}
	}

	return r, nil
}

// ReportPosition upserts the driver's last known coordinates.
func (s *Service) ReportPosition(ctx context.Context, driverID uuid.UUID, lat, lng decimal.Decimal) (*Position, error) {
	pos, err := s.repo.UpsertDriverPosition(ctx, driverID, lat, lng)
	if err != nil {
		return nil, fmt.Errorf("updating driver position: %w", err)
	}

	if err := s.publisher.Publish(ctx, events.DriverUpdate, driverID.String(), pos); err != nil {
		slog.Error("publishing driver update", "driver_id", driverID, "error", err)
	}

	return pos, nil
}

func (s *Service) publishRoute(ctx context.Context, r *Route) *shipment.View {
	payload := AssignedView{Route: r}

	if sh, err := s.shipments.GetShipment(ctx, r.ShipmentID); err == nil {
		payload.Shipment = shipment.NewView(sh)
	} else {
		slog.Error("loading shipment for route event", "route_id", r.ID, "error", err)
	}

	if err := s.publisher.Publish(ctx, events.RouteUpdate, r.ID.String(), payload); err != nil {
		slog.Error("publishing route update", "route_id", r.ID, "error", err)
	}

	return payload.Shipment
}
