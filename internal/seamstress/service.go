package seamstress

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/stitchworks/atelier/internal/geocode"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=seamstress
type Repository interface {
	GetSeamstress(ctx context.Context, id uuid.UUID) (*Seamstress, error)
	GetSeamstressByCode(ctx context.Context, internalCode string) (*Seamstress, error)
	ListSeamstresses(ctx context.Context) ([]*Seamstress, error)

	ListUnresolvedLocations(ctx context.Context) ([]*Location, error)
	SetLocationCoordinates(ctx context.Context, id uuid.UUID, lat, lng decimal.Decimal) error
}

type Service struct {
	repo Repository
	geo  geocode.Geocoder
}

func NewService(repo Repository, geo geocode.Geocoder) *Service {
	return &Service{repo: repo, geo: geo}
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Seamstress, error) {
	return s.repo.GetSeamstress(ctx, id)
}

func (s *Service) GetByCode(ctx context.Context, internalCode string) (*Seamstress, error) {
	return s.repo.GetSeamstressByCode(ctx, internalCode)
}

func (s *Service) List(ctx context.Context) ([]*Seamstress, error) {
	return s.repo.ListSeamstresses(ctx)
}

// BackfillCoordinates geocodes every location still missing lat/lng.
// Locations the provider cannot resolve are skipped and reported in the
// returned count of failures; one bad address must not block the rest.
func (s *Service) BackfillCoordinates(ctx context.Context) (resolved, failed int, err error) {
	locations, err := s.repo.ListUnresolvedLocations(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("listing unresolved locations: %w", err)
	}

	for _, loc := range locations {
		point, geoErr := s.geo.Geocode(ctx, loc.FormattedAddress)
		if geoErr != nil {
			failed++
			continue
		}

		if err := s.repo.SetLocationCoordinates(ctx, loc.ID, point.Lat, point.Lng); err != nil {
			return resolved, failed, fmt.Errorf("setting coordinates for %s: %w", loc.ID, err)
		}

		resolved++
	}

	return resolved, failed, nil
}
