package seamstress_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/stitchworks/atelier/internal/geocode"
	"github.com/stitchworks/atelier/internal/seamstress"
)

// stubGeocoder resolves addresses from a fixed table; everything else
// fails with ErrNotResolved.
type stubGeocoder struct {
	points map[string]geocode.Point
}

func (g *stubGeocoder) Geocode(_ context.Context, address string) (geocode.Point, error) {
	point, ok := g.points[address]
	if !ok {
		return geocode.Point{}, geocode.ErrNotResolved
	}

	return point, nil
}

func TestService_BackfillCoordinates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	resolvableID, unresolvableID := uuid.New(), uuid.New()

	lat := decimal.RequireFromString("-26.9194")
	lng := decimal.RequireFromString("-49.0661")

	repo := seamstress.NewMockRepository(ctrl)
	repo.EXPECT().ListUnresolvedLocations(gomock.Any()).Return([]*seamstress.Location{
		{ID: resolvableID, FormattedAddress: "Rua Amazonas, 10 - Garcia, Blumenau - SC, 89020-000"},
		{ID: unresolvableID, FormattedAddress: "???"},
	}, nil)
	repo.EXPECT().SetLocationCoordinates(gomock.Any(), resolvableID, lat, lng).Return(nil)

	geo := &stubGeocoder{points: map[string]geocode.Point{
		"Rua Amazonas, 10 - Garcia, Blumenau - SC, 89020-000": {Lat: lat, Lng: lng},
	}}

	svc := seamstress.NewService(repo, geo)

	resolved, failed, err := svc.BackfillCoordinates(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, resolved)
	assert.Equal(t, 1, failed)
}

func TestService_BackfillCoordinates_NothingToDo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := seamstress.NewMockRepository(ctrl)
	repo.EXPECT().ListUnresolvedLocations(gomock.Any()).Return(nil, nil)

	svc := seamstress.NewService(repo, &stubGeocoder{})

	resolved, failed, err := svc.BackfillCoordinates(context.Background())
	require.NoError(t, err)
	assert.Zero(t, resolved)
	assert.Zero(t, failed)
}
