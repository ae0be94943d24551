// Package route tracks delivery runs: which driver carries which
// shipment to which seamstress, plus the driver's last reported
// position.
package route

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound = errors.New("route not found")

	// ErrRouteInProgress is returned when a driver tries to start a
	// second route while another one is still open.
	ErrRouteInProgress = errors.New("another route is already in progress")

	// ErrRouteNotStarted is returned when a driver tries to end a route
	// that was never started or is already finished.
	ErrRouteNotStarted = errors.New("route is not in progress")
)

// Route is one scheduled delivery of a shipment to its recipient.
// StartTime and EndTime are nil until the driver reports them.
type Route struct {
	ID          uuid.UUID  `json:"id"`
	LocationID  uuid.UUID  `json:"locationId"`
	ShipmentID  uuid.UUID  `json:"shipmentId"`
	RecipientID uuid.UUID  `json:"recipientId"`
	DriverID    *uuid.UUID `json:"driverId"`
	StartTime   *time.Time `json:"startTime"`
	EndTime     *time.Time `json:"endTime"`
	Weight      *int       `json:"weight"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt"`
}

// Position is the last known location of a driver, one row per driver.
type Position struct {
	ID        uuid.UUID       `json:"id"`
	DriverID  uuid.UUID       `json:"driverId"`
	Lat       decimal.Decimal `json:"lat"`
	Lng       decimal.Decimal `json:"lng"`
	UpdatedAt *time.Time      `json:"updatedAt"`
}
