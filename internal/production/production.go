// Package production records producedQuantity progress reported by
// seamstresses against their shipment items. Every accepted update is
// mirrored by an append-only Production row; the audit trail is never
// rewritten.
package production

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrItemNotFound = errors.New("shipment item not found")

	// ErrItemNotOwned is returned when a seamstress reports progress on
	// an item from somebody else's shipment.
	ErrItemNotOwned = errors.New("shipment item belongs to another seamstress")

	ErrQuantityOutOfRange = errors.New("produced quantity out of range")
)

// QuantityError carries the bounds a rejected update violated.
type QuantityError struct {
	ItemID   uuid.UUID
	Produced decimal.Decimal
	Min      decimal.Decimal
	Max      decimal.Decimal
}

func (e *QuantityError) Error() string {
	return fmt.Sprintf("invalid quantity %s for item %s: must be between %s and %s",
		e.Produced, e.ItemID, e.Min, e.Max)
}

func (e *QuantityError) Unwrap() error { return ErrQuantityOutOfRange }

// Production is one accepted producedQuantity update: who reported,
// which item, and the new cumulative value.
type Production struct {
	ID               uuid.UUID
	ShipmentItemID   uuid.UUID
	SeamstressID     uuid.UUID
	ProducedQuantity decimal.Decimal
	CreatedAt        time.Time
}

// Update is a single requested progress report.
type Update struct {
	ShipmentItemID   uuid.UUID       `json:"shipmentItemId" validate:"required"`
	ProducedQuantity decimal.Decimal `json:"producedQuantity" validate:"gte=0"`
}

// ItemState is the slice of a shipment item the bounds check needs.
type ItemState struct {
	ID               uuid.UUID
	RecipientID      uuid.UUID
	Quantity         decimal.Decimal
	ProducedQuantity decimal.Decimal
}
