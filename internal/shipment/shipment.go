package shipment

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/stitchworks/atelier/internal/seamstress"
)

var (
	ErrNotFound      = errors.New("shipment not found")
	ErrInvalidStatus = errors.New("invalid shipment status")
)

// Status is a shipment's lifecycle stage. It is always derived from the
// lifecycle timestamps and never stored as a column of its own.
type Status string

const (
	StatusPending      Status = "Pendente"
	StatusConfirmed    Status = "Confirmado"
	StatusInProduction Status = "Produzindo"
	StatusFinished     Status = "Finalizado"
	StatusCollected    Status = "Coletado"
	StatusRefused      Status = "Recusado"
)

// Valid reports whether s is one of the six recognized statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusInProduction,
		StatusFinished, StatusCollected, StatusRefused:
		return true
	}

	return false
}

// Shipment is an invoice-backed delivery record imported from the ERP.
// Number is the natural business key; AccessKey is unique when present.
type Shipment struct {
	ID                    uuid.UUID
	Number                string
	AccessKey             *string
	Series                string
	Type                  string
	AuthorizationProtocol *string
	IssueDate             time.Time
	EntryExitDate         *time.Time
	EntryExitTime         *string
	TransportationType    string

	RecipientID        uuid.UUID
	Recipient          *seamstress.Seamstress // Loaded via JOIN
	FinancialSummaryID uuid.UUID
	FinancialSummary   *FinancialSummary
	Items              []*Item

	ConfirmedAt        *time.Time
	DeliveredAt        *time.Time
	FinishedAt         *time.Time
	CollectedAt        *time.Time
	RefusedAt          *time.Time
	ArchivedAt         *time.Time
	SystemEstimation   *time.Time
	InformedEstimation *time.Time

	CreatedAt time.Time
	UpdatedAt *time.Time
	DeletedAt *time.Time
}

// FinancialSummary is the monetary breakdown of one shipment.
// One summary belongs to exactly one shipment.
type FinancialSummary struct {
	ID                uuid.UUID
	ICMSBase          decimal.Decimal
	ICMSValue         decimal.Decimal
	STICMSBase        decimal.Decimal
	STICMSValue       decimal.Decimal
	FCPValue          decimal.Decimal
	PISValue          decimal.Decimal
	COFINSValue       decimal.Decimal
	IPIValue          decimal.Decimal
	TotalProductValue decimal.Decimal
	FreightValue      decimal.Decimal
	InsuranceValue    decimal.Decimal
	Discount          decimal.Decimal
	OtherExpenses     decimal.Decimal
	TotalInvoiceValue decimal.Decimal
	CreatedAt         time.Time
}

// Item is a single invoice line. ProducedQuantity starts at zero and only
// moves forward, never past Quantity.
type Item struct {
	ID               uuid.UUID
	ShipmentID       uuid.UUID
	ProductID        uuid.UUID
	UnitID           *uuid.UUID
	Quantity         decimal.Decimal
	ProducedQuantity decimal.Decimal
	UnitPrice        decimal.Decimal
	TotalPrice       decimal.Decimal // quantity * unit price, computed by the store
	Product          *Product
	Unit             *Unit
	CreatedAt        time.Time
}

// Product is a catalog entry reconciled by Code.
type Product struct {
	ID          uuid.UUID
	Code        string
	Description string
	Price       decimal.Decimal
	Category    *string
}

// Unit is a measurement unit reconciled by Name.
type Unit struct {
	ID   uuid.UUID
	Name string
}

// Order groups shipments and items under an external production-order code.
type Order struct {
	ID            uuid.UUID
	CodeReference string
	CreatedAt     time.Time
}
