// Package syncer ingests shipment records from the ERP and reconciles them
// into storage. One run is: fetch, cross-reference, filter, transform,
// validate, persist in a single transaction, record the batch.
package syncer

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Record is the canonical shipment shape a raw invoice is transformed into.
// Everything past the validate step works only with this type.
type Record struct {
	Number                string `validate:"required"`
	AccessKey             *string
	Series                string `validate:"required"`
	Type                  string `validate:"required"`
	AuthorizationProtocol *string
	IssueDate             time.Time `validate:"required"`
	EntryExitDate         *time.Time
	EntryExitTime         *string
	TransportationType    string

	Recipient RecipientParams `validate:"required"`
	Items     []ItemParams    `validate:"required,min=1,dive"`
	Financial FinancialParams
}

type RecipientParams struct {
	InternalCode string         `validate:"required"`
	Location     LocationParams `validate:"required"`
	BusinessInfo BusinessInfoParams
}

type LocationParams struct {
	Route                    string `validate:"required"`
	StreetNumber             string
	Subpremise               *string
	Sublocality              string
	Locality                 string `validate:"required"`
	AdministrativeAreaLevel1 string
	Country                  string
	PostalCode               string
	FormattedAddress         string `validate:"required"`
}

type BusinessInfoParams struct {
	NameCorporateReason string `validate:"required"`
	CNPJCPF             string
	PhoneFax            *string
	Contact             *string
	StateRegistration   *string
	TradeName           *string
	ModificationDate    *string
}

type ItemParams struct {
	Code        string `validate:"required"`
	Description string
	Unit        string
	Quantity    decimal.Decimal `validate:"required,gt=0"`
	UnitPrice   decimal.Decimal
	Price       decimal.Decimal // catalog price from the material profile
	Category    *string
	OrderCode   string // empty when the description carries no order reference
}

type FinancialParams struct {
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
}

// ImportBatch is the audit record of one successful run.
type ImportBatch struct {
	ID        uuid.UUID `json:"id"`
	Shipments []string  `json:"shipments"`
	CreatedAt time.Time `json:"createdAt"`
}

// ItemLink pairs a reconciled shipment item with the order code extracted
// from its description, for the later join-table linking.
type ItemLink struct {
	ItemID    uuid.UUID
	OrderCode string
}

//go:generate mockgen -source=syncer.go -destination=repository_mock.go -package=syncer
type Repository interface {
	LastImport(ctx context.Context) (*ImportBatch, error)
	ListImports(ctx context.Context) ([]*ImportBatch, error)

	BeginSync(ctx context.Context) (SyncTx, error)
}

// SyncTx is the reconciliation surface of one batch transaction. Every
// get-or-create resolves duplicate-key races by re-fetching on conflict;
// the store's unique constraints are the serialization point.
type SyncTx interface {
	ShipmentExists(ctx context.Context, number string) (bool, error)

	GetOrCreateLocation(ctx context.Context, params LocationParams) (uuid.UUID, error)
	GetOrCreateBusinessInfo(ctx context.Context, params BusinessInfoParams) (uuid.UUID, error)
	GetOrCreateSeamstress(ctx context.Context, internalCode string, locationID, businessInfoID uuid.UUID) (uuid.UUID, error)
	CreateFinancialSummary(ctx context.Context, params FinancialParams) (uuid.UUID, error)
	CreateShipment(ctx context.Context, record *Record, recipientID, financialSummaryID uuid.UUID) (uuid.UUID, error)
	GetOrCreateShipmentItems(ctx context.Context, shipmentID uuid.UUID, items []ItemParams) ([]ItemLink, error)
	GetOrCreateOrders(ctx context.Context, codes []string) (map[string]uuid.UUID, error)
	LinkShipmentToOrders(ctx context.Context, shipmentID uuid.UUID, orderIDs []uuid.UUID) error
	LinkItemsToOrders(ctx context.Context, links []ItemOrderLink) error

	RecordImport(ctx context.Context, numbers []string) error

	Commit() error
	Rollback() error
}

type ItemOrderLink struct {
	ItemID  uuid.UUID
	OrderID uuid.UUID
}
