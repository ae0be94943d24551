package seamstress

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrNotFound = errors.New("seamstress not found")

// Seamstress is a home-based producer that receives material shipments.
// InternalCode is the ERP company code and the reconciliation key.
type Seamstress struct {
	ID             uuid.UUID
	InternalCode   string
	LocationID     uuid.UUID
	BusinessInfoID uuid.UUID
	Location       *Location     // Loaded via JOIN
	BusinessInfo   *BusinessInfo // Loaded via JOIN
	CreatedAt      time.Time
	UpdatedAt      *time.Time
	DeletedAt      *time.Time
}

// Location is a physical address. FormattedAddress is the reconciliation
// key; Lat/Lng stay nil until a geocoding pass resolves them.
type Location struct {
	ID                       uuid.UUID
	Route                    string
	StreetNumber             string
	Subpremise               *string
	Sublocality              string
	Locality                 string
	AdministrativeAreaLevel1 string
	AdministrativeAreaLevel2 *string
	Country                  string
	PostalCode               string
	FormattedAddress         string
	Lat                      *decimal.Decimal
	Lng                      *decimal.Decimal
	CreatedAt                time.Time
}

// BusinessInfo holds the legal registration data of a seamstress.
// NameCorporateReason is the reconciliation key.
type BusinessInfo struct {
	ID                  uuid.UUID
	NameCorporateReason string
	CNPJCPF             string
	Email               *string
	PhoneFax            *string
	Contact             *string
	StateRegistration   *string
	TradeName           *string
	ModificationDate    *string
	CreatedAt           time.Time
}
