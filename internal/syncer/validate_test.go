package syncer_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stitchworks/atelier/internal/syncer"
)

func validRecord(number string) *syncer.Record {
	return &syncer.Record{
		Number:    number,
		Series:    "1",
		Type:      "S",
		IssueDate: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		Recipient: syncer.RecipientParams{
			InternalCode: "1042",
			Location: syncer.LocationParams{
				Route:            "Rua Amazonas",
				Locality:         "Blumenau",
				FormattedAddress: "Rua Amazonas, 10 - Garcia, Blumenau - SC, 89020-000",
			},
			BusinessInfo: syncer.BusinessInfoParams{
				NameCorporateReason: "OFICINA DE COSTURA LTDA",
			},
		},
		Items: []syncer.ItemParams{
			{Code: "TEC001", Quantity: decimal.RequireFromString("50")},
		},
	}
}

func TestValidateRecords(t *testing.T) {
	assert.NoError(t, syncer.ValidateRecords([]*syncer.Record{validRecord("18233")}))
}

func TestValidateRecords_ZeroQuantityRejected(t *testing.T) {
	bad := validRecord("18233")
	bad.Items[0].Quantity = decimal.Zero

	err := syncer.ValidateRecords([]*syncer.Record{bad})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "18233")
}

func TestValidateRecords_NoItemsRejected(t *testing.T) {
	bad := validRecord("18233")
	bad.Items = nil

	assert.Error(t, syncer.ValidateRecords([]*syncer.Record{bad}))
}

// One bad record fails the whole batch, and every failure is reported.
func TestValidateRecords_AggregatesFailures(t *testing.T) {
	first := validRecord("1")
	first.Series = ""

	second := validRecord("2")
	second.Recipient.Location.FormattedAddress = ""

	err := syncer.ValidateRecords([]*syncer.Record{first, second, validRecord("3")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `shipment "1"`)
	assert.Contains(t, err.Error(), `shipment "2"`)
}
