package syncer_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/stitchworks/atelier/internal/erp"
	"github.com/stitchworks/atelier/internal/events"
	"github.com/stitchworks/atelier/internal/shipment"
	"github.com/stitchworks/atelier/internal/syncer"
)

type recordedEvent struct {
	event string
	key   string
}

type capturePublisher struct {
	published []recordedEvent
}

func (p *capturePublisher) Publish(_ context.Context, event, key string, _ any) error {
	p.published = append(p.published, recordedEvent{event: event, key: key})
	return nil
}

func (p *capturePublisher) Close() error { return nil }

func seamstressCompany(code string) erp.Company {
	return erp.Company{
		CodigoEmpresa: code,
		CodigoDivisao: erp.SeamstressDivision,
		NomeCompleto:  "OFICINA DE COSTURA LTDA",
		Endereco:      "Rua Amazonas",
		Numero:        "10",
		Bairro:        "Garcia",
		Municipio:     "Blumenau",
		UF:            "SC",
		CEP:           "89020-000",
	}
}

func invoice(number, client string) erp.Invoice {
	return erp.Invoice{
		NF:           number,
		Serie:        "1",
		TipoOperacao: "S",
		DataEmissao:  "15/03/2026",
		Cliente:      client,
		Itens: []erp.InvoiceItem{
			{
				CodigoMaterial: "TEC001",
				Descricao:      "CAMISA OP 4711",
				Quantidade:     "50,00",
				PrecoUnitario:  "2,50",
			},
		},
	}
}

func TestService_Run_ImportsNewShipment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	date := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	shipmentID := uuid.New()

	erpClient := erp.NewMockClient(ctrl)
	erpClient.EXPECT().ListInvoices(gomock.Any(), date).Return([]erp.Invoice{invoice("18233", "1042")}, nil)
	erpClient.EXPECT().GetCompanyByCode(gomock.Any(), "1042").Return([]erp.Company{seamstressCompany("1042")}, nil)
	erpClient.EXPECT().GetMaterialByCode(gomock.Any(), "TEC001").Return([]erp.Material{{CodigoMaterial: "TEC001", Preco: "3,10"}}, nil)

	tx := syncer.NewMockSyncTx(ctrl)
	tx.EXPECT().ShipmentExists(gomock.Any(), "18233").Return(false, nil)
	tx.EXPECT().GetOrCreateLocation(gomock.Any(), gomock.Any()).Return(uuid.New(), nil)
	tx.EXPECT().GetOrCreateBusinessInfo(gomock.Any(), gomock.Any()).Return(uuid.New(), nil)
	tx.EXPECT().GetOrCreateSeamstress(gomock.Any(), "1042", gomock.Any(), gomock.Any()).Return(uuid.New(), nil)
	tx.EXPECT().CreateFinancialSummary(gomock.Any(), gomock.Any()).Return(uuid.New(), nil)
	tx.EXPECT().CreateShipment(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(shipmentID, nil)

	itemID := uuid.New()
	orderID := uuid.New()
	tx.EXPECT().GetOrCreateShipmentItems(gomock.Any(), shipmentID, gomock.Any()).
		Return([]syncer.ItemLink{{ItemID: itemID, OrderCode: "4711"}}, nil)
	tx.EXPECT().GetOrCreateOrders(gomock.Any(), []string{"4711"}).
		Return(map[string]uuid.UUID{"4711": orderID}, nil)
	tx.EXPECT().LinkShipmentToOrders(gomock.Any(), shipmentID, []uuid.UUID{orderID}).Return(nil)
	tx.EXPECT().LinkItemsToOrders(gomock.Any(), []syncer.ItemOrderLink{{ItemID: itemID, OrderID: orderID}}).Return(nil)

	tx.EXPECT().RecordImport(gomock.Any(), []string{"18233"}).Return(nil)
	tx.EXPECT().Commit().Return(nil)
	tx.EXPECT().Rollback().Return(nil)

	repo := syncer.NewMockRepository(ctrl)
	repo.EXPECT().BeginSync(gomock.Any()).Return(tx, nil)

	loader := syncer.NewMockShipmentLoader(ctrl)
	loader.EXPECT().GetShipment(gomock.Any(), shipmentID).Return(&shipment.Shipment{ID: shipmentID, Number: "18233"}, nil)

	pub := &capturePublisher{}
	svc := syncer.NewService(erpClient, repo, loader, pub)

	imported, err := svc.Run(context.Background(), date)
	require.NoError(t, err)
	assert.Equal(t, 1, imported)

	require.Len(t, pub.published, 1)
	assert.Equal(t, events.ShipmentNew, pub.published[0].event)
	assert.Equal(t, shipmentID.String(), pub.published[0].key)
}

// A shipment number that already exists is skipped: no rows, no batch
// record, no event. Re-importing the same day twice is a no-op.
func TestService_Run_SkipsExistingShipment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	date := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	erpClient := erp.NewMockClient(ctrl)
	erpClient.EXPECT().ListInvoices(gomock.Any(), date).Return([]erp.Invoice{invoice("18233", "1042")}, nil)
	erpClient.EXPECT().GetCompanyByCode(gomock.Any(), "1042").Return([]erp.Company{seamstressCompany("1042")}, nil)
	erpClient.EXPECT().GetMaterialByCode(gomock.Any(), "TEC001").Return(nil, nil)

	tx := syncer.NewMockSyncTx(ctrl)
	tx.EXPECT().ShipmentExists(gomock.Any(), "18233").Return(true, nil)
	tx.EXPECT().Commit().Return(nil)
	tx.EXPECT().Rollback().Return(nil)

	repo := syncer.NewMockRepository(ctrl)
	repo.EXPECT().BeginSync(gomock.Any()).Return(tx, nil)

	pub := &capturePublisher{}
	svc := syncer.NewService(erpClient, repo, syncer.NewMockShipmentLoader(ctrl), pub)

	imported, err := svc.Run(context.Background(), date)
	require.NoError(t, err)
	assert.Zero(t, imported)
	assert.Empty(t, pub.published)
}

// Invoices addressed to clients outside the seamstress division never reach
// the persistence phase.
func TestService_Run_FiltersNonSeamstressClients(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	date := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	retail := seamstressCompany("2001")
	retail.CodigoDivisao = "VJ"

	erpClient := erp.NewMockClient(ctrl)
	erpClient.EXPECT().ListInvoices(gomock.Any(), date).Return([]erp.Invoice{invoice("500", "2001")}, nil)
	erpClient.EXPECT().GetCompanyByCode(gomock.Any(), "2001").Return([]erp.Company{retail}, nil)

	repo := syncer.NewMockRepository(ctrl)

	svc := syncer.NewService(erpClient, repo, syncer.NewMockShipmentLoader(ctrl), &capturePublisher{})

	imported, err := svc.Run(context.Background(), date)
	require.NoError(t, err)
	assert.Zero(t, imported)
}

// The upstream's structured exception payload means "nothing for that
// date"; the run ends quietly instead of failing.
func TestService_Run_ServiceExceptionEndsQuietly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	date := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	erpClient := erp.NewMockClient(ctrl)
	erpClient.EXPECT().ListInvoices(gomock.Any(), date).
		Return(nil, &erp.ServiceError{Code: 100, Message: "Nenhuma nota fiscal encontrada"})

	svc := syncer.NewService(erpClient, syncer.NewMockRepository(ctrl), syncer.NewMockShipmentLoader(ctrl), &capturePublisher{})

	imported, err := svc.Run(context.Background(), date)
	require.NoError(t, err)
	assert.Zero(t, imported)
}

// A record failing validation aborts the run before any transaction is
// opened; nothing partial is ever committed.
func TestService_Run_ValidationFailureAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	date := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	bad := invoice("18233", "1042")
	bad.Itens[0].Quantidade = "0,00"

	erpClient := erp.NewMockClient(ctrl)
	erpClient.EXPECT().ListInvoices(gomock.Any(), date).Return([]erp.Invoice{bad}, nil)
	erpClient.EXPECT().GetCompanyByCode(gomock.Any(), "1042").Return([]erp.Company{seamstressCompany("1042")}, nil)
	erpClient.EXPECT().GetMaterialByCode(gomock.Any(), "TEC001").Return(nil, nil)

	repo := syncer.NewMockRepository(ctrl)

	svc := syncer.NewService(erpClient, repo, syncer.NewMockShipmentLoader(ctrl), &capturePublisher{})

	_, err := svc.Run(context.Background(), date)
	require.Error(t, err)
}

func TestService_Overdue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name string
		last *syncer.ImportBatch
		want bool
	}{
		{name: "NoImportYet", last: nil, want: true},
		{
			name: "FreshImport",
			last: &syncer.ImportBatch{CreatedAt: time.Now().Add(-5 * time.Minute)},
			want: false,
		},
		{
			name: "StaleImport",
			last: &syncer.ImportBatch{CreatedAt: time.Now().Add(-2 * time.Hour)},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := syncer.NewMockRepository(ctrl)
			repo.EXPECT().LastImport(gomock.Any()).Return(tt.last, nil)

			svc := syncer.NewService(erp.NewMockClient(ctrl), repo, syncer.NewMockShipmentLoader(ctrl), &capturePublisher{})

			overdue, err := svc.Overdue(context.Background(), time.Hour)
			require.NoError(t, err)
			assert.Equal(t, tt.want, overdue)
		})
	}
}
