package syncer_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stitchworks/atelier/internal/erp"
	"github.com/stitchworks/atelier/internal/syncer"
)

func company() erp.Company {
	return erp.Company{
		CodigoEmpresa:   "1042",
		CodigoDivisao:   "CT",
		NomeCompleto:    "MARIA DE LOURDES CONFECCOES LTDA",
		Fantasia:        "Confeccoes M.L.",
		CnpjCpf:         "12.345.678/0001-90",
		Inscricao:       "ISENTO",
		Endereco:        "Rua das Gabirobas",
		Numero:          "250",
		Complemento:     "Fundos",
		Bairro:          "Vila Nova",
		Municipio:       "Blumenau",
		UF:              "SC",
		CEP:             "89035-000",
		Fone:            "47-3333-4444",
		Contato:         "Maria",
		DataModificacao: "10/03/2026",
	}
}

func TestTransform(t *testing.T) {
	inv := erp.Invoice{
		NF:               "18233",
		ChaveNFe:         "42260312345678000190550010000182331000000001",
		Serie:            "1",
		TipoOperacao:     "S",
		NumeroProtocolo:  "342260000000001",
		DataEmissao:      "15/03/2026",
		DataSaida:        "16/03/2026",
		HoraSaida:        "14:30",
		TipoFrete:        "0",
		Cliente:          "1042",
		TotalMercadorias: "1.250,40",
		TotalNF:          "1.310,00",
		Itens: []erp.InvoiceItem{
			{
				CodigoMaterial:      "TEC001",
				Descricao:           "CAMISA POLO OP 4711",
				Quantidade:          "120,00",
				PrecoUnitario:       "10,42",
				CodigoUnidadeMedida: "UN",
			},
			{
				CodigoMaterial: "TEC002",
				Descricao:      "BERMUDA SARJA",
				Quantidade:     "30,00",
				PrecoUnitario:  "1,20",
			},
		},
	}

	materials := map[string]erp.Material{
		"TEC001": {CodigoMaterial: "TEC001", Preco: "12,99", CodigoGrupo: "MALHA"},
	}

	record, err := syncer.Transform(inv, company(), materials)
	require.NoError(t, err)

	assert.Equal(t, "18233", record.Number)
	require.NotNil(t, record.AccessKey)
	assert.Equal(t, "42260312345678000190550010000182331000000001", *record.AccessKey)
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), record.IssueDate)
	require.NotNil(t, record.EntryExitDate)
	assert.Equal(t, time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC), *record.EntryExitDate)
	require.NotNil(t, record.EntryExitTime)
	assert.Equal(t, "14:30", *record.EntryExitTime)

	assert.True(t, record.Financial.TotalProductValue.Equal(decimal.RequireFromString("1250.40")))
	assert.True(t, record.Financial.TotalInvoiceValue.Equal(decimal.RequireFromString("1310.00")))

	assert.Equal(t, "1042", record.Recipient.InternalCode)
	assert.Equal(t, "MARIA DE LOURDES CONFECCOES LTDA", record.Recipient.BusinessInfo.NameCorporateReason)
	require.NotNil(t, record.Recipient.BusinessInfo.PhoneFax)
	assert.Equal(t, "4733334444", *record.Recipient.BusinessInfo.PhoneFax)
	assert.Equal(t, "BRA", record.Recipient.Location.Country)

	require.Len(t, record.Items, 2)

	first := record.Items[0]
	assert.Equal(t, "TEC001", first.Code)
	assert.Equal(t, "4711", first.OrderCode)
	assert.True(t, first.Quantity.Equal(decimal.RequireFromString("120")))
	assert.True(t, first.UnitPrice.Equal(decimal.RequireFromString("10.42")))
	assert.True(t, first.Price.Equal(decimal.RequireFromString("12.99")))
	require.NotNil(t, first.Category)
	assert.Equal(t, "MALHA", *first.Category)

	// The second item has no material profile: invoice data only.
	second := record.Items[1]
	assert.Equal(t, "TEC002", second.Code)
	assert.Empty(t, second.OrderCode)
	assert.True(t, second.Price.IsZero())
	assert.Nil(t, second.Category)
}

func TestTransform_BadIssueDate(t *testing.T) {
	inv := erp.Invoice{NF: "1", DataEmissao: "2026-03-15"}

	_, err := syncer.Transform(inv, company(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "issue date")
}

func TestTransform_EmptyExitDateIsNil(t *testing.T) {
	inv := erp.Invoice{NF: "1", DataEmissao: "15/03/2026", DataSaida: "  "}

	record, err := syncer.Transform(inv, company(), nil)
	require.NoError(t, err)
	assert.Nil(t, record.EntryExitDate)
}

func TestFormatAddress(t *testing.T) {
	assert.Equal(t,
		"Rua das Gabirobas, 250 / Fundos - Vila Nova, Blumenau - SC, 89035-000",
		syncer.FormatAddress(company()),
	)

	c := company()
	c.Complemento = ""
	assert.Equal(t,
		"Rua das Gabirobas, 250 - Vila Nova, Blumenau - SC, 89035-000",
		syncer.FormatAddress(c),
	)
}

func TestParseOrderCode(t *testing.T) {
	tests := []struct {
		description string
		want        string
	}{
		{"CAMISA POLO OP 4711", "4711"},
		{"OP 99", "99"},
		{"CAMISA POLO", ""},
		{"", ""},
		{"JAQUETA OP 4711 LOTE B", "4711 LOTE B"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, syncer.ParseOrderCode(tt.description), tt.description)
	}
}
