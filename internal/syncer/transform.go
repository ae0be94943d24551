package syncer

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/stitchworks/atelier/internal/erp"
)

const (
	upstreamDateLayout = "02/01/2006"
	orderCodeDelimiter = "OP "
)

// Transform maps one raw invoice plus its resolved seamstress and material
// profiles into the canonical Record. Material profiles are matched per
// item code; items whose material was not resolved keep only the invoice
// data.
func Transform(inv erp.Invoice, company erp.Company, materials map[string]erp.Material) (*Record, error) {
	issueDate, err := parseUpstreamDate(inv.DataEmissao)
	if err != nil {
		return nil, fmt.Errorf("invoice %s: parsing issue date: %w", inv.NF, err)
	}

	record := &Record{
		Number:                strings.TrimSpace(inv.NF),
		AccessKey:             optional(inv.ChaveNFe),
		Series:                strings.TrimSpace(inv.Serie),
		Type:                  strings.TrimSpace(inv.TipoOperacao),
		AuthorizationProtocol: optional(inv.NumeroProtocolo),
		IssueDate:             issueDate,
		EntryExitTime:         optional(inv.HoraSaida),
		TransportationType:    strings.TrimSpace(inv.TipoFrete),
		Recipient:             transformRecipient(company),
		Financial: FinancialParams{
			TotalProductValue: parseLocaleDecimal(inv.TotalMercadorias),
			TotalInvoiceValue: parseLocaleDecimal(inv.TotalNF),
		},
	}

	if strings.TrimSpace(inv.DataSaida) != "" {
		exitDate, err := parseUpstreamDate(inv.DataSaida)
		if err != nil {
			return nil, fmt.Errorf("invoice %s: parsing exit date: %w", inv.NF, err)
		}

		record.EntryExitDate = &exitDate
	}

	for _, item := range inv.Itens {
		record.Items = append(record.Items, transformItem(item, materials))
	}

	return record, nil
}

func transformRecipient(company erp.Company) RecipientParams {
	return RecipientParams{
		InternalCode: strings.TrimSpace(company.CodigoEmpresa),
		Location: LocationParams{
			Route:                    strings.TrimSpace(company.Endereco),
			StreetNumber:             strings.TrimSpace(company.Numero),
			Subpremise:               optional(company.Complemento),
			Sublocality:              strings.TrimSpace(company.Bairro),
			Locality:                 strings.TrimSpace(company.Municipio),
			AdministrativeAreaLevel1: strings.TrimSpace(company.UF),
			Country:                  "BRA",
			PostalCode:               strings.TrimSpace(company.CEP),
			FormattedAddress:         FormatAddress(company),
		},
		BusinessInfo: BusinessInfoParams{
			NameCorporateReason: strings.TrimSpace(company.NomeCompleto),
			CNPJCPF:             strings.TrimSpace(company.CnpjCpf),
			PhoneFax:            optional(strings.ReplaceAll(company.Fone, "-", "")),
			Contact:             optional(company.Contato),
			StateRegistration:   optional(company.Inscricao),
			TradeName:           optional(company.Fantasia),
			ModificationDate:    optional(company.DataModificacao),
		},
	}
}

func transformItem(item erp.InvoiceItem, materials map[string]erp.Material) ItemParams {
	code := strings.TrimSpace(item.CodigoMaterial)

	params := ItemParams{
		Code:        code,
		Description: strings.TrimSpace(item.Descricao),
		Unit:        strings.TrimSpace(item.CodigoUnidadeMedida),
		Quantity:    parseLocaleDecimal(item.Quantidade),
		UnitPrice:   parseLocaleDecimal(item.PrecoUnitario),
		OrderCode:   ParseOrderCode(item.Descricao),
	}

	if material, ok := materials[code]; ok {
		params.Price = parseLocaleDecimal(material.Preco)

		if group := strings.TrimSpace(material.CodigoGrupo); group != "" {
			params.Category = &group
		}

		if params.Description == "" {
			params.Description = strings.TrimSpace(material.Descricao)
		}
	}

	return params
}

// FormatAddress builds the full-address string used as the location's
// reconciliation key. The shape must stay stable: changing it would stop
// existing locations from being found.
func FormatAddress(company erp.Company) string {
	var b strings.Builder

	b.WriteString(strings.TrimSpace(company.Endereco))
	b.WriteString(", ")
	b.WriteString(strings.TrimSpace(company.Numero))

	if complement := strings.TrimSpace(company.Complemento); complement != "" {
		b.WriteString(" / ")
		b.WriteString(complement)
	}

	b.WriteString(" - ")
	b.WriteString(strings.TrimSpace(company.Bairro))
	b.WriteString(", ")
	b.WriteString(strings.TrimSpace(company.Municipio))
	b.WriteString(" - ")
	b.WriteString(strings.TrimSpace(company.UF))
	b.WriteString(", ")
	b.WriteString(strings.TrimSpace(company.CEP))

	return b.String()
}

// ParseOrderCode extracts the production-order code from an item
// description like "CAMISA POLO OP 4711". No delimiter means no order.
func ParseOrderCode(description string) string {
	_, code, found := strings.Cut(description, orderCodeDelimiter)
	if !found {
		return ""
	}

	return strings.TrimSpace(code)
}

func parseUpstreamDate(value string) (time.Time, error) {
	return time.Parse(upstreamDateLayout, strings.TrimSpace(value))
}

// parseLocaleDecimal reads an upstream numeric string with a decimal comma
// ("1.234,56"). Unparseable values become zero, matching the upstream
// convention of blank-for-zero fields.
func parseLocaleDecimal(value string) decimal.Decimal {
	clean := strings.TrimSpace(value)
	clean = strings.ReplaceAll(clean, ".", "")
	clean = strings.ReplaceAll(clean, ",", ".")

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Zero
	}

	return d
}

func optional(value string) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}

	return &trimmed
}
