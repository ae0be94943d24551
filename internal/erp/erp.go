// Package erp talks to the upstream ERP integration webservice. Every field
// arrives as a string in the upstream's locale conventions; nothing here is
// parsed beyond JSON — the syncer's transform step owns coercion into the
// canonical types.
package erp

import (
	"context"
	"fmt"
	"time"
)

// ServiceError is the structured exception payload the webservice returns
// in place of data. It is a soft failure: a sync run that receives one ends
// quietly with nothing to do.
type ServiceError struct {
	Code    int
	Message string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("erp service exception %d: %s", e.Code, e.Message)
}

// Invoice is one raw shipment record ("nota fiscal") as listed upstream.
type Invoice struct {
	NF               string        `json:"nf"`
	ChaveNFe         string        `json:"chaveNFe"`
	Serie            string        `json:"serie"`
	TipoOperacao     string        `json:"tipoOperacao"`
	NumeroProtocolo  string        `json:"numeroProtocolo"`
	DataEmissao      string        `json:"dataEmissao"`
	DataSaida        string        `json:"dataSaida"`
	HoraSaida        string        `json:"horaSaida"`
	TipoFrete        string        `json:"tipoFrete"`
	Cliente          string        `json:"cliente"`
	TotalMercadorias string        `json:"totalMercadorias"`
	TotalNF          string        `json:"totalNF"`
	Itens            []InvoiceItem `json:"itensNf"`
}

// InvoiceItem is one raw invoice line.
type InvoiceItem struct {
	CodigoMaterial      string `json:"codigoMaterial"`
	Descricao           string `json:"descricao"`
	Quantidade          string `json:"quantidade"`
	PrecoUnitario       string `json:"precoUnitario"`
	ValorContabil       string `json:"valorContabil"`
	PrecoTotalCusto     string `json:"precoTotalCusto"`
	CodigoUnidadeMedida string `json:"codigoUnidadeMedida"`
}

// Company is a raw client profile. CodigoDivisao tells the client category;
// seamstresses carry the "CT" division.
type Company struct {
	CodigoEmpresa   string `json:"codigoEmpresa"`
	CodigoDivisao   string `json:"codigoDivisao"`
	NomeCompleto    string `json:"nomeCompleto"`
	Fantasia        string `json:"fantasia"`
	CnpjCpf         string `json:"cnpjCpf"`
	Inscricao       string `json:"inscricao"`
	Endereco        string `json:"endereco"`
	Numero          string `json:"numero"`
	Complemento     string `json:"complemento"`
	Bairro          string `json:"bairro"`
	Municipio       string `json:"municipio"`
	UF              string `json:"uf"`
	CEP             string `json:"cep"`
	Fone            string `json:"fone"`
	Contato         string `json:"contato"`
	DataModificacao string `json:"dataModificacao"`
}

// Material is a raw product catalog profile.
type Material struct {
	CodigoMaterial string `json:"codigoMaterial"`
	Descricao      string `json:"descricao"`
	Preco          string `json:"preco"`
	CodigoGrupo    string `json:"codigoGrupo"`
}

// SeamstressDivision is the client division code that marks a company as a
// recognized seamstress.
const SeamstressDivision = "CT"

// Client is the upstream fetch collaborator the sync pipeline consumes.
type Client interface {
	ListInvoices(ctx context.Context, date time.Time) ([]Invoice, error)
	GetCompanyByCode(ctx context.Context, code string) ([]Company, error)
	GetMaterialByCode(ctx context.Context, code string) ([]Material, error)
}
