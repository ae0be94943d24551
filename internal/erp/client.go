package erp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	enc "github.com/stitchworks/atelier/internal/encoding"
)

const (
	pathListInvoices = "/CadastroNotaFiscal.integrador.ashx/ListarNotasFiscais"
	pathGetCompany   = "/CadastroEmpresas.integrador.ashx/ListarIndividual"
	pathGetMaterial  = "/CadastroMateriais.integrador.ashx/ListarIndividual"
)

// HTTPClient calls the integration webservice with form-encoded requests,
// decoding responses through charset detection before JSON parsing.
type HTTPClient struct {
	baseURL    string
	pin        string
	httpClient *http.Client
}

func NewHTTPClient(baseURL, pin string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		pin:        pin,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type listInvoicesResponse struct {
	NotasFiscais []Invoice `json:"notasFiscais"`
	Exception    *struct {
		Code    int    `json:"Code"`
		Message string `json:"Message"`
	} `json:"exception"`
}

func (c *HTTPClient) ListInvoices(ctx context.Context, date time.Time) ([]Invoice, error) {
	form := url.Values{}
	form.Set("pin", c.pin)
	form.Set("tipoNota", "A")
	form.Set("dataEmissaoInicial", date.Format(time.DateOnly))
	form.Set("dataEmissaoFinal", date.Format(time.DateOnly))

	var body listInvoicesResponse
	if err := c.post(ctx, pathListInvoices, form, &body); err != nil {
		return nil, err
	}

	if body.Exception != nil {
		return nil, &ServiceError{Code: body.Exception.Code, Message: body.Exception.Message}
	}

	return body.NotasFiscais, nil
}

func (c *HTTPClient) GetCompanyByCode(ctx context.Context, code string) ([]Company, error) {
	form := url.Values{}
	form.Set("pin", c.pin)
	form.Set("codigoEmpresa", code)

	var companies []Company
	if err := c.post(ctx, pathGetCompany, form, &companies); err != nil {
		return nil, err
	}

	return companies, nil
}

func (c *HTTPClient) GetMaterialByCode(ctx context.Context, code string) ([]Material, error) {
	form := url.Values{}
	form.Set("pin", c.pin)
	form.Set("codigoMaterial", code)

	var materials []Material
	if err := c.post(ctx, pathGetMaterial, form, &materials); err != nil {
		return nil, err
	}

	return materials, nil
}

func (c *HTTPClient) post(ctx context.Context, path string, form url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("building request for %s: %w", path, err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("calling %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("calling %s: unexpected status %d", path, resp.StatusCode)
	}

	utf8Body, err := enc.NewUTF8Reader(resp.Body)
	if err != nil {
		return fmt.Errorf("detecting encoding for %s: %w", path, err)
	}

	if err := json.NewDecoder(utf8Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response from %s: %w", path, err)
	}

	return nil
}
