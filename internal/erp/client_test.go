package erp_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/stitchworks/atelier/internal/erp"
)

func TestHTTPClient_ListInvoices(t *testing.T) {
	date := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/CadastroNotaFiscal.integrador.ashx/ListarNotasFiscais", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "secret", r.PostFormValue("pin"))
		assert.Equal(t, "A", r.PostFormValue("tipoNota"))
		assert.Equal(t, "2026-03-15", r.PostFormValue("dataEmissaoInicial"))
		assert.Equal(t, "2026-03-15", r.PostFormValue("dataEmissaoFinal"))

		w.Write([]byte(`{"notasFiscais":[{"nf":"18233","serie":"1","cliente":"1042"}]}`))
	}))
	defer srv.Close()

	client := erp.NewHTTPClient(srv.URL, "secret", time.Second)

	invoices, err := client.ListInvoices(context.Background(), date)
	require.NoError(t, err)
	require.Len(t, invoices, 1)
	assert.Equal(t, "18233", invoices[0].NF)
	assert.Equal(t, "1042", invoices[0].Cliente)
}

func TestHTTPClient_ListInvoices_ServiceException(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"exception":{"Code":100,"Message":"Nenhuma nota fiscal encontrada"}}`))
	}))
	defer srv.Close()

	client := erp.NewHTTPClient(srv.URL, "secret", time.Second)

	_, err := client.ListInvoices(context.Background(), time.Now())

	var svcErr *erp.ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, 100, svcErr.Code)
	assert.Equal(t, "Nenhuma nota fiscal encontrada", svcErr.Message)
}

// The webservice answers in Latin-1; accented characters must survive the
// decode.
func TestHTTPClient_GetCompanyByCode_Latin1(t *testing.T) {
	payload := `[{"codigoEmpresa":"1042","codigoDivisao":"CT","nomeCompleto":"CONFECÇÕES SÃO JOÃO LTDA","municipio":"São Paulo"}]`

	latin1, err := charmap.ISO8859_1.NewEncoder().String(payload)
	require.NoError(t, err)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "1042", r.PostFormValue("codigoEmpresa"))

		w.Write([]byte(latin1))
	}))
	defer srv.Close()

	client := erp.NewHTTPClient(srv.URL, "secret", time.Second)

	companies, err := client.GetCompanyByCode(context.Background(), "1042")
	require.NoError(t, err)
	require.Len(t, companies, 1)
	assert.Equal(t, "CONFECÇÕES SÃO JOÃO LTDA", companies[0].NomeCompleto)
	assert.Equal(t, "São Paulo", companies[0].Municipio)
}

func TestHTTPClient_GetMaterialByCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/CadastroMateriais.integrador.ashx/ListarIndividual", r.URL.Path)
		w.Write([]byte(`[{"codigoMaterial":"TEC001","preco":"12,99","codigoGrupo":"MALHA"}]`))
	}))
	defer srv.Close()

	client := erp.NewHTTPClient(srv.URL, "secret", time.Second)

	materials, err := client.GetMaterialByCode(context.Background(), "TEC001")
	require.NoError(t, err)
	require.Len(t, materials, 1)
	assert.Equal(t, "12,99", materials[0].Preco)
}

func TestHTTPClient_UnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := erp.NewHTTPClient(srv.URL, "secret", time.Second)

	_, err := client.ListInvoices(context.Background(), time.Now())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}
