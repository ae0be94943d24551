package encoding_test

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/stitchworks/atelier/internal/encoding"
)

func decode(t *testing.T, input string) string {
	t.Helper()

	r, err := encoding.NewUTF8Reader(strings.NewReader(input))
	require.NoError(t, err)

	out, err := io.ReadAll(r)
	require.NoError(t, err)

	return string(out)
}

func TestNewUTF8Reader_PlainUTF8(t *testing.T) {
	assert.Equal(t, "CONFECÇÃO SÃO JOSÉ", decode(t, "CONFECÇÃO SÃO JOSÉ"))
}

func TestNewUTF8Reader_UTF8BOM(t *testing.T) {
	assert.Equal(t, "nota fiscal", decode(t, "\xEF\xBB\xBFnota fiscal"))
}

func TestNewUTF8Reader_Latin1(t *testing.T) {
	encoder := charmap.ISO8859_1.NewEncoder()

	latin1, err := encoder.String("ENDEREÇO: AVENIDA SÃO PAULO")
	require.NoError(t, err)

	assert.Equal(t, "ENDEREÇO: AVENIDA SÃO PAULO", decode(t, latin1))
}

func TestNewUTF8Reader_Empty(t *testing.T) {
	assert.Equal(t, "", decode(t, ""))
}
