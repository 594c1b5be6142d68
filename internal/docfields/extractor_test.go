package docfields

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cnhSample = `REPÚBLICA FEDERATIVA DO BRASIL
CARTEIRA NACIONAL DE HABILITAÇÃO
NOME E SOBRENOME
MARIA DA SILVA SANTOS 01/01/2030 00000000000
DATA, LOCAL E UF DE NASCIMENTO
15/07/1990, SÃO PAULO
CPF 987.654.321-00
CATEGORIA B`

func newTestExtractor(t *testing.T) *Extractor {
	t.Helper()
	e := NewExtractor(slog.Default())
	e.now = func() time.Time {
		return time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)
	}
	return e
}

func TestExtract_CNH(t *testing.T) {
	e := newTestExtractor(t)
	rec := e.Extract(cnhSample)

	require.NotNil(t, rec.Name)
	assert.Equal(t, "MARIA DA SILVA SANTOS", *rec.Name)
	require.NotNil(t, rec.TaxID)
	assert.Equal(t, "98765432100", *rec.TaxID)
	require.NotNil(t, rec.BirthDate)
	assert.Equal(t, "15/07/1990", *rec.BirthDate)
	assert.Equal(t, cnhSample, rec.RawText)
}

func TestExtract_MalformedTextNeverFails(t *testing.T) {
	e := newTestExtractor(t)
	for _, text := range []string{"", "\n\n\n", "###$$$%%%", "ab", "1234"} {
		rec := e.Extract(text)
		assert.Nil(t, rec.Name)
		assert.Nil(t, rec.TaxID)
		assert.Nil(t, rec.BirthDate)
		assert.Equal(t, text, rec.RawText)
	}
}

func TestExtract_FieldsAreIndependent(t *testing.T) {
	e := newTestExtractor(t)
	rec := e.Extract("NASCIMENTO\n15/07/1990")

	assert.Nil(t, rec.Name)
	assert.Nil(t, rec.TaxID)
	require.NotNil(t, rec.BirthDate)
	assert.Equal(t, "15/07/1990", *rec.BirthDate)
}

func TestExtract_Idempotent(t *testing.T) {
	e := newTestExtractor(t)
	first := e.Extract(cnhSample)
	second := e.Extract(cnhSample)
	assert.Equal(t, first, second)
}

func TestFieldsJSON_Validates(t *testing.T) {
	e := newTestExtractor(t)
	rec := e.Extract(cnhSample)

	b, err := rec.FieldsJSON()
	require.NoError(t, err)
	assert.NoError(t, ValidateFieldsJSON(b))

	empty := e.Extract("")
	b, err = empty.FieldsJSON()
	require.NoError(t, err)
	assert.NoError(t, ValidateFieldsJSON(b))
}

func TestValidateFieldsJSON_RejectsBadShape(t *testing.T) {
	assert.Error(t, ValidateFieldsJSON([]byte(`{"name":null,"tax_id":"123","birth_date":null,"raw_text":""}`)))
	assert.Error(t, ValidateFieldsJSON([]byte(`{"raw_text":""}`)))
}
