package docfields

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractName_DriversLicense(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "trailing date and registration number stripped",
			text: "NOME E SOBRENOME\nMARIA DA SILVA SANTOS 01/01/2030 00000000000",
			want: "MARIA DA SILVA SANTOS",
		},
		{
			name: "habilitacao header variant",
			text: "NOME 1ª HABILITAÇÃO\nJOÃO PEREIRA LIMA",
			want: "JOÃO PEREIRA LIMA",
		},
		{
			name: "accented name preserved",
			text: "NOME E SOBRENOME\nJOSÉ ANTÔNIO ARAÚJO",
			want: "JOSÉ ANTÔNIO ARAÚJO",
		},
		{
			name: "candidate with stray digits rejected",
			text: "NOME E SOBRENOME\nMAR1A DA S1LVA",
			want: "",
		},
		{
			name: "single word rejected",
			text: "NOME E SOBRENOME\nMARIA",
			want: "",
		},
		{
			name: "seven words rejected",
			text: "NOME E SOBRENOME\nUM DOIS TRES QUATRO CINCO SEIS SETE",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractName(tt.text))
		})
	}
}

func TestExtractName_IDCard(t *testing.T) {
	got := extractName("REGISTRO GERAL 12.345.678-9\nNOME COMPLETO\nCARLOS EDUARDO MOREIRA\nFILIAÇÃO\nANA MOREIRA")
	assert.Equal(t, "CARLOS EDUARDO MOREIRA", got)
}

func TestExtractName_FiliationLineIsNotAnAnchor(t *testing.T) {
	// "NOME" inside the parentage label must not anchor on the parents'
	// names; the later IDENTIDADE anchor wins.
	text := "FILIAÇÃO E NOME\nJOSE SILVA MARIA SILVA\nIDENTIDADE\nCARLOS EDUARDO MOREIRA"
	assert.Equal(t, "CARLOS EDUARDO MOREIRA", extractName(text))
}

func TestExtractName_GenericFallback(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "plain name line among boilerplate",
			text: "REPÚBLICA FEDERATIVA DO BRASIL\nFERNANDA COSTA RIBEIRO\nCATEGORIA B",
			want: "FERNANDA COSTA RIBEIRO",
		},
		{
			name: "line starting with digit skipped",
			text: "12345 FERNANDA COSTA\nLUCAS ALMEIDA BARBOSA",
			want: "LUCAS ALMEIDA BARBOSA",
		},
		{
			name: "short line skipped",
			text: "ANA LIMA\nGUSTAVO HENRIQUE FONSECA",
			want: "GUSTAVO HENRIQUE FONSECA",
		},
		{
			name: "only boilerplate yields nothing",
			text: "CARTEIRA NACIONAL DE HABILITAÇÃO\nMINISTÉRIO DOS TRANSPORTES\nCATEGORIA B",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractName(tt.text))
		})
	}
}

func TestExtractName_AnchoredBeatsGeneric(t *testing.T) {
	// The generic-looking line comes first in the text, but the CNH anchor
	// must take precedence.
	text := "BEATRIZ NOGUEIRA CAMPOS\nNOME E SOBRENOME\nMARIA DA SILVA SANTOS"
	assert.Equal(t, "MARIA DA SILVA SANTOS", extractName(text))
}
