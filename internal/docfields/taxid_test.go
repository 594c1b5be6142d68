package docfields

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractTaxID(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "bare run in noise",
			text: "REGISTRO GERAL doc 98765432100 emitido SSP",
			want: "98765432100",
		},
		{
			name: "bare run split across whitespace",
			text: "CPF 987 654 321 00",
			want: "98765432100",
		},
		{
			name: "punctuated form",
			text: "CPF: 123.456.789-01\nVALIDADE 10/10/2030",
			want: "12345678901",
		},
		{
			name: "bare run wins over punctuated",
			text: "11122233344 e tambem 555.666.777-88",
			want: "11122233344",
		},
		{
			name: "twelve digit run is not a tax id",
			text: "registro 123456789012 fim",
			want: "",
		},
		{
			name: "ten digits is too short",
			text: "fone 1234567890",
			want: "",
		},
		{
			name: "empty text",
			text: "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractTaxID(tt.text))
		})
	}
}
