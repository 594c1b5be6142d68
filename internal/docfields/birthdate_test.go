package docfields

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractBirthDate_Anchored(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "date on line after label, comma truncated",
			text: "DATA, LOCAL E UF DE NASCIMENTO\n15/07/1990, SÃO PAULO",
			want: "15/07/1990",
		},
		{
			name: "plain nascimento label",
			text: "NASCIMENTO\n15/07/1990, SÃO PAULO",
			want: "15/07/1990",
		},
		{
			name: "date on the label line itself",
			text: "NASC 03/02/1975 RECIFE",
			want: "03/02/1975",
		},
		{
			name: "date two lines below label",
			text: "NASCIMENTO\n\n28/11/1982",
			want: "28/11/1982",
		},
		{
			name: "date three lines below label is out of the window",
			text: "NASCIMENTO\nlinha\nlinha\n28/11/1982",
			want: "28/11/1982", // found by the fallback pass instead
		},
		{
			name: "anchored date beats earlier years elsewhere",
			text: "EMITIDO 01/01/1950\nNASCIMENTO\n15/07/1990",
			want: "15/07/1990",
		},
		{
			name: "invalid month on anchored line falls through",
			text: "NASCIMENTO 40/13/1990\nsem mais datas",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractBirthDate(tt.text, 2026))
		})
	}
}

func TestExtractBirthDate_Fallback(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "smallest year wins",
			text: "EMISSAO 10/05/2015 VALIDADE 10/05/2025 doc 20/03/1985",
			want: "20/03/1985",
		},
		{
			name: "dash and dot formats count",
			text: "10-05-2015 e 20.03.1985",
			want: "20.03.1985",
		},
		{
			name: "future year rejected",
			text: "valido ate 01/01/2030",
			want: "",
		},
		{
			name: "year before 1900 rejected",
			text: "registro 12/12/1899",
			want: "",
		},
		{
			name: "day out of range rejected",
			text: "32/01/1990",
			want: "",
		},
		{
			name: "no dates",
			text: "texto sem numero nenhum",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractBirthDate(tt.text, 2026))
		})
	}
}
