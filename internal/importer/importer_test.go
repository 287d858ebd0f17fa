package importer_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/MrJamesThe3rd/afiliado/internal/expense"
	"github.com/MrJamesThe3rd/afiliado/internal/importer"
)

func TestParse_Extrato(t *testing.T) {
	csv := `Extrato de conta corrente - 31/01/2026
Agência;0001
Conta;12345-6

Data;Descrição;Valor;Saldo
30/01/2026;Google Ads;-1.250,00;17.290,75
28/01/2026;Comissão Hotmart;2.847,50;18.540,75
25/01/2026;Canva Pro;-34,90;15.693,25
;Saldo final;;15.693,25
`

	drafts, err := importer.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, drafts, 2)

	assert.Equal(t, expense.Draft{
		Description: "Google Ads",
		Category:    importer.Category,
		Amount:      "1250.00",
		Date:        "2026-01-30",
	}, drafts[0])
	assert.Equal(t, "Canva Pro", drafts[1].Description)
	assert.Equal(t, "34.90", drafts[1].Amount)
	assert.Equal(t, "2026-01-25", drafts[1].Date)
}

func TestParse_Fatura(t *testing.T) {
	csv := `Data,Lançamento,Valor
10/02/2026,HOSTINGER,"R$ 89,90"
12/02/2026,PAGAMENTO RECEBIDO,"-1.500,00"
15/02/2026,META ADS,"450,00"
`

	drafts, err := importer.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, drafts, 2)

	assert.Equal(t, "HOSTINGER", drafts[0].Description)
	assert.Equal(t, "89.90", drafts[0].Amount)
	assert.Equal(t, "META ADS", drafts[1].Description)
	assert.Equal(t, "450.00", drafts[1].Amount)
	assert.Equal(t, "2026-02-15", drafts[1].Date)
}

func TestParse_Conta(t *testing.T) {
	csv := `Data ;Histórico ;Débito ;Crédito ;
03/03/26;TARIFA PACOTE;29,90;;
04/03/26;PIX RECEBIDO;;1.200,00;
05/03/26;PIX ENVIADO DESIGNER;-800,00;;
`

	drafts, err := importer.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, drafts, 2)

	assert.Equal(t, "TARIFA PACOTE", drafts[0].Description)
	assert.Equal(t, "29.90", drafts[0].Amount)
	assert.Equal(t, "2026-03-03", drafts[0].Date)
	assert.Equal(t, "800.00", drafts[1].Amount)
}

func TestParse_TitleLineAboveHeader(t *testing.T) {
	type testCase struct {
		name     string
		input    string
		wantDesc string
		wantAmt  string
	}

	tests := []testCase{
		{
			name:     "CommaFileWithPlainTitle",
			input:    "Fatura do cartão - fevereiro 2026\nData,Lançamento,Valor\n10/02/2026,HOSTINGER,\"R$ 89,90\"\n",
			wantDesc: "HOSTINGER",
			wantAmt:  "89.90",
		},
		{
			name:     "SemicolonFileWithCommasInTitle",
			input:    "Extrato de conta corrente, agência 0001, conta 12345-6\nData;Descrição;Valor\n30/01/2026;Google Ads;-1.250,00\n",
			wantDesc: "Google Ads",
			wantAmt:  "1250.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			drafts, err := importer.Parse(strings.NewReader(tt.input))
			require.NoError(t, err)
			require.Len(t, drafts, 1)
			assert.Equal(t, tt.wantDesc, drafts[0].Description)
			assert.Equal(t, tt.wantAmt, drafts[0].Amount)
		})
	}
}

func TestParse_MultibyteRuneAcrossPeekBoundary(t *testing.T) {
	header := "Data;Descrição;Valor\n"
	datePrefix := "30/01/2026;"
	desc := strings.Repeat("a", 4095-len(header)-len(datePrefix)) + "ção"

	drafts, err := importer.Parse(strings.NewReader(header + datePrefix + desc + ";-10,00\n"))
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Equal(t, desc, drafts[0].Description)
}

func TestParse_Windows1252(t *testing.T) {
	csv := "Data;Descrição;Valor\n01/04/2026;Manutenção site;-120,00\n"

	encoded, err := charmap.Windows1252.NewEncoder().Bytes([]byte(csv))
	require.NoError(t, err)

	drafts, err := importer.Parse(bytes.NewReader(encoded))
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Equal(t, "Manutenção site", drafts[0].Description)
}

func TestParse_UTF8BOM(t *testing.T) {
	csv := "\xEF\xBB\xBFData;Descrição;Valor\n01/04/2026;Domínio;-40,00\n"

	drafts, err := importer.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Equal(t, "Domínio", drafts[0].Description)
}

func TestParse_NoProfile(t *testing.T) {
	type testCase struct {
		name  string
		input string
	}

	tests := []testCase{
		{name: "UnknownHeader", input: "Date;Memo;Amount\n2026-01-01;x;-1.00\n"},
		{name: "Empty", input: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := importer.Parse(strings.NewReader(tt.input))
			assert.ErrorIs(t, err, importer.ErrNoProfile)
		})
	}
}

func TestParse_AmountsReadBackAsDecimal(t *testing.T) {
	csv := "Data;Descrição;Valor\n30/01/2026;Google Ads;-1.250,00\n"

	drafts, err := importer.Parse(strings.NewReader(csv))
	require.NoError(t, err)

	got := expense.ParseAmount(drafts[0].Amount)
	assert.Equal(t, "1250", got.String())
}

func TestDuplicates(t *testing.T) {
	existing := []expense.Expense{
		{
			ID:          1,
			Description: "Google Ads",
			Amount:      expense.ParseAmount("1250"),
			Date:        time.Date(2026, 1, 30, 0, 0, 0, 0, time.UTC),
		},
	}

	drafts := []expense.Draft{
		{Description: "GOOGLE ADS ", Amount: "1250.00", Date: "2026-01-30"},
		{Description: "Google Ads", Amount: "1250.00", Date: "2026-01-31"},
		{Description: "Canva", Amount: "34.90", Date: "2026-01-30"},
	}

	assert.Equal(t, map[int]bool{0: true}, importer.Duplicates(drafts, existing))
	assert.Empty(t, importer.Duplicates(drafts, nil))
}
