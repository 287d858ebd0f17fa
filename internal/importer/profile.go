package importer

// amountMode determines how amounts are extracted from a row.
type amountMode int

const (
	// amountSigned is one column where debits are negative ("-850,00").
	amountSigned amountMode = iota
	// amountCharge is one column where every positive value is a charge (card statements).
	amountCharge
	// amountSplit is separate debit and credit columns.
	amountSplit
)

// Profile describes the column layout of a statement export.
type Profile struct {
	Name       string
	DateCol    string
	DescCol    string
	AmountMode amountMode
	AmountCol  string
	DebitCol   string
	CreditCol  string
}

func (p Profile) requiredCols() []string {
	cols := []string{p.DateCol, p.DescCol}

	if p.AmountMode == amountSplit {
		return append(cols, p.DebitCol, p.CreditCol)
	}

	return append(cols, p.AmountCol)
}

// profiles is tried in order; more specific layouts come first.
var profiles = []Profile{
	{
		Name:       "conta",
		DateCol:    "Data",
		DescCol:    "Histórico",
		AmountMode: amountSplit,
		DebitCol:   "Débito",
		CreditCol:  "Crédito",
	},
	{
		Name:       "fatura",
		DateCol:    "Data",
		DescCol:    "Lançamento",
		AmountMode: amountCharge,
		AmountCol:  "Valor",
	},
	{
		Name:       "extrato",
		DateCol:    "Data",
		DescCol:    "Descrição",
		AmountMode: amountSigned,
		AmountCol:  "Valor",
	},
}
