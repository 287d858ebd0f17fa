// Package importer turns bank and card statement CSV exports into expense drafts.
package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/afiliado/internal/expense"
)

// Category is assigned to every imported expense.
const Category = "Importado"

var ErrNoProfile = errors.New("no matching statement format: expected columns for conta, fatura or extrato")

// Parse reads a semicolon- or comma-separated statement and returns a draft
// for every debit row. Credits, zero amounts and footer rows are skipped.
func Parse(r io.Reader) ([]expense.Draft, error) {
	utf8r, err := utf8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	raw, err := io.ReadAll(utf8r)
	if err != nil {
		return nil, fmt.Errorf("read statement: %w", err)
	}

	text := string(raw)

	var readErr error

	for _, comma := range separators {
		rows, err := readRows(text, comma)
		if err != nil {
			readErr = err
			continue
		}

		if profile, cols, headerIdx := detectProfile(rows); profile != nil {
			return parseRows(profile, cols, rows[headerIdx+1:]), nil
		}
	}

	if readErr != nil {
		return nil, fmt.Errorf("read csv: %w", readErr)
	}

	return nil, ErrNoProfile
}

// separators are tried in order. A header row only matches a profile when it
// was split on the file's real separator, so title lines above it don't matter.
var separators = []rune{';', ','}

func readRows(text string, comma rune) ([][]string, error) {
	reader := csv.NewReader(strings.NewReader(text))
	reader.Comma = comma
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	return reader.ReadAll()
}

type colIndex map[string]int

func detectProfile(rows [][]string) (*Profile, colIndex, int) {
	for rowIdx, row := range rows {
		cols := make(colIndex, len(row))

		for i, cell := range row {
			if name := strings.TrimSpace(cell); name != "" {
				cols[name] = i
			}
		}

		for i := range profiles {
			if matchesProfile(&profiles[i], cols) {
				return &profiles[i], cols, rowIdx
			}
		}
	}

	return nil, nil, 0
}

func matchesProfile(p *Profile, cols colIndex) bool {
	for _, name := range p.requiredCols() {
		if _, ok := cols[name]; !ok {
			return false
		}
	}

	return true
}

func parseRows(p *Profile, cols colIndex, rows [][]string) []expense.Draft {
	var drafts []expense.Draft

	for _, row := range rows {
		date, ok := parseDate(cellValue(row, cols[p.DateCol]))
		if !ok {
			continue
		}

		amount, ok := debit(p, cols, row)
		if !ok {
			continue
		}

		drafts = append(drafts, expense.Draft{
			Description: cellValue(row, cols[p.DescCol]),
			Category:    Category,
			Amount:      amount.StringFixed(2),
			Date:        date.Format(time.DateOnly),
		})
	}

	return drafts
}

var dateLayouts = []string{"02/01/2006", "02/01/06", "2006-01-02", "02-01-2006"}

func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// debit returns the positive amount spent on a row, if the row is a debit.
func debit(p *Profile, cols colIndex, row []string) (decimal.Decimal, bool) {
	switch p.AmountMode {
	case amountSigned:
		d, ok := parseBRL(cellValue(row, cols[p.AmountCol]))
		if !ok || !d.IsNegative() {
			return decimal.Zero, false
		}

		return d.Neg(), true
	case amountCharge:
		d, ok := parseBRL(cellValue(row, cols[p.AmountCol]))
		if !ok || !d.IsPositive() {
			return decimal.Zero, false
		}

		return d, true
	case amountSplit:
		d, ok := parseBRL(cellValue(row, cols[p.DebitCol]))
		if !ok || d.IsZero() {
			return decimal.Zero, false
		}

		return d.Abs(), true
	}

	return decimal.Zero, false
}

// parseBRL parses Brazilian-formatted money: "1.234,56", "-588,74", "R$ 10,00".
func parseBRL(s string) (decimal.Decimal, bool) {
	clean := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "R$"))
	if clean == "" {
		return decimal.Zero, false
	}

	clean = strings.ReplaceAll(clean, ".", "")
	clean = strings.ReplaceAll(clean, ",", ".")

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Zero, false
	}

	return d, true
}

func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}
