// Package export writes sales views to CSV.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/MrJamesThe3rd/afiliado/internal/finance"
	"github.com/MrJamesThe3rd/afiliado/internal/sale"
)

var header = []string{"id", "date", "product", "niche", "customer", "value", "commission", "status"}

// WriteSales writes sales in the given order as semicolon-separated CSV with
// decimal commas, the layout Brazilian spreadsheets open without prompting.
func WriteSales(w io.Writer, sales []sale.Sale) error {
	cw := csv.NewWriter(w)
	cw.Comma = ';'

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, s := range sales {
		record := []string{
			strconv.Itoa(s.ID),
			s.Date.Format(time.DateOnly),
			s.Product,
			s.Niche,
			s.Customer,
			finance.FormatDecimal(s.Value),
			finance.FormatDecimal(s.Commission),
			string(s.Status),
		}

		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing sale %d: %w", s.ID, err)
		}
	}

	cw.Flush()

	return cw.Error()
}

// FileName is the export file name for the given day.
func FileName(day time.Time) string {
	return fmt.Sprintf("vendas-%s.csv", day.Format("20060102"))
}

// SaveSales writes sales into dir and returns the created file's path.
func SaveSales(dir string, day time.Time, sales []sale.Sale) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	path := filepath.Join(dir, FileName(day))

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer f.Close()

	if err := WriteSales(f, sales); err != nil {
		return "", err
	}

	return path, nil
}
