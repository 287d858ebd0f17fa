package importer

import (
	"strings"
	"time"

	"github.com/MrJamesThe3rd/afiliado/internal/expense"
)

// Duplicates reports, by draft index, the drafts that match an existing
// expense on date, amount and description (case-insensitive).
func Duplicates(drafts []expense.Draft, existing []expense.Expense) map[int]bool {
	type key struct {
		date   string
		amount string
		desc   string
	}

	seen := make(map[key]struct{}, len(existing))

	for _, e := range existing {
		seen[key{
			date:   e.Date.Format(time.DateOnly),
			amount: e.Amount.StringFixed(2),
			desc:   strings.ToLower(strings.TrimSpace(e.Description)),
		}] = struct{}{}
	}

	dups := make(map[int]bool)

	for i, d := range drafts {
		k := key{
			date:   d.Date,
			amount: expense.ParseAmount(d.Amount).StringFixed(2),
			desc:   strings.ToLower(strings.TrimSpace(d.Description)),
		}

		if _, ok := seen[k]; ok {
			dups[i] = true
		}
	}

	return dups
}
