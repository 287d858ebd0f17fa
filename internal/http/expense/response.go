package expense

import (
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/afiliado/internal/expense"
)

type expenseResponse struct {
	ID          int             `json:"id"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
	Status      expense.Status  `json:"status"`
}

func toResponse(e expense.Expense) expenseResponse {
	return expenseResponse{
		ID:          e.ID,
		Description: e.Description,
		Category:    e.Category,
		Amount:      e.Amount,
		Date:        e.Date.Format("2006-01-02"),
		Status:      e.Status,
	}
}

func toResponseList(es []expense.Expense) []expenseResponse {
	resp := make([]expenseResponse, len(es))
	for i, e := range es {
		resp[i] = toResponse(e)
	}

	return resp
}
