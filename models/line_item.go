package models

import "github.com/shopspring/decimal"

// LineItem is a single billed row on an invoice. Amount is computed from
// quantity and unit price when the line is added and is never recomputed:
// lines are immutable once in the ledger (add/remove only, no edit).
type LineItem struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"price"`
	Amount      decimal.Decimal `json:"amount"`
}

// LineItemInput is used for adding a line to the ledger. Quantity and price
// arrive as strings from both front ends and are parsed on validation.
type LineItemInput struct {
	Description string `json:"description"`
	Quantity    string `json:"quantity"`
	Price       string `json:"price"`
}

func (l *LineItemInput) Validate() string {
	if l.Description == "" {
		return "description is required"
	}
	qty, err := decimal.NewFromString(l.Quantity)
	if err != nil {
		return "quantity must be a number"
	}
	if qty.IsNegative() {
		return "quantity must be non-negative"
	}
	price, err := decimal.NewFromString(l.Price)
	if err != nil {
		return "price must be a number"
	}
	if price.IsNegative() {
		return "price must be non-negative"
	}
	return ""
}
