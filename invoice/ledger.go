package invoice

import (
	"github.com/shopspring/decimal"

	"github.com/dssvels/invoicer/models"
)

// Ledger is the ordered collection of line items for one invoice. Display
// and export order is insertion order. A ledger belongs to a single session;
// it is not safe for concurrent use.
type Ledger struct {
	items []models.LineItem
}

// Add validates and appends a line. The line's amount is quantity times
// price, fixed at insertion. Returns the new line's index.
func (l *Ledger) Add(description, quantity, price string) (int, error) {
	in := models.LineItemInput{Description: description, Quantity: quantity, Price: price}
	if msg := in.Validate(); msg != "" {
		return 0, &ValidationError{Field: "line", Reason: msg}
	}

	qty, _ := decimal.NewFromString(quantity)
	unit, _ := decimal.NewFromString(price)
	l.items = append(l.items, models.LineItem{
		Description: description,
		Quantity:    qty,
		UnitPrice:   unit,
		Amount:      qty.Mul(unit),
	})
	return len(l.items) - 1, nil
}

// Remove deletes the line at index. An out-of-range index is a no-op, not an
// error, so stale delete actions from a front end cannot fail.
func (l *Ledger) Remove(index int) {
	if index < 0 || index >= len(l.items) {
		return
	}
	l.items = append(l.items[:index], l.items[index+1:]...)
}

// Clear empties the ledger.
func (l *Ledger) Clear() {
	l.items = nil
}

// Len returns the number of lines.
func (l *Ledger) Len() int {
	return len(l.items)
}

// Items returns a copy of the lines in insertion order.
func (l *Ledger) Items() []models.LineItem {
	out := make([]models.LineItem, len(l.items))
	copy(out, l.items)
	return out
}

// Total sums the stored amounts. Zero for an empty ledger.
func (l *Ledger) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range l.items {
		total = total.Add(item.Amount)
	}
	return total
}

// LoadTestData replaces the ledger contents with fixed demo lines and
// returns the matching demo recipient name.
func (l *Ledger) LoadTestData() string {
	l.Clear()
	l.Add("Ice skating lesson (1 hour)", "1", "25.00")
	l.Add("Skate rental", "1", "7.50")
	l.Add("Training subscription (monthly)", "1", "45.00")
	l.Add("Competition entry fee", "1", "15.00")
	return "Test Customer"
}
