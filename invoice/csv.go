package invoice

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/dssvels/invoicer/models"
)

var csvHeader = []string{"description", "quantity", "price", "amount", "invoice_number", "customer_name", "date"}

// ExportCSV dumps one row per line item with the invoice number, recipient
// and issue date repeated on every row, suitable for spreadsheet ingestion.
// No styling, no footer.
func ExportCSV(details models.InvoiceDetails, items []models.LineItem) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, &RenderError{Err: err}
	}
	number := strconv.Itoa(details.Number)
	date := details.IssueDate.Format(dateLayout)
	for _, item := range items {
		row := []string{
			item.Description,
			item.Quantity.String(),
			item.UnitPrice.String(),
			item.Amount.String(),
			number,
			details.RecipientName,
			date,
		}
		if err := w.Write(row); err != nil {
			return nil, &RenderError{Err: err}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, &RenderError{Err: err}
	}
	return buf.Bytes(), nil
}
