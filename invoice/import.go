package invoice

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/dssvels/invoicer/models"
)

// Column labels recognized in a pasted header row, per language.
var (
	descriptionLabels = []string{"description", "omschrijving"}
	quantityLabels    = []string{"quantity", "qty", "aantal"}
	priceLabels       = []string{"price", "prijs"}
)

// ParseTabular reads a tab-separated paste (a spreadsheet selection) into
// line inputs. When the first row carries recognizable column labels, in
// either language, columns are mapped by label; a header that names only
// some of the three required columns is rejected rather than guessed at.
// A first row with no recognizable label at all is treated as data with
// positional columns description, quantity, price.
func ParseTabular(r io.Reader) ([]models.LineItemInput, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.LazyQuotes = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, &ValidationError{Field: "import", Reason: err.Error()}
	}
	if len(records) == 0 {
		return nil, &ValidationError{Field: "import", Reason: "no rows found"}
	}

	descCol, qtyCol, priceCol := 0, 1, 2
	rows := records
	if idx, matched, err := matchHeader(records[0]); err != nil {
		return nil, err
	} else if matched {
		descCol, qtyCol, priceCol = idx[0], idx[1], idx[2]
		rows = records[1:]
	}

	var inputs []models.LineItemInput
	for i, row := range rows {
		if len(row) <= descCol || len(row) <= qtyCol || len(row) <= priceCol {
			return nil, &ValidationError{Field: "import", Reason: fmt.Sprintf("row %d has too few columns", i+1)}
		}
		in := models.LineItemInput{
			Description: strings.TrimSpace(row[descCol]),
			Quantity:    strings.TrimSpace(row[qtyCol]),
			Price:       strings.TrimSpace(row[priceCol]),
		}
		if msg := in.Validate(); msg != "" {
			return nil, &ValidationError{Field: "import", Reason: fmt.Sprintf("row %d: %s", i+1, msg)}
		}
		inputs = append(inputs, in)
	}
	if len(inputs) == 0 {
		return nil, &ValidationError{Field: "import", Reason: "no data rows found"}
	}
	return inputs, nil
}

// matchHeader maps a candidate header row to (description, quantity, price)
// column indexes. A row naming some but not all three columns is ambiguous
// and rejected; a row naming none is not a header.
func matchHeader(row []string) ([3]int, bool, error) {
	find := func(labels []string) int {
		for i, cell := range row {
			cell = strings.ToLower(strings.TrimSpace(cell))
			for _, label := range labels {
				if cell == label {
					return i
				}
			}
		}
		return -1
	}

	desc := find(descriptionLabels)
	qty := find(quantityLabels)
	price := find(priceLabels)

	found := 0
	for _, c := range []int{desc, qty, price} {
		if c >= 0 {
			found++
		}
	}
	switch found {
	case 3:
		return [3]int{desc, qty, price}, true, nil
	case 0:
		return [3]int{}, false, nil
	default:
		return [3]int{}, false, &ValidationError{
			Field:  "import",
			Reason: "header row names some but not all of description, quantity and price columns",
		}
	}
}
