package invoice

import (
	"bytes"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strconv"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"

	"github.com/dssvels/invoicer/models"
)

// Fixed organization block rendered top-right on every invoice.
var orgInfo = [][2]string{
	{"Name", "DSSV ELS"},
	{"Web", "www.effelekkerschaatsen.com"},
	{"Address", "Mekelweg 8 2628CD Delft"},
	{"Mail", "penningmeester@dssvels.com"},
	{"IBAN", "NL51 ABNA 0552 4048 45"},
	{"KVK nr", "27183125"},
}

const dateLayout = "2006-01-02"

// Renderer produces the fixed single-page A4 invoice document. The zero
// value renders without a logo.
type Renderer struct {
	// LogoPath points at an optional PNG or JPEG placed near the page
	// bottom. A missing or unreadable file is skipped, never an error.
	LogoPath string
}

// Render lays out one invoice as PDF bytes. Items are rendered in ledger
// order; prices and amounts get a euro symbol and two decimals, quantities
// are printed as entered. It fails only when the PDF encoder itself fails.
func (rd *Renderer) Render(details models.InvoiceDetails, items []models.LineItem, cat Catalog) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	// Stamp the document with the issue date so identical input renders
	// identical bytes.
	pdf.SetCreationDate(details.IssueDate)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	// Colored band across the page top.
	pdf.SetFillColor(172, 202, 38) // #acca26
	pdf.Rect(0, 0, 210, 10, "F")

	// Centered title, below the band.
	title := details.Title
	if title == "" {
		title = cat.Title
	}
	pdf.SetY(35)
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(190, 10, tr(title), "", 1, "C", false, 0, "")

	// Organization info in light grey, right column.
	pdf.SetTextColor(169, 169, 169)
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetXY(120, 45)
	for _, kv := range orgInfo {
		pdf.SetX(120)
		pdf.CellFormat(30, 6, kv[0]+":", "", 0, "R", false, 0, "")
		pdf.CellFormat(0, 6, tr(kv[1]), "", 1, "L", false, 0, "")
	}

	// Invoice details block on the left.
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(10, 45)
	pdf.CellFormat(95, 8, tr(cat.NumberLabel+": ")+strconv.Itoa(details.Number), "", 2, "L", false, 0, "")
	pdf.CellFormat(95, 8, tr(cat.DateLabel+": ")+details.IssueDate.Format(dateLayout), "", 2, "L", false, 0, "")
	pdf.CellFormat(95, 8, tr(cat.RecipientLabel+": "+details.RecipientName), "", 2, "L", false, 0, "")
	pdf.CellFormat(95, 8, tr(cat.DueDateLabel+": ")+details.DueDate.Format(dateLayout), "", 1, "L", false, 0, "")

	// Line item table.
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(80, 10, tr(cat.DescriptionLabel), "", 0, "L", true, 0, "")
	pdf.CellFormat(30, 10, tr(cat.QuantityLabel), "", 0, "L", true, 0, "")
	pdf.CellFormat(40, 10, tr(cat.PriceLabel), "", 0, "L", true, 0, "")
	pdf.CellFormat(40, 10, tr(cat.AmountLabel), "", 1, "L", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for i, item := range items {
		fill := i%2 == 1
		if fill {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}
		pdf.CellFormat(80, 10, tr(item.Description), "", 0, "L", fill, 0, "")
		pdf.CellFormat(30, 10, item.Quantity.String(), "", 0, "L", fill, 0, "")
		pdf.CellFormat(40, 10, tr(euro(item.UnitPrice)), "", 0, "L", fill, 0, "")
		pdf.CellFormat(40, 10, tr(euro(item.Amount)), "", 1, "L", fill, 0, "")
	}

	// Total row under a rule.
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Amount)
	}
	pdf.Ln(2)
	pdf.Line(10, pdf.GetY(), 200, pdf.GetY())
	pdf.Ln(2)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(150, 10, tr(cat.TotalLabel+":"), "", 0, "L", false, 0, "")
	pdf.CellFormat(40, 10, tr(euro(total)), "", 1, "R", false, 0, "")

	// Free-text description, then payment instructions.
	pdf.Ln(5)
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(169, 169, 169)
	pdf.MultiCell(190, 6, tr(details.Description), "", "L", false)

	pdf.Ln(5)
	pdf.SetTextColor(0, 0, 0)
	pdf.MultiCell(190, 6, tr(cat.PaymentInstructions), "", "L", false)

	if logo := rd.LogoPath; logo != "" && usableImage(logo) {
		pdf.ImageOptions(logo, 90, 250, 30, 0, false, gofpdf.ImageOptions{ReadDpi: true}, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, &RenderError{Err: err}
	}
	return buf.Bytes(), nil
}

// euro formats a monetary value with the currency symbol and two decimals.
func euro(d decimal.Decimal) string {
	return "€ " + d.StringFixed(2)
}

// usableImage reports whether path holds a decodable image, so a missing or
// corrupt logo degrades to an invoice without one instead of a failed render.
func usableImage(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()
	_, _, err = image.DecodeConfig(f)
	return err == nil
}
