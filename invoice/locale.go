package invoice

import "github.com/dssvels/invoicer/models"

// Catalog holds the display strings for one invoice language. Catalogs are
// fixed at compile time; nothing edits them at runtime.
type Catalog struct {
	Title               string
	NumberLabel         string
	DateLabel           string
	RecipientLabel      string
	DueDateLabel        string
	DescriptionLabel    string
	QuantityLabel       string
	PriceLabel          string
	AmountLabel         string
	TotalLabel          string
	PaymentInstructions string
}

var catalogs = map[string]Catalog{
	models.LanguageDutch: {
		Title:               "FACTUUR",
		NumberLabel:         "Factuurnummer",
		DateLabel:           "Datum",
		RecipientLabel:      "Ontvanger",
		DueDateLabel:        "Vervaldatum",
		DescriptionLabel:    "Omschrijving",
		QuantityLabel:       "Aantal",
		PriceLabel:          "Prijs",
		AmountLabel:         "Bedrag",
		TotalLabel:          "Totaal",
		PaymentInstructions: "Gelieve binnen de termijn over te maken op NL51 ABNA 0552 4048 45 t.n.v DSSV ELS en onder vermelding van het factuurnummer",
	},
	models.LanguageEnglish: {
		Title:               "INVOICE",
		NumberLabel:         "Invoice #",
		DateLabel:           "Date",
		RecipientLabel:      "Recipient",
		DueDateLabel:        "Due Date",
		DescriptionLabel:    "Description",
		QuantityLabel:       "Quantity",
		PriceLabel:          "Price",
		AmountLabel:         "Amount",
		TotalLabel:          "Total",
		PaymentInstructions: "Please transfer the amount within the payment term to NL51 ABNA 0552 4048 45 in name of DSSV ELS, stating the invoice number",
	},
}

// CatalogFor returns the catalog for a language tag.
func CatalogFor(lang string) (Catalog, bool) {
	c, ok := catalogs[lang]
	return c, ok
}

// Languages returns the supported language tags in a stable order.
func Languages() []string {
	return []string{models.LanguageDutch, models.LanguageEnglish}
}
