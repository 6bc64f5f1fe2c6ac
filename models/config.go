package models

// Supported invoice languages. The locale catalog has one entry per tag;
// adding a language means adding a catalog row, not new branching.
const (
	LanguageDutch   = "nl"
	LanguageEnglish = "en"
)

// Config is the persisted cross-invocation state: the next invoice number to
// issue, the payment term, the selected language, and the default invoice
// description. The JSON field names match the on-disk config file.
type Config struct {
	LastInvoiceNumber int    `json:"last_invoice_number"`
	PaymentTermsDays  int    `json:"payment_terms_days"`
	Language          string `json:"language"`
	Description       string `json:"description"`
}

func (c *Config) Validate() string {
	if c.LastInvoiceNumber < 1 {
		return "last_invoice_number must be at least 1"
	}
	if c.PaymentTermsDays < 1 {
		return "payment_terms_days must be at least 1"
	}
	switch c.Language {
	case LanguageDutch, LanguageEnglish:
	default:
		return "language must be one of: nl, en"
	}
	return ""
}
