package models

import "time"

// InvoiceDetails is the header metadata for one rendered invoice: everything
// the document needs besides the line items themselves.
type InvoiceDetails struct {
	RecipientName string    `json:"recipient_name"`
	Title         string    `json:"title"` // falls back to the locale title when empty
	Number        int       `json:"number"`
	IssueDate     time.Time `json:"issue_date"`
	DueDate       time.Time `json:"due_date"`
	Description   string    `json:"description"`
}

// InvoiceInput is used for requesting invoice emission.
type InvoiceInput struct {
	RecipientName string `json:"recipient_name"`
	Title         string `json:"title"`
	Description   string `json:"description"`
}

func (i *InvoiceInput) Validate() string {
	if i.RecipientName == "" {
		return "recipient_name is required"
	}
	if i.Description == "" {
		return "description is required"
	}
	return ""
}
