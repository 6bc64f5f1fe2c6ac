package models

import "testing"

func TestLineItemInputValidate(t *testing.T) {
	cases := []struct {
		name string
		in   LineItemInput
		ok   bool
	}{
		{"valid", LineItemInput{Description: "x", Quantity: "1", Price: "2.50"}, true},
		{"decimal quantity", LineItemInput{Description: "x", Quantity: "0.5", Price: "2"}, true},
		{"zero values", LineItemInput{Description: "x", Quantity: "0", Price: "0"}, true},
		{"missing description", LineItemInput{Quantity: "1", Price: "1"}, false},
		{"bad quantity", LineItemInput{Description: "x", Quantity: "one", Price: "1"}, false},
		{"bad price", LineItemInput{Description: "x", Quantity: "1", Price: "1,50"}, false},
		{"negative quantity", LineItemInput{Description: "x", Quantity: "-1", Price: "1"}, false},
		{"negative price", LineItemInput{Description: "x", Quantity: "1", Price: "-1"}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			msg := tc.in.Validate()
			if tc.ok && msg != "" {
				t.Fatalf("Validate() = %q, want valid", msg)
			}
			if !tc.ok && msg == "" {
				t.Fatal("Validate() accepted invalid input")
			}
		})
	}
}

func TestConfigValidate(t *testing.T) {
	valid := Config{LastInvoiceNumber: 1, PaymentTermsDays: 14, Language: LanguageDutch, Description: "d"}
	if msg := valid.Validate(); msg != "" {
		t.Fatalf("Validate() = %q, want valid", msg)
	}

	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero invoice number", func(c *Config) { c.LastInvoiceNumber = 0 }},
		{"zero payment terms", func(c *Config) { c.PaymentTermsDays = 0 }},
		{"unknown language", func(c *Config) { c.Language = "de" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid
			tc.mutate(&cfg)
			if cfg.Validate() == "" {
				t.Fatal("Validate() accepted invalid config")
			}
		})
	}
}

func TestInvoiceInputValidate(t *testing.T) {
	if msg := (&InvoiceInput{RecipientName: "Jane", Description: "d"}).Validate(); msg != "" {
		t.Fatalf("Validate() = %q, want valid", msg)
	}
	if (&InvoiceInput{Description: "d"}).Validate() == "" {
		t.Fatal("missing recipient accepted")
	}
	if (&InvoiceInput{RecipientName: "Jane"}).Validate() == "" {
		t.Fatal("missing description accepted")
	}
}
