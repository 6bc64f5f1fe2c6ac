package invoice

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dssvels/invoicer/config"
	"github.com/dssvels/invoicer/models"
)

func newTestEmitter(t *testing.T) (*Emitter, *config.Store) {
	t.Helper()
	dir := t.TempDir()
	store := config.Open(filepath.Join(dir, "invoice_config.json"))
	e := &Emitter{
		Store:     store,
		OutputDir: filepath.Join(dir, "invoices"),
		now: func() time.Time {
			return time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
		},
	}
	return e, store
}

func validInput() models.InvoiceInput {
	return models.InvoiceInput{
		RecipientName: "Jane Doe",
		Description:   "Invoice for ice skating activities at DSSV ELS.",
	}
}

func twoItemLedger(t *testing.T) *Ledger {
	t.Helper()
	var l Ledger
	mustAdd(t, &l, "Ice skating lesson (1 hour)", "1", "25.00")
	mustAdd(t, &l, "Skate rental", "1", "7.50")
	return &l
}

func TestEmitWritesBothFilesAndAdvancesNumber(t *testing.T) {
	e, store := newTestEmitter(t)
	ledger := twoItemLedger(t)

	result, err := e.Emit(validInput(), ledger)
	if err != nil {
		t.Fatalf("Emit: %v", err)
	}

	if result.Number != 1 {
		t.Fatalf("emitted number = %d, want 1", result.Number)
	}
	if got := result.Total.StringFixed(2); got != "32.50" {
		t.Fatalf("total = %s, want 32.50", got)
	}
	if base := filepath.Base(result.PDFPath); base != "1_Jane_Doe.pdf" {
		t.Fatalf("pdf name = %q, want 1_Jane_Doe.pdf", base)
	}
	if base := filepath.Base(result.CSVPath); base != "1_Jane_Doe.csv" {
		t.Fatalf("csv name = %q, want 1_Jane_Doe.csv", base)
	}
	for _, path := range []string{result.PDFPath, result.CSVPath} {
		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("output file missing: %v", err)
		}
		if info.Size() == 0 {
			t.Fatalf("output file %s is empty", path)
		}
	}

	cfg, err := store.Load()
	if err != nil {
		t.Fatalf("reload config: %v", err)
	}
	if cfg.LastInvoiceNumber != 2 {
		t.Fatalf("last_invoice_number = %d, want 2", cfg.LastInvoiceNumber)
	}

	// No stray temp files under the output directory.
	entries, err := os.ReadDir(e.OutputDir)
	if err != nil {
		t.Fatal(err)
	}
	for _, entry := range entries {
		if strings.Contains(entry.Name(), ".tmp-") {
			t.Fatalf("leftover temp file %s", entry.Name())
		}
	}
}

func TestEmitSequentialNumbers(t *testing.T) {
	e, store := newTestEmitter(t)

	for want := 1; want <= 3; want++ {
		result, err := e.Emit(validInput(), twoItemLedger(t))
		if err != nil {
			t.Fatalf("Emit #%d: %v", want, err)
		}
		if result.Number != want {
			t.Fatalf("emitted number = %d, want %d", result.Number, want)
		}
	}

	cfg, _ := store.Load()
	if cfg.LastInvoiceNumber != 4 {
		t.Fatalf("last_invoice_number = %d, want 4", cfg.LastInvoiceNumber)
	}
}

func TestEmitValidation(t *testing.T) {
	e, store := newTestEmitter(t)

	cases := []struct {
		name   string
		input  models.InvoiceInput
		ledger *Ledger
	}{
		{"missing recipient", models.InvoiceInput{Description: "d"}, twoItemLedger(t)},
		{"missing description", models.InvoiceInput{RecipientName: "Jane"}, twoItemLedger(t)},
		{"empty ledger", validInput(), &Ledger{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := e.Emit(tc.input, tc.ledger)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Emit = %v, want ValidationError", err)
			}
		})
	}

	// Nothing was written, nothing advanced.
	if _, err := os.Stat(e.OutputDir); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("output directory exists after failed emissions: %v", err)
	}
	cfg, _ := store.Load()
	if cfg.LastInvoiceNumber != 1 {
		t.Fatalf("last_invoice_number = %d, want 1", cfg.LastInvoiceNumber)
	}
}

func TestEmitIOFailureLeavesNumberUnchanged(t *testing.T) {
	e, store := newTestEmitter(t)

	// Occupy the output directory path with a file so MkdirAll fails.
	if err := os.WriteFile(e.OutputDir, []byte("in the way"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := e.Emit(validInput(), twoItemLedger(t))
	var ioerr *IOFailure
	if !errors.As(err, &ioerr) {
		t.Fatalf("Emit = %v, want IOFailure", err)
	}

	cfg, _ := store.Load()
	if cfg.LastInvoiceNumber != 1 {
		t.Fatalf("last_invoice_number = %d after IO failure, want 1", cfg.LastInvoiceNumber)
	}
}

func TestEmitPersistsDescription(t *testing.T) {
	e, store := newTestEmitter(t)

	in := validInput()
	in.Description = "Training camp fees, spring edition."
	if _, err := e.Emit(in, twoItemLedger(t)); err != nil {
		t.Fatalf("Emit: %v", err)
	}

	cfg, _ := store.Load()
	if cfg.Description != in.Description {
		t.Fatalf("persisted description = %q, want %q", cfg.Description, in.Description)
	}
}

func TestEmitUsesConfiguredLanguageAndTerms(t *testing.T) {
	e, store := newTestEmitter(t)

	cfg, _ := store.Load()
	cfg.Language = models.LanguageEnglish
	cfg.PaymentTermsDays = 30
	if err := store.Save(cfg); err != nil {
		t.Fatal(err)
	}

	result, err := e.Emit(validInput(), twoItemLedger(t))
	if err != nil {
		t.Fatalf("Emit: %v", err)
	}

	data, err := os.ReadFile(result.CSVPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "2026-03-14") {
		t.Fatalf("csv lacks the issue date: %s", data)
	}
}
