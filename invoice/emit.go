package invoice

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dssvels/invoicer/models"
)

// ConfigStore is the persisted sequence/configuration record the emitter
// reads its invoice number and defaults from.
type ConfigStore interface {
	Load() (models.Config, error)
	Save(models.Config) error
}

// Result describes one successfully emitted invoice.
type Result struct {
	Number  int             `json:"number"`
	PDFPath string          `json:"pdf_path"`
	CSVPath string          `json:"csv_path"`
	Total   decimal.Decimal `json:"total"`
}

// Emitter runs the emission workflow: render the PDF, export the CSV, write
// both files, and only then advance and persist the invoice number. A failed
// step leaves the sequence number untouched.
type Emitter struct {
	Store     ConfigStore
	Renderer  *Renderer
	OutputDir string

	now func() time.Time // test hook
}

// Emit produces the document and table files for the current ledger.
// Output files are named {number}_{sanitized recipient} with .pdf and .csv
// extensions, in OutputDir (created on demand). Both files are written to
// temporary names first and renamed into place together, so a failure never
// leaves a half-written invoice under its final name.
func (e *Emitter) Emit(in models.InvoiceInput, ledger *Ledger) (Result, error) {
	if msg := in.Validate(); msg != "" {
		return Result{}, &ValidationError{Field: "invoice", Reason: msg}
	}
	if ledger.Len() == 0 {
		return Result{}, &ValidationError{Field: "lines", Reason: "at least one invoice line is required"}
	}

	cfg, err := e.Store.Load()
	if err != nil {
		return Result{}, err
	}
	cat, ok := CatalogFor(cfg.Language)
	if !ok {
		cat = catalogs[models.LanguageDutch]
	}

	now := time.Now()
	if e.now != nil {
		now = e.now()
	}
	details := models.InvoiceDetails{
		RecipientName: in.RecipientName,
		Title:         in.Title,
		Number:        cfg.LastInvoiceNumber,
		IssueDate:     now,
		DueDate:       now.AddDate(0, 0, cfg.PaymentTermsDays),
		Description:   in.Description,
	}
	items := ledger.Items()

	renderer := e.Renderer
	if renderer == nil {
		renderer = &Renderer{}
	}
	pdfBytes, err := renderer.Render(details, items, cat)
	if err != nil {
		return Result{}, err
	}
	csvBytes, err := ExportCSV(details, items)
	if err != nil {
		return Result{}, err
	}

	if err := os.MkdirAll(e.OutputDir, 0755); err != nil {
		return Result{}, &IOFailure{Op: "creating output directory", Path: e.OutputDir, Err: err}
	}
	base := fmt.Sprintf("%d_%s", details.Number, SanitizeFilename(in.RecipientName))
	pdfPath := filepath.Join(e.OutputDir, base+".pdf")
	csvPath := filepath.Join(e.OutputDir, base+".csv")

	tmpPDF, err := writeTemp(e.OutputDir, base+".pdf", pdfBytes)
	if err != nil {
		return Result{}, err
	}
	tmpCSV, err := writeTemp(e.OutputDir, base+".csv", csvBytes)
	if err != nil {
		os.Remove(tmpPDF)
		return Result{}, err
	}
	if err := os.Rename(tmpPDF, pdfPath); err != nil {
		os.Remove(tmpPDF)
		os.Remove(tmpCSV)
		return Result{}, &IOFailure{Op: "writing", Path: pdfPath, Err: err}
	}
	if err := os.Rename(tmpCSV, csvPath); err != nil {
		os.Remove(tmpCSV)
		os.Remove(pdfPath)
		return Result{}, &IOFailure{Op: "writing", Path: csvPath, Err: err}
	}

	// Both files are on disk under their final names; only now does the
	// sequence advance.
	cfg.Description = in.Description
	cfg.LastInvoiceNumber++
	if err := e.Store.Save(cfg); err != nil {
		return Result{}, err
	}

	return Result{
		Number:  details.Number,
		PDFPath: pdfPath,
		CSVPath: csvPath,
		Total:   ledger.Total(),
	}, nil
}

func writeTemp(dir, name string, data []byte) (string, error) {
	f, err := os.CreateTemp(dir, name+".tmp-*")
	if err != nil {
		return "", &IOFailure{Op: "writing", Path: filepath.Join(dir, name), Err: err}
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", &IOFailure{Op: "writing", Path: f.Name(), Err: err}
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", &IOFailure{Op: "writing", Path: f.Name(), Err: err}
	}
	return f.Name(), nil
}
