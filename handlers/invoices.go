package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/dssvels/invoicer/models"
)

// CreateInvoice emits an invoice from the current ledger
// @Summary      Emit invoice
// @Description  Render the PDF and CSV for the in-progress ledger, write both output files, and advance the invoice number. The number only advances after both files are on disk; on success the ledger is cleared for the next invoice.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        invoice  body      models.InvoiceInput  true  "Header fields"
// @Success      201      {object}  Response{data=invoice.Result}
// @Failure      400      {object}  Response{error=string}
// @Failure      500      {object}  Response{error=string}
// @Router       /invoices [post]
// @Security     BasicAuth
func CreateInvoice(w http.ResponseWriter, r *http.Request) {
	var in models.InvoiceInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	session.mu.Lock()
	defer session.mu.Unlock()
	result, err := Emitter.Emit(in, &session.ledger)
	if err != nil {
		// Entered lines are preserved so the user can correct and retry.
		writeDomainError(w, err)
		return
	}
	// Recipient and description live in the form; only the lines reset.
	session.ledger.Clear()
	writeJSON(w, http.StatusCreated, result)
}

// Healthz reports process liveness
// @Summary      Health check
// @Tags         health
// @Produce      json
// @Success      200  {object}  Response{data=string}
// @Router       /healthz [get]
func Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, "ok")
}
