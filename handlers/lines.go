package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/dssvels/invoicer/invoice"
	"github.com/dssvels/invoicer/models"
)

type linesData struct {
	Items []models.LineItem `json:"items"`
	Total decimal.Decimal   `json:"total"`
}

func currentLines() linesData {
	return linesData{Items: session.ledger.Items(), Total: session.ledger.Total()}
}

// ListLines lists the current invoice lines
// @Summary      List invoice lines
// @Description  Get the in-progress ledger: all lines in insertion order plus the running total.
// @Tags         lines
// @Produce      json
// @Success      200  {object}  Response{data=linesData}
// @Router       /lines [get]
// @Security     BasicAuth
func ListLines(w http.ResponseWriter, r *http.Request) {
	session.mu.Lock()
	defer session.mu.Unlock()
	writeJSON(w, http.StatusOK, currentLines())
}

// AddLine appends a line to the ledger
// @Summary      Add invoice line
// @Description  Validate and append one line. The amount is computed once, at insertion.
// @Tags         lines
// @Accept       json
// @Produce      json
// @Param        line  body      models.LineItemInput  true  "Line to add"
// @Success      201   {object}  Response{data=linesData}
// @Failure      400   {object}  Response{error=string}
// @Router       /lines [post]
// @Security     BasicAuth
func AddLine(w http.ResponseWriter, r *http.Request) {
	var in models.LineItemInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	session.mu.Lock()
	defer session.mu.Unlock()
	if _, err := session.ledger.Add(in.Description, in.Quantity, in.Price); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, currentLines())
}

// DeleteLine removes the line at an index
// @Summary      Delete invoice line
// @Description  Remove one line by its position. An out-of-range index is a no-op.
// @Tags         lines
// @Produce      json
// @Param        index  path      int  true  "Line index"
// @Success      200    {object}  Response{data=linesData}
// @Failure      400    {object}  Response{error=string}
// @Router       /lines/{index} [delete]
// @Security     BasicAuth
func DeleteLine(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "index must be an integer")
		return
	}

	session.mu.Lock()
	defer session.mu.Unlock()
	session.ledger.Remove(index)
	writeJSON(w, http.StatusOK, currentLines())
}

// ClearLines empties the ledger
// @Summary      Clear invoice lines
// @Description  Remove every line from the in-progress ledger.
// @Tags         lines
// @Produce      json
// @Success      200  {object}  Response{data=linesData}
// @Router       /lines [delete]
// @Security     BasicAuth
func ClearLines(w http.ResponseWriter, r *http.Request) {
	session.mu.Lock()
	defer session.mu.Unlock()
	session.ledger.Clear()
	writeJSON(w, http.StatusOK, currentLines())
}

// ImportLines adds lines from a tab-separated paste
// @Summary      Import invoice lines
// @Description  Parse a tab-separated paste (spreadsheet selection) and append its rows. Columns are matched by header label (English or Dutch) or, for headerless pastes, by position. Nothing is added when any row is invalid.
// @Tags         lines
// @Accept       plain
// @Produce      json
// @Param        body  body      string  true  "Tab-separated rows"
// @Success      201   {object}  Response{data=linesData}
// @Failure      400   {object}  Response{error=string}
// @Router       /lines/import [post]
// @Security     BasicAuth
func ImportLines(w http.ResponseWriter, r *http.Request) {
	inputs, err := invoice.ParseTabular(r.Body)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	session.mu.Lock()
	defer session.mu.Unlock()
	for _, in := range inputs {
		if _, err := session.ledger.Add(in.Description, in.Quantity, in.Price); err != nil {
			writeDomainError(w, err)
			return
		}
	}
	writeJSON(w, http.StatusCreated, currentLines())
}

// LoadTestData fills the ledger with demo lines
// @Summary      Load demo lines
// @Description  Replace the ledger contents with fixed demo lines and return the demo recipient name.
// @Tags         lines
// @Produce      json
// @Success      200  {object}  Response{data=testDataResult}
// @Router       /lines/testdata [post]
// @Security     BasicAuth
func LoadTestData(w http.ResponseWriter, r *http.Request) {
	session.mu.Lock()
	defer session.mu.Unlock()
	recipient := session.ledger.LoadTestData()
	writeJSON(w, http.StatusOK, testDataResult{
		RecipientName: recipient,
		Lines:         currentLines(),
	})
}

type testDataResult struct {
	RecipientName string    `json:"recipient_name"`
	Lines         linesData `json:"lines"`
}
