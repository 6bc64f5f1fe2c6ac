package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/dssvels/invoicer/models"
)

// GetConfig retrieves the persisted configuration
// @Summary      Get configuration
// @Description  Get the persisted invoice number sequence, payment terms, language and default description.
// @Tags         config
// @Produce      json
// @Success      200  {object}  Response{data=models.Config}
// @Router       /config [get]
// @Security     BasicAuth
func GetConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := Store.Load()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, cfg)
}

// UpdateConfig overwrites the persisted configuration
// @Summary      Update configuration
// @Description  Validate and persist the whole configuration record. There is no partial update.
// @Tags         config
// @Accept       json
// @Produce      json
// @Param        config  body      models.Config  true  "New configuration"
// @Success      200     {object}  Response{data=models.Config}
// @Failure      400     {object}  Response{error=string}
// @Router       /config [put]
// @Security     BasicAuth
func UpdateConfig(w http.ResponseWriter, r *http.Request) {
	var cfg models.Config
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if msg := cfg.Validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	if err := Store.Save(cfg); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, cfg)
}
