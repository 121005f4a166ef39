package handlers

import (
	"fmt"
	"net/http"
	"os"

	"github.com/siyam-display/catalog-api/internal/infra/http/middleware"
	"github.com/siyam-display/catalog-api/internal/usecase"
)

// ImportHandler triggers the CSV-to-catalog import from a fixed local
// file path. Operator endpoint; GET by design so it can be hit from a
// browser.
type ImportHandler struct {
	Import   *usecase.ImportPartsUseCase
	FilePath string
}

func NewImportHandler(importUC *usecase.ImportPartsUseCase, filePath string) *ImportHandler {
	return &ImportHandler{Import: importUC, FilePath: filePath}
}

func (h *ImportHandler) Handle(w http.ResponseWriter, r *http.Request) {
	file, err := os.Open(h.FilePath)
	if err != nil {
		if os.IsNotExist(err) {
			writeJSON(w, http.StatusNotFound, map[string]interface{}{
				"error": fmt.Sprintf("CSV file not found at: %s", h.FilePath),
			})
			return
		}
		writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
			"error": err.Error(),
		})
		return
	}
	defer file.Close()

	rows, err := usecase.ParseCSV(file)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	report := h.Import.Execute(r.Context(), rows)

	for _, p := range report.Processed {
		middleware.RecordPartImported(p.Action)
	}

	response := map[string]interface{}{
		"success":   true,
		"message":   fmt.Sprintf("Processed %d parts successfully", len(report.Processed)),
		"processed": len(report.Processed),
		"errors":    len(report.Errors),
		"filePath":  h.FilePath,
	}
	if len(report.Errors) > 0 {
		response["errorDetails"] = report.Errors
	}

	writeJSON(w, http.StatusOK, response)
}
