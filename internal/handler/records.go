package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/AlexZinkM/nebula-dashboard/internal/explorer"
)

// RecordsResponse represents response for GET /records
type RecordsResponse struct {
	Records []explorer.LedgerRecord `json:"records"`
	Total   int                     `json:"total"`
	Filter  explorer.Filter         `json:"filter"`
}

// ListRecords handles GET /records
// @Summary      Ledger records
// @Description  Records that match every given criterion; "all" or an empty value disables a criterion
// @Tags         records
// @Produce      json
// @Param        type    query     string  false  "Record type"
// @Param        status  query     string  false  "success or failed"
// @Param        q       query     string  false  "Case-insensitive substring of signature, sender or receiver"
// @Success      200     {object}  RecordsResponse
// @Failure      409     {object}  model.ErrorResponse
// @Router       /records [get]
func (h *Handler) ListRecords(w http.ResponseWriter, r *http.Request) {
	records, err := h.records.Records(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	q := r.URL.Query()
	filter := explorer.Filter{
		Type:   valueOr(q.Get("type"), explorer.All),
		Status: valueOr(q.Get("status"), explorer.All),
		Search: q.Get("q"),
	}
	visible := explorer.Apply(records, filter)

	writeJSON(w, http.StatusOK, RecordsResponse{
		Records: visible,
		Total:   len(records),
		Filter:  filter,
	})
}

// GetRecord handles GET /records/{id}
// @Summary      Ledger record detail
// @Tags         records
// @Produce      json
// @Param        id   path      string  true  "Record id"
// @Success      200  {object}  explorer.LedgerRecord
// @Failure      404  {object}  model.ErrorResponse
// @Router       /records/{id} [get]
func (h *Handler) GetRecord(w http.ResponseWriter, r *http.Request) {
	records, err := h.records.Records(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	record, err := explorer.Find(records, chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

// GetRecordStats handles GET /records/stats
// @Summary      Ledger record statistics
// @Description  Counts by status and type, success rate, total and average fee
// @Tags         records
// @Produce      json
// @Success      200  {object}  explorer.Summary
// @Failure      409  {object}  model.ErrorResponse
// @Router       /records/stats [get]
func (h *Handler) GetRecordStats(w http.ResponseWriter, r *http.Request) {
	records, err := h.records.Records(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, explorer.Stats(records))
}

// GetRecordBySignature handles GET /records/by-signature/{sig}
// @Summary      Ledger record by transaction signature
// @Tags         records
// @Produce      json
// @Param        sig  path      string  true  "Transaction signature"
// @Success      200  {object}  explorer.LedgerRecord
// @Failure      404  {object}  model.ErrorResponse
// @Router       /records/by-signature/{sig} [get]
func (h *Handler) GetRecordBySignature(w http.ResponseWriter, r *http.Request) {
	records, err := h.records.Records(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	record, err := explorer.FindBySignature(records, chi.URLParam(r, "sig"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

// VerifyRecord handles GET /records/{id}/verify
// @Summary      Record verification
// @Description  Whether the record's transaction succeeded
// @Tags         records
// @Produce      json
// @Param        id   path      string  true  "Record id"
// @Success      200  {object}  explorer.Verification
// @Failure      404  {object}  model.ErrorResponse
// @Router       /records/{id}/verify [get]
func (h *Handler) VerifyRecord(w http.ResponseWriter, r *http.Request) {
	records, err := h.records.Records(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	record, err := explorer.Find(records, chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, explorer.Verify(record))
}

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
