package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/AlexZinkM/nebula-dashboard/internal/explorer"
	"github.com/AlexZinkM/nebula-dashboard/internal/logger"
	"github.com/AlexZinkM/nebula-dashboard/internal/model"
	"github.com/AlexZinkM/nebula-dashboard/internal/portfolio"
	"github.com/AlexZinkM/nebula-dashboard/internal/theme"
	"github.com/AlexZinkM/nebula-dashboard/internal/wallet"
)

// Handler serves the dashboard API over the shared session, aggregator, record source
// and theme store.
type Handler struct {
	session    *wallet.Session
	aggregator *portfolio.Aggregator
	records    explorer.Source
	themes     *theme.Store
}

func New(session *wallet.Session, aggregator *portfolio.Aggregator, records explorer.Source, themes *theme.Store) *Handler {
	return &Handler{
		session:    session,
		aggregator: aggregator,
		records:    records,
		themes:     themes,
	}
}

// Health handles GET /health
// @Summary      Health check
// @Tags         service
// @Produce      json
// @Success      200  {object}  model.HealthResponse
// @Router       /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, model.HealthResponse{Status: "healthy", Service: "nebula-dashboard"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	writeJSON(w, status, model.ErrorResponse{Error: err.Error(), Code: code})
}

// writeDomainError maps known errors to status codes; anything else is a 500.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, wallet.ErrNotConnected):
		writeError(w, http.StatusConflict, model.CodeNotConnected, err)
	case errors.Is(err, wallet.ErrUnsupported):
		writeError(w, http.StatusNotImplemented, model.CodeUnsupported, err)
	case errors.Is(err, wallet.ErrInsufficientFunds):
		writeError(w, http.StatusUnprocessableEntity, model.CodeInsufficientFund, err)
	case errors.Is(err, wallet.ErrInvalidAmount), errors.Is(err, wallet.ErrSelfTransfer),
		errors.Is(err, model.ErrInvalidNetwork), errors.Is(err, theme.ErrUnknownTheme):
		writeError(w, http.StatusBadRequest, model.CodeBadRequest, err)
	case errors.Is(err, explorer.ErrRecordNotFound):
		writeError(w, http.StatusNotFound, model.CodeNotFound, err)
	default:
		logger.Error("Request failed: %v", err)
		writeError(w, http.StatusInternalServerError, model.CodeInternal, err)
	}
}

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
