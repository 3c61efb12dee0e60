package handler

import (
	"net/http"

	"github.com/AlexZinkM/nebula-dashboard/internal/portfolio"
)

// TokensResponse represents response for GET /tokens
type TokensResponse struct {
	Tokens   []portfolio.TokenDescriptor `json:"tokens"`
	Snapshot portfolio.Snapshot          `json:"snapshot"`
}

// GetTokens handles GET /tokens
// @Summary      Token balances
// @Description  Latest balance snapshot of the configured tokens
// @Tags         tokens
// @Produce      json
// @Success      200  {object}  TokensResponse
// @Router       /tokens [get]
func (h *Handler) GetTokens(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, TokensResponse{
		Tokens:   h.aggregator.Tokens(),
		Snapshot: h.aggregator.Snapshot(),
	})
}

// RefreshTokens handles POST /tokens/refresh
// @Summary      Refresh token balances
// @Tags         tokens
// @Produce      json
// @Success      200  {object}  portfolio.Snapshot
// @Router       /tokens/refresh [post]
func (h *Handler) RefreshTokens(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.aggregator.Refresh(r.Context()))
}
