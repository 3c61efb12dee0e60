package handler

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gagliardetto/solana-go"

	"github.com/AlexZinkM/nebula-dashboard/internal/common"
	"github.com/AlexZinkM/nebula-dashboard/internal/keystore"
	"github.com/AlexZinkM/nebula-dashboard/internal/model"
	"github.com/AlexZinkM/nebula-dashboard/internal/wallet"
)

const (
	defaultQRSize = 256
	maxQRSize     = 1024
)

// GetWallet handles GET /wallet
// @Summary      Wallet session state
// @Description  Connection status, address, cached balance, network and last error
// @Tags         wallet
// @Produce      json
// @Success      200  {object}  wallet.State
// @Router       /wallet [get]
func (h *Handler) GetWallet(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.session.State())
}

// Connect handles POST /wallet/connect
// @Summary      Connect wallet
// @Description  Connection failures are reported in lastError, not as an HTTP error
// @Tags         wallet
// @Produce      json
// @Success      200  {object}  wallet.State
// @Router       /wallet/connect [post]
func (h *Handler) Connect(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.session.Connect(r.Context()))
}

// Disconnect handles POST /wallet/disconnect
// @Summary      Disconnect wallet
// @Tags         wallet
// @Produce      json
// @Success      200  {object}  wallet.State
// @Router       /wallet/disconnect [post]
func (h *Handler) Disconnect(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.session.Disconnect(r.Context()))
}

// GetBalance handles GET /wallet/balance
// @Summary      Native balance
// @Description  Queries the RPC when connected; returns 0 without a query otherwise
// @Tags         wallet
// @Produce      json
// @Success      200  {object}  model.BalanceResponse
// @Router       /wallet/balance [get]
func (h *Handler) GetBalance(w http.ResponseWriter, r *http.Request) {
	balance := h.session.GetBalance(r.Context())
	st := h.session.State()

	resp := model.BalanceResponse{Network: st.Network, Balance: balance}
	if st.Address != nil {
		resp.Address = st.Address.String()
	}
	writeJSON(w, http.StatusOK, resp)
}

// SetNetwork handles PUT /wallet/network
// @Summary      Select network
// @Description  Persists the choice; an existing connection keeps its endpoint until reconnect
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        request  body      model.NetworkRequest  true  "Network"
// @Success      200      {object}  wallet.State
// @Failure      400      {object}  model.ErrorResponse
// @Router       /wallet/network [put]
func (h *Handler) SetNetwork(w http.ResponseWriter, r *http.Request) {
	var req model.NetworkRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, model.CodeBadRequest, err)
		return
	}
	network, err := model.ParseNetwork(req.Network)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if err := h.session.SetNetwork(network); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.session.State())
}

// SignMessage handles POST /wallet/sign-message
// @Summary      Sign message
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        request  body      model.SignMessageRequest  true  "Message"
// @Success      200      {object}  model.SignMessageResponse
// @Failure      409      {object}  model.ErrorResponse
// @Failure      501      {object}  model.ErrorResponse
// @Router       /wallet/sign-message [post]
func (h *Handler) SignMessage(w http.ResponseWriter, r *http.Request) {
	var req model.SignMessageRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, model.CodeBadRequest, err)
		return
	}

	var message []byte
	switch req.Encoding {
	case "", "utf8":
		message = []byte(req.Message)
	case "base64":
		decoded, err := base64.StdEncoding.DecodeString(req.Message)
		if err != nil {
			writeError(w, http.StatusBadRequest, model.CodeBadRequest, fmt.Errorf("invalid base64 message: %w", err))
			return
		}
		message = decoded
	default:
		writeError(w, http.StatusBadRequest, model.CodeBadRequest, fmt.Errorf("unknown encoding %q", req.Encoding))
		return
	}
	if len(message) == 0 {
		writeError(w, http.StatusBadRequest, model.CodeBadRequest, errors.New("message is required"))
		return
	}

	sig, err := h.session.SignMessage(r.Context(), message)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, model.SignMessageResponse{Signature: sig.String()})
}

// Send handles POST /wallet/send
// @Summary      Send SOL
// @Description  Builds a transfer from the connected address, signs it with the wallet and submits it
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        request  body      model.SendRequest  true  "Payment data"
// @Success      200      {object}  model.SendResponse
// @Failure      400      {object}  model.ErrorResponse
// @Failure      409      {object}  model.ErrorResponse
// @Failure      422      {object}  model.ErrorResponse
// @Router       /wallet/send [post]
func (h *Handler) Send(w http.ResponseWriter, r *http.Request) {
	var req model.SendRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, model.CodeBadRequest, err)
		return
	}

	to, err := solana.PublicKeyFromBase58(req.ToAddress)
	if err != nil {
		writeError(w, http.StatusBadRequest, model.CodeBadRequest, fmt.Errorf("invalid to address: %w", err))
		return
	}
	amount, err := common.ParseAmount(req.Amount)
	if err != nil {
		writeError(w, http.StatusBadRequest, model.CodeBadRequest, err)
		return
	}

	tx, err := h.session.BuildTransfer(r.Context(), to, amount)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	sig, err := h.session.SendTransaction(r.Context(), tx)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.SendResponse{
		Signature: sig.String(),
		ToAddress: to.String(),
		Amount:    amount.String(),
		Network:   h.session.State().Network.String(),
	})
}

// QRCode handles GET /wallet/qr
// @Summary      Address QR code
// @Tags         wallet
// @Produce      png
// @Param        size  query  int  false  "Image size in pixels (max 1024)"
// @Success      200
// @Failure      409  {object}  model.ErrorResponse
// @Router       /wallet/qr [get]
func (h *Handler) QRCode(w http.ResponseWriter, r *http.Request) {
	st := h.session.State()
	if st.Address == nil {
		writeDomainError(w, wallet.ErrNotConnected)
		return
	}

	size := defaultQRSize
	if raw := r.URL.Query().Get("size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 64 || n > maxQRSize {
			writeError(w, http.StatusBadRequest, model.CodeBadRequest, fmt.Errorf("size must be between 64 and %d", maxQRSize))
			return
		}
		size = n
	}

	png, err := keystore.QRCode(st.Address.String(), size)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}
