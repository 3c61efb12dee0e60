package model

import "github.com/shopspring/decimal"

// BalanceResponse represents response for GET /wallet/balance
type BalanceResponse struct {
	Address string          `json:"address,omitempty"`
	Network Network         `json:"network"`
	Balance decimal.Decimal `json:"balance"`
}

// NetworkRequest represents request for PUT /wallet/network
type NetworkRequest struct {
	Network string `json:"network" example:"devnet"`
}

// SignMessageRequest represents request for POST /wallet/sign-message.
// Encoding is "utf8" (default) or "base64".
type SignMessageRequest struct {
	Message  string `json:"message" example:"hello nebula"`
	Encoding string `json:"encoding,omitempty" example:"utf8"`
}

// SignMessageResponse represents response for POST /wallet/sign-message
type SignMessageResponse struct {
	Signature string `json:"signature"`
}

// SendRequest represents request for POST /wallet/send
type SendRequest struct {
	ToAddress string `json:"toAddress" example:"9xQeWvG816bUx9EPjHmaT23yvVM2ZWbrrpZb9PusVFin"`
	Amount    string `json:"amount" example:"0.01"`
}

// SendResponse represents response for POST /wallet/send
type SendResponse struct {
	Signature string `json:"signature"`
	ToAddress string `json:"toAddress"`
	Amount    string `json:"amount"`
	Network   string `json:"network"`
}

// ThemeRequest represents request for PUT /theme
type ThemeRequest struct {
	Name string `json:"name" example:"aurora"`
}

// HealthResponse represents response for GET /health
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}
