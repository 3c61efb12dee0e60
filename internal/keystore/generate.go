package keystore

import (
	"encoding/base64"
	"fmt"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/skip2/go-qrcode"
)

const networkSolana = "solana"

// Generate creates a new keypair and saves it encrypted to path.
// Returns the public address on success.
func Generate(path string, password []byte) (solana.PublicKey, error) {
	wallet := solana.NewWallet()
	defer clear(wallet.PrivateKey)

	address := wallet.PublicKey()

	qr, err := QRCode(address.String(), 256)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("failed to generate QR code: %w", err)
	}

	secret := &Secret{
		PrivateKey: wallet.PrivateKey,
		CreatedAt:  time.Now().UTC().Format(time.RFC3339),
	}
	header := File{
		Network: networkSolana,
		Address: address.String(),
		QR:      base64.StdEncoding.EncodeToString(qr),
	}
	if err := Encrypt(path, header, secret, password); err != nil {
		return solana.PublicKey{}, fmt.Errorf("failed to encrypt wallet: %w", err)
	}
	return address, nil
}

// QRCode renders content as a PNG of size×size pixels.
func QRCode(content string, size int) ([]byte, error) {
	qr, err := qrcode.New(content, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}
	png, err := qr.PNG(size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}
	return png, nil
}
