// Package keystore stores a Solana keypair in a password-encrypted .cwt file and
// exposes it as a wallet adapter.
package keystore

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/crypto/scrypt"
)

const Extension = ".cwt"

// scrypt N=2^18 (~256MB RAM, 0.5-2s). Tests lower it.
var scryptN = 1 << 18

const (
	scryptR      = 8
	scryptP      = 1
	scryptKeyLen = 32
	saltLen      = 32
	nonceLen     = 12
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

var (
	ErrInvalidPassword = errors.New("invalid password")
	ErrBadExtension    = errors.New("file must have .cwt extension")
	ErrNoFile          = errors.New("keystore file does not exist")
	ErrEmptyFile       = errors.New("keystore file is empty")
)

// FileExistsError is returned when the target file already has content.
type FileExistsError struct {
	Path string
}

func (e *FileExistsError) Error() string {
	return fmt.Sprintf("file is not empty: %s", e.Path)
}

// IsFileExistsError checks if err is a FileExistsError
func IsFileExistsError(err error) bool {
	var target *FileExistsError
	return errors.As(err, &target)
}

// File is the on-disk layout. Address and QR stay readable without the password.
type File struct {
	Network    string `json:"network"`
	Address    string `json:"address"`
	QR         string `json:"QR"`
	Salt       string `json:"salt"`
	Nonce      string `json:"nonce"`
	CipherText string `json:"cipherText"`
}

// Secret is the encrypted payload.
type Secret struct {
	PrivateKey []byte `json:"privateKey"` // 64 bytes, base64 in JSON
	CreatedAt  string `json:"createdAt"`
}

// Encrypt seals secret with password and writes it to path. An existing non-empty file
// is never overwritten. password must be zeroed by the caller.
func Encrypt(path string, header File, secret *Secret, password []byte) error {
	if filepath.Ext(path) != Extension {
		return ErrBadExtension
	}
	if info, err := os.Stat(path); err == nil && info.Size() > 0 {
		return &FileExistsError{Path: path}
	}

	salt := make([]byte, saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return fmt.Errorf("failed to generate salt: %w", err)
	}
	nonce := make([]byte, nonceLen)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return fmt.Errorf("failed to generate nonce: %w", err)
	}

	aead, err := newAEAD(password, salt)
	if err != nil {
		return err
	}

	plaintext, err := json.Marshal(secret)
	if err != nil {
		return fmt.Errorf("failed to marshal wallet data: %w", err)
	}
	defer clear(plaintext)

	header.Salt = base64.StdEncoding.EncodeToString(salt)
	header.Nonce = base64.StdEncoding.EncodeToString(nonce)
	header.CipherText = base64.StdEncoding.EncodeToString(aead.Seal(nil, nonce, plaintext, nil))

	data, err := json.MarshalIndent(header, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal keystore file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("failed to create keystore directory: %w", err)
	}
	// BOM keeps Windows editors from garbling the file.
	if err := os.WriteFile(path, append(append([]byte{}, utf8BOM...), data...), 0o600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// Decrypt reads path and opens its payload. The caller must clear Secret.PrivateKey.
func Decrypt(path string, password []byte) (*File, *Secret, error) {
	f, err := Read(path)
	if err != nil {
		return nil, nil, err
	}

	salt, err := base64.StdEncoding.DecodeString(f.Salt)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode salt: %w", err)
	}
	nonce, err := base64.StdEncoding.DecodeString(f.Nonce)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode nonce: %w", err)
	}
	ciphertext, err := base64.StdEncoding.DecodeString(f.CipherText)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode ciphertext: %w", err)
	}

	aead, err := newAEAD(password, salt)
	if err != nil {
		return nil, nil, err
	}
	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, nil, ErrInvalidPassword
	}
	defer clear(plaintext)

	var secret Secret
	if err := json.Unmarshal(plaintext, &secret); err != nil {
		return nil, nil, fmt.Errorf("failed to unmarshal wallet data: %w", err)
	}
	return f, &secret, nil
}

// Read parses the unencrypted header of a keystore file.
func Read(path string) (*File, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoFile
		}
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}
	if info.Size() == 0 {
		return nil, ErrEmptyFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to unmarshal keystore file: %w", err)
	}
	return &f, nil
}

func newAEAD(password, salt []byte) (cipher.AEAD, error) {
	key, err := scrypt.Key(password, salt, scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}
	defer clear(key)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}
	return aead, nil
}
