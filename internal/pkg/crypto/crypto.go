package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"golang.org/x/crypto/chacha20poly1305"
)

var ErrCiphertextTooShort = errors.New("ciphertext too short")

// Service encrypts personal identifier fields at rest.
type Service interface {
	EncryptString(plain string) (string, error)
	// DecryptString returns "" when the value cannot be decrypted.
	DecryptString(cipher string) string
	MaskResidentNo(plain string) string
}

type fieldCipher struct {
	key []byte
}

// New derives a 256-bit key from secret.
func New(secret string) (Service, error) {
	if secret == "" {
		return nil, errors.New("encryption secret is required")
	}
	sum := sha256.Sum256([]byte(secret))
	return &fieldCipher{key: sum[:]}, nil
}

func (c *fieldCipher) EncryptString(plain string) (string, error) {
	if plain == "" {
		return "", nil
	}
	aead, err := chacha20poly1305.NewX(c.key)
	if err != nil {
		return "", fmt.Errorf("failed to init cipher: %w", err)
	}
	nonce := make([]byte, aead.NonceSize(), aead.NonceSize()+len(plain)+aead.Overhead())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("failed to read nonce: %w", err)
	}
	sealed := aead.Seal(nonce, nonce, []byte(plain), nil)
	return base64.RawURLEncoding.EncodeToString(sealed), nil
}

func (c *fieldCipher) DecryptString(cipher string) string {
	if cipher == "" {
		return ""
	}
	plain, err := c.decrypt(cipher)
	if err != nil {
		return ""
	}
	return plain
}

func (c *fieldCipher) decrypt(cipher string) (string, error) {
	raw, err := base64.RawURLEncoding.DecodeString(cipher)
	if err != nil {
		return "", err
	}
	aead, err := chacha20poly1305.NewX(c.key)
	if err != nil {
		return "", err
	}
	if len(raw) < aead.NonceSize() {
		return "", ErrCiphertextTooShort
	}
	nonce, data := raw[:aead.NonceSize()], raw[aead.NonceSize():]
	plain, err := aead.Open(nil, nonce, data, nil)
	if err != nil {
		return "", err
	}
	return string(plain), nil
}

// MaskResidentNo keeps the birth-date part of a 13-digit resident number.
func (c *fieldCipher) MaskResidentNo(plain string) string {
	return MaskResidentNo(plain)
}

func MaskResidentNo(plain string) string {
	if plain == "" {
		return ""
	}
	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, plain)
	if len(digits) == 13 {
		return digits[:6] + "-*******"
	}
	return "***-*******"
}
