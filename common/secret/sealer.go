package secret

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
)

// Sealer encrypts provider tokens with AES-GCM before they touch the
// database and decrypts them on the way out.
type Sealer struct {
	aead cipher.AEAD
}

// New builds a Sealer from a raw AES key (16/24/32 bytes).
func New(key []byte) (*Sealer, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("new cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("new gcm: %w", err)
	}
	return &Sealer{aead: aead}, nil
}

// FromBase64Key builds a Sealer from the base64-encoded 32-byte key carried
// in SECRETS_KEY.
func FromBase64Key(encoded string) (*Sealer, error) {
	key, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("decode key: %w", err)
	}
	if len(key) != 32 {
		return nil, fmt.Errorf("key must be 32 bytes, got %d", len(key))
	}
	return New(key)
}

// Seal encrypts one plaintext value and returns a base64-encoded payload.
func (s *Sealer) Seal(value string) (string, error) {
	if s == nil || s.aead == nil {
		return "", fmt.Errorf("sealer is not configured")
	}

	// AES-GCM requires a unique nonce per encryption under the same key.
	nonce := make([]byte, s.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("read nonce: %w", err)
	}

	ciphertext := s.aead.Seal(nil, nonce, []byte(value), nil)
	// Persist as nonce || ciphertext, encoded in raw base64 for storage.
	payload := append(nonce, ciphertext...)
	return base64.RawStdEncoding.EncodeToString(payload), nil
}

// Open decrypts one previously sealed value.
func (s *Sealer) Open(sealed string) (string, error) {
	if s == nil || s.aead == nil {
		return "", fmt.Errorf("sealer is not configured")
	}

	payload, err := base64.RawStdEncoding.DecodeString(sealed)
	if err != nil {
		return "", fmt.Errorf("decode sealed value: %w", err)
	}

	nonceSize := s.aead.NonceSize()
	if len(payload) < nonceSize {
		return "", fmt.Errorf("sealed value is too short")
	}
	// Payload format is nonce || ciphertext.
	nonce := payload[:nonceSize]
	ciphertext := payload[nonceSize:]
	plaintext, err := s.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("decrypt sealed value: %w", err)
	}
	return string(plaintext), nil
}
