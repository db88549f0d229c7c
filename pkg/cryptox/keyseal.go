package cryptox

import (
	"bytes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/hkdf"
)

// MinMasterKeyLen is the shortest master key material accepted.
const MinMasterKeyLen = 16

var ErrSealedKeyCorrupt = errors.New("cryptox: sealed key is corrupt or the master key is wrong")

// KeySealer encrypts private key files at rest with XChaCha20-Poly1305 under
// a key derived from a master secret.
//
// Sealed format: [24-byte nonce][ciphertext][16-byte tag]
type KeySealer struct {
	aead cipher.AEAD
}

// NewKeySealer derives the sealing key from material with HKDF-SHA256.
func NewKeySealer(material []byte) (*KeySealer, error) {
	if len(material) < MinMasterKeyLen {
		return nil, fmt.Errorf("cryptox: master key must be at least %d bytes", MinMasterKeyLen)
	}

	key := make([]byte, chacha20poly1305.KeySize)
	kdf := hkdf.New(sha256.New, material, nil, []byte("taskboard/key-seal/v1"))
	if _, err := io.ReadFull(kdf, key); err != nil {
		return nil, fmt.Errorf("cryptox: derive seal key: %w", err)
	}

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("cryptox: create cipher: %w", err)
	}
	return &KeySealer{aead: aead}, nil
}

// LoadKeySealer reads master key material from path. Surrounding whitespace
// is ignored so the file can be written with echo.
func LoadKeySealer(path string) (*KeySealer, error) {
	b, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("cryptox: read master key: %w", err)
	}
	return NewKeySealer(bytes.TrimSpace(b))
}

// Seal encrypts plaintext with a fresh random nonce.
func (s *KeySealer) Seal(plaintext []byte) ([]byte, error) {
	nonce := make([]byte, s.aead.NonceSize(), s.aead.NonceSize()+len(plaintext)+s.aead.Overhead())
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("cryptox: generate nonce: %w", err)
	}
	return s.aead.Seal(nonce, nonce, plaintext, nil), nil
}

// Open reverses Seal.
func (s *KeySealer) Open(sealed []byte) ([]byte, error) {
	if len(sealed) < s.aead.NonceSize()+s.aead.Overhead() {
		return nil, ErrSealedKeyCorrupt
	}
	nonce, ciphertext := sealed[:s.aead.NonceSize()], sealed[s.aead.NonceSize():]
	plaintext, err := s.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrSealedKeyCorrupt
	}
	return plaintext, nil
}
