package cryptox

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// GenerateEd25519Key generates a new Ed25519 private key and returns it PEM
// encoded (PKCS8).
func GenerateEd25519Key() ([]byte, error) {
	_, privateKey, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("cryptox: failed to generate Ed25519 key: %w", err)
	}

	der, err := x509.MarshalPKCS8PrivateKey(privateKey)
	if err != nil {
		return nil, fmt.Errorf("cryptox: failed to marshal PKCS8 key: %w", err)
	}

	return pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der}), nil
}

// LoadOrGenerateEd25519Key reads a PKCS8 PEM key from path. When the file does
// not exist a new key is generated and written with 0600 permissions, so
// tokens stay valid across restarts.
func LoadOrGenerateEd25519Key(path string) ([]byte, bool, error) {
	return loadOrGenerateKey(path, nil)
}

// LoadOrGenerateSealedEd25519Key is LoadOrGenerateEd25519Key for a key file
// encrypted with s. The returned PEM is the decrypted key.
func LoadOrGenerateSealedEd25519Key(path string, s *KeySealer) ([]byte, bool, error) {
	return loadOrGenerateKey(path, s)
}

func loadOrGenerateKey(path string, s *KeySealer) ([]byte, bool, error) {
	path = filepath.Clean(path)

	b, err := os.ReadFile(path)
	if err == nil {
		if s != nil {
			b, err = s.Open(b)
			if err != nil {
				return nil, false, err
			}
		}
		return b, false, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, false, fmt.Errorf("cryptox: read key: %w", err)
	}

	pemKey, err := GenerateEd25519Key()
	if err != nil {
		return nil, false, err
	}
	onDisk := pemKey
	if s != nil {
		if onDisk, err = s.Seal(pemKey); err != nil {
			return nil, false, err
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil, false, fmt.Errorf("cryptox: create key dir: %w", err)
	}
	if err := os.WriteFile(path, onDisk, 0600); err != nil {
		return nil, false, fmt.Errorf("cryptox: write key: %w", err)
	}
	return pemKey, true, nil
}
