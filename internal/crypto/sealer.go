package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"io"

	"golang.org/x/crypto/hkdf"
)

const sealerInfo = "board-service/challenge-v1"

var (
	ErrSealFailed        = errors.New("seal failed")
	ErrInvalidCiphertext = errors.New("invalid ciphertext")
)

// Sealer — симметричное шифрование ответа капчи. Ключ AES-256 выводится из секрета процесса через HKDF.
type Sealer struct {
	aead cipher.AEAD
}

func NewSealer(secret []byte) (*Sealer, error) {
	if len(secret) == 0 {
		return nil, ErrMissingSecret
	}
	key := make([]byte, 32)
	if _, err := io.ReadFull(hkdf.New(sha256.New, secret, nil, []byte(sealerInfo)), key); err != nil {
		return nil, errors.Join(ErrSealFailed, err)
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, errors.Join(ErrSealFailed, err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, errors.Join(ErrSealFailed, err)
	}
	return &Sealer{aead: aead}, nil
}

// Seal возвращает base64(nonce + ciphertext + tag)
func (s *Sealer) Seal(plaintext string) (string, error) {
	nonce := make([]byte, s.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", errors.Join(ErrSealFailed, err)
	}
	return base64.StdEncoding.EncodeToString(s.aead.Seal(nonce, nonce, []byte(plaintext), nil)), nil
}

// Open расшифровывает результат Seal
func (s *Sealer) Open(sealed string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(sealed)
	if err != nil {
		return "", errors.Join(ErrInvalidCiphertext, err)
	}
	if len(raw) < s.aead.NonceSize() {
		return "", ErrInvalidCiphertext
	}
	nonce, ct := raw[:s.aead.NonceSize()], raw[s.aead.NonceSize():]
	pt, err := s.aead.Open(nil, nonce, ct, nil)
	if err != nil {
		return "", errors.Join(ErrInvalidCiphertext, err)
	}
	return string(pt), nil
}
