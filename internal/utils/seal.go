package utils

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"io"
)

// Seal encrypts a secret with AES-GCM under the given key and returns a
// base64 string safe to store in a TEXT column. A nil key is a
// passthrough so development setups without a seal key keep working.
func Seal(key []byte, plaintext string) (string, error) {
	if len(key) == 0 {
		return plaintext, nil
	}
	aead, err := newAEAD(key)
	if err != nil {
		return "", err
	}
	nonce := make([]byte, aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}
	ct := aead.Seal(nil, nonce, []byte(plaintext), nil)
	return base64.RawStdEncoding.EncodeToString(append(nonce, ct...)), nil
}

// Unseal reverses Seal. With a nil key the input is returned as-is.
func Unseal(key []byte, sealed string) (string, error) {
	if len(key) == 0 {
		return sealed, nil
	}
	aead, err := newAEAD(key)
	if err != nil {
		return "", err
	}
	buf, err := base64.RawStdEncoding.DecodeString(sealed)
	if err != nil {
		return "", err
	}
	ns := aead.NonceSize()
	if len(buf) < ns {
		return "", errors.New("sealed value too short")
	}
	pt, err := aead.Open(nil, buf[:ns], buf[ns:], nil)
	if err != nil {
		return "", err
	}
	return string(pt), nil
}

func newAEAD(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
