// Package encryption provides the field-level cipher for sensitive identity data.
package encryption

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/crypto/scrypt"

	"identity/config"
	domainerrors "identity/internal/domain/errors"
	"identity/internal/domain/service"
	"identity/internal/errors"
)

const (
	envelopeSeparator = ":"
	keyLength         = 32 // AES-256

	// scrypt cost parameters
	scryptN = 16384
	scryptR = 8
	scryptP = 1
)

// aesCipher encrypts with AES-256-CBC under a key derived once at construction.
type aesCipher struct {
	block  cipher.Block
	random io.Reader
}

// NewAESCipher derives the field key from cfg.Cipher.Secret with scrypt.
func NewAESCipher(cfg *config.Config) (service.FieldCipher, error) {
	return newAESCipher(cfg.Cipher.Secret, cfg.Cipher.Salt, rand.Reader)
}

func newAESCipher(secret, salt string, random io.Reader) (*aesCipher, error) {
	if secret == "" {
		return nil, errors.New("cipher secret must be provided")
	}

	key, err := scrypt.Key([]byte(secret), []byte(salt), scryptN, scryptR, scryptP, keyLength)
	if err != nil {
		return nil, errors.Wrap(err, "derive cipher key")
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, errors.Wrap(err, "init aes cipher")
	}

	return &aesCipher{block: block, random: random}, nil
}

// Encrypt returns hex(iv) + ":" + hex(ciphertext) with a fresh IV per call.
func (c *aesCipher) Encrypt(plaintext string) (string, error) {
	iv := make([]byte, aes.BlockSize)
	if _, err := io.ReadFull(c.random, iv); err != nil {
		return "", domainerrors.ErrEncryptionFailed.WrapMessage("generate iv: " + err.Error())
	}

	padded := pkcs7Pad([]byte(plaintext), aes.BlockSize)
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(c.block, iv).CryptBlocks(ciphertext, padded)

	return hex.EncodeToString(iv) + envelopeSeparator + hex.EncodeToString(ciphertext), nil
}

// Decrypt parses the envelope and reverses Encrypt.
func (c *aesCipher) Decrypt(envelope string) (string, error) {
	parts := strings.Split(envelope, envelopeSeparator)
	if len(parts) != 2 {
		return "", domainerrors.ErrDecryptionFailed.WrapMessage("malformed envelope")
	}

	iv, err := hex.DecodeString(parts[0])
	if err != nil || len(iv) != aes.BlockSize {
		return "", domainerrors.ErrDecryptionFailed.WrapMessage("invalid iv")
	}

	ciphertext, err := hex.DecodeString(parts[1])
	if err != nil || len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return "", domainerrors.ErrDecryptionFailed.WrapMessage("invalid ciphertext")
	}

	plaintext := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(c.block, iv).CryptBlocks(plaintext, ciphertext)

	plaintext, ok := pkcs7Unpad(plaintext, aes.BlockSize)
	if !ok || !utf8.Valid(plaintext) {
		return "", domainerrors.ErrDecryptionFailed.WrapMessage("bad padding")
	}

	return string(plaintext), nil
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	padding := blockSize - len(data)%blockSize

	return append(data, bytes.Repeat([]byte{byte(padding)}, padding)...)
}

// pkcs7Unpad validates every padding byte before stripping.
func pkcs7Unpad(data []byte, blockSize int) ([]byte, bool) {
	length := len(data)
	if length == 0 {
		return nil, false
	}

	padding := int(data[length-1])
	if padding == 0 || padding > blockSize || padding > length {
		return nil, false
	}

	for _, b := range data[length-padding:] {
		if int(b) != padding {
			return nil, false
		}
	}

	return data[:length-padding], true
}
