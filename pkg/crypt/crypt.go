// Package crypt encrypts manifest page URLs with AES-256-CBC. The key is
// derived from an operator secret; each page gets a fresh random IV and is
// serialized as hex(iv):hex(ciphertext).
package crypt

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"
)

// Version is written into manifests as encryption_version.
const Version = "1.0"

// The IV is always 16 bytes, so an encrypted page starts with exactly 32 hex
// characters before the colon.
var encryptedPage = regexp.MustCompile(`^[0-9a-fA-F]{32}:[0-9a-fA-F]+$`)

// DeriveKey hashes the operator secret into a 256-bit AES key.
func DeriveKey(token string) []byte {
	sum := sha256.Sum256([]byte(token))
	return sum[:]
}

// IsEncrypted reports whether a page value already has the encrypted form.
// Detection is purely syntactic.
func IsEncrypted(page string) bool {
	return encryptedPage.MatchString(page)
}

// EncryptPage encrypts a single page URL under key with a fresh random IV.
func EncryptPage(key []byte, page string) (string, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return "", fmt.Errorf("init cipher: %w", err)
	}
	iv := make([]byte, aes.BlockSize)
	if _, err := rand.Read(iv); err != nil {
		return "", fmt.Errorf("generate iv: %w", err)
	}
	plain := pad([]byte(page), aes.BlockSize)
	ct := make([]byte, len(plain))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ct, plain)
	return hex.EncodeToString(iv) + ":" + hex.EncodeToString(ct), nil
}

// DecryptPage reverses EncryptPage. Used for operator spot checks and to
// verify the round-trip property.
func DecryptPage(key []byte, page string) (string, error) {
	ivHex, ctHex, ok := strings.Cut(page, ":")
	if !ok {
		return "", fmt.Errorf("not an encrypted page value")
	}
	iv, err := hex.DecodeString(ivHex)
	if err != nil || len(iv) != aes.BlockSize {
		return "", fmt.Errorf("bad iv")
	}
	ct, err := hex.DecodeString(ctHex)
	if err != nil || len(ct) == 0 || len(ct)%aes.BlockSize != 0 {
		return "", fmt.Errorf("bad ciphertext")
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return "", fmt.Errorf("init cipher: %w", err)
	}
	plain := make([]byte, len(ct))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plain, ct)
	out, err := unpad(plain)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// PKCS#7 padding.
func pad(b []byte, size int) []byte {
	n := size - len(b)%size
	return append(b, bytes.Repeat([]byte{byte(n)}, n)...)
}

func unpad(b []byte) ([]byte, error) {
	if len(b) == 0 {
		return nil, fmt.Errorf("empty plaintext")
	}
	n := int(b[len(b)-1])
	if n == 0 || n > len(b) {
		return nil, fmt.Errorf("bad padding")
	}
	for _, c := range b[len(b)-n:] {
		if int(c) != n {
			return nil, fmt.Errorf("bad padding")
		}
	}
	return b[:len(b)-n], nil
}
