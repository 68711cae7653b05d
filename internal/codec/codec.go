// SPDX-FileCopyrightText: 2026 The aespower Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec implements the AES-128 pipeline whose energy cost the
// harness measures: PKCS#7 padding plus per-block encryption, with each
// 16 byte block encrypted independently under the same key.
//
// NOTE: encrypting blocks independently (no chaining, no IV) leaks
// equality of plaintext blocks. The construction is kept so that
// measurements stay comparable with the original benchmark; it is not
// suitable as a general purpose encryption scheme.
package codec

import (
	"crypto/aes"
	"errors"
	"fmt"
)

const (
	// BlockSize is the cipher block size in bytes.
	BlockSize = aes.BlockSize

	// KeySize is the only supported key length (AES-128).
	KeySize = 16
)

var (
	ErrInvalidKeyLength        = errors.New("key must be exactly 16 bytes")
	ErrInvalidCiphertextLength = errors.New("ciphertext length must be a positive multiple of the block size")
	ErrCorruptPadding          = errors.New("corrupt padding")
)

// Encrypt pads payload to a multiple of the block size and encrypts each
// block independently with key. A block-aligned payload still gains a
// full block of padding, so the output is always at least one byte
// longer than the input and always block aligned.
func Encrypt(payload, key []byte) ([]byte, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: got %d bytes", ErrInvalidKeyLength, len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cipher: %w", err)
	}

	padded := pad(payload)
	ciphertext := make([]byte, len(padded))
	for i := 0; i < len(padded); i += BlockSize {
		block.Encrypt(ciphertext[i:i+BlockSize], padded[i:i+BlockSize])
	}
	return ciphertext, nil
}

// Decrypt decrypts each block of ciphertext independently with key and
// removes the padding. It fails with ErrInvalidCiphertextLength unless
// the ciphertext is a positive multiple of the block size, and with
// ErrCorruptPadding when the recovered pad length is impossible.
func Decrypt(ciphertext, key []byte) ([]byte, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: got %d bytes", ErrInvalidKeyLength, len(key))
	}
	if len(ciphertext) == 0 || len(ciphertext)%BlockSize != 0 {
		return nil, fmt.Errorf("%w: got %d bytes", ErrInvalidCiphertextLength, len(ciphertext))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cipher: %w", err)
	}

	padded := make([]byte, len(ciphertext))
	for i := 0; i < len(ciphertext); i += BlockSize {
		block.Decrypt(padded[i:i+BlockSize], ciphertext[i:i+BlockSize])
	}
	return unpad(padded)
}

// pad appends PKCS#7 padding: n bytes each of value n, where
// 1 <= n <= BlockSize.
func pad(data []byte) []byte {
	padLen := BlockSize - len(data)%BlockSize
	padded := make([]byte, len(data)+padLen)
	copy(padded, data)
	for i := len(data); i < len(padded); i++ {
		padded[i] = byte(padLen)
	}
	return padded
}

// unpad removes PKCS#7 padding, treating a pad length of zero or one
// larger than the data as corruption rather than undefined behavior.
func unpad(data []byte) ([]byte, error) {
	padLen := int(data[len(data)-1])
	if padLen == 0 || padLen > BlockSize || padLen > len(data) {
		return nil, fmt.Errorf("%w: pad length byte is %d", ErrCorruptPadding, padLen)
	}
	return data[:len(data)-padLen], nil
}
