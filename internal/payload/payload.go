// SPDX-FileCopyrightText: 2026 The aespower Authors
// SPDX-License-Identifier: Apache-2.0

// Package payload tags a plaintext with a CRC-32 integrity checksum so
// that corruption introduced by the cipher pipeline under measurement is
// detectable after a round trip.
package payload

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
)

// TagSize is the length in bytes of the checksum appended by Tag.
const TagSize = 4

var (
	ErrMalformedPayload = errors.New("payload shorter than checksum tag")
	ErrChecksumMismatch = errors.New("payload checksum mismatch")
)

// Tag returns plaintext with its CRC-32 (IEEE) checksum appended as a
// big-endian 32 bit integer. An empty plaintext is valid and yields a
// payload holding only the checksum of the empty sequence.
func Tag(plaintext []byte) []byte {
	tagged := make([]byte, len(plaintext)+TagSize)
	copy(tagged, plaintext)
	binary.BigEndian.PutUint32(tagged[len(plaintext):], crc32.ChecksumIEEE(plaintext))
	return tagged
}

// Untag strips the trailing checksum tag and returns the plaintext.
// It does not verify the checksum; use UntagVerify for that.
func Untag(payload []byte) ([]byte, error) {
	if len(payload) < TagSize {
		return nil, fmt.Errorf("%w: got %d bytes, need at least %d", ErrMalformedPayload, len(payload), TagSize)
	}
	return payload[:len(payload)-TagSize], nil
}

// UntagVerify strips the trailing checksum tag after recomputing the
// CRC-32 over the remaining bytes and comparing it against the tag. It
// fails with ErrChecksumMismatch when the two disagree.
func UntagVerify(payload []byte) ([]byte, error) {
	plaintext, err := Untag(payload)
	if err != nil {
		return nil, err
	}

	want := binary.BigEndian.Uint32(payload[len(plaintext):])
	if got := crc32.ChecksumIEEE(plaintext); got != want {
		return nil, fmt.Errorf("%w: computed %08x, tagged %08x", ErrChecksumMismatch, got, want)
	}
	return plaintext, nil
}
