//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sha256

import (
	"fmt"

	"github.com/markkurossi/shastream/conv"
)

// Format specifies the digest output encoding.
type Format int

// Digest output formats.
const (
	FormatWords Format = iota
	FormatHex
	FormatBinary
)

var formatNames = map[Format]string{
	FormatWords:  "words",
	FormatHex:    "hex",
	FormatBinary: "binary",
}

func (f Format) String() string {
	name, ok := formatNames[f]
	if ok {
		return name
	}
	return fmt.Sprintf("{Format %d}", int(f))
}

// ParseFormat parses the output format token. The empty token and
// "array" select FormatWords.
func ParseFormat(token string) (Format, error) {
	switch token {
	case "", "words", "array":
		return FormatWords, nil
	case "hex":
		return FormatHex, nil
	case "binary":
		return FormatBinary, nil
	default:
		return FormatWords, fmt.Errorf("%w: %q", ErrInvalidOutputFormat, token)
	}
}

// Digest is a finished SHA-256 hash value.
type Digest [8]uint32

// Words returns the digest as eight 32-bit words.
func (d Digest) Words() [8]uint32 {
	return d
}

// Bytes returns the digest in big-endian byte order.
func (d Digest) Bytes() [DigestLength]byte {
	var result [DigestLength]byte
	conv.PutWords(result[:], d[:])
	return result
}

// Hex returns the digest as 64 lowercase hex characters.
func (d Digest) Hex() string {
	buf := make([]byte, 0, DigestLength*2)
	for _, w := range d {
		buf = conv.AppendHex(buf, w)
	}
	return string(buf)
}

// Binary returns the digest as a 32-byte big-endian string.
func (d Digest) Binary() string {
	buf := make([]byte, 0, DigestLength)
	for _, w := range d {
		buf = conv.AppendBytes(buf, w)
	}
	return string(buf)
}

func (d Digest) String() string {
	return d.Hex()
}

// Encode returns the digest in the format f. FormatWords renders the
// eight words as space-separated 8-digit hex values.
func (d Digest) Encode(f Format) (string, error) {
	switch f {
	case FormatWords:
		buf := make([]byte, 0, len(d)*9)
		for i, w := range d {
			if i > 0 {
				buf = append(buf, ' ')
			}
			buf = conv.AppendHex(buf, w)
		}
		return string(buf), nil

	case FormatHex:
		return d.Hex(), nil

	case FormatBinary:
		return d.Binary(), nil

	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidOutputFormat, f)
	}
}
