//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sha256

import (
	"errors"
	"strings"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		token  string
		format Format
	}{
		{"", FormatWords},
		{"words", FormatWords},
		{"array", FormatWords},
		{"hex", FormatHex},
		{"binary", FormatBinary},
	}
	for _, test := range tests {
		f, err := ParseFormat(test.token)
		if err != nil {
			t.Errorf("ParseFormat(%q): %v", test.token, err)
			continue
		}
		if f != test.format {
			t.Errorf("ParseFormat(%q)=%s, expected %s",
				test.token, f, test.format)
		}
	}

	_, err := ParseFormat("base64")
	if !errors.Is(err, ErrInvalidOutputFormat) {
		t.Fatalf("ParseFormat(base64): got %v", err)
	}
	if !strings.Contains(err.Error(), `"base64"`) {
		t.Errorf("error does not name the token: %v", err)
	}
}

func TestEncode(t *testing.T) {
	d := Hash("abc")

	words, err := d.Encode(FormatWords)
	if err != nil {
		t.Fatal(err)
	}
	expected := "ba7816bf 8f01cfea 414140de 5dae2223 " +
		"b00361a3 96177a9c b410ff61 f20015ad"
	if words != expected {
		t.Errorf("words: got %q", words)
	}

	bin, err := d.Encode(FormatBinary)
	if err != nil {
		t.Fatal(err)
	}
	b := d.Bytes()
	if bin != string(b[:]) || len(bin) != DigestLength {
		t.Errorf("binary: got %x", bin)
	}
	if bin[0] != 0xba || bin[31] != 0xad {
		t.Errorf("binary is not big-endian: %x", bin)
	}

	if d.Words()[0] != 0xba7816bf {
		t.Errorf("Words()[0]=%08x", d.Words()[0])
	}

	if _, err := d.Encode(Format(42)); !errors.Is(err, ErrInvalidOutputFormat) {
		t.Errorf("Encode(42): got %v", err)
	}
}

func TestDigestAs(t *testing.T) {
	s := NewStream(nil)
	if err := s.Update("ab"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.DigestAs("octal"); !errors.Is(err, ErrInvalidOutputFormat) {
		t.Fatalf("DigestAs(octal): got %v", err)
	}

	// The invalid token did not finalize the stream.
	if err := s.Update("c"); err != nil {
		t.Fatalf("Update after invalid DigestAs: %v", err)
	}
	h, err := s.DigestAs("hex")
	if err != nil {
		t.Fatal(err)
	}
	if h != knownAnswers[1].hex {
		t.Errorf("DigestAs(hex)=%s", h)
	}
}

func TestHashAs(t *testing.T) {
	h, err := HashAs("", "hex")
	if err != nil {
		t.Fatal(err)
	}
	if h != knownAnswers[0].hex {
		t.Errorf("HashAs=%s", h)
	}
	if _, err := HashAs("abc", "HEX"); !errors.Is(err, ErrInvalidOutputFormat) {
		t.Errorf("HashAs(HEX): got %v", err)
	}
}
