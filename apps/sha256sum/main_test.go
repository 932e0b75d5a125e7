//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"bytes"
	stdsha256 "crypto/sha256"
	"encoding/hex"
	"strings"
	"testing"
	"time"

	"github.com/markkurossi/shastream/sha256"
)

func testParams(format sha256.Format, chunk int) (*Params, *bytes.Buffer) {
	out := new(bytes.Buffer)
	params := NewParams()
	params.Format = format
	params.Chunk = chunk
	params.Out = out
	return params, out
}

func TestHashString(t *testing.T) {
	params, out := testParams(sha256.FormatHex, 2)
	if err := hashString(params, "abc"); err != nil {
		t.Fatal(err)
	}
	expected := "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad  \"abc\"\n"
	if out.String() != expected {
		t.Errorf("got %q, expected %q", out.String(), expected)
	}
}

func TestHashReader(t *testing.T) {
	data := strings.Repeat("The quick brown fox. ", 500)
	sum := stdsha256.Sum256([]byte(data))

	for _, chunk := range []int{1, 3, 64, 1000, 32 * 1024} {
		params, out := testParams(sha256.FormatHex, chunk)
		err := hashReader(params, strings.NewReader(data), "fox")
		if err != nil {
			t.Fatalf("chunk %d: %v", chunk, err)
		}
		expected := hex.EncodeToString(sum[:]) + "  fox\n"
		if out.String() != expected {
			t.Errorf("chunk %d: got %q", chunk, out.String())
		}
	}
}

func TestOutputFormats(t *testing.T) {
	digest := sha256.Hash("abc")

	params, out := testParams(sha256.FormatBinary, 64)
	if err := output(params, digest, "-"); err != nil {
		t.Fatal(err)
	}
	if out.Len() != sha256.DigestLength {
		t.Errorf("binary output is %d bytes", out.Len())
	}

	params, out = testParams(sha256.FormatWords, 64)
	if err := output(params, digest, "-"); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out.String(), "ba7816bf 8f01cfea ") {
		t.Errorf("words output: %q", out.String())
	}
}

func TestInput(t *testing.T) {
	for _, prg := range []string{"chacha20", "aes-ctr"} {
		a, err := input(prg, 1001)
		if err != nil {
			t.Fatalf("%s: %v", prg, err)
		}
		b, err := input(prg, 1001)
		if err != nil {
			t.Fatalf("%s: %v", prg, err)
		}
		if len(a) != 1001 || !bytes.Equal(a, b) {
			t.Errorf("%s: input is not deterministic", prg)
		}
	}
	if _, err := input("rot13", 10); err == nil {
		t.Errorf("unknown generator accepted")
	}
}

func TestBenchmark(t *testing.T) {
	params, out := testParams(sha256.FormatHex, 4096)
	if err := benchmark(params, 1, "aes-ctr"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "crypto/sha256") {
		t.Errorf("report missing reference rows:\n%s", out.String())
	}
}

func TestRate(t *testing.T) {
	if r := Rate(2000000, time.Second); r != "2MB/s" {
		t.Errorf("Rate=%q", r)
	}
	if r := Rate(0, time.Second); r != "" {
		t.Errorf("Rate(0)=%q", r)
	}
	if s := FileSize(999).String(); s != "999B" {
		t.Errorf("FileSize=%q", s)
	}
}
