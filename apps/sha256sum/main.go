//
// main.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime/pprof"

	"github.com/markkurossi/shastream/sha256"
)

// Params specify the hashing parameters.
type Params struct {
	Format  sha256.Format
	Chunk   int
	Verbose bool
	Out     io.Writer
}

// NewParams returns new params, initialized with the default values.
func NewParams() *Params {
	return &Params{
		Format: sha256.FormatHex,
		Chunk:  32 * 1024,
		Out:    os.Stdout,
	}
}

func main() {
	format := flag.String("f", "hex", "output format: words, hex, or binary")
	str := flag.String("s", "", "hash `string` instead of files")
	chunk := flag.Int("chunk", 0, "feed input in `size` byte updates")
	bench := flag.Int("bench", 0, "run throughput benchmark over `mb` megabytes")
	prg := flag.String("prg", "chacha20",
		"benchmark input generator: chacha20 or aes-ctr")
	verbose := flag.Bool("v", false, "verbose output")
	cpuprofile := flag.String("cpuprofile", "", "write cpu profile to `file`")
	flag.Parse()

	log.SetFlags(0)

	if len(*cpuprofile) > 0 {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
	}

	params := NewParams()
	params.Verbose = *verbose

	f, err := sha256.ParseFormat(*format)
	if err != nil {
		log.Fatal(err)
	}
	params.Format = f

	if *chunk < 0 {
		log.Fatalf("invalid chunk size: %d", *chunk)
	}
	if *chunk > 0 {
		params.Chunk = *chunk
	}

	if *bench > 0 {
		err = benchmark(params, *bench, *prg)
		if err != nil {
			log.Fatal(err)
		}
		return
	}

	var stringSet bool
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "s" {
			stringSet = true
		}
	})
	if stringSet {
		err = hashString(params, *str)
		if err != nil {
			log.Fatal(err)
		}
		return
	}

	if len(flag.Args()) == 0 {
		err = hashReader(params, os.Stdin, "-")
		if err != nil {
			log.Fatal(err)
		}
		return
	}
	for _, arg := range flag.Args() {
		err = hashFile(params, arg)
		if err != nil {
			log.Fatal(err)
		}
	}
}

func hashString(params *Params, str string) error {
	name := fmt.Sprintf("%q", str)
	s := sha256.NewStream(nil)
	for len(str) > 0 {
		n := min(params.Chunk, len(str))
		if err := s.Update(str[:n]); err != nil {
			return err
		}
		str = str[n:]
	}
	return output(params, s.Digest(), name)
}

func hashFile(params *Params, name string) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()
	return hashReader(params, f, name)
}

func hashReader(params *Params, in io.Reader, name string) error {
	s := sha256.NewStream(nil)
	buf := make([]byte, params.Chunk)

	var updates int
	for {
		n, err := io.ReadFull(in, buf)
		if n > 0 {
			if _, werr := s.Write(buf[:n]); werr != nil {
				return werr
			}
			updates++
		}
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			break
		}
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	if params.Verbose {
		log.Printf(" - %s: %d bytes in %d updates of %d bytes\n",
			name, s.Len(), updates, params.Chunk)
	}
	return output(params, s.Digest(), name)
}

func output(params *Params, digest sha256.Digest, name string) error {
	str, err := digest.Encode(params.Format)
	if err != nil {
		return err
	}
	if params.Format == sha256.FormatBinary {
		_, err = io.WriteString(params.Out, str)
		return err
	}
	_, err = fmt.Fprintf(params.Out, "%s  %s\n", str, name)
	return err
}
