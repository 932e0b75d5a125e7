//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sha256

import (
	"fmt"
	"sync"
	"testing"
)

func TestConcurrentStreams(t *testing.T) {
	const workers = 8

	var wg sync.WaitGroup
	errs := make(chan error, workers)

	for i := 0; i < workers; i++ {
		data := testData(t, fmt.Sprintf("worker-%d", i), 10000+i*37)
		expected := reference(data)

		wg.Add(1)
		go func() {
			defer wg.Done()
			s := NewStream(nil)
			for pos := 0; pos < len(data); pos += 61 {
				end := min(pos+61, len(data))
				if _, err := s.Write(data[pos:end]); err != nil {
					errs <- err
					return
				}
			}
			if got := s.Digest().Bytes(); got != expected {
				errs <- fmt.Errorf("stream: got %x, expected %x", got, expected)
				return
			}
			if got := HashBytes(data).Bytes(); got != expected {
				errs <- fmt.Errorf("one-shot: got %x, expected %x",
					got, expected)
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
}
