package main

import (
	"context"
	"io"
)

// readKeys forwards single bytes from r until ctx ends or r fails. The
// returned channel is closed on read errors.
func readKeys(ctx context.Context, r io.Reader) <-chan byte {
	keys := make(chan byte, keyBuffer)
	go func() {
		defer close(keys)
		buf := make([]byte, 1)
		for {
			n, err := r.Read(buf)
			if err != nil {
				return
			}
			if n == 0 {
				continue
			}
			select {
			case keys <- buf[0]:
			case <-ctx.Done():
				return
			}
		}
	}()
	return keys
}
