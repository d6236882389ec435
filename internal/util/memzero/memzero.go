// Package memzero wipes key material once it is no longer needed.
package memzero

import "crypto/subtle"

// Zero overwrites every given buffer with zeros. Nil and empty buffers are skipped.
func Zero(bufs ...[]byte) {
	for _, b := range bufs {
		if len(b) == 0 {
			continue
		}
		subtle.ConstantTimeCopy(1, b, make([]byte, len(b)))
	}
}
