package game

import (
	crand "crypto/rand"
	"encoding/binary"
	"time"
)

// NewSeed derives a PRNG seed from crypto/rand
func NewSeed() int64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		// fallback to wall clock if the entropy source fails
		return time.Now().UnixNano()
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}
