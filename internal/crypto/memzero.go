package crypto

import (
	"runtime"

	"tokenbox/internal/domain"
)

// Wipe zeroes the provided buffer. This is best-effort and aims to
// reduce the chance of the compiler eliding the write.
//
//go:noinline
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(&b)
}

// WipeBoxKeyPair zeroes the secret half of kp in place.
func WipeBoxKeyPair(kp *domain.BoxKeyPair) {
	if kp == nil {
		return
	}
	Wipe(kp.Secret[:])
}
