// Package common holds tiny helpers shared by the client packages.
package common

// WipeByteArray zeroes b in place. Used for password buffers read from the
// terminal once they have been sent to the API. A nil slice is a no-op.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
