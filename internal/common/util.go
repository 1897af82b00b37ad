package common

import (
	"crypto/rand"
	"math/big"
)

const digits = "0123456789"

// RandomDigits returns a string of n cryptographically random decimal digits.
func RandomDigits(n int) (string, error) {
	b := make([]byte, n)
	max := big.NewInt(int64(len(digits)))
	for i := range b {
		v, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		b[i] = digits[v.Int64()]
	}
	return string(b), nil
}

// WipeByteArray overwrites b with zeros. Used for passwords read from the
// terminal.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
