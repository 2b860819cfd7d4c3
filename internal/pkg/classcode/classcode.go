// Package classcode generates and checks the short codes students type to
// join a class.
package classcode

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/dlclark/regexp2"
)

const (
	Length   = 6
	alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

var pattern = regexp2.MustCompile(fmt.Sprintf(`^[A-Z0-9]{%d}\z`, Length), regexp2.None)

// Generate returns a random code of Length uppercase letters and digits.
// Uniqueness is left to the store.
func Generate() (string, error) {
	code := make([]byte, Length)
	size := big.NewInt(int64(len(alphabet)))

	for i := range code {
		n, err := rand.Int(rand.Reader, size)
		if err != nil {
			return "", fmt.Errorf("rand.Int -> %w", err)
		}
		code[i] = alphabet[n.Int64()]
	}

	return string(code), nil
}

// Valid reports whether code could have been produced by Generate.
func Valid(code string) bool {
	ok, err := pattern.MatchString(code)
	return err == nil && ok
}
