package security

import (
	"crypto/rand"
	"errors"
	"math/big"
)

var (
	errNegativeLength = errors.New("length must be non-negative")
	errEmptyAlphabet  = errors.New("alphabet must not be empty")
)

// RandomString draws length characters from alphabet using crypto/rand.
// Each position is sampled without modulo bias, so the result is suitable
// for opaque identifiers like login challenge tokens.
func RandomString(length int, alphabet string) (string, error) {
	if length < 0 {
		return "", errNegativeLength
	}
	if length == 0 {
		return "", nil
	}
	if len(alphabet) == 0 {
		return "", errEmptyAlphabet
	}

	alphabetSize := big.NewInt(int64(len(alphabet)))
	token := make([]byte, length)
	for index := range token {
		drawn, err := rand.Int(rand.Reader, alphabetSize)
		if err != nil {
			return "", err
		}
		token[index] = alphabet[drawn.Int64()]
	}

	return string(token), nil
}
