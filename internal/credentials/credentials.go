package credentials

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

// hashCost matches the cost factor used when the user base was created;
// lowering it would not invalidate stored hashes but new ones should stay slow.
const hashCost = 12

const tempPasswordChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
const tempPasswordLength = 8

func Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}

func Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// GenerateTemporaryPassword returns an 8-character password drawn uniformly
// from [a-zA-Z0-9] using crypto/rand.
func GenerateTemporaryPassword() (string, error) {
	password := make([]byte, tempPasswordLength)
	max := big.NewInt(int64(len(tempPasswordChars)))
	for i := range password {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("generate temporary password: %w", err)
		}
		password[i] = tempPasswordChars[n.Int64()]
	}
	return string(password), nil
}
