package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword returns a bcrypt hash of the password peppered with hashKey.
//
// The password is first reduced to its hex HMAC-SHA256 digest, which keeps
// the bcrypt input under its 72-byte limit for any password length.
func HashPassword(password, hashKey string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(HashString(password, hashKey)), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hashed), nil
}

// CheckPassword reports whether password matches a hash produced by
// HashPassword with the same hashKey.
func CheckPassword(hashedPassword, password, hashKey string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(HashString(password, hashKey)))
	return err == nil
}
