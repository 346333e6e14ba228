package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// BcryptCost is the fixed cost factor for password hashing.
const BcryptCost = 12

// dummyHash is compared against when no stored hash exists, so the work done
// for an unknown email matches the work done for a wrong password.
const dummyHash = "$2a$12$K3JNi5xUQyWGW0VTjuZ9luYQLSZXMGUDTm0uXcdoEEdAJquPtxqpa"

// HashPassword hashes a plaintext password
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckPassword verifies a plaintext password against a stored hash
func CheckPassword(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}

// CheckDummyPassword burns a bcrypt comparison against a fixed hash and
// always reports failure.
func CheckDummyPassword(password string) bool {
	_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
	return false
}
