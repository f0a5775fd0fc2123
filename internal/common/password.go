package common

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

const passwordCost = bcrypt.DefaultCost

// HashPassword returns the bcrypt hash kept on the user record. bcrypt only
// reads 72 bytes, so a longer password is rejected rather than truncated.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), passwordCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", Validation("Password is too long", "password must be at most 72 bytes")
	}
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func PasswordMatches(password, hashedPassword string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}
