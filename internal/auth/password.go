package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword hashes a password using bcrypt. The digest embeds its own
// salt and cost, so nothing else needs to be stored.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hash), err
}

// VerifyPassword compares a plain password with a hashed password.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
