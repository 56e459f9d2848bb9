package pkg

import "golang.org/x/crypto/bcrypt"

// HashPassword hashes a plaintext password with the default bcrypt cost.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword compares a stored hash with a plaintext candidate.
// Returns bcrypt.ErrMismatchedHashAndPassword on mismatch; any other error
// means the hash itself is unusable.
func CheckPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
