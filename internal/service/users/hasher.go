package users

import "golang.org/x/crypto/bcrypt"

// BcryptHasher хеширует пароли bcrypt
type BcryptHasher struct {
	Cost int
}

// Hash возвращает bcrypt хеш пароля
func (h BcryptHasher) Hash(password string) (string, error) {
	cost := h.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
