package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	jwt "github.com/golang-jwt/jwt/v4"
)

var (
	// ErrInvalidToken возвращается для поддельных, просроченных и некорректных токенов
	ErrInvalidToken = errors.New("auth: invalid token")

	// ErrEmptySecret возвращается при попытке подписать токен пустым ключом
	ErrEmptySecret = errors.New("auth: empty signing secret")
)

// Claims содержимое access токена
type Claims struct {
	Role              string `json:"role"`
	Email             string `json:"email"`
	ScholarshipHolder bool   `json:"scholarship_holder"`
	jwt.RegisteredClaims
}

// UserID идентификатор пользователя из sub
func (c *Claims) UserID() (int64, error) {
	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: bad subject %q", ErrInvalidToken, c.Subject)
	}
	return id, nil
}

// Issuer подписывает и проверяет HS256 токены
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

// NewIssuer создает Issuer
func NewIssuer(secret string, ttl time.Duration) *Issuer {
	return &Issuer{secret: []byte(secret), ttl: ttl}
}

// Issue выпускает токен для пользователя и возвращает время его истечения
func (i *Issuer) Issue(userID int64, role, email string, scholarshipHolder bool) (string, time.Time, error) {
	if len(i.secret) == 0 {
		return "", time.Time{}, ErrEmptySecret
	}

	now := time.Now()
	expiresAt := now.Add(i.ttl)

	claims := Claims{
		Role:              role,
		Email:             email,
		ScholarshipHolder: scholarshipHolder,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("auth: sign token: %w", err)
	}

	return signed, expiresAt, nil
}

// Parse проверяет подпись и срок действия токена
func (i *Issuer) Parse(tokenStr string) (*Claims, error) {
	t, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return i.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	c, ok := t.Claims.(*Claims)
	if !ok || !t.Valid {
		return nil, ErrInvalidToken
	}

	return c, nil
}
