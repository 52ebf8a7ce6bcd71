package auth

import (
	"crypto/subtle"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrBadToken       = errors.New("invalid token")
	ErrBadCredentials = errors.New("invalid credentials")
)

const TokenTTL = 12 * time.Hour

func HashPassword(pw string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	return string(b), err
}

func CheckPassword(hash, pw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pw)) == nil
}

type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

func MakeToken(subject, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	c := Claims{
		Role: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString([]byte(secret))
}

func ParseToken(raw, secret string) (*Claims, error) {
	tok, err := jwt.ParseWithClaims(raw, &Claims{}, func(t *jwt.Token) (any, error) {
		// block alg confusion
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrBadToken
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	c, ok := tok.Claims.(*Claims)
	if !ok || !tok.Valid || c.Role != "admin" {
		return nil, ErrBadToken
	}
	return c, nil
}

// Admin is the single site operator allowed to manage content.
type Admin struct {
	User         string
	PasswordHash string
	Secret       string
}

// Login checks the credentials and issues an access token.
func (a *Admin) Login(user, pw string) (string, error) {
	userOK := subtle.ConstantTimeCompare([]byte(user), []byte(a.User)) == 1
	// bcrypt runs even for an unknown user
	pwOK := CheckPassword(a.PasswordHash, pw)
	if !userOK || !pwOK {
		return "", ErrBadCredentials
	}
	return MakeToken(a.User, a.Secret, TokenTTL)
}
