package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	jwt "github.com/dgrijalva/jwt-go"
)

var (
	// ErrNoAuth means the request carried no usable Authorization header.
	ErrNoAuth = errors.New("auth: no bearer token found")
	// ErrInvalidToken covers bad signatures, expiry and malformed claims.
	ErrInvalidToken = errors.New("auth: token is not valid")
)

// Verifier decides whether a credential pair is acceptable. The service ships
// a single static pair; an external identity provider can slot in behind this
// without touching the token handling.
type Verifier interface {
	Verify(username, password string) bool
}

// StaticVerifier accepts exactly one configured credential pair.
type StaticVerifier struct {
	username string
	password string
}

func NewStaticVerifier(username, password string) StaticVerifier {
	return StaticVerifier{username: username, password: password}
}

func (v StaticVerifier) Verify(username, password string) bool {
	return username == v.username && password == v.password
}

type tokenClaims struct {
	Username string `json:"username"`
	jwt.StandardClaims
}

// TokenManager mints and validates the HS256 tokens guarding the API.
type TokenManager struct {
	secret  []byte
	ttl     time.Duration
	nowFunc func() time.Time
}

func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{
		secret:  []byte(secret),
		ttl:     ttl,
		nowFunc: time.Now,
	}
}

// Issue mints a signed token carrying the username and an expiry.
func (tm *TokenManager) Issue(username string) (string, error) {
	now := tm.nowFunc()
	claims := tokenClaims{
		Username: username,
		StandardClaims: jwt.StandardClaims{
			Subject:   username,
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(tm.ttl).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(tm.secret)
	if err != nil {
		return "", fmt.Errorf("auth: sign token: %w", err)
	}
	return signed, nil
}

// Validate checks the Authorization header and returns the token's username.
func (tm *TokenManager) Validate(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrNoAuth
	}
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")

	token, err := jwt.ParseWithClaims(tokenString, &tokenClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("auth: unexpected signing method %v", token.Header["alg"])
			}
			return tm.secret, nil
		})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*tokenClaims)
	if !ok || !token.Valid {
		return "", ErrInvalidToken
	}
	if claims.Username == "" {
		return "", ErrInvalidToken
	}
	return claims.Username, nil
}
