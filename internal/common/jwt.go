package common

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims is what we put in access tokens. Refresh tokens only carry the
// subject. Every token gets a fresh jti so rotated refresh tokens never
// collide with the previous one.
type Claims struct {
	UserID   string `json:"_id"`
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// TokenManager signs and verifies both token kinds with separate secrets.
type TokenManager struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	now           func() time.Time
}

func NewTokenManager(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *TokenManager {
	return &TokenManager{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
		now:           time.Now,
	}
}

func (tm *TokenManager) GenerateAccessToken(userID, username, email string) (string, error) {
	return tm.sign(tm.accessSecret, tm.accessTTL, &Claims{UserID: userID, Username: username, Email: email})
}

func (tm *TokenManager) GenerateRefreshToken(userID string) (string, error) {
	return tm.sign(tm.refreshSecret, tm.refreshTTL, &Claims{UserID: userID})
}

func (tm *TokenManager) ValidateAccessToken(token string) (*Claims, error) {
	return tm.parse(tm.accessSecret, token)
}

func (tm *TokenManager) ValidateRefreshToken(token string) (*Claims, error) {
	return tm.parse(tm.refreshSecret, token)
}

func (tm *TokenManager) sign(secret []byte, ttl time.Duration, claims *Claims) (string, error) {
	now := tm.now()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		Subject:   claims.UserID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		Issuer:    "viztube",
		ID:        uuid.NewString(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

func (tm *TokenManager) parse(secret []byte, tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	}, jwt.WithTimeFunc(tm.now))
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid && claims.UserID != "" {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}
