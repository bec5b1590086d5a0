package models

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const AdminScope = "admin"

type AdminClaims struct {
	Scope string `json:"scope"`
	jwt.RegisteredClaims
}

type TokenRequest struct {
	Password string `json:"password"`
}

type TokenResponse struct {
	Token  string    `json:"token"`
	Expiry time.Time `json:"expiry"`
}

// NewAdminToken signs an admin-scoped HS256 token valid for ttl
func NewAdminToken(secret string, ttl time.Duration) (TokenResponse, error) {
	now := time.Now()
	expiry := now.Add(ttl)
	claims := AdminClaims{
		Scope: AdminScope,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiry),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return TokenResponse{}, fmt.Errorf("failed to sign admin token: %w", err)
	}

	return TokenResponse{Token: signed, Expiry: expiry}, nil
}

func ValidateJWTToken(tokenString string, secret string) (*AdminClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AdminClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})

	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(*AdminClaims)
	if !ok || claims.Scope != AdminScope {
		return nil, fmt.Errorf("invalid token claims")
	}

	return claims, nil
}
