// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexey Karpov

package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/akarpov/go-web-skeleton/internal/config"
)

// Principal is the identity resolved by the authentication stage and
// consumed by the authorization stage.
type Principal struct {
	Subject string
	Roles   []string
}

// HasRole reports whether the principal carries the given role.
func (p Principal) HasRole(role string) bool {
	for _, r := range p.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Claims is the JWT claim set issued and accepted by the token manager.
type Claims struct {
	jwt.RegisteredClaims
	Roles []string `json:"roles,omitempty"`
}

// TokenManager issues and validates the credentials accepted by the
// authentication stage. All state is read-only after construction, so a
// single manager is safe for concurrent use by every request flow.
type TokenManager struct {
	signKey    []byte
	issuer     string
	duration   time.Duration
	apiKeyHash []byte
}

// NewTokenManager constructs a TokenManager from the auth configuration
// group. An empty TokenSignKey yields a disabled manager; the pipeline
// skips both auth stages in that case.
func NewTokenManager(cfg config.Auth) *TokenManager {
	return &TokenManager{
		signKey:    []byte(cfg.TokenSignKey),
		issuer:     cfg.TokenIssuer,
		duration:   cfg.TokenDuration,
		apiKeyHash: []byte(cfg.APIKeyHash),
	}
}

// Enabled reports whether a signing key is configured.
func (m *TokenManager) Enabled() bool {
	return len(m.signKey) > 0
}

// CreateToken issues a signed JWT for the given subject.
//
// The token is signed with the configured sign key, carries the configured
// issuer as the "iss" claim plus the given roles, and expires after the
// configured duration.
func (m *TokenManager) CreateToken(subject string, roles []string) (string, error) {
	if !m.Enabled() || m.issuer == "" || m.duration == 0 {
		return "", ErrInvalidTokenParams
	}

	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.duration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Roles: roles,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(m.signKey)
	if err != nil {
		return "", fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return tokenString, nil
}

// ParseToken validates a raw JWT string and resolves its principal.
//
// Validation includes signature verification, the issuer claim, and the
// expiration claim. Expired tokens are reported as [ErrTokenIsExpired];
// every other validation failure is normalised to [ErrTokenInvalid] so
// that callers do not need to inspect low-level JWT errors.
func (m *TokenManager) ParseToken(tokenString string) (Principal, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return m.signKey, nil
	}, jwt.WithIssuer(m.issuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Principal{}, ErrTokenIsExpired
		}
		return Principal{}, ErrTokenInvalid
	}

	if claims.Subject == "" {
		return Principal{}, ErrTokenInvalid
	}

	return Principal{Subject: claims.Subject, Roles: claims.Roles}, nil
}

// VerifyAPIKey compares a presented API key against the configured bcrypt
// hash. Returns [ErrAPIKeyNotConfigured] when no hash is configured and
// [ErrWrongAPIKey] on mismatch.
func (m *TokenManager) VerifyAPIKey(key string) error {
	if len(m.apiKeyHash) == 0 {
		return ErrAPIKeyNotConfigured
	}
	if err := bcrypt.CompareHashAndPassword(m.apiKeyHash, []byte(key)); err != nil {
		return ErrWrongAPIKey
	}
	return nil
}
