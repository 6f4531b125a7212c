// Package auth implements token handling for the authentication and
// authorization pipeline stages: HS256 JWT issue/parse with issuer and
// expiry validation, and optional verification of a statically configured,
// bcrypt-hashed API key.
package auth
