package config

import (
	"fmt"
	"os"
	"strconv"
)

const (
	// HS256 keys shorter than the hash output weaken the MAC.
	minJWTSecretBytes = 32

	defaultTokenIssuer     = "wellspring"
	defaultExpirationHours = 24
)

// JWTConfig holds the signing parameters for session tokens.
type JWTConfig struct {
	Secret          string
	Issuer          string
	ExpirationHours int
}

// NewJWTConfig reads JWT_SECRET (required, at least 32 bytes), JWT_ISSUER
// and JWT_EXPIRATION_HOURS from the environment. Tokens minted under one
// issuer are rejected by a server configured with another, so staging and
// production deployments can share a secret without sharing sessions.
func NewJWTConfig() (*JWTConfig, error) {
	cfg := &JWTConfig{
		Secret:          os.Getenv("JWT_SECRET"),
		Issuer:          os.Getenv("JWT_ISSUER"),
		ExpirationHours: defaultExpirationHours,
	}
	if cfg.Issuer == "" {
		cfg.Issuer = defaultTokenIssuer
	}

	if raw := os.Getenv("JWT_EXPIRATION_HOURS"); raw != "" {
		hours, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid JWT_EXPIRATION_HOURS %q: %w", raw, err)
		}
		cfg.ExpirationHours = hours
	}

	if cfg.Secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required but not set")
	}
	if len(cfg.Secret) < minJWTSecretBytes {
		return nil, fmt.Errorf("JWT_SECRET must be at least %d bytes, got %d", minJWTSecretBytes, len(cfg.Secret))
	}
	if cfg.ExpirationHours < 1 {
		return nil, fmt.Errorf("JWT_EXPIRATION_HOURS must be positive, got %d", cfg.ExpirationHours)
	}
	return cfg, nil
}
