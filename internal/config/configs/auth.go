package configs

import "time"

// Auth configures password hashing and session-token signing. The secret
// is process-wide signing key material loaded once at startup; override
// the default outside of local development.
type Auth struct {
	// Secret is the HMAC key used to sign session tokens.
	Secret string `env:"SECRET" envDefault:"adboard-dev-secret-change-me"`
	// TokenTTL is how long an issued session token stays valid.
	TokenTTL time.Duration `env:"TOKEN_TTL" envDefault:"24h"`
	// BcryptCost is the bcrypt work factor for password hashing.
	BcryptCost int `env:"BCRYPT_COST" envDefault:"10"`
}
