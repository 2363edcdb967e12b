package config

import "time"

type Auth struct {
	// Username and PasswordHash identify the single operator account.
	// PasswordHash is a bcrypt hash of the password.
	Username     string `env:"AUTH_USERNAME,required"`
	PasswordHash string `env:"AUTH_PASSWORD_HASH,required"`

	JWTSecret string        `env:"AUTH_JWT_SECRET,required"`
	TokenTTL  time.Duration `env:"AUTH_TOKEN_TTL" envDefault:"12h"`
}
