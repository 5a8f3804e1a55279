package config

import (
	"os"
	"time"
)

var JWTSecret []byte
var JWTExpiration = 24 * time.Hour

// LoadJWT reads the signing secret from the environment. Called after
// godotenv so .env values are honored.
func LoadJWT() {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "your-secret-key-change-this-in-production"
	}
	JWTSecret = []byte(secret)
}
