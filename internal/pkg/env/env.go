package env

import (
	"os"
	"strconv"

	"github.com/gofiber/fiber/v2/log"
	"github.com/joho/godotenv"
)

// Env holds the key/value pairs read from the .env file. Process environment
// variables take precedence so container deployments can override the file.
var Env map[string]string

// GetEnv returns the value for key, preferring the process environment over
// the loaded .env file, and def when neither is set.
func GetEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	if val, ok := Env[key]; ok {
		return val
	}
	return def
}

// GetEnvInt returns the integer value for key, or def when unset or not a
// number.
func GetEnvInt(key string, def int) int {
	raw := GetEnv(key, "")
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		log.Warnf("[Env] %s=%q is not a number, using %d", key, raw, def)
		return def
	}
	return n
}

// SetupEnvFile loads the first .env file found relative to the working
// directory. A missing file is fine, the process environment alone is a valid
// configuration (Docker, CI).
func SetupEnvFile() {
	envFiles := []string{
		".env",
		"../../.env", // from cmd/migrate to the project root
	}

	for _, envFile := range envFiles {
		parsed, err := godotenv.Read(envFile)
		if err == nil {
			Env = parsed
			return
		}
	}

	Env = map[string]string{}
	log.Info("[Env] no .env file found, using process environment only")
}

// IsDev reports whether the app runs in development mode.
func IsDev() bool {
	return GetEnv("APP_ENV", "prod") == "dev"
}
