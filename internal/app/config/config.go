// Package config loads the application configuration from the environment.
package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds every runtime setting. Values are immutable after Load; the
// components that depend on them (token service, sink, stores) receive them
// through constructors.
type Config struct {
	Port string `envconfig:"PORT" default:"8080"`
	Env  string `envconfig:"APP_ENV" default:"development"`

	// JWTSecret signs every issued token. The server refuses to start without it.
	JWTSecret  string        `envconfig:"JWT_SECRET"`
	JWTExpires time.Duration `envconfig:"JWT_EXPIRES_IN" default:"1h"`

	// LogDir holds the combined/error/access stores.
	LogDir string `envconfig:"LOG_DIR" default:"logs"`

	// DatabaseURL selects postgres when set; otherwise SQLitePath is used.
	DatabaseURL   string `envconfig:"DATABASE_URL"`
	SQLitePath    string `envconfig:"SQLITE_PATH" default:"auth_backend.db"`
	RunMigrations bool   `envconfig:"RUN_MIGRATIONS" default:"true"`

	// RedisAddr enables the login throttle when set.
	RedisAddr     string `envconfig:"REDIS_ADDR"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`

	LoginMaxFailures   int           `envconfig:"LOGIN_MAX_FAILURES" default:"10"`
	LoginFailureWindow time.Duration `envconfig:"LOGIN_FAILURE_WINDOW" default:"15m"`

	// SeedAdminEmail/SeedAdminPassword bootstrap an admin account on first run.
	SeedAdminEmail    string `envconfig:"SEED_ADMIN_EMAIL"`
	SeedAdminPassword string `envconfig:"SEED_ADMIN_PASSWORD"`
}

// Load reads the configuration from environment variables.
func Load() (Config, error) {
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Production reports whether the deployment runs in production mode, which
// makes 500-level error messages generic.
func (c Config) Production() bool {
	return c.Env == "production"
}
