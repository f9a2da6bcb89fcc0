package notionhub

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config groups the module's configuration. Zero values are filled in by
// defaultConfig; construct through [New] or [LoadConfigFromEnv] rather than
// a struct literal.
type Config struct {
	API      APIConfig      `envPrefix:"NH_API_"`
	Redis    RedisConfig    `envPrefix:"NH_REDIS_"`
	Guard    GuardConfig    `envPrefix:"NH_GUARD_"`
	Security SecurityConfig `envPrefix:"NH_SECURITY_"`
}

// APIConfig locates the console backend.
type APIConfig struct {
	// BaseURL is the backend root, e.g. "https://console.example.com/api".
	BaseURL string `env:"BASE_URL"`
	// Timeout bounds every backend call.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"15s"`
}

// RedisConfig locates the durable credential store. Ignored when an
// explicit store is injected through the builder.
type RedisConfig struct {
	Addr     string `env:"ADDR"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB" envDefault:"0"`
	// KeyPrefix namespaces the credential keys.
	KeyPrefix string `env:"KEY_PREFIX" envDefault:"nh"`
}

// GuardConfig shapes the route guard's decisions.
type GuardConfig struct {
	// HomePath is the authenticated home every redirect-home lands on.
	HomePath string `env:"HOME_PATH" envDefault:"/dashboard"`
	// LoginPath is the redirect-login destination.
	LoginPath string `env:"LOGIN_PATH" envDefault:"/login"`
	// PublicPaths are reachable without a credential. Empty means the
	// session defaults (/login, /register).
	PublicPaths []string `env:"PUBLIC_PATHS" envSeparator:","`
	// UniversalPaths are reachable by every authenticated user. Empty
	// means the session defaults (/, /dashboard, /profile).
	UniversalPaths []string `env:"UNIVERSAL_PATHS" envSeparator:","`
}

// SecurityConfig carries the authorization switches.
type SecurityConfig struct {
	// AdminBypass keeps the source system's behavior of granting every
	// permission to administrator alias roles. Disable to make permission
	// checks bind administrators too.
	AdminBypass bool `env:"ADMIN_BYPASS" envDefault:"true"`
}

func defaultConfig() Config {
	return Config{
		API: APIConfig{
			Timeout: 15 * time.Second,
		},
		Redis: RedisConfig{
			KeyPrefix: "nh",
		},
		Guard: GuardConfig{
			HomePath:  "/dashboard",
			LoginPath: "/login",
		},
		Security: SecurityConfig{
			AdminBypass: true,
		},
	}
}

// Validate rejects configurations the builder cannot wire.
func (c Config) Validate() error {
	if c.API.BaseURL == "" {
		return ErrMissingBaseURL
	}
	if c.API.Timeout <= 0 {
		return ErrInvalidTimeout
	}

	guardPaths := []string{c.Guard.HomePath, c.Guard.LoginPath}
	guardPaths = append(guardPaths, c.Guard.PublicPaths...)
	guardPaths = append(guardPaths, c.Guard.UniversalPaths...)
	for _, p := range guardPaths {
		if !strings.HasPrefix(p, "/") {
			return fmt.Errorf("%w: %q", ErrInvalidGuardPath, p)
		}
	}
	return nil
}

// LoadConfigFromEnv builds a [Config] from the process environment,
// optionally seeded by a .env file in the working directory. Unset
// variables keep their defaults.
func LoadConfigFromEnv() (Config, error) {
	// A missing .env file is the normal production case.
	_ = godotenv.Load()

	cfg := defaultConfig()
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}
