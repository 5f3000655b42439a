package config

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultSessionCookie is the cookie the identity provider stores its session token in
	DefaultSessionCookie = "__session"
)

var (
	ErrMissingIdentityKey = errors.New("IDENTITY_PUBLIC_KEY must be set in production environments")
	ErrInvalidRateLimit   = errors.New("rate limit must be positive")
	ErrInvalidCacheSize   = errors.New("cache size must be positive when the cache is enabled")
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Identity IdentityConfig
	Security SecurityConfig
	Cache    CacheConfig
	Stats    StatsConfig
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	ShutdownTimeout  time.Duration
	CORSAllowOrigins []string
}

type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	AutoMigrate     bool
	SeedOnStart     bool
}

// IdentityConfig describes how session tokens from the identity provider are verified
type IdentityConfig struct {
	PublicKey  *rsa.PublicKey
	Issuer     string
	CookieName string
	ClockSkew  time.Duration

	// PrivateKey is only set when a development keypair was generated locally
	PrivateKey *rsa.PrivateKey
}

type SecurityConfig struct {
	RateLimitPerSecond int
	RateLimitBurst     int
}

type CacheConfig struct {
	Enabled         bool
	TTL             time.Duration
	MaxEntries      int
	CleanupInterval time.Duration
}

type StatsConfig struct {
	Location    *time.Location
	RecentLimit int
}

func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", "8080"),
			Host:            getEnv("SERVER_HOST", "localhost"),
			Environment:     getEnv("APP_ENV", "development"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 30*time.Second),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "budget_user"),
			Password:        getEnv("DB_PASSWORD", "budget_password"),
			Name:            getEnv("DB_NAME", "budget_db"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 10),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
			AutoMigrate:     getBoolEnv("AUTO_MIGRATE", false),
			SeedOnStart:     getBoolEnv("SEED_DATABASE", false),
		},
		Identity: IdentityConfig{
			Issuer:     getEnv("IDENTITY_ISSUER", ""),
			CookieName: getEnv("IDENTITY_SESSION_COOKIE", DefaultSessionCookie),
			ClockSkew:  getDurationEnv("IDENTITY_CLOCK_SKEW", 5*time.Second),
		},
		Security: SecurityConfig{
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 10),
			RateLimitBurst:     getIntEnv("RATE_LIMIT_BURST", 20),
		},
		Cache: CacheConfig{
			Enabled:         getBoolEnv("CACHE_ENABLED", true),
			TTL:             getDurationEnv("CACHE_TTL", 5*time.Minute),
			MaxEntries:      getIntEnv("CACHE_MAX_ENTRIES", 256),
			CleanupInterval: getDurationEnv("CACHE_CLEANUP_INTERVAL", time.Minute),
		},
		Stats: StatsConfig{
			RecentLimit: getIntEnv("RECENT_TRANSACTIONS_LIMIT", 10),
		},
	}

	config.Server.CORSAllowOrigins = config.loadCORSAllowOrigins()

	location, err := loadLocation(getEnv("APP_TIMEZONE", "UTC"))
	if err != nil {
		return nil, err
	}
	config.Stats.Location = location

	config.Identity.PublicKey, config.Identity.PrivateKey, err = config.loadIdentityKey()
	if err != nil {
		return nil, fmt.Errorf("failed to load identity key: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks values that would otherwise fail later at request time
func (c *Config) Validate() error {
	if c.IsProduction() && c.Identity.PublicKey == nil {
		return ErrMissingIdentityKey
	}
	if c.Security.RateLimitPerSecond <= 0 || c.Security.RateLimitBurst <= 0 {
		return ErrInvalidRateLimit
	}
	if c.Cache.Enabled && c.Cache.MaxEntries <= 0 {
		return ErrInvalidCacheSize
	}
	return nil
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// URL returns the connection string in URL form, as expected by lib/pq and golang-migrate
func (c *DatabaseConfig) URL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode)
}

func (c *ServerConfig) Address() string {
	return c.Host + ":" + c.Port
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Server.Environment == "testing"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func loadLocation(name string) (*time.Location, error) {
	location, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("invalid APP_TIMEZONE %q: %w", name, err)
	}
	return location, nil
}

// loadIdentityKey loads the RSA public key used to verify session tokens.
// Priority order:
// 1. IDENTITY_PUBLIC_KEY (base64 encoded PEM) when set
// 2. nothing in production, Validate reports the missing key
// 3. a generated keypair in development and testing so tokens can be minted locally
func (c *Config) loadIdentityKey() (*rsa.PublicKey, *rsa.PrivateKey, error) {
	publicKeyB64 := os.Getenv("IDENTITY_PUBLIC_KEY")

	if publicKeyB64 != "" {
		publicKeyBytes, err := base64.StdEncoding.DecodeString(publicKeyB64)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to decode IDENTITY_PUBLIC_KEY: %w", err)
		}

		publicKey, err := loadRSAPublicKey(publicKeyBytes)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to parse public key: %w", err)
		}

		slog.Info("Loaded identity provider public key from environment")
		return publicKey, nil, nil
	}

	if c.IsProduction() {
		return nil, nil, nil
	}

	slog.Warn("IDENTITY_PUBLIC_KEY not set, generating a development keypair")
	privateKey, publicKey, err := GenerateRSAKeyPair()
	if err != nil {
		return nil, nil, err
	}
	return publicKey, privateKey, nil
}

// loadCORSAllowOrigins retrieves CORS allowed origins from environment or returns default
func (c *Config) loadCORSAllowOrigins() []string {
	corsOrigins := os.Getenv("CORS_ALLOW_ORIGINS")

	if corsOrigins == "" {
		if c.IsProduction() {
			slog.Warn("CORS_ALLOW_ORIGINS not set in production environment, defaulting to '*'")
		}
		return []string{"*"}
	}

	origins := strings.Split(corsOrigins, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}

	slog.Info("CORS allowed origins configured", "origins", origins)
	return origins
}

// GenerateRSAKeyPair generates a new RSA key pair
func GenerateRSAKeyPair() (*rsa.PrivateKey, *rsa.PublicKey, error) {
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate RSA key pair: %w", err)
	}

	return privateKey, &privateKey.PublicKey, nil
}

// EncodePublicKey returns the base64 PEM form accepted by IDENTITY_PUBLIC_KEY
func EncodePublicKey(publicKey *rsa.PublicKey) (string, error) {
	der, err := x509.MarshalPKIXPublicKey(publicKey)
	if err != nil {
		return "", fmt.Errorf("failed to marshal public key: %w", err)
	}

	pemBytes := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der})
	return base64.StdEncoding.EncodeToString(pemBytes), nil
}

// loadRSAPublicKey loads an RSA public key from PEM format
func loadRSAPublicKey(pemData []byte) (*rsa.PublicKey, error) {
	block, _ := pem.Decode(pemData)
	if block == nil {
		return nil, errors.New("failed to parse PEM block containing the key")
	}

	publicKey, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse public key: %w", err)
	}

	rsaPublicKey, ok := publicKey.(*rsa.PublicKey)
	if !ok {
		return nil, errors.New("not an RSA public key")
	}

	return rsaPublicKey, nil
}
