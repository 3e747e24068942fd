package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Cache     CacheConfig     `yaml:"cache"`
	Mail      MailConfig      `yaml:"mail"`
	Notify    NotifyConfig    `yaml:"notify"`
	Site      SiteConfig      `yaml:"site"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"false"`
}

// AuthConfig holds token settings for admin sessions.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"tooldir"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"12h"`
	BcryptCost     int           `yaml:"bcrypt_cost"      env:"AUTH_BCRYPT_COST"      env-default:"12"`
}

// CacheConfig holds TTLs for the in-process read cache.
type CacheConfig struct {
	Capacity    int           `yaml:"capacity"     env:"CACHE_CAPACITY"     env-default:"1000"`
	ToolTTL     time.Duration `yaml:"tool_ttl"     env:"CACHE_TOOL_TTL"     env-default:"60s"`
	ListTTL     time.Duration `yaml:"list_ttl"     env:"CACHE_LIST_TTL"     env-default:"30s"`
	CategoryTTL time.Duration `yaml:"category_ttl" env:"CACHE_CATEGORY_TTL" env-default:"5m"`
	PostTTL     time.Duration `yaml:"post_ttl"     env:"CACHE_POST_TTL"     env-default:"5m"`
}

// MailConfig selects and configures the outbound mail transport.
type MailConfig struct {
	Driver   string `yaml:"driver"   env:"MAIL_DRIVER"   env-default:"log"`
	Host     string `yaml:"host"     env:"MAIL_HOST"`
	Port     int    `yaml:"port"     env:"MAIL_PORT"     env-default:"587"`
	Username string `yaml:"username" env:"MAIL_USERNAME"`
	Password string `yaml:"password" env:"MAIL_PASSWORD"`
	From     string `yaml:"from"     env:"MAIL_FROM"     env-default:"no-reply@tooldir.local"`
}

// NotifyConfig tunes the asynchronous notification dispatcher.
type NotifyConfig struct {
	Workers        int           `yaml:"workers"         env:"NOTIFY_WORKERS"         env-default:"2"`
	QueueSize      int           `yaml:"queue_size"      env:"NOTIFY_QUEUE_SIZE"      env-default:"256"`
	MaxRetries     uint64        `yaml:"max_retries"     env:"NOTIFY_MAX_RETRIES"     env-default:"3"`
	InitialBackoff time.Duration `yaml:"initial_backoff" env:"NOTIFY_INITIAL_BACKOFF" env-default:"500ms"`
	SendTimeout    time.Duration `yaml:"send_timeout"    env:"NOTIFY_SEND_TIMEOUT"    env-default:"10s"`
}

// SiteConfig describes the public site.
type SiteConfig struct {
	BaseURL string `yaml:"base_url" env:"SITE_BASE_URL" env-default:"http://localhost:3000"`
	Name    string `yaml:"name"     env:"SITE_NAME"     env-default:"Tool Directory"`
}

// ToolURL returns the public page URL of a tool.
func (s SiteConfig) ToolURL(toolID string) string {
	return strings.TrimRight(s.BaseURL, "/") + "/tools/" + toolID
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig throttles anonymous write endpoints per client IP.
type RateLimitConfig struct {
	SubmissionsPerMinute int `yaml:"submissions_per_minute" env:"RATE_LIMIT_SUBMISSIONS_PER_MINUTE" env-default:"5"`
	LoginPerMinute       int `yaml:"login_per_minute"       env:"RATE_LIMIT_LOGIN_PER_MINUTE"       env-default:"10"`
}
