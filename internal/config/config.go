package config

import (
	"net"
	"strconv"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Auth      AuthConfig      `yaml:"auth"`
	Inventory InventoryConfig `yaml:"inventory"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	BasePath        string        `yaml:"base_path"        env:"SERVER_BASE_PATH"        env-default:"/api"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// AuthConfig holds session and access-control settings.
type AuthConfig struct {
	SessionTTL     time.Duration `yaml:"session_ttl"      env:"AUTH_SESSION_TTL"      env-default:"24h"`
	SweepInterval  time.Duration `yaml:"sweep_interval"   env:"AUTH_SWEEP_INTERVAL"   env-default:"10m"`
	CookieName     string        `yaml:"cookie_name"      env:"AUTH_COOKIE_NAME"      env-default:"session"`
	CookieSecure   bool          `yaml:"cookie_secure"    env:"AUTH_COOKIE_SECURE"    env-default:"false"`
	EnforceRoles   bool          `yaml:"enforce_roles"    env:"AUTH_ENFORCE_ROLES"    env-default:"false"`
	LoginRateLimit int           `yaml:"login_rate_limit" env:"AUTH_LOGIN_RATE_LIMIT" env-default:"10"`
}

// InventoryConfig holds stock-keeping and analytics settings.
type InventoryConfig struct {
	AllowNegativeStock bool   `yaml:"allow_negative_stock" env:"INVENTORY_ALLOW_NEGATIVE_STOCK" env-default:"false"`
	DefaultActor       string `yaml:"default_actor"        env:"INVENTORY_DEFAULT_ACTOR"        env-default:"API_USER"`
	SeedPath           string `yaml:"seed_path"            env:"INVENTORY_SEED_PATH"`
	TrendDays          int    `yaml:"trend_days"           env:"INVENTORY_TREND_DAYS"           env-default:"30"`
	RevenueMonths      int    `yaml:"revenue_months"       env:"INVENTORY_REVENUE_MONTHS"       env-default:"6"`
	TransactionsLimit  int    `yaml:"transactions_limit"   env:"INVENTORY_TRANSACTIONS_LIMIT"   env-default:"50"`
	ExportMaxRows      int    `yaml:"export_max_rows"      env:"INVENTORY_EXPORT_MAX_ROWS"      env-default:"10000"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// Addr returns the host:port listen address.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}
