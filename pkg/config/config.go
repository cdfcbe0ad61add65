package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	// EnvPrefix namespaces every environment variable the service reads.
	EnvPrefix = "LABTRACK"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvDBDSN  = "LABTRACK_DB_DSN"
	EnvDBHost = "LABTRACK_DB_HOST"
	EnvDBUser = "LABTRACK_DB_USER"
	EnvDBName = "LABTRACK_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}

type Config struct {
	App   AppConfig
	DB    DBConfig
	Redis RedisConfig
	JWT   JWTConfig
	Admin AdminConfig
	QR    QRConfig
	Flags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"LABTRACK_APP_ENV" default:"dev"`
	Port         string `envconfig:"LABTRACK_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"LABTRACK_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"LABTRACK_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"LABTRACK_DB_DSN"`
	Driver string `envconfig:"LABTRACK_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"LABTRACK_DB_HOST"`
	LegacyPort     int    `envconfig:"LABTRACK_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"LABTRACK_DB_USER"`
	LegacyPassword string `envconfig:"LABTRACK_DB_PASSWORD"`
	LegacyName     string `envconfig:"LABTRACK_DB_NAME"`
	LegacySSLMode  string `envconfig:"LABTRACK_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"LABTRACK_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"LABTRACK_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"LABTRACK_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"LABTRACK_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"LABTRACK_REDIS_URL"`
	Address      string        `envconfig:"LABTRACK_REDIS_ADDR" default:"localhost:6379"`
	Password     string        `envconfig:"LABTRACK_REDIS_PASSWORD"`
	DB           int           `envconfig:"LABTRACK_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"LABTRACK_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"LABTRACK_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"LABTRACK_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"LABTRACK_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"LABTRACK_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret            string `envconfig:"LABTRACK_JWT_SECRET" default:"labtrack-dev-secret"`
	Issuer            string `envconfig:"LABTRACK_JWT_ISSUER" default:"labtrack"`
	ExpirationMinutes int    `envconfig:"LABTRACK_JWT_EXPIRATION_MINUTES" default:"60"`
	SessionTTLMinutes int    `envconfig:"LABTRACK_SESSION_TTL_MINUTES" default:"720"`
}

// SessionTTL returns the admin session lifetime configured in minutes.
func (j JWTConfig) SessionTTL() time.Duration {
	if j.SessionTTLMinutes <= 0 {
		return 0
	}
	return time.Duration(j.SessionTTLMinutes) * time.Minute
}

// AdminConfig carries the demo console credential. There is no user store;
// the admin console is gated by this single configured pair.
type AdminConfig struct {
	Email    string `envconfig:"LABTRACK_ADMIN_EMAIL" default:"admin@lab.com"`
	Password string `envconfig:"LABTRACK_ADMIN_PASSWORD" default:"admin123"`
}

type QRConfig struct {
	// ServiceURL is the external QR rendering endpoint. The generated image
	// URL is ServiceURL?size=<Size>&data=<encoded target>.
	ServiceURL  string `envconfig:"LABTRACK_QR_SERVICE_URL" default:"https://api.qrserver.com/v1/create-qr-code/"`
	Size        string `envconfig:"LABTRACK_QR_SIZE" default:"300x300"`
	FrontendURL string `envconfig:"LABTRACK_FRONTEND_URL" default:"https://labtrack.lovableproject.com"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"LABTRACK_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
