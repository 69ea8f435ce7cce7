package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Drivers de persistencia soportados para las colecciones.
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverS3       = "s3"
	DriverMongo    = "mongo"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	JWT     JWTConfig
	Storage StorageConfig
	DB      DBConfig
	S3      S3Config
	Mongo   MongoConfig
	Seed    SeedConfig
	Report  ReportConfig
	Audit   AuditConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// JWTConfig configuración de JWT.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// StorageConfig selecciona el backend donde se serializan las colecciones.
type StorageConfig struct {
	Driver     string // memory, sqlite, postgres, s3, mongo
	SQLitePath string
}

// DBConfig configuración de PostgreSQL.
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// S3Config bucket S3 (o MinIO) donde cada colección es un objeto.
type S3Config struct {
	Bucket    string
	Region    string
	Endpoint  string // opcional, para MinIO
	Prefix    string
	PathStyle bool
}

// MongoConfig conexión a MongoDB.
type MongoConfig struct {
	URI    string
	DBName string
}

// SeedConfig datos del administrador inicial.
type SeedConfig struct {
	AdminUsername string
	AdminPassword string // vacío = contraseña de desarrollo con advertencia
}

// ReportConfig exportación programada del resumen semanal.
type ReportConfig struct {
	CronSchedule string // vacío = deshabilitado
}

// AuditConfig límite de la bitácora de auditoría.
type AuditConfig struct {
	Limit int
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, JWT_SECRET, STORAGE_DRIVER, etc.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "farm-ledger"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			Issuer:     getString(v, "JWT_ISSUER", "farm-ledger"),
		},
		Storage: StorageConfig{
			Driver:     strings.ToLower(getString(v, "STORAGE_DRIVER", DriverSQLite)),
			SQLitePath: getString(v, "SQLITE_PATH", "data/farm-ledger.db"),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "farm_ledger"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		S3: S3Config{
			Bucket:    getString(v, "S3_BUCKET", ""),
			Region:    getString(v, "S3_REGION", "us-east-1"),
			Endpoint:  getString(v, "S3_ENDPOINT", ""),
			Prefix:    getString(v, "S3_PREFIX", "farm-ledger/"),
			PathStyle: strings.EqualFold(getString(v, "S3_PATH_STYLE", "false"), "true"),
		},
		Mongo: MongoConfig{
			URI:    getString(v, "MONGODB_URI", "mongodb://localhost:27017"),
			DBName: getString(v, "MONGODB_DB_NAME", "farm_ledger"),
		},
		Seed: SeedConfig{
			AdminUsername: getString(v, "SEED_ADMIN_USERNAME", "admin"),
			AdminPassword: getString(v, "SEED_ADMIN_PASSWORD", ""),
		},
		Report: ReportConfig{
			CronSchedule: getString(v, "REPORT_CRON_SCHEDULE", ""),
		},
		Audit: AuditConfig{
			Limit: getInt(v, "AUDIT_LOG_LIMIT", 1000),
		},
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate verifica los campos que no tienen un valor por defecto razonable.
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case DriverMemory, DriverSQLite, DriverPostgres, DriverMongo:
	case DriverS3:
		if c.S3.Bucket == "" {
			return fmt.Errorf("config: S3_BUCKET es requerido con STORAGE_DRIVER=s3")
		}
	default:
		return fmt.Errorf("config: STORAGE_DRIVER desconocido %q", c.Storage.Driver)
	}
	if c.Audit.Limit <= 0 {
		return fmt.Errorf("config: AUDIT_LOG_LIMIT debe ser positivo")
	}
	return nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
