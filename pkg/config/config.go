package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App      AppConfig
	DB       DBConfig
	JWT      JWTConfig
	HTTP     HTTPConfig
	Supabase SupabaseConfig
	Storage  StorageConfig
	Catalog  CatalogConfig
	Shipping ShippingConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// DBConfig configuración de PostgreSQL.
// Si DatabaseURL no está vacío, se usa como connection string completo (ej. DATABASE_URL de Supabase).
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	MaxConns    int32
	MinConns    int32
	ForceIPv4   bool // conectar solo por IPv4 (contenedores sin IPv6)
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

// JWTConfig configuración de JWT para las sesiones de clientes.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host        string
	Port        int
	CORSOrigins string // lista separada por comas; "*" permite cualquiera
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// SupabaseConfig acceso REST de solo lectura al backend gestionado (herramientas de desarrollo).
type SupabaseConfig struct {
	URL     string
	AnonKey string
}

// Configured indica si hay credenciales reales (no los placeholders del .env de ejemplo).
func (c SupabaseConfig) Configured() bool {
	return c.URL != "" && c.AnonKey != "" &&
		!strings.Contains(c.URL, "your-project") &&
		!strings.Contains(c.AnonKey, "your-anon-key")
}

// StorageConfig almacenamiento de imágenes de producto.
// Con S3Endpoint vacío las URLs se construyen sobre PublicBaseURL sin firmar.
type StorageConfig struct {
	Bucket            string
	PublicBaseURL     string // ej. https://<proyecto>.supabase.co/storage/v1/object/public
	S3Endpoint        string // endpoint S3-compatible; vacío = sin firma
	S3Region          string
	S3AccessKeyID     string
	S3SecretAccessKey string
	S3PathStyle       bool
	PresignTTLMinutes int
}

// CatalogConfig parámetros del catálogo.
type CatalogConfig struct {
	SynonymsPath string // YAML con la tabla de sinónimos; vacío = tabla por defecto
	PageSize     int
}

// ShippingConfig parámetros de envío.
type ShippingConfig struct {
	DefaultRate decimal.Decimal // tarifa cuando la ciudad no tiene zona
	Currency    string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, DB_HOST, JWT_SECRET, SUPABASE_URL, etc.
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
	defaultRate, err := decimal.NewFromString(getString(v, "SHIPPING_DEFAULT_RATE", "450.00"))
	if err != nil {
		return nil, fmt.Errorf("SHIPPING_DEFAULT_RATE inválido: %w", err)
	}

	// El frontend original usa el prefijo VITE_; se aceptan ambos nombres.
	supabaseURL := getString(v, "SUPABASE_URL", getString(v, "VITE_SUPABASE_URL", ""))
	anonKey := getString(v, "SUPABASE_ANON_KEY", getString(v, "VITE_SUPABASE_ANON_KEY", ""))

	publicBase := getString(v, "STORAGE_PUBLIC_BASE_URL", "")
	if publicBase == "" && supabaseURL != "" {
		publicBase = strings.TrimRight(supabaseURL, "/") + "/storage/v1/object/public"
	}

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "storefront-api"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "storefront"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
			MaxConns:    int32(getInt(v, "DB_MAX_CONNS", 10)),
			MinConns:    int32(getInt(v, "DB_MIN_CONNS", 1)),
			ForceIPv4:   getBool(v, "DB_FORCE_IPV4", false),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60*24),
			Issuer:     getString(v, "JWT_ISSUER", "storefront-api"),
		},
		HTTP: HTTPConfig{
			Host:        getString(v, "HTTP_HOST", "0.0.0.0"),
			Port:        getInt(v, "HTTP_PORT", 8080),
			CORSOrigins: getString(v, "CORS_ORIGINS", "*"),
		},
		Supabase: SupabaseConfig{
			URL:     supabaseURL,
			AnonKey: anonKey,
		},
		Storage: StorageConfig{
			Bucket:            getString(v, "STORAGE_BUCKET", "products"),
			PublicBaseURL:     publicBase,
			S3Endpoint:        getString(v, "STORAGE_S3_ENDPOINT", ""),
			S3Region:          getString(v, "STORAGE_S3_REGION", "us-east-1"),
			S3AccessKeyID:     getString(v, "STORAGE_S3_ACCESS_KEY_ID", ""),
			S3SecretAccessKey: getString(v, "STORAGE_S3_SECRET_ACCESS_KEY", ""),
			S3PathStyle:       getBool(v, "STORAGE_S3_PATH_STYLE", true),
			PresignTTLMinutes: getInt(v, "STORAGE_PRESIGN_TTL_MINUTES", 60),
		},
		Catalog: CatalogConfig{
			SynonymsPath: getString(v, "CATALOG_SYNONYMS_PATH", ""),
			PageSize:     getInt(v, "CATALOG_PAGE_SIZE", 12),
		},
		Shipping: ShippingConfig{
			DefaultRate: defaultRate,
			Currency:    getString(v, "SHIPPING_CURRENCY", "PHP"),
		},
	}
	return cfg, nil
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

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		return v.GetBool(key)
	}
	return def
}
