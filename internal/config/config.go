package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Nomes dos bancos lógicos usados pela aplicação
const (
	AdvertiserDatabase = "advertiser"
	PublisherDatabase  = "publisher"
	OfferwallDatabase  = "offerwall"
)

type Config struct {
	App             App                 `mapstructure:",squash"`
	Server          Server              `mapstructure:",squash"`
	Auth            Auth                `mapstructure:",squash"`
	Wallet          Wallet              `mapstructure:",squash"`
	Upload          Upload              `mapstructure:",squash"`
	Cors            Cors                `mapstructure:",squash"`
	OfferExpirySync OfferExpirySync     `mapstructure:",squash"`
	Databases       map[string]Database `mapstructure:"-"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	Name            string
	DSN             string
	Driver          string
	Password        string
	URL             string
	User            string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Env      string `mapstructure:"app_env"`
}

type Auth struct {
	Secret     string        `mapstructure:"auth_secret"`
	TokenTTL   time.Duration `mapstructure:"auth_token_ttl"`
	BcryptCost int           `mapstructure:"auth_bcrypt_cost"`
}

type Wallet struct {
	MinTopUp float64 `mapstructure:"wallet_min_top_up"`
	MaxTopUp float64 `mapstructure:"wallet_max_top_up"`
}

type Upload struct {
	MaxBytes int64 `mapstructure:"upload_max_bytes"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type OfferExpirySync struct {
	CronSchedule string `mapstructure:"offer_expiry_sync_cron"`
	Enabled      bool   `mapstructure:"offer_expiry_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("APP_ENV", "development")

	for _, name := range []string{AdvertiserDatabase, PublisherDatabase, OfferwallDatabase} {
		prefix := strings.ToUpper(name)
		viper.SetDefault(prefix+"_DATABASE_DRIVER", "postgres")
		viper.SetDefault(prefix+"_DATABASE_URL", "localhost:5432/"+name)
		viper.SetDefault(prefix+"_DATABASE_USER", "postgres")
		viper.SetDefault(prefix+"_DATABASE_PASSWORD", "root")
		viper.SetDefault(prefix+"_DATABASE_SSLMODE", "disable")
		viper.SetDefault(prefix+"_DATABASE_MAX_OPEN_CONNS", 10)
		viper.SetDefault(prefix+"_DATABASE_MAX_IDLE_CONNS", 5)
		viper.SetDefault(prefix+"_DATABASE_CONN_MAX_LIFETIME", "30m")
	}

	viper.SetDefault("AUTH_SECRET", "your_secret_key")
	viper.SetDefault("AUTH_TOKEN_TTL", "24h")
	viper.SetDefault("AUTH_BCRYPT_COST", 10)

	viper.SetDefault("WALLET_MIN_TOP_UP", 10)
	viper.SetDefault("WALLET_MAX_TOP_UP", 1000000)
	viper.SetDefault("UPLOAD_MAX_BYTES", 5<<20) // 5MB

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")

	viper.SetDefault("OFFER_EXPIRY_SYNC_CRON", "0 2 * * *") // Todos os dias às 2h da manhã
	viper.SetDefault("OFFER_EXPIRY_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Databases = make(map[string]Database, 3)
	for _, name := range []string{AdvertiserDatabase, PublisherDatabase, OfferwallDatabase} {
		config.Databases[name] = loadDatabase(name)
	}

	return config, nil
}

// IsProduction indica se a aplicação roda em produção
func (c *Config) IsProduction() bool {
	return c.App.Env == "production" || c.App.Env == "prod"
}

// loadDatabase monta a configuração de um banco lógico a partir das chaves com prefixo
func loadDatabase(name string) Database {
	prefix := strings.ToUpper(name) + "_DATABASE_"

	db := Database{
		Name:            name,
		Driver:          viper.GetString(prefix + "DRIVER"),
		Password:        viper.GetString(prefix + "PASSWORD"),
		URL:             viper.GetString(prefix + "URL"),
		User:            viper.GetString(prefix + "USER"),
		SSLMode:         viper.GetString(prefix + "SSLMODE"),
		MaxOpenConns:    viper.GetInt(prefix + "MAX_OPEN_CONNS"),
		MaxIdleConns:    viper.GetInt(prefix + "MAX_IDLE_CONNS"),
		ConnMaxLifetime: viper.GetDuration(prefix + "CONN_MAX_LIFETIME"),
	}

	db.DSN = fmt.Sprintf(
		"%s://%s:%s@%s?sslmode=%s",
		db.Driver,
		db.User,
		db.Password,
		db.URL,
		db.SSLMode,
	)

	return db
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
