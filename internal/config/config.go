package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	Auth      AuthConfig
	Storage   StorageConfig
	Redis     RedisConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
	Report    ReportConfig
	Printer   PrinterConfig
}

type AppConfig struct {
	Name     string
	Env      string
	Port     string
	Debug    bool
	Timezone string
}

type DatabaseConfig struct {
	Driver   string
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
	Timezone string
}

type JWTConfig struct {
	Secret string
	Expiry time.Duration
}

type AuthConfig struct {
	ManagerPIN string
}

type StorageConfig struct {
	Driver        string
	Path          string
	UploadMaxSize int64
	S3            S3Config
}

type S3Config struct {
	Endpoint  string
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
	PublicURL string
}

type RedisConfig struct {
	URL string
}

type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

type RateLimitConfig struct {
	Requests int
	Duration int
}

type ReportConfig struct {
	DefaultLocale  string
	CurrencySymbol string
	TempDir        string
	ChromePath     string
	PDFTimeout     time.Duration
}

type PrinterConfig struct {
	Type      string
	USBPath   string
	Address   string
	CharWidth int
	StoreName string
}

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}

	viper.SetDefault("APP_NAME", "cafeteria-pos")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_DEBUG", true)
	viper.SetDefault("APP_TIMEZONE", "Local")
	viper.SetDefault("DB_DRIVER", "postgres")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_NAME", "cafeteria")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_SSL_MODE", "disable")
	viper.SetDefault("JWT_SECRET", "change-this-secret-in-production")
	viper.SetDefault("JWT_EXPIRY_HOURS", 12)
	viper.SetDefault("MANAGER_PIN", "0000")
	viper.SetDefault("STORAGE_DRIVER", "local")
	viper.SetDefault("STORAGE_PATH", "./storage/images")
	viper.SetDefault("UPLOAD_MAX_SIZE", 5242880)
	viper.SetDefault("S3_REGION", "us-east-1")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:5173")
	viper.SetDefault("CORS_ALLOWED_HEADERS", []string{})
	viper.SetDefault("RATE_LIMIT_REQUESTS", 100)
	viper.SetDefault("RATE_LIMIT_DURATION", 60)
	viper.SetDefault("REPORT_DEFAULT_LOCALE", "en")
	viper.SetDefault("REPORT_CURRENCY_SYMBOL", "€")
	viper.SetDefault("REPORT_TEMP_DIR", os.TempDir())
	viper.SetDefault("PDF_TIMEOUT_SECONDS", 30)
	viper.SetDefault("PRINTER_TYPE", "none")
	viper.SetDefault("PRINTER_CHAR_WIDTH", 32)
	viper.SetDefault("PRINTER_STORE_NAME", "Cafeteria")

	return &Config{
		App: AppConfig{
			Name:     viper.GetString("APP_NAME"),
			Env:      viper.GetString("APP_ENV"),
			Port:     viper.GetString("APP_PORT"),
			Debug:    viper.GetBool("APP_DEBUG"),
			Timezone: viper.GetString("APP_TIMEZONE"),
		},
		Database: DatabaseConfig{
			Driver:   viper.GetString("DB_DRIVER"),
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			SSLMode:  viper.GetString("DB_SSL_MODE"),
			Timezone: viper.GetString("APP_TIMEZONE"),
		},
		JWT: JWTConfig{
			Secret: viper.GetString("JWT_SECRET"),
			Expiry: time.Duration(viper.GetInt("JWT_EXPIRY_HOURS")) * time.Hour,
		},
		Auth: AuthConfig{
			ManagerPIN: viper.GetString("MANAGER_PIN"),
		},
		Storage: StorageConfig{
			Driver:        viper.GetString("STORAGE_DRIVER"),
			Path:          viper.GetString("STORAGE_PATH"),
			UploadMaxSize: viper.GetInt64("UPLOAD_MAX_SIZE"),
			S3: S3Config{
				Endpoint:  viper.GetString("S3_ENDPOINT"),
				Region:    viper.GetString("S3_REGION"),
				Bucket:    viper.GetString("S3_BUCKET"),
				AccessKey: viper.GetString("S3_ACCESS_KEY"),
				SecretKey: viper.GetString("S3_SECRET_KEY"),
				PublicURL: viper.GetString("S3_PUBLIC_URL"),
			},
		},
		Redis: RedisConfig{
			URL: viper.GetString("REDIS_URL"),
		},
		CORS: CORSConfig{
			AllowedOrigins: viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
			AllowedMethods: viper.GetStringSlice("CORS_ALLOWED_METHODS"),
			AllowedHeaders: viper.GetStringSlice("CORS_ALLOWED_HEADERS"),
		},
		RateLimit: RateLimitConfig{
			Requests: viper.GetInt("RATE_LIMIT_REQUESTS"),
			Duration: viper.GetInt("RATE_LIMIT_DURATION"),
		},
		Report: ReportConfig{
			DefaultLocale:  viper.GetString("REPORT_DEFAULT_LOCALE"),
			CurrencySymbol: viper.GetString("REPORT_CURRENCY_SYMBOL"),
			TempDir:        viper.GetString("REPORT_TEMP_DIR"),
			ChromePath:     viper.GetString("CHROME_PATH"),
			PDFTimeout:     time.Duration(viper.GetInt("PDF_TIMEOUT_SECONDS")) * time.Second,
		},
		Printer: PrinterConfig{
			Type:      viper.GetString("PRINTER_TYPE"),
			USBPath:   viper.GetString("PRINTER_USB_PATH"),
			Address:   viper.GetString("PRINTER_ADDRESS"),
			CharWidth: viper.GetInt("PRINTER_CHAR_WIDTH"),
			StoreName: viper.GetString("PRINTER_STORE_NAME"),
		},
	}
}

// Location resolves the business time zone used for bucketing and day keys.
func (c *AppConfig) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}

// DSN builds the driver specific connection string. The session time zone
// follows the business time zone so SQL bucketing matches Go bucketing.
func (c *DatabaseConfig) DSN() string {
	tz := c.Timezone
	switch c.Driver {
	case "mysql":
		if tz == "" {
			tz = "Local"
		}
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=%s",
			c.User, c.Password, c.Host, c.Port, c.Name, url.QueryEscape(tz))
	default:
		dsn := "host=" + c.Host +
			" user=" + c.User +
			" password=" + c.Password +
			" dbname=" + c.Name +
			" port=" + c.Port +
			" sslmode=" + c.SSLMode
		if tz != "" && tz != "Local" {
			dsn += " TimeZone=" + tz
		}
		return dsn
	}
}
