package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App   AppConfig
	DB    DBConfig
	Redis RedisConfig
	JWT   JWTConfig
	Login LoginConfig
	Admin AdminConfig
}

type AppConfig struct {
	Port         string
	Env          string
	LogLevel     string
	SeedVaccines bool
	BcryptCost   int
}

type DBConfig struct {
	Host        string
	Port        string
	User        string
	Password    string
	Name        string
	SSLMode     string
	TimeZone    string
	AutoMigrate bool // apply the embedded migrations at startup
}

// RedisConfig is optional; an empty Host disables login lockout.
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret       string
	AccessExpiry time.Duration
}

type LoginConfig struct {
	MaxAttempts int
	Window      time.Duration
}

// AdminConfig describes the admin account ensured at startup. Empty Email skips it.
type AdminConfig struct {
	Email    string
	Password string
	FullName string
}

func (c RedisConfig) Enabled() bool {
	return c.Host != ""
}

func (c AdminConfig) Enabled() bool {
	return c.Email != "" && c.Password != ""
}

// LoadConfig reads .env when present and lets environment variables override it.
func LoadConfig() (*Config, error) {
	return load(".env")
}

func load(file string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(file)
	v.SetConfigType("env")
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	accessExpiry, err := time.ParseDuration(v.GetString("JWT_ACCESS_EXPIRY"))
	if err != nil {
		accessExpiry = 30 * time.Minute
	}

	loginWindow, err := time.ParseDuration(v.GetString("LOGIN_LOCKOUT_WINDOW"))
	if err != nil {
		loginWindow = 15 * time.Minute
	}

	config := &Config{
		App: AppConfig{
			Port:         v.GetString("APP_PORT"),
			Env:          v.GetString("APP_ENV"),
			LogLevel:     v.GetString("LOG_LEVEL"),
			SeedVaccines: v.GetBool("APP_SEED_VACCINES"),
			BcryptCost:   v.GetInt("BCRYPT_COST"),
		},
		DB: DBConfig{
			Host:        v.GetString("DB_HOST"),
			Port:        v.GetString("DB_PORT"),
			User:        v.GetString("DB_USER"),
			Password:    v.GetString("DB_PASSWORD"),
			Name:        v.GetString("DB_NAME"),
			SSLMode:     v.GetString("DB_SSLMODE"),
			TimeZone:    v.GetString("DB_TIMEZONE"),
			AutoMigrate: v.GetBool("DB_AUTO_MIGRATE"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:       v.GetString("JWT_SECRET"),
			AccessExpiry: accessExpiry,
		},
		Login: LoginConfig{
			MaxAttempts: v.GetInt("LOGIN_MAX_ATTEMPTS"),
			Window:      loginWindow,
		},
		Admin: AdminConfig{
			Email:    v.GetString("ADMIN_EMAIL"),
			Password: v.GetString("ADMIN_PASSWORD"),
			FullName: v.GetString("ADMIN_FULL_NAME"),
		},
	}

	if config.JWT.Secret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}

	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("APP_SEED_VACCINES", false)
	v.SetDefault("BCRYPT_COST", 10)

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_NAME", "vaccination")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_TIMEZONE", "UTC")
	v.SetDefault("DB_AUTO_MIGRATE", true)

	v.SetDefault("REDIS_HOST", "")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_ACCESS_EXPIRY", "30m")

	v.SetDefault("LOGIN_MAX_ATTEMPTS", 5)
	v.SetDefault("LOGIN_LOCKOUT_WINDOW", "15m")

	v.SetDefault("ADMIN_EMAIL", "")
	v.SetDefault("ADMIN_PASSWORD", "")
	v.SetDefault("ADMIN_FULL_NAME", "Administrator")
}
