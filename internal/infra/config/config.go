package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	DatabaseURL string

	SecretKey       string
	JWTAlgorithm    string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
	VerifyTokenTTL  time.Duration

	RedisAddress  string
	RedisPassword string
	RedisDB       int
	CacheTTL      time.Duration

	HTTPAddress string
	BaseURL     string

	MailHost     string
	MailPort     int
	MailUsername string
	MailPassword string
	MailFrom     string

	AvatarDir     string
	AvatarBaseURL string

	AllowedOrigins   []string
	AllowCredentials bool
}

var envKeys = []string{
	"DATABASE_URL", "SECRET_KEY", "JWT_ALGORITHM",
	"ACCESS_TOKEN_TTL", "REFRESH_TOKEN_TTL", "VERIFY_TOKEN_TTL",
	"REDIS_ADDRESS", "REDIS_PASSWORD", "REDIS_DB", "CACHE_TTL",
	"HTTP_ADDRESS", "BASE_URL",
	"MAIL_HOST", "MAIL_PORT", "MAIL_USERNAME", "MAIL_PASSWORD", "MAIL_FROM",
	"AVATAR_DIR", "AVATAR_BASE_URL",
	"ALLOWED_ORIGINS", "ALLOW_CREDENTIALS",
}

// Load reads an optional config.json and the environment; env wins.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath(".")

	v.AutomaticEnv()
	for _, key := range envKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, err
		}
	}

	v.SetDefault("JWT_ALGORITHM", "HS256")
	v.SetDefault("ACCESS_TOKEN_TTL", 15*time.Minute)
	v.SetDefault("REFRESH_TOKEN_TTL", 7*24*time.Hour)
	v.SetDefault("VERIFY_TOKEN_TTL", 7*24*time.Hour)
	v.SetDefault("CACHE_TTL", 900*time.Second)
	v.SetDefault("HTTP_ADDRESS", ":8080")
	v.SetDefault("BASE_URL", "http://localhost:8080")
	v.SetDefault("MAIL_PORT", 465)
	v.SetDefault("AVATAR_DIR", "./avatars")
	v.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000"})

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{
		DatabaseURL:      v.GetString("DATABASE_URL"),
		SecretKey:        v.GetString("SECRET_KEY"),
		JWTAlgorithm:     v.GetString("JWT_ALGORITHM"),
		AccessTokenTTL:   v.GetDuration("ACCESS_TOKEN_TTL"),
		RefreshTokenTTL:  v.GetDuration("REFRESH_TOKEN_TTL"),
		VerifyTokenTTL:   v.GetDuration("VERIFY_TOKEN_TTL"),
		RedisAddress:     v.GetString("REDIS_ADDRESS"),
		RedisPassword:    v.GetString("REDIS_PASSWORD"),
		RedisDB:          v.GetInt("REDIS_DB"),
		CacheTTL:         v.GetDuration("CACHE_TTL"),
		HTTPAddress:      v.GetString("HTTP_ADDRESS"),
		BaseURL:          v.GetString("BASE_URL"),
		MailHost:         v.GetString("MAIL_HOST"),
		MailPort:         v.GetInt("MAIL_PORT"),
		MailUsername:     v.GetString("MAIL_USERNAME"),
		MailPassword:     v.GetString("MAIL_PASSWORD"),
		MailFrom:         v.GetString("MAIL_FROM"),
		AvatarDir:        v.GetString("AVATAR_DIR"),
		AvatarBaseURL:    v.GetString("AVATAR_BASE_URL"),
		AllowedOrigins:   v.GetStringSlice("ALLOWED_ORIGINS"),
		AllowCredentials: v.GetBool("ALLOW_CREDENTIALS"),
	}

	for key, val := range map[string]string{
		"DATABASE_URL":  cfg.DatabaseURL,
		"SECRET_KEY":    cfg.SecretKey,
		"REDIS_ADDRESS": cfg.RedisAddress,
	} {
		if val == "" {
			return nil, fmt.Errorf("%s is not set", key)
		}
	}

	return cfg, nil
}
