package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Assets holds the static asset URLs the interview client renders.
type Assets struct {
	LogoURL       string `mapstructure:"logo_url"`
	MaleIconURL   string `mapstructure:"male_icon_url"`
	FemaleIconURL string `mapstructure:"female_icon_url"`
}

// Config holds application configuration loaded once at startup and passed
// explicitly into the components that need it.
type Config struct {
	Env  string `mapstructure:"env"`
	Port string `mapstructure:"port"`

	MongoURI      string `mapstructure:"-"`
	MongoDatabase string `mapstructure:"mongo_database"`
	RedisAddr     string `mapstructure:"-"`

	JWTSecret  string `mapstructure:"-"`
	AccessCode string `mapstructure:"-"` // institutional dashboard access code

	Enumerator string `mapstructure:"enumerator"` // attribution stamped on submitted records

	DraftTTL    time.Duration `mapstructure:"draft_ttl"`
	SnapshotTTL time.Duration `mapstructure:"snapshot_ttl"`

	// ChallengeKeywords is the fixed keyword list matched against free-text
	// challenge answers on the dashboard.
	ChallengeKeywords []string `mapstructure:"challenge_keywords"`

	CORSAllowedOrigins string `mapstructure:"cors_allowed_origins"`

	Assets Assets `mapstructure:"assets"`
}

// Load reads configuration from an optional config file and environment
// variables, with working defaults for local development.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")

	v.SetDefault("env", "local")
	v.SetDefault("port", "8080")
	v.SetDefault("mongo_database", "milletsurvey")
	v.SetDefault("enumerator", "MSU Research Team")
	v.SetDefault("draft_ttl", "24h")
	v.SetDefault("snapshot_ttl", "60s")
	v.SetDefault("cors_allowed_origins", "*")
	v.SetDefault("challenge_keywords", []string{
		"water", "drought", "fertilizer", "seed", "market", "labor", "pest", "disease", "rain",
	})
	v.SetDefault("assets.logo_url", "https://i.ibb.co/nNzB12S4/msu-logo.png")
	v.SetDefault("assets.male_icon_url", "https://cdn-icons-png.flaticon.com/512/4140/4140048.png")
	v.SetDefault("assets.female_icon_url", "https://cdn-icons-png.flaticon.com/512/4140/4140047.png")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv("mongo_uri", "MONGO_URI")
	_ = v.BindEnv("redis_uri", "REDIS_URI")
	_ = v.BindEnv("jwt_secret", "JWT_SECRET")
	_ = v.BindEnv("access_code", "ACCESS_CODE")
	_ = v.BindEnv("env", "APP_ENV")
	_ = v.BindEnv("port", "PORT")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	cfg.MongoURI = v.GetString("mongo_uri")
	if cfg.MongoURI == "" {
		cfg.MongoURI = "mongodb://localhost:27017"
	}

	cfg.RedisAddr = strings.TrimPrefix(v.GetString("redis_uri"), "redis://")
	if cfg.RedisAddr == "" {
		cfg.RedisAddr = "localhost:6379"
	}

	cfg.JWTSecret = v.GetString("jwt_secret")
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "super-secret-key-change-in-production"
	}

	cfg.AccessCode = v.GetString("access_code")
	if cfg.AccessCode == "" {
		cfg.AccessCode = "1677"
	}

	return &cfg, nil
}
