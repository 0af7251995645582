package config

import (
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"dropscout/internal/log"
)

type Config struct {
	ScanEndpoint     string  `mapstructure:"SCAN_ENDPOINT"`
	ScanLanguage     string  `mapstructure:"SCAN_LANGUAGE"`
	ScanTimeoutSec   int     `mapstructure:"SCAN_TIMEOUT_SECONDS"`
	ScanCacheTTLSec  int     `mapstructure:"SCAN_CACHE_TTL_SECONDS"`
	FetchTimeoutSec  int     `mapstructure:"FETCH_TIMEOUT_SECONDS"`
	BannerThreshold  float64 `mapstructure:"BANNER_THRESHOLD"`
	OverlayThreshold float64 `mapstructure:"OVERLAY_THRESHOLD"`
	DisputeURL       string  `mapstructure:"DISPUTE_URL"`
	DisclaimerURL    string  `mapstructure:"DISCLAIMER_URL"`
	BasicAuthUser    string  `mapstructure:"BASIC_AUTH_USER"`
	BasicAuthPass    string  `mapstructure:"BASIC_AUTH_PASS"`
	IsDev            string  `mapstructure:"IS_DEV"`
}

var AppConfig *Config

func LoadEnv() {
	v := viper.New()

	v.SetConfigFile(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		log.Logger.Warn(".env file not found, using environment only")
	}

	v.AutomaticEnv()

	v.SetDefault("SCAN_ENDPOINT", "https://api.antidrop.fr/scan")
	v.SetDefault("SCAN_LANGUAGE", "fr")
	v.SetDefault("SCAN_TIMEOUT_SECONDS", 30)
	v.SetDefault("SCAN_CACHE_TTL_SECONDS", 0)
	v.SetDefault("FETCH_TIMEOUT_SECONDS", 30)
	v.SetDefault("BANNER_THRESHOLD", 50)
	v.SetDefault("OVERLAY_THRESHOLD", 90)
	v.SetDefault("DISPUTE_URL", "https://antidrop.fr/contact")
	v.SetDefault("DISCLAIMER_URL", "https://antidrop.fr/disclaimer")
	v.SetDefault("BASIC_AUTH_USER", "")
	v.SetDefault("BASIC_AUTH_PASS", "")
	v.SetDefault("IS_DEV", "false")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		log.Logger.Fatal("Failed to unmarshal config", zap.Error(err))
	}

	AppConfig = &cfg

	if AppConfig.BannerThreshold > AppConfig.OverlayThreshold {
		log.Logger.Fatal("BANNER_THRESHOLD must not exceed OVERLAY_THRESHOLD",
			zap.Float64("banner", AppConfig.BannerThreshold),
			zap.Float64("overlay", AppConfig.OverlayThreshold),
		)
	}
	if AppConfig.ScanEndpoint == "" {
		log.Logger.Fatal("SCAN_ENDPOINT must be set")
	}
}
