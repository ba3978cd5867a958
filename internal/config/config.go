package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Log      LogConfig
	CORS     CORSConfig
	Session  SessionConfig
	Upload   UploadConfig
	Analysis AnalysisConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// SessionConfig holds session token signing and workspace expiry settings.
type SessionConfig struct {
	Secret        string        `mapstructure:"secret"`
	Issuer        string        `mapstructure:"issuer"`
	TTL           time.Duration `mapstructure:"ttl"`
	SweepInterval time.Duration `mapstructure:"sweep_interval"`
}

// UploadConfig holds upload limits. MaxFileSizeMB of 0 disables the size check.
type UploadConfig struct {
	MaxFileSizeMB int64 `mapstructure:"max_file_size_mb"`
}

// MaxBytes returns the size cap in bytes, or 0 when unlimited.
func (u *UploadConfig) MaxBytes() int64 {
	if u.MaxFileSizeMB <= 0 {
		return 0
	}
	return u.MaxFileSizeMB * 1024 * 1024
}

// AnalysisConfig selects and tunes the document analyzer.
type AnalysisConfig struct {
	Provider    string `mapstructure:"provider"`
	TimeoutSecs int    `mapstructure:"timeout_secs"`
	TimeZone    string `mapstructure:"time_zone"`
}

// Location resolves TimeZone, falling back to UTC.
func (a *AnalysisConfig) Location() *time.Location {
	if a.TimeZone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(a.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Load reads configuration from environment variables with the DOCANALYZER_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("DOCANALYZER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8000")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://localhost:3001")

	// Session defaults
	v.SetDefault("session.secret", "change-me-in-production")
	v.SetDefault("session.issuer", "docanalyzer")
	v.SetDefault("session.ttl", "12h")
	v.SetDefault("session.sweep_interval", "5m")

	// Upload defaults
	v.SetDefault("upload.max_file_size_mb", 0)

	// Analysis defaults
	v.SetDefault("analysis.provider", "stub")
	v.SetDefault("analysis.timeout_secs", 30)
	v.SetDefault("analysis.time_zone", "UTC")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":             "DOCANALYZER_SERVER_PORT",
		"server.read_timeout":     "DOCANALYZER_SERVER_READ_TIMEOUT",
		"server.write_timeout":    "DOCANALYZER_SERVER_WRITE_TIMEOUT",
		"server.environment":      "DOCANALYZER_SERVER_ENVIRONMENT",
		"log.level":               "DOCANALYZER_LOG_LEVEL",
		"log.format":              "DOCANALYZER_LOG_FORMAT",
		"cors.allowed_origins":    "DOCANALYZER_CORS_ALLOWED_ORIGINS",
		"session.secret":          "DOCANALYZER_SESSION_SECRET",
		"session.issuer":          "DOCANALYZER_SESSION_ISSUER",
		"session.ttl":             "DOCANALYZER_SESSION_TTL",
		"session.sweep_interval":  "DOCANALYZER_SESSION_SWEEP_INTERVAL",
		"upload.max_file_size_mb": "DOCANALYZER_UPLOAD_MAX_FILE_SIZE_MB",
		"analysis.provider":       "DOCANALYZER_ANALYSIS_PROVIDER",
		"analysis.timeout_secs":   "DOCANALYZER_ANALYSIS_TIMEOUT_SECS",
		"analysis.time_zone":      "DOCANALYZER_ANALYSIS_TIME_ZONE",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Hosting platforms set PORT. Use it if DOCANALYZER_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("DOCANALYZER_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	cfg.Session = SessionConfig{
		Secret:        v.GetString("session.secret"),
		Issuer:        v.GetString("session.issuer"),
		TTL:           v.GetDuration("session.ttl"),
		SweepInterval: v.GetDuration("session.sweep_interval"),
	}
	cfg.Upload = UploadConfig{
		MaxFileSizeMB: v.GetInt64("upload.max_file_size_mb"),
	}
	cfg.Analysis = AnalysisConfig{
		Provider:    v.GetString("analysis.provider"),
		TimeoutSecs: v.GetInt("analysis.timeout_secs"),
		TimeZone:    v.GetString("analysis.time_zone"),
	}

	return cfg, nil
}
