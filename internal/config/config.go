package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const defaultEnvFile = ".env"

// Config captures all runtime configuration organised by concern.
type Config struct {
	Server    ServerConfig
	Site      SiteConfig
	Content   ContentConfig
	I18n      I18nConfig
	Contact   ContactConfig
	Analytics AnalyticsConfig
	Log       LogConfig
}

// ServerConfig configures HTTP server parameters.
type ServerConfig struct {
	Addr           string        `env:"PORTFOLIO_ADDR"`
	Port           string        `env:"PORT" envDefault:"8080"`
	Dev            bool          `env:"PORTFOLIO_DEV"`
	ReadTimeout    time.Duration `env:"PORTFOLIO_READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout   time.Duration `env:"PORTFOLIO_WRITE_TIMEOUT" envDefault:"15s"`
	IdleTimeout    time.Duration `env:"PORTFOLIO_IDLE_TIMEOUT" envDefault:"60s"`
	RequestTimeout time.Duration `env:"PORTFOLIO_REQUEST_TIMEOUT" envDefault:"30s"`
	ShutdownGrace  time.Duration `env:"PORTFOLIO_SHUTDOWN_GRACE" envDefault:"10s"`
}

// SiteConfig describes how the site presents itself to crawlers and share cards.
type SiteConfig struct {
	BaseURL     string `env:"PORTFOLIO_BASE_URL"`
	Name        string `env:"PORTFOLIO_SITE_NAME" envDefault:"Nailah A. M. Portfolio"`
	TwitterSite string `env:"PORTFOLIO_TWITTER_SITE"`
}

// ContentConfig points at on-disk overrides for embedded templates, content and media.
type ContentConfig struct {
	TemplatesDir string        `env:"PORTFOLIO_TEMPLATES_DIR"`
	Dir          string        `env:"PORTFOLIO_CONTENT_DIR"`
	MediaDir     string        `env:"PORTFOLIO_MEDIA_DIR"`
	CacheTTL     time.Duration `env:"PORTFOLIO_CONTENT_CACHE_TTL" envDefault:"5m"`
}

// I18nConfig lists supported languages.
type I18nConfig struct {
	DefaultLang string   `env:"PORTFOLIO_DEFAULT_LANG" envDefault:"en"`
	Langs       []string `env:"PORTFOLIO_LANGS" envSeparator:"," envDefault:"en,id"`
}

// ContactConfig tunes the contact form action.
type ContactConfig struct {
	Delay          time.Duration `env:"PORTFOLIO_CONTACT_DELAY" envDefault:"1s"`
	MinMessageLen  int           `env:"PORTFOLIO_CONTACT_MIN_MESSAGE" envDefault:"10"`
	MaxMessageSize int           `env:"PORTFOLIO_CONTACT_MAX_BYTES" envDefault:"16384"`
}

// AnalyticsConfig is surfaced to templates.
type AnalyticsConfig struct {
	GA4MeasurementID string `env:"PORTFOLIO_GA_MEASUREMENT_ID"`
	Debug            bool   `env:"PORTFOLIO_ANALYTICS_DEBUG"`
}

// LogConfig controls the zap logger.
type LogConfig struct {
	Level string `env:"LOG_LEVEL" envDefault:"info"`
}

// ListenAddr resolves the listen address: PORTFOLIO_ADDR wins, then Cloud Run's PORT.
func (c ServerConfig) ListenAddr() string {
	if addr := strings.TrimSpace(c.Addr); addr != "" {
		return addr
	}
	port := strings.TrimSpace(c.Port)
	if port == "" {
		port = "8080"
	}
	return ":" + port
}

// ValidationError lists the configuration fields that failed validation.
type ValidationError struct {
	Problems map[string]string
}

func (e *ValidationError) Error() string {
	fields := e.Fields()
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+e.Problems[f])
	}
	return "config: invalid configuration: " + strings.Join(parts, "; ")
}

// Fields returns the invalid field names in sorted order.
func (e *ValidationError) Fields() []string {
	out := make([]string, 0, len(e.Problems))
	for k := range e.Problems {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Option customises Load behaviour.
type Option func(*loaderOptions)

type loaderOptions struct {
	envFile      string
	envMap       map[string]string
	useSystemEnv bool
}

// WithEnvFile overrides the .env file path used for local overrides. An empty path disables it.
func WithEnvFile(path string) Option {
	return func(o *loaderOptions) {
		o.envFile = path
	}
}

// WithEnvMap injects an explicit key/value map. Values in the map take precedence over system environment variables.
func WithEnvMap(values map[string]string) Option {
	return func(o *loaderOptions) {
		o.envMap = values
	}
}

// WithoutSystemEnv disables reading the process environment.
func WithoutSystemEnv() Option {
	return func(o *loaderOptions) {
		o.useSystemEnv = false
	}
}

// EnvironmentValues returns the effective environment after applying
// precedence: dotenv < OS env < explicit env map.
func EnvironmentValues(opts ...Option) (map[string]string, error) {
	options := loaderOptions{
		envFile:      defaultEnvFile,
		useSystemEnv: true,
	}
	for _, opt := range opts {
		opt(&options)
	}

	values, err := loadDotEnv(options.envFile)
	if err != nil {
		return nil, err
	}
	if options.useSystemEnv {
		for key, value := range env.ToMap(os.Environ()) {
			values[key] = value
		}
	}
	for key, value := range options.envMap {
		values[key] = value
	}
	return values, nil
}

// Load assembles the configuration from defaults, a .env file, the environment and explicit overrides.
func Load(opts ...Option) (Config, error) {
	values, err := EnvironmentValues(opts...)
	if err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: values}); err != nil {
		return Config{}, fmt.Errorf("config: parse env: %w", err)
	}
	normalize(&cfg)
	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func normalize(cfg *Config) {
	cfg.Site.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.Site.BaseURL), "/")
	cfg.I18n.DefaultLang = strings.ToLower(strings.TrimSpace(cfg.I18n.DefaultLang))
	langs := make([]string, 0, len(cfg.I18n.Langs))
	seen := map[string]bool{}
	for _, l := range cfg.I18n.Langs {
		l = strings.ToLower(strings.TrimSpace(l))
		if l == "" || seen[l] {
			continue
		}
		seen[l] = true
		langs = append(langs, l)
	}
	if cfg.I18n.DefaultLang != "" && !seen[cfg.I18n.DefaultLang] {
		langs = append([]string{cfg.I18n.DefaultLang}, langs...)
	}
	cfg.I18n.Langs = langs
}

func validateConfig(cfg Config) error {
	problems := map[string]string{}
	if cfg.I18n.DefaultLang == "" {
		problems["I18n.DefaultLang"] = "must not be empty"
	}
	if cfg.Contact.Delay < 0 {
		problems["Contact.Delay"] = "must not be negative"
	}
	if cfg.Contact.MinMessageLen < 1 {
		problems["Contact.MinMessageLen"] = "must be at least 1"
	}
	if cfg.Server.ReadTimeout <= 0 {
		problems["Server.ReadTimeout"] = "must be positive"
	}
	if cfg.Server.WriteTimeout <= 0 {
		problems["Server.WriteTimeout"] = "must be positive"
	}
	if cfg.Site.BaseURL != "" && !strings.HasPrefix(cfg.Site.BaseURL, "http://") && !strings.HasPrefix(cfg.Site.BaseURL, "https://") {
		problems["Site.BaseURL"] = "must be an absolute http(s) URL"
	}
	if len(problems) == 0 {
		return nil
	}
	return &ValidationError{Problems: problems}
}

func loadDotEnv(path string) (map[string]string, error) {
	values := map[string]string{}
	if path == "" {
		return values, nil
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		absPath = path
	}
	parsed, err := godotenv.Read(absPath)
	if errors.Is(err, os.ErrNotExist) {
		return values, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: unable to read %s: %w", absPath, err)
	}
	for k, v := range parsed {
		values[k] = v
	}
	return values, nil
}
