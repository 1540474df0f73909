package domain

import (
	"bytes"
	_ "embed"
	"fmt"
	"net/url"
	"strings"
	"text/template"
)

//go:embed config_template.toml
var configTemplateContent string

// Default configuration values.
const (
	DefaultAppURL      = "http://localhost:3000/"
	DefaultLang        = "en"
	DefaultImageFormat = "image/png"
	DefaultJPEGQuality = 90
	DefaultLogLevel    = "info"
)

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Warnings []string     `toml:"-"`
	Server   ServerConfig `toml:"server"`
	Locale   LocaleConfig `toml:"locale"`
	Image    ImageConfig  `toml:"image"`
	Log      LogConfig    `toml:"log"`
}

// ServerConfig holds forge settings from [server] section.
type ServerConfig struct {
	AppURL string `toml:"app_url,omitempty"` // Public base URL of the forge, sub-path included; empty derives it from the remote
	Remote string `toml:"remote,omitempty"`  // Git remote used to derive owner/repo (default: origin)
}

// LocaleConfig holds localization settings from [locale] section.
type LocaleConfig struct {
	Lang string `toml:"lang,omitempty"` // BCP 47 language tag for month/day names
}

// ImageConfig holds image conversion settings from [image] section.
type ImageConfig struct {
	Format      string `toml:"format,omitempty"`       // Target MIME type for convert
	JPEGQuality int    `toml:"jpeg_quality,omitempty"` // 1-100, used when format is image/jpeg
}

// LogConfig holds logging settings from [log] section.
type LogConfig struct {
	Level string `toml:"level,omitempty"` // Log level: debug, info, warn, error
}

// NewDefaultConfig returns a Config populated with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{Remote: "origin"},
		Locale: LocaleConfig{Lang: DefaultLang},
		Image: ImageConfig{
			Format:      DefaultImageFormat,
			JPEGQuality: DefaultJPEGQuality,
		},
		Log: LogConfig{Level: DefaultLogLevel},
	}
}

// Validate checks the configuration and records non-fatal problems in Warnings.
func (c *Config) Validate() {
	if c.Server.AppURL != "" {
		u, err := url.Parse(c.Server.AppURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			c.Warnings = append(c.Warnings, fmt.Sprintf("server.app_url %q is not an absolute http(s) URL; ignoring it", c.Server.AppURL))
			c.Server.AppURL = ""
		}
	}
	if q := c.Image.JPEGQuality; q < 1 || q > 100 {
		c.Warnings = append(c.Warnings, fmt.Sprintf("image.jpeg_quality %d out of range 1-100; using %d", q, DefaultJPEGQuality))
		c.Image.JPEGQuality = DefaultJPEGQuality
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		c.Warnings = append(c.Warnings, fmt.Sprintf("log.level %q is unknown; using %s", c.Log.Level, DefaultLogLevel))
		c.Log.Level = DefaultLogLevel
	}
}

// AppBaseURL returns the configured app URL, or DefaultAppURL when unset,
// with exactly one trailing slash.
func (c *Config) AppBaseURL() string {
	if c.Server.AppURL == "" {
		return DefaultAppURL
	}
	return strings.TrimRight(c.Server.AppURL, "/") + "/"
}

// ConfigInfo holds information about a config file.
type ConfigInfo struct {
	Path    string
	Content string
	Exists  bool
}

type templateData struct {
	AppURL      string
	Remote      string
	Lang        string
	ImageFormat string
	LogLevel    string
	JPEGQuality int
	AppURLSet   bool
}

// RenderConfigTemplate renders the commented config template from cfg.
func RenderConfigTemplate(cfg *Config) string {
	data := templateData{
		AppURL:      cfg.AppBaseURL(),
		Remote:      cfg.Server.Remote,
		Lang:        cfg.Locale.Lang,
		ImageFormat: cfg.Image.Format,
		JPEGQuality: cfg.Image.JPEGQuality,
		LogLevel:    cfg.Log.Level,
		AppURLSet:   cfg.Server.AppURL != "",
	}

	tmpl, err := template.New("config").Delims("<<", ">>").Parse(configTemplateContent)
	if err != nil {
		// Should never happen with embedded template
		panic(fmt.Sprintf("failed to parse config template: %v", err))
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		panic(fmt.Sprintf("failed to execute config template: %v", err))
	}

	return buf.String()
}
