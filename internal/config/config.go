// Package config loads watermark manager settings from defaults, an optional
// watermark.yaml in the working directory, a .env file and WATERMARK_*
// environment variables, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment overrides, e.g. WATERMARK_IMAGE_DIR.
const EnvPrefix = "WATERMARK"

// Config holds all settings for a watermark manager process.
type Config struct {
	// ImageDir is the directory holding input, watermark and output images.
	ImageDir string `mapstructure:"image_dir"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `mapstructure:"log_level"`
	// Quality is the JPEG encoding quality used for every write (1-100).
	Quality int `mapstructure:"quality"`

	Text  TextConfig  `mapstructure:"text"`
	Image ImageConfig `mapstructure:"image"`
}

// TextConfig controls text watermarks.
type TextConfig struct {
	FontSize float64 `mapstructure:"font_size"`
	// Color is a hex colour such as "#ffffff".
	Color string `mapstructure:"color"`
}

// ImageConfig controls image watermarks.
type ImageConfig struct {
	// Opacity of the watermark image when composited, 0..1.
	Opacity float64 `mapstructure:"opacity"`
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	return &Config{
		ImageDir: "img",
		LogLevel: "info",
		Quality:  100,
		Text: TextConfig{
			FontSize: 64,
			Color:    "#ffffff",
		},
		Image: ImageConfig{
			Opacity: 0.5,
		},
	}
}

// SetDefaults registers default values with v so that environment
// variables are picked up for every key by Unmarshal.
func SetDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("image_dir", defaults.ImageDir)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("quality", defaults.Quality)
	v.SetDefault("text.font_size", defaults.Text.FontSize)
	v.SetDefault("text.color", defaults.Text.Color)
	v.SetDefault("image.opacity", defaults.Image.Opacity)
}

// Load reads the configuration and validates it.
func Load() (*Config, error) {
	// .env is optional; a missing file is not an error.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("watermark")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return FromViper(v)
}

// FromViper unmarshals and validates the configuration held by v.
func FromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// ValidationError describes a single invalid setting.
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is the set of problems found by Validate.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return "invalid configuration: " + strings.Join(msgs, "; ")
}

// Validate returns every problem with the configuration, or nil.
func (c *Config) Validate() []ValidationError {
	var errs []ValidationError

	if strings.TrimSpace(c.ImageDir) == "" {
		errs = append(errs, ValidationError{Field: "image_dir", Value: c.ImageDir, Message: "must not be empty"})
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, ValidationError{Field: "log_level", Value: c.LogLevel, Message: "must be one of debug, info, warn, error"})
	}

	if c.Quality < 1 || c.Quality > 100 {
		errs = append(errs, ValidationError{Field: "quality", Value: c.Quality, Message: "must be between 1 and 100"})
	}

	if c.Text.FontSize <= 0 {
		errs = append(errs, ValidationError{Field: "text.font_size", Value: c.Text.FontSize, Message: "must be positive"})
	}

	if _, err := colorful.Hex(c.Text.Color); err != nil {
		errs = append(errs, ValidationError{Field: "text.color", Value: c.Text.Color, Message: "must be a hex colour like #ffffff"})
	}

	if c.Image.Opacity < 0 || c.Image.Opacity > 1 {
		errs = append(errs, ValidationError{Field: "image.opacity", Value: c.Image.Opacity, Message: "must be between 0 and 1"})
	}

	return errs
}

// TextColor returns the parsed text colour. Validate must have passed.
func (c *Config) TextColor() colorful.Color {
	col, err := colorful.Hex(c.Text.Color)
	if err != nil {
		return colorful.Color{R: 1, G: 1, B: 1}
	}
	return col
}
