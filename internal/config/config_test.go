package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if errs := cfg.Validate(); len(errs) != 0 {
		t.Fatalf("Default().Validate() = %v, want no errors", errs)
	}
	if cfg.ImageDir != "img" {
		t.Errorf("ImageDir = %q, want %q", cfg.ImageDir, "img")
	}
	if cfg.Quality != 100 {
		t.Errorf("Quality = %d, want 100", cfg.Quality)
	}
	if cfg.Image.Opacity != 0.5 {
		t.Errorf("Image.Opacity = %v, want 0.5", cfg.Image.Opacity)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantField string
	}{
		{"empty image dir", func(c *Config) { c.ImageDir = " " }, "image_dir"},
		{"bad log level", func(c *Config) { c.LogLevel = "verbose" }, "log_level"},
		{"quality zero", func(c *Config) { c.Quality = 0 }, "quality"},
		{"quality too high", func(c *Config) { c.Quality = 101 }, "quality"},
		{"font size zero", func(c *Config) { c.Text.FontSize = 0 }, "text.font_size"},
		{"bad colour", func(c *Config) { c.Text.Color = "white" }, "text.color"},
		{"opacity above one", func(c *Config) { c.Image.Opacity = 1.5 }, "image.opacity"},
		{"negative opacity", func(c *Config) { c.Image.Opacity = -0.1 }, "image.opacity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			errs := cfg.Validate()
			if len(errs) != 1 {
				t.Fatalf("Validate() returned %d errors, want 1: %v", len(errs), errs)
			}
			if errs[0].Field != tt.wantField {
				t.Errorf("Validate() field = %q, want %q", errs[0].Field, tt.wantField)
			}
		})
	}
}

func TestFromViperRejectsInvalid(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.Set("quality", 0)
	v.Set("text.color", "nope")

	_, err := FromViper(v)
	if err == nil {
		t.Fatal("FromViper() error = nil, want validation error")
	}

	var verrs ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("FromViper() error = %T, want ValidationErrors", err)
	}
	if len(verrs) != 2 {
		t.Errorf("len(ValidationErrors) = %d, want 2", len(verrs))
	}
	if !strings.Contains(err.Error(), "quality") {
		t.Errorf("error %q does not mention quality", err.Error())
	}
}

func TestLoadEnvironmentOverride(t *testing.T) {
	testChdir(t, t.TempDir())
	t.Setenv("WATERMARK_IMAGE_DIR", "photos")
	t.Setenv("WATERMARK_TEXT_FONT_SIZE", "32")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.ImageDir != "photos" {
		t.Errorf("ImageDir = %q, want %q", cfg.ImageDir, "photos")
	}
	if cfg.Text.FontSize != 32 {
		t.Errorf("Text.FontSize = %v, want 32", cfg.Text.FontSize)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want default %q", cfg.LogLevel, "info")
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	testChdir(t, dir)

	content := "quality: 90\nimage:\n  opacity: 0.25\n"
	if err := os.WriteFile(filepath.Join(dir, "watermark.yaml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Quality != 90 {
		t.Errorf("Quality = %d, want 90", cfg.Quality)
	}
	if cfg.Image.Opacity != 0.25 {
		t.Errorf("Image.Opacity = %v, want 0.25", cfg.Image.Opacity)
	}
}

func TestTextColor(t *testing.T) {
	cfg := Default()
	r, g, b := cfg.TextColor().RGB255()
	if r != 255 || g != 255 || b != 255 {
		t.Errorf("TextColor() = (%d, %d, %d), want white", r, g, b)
	}
}

// testChdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, which needs Go 1.24).
func testChdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
