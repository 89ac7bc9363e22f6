package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/mgpai22/captions/internal/caption"
	"github.com/mgpai22/captions/internal/subtitle"
)

// Config represents the application configuration
type Config struct {
	Defaults DefaultsConfig `yaml:"defaults"`
	S3       S3Config       `yaml:"s3"`
	Builder  BuilderConfig  `yaml:"builder"`
}

// DefaultsConfig holds default output settings
type DefaultsConfig struct {
	Format    string `yaml:"format"`
	OutputDir string `yaml:"output_dir"`
}

// S3Config holds the upload target used when no bucket flag is given
type S3Config struct {
	Bucket string `yaml:"bucket"`
	Region string `yaml:"region"`
	Prefix string `yaml:"prefix"`
}

// BuilderConfig controls how segments become captions
type BuilderConfig struct {
	MaxCharsPerLine int    `yaml:"max_chars_per_line"`
	MaxLinesPerCue  int    `yaml:"max_lines_per_cue"`
	MaxDuration     string `yaml:"max_duration"`
}

// environment variables that override file values
const (
	EnvFormat    = "CAPTIONS_FORMAT"
	EnvOutputDir = "CAPTIONS_OUTPUT_DIR"
	EnvS3Bucket  = "CAPTIONS_S3_BUCKET"
	EnvS3Prefix  = "CAPTIONS_S3_PREFIX"
	EnvAWSRegion = "AWS_REGION"
)

// DefaultConfig returns configuration with default values
func DefaultConfig() *Config {
	return &Config{
		Defaults: DefaultsConfig{
			Format: string(subtitle.FormatSRT),
		},
		Builder: BuilderConfig{
			MaxCharsPerLine: 42,
			MaxLinesPerCue:  2,
			MaxDuration:     "7s",
		},
	}
}

// AppDir returns the application directory (~/.captions)
func AppDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".captions"
	}
	return filepath.Join(home, ".captions")
}

// ConfigPath returns the default config file path
func ConfigPath() string {
	return filepath.Join(AppDir(), "config.yaml")
}

// Load reads config from file, returns default if not exists
func Load(fs afero.Fs, path string) (*Config, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// Save writes config to file
func (c *Config) Save(fs afero.Fs, path string) error {
	if err := fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := afero.WriteFile(fs, path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// ApplyEnv overrides values with non-empty environment variables
func (c *Config) ApplyEnv() {
	overrides := []struct {
		env    string
		target *string
	}{
		{EnvFormat, &c.Defaults.Format},
		{EnvOutputDir, &c.Defaults.OutputDir},
		{EnvS3Bucket, &c.S3.Bucket},
		{EnvS3Prefix, &c.S3.Prefix},
		{EnvAWSRegion, &c.S3.Region},
	}
	for _, o := range overrides {
		if v := os.Getenv(o.env); v != "" {
			*o.target = v
		}
	}
}

// Validate checks values that cannot be caught by YAML decoding
func (c *Config) Validate() error {
	if _, err := subtitle.ParseFormat(c.Defaults.Format); err != nil {
		return fmt.Errorf("defaults.format: %w", err)
	}
	if c.Builder.MaxCharsPerLine <= 0 {
		return fmt.Errorf("builder.max_chars_per_line must be positive, got %d", c.Builder.MaxCharsPerLine)
	}
	if c.Builder.MaxLinesPerCue <= 0 {
		return fmt.Errorf("builder.max_lines_per_cue must be positive, got %d", c.Builder.MaxLinesPerCue)
	}
	if _, err := c.MaxDuration(); err != nil {
		return err
	}
	return nil
}

// MaxDuration parses builder.max_duration; empty disables duration splits
func (c *Config) MaxDuration() (time.Duration, error) {
	if c.Builder.MaxDuration == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Builder.MaxDuration)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("builder.max_duration: invalid duration %q", c.Builder.MaxDuration)
	}
	return d, nil
}

// NewBuilder returns a caption builder configured from the builder section
func (c *Config) NewBuilder() (*caption.Builder, error) {
	maxDuration, err := c.MaxDuration()
	if err != nil {
		return nil, err
	}
	return &caption.Builder{
		MaxCharsPerLine: c.Builder.MaxCharsPerLine,
		MaxLinesPerCue:  c.Builder.MaxLinesPerCue,
		MaxDuration:     maxDuration,
	}, nil
}
