package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// Mode constants
	ModeParse = "parse"
	ModeServe = "serve"

	// Document type constants
	DocTypeReceipt  = "receipt"
	DocTypeDelivery = "delivery"

	// Default values
	DefaultLogLevel      = "info"
	DefaultMaxFileSize   = 20 * 1024 * 1024 // 20MB
	DefaultMinTextLength = 10
)

// Config holds all configuration for the document ingestion service.
type Config struct {
	// Mode is "parse" for one-shot extraction of file arguments, or
	// "serve" for the stdio tool server.
	Mode string

	// DocType selects the pipeline in parse mode.
	DocType string

	// Extraction configuration
	MaxFileSize   int64 // Maximum upload size in bytes
	MinTextLength int   // Minimum extracted text to accept a strategy result
	TempDir       string

	// Application configuration
	Version    string
	ServerName string
	LogLevel   string
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Mode:          ModeParse,
		DocType:       DocTypeReceipt,
		MaxFileSize:   DefaultMaxFileSize,
		MinTextLength: DefaultMinTextLength,
		TempDir:       "", // system default
		Version:       "1.0.0",
		ServerName:    "docingest",
		LogLevel:      DefaultLogLevel,
	}
}

// LoadFromFlags parses command line flags and returns a configuration.
func LoadFromFlags() (*Config, error) {
	cfg := DefaultConfig()

	setupViperEnvironment(cfg)
	defineCommandLineFlags(cfg)
	bindFlagsToViper()
	setupUsageMessage()

	pflag.Parse()

	populateConfigFromViper(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// setupViperEnvironment configures viper with environment variables and defaults.
func setupViperEnvironment(cfg *Config) {
	viper.SetEnvPrefix("DOCINGEST")
	viper.AutomaticEnv()

	viper.SetDefault("mode", cfg.Mode)
	viper.SetDefault("type", cfg.DocType)
	viper.SetDefault("maxfilesize", cfg.MaxFileSize)
	viper.SetDefault("mintextlength", cfg.MinTextLength)
	viper.SetDefault("tempdir", cfg.TempDir)
	viper.SetDefault("loglevel", cfg.LogLevel)
}

// defineCommandLineFlags sets up all command line flags.
func defineCommandLineFlags(cfg *Config) {
	pflag.String("mode", cfg.Mode, "Run mode: 'parse' for one-shot extraction, 'serve' for the stdio tool server")
	pflag.String("type", cfg.DocType, "Document type in parse mode: 'receipt' or 'delivery'")
	pflag.Int64("maxfilesize", cfg.MaxFileSize, "Maximum upload size in bytes")
	pflag.Int("mintextlength", cfg.MinTextLength, "Minimum extracted text length to accept a result")
	pflag.String("tempdir", cfg.TempDir, "Directory for temporary extraction files (system default if empty)")
	pflag.String("loglevel", cfg.LogLevel, "Log level (debug, info, warn, error)")
}

// bindFlagsToViper binds command line flags to viper configuration.
func bindFlagsToViper() {
	_ = viper.BindPFlag("mode", pflag.Lookup("mode"))
	_ = viper.BindPFlag("type", pflag.Lookup("type"))
	_ = viper.BindPFlag("maxfilesize", pflag.Lookup("maxfilesize"))
	_ = viper.BindPFlag("mintextlength", pflag.Lookup("mintextlength"))
	_ = viper.BindPFlag("tempdir", pflag.Lookup("tempdir"))
	_ = viper.BindPFlag("loglevel", pflag.Lookup("loglevel"))
}

// setupUsageMessage configures the custom usage message.
func setupUsageMessage() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\ndocingest - extract structured data from business document PDFs\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s goods-receipt.pdf                   # parse a receipt, print JSON\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --type=delivery delivery-note.pdf   # parse a delivery note\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --mode=serve                        # run the stdio tool server\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		fmt.Fprintf(os.Stderr, "  DOCINGEST_MODE           Run mode\n")
		fmt.Fprintf(os.Stderr, "  DOCINGEST_TYPE           Document type\n")
		fmt.Fprintf(os.Stderr, "  DOCINGEST_MAXFILESIZE    Maximum upload size\n")
		fmt.Fprintf(os.Stderr, "  DOCINGEST_MINTEXTLENGTH  Minimum extracted text length\n")
		fmt.Fprintf(os.Stderr, "  DOCINGEST_TEMPDIR        Temporary file directory\n")
		fmt.Fprintf(os.Stderr, "  DOCINGEST_LOGLEVEL       Log level\n")
	}
}

// populateConfigFromViper fills the config struct with values from viper.
func populateConfigFromViper(cfg *Config) {
	cfg.Mode = viper.GetString("mode")
	cfg.DocType = viper.GetString("type")
	cfg.MaxFileSize = viper.GetInt64("maxfilesize")
	cfg.MinTextLength = viper.GetInt("mintextlength")
	cfg.TempDir = viper.GetString("tempdir")
	cfg.LogLevel = viper.GetString("loglevel")
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Mode != ModeParse && c.Mode != ModeServe {
		return errors.New("mode must be either 'parse' or 'serve'")
	}

	if c.DocType != DocTypeReceipt && c.DocType != DocTypeDelivery {
		return errors.New("type must be either 'receipt' or 'delivery'")
	}

	if c.MaxFileSize <= 0 {
		return errors.New("maximum file size must be positive")
	}

	if c.MinTextLength <= 0 {
		return errors.New("minimum text length must be positive")
	}

	if c.TempDir != "" {
		info, err := os.Stat(c.TempDir)
		if err != nil {
			return fmt.Errorf("cannot access temp directory %s: %w", c.TempDir, err)
		}
		if !info.IsDir() {
			return fmt.Errorf("temp directory %s is not a directory", c.TempDir)
		}
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be one of: debug, info, warn, error)", c.LogLevel)
	}

	return nil
}

// IsDebug returns true if debug logging is enabled.
func (c *Config) IsDebug() bool {
	return c.LogLevel == "debug"
}

// IsServeMode returns true when running as the stdio tool server.
func (c *Config) IsServeMode() bool {
	return c.Mode == ModeServe
}

// String returns a string representation of the configuration.
func (c *Config) String() string {
	return fmt.Sprintf("Config{Mode: %s, DocType: %s, MaxFileSize: %d, MinTextLength: %d, LogLevel: %s}",
		c.Mode, c.DocType, c.MaxFileSize, c.MinTextLength, c.LogLevel)
}
