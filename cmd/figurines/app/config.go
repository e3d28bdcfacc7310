package app

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/agentstation/figurines/pkg/constants"
)

// Config holds the application configuration loaded from config files,
// environment variables (FIGURINES_ prefix) and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Format  string

	// Config file
	ConfigFile string

	// Project configuration
	Root            string
	ThumbnailWidth  int
	ThumbnailHeight int
	ThumbnailFilter string
	JPEGQuality     int

	// Logging configuration
	LogLevel  string
	LogFormat string
	LogOutput string
}

// LoadConfig loads configuration from all sources in order of precedence:
//  1. Command-line flags (applied later by UpdateFromFlags)
//  2. Environment variables
//  3. .env files
//  4. Config file (~/.figurines.yaml or ./.figurines.yaml)
//  5. Defaults
func LoadConfig() (*Config, error) {
	return loadConfig(viper.New(), "")
}

func loadConfig(v *viper.Viper, configFile string) (*Config, error) {
	// .env files must be loaded before viper reads the environment
	loadEnvFiles()

	v.SetEnvPrefix("FIGURINES")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("root", ".")
	v.SetDefault("thumbnail.width", constants.ThumbnailMaxWidth)
	v.SetDefault("thumbnail.height", constants.ThumbnailMaxHeight)
	v.SetDefault("thumbnail.filter", "catmull-rom")
	v.SetDefault("thumbnail.jpeg_quality", constants.JPEGQuality)

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(constants.DefaultConfigName)

		// a missing config file is fine
		_ = v.ReadInConfig()
	}

	return &Config{
		Verbose: v.GetBool("verbose"),
		Quiet:   v.GetBool("quiet"),
		NoColor: v.GetBool("no_color") || os.Getenv("NO_COLOR") != "",
		Format:  v.GetString("format"),

		ConfigFile: v.ConfigFileUsed(),

		Root:            v.GetString("root"),
		ThumbnailWidth:  v.GetInt("thumbnail.width"),
		ThumbnailHeight: v.GetInt("thumbnail.height"),
		ThumbnailFilter: v.GetString("thumbnail.filter"),
		JPEGQuality:     v.GetInt("thumbnail.jpeg_quality"),

		LogLevel:  getEnvOrDefault("LOG_LEVEL", v.GetString("log.level")),
		LogFormat: getEnvOrDefault("LOG_FORMAT", stringOr(v.GetString("log.format"), "auto")),
		LogOutput: getEnvOrDefault("LOG_OUTPUT", stringOr(v.GetString("log.output"), "stderr")),
	}, nil
}

// UpdateFromFlags updates config values from parsed command flags.
// Flag values take precedence over config file and env vars; empty
// strings leave the loaded value alone.
func (c *Config) UpdateFromFlags(verbose, quiet, noColor bool, format, logLevel, root string) {
	c.Verbose = verbose
	c.Quiet = quiet
	c.NoColor = c.NoColor || noColor
	if format != "" {
		c.Format = format
	}
	if logLevel != "" {
		c.LogLevel = logLevel
	}
	if root != "" {
		c.Root = root
	}
}

// loadEnvFiles loads environment variables from .env files.
// .env.local does not override values already set by .env.
func loadEnvFiles() {
	for _, envFile := range []string{".env", ".env.local"} {
		_ = godotenv.Load(envFile)
	}
}

// getEnvOrDefault returns the environment variable value or the default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func stringOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
