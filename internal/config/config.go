package config

// Viper configuration loader: defaults, then fontfind.yaml, then FONTFIND_*
// environment variables, then command line flags.

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	// ErrInvalidDepth indicates a negative search depth
	ErrInvalidDepth = errors.New("search depth must not be negative")

	// ErrInvalidLogLevel indicates an unknown logging level name
	ErrInvalidLogLevel = errors.New("unknown log level")
)

// Config holds the CLI configuration
type Config struct {
	Search struct {
		MaxDepth int      `mapstructure:"maxDepth"`
		Dirs     []string `mapstructure:"dirs"`
		Keywords []string `mapstructure:"keywords"`
	} `mapstructure:"search"`

	Logging struct {
		Level string `mapstructure:"level"` // "debug", "info", "warn", "error"
	} `mapstructure:"logging"`
}

// flagKeys maps command line flags to configuration keys
var flagKeys = map[string]string{
	"max-depth": "search.maxDepth",
	"dir":       "search.dirs",
	"keyword":   "search.keywords",
	"log-level": "logging.level",
}

// Load reads the configuration. configFile may name an explicit file;
// otherwise fontfind.yaml is looked up in the user config directory and the
// current directory, and a missing file is not an error. Flags that are
// present in flags override every other source.
func Load(configFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configFile != "" {
		path, err := homedir.Expand(configFile)
		if err != nil {
			return nil, fmt.Errorf("expanding config path: %w", err)
		}
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("fontfind")
		v.SetConfigType("yaml")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "fontfind"))
		}
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		slog.Debug("no fontfind.yaml found, using defaults")
	} else {
		slog.Debug("loaded configuration", "file", v.ConfigFileUsed())
	}

	v.SetEnvPrefix("FONTFIND")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := bindFlags(v, flags); err != nil {
			return nil, fmt.Errorf("binding flags: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("search.maxDepth", 10)
	v.SetDefault("search.dirs", []string{})
	v.SetDefault("search.keywords", []string{})
	v.SetDefault("logging.level", "error")
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		flag := flags.Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("flag %s: %w", name, err)
		}
	}
	return nil
}

// normalize checks values and expands ~ in search directories
func (c *Config) normalize() error {
	if c.Search.MaxDepth < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidDepth, c.Search.MaxDepth)
	}

	dirs := make([]string, 0, len(c.Search.Dirs))
	for _, dir := range c.Search.Dirs {
		dir = strings.TrimSpace(dir)
		if dir == "" {
			continue
		}
		expanded, err := homedir.Expand(dir)
		if err != nil {
			slog.Warn("keeping unexpanded font directory", "dir", dir, "error", err)
			expanded = dir
		}
		dirs = append(dirs, expanded)
	}
	c.Search.Dirs = dirs

	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

// LogLevel converts Logging.Level to a slog level
func (c *Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Logging.Level)); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Logging.Level)
	}
	return level, nil
}
