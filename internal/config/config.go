// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Defaults applied after decode.
const (
	DefaultDatabasePath = "./data/sortarr.db"
	DefaultLogLevel     = "info"
	DefaultScanInterval = 5 * time.Minute
)

type Config struct {
	Paths    PathsConfig    `toml:"paths"`
	Database DatabaseConfig `toml:"database"`
	Log      LogConfig      `toml:"log"`
	Scan     ScanConfig     `toml:"scan"`
	Naming   NamingConfig   `toml:"naming"`
}

type PathsConfig struct {
	Downloads string `toml:"downloads"`
	Series    string `toml:"series"`
}

type DatabaseConfig struct {
	Path string `toml:"path"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

type ScanConfig struct {
	Workers  int           `toml:"workers"`  // 0 uses GOMAXPROCS
	Interval time.Duration `toml:"interval"` // watch re-plan period
}

type NamingConfig struct {
	SeriesLayout string `toml:"series_layout"` // empty uses the importer default
}

// Override adjusts a decoded config before it is validated, typically from
// command-line flags.
type Override func(*Config)

// Load reads, substitutes, parses and validates the configuration file.
// Unresolved variables and validation failures are returned together as a
// *ConfigError.
func Load(path string, overrides ...Override) (*Config, error) {
	cfg, missing, err := load(path)
	if err != nil {
		return nil, err
	}
	for _, o := range overrides {
		o(cfg)
	}

	cfgErr := &ConfigError{Path: path, Missing: missing, Errors: cfg.Validate()}
	if cfgErr.HasErrors() {
		return nil, cfgErr
	}
	return cfg, nil
}

// LoadWithoutValidation reads and parses the configuration file without
// checking required fields. Unresolved variables are left as written.
func LoadWithoutValidation(path string) (*Config, error) {
	cfg, _, err := load(path)
	return cfg, err
}

func load(path string) (*Config, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading config: %w", err)
	}

	content, missing := substituteEnvVars(string(data))

	var cfg Config
	if _, err := toml.Decode(content, &cfg); err != nil {
		return nil, nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.applyDefaults()

	return &cfg, missing, nil
}

func (c *Config) applyDefaults() {
	if c.Database.Path == "" {
		c.Database.Path = DefaultDatabasePath
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Scan.Interval == 0 {
		c.Scan.Interval = DefaultScanInterval
	}
}

// envVarPattern matches ${VAR}, ${VAR:-default} and ${VAR:?message}.
var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(?:(:[-?])([^}]*))?\}`)

// substituteEnvVars expands environment references in content.
//
//	${VAR}          value of VAR, reported missing when unset
//	${VAR:-default} value of VAR, or default when VAR is unset or empty
//	${VAR:?message} value of VAR, reported with message when unset or empty
//
// Unresolved references are left unchanged. Comment lines are never
// expanded.
func substituteEnvVars(content string) (string, []string) {
	var missing []string
	seen := make(map[string]bool)
	report := func(s string) {
		if !seen[s] {
			seen[s] = true
			missing = append(missing, s)
		}
	}

	expand := func(match string) string {
		groups := envVarPattern.FindStringSubmatch(match)
		name, op, arg := groups[1], groups[2], groups[3]
		value, ok := os.LookupEnv(name)

		switch op {
		case ":-":
			if value == "" {
				return arg
			}
			return value
		case ":?":
			if value == "" {
				report(name + ": " + arg)
				return match
			}
			return value
		default:
			if !ok {
				report(name)
				return match
			}
			return value
		}
	}

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		lines[i] = envVarPattern.ReplaceAllStringFunc(line, expand)
	}
	return strings.Join(lines, "\n"), missing
}
