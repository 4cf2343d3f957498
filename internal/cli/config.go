package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/sauceclient/sauceclient/pkg/sauce"
)

// DefaultConfigFile is the default name of the config file
const DefaultConfigFile = "config.yaml"

const configVersion = "1"

// Environment variables that override the config file.
const (
	EnvUsername  = "SAUCE_USERNAME"
	EnvAccessKey = "SAUCE_ACCESS_KEY"
	EnvHost      = "SAUCE_HOST"
)

// Config holds the account the CLI talks to.
type Config struct {
	// Version of the configuration file format
	Version string `yaml:"version" toml:"version"`
	// Username is the Sauce Labs user name
	Username string `yaml:"username" toml:"username" validate:"required"`
	// AccessKey is the access key of the user
	AccessKey string `yaml:"access_key" toml:"access_key" validate:"required"`
	// Host is the API host, saucelabs.com when empty
	Host string `yaml:"host,omitempty" toml:"host,omitempty" validate:"omitempty,hostname|url"`
}

var validate = validator.New()

// GetDefaultConfigPath returns the default path for the config file
// It uses the OS-specific config directory (e.g., ~/.config/sauceclient on Linux)
func GetDefaultConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to get user config directory")
	}
	return filepath.Join(configDir, "sauceclient", DefaultConfigFile), nil
}

func resolveConfigPath(file string) (string, error) {
	if file != "" {
		return file, nil
	}
	return GetDefaultConfigPath()
}

func isTOML(file string) bool {
	return strings.EqualFold(filepath.Ext(file), ".toml")
}

// ReadConfig parses the config file without applying the environment. A
// missing file yields an empty Config.
func ReadConfig(file string) (*Config, error) {
	file, err := resolveConfigPath(file)
	if err != nil {
		return nil, ErrConfig.Err(err)
	}

	data, err := os.ReadFile(file)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{Version: configVersion}, nil
		}
		return nil, ErrConfig.MsgErr("unable to read config file", errors.Wrap(err, file))
	}

	var c Config
	if isTOML(file) {
		err = toml.Unmarshal(data, &c)
	} else {
		err = yaml.Unmarshal(data, &c)
	}
	if err != nil {
		return nil, ErrConfig.MsgErr("unable to parse config file", errors.Wrap(err, file))
	}
	return &c, nil
}

// LoadConfig reads the config file, then applies a .env file from the
// working directory and the SAUCE_* environment variables on top.
// If no file is specified, it uses the default config location.
func LoadConfig(file string) (*Config, error) {
	c, err := ReadConfig(file)
	if err != nil {
		return nil, err
	}

	// variables already set in the environment win over .env
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, ErrConfig.MsgErr("unable to load .env", err)
	}
	c.applyEnv()

	if c.Username == "" && c.AccessKey == "" {
		return nil, ErrNoConfig
	}
	if err := c.ValidateConfig(); err != nil {
		return nil, err
	}
	return c, nil
}

func (cfg *Config) applyEnv() {
	if v := os.Getenv(EnvUsername); v != "" {
		cfg.Username = v
	}
	if v := os.Getenv(EnvAccessKey); v != "" {
		cfg.AccessKey = v
	}
	if v := os.Getenv(EnvHost); v != "" {
		cfg.Host = v
	}
}

// ValidateConfig checks for required fields and proper formatting
func (cfg *Config) ValidateConfig() error {
	if err := validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return ErrConfig.Msg("invalid " + strings.ToLower(fe.Field()) + ": failed '" + fe.Tag() + "' check")
		}
		return ErrConfig.Err(err)
	}
	return nil
}

// WriteConfig writes the configuration to file, or to the default location
// when file is empty.
func (cfg *Config) WriteConfig(file string) error {
	file, err := resolveConfigPath(file)
	if err != nil {
		return ErrConfig.Err(err)
	}
	if err := os.MkdirAll(filepath.Dir(file), 0o700); err != nil {
		return ErrConfig.MsgErr("unable to create config directory", errors.WithStack(err))
	}

	if cfg.Version == "" {
		cfg.Version = configVersion
	}

	var data []byte
	if isTOML(file) {
		var buf bytes.Buffer
		err = toml.NewEncoder(&buf).Encode(cfg)
		data = buf.Bytes()
	} else {
		data, err = yaml.Marshal(cfg)
	}
	if err != nil {
		return ErrConfig.MsgErr("unable to generate configuration", err)
	}

	if err := os.WriteFile(file, data, 0o600); err != nil {
		return ErrConfig.MsgErr("unable to write config file", errors.Wrap(err, file))
	}
	return nil
}

// Credentials returns the library credentials for this configuration.
func (cfg *Config) Credentials() sauce.Credentials {
	creds := sauce.NewCredentials(cfg.Username, cfg.AccessKey)
	if cfg.Host != "" {
		creds = creds.WithHost(cfg.Host)
	}
	return creds
}

// maskedKey hides all but the last four characters of the access key.
func (cfg *Config) maskedKey() string {
	k := cfg.AccessKey
	if len(k) <= 4 {
		return strings.Repeat("*", len(k))
	}
	return strings.Repeat("*", len(k)-4) + k[len(k)-4:]
}
