package config

import (
	"path/filepath"
	"time"
)

const (
	DefaultHost         = "127.0.0.1"
	DefaultStartPort    = 8000
	DefaultPortAttempts = 30
	DefaultRoot         = "web"
	DefaultBrowserDelay = time.Second
)

type Config struct {
	Global  GlobalConfig  `toml:"global" envconfig:"GLOBAL"`
	Log     LogConfig     `toml:"log" envconfig:"LOG"`
	Server  ServerConfig  `toml:"server" envconfig:"SERVER"`
	Browser BrowserConfig `toml:"browser" envconfig:"BROWSER"`
}

type GlobalConfig struct {
	Env string `toml:"env" envconfig:"ENV" validate:"required,oneof=dev stage prod"`
}

func (c GlobalConfig) IsProduction() bool {
	return c.Env == "prod"
}

type LogConfig struct {
	Level string `toml:"level" envconfig:"LEVEL" validate:"required,oneof=debug info warn error"`
}

type ServerConfig struct {
	Host             string `toml:"host" envconfig:"HOST" validate:"required,loopback"`
	StartPort        int    `toml:"start_port" envconfig:"START_PORT" validate:"min=1,max=65535"`
	PortAttempts     int    `toml:"port_attempts" envconfig:"PORT_ATTEMPTS" validate:"min=1,max=65535"`
	Root             string `toml:"root" envconfig:"ROOT" validate:"required"`
	AccessLog        string `toml:"access_log" envconfig:"ACCESS_LOG" validate:"required,oneof=silent verbose"`
	DirectoryListing bool   `toml:"directory_listing" envconfig:"DIRECTORY_LISTING"`
}

// LastPort is the upper bound of the scanned range, inclusive.
func (c ServerConfig) LastPort() int {
	return c.StartPort + c.PortAttempts - 1
}

// ResolveRoot returns Root as an absolute path. Relative roots are taken
// against base, which is the directory of the launcher executable.
func (c ServerConfig) ResolveRoot(base string) (string, error) {
	root := c.Root
	if !filepath.IsAbs(root) {
		root = filepath.Join(base, root)
	}
	return filepath.Abs(root)
}

type BrowserConfig struct {
	Enabled bool          `toml:"enabled" envconfig:"ENABLED"`
	Delay   time.Duration `toml:"delay" envconfig:"DELAY" validate:"min=0s,max=1m"`
}

// Default is the configuration used when no file and no environment is given.
func Default() Config {
	return Config{
		Global: GlobalConfig{Env: "dev"},
		Log:    LogConfig{Level: "info"},
		Server: ServerConfig{
			Host:         DefaultHost,
			StartPort:    DefaultStartPort,
			PortAttempts: DefaultPortAttempts,
			Root:         DefaultRoot,
			AccessLog:    "silent",
		},
		Browser: BrowserConfig{
			Enabled: true,
			Delay:   DefaultBrowserDelay,
		},
	}
}
