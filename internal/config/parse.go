package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"

	"github.com/zestagio/reader-launcher/internal/validator"
)

const envPrefix = "READER"

// ParseAndValidate applies, in order, defaults, the TOML file (skipped for empty
// filename) and READER_* environment variables, then validates the result.
func ParseAndValidate(filename string) (Config, error) {
	conf := Default()

	if filename != "" {
		if _, err := toml.DecodeFile(filename, &conf); err != nil {
			return conf, err
		}
	}

	if err := envconfig.Process(envPrefix, &conf); err != nil {
		return conf, fmt.Errorf("process env: %v", err)
	}

	if err := Validate(conf); err != nil {
		return conf, err
	}

	return conf, nil
}

func Validate(conf Config) error {
	if err := validator.Validator.Struct(conf); err != nil {
		return err
	}

	if last := conf.Server.LastPort(); last > 65535 {
		return fmt.Errorf("port range %d-%d exceeds 65535", conf.Server.StartPort, last)
	}

	return nil
}
