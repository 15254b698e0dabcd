// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/ethereum/go-ethereum/common"
	"github.com/joho/godotenv"
)

const defaultPort = 3318

type Config struct {
	Port         int    `env:"PORT"`
	DatabaseURL  string `env:"DATABASE_URL"`
	DatabaseType string `env:"DATABASE_TYPE"`
	AdminAddress string `env:"ADMIN_ADDRESS"`
	ConfigFile   string `env:"CONFIG_FILE"`
}

// Admin returns the parsed administrator address. ParseFlags has already
// validated it.
func (c Config) Admin() common.Address {
	return common.HexToAddress(c.AdminAddress)
}

type fileConfig struct {
	Port         int    `toml:"port"`
	DatabaseURL  string `toml:"database_url"`
	DatabaseType string `toml:"database_type"`
	AdminAddress string `toml:"admin_address"`
}

// ParseFlags builds the configuration. Precedence: flags, environment
// (including a .env file), TOML config file, defaults.
func ParseFlags(args []string) (Config, error) {
	var cli Config

	flags := flag.NewFlagSet("quickly-vote", flag.ContinueOnError)

	flags.IntVar(&cli.Port, "p", 0, "Server port")
	flags.StringVar(&cli.DatabaseURL, "d", "", "Database URL")
	flags.StringVar(&cli.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	flags.StringVar(&cli.AdminAddress, "admin", "", "Administrator address")
	flags.StringVar(&cli.ConfigFile, "c", "", "TOML config file")

	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}

	// .env is optional; real environment variables win over it
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	var envCfg Config
	if err := env.Parse(&envCfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	cfg := Config{Port: defaultPort, DatabaseType: "sqlite"}

	configFile := firstNonEmpty(cli.ConfigFile, envCfg.ConfigFile)
	if configFile != "" {
		if err := loadFile(configFile, &cfg); err != nil {
			return Config{}, err
		}
		cfg.ConfigFile = configFile
	}

	overlay(&cfg, envCfg)
	overlay(&cfg, cli)

	if err := validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return fmt.Errorf("load config %s: %w", path, err)
	}

	if meta.IsDefined("port") {
		cfg.Port = raw.Port
	}
	if meta.IsDefined("database_url") {
		cfg.DatabaseURL = strings.TrimSpace(raw.DatabaseURL)
	}
	if meta.IsDefined("database_type") {
		cfg.DatabaseType = strings.TrimSpace(raw.DatabaseType)
	}
	if meta.IsDefined("admin_address") {
		cfg.AdminAddress = strings.TrimSpace(raw.AdminAddress)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("load config %s: unknown key %q", path, undecoded[0].String())
	}
	return nil
}

// overlay copies the non-zero fields of src onto dst
func overlay(dst *Config, src Config) {
	if src.Port != 0 {
		dst.Port = src.Port
	}
	if src.DatabaseURL != "" {
		dst.DatabaseURL = src.DatabaseURL
	}
	if src.DatabaseType != "" {
		dst.DatabaseType = src.DatabaseType
	}
	if src.AdminAddress != "" {
		dst.AdminAddress = src.AdminAddress
	}
}

func validate(cfg Config) error {
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return fmt.Errorf("invalid port %d", cfg.Port)
	}
	if cfg.DatabaseURL == "" {
		return errors.New("database URL required (use -d or DATABASE_URL env)")
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return fmt.Errorf("database type must be sqlite or postgres, got %q", cfg.DatabaseType)
	}
	if cfg.AdminAddress == "" {
		return errors.New("ADMIN_ADDRESS required (use -admin or ADMIN_ADDRESS env)")
	}
	if !common.IsHexAddress(cfg.AdminAddress) {
		return fmt.Errorf("ADMIN_ADDRESS is not a valid address: %q", cfg.AdminAddress)
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
