package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/shoplist/internal/idgen"
	"github.com/idilsaglam/shoplist/internal/store"
	"github.com/idilsaglam/shoplist/internal/ui"
)

const (
	dirName  = ".shoplist"
	fileName = "config.yaml"
	envPref  = "SHOPLIST"
)

// SeedItem is one entry of the starting list.
type SeedItem struct {
	Name    string `yaml:"name"    mapstructure:"name"`
	Checked bool   `yaml:"checked" mapstructure:"checked"`
}

// Config holds session settings. Nothing here is written back at runtime.
type Config struct {
	Theme        string     `yaml:"theme"         mapstructure:"theme"`
	HideChecked  bool       `yaml:"hide_checked"  mapstructure:"hide_checked"`
	IDStrategy   string     `yaml:"id_strategy"   mapstructure:"id_strategy"`
	GlamourStyle string     `yaml:"glamour_style" mapstructure:"glamour_style"`
	Seed         []SeedItem `yaml:"seed"          mapstructure:"seed"`
}

func Default() *Config {
	c := &Config{
		Theme:        "classic",
		IDStrategy:   "uuid",
		GlamourStyle: "dark",
	}
	for _, s := range store.DefaultSeed {
		c.Seed = append(c.Seed, SeedItem{Name: s.Name, Checked: s.Checked})
	}
	return c
}

// GetConfigPath returns $home/.shoplist/config.yaml.
func GetConfigPath(home string) string {
	return filepath.Join(home, dirName, fileName)
}

// New returns a viper instance with defaults and env binding, not yet read.
func New() *viper.Viper {
	v := viper.New()
	d := Default()
	v.SetDefault("theme", d.Theme)
	v.SetDefault("hide_checked", d.HideChecked)
	v.SetDefault("id_strategy", d.IDStrategy)
	v.SetDefault("glamour_style", d.GlamourStyle)
	v.SetEnvPrefix(envPref)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads cfgFile, or the default path under home when cfgFile is empty.
// A missing default file is fine; a missing explicit file is not.
func Load(v *viper.Viper, home, cfgFile string) (*Config, error) {
	path := cfgFile
	if path == "" {
		path = GetConfigPath(home)
	}
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !(errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)) {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if !v.IsSet("seed") {
		cfg.Seed = Default().Seed
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	valid := false
	for _, name := range ui.Themes {
		if strings.EqualFold(c.Theme, name) {
			valid = true
		}
	}
	if !valid {
		return &ValidationError{Field: "theme", Value: c.Theme, Allowed: ui.Themes}
	}
	if _, err := idgen.ByName(c.IDStrategy); err != nil {
		return &ValidationError{Field: "id_strategy", Value: c.IDStrategy, Allowed: []string{"uuid", "seq"}}
	}
	for i, s := range c.Seed {
		if strings.TrimSpace(s.Name) == "" {
			return &ValidationError{Field: fmt.Sprintf("seed[%d].name", i), Value: s.Name}
		}
	}
	return nil
}

// StoreOptions turns the config into store construction options.
func (c *Config) StoreOptions() ([]store.Option, error) {
	gen, err := idgen.ByName(c.IDStrategy)
	if err != nil {
		return nil, err
	}
	seed := make([]store.Seed, 0, len(c.Seed))
	for _, s := range c.Seed {
		seed = append(seed, store.Seed{Name: strings.TrimSpace(s.Name), Checked: s.Checked})
	}
	return []store.Option{
		store.WithIDGenerator(gen),
		store.WithItems(seed...),
		store.WithHideChecked(c.HideChecked),
	}, nil
}

// WriteDefault creates the default config file under home unless one exists.
func WriteDefault(home string) (string, error) {
	path := GetConfigPath(home)
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("mkdir: %w", err)
	}
	b, err := yaml.Marshal(Default())
	if err != nil {
		return "", fmt.Errorf("yaml marshal: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}
	return path, nil
}
