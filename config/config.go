package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

//go:embed config.yml
var embeddedConfig []byte

// Source names accepted by search.source.
const (
	SourceSample = "sample"
	SourceLive   = "live"
)

type Config struct {
	Mode   string `mapstructure:"mode"`
	Server struct {
		HTTPPort string        `mapstructure:"HTTPPort"`
		Timeout  time.Duration `mapstructure:"HTTPTimeout"`
	} `mapstructure:"server"`
	OpenData struct {
		BaseURL        string        `mapstructure:"baseURL"`
		UserAgent      string        `mapstructure:"userAgent"`
		RequestTimeout time.Duration `mapstructure:"requestTimeout"`
		CacheTTL       time.Duration `mapstructure:"cacheTTL"`
		Packages       struct {
			Parks        string `mapstructure:"parks"`
			GreenSpaces  string `mapstructure:"greenSpaces"`
			Wifi         string `mapstructure:"wifi"`
			GreenStreets string `mapstructure:"greenStreets"`
		} `mapstructure:"packages"`
	} `mapstructure:"opendata"`
	Search struct {
		Source string `mapstructure:"source"`
	} `mapstructure:"search"`
	Observability struct {
		ServiceName    string `mapstructure:"serviceName"`
		PrometheusPort string `mapstructure:"prometheusPort"`
	} `mapstructure:"observability"`
}

func InitConfig() (Config, error) {
	v := viper.New()

	v.AddConfigPath(".")
	v.AddConfigPath("config")
	v.AddConfigPath("/app/config")

	v.SetConfigName("config")
	v.SetConfigType("yml")

	// STUDYSPACES_SEARCH_SOURCE=live overrides search.source, etc.
	v.SetEnvPrefix("STUDYSPACES")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	err := v.ReadInConfig()
	if err != nil {
		fmt.Printf("Warning: Failed to find file-based config: %s. Falling back to embedded config.\n", err)
		if err = v.ReadConfig(bytes.NewReader(embeddedConfig)); err != nil {
			return Config{}, fmt.Errorf("failed to read embedded config: %w", err)
		}
	}

	return unmarshal(v)
}

// LoadFromBytes builds a Config from raw YAML, mainly for tests and tooling.
func LoadFromBytes(raw []byte) (Config, error) {
	v := viper.New()
	v.SetConfigType("yml")
	if err := v.ReadConfig(bytes.NewReader(raw)); err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	return unmarshal(v)
}

func unmarshal(v *viper.Viper) (Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

// Validate checks the settings the service cannot start without.
func (c Config) Validate() error {
	switch c.Search.Source {
	case SourceSample:
	case SourceLive:
		if c.OpenData.BaseURL == "" {
			return fmt.Errorf("opendata.baseURL is required when search.source is %q", SourceLive)
		}
	default:
		return fmt.Errorf("unknown search.source %q (want %q or %q)", c.Search.Source, SourceSample, SourceLive)
	}
	if c.Server.HTTPPort == "" {
		return fmt.Errorf("server.HTTPPort is required")
	}
	return nil
}
