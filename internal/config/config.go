package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/Behyna/sms-services/messagecloud/pkg/messagecloud"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "MESSAGECLOUD"

type Config struct {
	API         API                 `mapstructure:"api"`
	Gateway     messagecloud.Config `mapstructure:"gateway"`
	Credentials Credentials         `mapstructure:"credentials"`
	Log         Log                 `mapstructure:"log"`
}

type API struct {
	Port string `mapstructure:"port"`
}

type Credentials struct {
	AccountID     string `mapstructure:"account_id"`
	AccountSecret string `mapstructure:"account_secret"`
}

type Log struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

func setDefaults(v *viper.Viper) {
	def := messagecloud.DefaultConfig()

	v.SetDefault("api.port", ":8080")
	v.SetDefault("gateway.base_url", def.BaseURL)
	v.SetDefault("gateway.timeout", def.Timeout)
	v.SetDefault("gateway.user_agent", def.UserAgent)
	v.SetDefault("gateway.success_marker", def.SuccessMarker)
	v.SetDefault("credentials.account_id", "")
	v.SetDefault("credentials.account_secret", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
}

func Load() (*Config, error) {
	return LoadWith(viper.GetViper())
}

// LoadWith reads ./config/config.yml (optional), then .env (optional), then
// MESSAGECLOUD_* environment variables, in increasing order of precedence.
func LoadWith(v *viper.Viper) (cfg *Config, err error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yml")
	v.AddConfigPath("./config")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	if err = v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.Credentials.AccountID) == "" {
		return errors.New("credentials.account_id is required")
	}
	if strings.TrimSpace(c.Credentials.AccountSecret) == "" {
		return errors.New("credentials.account_secret is required")
	}

	marker := c.Gateway.SuccessMarker
	if marker != messagecloud.SuccessMarker && marker != messagecloud.LegacySuccessMarker {
		return fmt.Errorf("gateway.success_marker must be %q or %q, got %q",
			messagecloud.SuccessMarker, messagecloud.LegacySuccessMarker, marker)
	}

	return nil
}
