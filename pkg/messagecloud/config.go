package messagecloud

import (
	"strings"
	"time"
)

const (
	DefaultBaseURL       = "http://client.txtnation.com"
	GatewayEndpoint      = "/gateway.php"
	DefaultTimeout       = 10 * time.Second
	DefaultUserAgent     = "MessageCloudGatewayLibraryGo/1.0"
	SuccessMarker        = "SUCCESS"
	LegacySuccessMarker  = "OK"
	DefaultSuccessMarker = SuccessMarker
)

type Config struct {
	BaseURL       string        `mapstructure:"base_url"`
	Timeout       time.Duration `mapstructure:"timeout"`
	UserAgent     string        `mapstructure:"user_agent"`
	SuccessMarker string        `mapstructure:"success_marker"`
}

func DefaultConfig() Config {
	return Config{
		BaseURL:       DefaultBaseURL,
		Timeout:       DefaultTimeout,
		UserAgent:     DefaultUserAgent,
		SuccessMarker: DefaultSuccessMarker,
	}
}

// withDefaults fills every zero field from DefaultConfig.
func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if strings.TrimSpace(c.BaseURL) == "" {
		c.BaseURL = def.BaseURL
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	if c.Timeout <= 0 {
		c.Timeout = def.Timeout
	}
	if strings.TrimSpace(c.UserAgent) == "" {
		c.UserAgent = def.UserAgent
	}
	if strings.TrimSpace(c.SuccessMarker) == "" {
		c.SuccessMarker = def.SuccessMarker
	}
	return c
}

func (c Config) endpoint() string {
	return c.BaseURL + GatewayEndpoint
}
