package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Configuration
type Configuration struct {
	Host      string `mapstructure:"host"`
	Port      int    `mapstructure:"port"`
	AdminPort int    `mapstructure:"admin_port"`
	// CooldownMS is the minimum admissible spacing, in milliseconds, between
	// successive ad triggers within one session.
	CooldownMS int64   `mapstructure:"cooldown_ms"`
	AdPool     AdPool  `mapstructure:"ad_pool"`
	Session    Session `mapstructure:"session"`
	Metrics    Metrics `mapstructure:"metrics"`
	HostApp    HostApp `mapstructure:"host_app"`
	// StatusResponse is the body returned by the /status endpoint. An empty
	// value makes /status respond with 204.
	StatusResponse string `mapstructure:"status_response"`
}

// AdPool is the fixed set of ad destinations the mediator samples from.
type AdPool struct {
	URLs []string `mapstructure:"urls"`
}

// Session controls the session cookie and the server-side session store.
type Session struct {
	CookieName string `mapstructure:"cookie_name"`
	Domain     string `mapstructure:"domain"`
	// TTLSeconds bounds how long an idle session's state is retained.
	TTLSeconds     int `mapstructure:"ttl_seconds"`
	CacheSizeBytes int `mapstructure:"cache_size_bytes"`
}

func (cfg *Session) TTLDuration() time.Duration {
	return time.Duration(cfg.TTLSeconds) * time.Second
}

type Metrics struct {
	Host            string `mapstructure:"host"`
	Database        string `mapstructure:"database"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	IntervalSeconds int    `mapstructure:"interval_seconds"`
}

// HostApp describes the native application's bridge callbacks. A bridge
// variant whose endpoint is empty is treated as not exposed by the host.
type HostApp struct {
	Android   Callback `mapstructure:"android"`
	IOS       Callback `mapstructure:"ios"`
	TimeoutMS int64    `mapstructure:"timeout_ms"`
}

type Callback struct {
	Endpoint string `mapstructure:"endpoint"`
}

func (cfg *HostApp) Timeout() time.Duration {
	return time.Duration(cfg.TimeoutMS) * time.Millisecond
}

func (cfg *Configuration) CooldownDuration() time.Duration {
	return time.Duration(cfg.CooldownMS) * time.Millisecond
}

// New uses viper to get the mediator configuration and validates it.
func New(v *viper.Viper) (*Configuration, error) {
	var c Configuration
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("viper failed to unmarshal app config: %v", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (cfg *Configuration) validate() error {
	var errs []string
	if cfg.CooldownMS < 0 {
		errs = append(errs, fmt.Sprintf("cooldown_ms must not be negative. Got %d", cfg.CooldownMS))
	}
	if len(cfg.AdPool.URLs) == 0 {
		errs = append(errs, "ad_pool.urls must not be empty")
	}
	for i, u := range cfg.AdPool.URLs {
		if u == "" {
			errs = append(errs, fmt.Sprintf("ad_pool.urls[%d] must not be empty", i))
		}
	}
	if cfg.Session.TTLSeconds <= 0 {
		errs = append(errs, fmt.Sprintf("session.ttl_seconds must be positive. Got %d", cfg.Session.TTLSeconds))
	}
	if cfg.Session.CacheSizeBytes <= 0 {
		errs = append(errs, fmt.Sprintf("session.cache_size_bytes must be positive. Got %d", cfg.Session.CacheSizeBytes))
	}
	if cfg.HostApp.TimeoutMS <= 0 {
		errs = append(errs, fmt.Sprintf("host_app.timeout_ms must be positive. Got %d", cfg.HostApp.TimeoutMS))
	}
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "\n"))
	}
	return nil
}

// SetupViper sets the viper defaults and environment bindings for the
// mediator. The file name is optional; when empty, no config file is read.
func SetupViper(v *viper.Viper, filename string) {
	if filename != "" {
		v.SetConfigName(filename)
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/config")
	}
	v.SetDefault("host", "")
	v.SetDefault("port", 8000)
	v.SetDefault("admin_port", 6060)
	v.SetDefault("cooldown_ms", 300000)
	v.SetDefault("ad_pool.urls", []string{
		"https://otieu.com/4/10250311",
		"https://otieu.com/4/10205357",
		"https://otieu.com/4/9515888",
	})
	v.SetDefault("session.cookie_name", "admsession")
	v.SetDefault("session.domain", "")
	v.SetDefault("session.ttl_seconds", 1800)
	v.SetDefault("session.cache_size_bytes", 16*1024*1024)
	v.SetDefault("metrics.host", "")
	v.SetDefault("metrics.database", "")
	v.SetDefault("metrics.username", "")
	v.SetDefault("metrics.password", "")
	v.SetDefault("metrics.interval_seconds", 10)
	v.SetDefault("host_app.android.endpoint", "")
	v.SetDefault("host_app.ios.endpoint", "")
	v.SetDefault("host_app.timeout_ms", 2000)
	v.SetDefault("status_response", "")

	v.SetEnvPrefix("ADM")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.ReadInConfig()
}
