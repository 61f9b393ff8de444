package config

import (
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func newDefaultConfig(t *testing.T) *Configuration {
	v := viper.New()
	SetupViper(v, "")
	cfg, err := New(v)
	assert.NoError(t, err, "the default config should validate")
	return cfg
}

func TestDefaults(t *testing.T) {
	cfg := newDefaultConfig(t)

	assert.Equal(t, 8000, cfg.Port)
	assert.Equal(t, int64(300000), cfg.CooldownMS)
	assert.Equal(t, []string{
		"https://otieu.com/4/10250311",
		"https://otieu.com/4/10205357",
		"https://otieu.com/4/9515888",
	}, cfg.AdPool.URLs)
	assert.Equal(t, "admsession", cfg.Session.CookieName)
	assert.Equal(t, 1800, cfg.Session.TTLSeconds)
	assert.Empty(t, cfg.HostApp.Android.Endpoint)
	assert.Empty(t, cfg.HostApp.IOS.Endpoint)
}

func TestValidation(t *testing.T) {
	testCases := []struct {
		description string
		mutate      func(cfg *Configuration)
		wantError   string
	}{
		{
			description: "Negative cooldown",
			mutate:      func(cfg *Configuration) { cfg.CooldownMS = -1 },
			wantError:   "cooldown_ms must not be negative",
		},
		{
			description: "Zero cooldown is allowed",
			mutate:      func(cfg *Configuration) { cfg.CooldownMS = 0 },
		},
		{
			description: "Empty ad pool",
			mutate:      func(cfg *Configuration) { cfg.AdPool.URLs = nil },
			wantError:   "ad_pool.urls must not be empty",
		},
		{
			description: "Blank pool entry",
			mutate:      func(cfg *Configuration) { cfg.AdPool.URLs = []string{"https://a.example", ""} },
			wantError:   "ad_pool.urls[1] must not be empty",
		},
		{
			description: "Non-positive session TTL",
			mutate:      func(cfg *Configuration) { cfg.Session.TTLSeconds = 0 },
			wantError:   "session.ttl_seconds must be positive",
		},
		{
			description: "Non-positive host app timeout",
			mutate:      func(cfg *Configuration) { cfg.HostApp.TimeoutMS = 0 },
			wantError:   "host_app.timeout_ms must be positive",
		},
	}

	for _, test := range testCases {
		cfg := newDefaultConfig(t)
		test.mutate(cfg)
		err := cfg.validate()
		if test.wantError == "" {
			assert.NoError(t, err, test.description)
		} else {
			if assert.Error(t, err, test.description) {
				assert.True(t, strings.Contains(err.Error(), test.wantError), test.description)
			}
		}
	}
}

func TestEnvOverride(t *testing.T) {
	v := viper.New()
	SetupViper(v, "")
	v.Set("cooldown_ms", 1000)
	v.Set("ad_pool.urls", []string{"https://ads.example/one"})

	cfg, err := New(v)
	assert.NoError(t, err)
	assert.Equal(t, int64(1000), cfg.CooldownMS)
	assert.Equal(t, []string{"https://ads.example/one"}, cfg.AdPool.URLs)
}
