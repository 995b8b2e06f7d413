package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"admin": map[string]any{
			"password": "",
		},
		"session": map[string]any{
			"cookieName": "campnav_admin_session",
		},
		"storage": map[string]any{
			"bucketUrl":     "mem://",
			"publicBaseUrl": "/files",
		},
		"auth": map[string]any{
			"loginRatePerMinute": 10,
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "ADMIN_PASSWORD", want: "admin.password"},
		{envKey: "SESSION_COOKIENAME", want: "session.cookieName"},
		{envKey: "STORAGE_BUCKETURL", want: "storage.bucketUrl"},
		{envKey: "STORAGE_PUBLICBASEURL", want: "storage.publicBaseUrl"},
		{envKey: "AUTH_LOGINRATEPERMINUTE", want: "auth.loginRatePerMinute"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	assert.Equal(t, "develop", cfg.Env.Env)
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, defaultSessionCookieName, cfg.Session.CookieName)
	assert.Equal(t, defaultSessionTTL, cfg.Session.TTL)
	assert.Equal(t, defaultLoginRatePerMinute, cfg.Auth.LoginRatePerMinute)
	assert.Equal(t, "mem://", cfg.Storage.BucketURL)
	assert.Equal(t, defaultPublicBaseURL, cfg.Storage.PublicBaseURL)
	assert.Equal(t, defaultMaxUploadSize, cfg.Storage.MaxUploadSize)
	assert.NotNil(t, cfg.PubSub)
}

func TestConfig_IsProduction(t *testing.T) {
	cfg := &Config{}
	for env, want := range map[string]bool{
		"production": true,
		"Prod":       true,
		"develop":    false,
		"staging":    false,
	} {
		cfg.Env.Env = env
		assert.Equal(t, want, cfg.IsProduction(), env)
	}
}
