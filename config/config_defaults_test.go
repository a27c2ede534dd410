package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	require.NotNil(t, cfg.Auth)
	assert.Equal(t, DefaultBcryptCost, cfg.Auth.BcryptCost)
	assert.Equal(t, 30*24*time.Hour, cfg.Auth.TokenTTL)

	require.NotNil(t, cfg.Storage)
	assert.Equal(t, "mem://", cfg.Storage.BucketURL)
	assert.Equal(t, "licenses/", cfg.Storage.LicensePrefix)
	assert.Equal(t, int64(5<<20), cfg.Storage.MaxUploadBytes)

	require.NotNil(t, cfg.Database)
	assert.False(t, cfg.Database.AutoMigrate)

	require.NotNil(t, cfg.Accounting)
	assert.Equal(t, "weekly", cfg.Accounting.DefaultPayoutFrequency)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Auth:    &AuthConfig{BcryptCost: 12, TokenTTL: time.Hour},
		Storage: &StorageConfig{BucketURL: "file:///data", LicensePrefix: "docs/", MaxUploadBytes: 1024},
		Accounting: &AccountingConfig{
			FeePercent:             2.5,
			DefaultPayoutFrequency: "monthly",
		},
	}

	applyDefaults(cfg)

	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	assert.Equal(t, time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, "file:///data", cfg.Storage.BucketURL)
	assert.Equal(t, "docs/", cfg.Storage.LicensePrefix)
	assert.Equal(t, int64(1024), cfg.Storage.MaxUploadBytes)
	assert.Equal(t, "monthly", cfg.Accounting.DefaultPayoutFrequency)
	assert.InDelta(t, 2.5, cfg.Accounting.FeePercent, 0.0001)
}
