package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	Init()

	cfg := Load()
	assert.Empty(t, cfg.Reference.CatalogPath)
	assert.Empty(t, cfg.Reference.RulesPath)
	assert.Equal(t, 0.6, cfg.Engine.Threshold)
	assert.Equal(t, "plain", cfg.Output.Format)
	assert.Empty(t, cfg.Output.Path)
	assert.False(t, cfg.Output.Pretty)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadEnvOverride(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("OPSIG_THRESHOLD", "0.8")
	t.Setenv("OPSIG_FORMAT", "json")
	Init()

	cfg := Load()
	assert.Equal(t, 0.8, cfg.Engine.Threshold)
	assert.Equal(t, "json", cfg.Output.Format)
}
