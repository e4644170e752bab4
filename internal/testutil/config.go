// Package testutil provides common test helpers for the libra project.
package testutil

import (
	"testing"

	"github.com/spf13/viper"

	"github.com/lepinkainen/libra/internal/config"
)

// ConfigState holds the state of the config package variables.
type ConfigState struct {
	DatabaseFile      string
	GutendexBaseURL   string
	ServerListen      string
	MarkdownOutputDir string
}

// SaveConfigState captures the current state of config package variables.
func SaveConfigState() ConfigState {
	return ConfigState{
		DatabaseFile:      config.DatabaseFile,
		GutendexBaseURL:   config.GutendexBaseURL,
		ServerListen:      config.ServerListen,
		MarkdownOutputDir: config.MarkdownOutputDir,
	}
}

// RestoreConfigState restores the config package variables to a saved state.
func RestoreConfigState(state ConfigState) {
	config.DatabaseFile = state.DatabaseFile
	config.GutendexBaseURL = state.GutendexBaseURL
	config.ServerListen = state.ServerListen
	config.MarkdownOutputDir = state.MarkdownOutputDir
}

// ResetConfig saves the current config state and schedules restoration
// when the test completes. It also resets viper.
func ResetConfig(t *testing.T) {
	t.Helper()

	state := SaveConfigState()
	viper.Reset()

	t.Cleanup(func() {
		RestoreConfigState(state)
		viper.Reset()
	})
}

// SetViperValue sets a viper configuration value and schedules cleanup.
func SetViperValue(t *testing.T, key string, value any) {
	t.Helper()

	oldValue := viper.Get(key)
	hadValue := viper.IsSet(key)

	viper.Set(key, value)

	t.Cleanup(func() {
		if hadValue {
			viper.Set(key, oldValue)
		}
	})
}
