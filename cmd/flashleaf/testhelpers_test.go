package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// setConfigFile sets the global configFile variable and registers a cleanup to restore it.
func setConfigFile(t *testing.T, cfgPath string) {
	t.Helper()
	oldConfigFile := configFile
	configFile = cfgPath
	t.Cleanup(func() { configFile = oldConfigFile })
}

// setupBrokenConfigFile creates a config file with invalid YAML that causes Load() to fail.
func setupBrokenConfigFile(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("{{invalid yaml content"), 0644))
	return cfgPath
}

// clearSessionEnv blanks the environment-only secrets so tests run without
// a remote session regardless of the host environment.
func clearSessionEnv(t *testing.T) {
	t.Helper()
	t.Setenv("FLASHLEAF_API_KEY", "")
	t.Setenv("FLASHLEAF_USER_ID", "")
	t.Setenv("FLASHLEAF_ACCESS_TOKEN", "")
	t.Setenv("GEMINI_API_KEY", "")
}
