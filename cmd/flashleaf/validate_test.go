package main

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flashleaf/flashleaf/internal/testutil"
)

func TestNewValidateCommand_RunE(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := testutil.SetupTestConfig(t, tmpDir)
	setConfigFile(t, cfgPath)
	clearSessionEnv(t)

	cmd := newValidateCommand()
	cmd.SetArgs([]string{})
	assert.NoError(t, cmd.Execute())
}

func TestNewValidateCommand_RunE_InvalidConfig(t *testing.T) {
	cfgPath := setupBrokenConfigFile(t)
	setConfigFile(t, cfgPath)
	clearSessionEnv(t)

	cmd := newValidateCommand()
	cmd.SetArgs([]string{})
	err := cmd.Execute()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "configuration")
}

func TestNewValidateCommand_RunE_MissingStoragePath(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("storage:\n  path: \"\"\n"), 0644))
	setConfigFile(t, cfgPath)
	clearSessionEnv(t)

	cmd := newValidateCommand()
	cmd.SetArgs([]string{})
	err := cmd.Execute()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestNewValidateCommand_RunE_MissingVocabularyFile(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "config.yaml")
	content := fmt.Sprintf("storage:\n  path: %s\n  vocabulary_path: %s\n",
		filepath.Join(tmpDir, "flashleaf.db"),
		filepath.Join(tmpDir, "does-not-exist.db"),
	)
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0644))
	setConfigFile(t, cfgPath)
	clearSessionEnv(t)

	cmd := newValidateCommand()
	cmd.SetArgs([]string{})
	err := cmd.Execute()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}
