package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/flashleaf/flashleaf/internal/testutil"
)

func TestNewReviewCommand_RunE_NoAPIKey(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := testutil.SetupTestConfig(t, tmpDir)
	setConfigFile(t, cfgPath)
	clearSessionEnv(t)

	cmd := newReviewCommand()
	cmd.SetArgs([]string{})
	err := cmd.Execute()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
}

func TestNewReviewCommand_RunE_InvalidConfig(t *testing.T) {
	cfgPath := setupBrokenConfigFile(t)
	setConfigFile(t, cfgPath)
	clearSessionEnv(t)

	cmd := newReviewCommand()
	cmd.SetArgs([]string{})
	err := cmd.Execute()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "configuration")
}
