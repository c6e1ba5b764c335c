// Package testutil provides shared test helpers for creating config files
// and database fixtures.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

// SetupTestConfig creates a minimal config file and the databases it
// points at. Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string) string {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "data"), 0755))
	vocabularyPath := SetupVocabularyDB(t, tmpDir, map[string]string{
		"w1": "sun",
		"w2": "ladder",
	})

	configContent := fmt.Sprintf(`storage:
  path: %s
  vocabulary_path: %s
remote:
  base_url: https://example.supabase.co
  timeout_seconds: 5
`,
		filepath.Join(tmpDir, "data", "flashleaf.db"),
		vocabularyPath,
	)

	configPath := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))
	return configPath
}

// SetupVocabularyDB creates a vocabulary database with the given id to
// word mapping and returns its path.
func SetupVocabularyDB(t *testing.T, tmpDir string, words map[string]string) string {
	t.Helper()

	path := filepath.Join(tmpDir, "vocabulary.db")
	db, err := sqlx.Open("sqlite", path)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, db.Close())
	}()

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS words (id TEXT PRIMARY KEY, word TEXT NOT NULL)`)
	require.NoError(t, err)
	for id, word := range words {
		_, err = db.Exec(`INSERT INTO words (id, word) VALUES (?, ?)`, id, word)
		require.NoError(t, err)
	}
	return path
}
