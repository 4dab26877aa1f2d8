// Package testutil provides shared test helpers for creating config files and word list fixtures.
package testutil

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/letterquiz/internal/quiz"
	"github.com/at-ishikawa/letterquiz/schemas"
)

// SetupTestConfig creates a word list, an output directory and a config file reading them.
// Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string) string {
	t.Helper()

	wordListPath := WriteWordList(t, tmpDir, "unit3.txt", "hello:你好\nworld:世界\ncat:动物\n")
	outputDir := filepath.Join(tmpDir, "outputs")
	require.NoError(t, os.MkdirAll(outputDir, 0755))

	configContent := fmt.Sprintf(`wordlist:
  source: file
  path: %s
quiz:
  seed: 42
  advance: correct
worksheet:
  output_directory: %s
`,
		wordListPath,
		outputDir,
	)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// SetupTestDatabaseConfig creates a SQLite word list database and a config file reading listName from it.
func SetupTestDatabaseConfig(t *testing.T, tmpDir string, listName string, entries []quiz.Entry) string {
	t.Helper()

	dbPath := CreateWordListDatabase(t, filepath.Join(tmpDir, "words.db"), listName, entries)
	configContent := fmt.Sprintf(`wordlist:
  source: database
  list_name: %s
database:
  driver: sqlite3
  path: %s
  connect_attempts: 1
worksheet:
  output_directory: %s
`,
		listName,
		dbPath,
		filepath.Join(tmpDir, "outputs"),
	)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// WriteWordList writes a word list file under dir and returns its path
func WriteWordList(t *testing.T, dir string, name string, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// CreateWordListDatabase creates a SQLite database with the word list schema and
// stores entries under listName in their order. Returns the database path.
func CreateWordListDatabase(t *testing.T, path string, listName string, entries []quiz.Entry) string {
	t.Helper()

	db, err := sqlx.Open("sqlite3", path)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, db.Close())
	}()

	migrations, err := fs.Glob(schemas.Migrations, "migrations/*.sql")
	require.NoError(t, err)
	for _, migration := range migrations {
		statements, err := fs.ReadFile(schemas.Migrations, migration)
		require.NoError(t, err)
		_, err = db.Exec(string(statements))
		require.NoError(t, err, migration)
	}

	for i, entry := range entries {
		_, err := db.Exec(
			"INSERT INTO words (id, list_name, position, word, meaning) VALUES (?, ?, ?, ?, ?)",
			i+1, listName, i, entry.Word, entry.Meaning,
		)
		require.NoError(t, err)
	}
	return path
}
