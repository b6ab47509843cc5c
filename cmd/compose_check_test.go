package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunComposeCheck(t *testing.T) {
	t.Run("repository compose file", func(t *testing.T) {
		var out bytes.Buffer
		err := RunComposeCheck("../docker-compose.yml", &out, nil)
		require.NoError(t, err)
		assert.Contains(t, out.String(), "is valid")
	})

	t.Run("violations are printed", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "docker-compose.yml")
		require.NoError(t, os.WriteFile(path, []byte(`
services:
  api:
    build: .
    ports:
      - "8000:8000"
`), 0o600))

		var out bytes.Buffer
		err := RunComposeCheck(path, &out, nil)
		assert.Error(t, err)
		assert.Contains(t, out.String(), "expected exactly the services")
		assert.Contains(t, out.String(), `api: depends_on must contain "db"`)
	})

	t.Run("missing file", func(t *testing.T) {
		err := RunComposeCheck(filepath.Join(t.TempDir(), "nope.yml"), &bytes.Buffer{}, nil)
		assert.Error(t, err)
	})
}
