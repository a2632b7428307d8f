package garden

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestController(t *testing.T) Controller {
	t.Helper()

	c, err := NewController(Settings{
		DBPath: filepath.Join(t.TempDir(), "test.sqlite"),
	})
	require.NoError(t, err)

	return c
}
