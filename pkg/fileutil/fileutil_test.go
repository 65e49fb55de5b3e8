package fileutil_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexanderjkslfj/nicebot/pkg/fileutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadInput_FromFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "robots.txt")
	require.NoError(t, os.WriteFile(path, []byte("User-agent: *\nDisallow: /private\n"), 0644))

	data, err := fileutil.ReadInput(path, strings.NewReader(""))
	require.Nil(t, err)
	assert.Equal(t, "User-agent: *\nDisallow: /private\n", string(data))
}

func TestReadInput_FromStdin(t *testing.T) {
	data, err := fileutil.ReadInput("-", strings.NewReader("User-agent: *\nAllow: /\n"))
	require.Nil(t, err)
	assert.Equal(t, "User-agent: *\nAllow: /\n", string(data))
}

func TestReadInput_MissingFile(t *testing.T) {
	_, err := fileutil.ReadInput("/nonexistent/robots.txt", strings.NewReader(""))
	require.NotNil(t, err)

	var fileErr *fileutil.FileError
	if assert.ErrorAs(t, err, &fileErr) {
		assert.False(t, fileErr.Retryable)
		assert.Equal(t, fileutil.ErrCausePathError, fileErr.Cause)
	}
}
