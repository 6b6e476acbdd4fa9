package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplogFileLogging(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "logs", "commitmsg.log")

	splog, err := NewSplogWithConfig(logPath)
	require.NoError(t, err)

	// Debug is suppressed on the console by default but always reaches the file
	splog.Debug("parsed message: type=%s", "feat")
	require.NoError(t, splog.Close())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	require.Contains(t, string(data), "parsed message: type=feat")
}

func TestSplogCreatesLogDirectory(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "nested", "dir", "commitmsg.log")

	splog, err := NewSplogWithConfig(logPath)
	require.NoError(t, err)
	defer func() { _ = splog.Close() }()

	_, err = os.Stat(filepath.Dir(logPath))
	require.NoError(t, err)
}
