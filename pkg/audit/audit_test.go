package audit

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input_log.txt")
	l := New(path, WithClock(func() string { return "2024-05-01 14:30:05" }))

	require.NoError(t, l.Log(ActionAdd, "Laptop;LP01;ThinkPad;Lenovo;1000;5;true;24"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t,
		"[2024-05-01 14:30:05] ADD          | Laptop;LP01;ThinkPad;Lenovo;1000;5;true;24\n",
		string(data))
}

func TestLogAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input_log.txt")
	l := New(path, WithClock(func() string { return "2024-05-01 14:30:05" }))

	require.NoError(t, l.Log(ActionSellFail, "ID=LP01 not active"))
	require.NoError(t, l.Logf(ActionSell, "id=%s, qty=%d, total=%.2f", "LP01", 2, 1710.0))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "SELL_FAIL")
	assert.Contains(t, lines[1], "id=LP01, qty=2, total=1710.00")
}

func TestNewDefaultsPath(t *testing.T) {
	l := New("")
	assert.Equal(t, "input_log.txt", l.Path())
}
