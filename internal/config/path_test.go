package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	t.Setenv("KASA_TEST_DIR", "/var/data")

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty", input: "", expected: ""},
		{name: "plain path untouched", input: "/tmp/kasa.db", expected: "/tmp/kasa.db"},
		{name: "bare tilde", input: "~", expected: home},
		{name: "tilde prefix", input: "~/kasa/kasa.db", expected: filepath.Join(home, "kasa/kasa.db")},
		{name: "env var", input: "$KASA_TEST_DIR/kasa.db", expected: "/var/data/kasa.db"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExpandPath(tt.input))
		})
	}
}

func TestDefaultDataPath(t *testing.T) {
	path := DefaultDataPath()

	assert.NotContains(t, path, "$")
	assert.True(t, filepath.IsAbs(path))
	assert.Equal(t, "kasa.db", filepath.Base(path))
}
