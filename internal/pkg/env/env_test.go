package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvInt(t *testing.T) {
	t.Setenv("WAVEFORGE_TEST_WORKERS", "7")
	assert.Equal(t, 7, GetEnvInt("WAVEFORGE_TEST_WORKERS", 3))

	t.Setenv("WAVEFORGE_TEST_WORKERS", "not-a-number")
	assert.Equal(t, 3, GetEnvInt("WAVEFORGE_TEST_WORKERS", 3))

	assert.Equal(t, 5, GetEnvInt("WAVEFORGE_TEST_UNSET", 5))
}

func TestGetEnvPrefersProcessEnvironment(t *testing.T) {
	Env = map[string]string{"WAVEFORGE_TEST_KEY": "from-file"}
	t.Cleanup(func() { Env = nil })

	assert.Equal(t, "from-file", GetEnv("WAVEFORGE_TEST_KEY", "def"))

	t.Setenv("WAVEFORGE_TEST_KEY", "from-process")
	assert.Equal(t, "from-process", GetEnv("WAVEFORGE_TEST_KEY", "def"))
}
