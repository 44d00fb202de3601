package config_test

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/inputmask/pkg/config"
)

type successConfig struct {
	Locale   string `env:"TEST_MASK_LOCALE" envDefault:"en-US"`
	Decimals int    `env:"TEST_MASK_DECIMALS" envDefault:"2"`
	Negative bool   `env:"TEST_MASK_NEGATIVE" envDefault:"false"`
}

type defaultsConfig struct {
	Locale   string `env:"TEST_DEFAULT_LOCALE" envDefault:"pt-BR"`
	Decimals int    `env:"TEST_DEFAULT_DECIMALS" envDefault:"3"`
}

type requiredConfig struct {
	Value string `env:"TEST_REQUIRED_VALUE,required"`
}

type cachedConfig struct {
	Value string `env:"TEST_CACHED_VALUE" envDefault:"first"`
}

type concurrentConfig struct {
	Value string `env:"TEST_CONCURRENT_VALUE" envDefault:"shared"`
}

type prefixedConfig struct {
	Addr string `env:"ADDR" envDefault:":8080"`
}

type dotEnvConfig struct {
	Value string `env:"TEST_DOTENV_VALUE"`
}

func TestLoad(t *testing.T) {
	t.Run("reads environment", func(t *testing.T) {
		t.Setenv("TEST_MASK_LOCALE", "pt-BR")
		t.Setenv("TEST_MASK_DECIMALS", "3")
		t.Setenv("TEST_MASK_NEGATIVE", "true")

		var cfg successConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "pt-BR", cfg.Locale)
		assert.Equal(t, 3, cfg.Decimals)
		assert.True(t, cfg.Negative)
	})

	t.Run("applies defaults", func(t *testing.T) {
		var cfg defaultsConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "pt-BR", cfg.Locale)
		assert.Equal(t, 3, cfg.Decimals)
	})

	t.Run("nil pointer", func(t *testing.T) {
		require.ErrorIs(t, config.Load[successConfig](nil), config.ErrNilPointer)
	})

	t.Run("missing required value", func(t *testing.T) {
		var cfg requiredConfig
		err := config.Load(&cfg)
		require.ErrorIs(t, err, config.ErrParsingConfig)

		// the failure is cached as well
		require.ErrorIs(t, config.Load(&cfg), config.ErrParsingConfig)
	})

	t.Run("caches per type", func(t *testing.T) {
		var first cachedConfig
		require.NoError(t, config.Load(&first))

		t.Setenv("TEST_CACHED_VALUE", "second")
		var second cachedConfig
		require.NoError(t, config.Load(&second))
		assert.Equal(t, "first", second.Value)
	})

	t.Run("prefix", func(t *testing.T) {
		t.Setenv("HTTP_ADDR", ":9090")

		var prefixed prefixedConfig
		require.NoError(t, config.Load(&prefixed, config.WithPrefix("HTTP_")))
		assert.Equal(t, ":9090", prefixed.Addr)

		var plain prefixedConfig
		require.NoError(t, config.Load(&plain))
		assert.Equal(t, ":8080", plain.Addr)
	})

	t.Run("concurrent loads", func(t *testing.T) {
		var wg sync.WaitGroup
		for range 20 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				var cfg concurrentConfig
				assert.NoError(t, config.Load(&cfg))
				assert.Equal(t, "shared", cfg.Value)
			}()
		}
		wg.Wait()
	})
}

func TestMustLoad(t *testing.T) {
	assert.Panics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg)
	})
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("TEST_DOTENV_VALUE=from-file\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("TEST_DOTENV_VALUE") })

	require.NoError(t, config.LoadDotEnv(path))

	var cfg dotEnvConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "from-file", cfg.Value)

	require.ErrorIs(t, config.LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")), config.ErrDotEnv)
}
