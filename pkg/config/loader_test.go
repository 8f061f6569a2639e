package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/whitebox/pkg/config"
)

type TestConfigSuccess struct {
	TestString string `env:"TEST_STRING_SUCCESS" envDefault:"default_value"`
	TestInt    int    `env:"TEST_INT_SUCCESS" envDefault:"42"`
	TestBool   bool   `env:"TEST_BOOL_SUCCESS" envDefault:"true"`
}

type TestConfigDefault struct {
	TestString string `env:"TEST_STRING_DEFAULT" envDefault:"default_value"`
	TestInt    int    `env:"TEST_INT_DEFAULT" envDefault:"42"`
}

type TestConfigSingleton struct {
	TestString string `env:"TEST_STRING_SINGLETON" envDefault:"default_value"`
}

type RequiredConfig struct {
	Required string `env:"REQUIRED_VALUE,required"`
}

type nestedPolicy struct {
	Min int `env:"MIN" envDefault:"5"`
	Max int `env:"MAX" envDefault:"20"`
}

type NestedConfig struct {
	Name  string       `env:"APP_NAME" envDefault:"whitebox"`
	Login nestedPolicy `envPrefix:"LOGIN_"`
}

type DotenvConfig struct {
	Env      string `env:"APP_ENV"`
	LogLevel string `env:"LOG_LEVEL"`
	Name     string `env:"APP_NAME"`
}

func TestLoad_Success(t *testing.T) {
	t.Setenv("TEST_STRING_SUCCESS", "test_value")
	t.Setenv("TEST_INT_SUCCESS", "100")
	t.Setenv("TEST_BOOL_SUCCESS", "false")

	var cfg TestConfigSuccess
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "test_value", cfg.TestString)
	assert.Equal(t, 100, cfg.TestInt)
	assert.False(t, cfg.TestBool)
}

func TestLoad_DefaultValues(t *testing.T) {
	os.Unsetenv("TEST_STRING_DEFAULT")
	os.Unsetenv("TEST_INT_DEFAULT")

	var cfg TestConfigDefault
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "default_value", cfg.TestString)
	assert.Equal(t, 42, cfg.TestInt)
}

func TestLoad_MissingRequiredThenRetry(t *testing.T) {
	os.Unsetenv("REQUIRED_VALUE")

	var cfg RequiredConfig
	err := config.Load(&cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsingConfig)

	t.Setenv("REQUIRED_VALUE", "now-set")
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "now-set", cfg.Required)
}

func TestLoad_Singleton(t *testing.T) {
	t.Setenv("TEST_STRING_SINGLETON", "first_value")

	var first TestConfigSingleton
	require.NoError(t, config.Load(&first))

	t.Setenv("TEST_STRING_SINGLETON", "second_value")

	var second TestConfigSingleton
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "first_value", second.TestString, "cached value is returned")

	config.ResetCache()
	var third TestConfigSingleton
	require.NoError(t, config.Load(&third))
	assert.Equal(t, "second_value", third.TestString, "reset forces a fresh parse")
}

func TestLoad_NilPointer(t *testing.T) {
	var cfg *TestConfigSuccess
	assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
	assert.ErrorIs(t, config.Parse(cfg, nil), config.ErrNilPointer)
}

func TestMustLoad(t *testing.T) {
	os.Unsetenv("REQUIRED_VALUE")
	config.ResetCache()

	assert.Panics(t, func() {
		var cfg RequiredConfig
		config.MustLoad(&cfg)
	})
}

func TestParse(t *testing.T) {
	t.Setenv("APP_NAME", "from-process")

	t.Run("uses only the given map", func(t *testing.T) {
		var cfg NestedConfig
		require.NoError(t, config.Parse(&cfg, map[string]string{"LOGIN_MAX": "30"}))
		assert.Equal(t, "whitebox", cfg.Name)
		assert.Equal(t, 5, cfg.Login.Min)
		assert.Equal(t, 30, cfg.Login.Max)
	})

	t.Run("invalid value", func(t *testing.T) {
		var cfg NestedConfig
		err := config.Parse(&cfg, map[string]string{"LOGIN_MIN": "five"})
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})
}

func TestLoadEnv(t *testing.T) {
	for _, key := range []string{"APP_ENV", "LOG_LEVEL", "APP_NAME"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	config.ResetCache()

	require.NoError(t, config.LoadEnv("testdata/app.env"))
	t.Cleanup(func() {
		os.Unsetenv("APP_ENV")
		os.Unsetenv("LOG_LEVEL")
		os.Unsetenv("APP_NAME")
	})

	var cfg DotenvConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "staging", cfg.Env)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "whitebox cli", cfg.Name)

	assert.ErrorIs(t, config.LoadEnv("testdata/missing.env"), config.ErrLoadingEnvFile)
}
