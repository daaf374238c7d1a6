package main

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"profile-service/config"
	"profile-service/handlers"
	"profile-service/routes"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

func testLoadedConfig() config.Config {
	return config.Config{
		AppEnv: "dev",
		Port:   "8080",
		CORS:   config.CORSConfig{AllowedOrigins: []string{"*"}},
	}
}

func noopTelemetry(context.Context, config.Config) (func(context.Context) error, error) {
	return func(context.Context) error { return nil }, nil
}

func TestRunSuccess(t *testing.T) {
	t.Setenv("APP_ENV", "dev")
	originalLoadEnv := loadEnv
	originalLoadConfig := loadConfig
	originalInitTelemetry := initTelemetry
	originalSetupRoutes := setupRoutes
	originalListenAndServe := listenAndServe

	loadEnv = func(_ ...string) error { return errors.New("no env") }
	loadConfig = func() (config.Config, error) { return testLoadedConfig(), nil }
	initTelemetry = noopTelemetry
	setupRoutes = func(profileHandler *handlers.ProfileHandler) *mux.Router {
		assert.NotNil(t, profileHandler)
		return mux.NewRouter()
	}
	var listenAddr string
	listenAndServe = func(addr string, handler http.Handler) error {
		listenAddr = addr
		assert.NotNil(t, handler)
		return nil
	}

	defer func() {
		loadEnv = originalLoadEnv
		loadConfig = originalLoadConfig
		initTelemetry = originalInitTelemetry
		setupRoutes = originalSetupRoutes
		listenAndServe = originalListenAndServe
	}()

	assert.NoError(t, run())
	assert.Equal(t, ":8080", listenAddr)
}

func TestRunDefaultsPortWhenEmpty(t *testing.T) {
	t.Setenv("APP_ENV", "")
	originalLoadEnv := loadEnv
	originalLoadConfig := loadConfig
	originalInitTelemetry := initTelemetry
	originalSetupRoutes := setupRoutes
	originalListenAndServe := listenAndServe

	loadEnv = func(_ ...string) error { return nil }
	loadConfig = func() (config.Config, error) {
		cfg := testLoadedConfig()
		cfg.Port = ""
		return cfg, nil
	}
	initTelemetry = noopTelemetry
	setupRoutes = routes.SetupRoutes
	var listenAddr string
	listenAndServe = func(addr string, handler http.Handler) error {
		listenAddr = addr
		return nil
	}

	defer func() {
		loadEnv = originalLoadEnv
		loadConfig = originalLoadConfig
		initTelemetry = originalInitTelemetry
		setupRoutes = originalSetupRoutes
		listenAndServe = originalListenAndServe
	}()

	assert.NoError(t, run())
	assert.Equal(t, ":8080", listenAddr)
}

func TestRunConfigError(t *testing.T) {
	t.Setenv("APP_ENV", "dev")
	originalLoadEnv := loadEnv
	originalLoadConfig := loadConfig
	loadEnv = func(_ ...string) error { return nil }
	loadConfig = func() (config.Config, error) { return config.Config{}, errors.New("config error") }
	defer func() {
		loadEnv = originalLoadEnv
		loadConfig = originalLoadConfig
	}()

	assert.Error(t, run())
}

func TestRunTelemetryError(t *testing.T) {
	t.Setenv("APP_ENV", "dev")
	originalLoadEnv := loadEnv
	originalLoadConfig := loadConfig
	originalInitTelemetry := initTelemetry
	loadEnv = func(_ ...string) error { return nil }
	loadConfig = func() (config.Config, error) { return testLoadedConfig(), nil }
	initTelemetry = func(context.Context, config.Config) (func(context.Context) error, error) {
		return nil, errors.New("telemetry error")
	}
	defer func() {
		loadEnv = originalLoadEnv
		loadConfig = originalLoadConfig
		initTelemetry = originalInitTelemetry
	}()

	assert.Error(t, run())
}

func TestRunListenError(t *testing.T) {
	t.Setenv("APP_ENV", "dev")
	originalLoadEnv := loadEnv
	originalLoadConfig := loadConfig
	originalInitTelemetry := initTelemetry
	originalSetupRoutes := setupRoutes
	originalListenAndServe := listenAndServe

	loadEnv = func(_ ...string) error { return nil }
	loadConfig = func() (config.Config, error) { return testLoadedConfig(), nil }
	initTelemetry = noopTelemetry
	setupRoutes = func(profileHandler *handlers.ProfileHandler) *mux.Router {
		return mux.NewRouter()
	}
	listenAndServe = func(addr string, handler http.Handler) error { return errors.New("listen error") }

	defer func() {
		loadEnv = originalLoadEnv
		loadConfig = originalLoadConfig
		initTelemetry = originalInitTelemetry
		setupRoutes = originalSetupRoutes
		listenAndServe = originalListenAndServe
	}()

	assert.Error(t, run())
}

func TestMainFunction(t *testing.T) {
	t.Setenv("APP_ENV", "dev")
	originalLoadEnv := loadEnv
	originalLoadConfig := loadConfig
	originalInitTelemetry := initTelemetry
	originalSetupRoutes := setupRoutes
	originalListenAndServe := listenAndServe
	originalLogFatal := logFatal

	loadEnv = func(_ ...string) error { return nil }
	loadConfig = func() (config.Config, error) { return testLoadedConfig(), nil }
	initTelemetry = noopTelemetry
	setupRoutes = func(profileHandler *handlers.ProfileHandler) *mux.Router {
		return mux.NewRouter()
	}
	listenAndServe = func(addr string, handler http.Handler) error { return nil }

	defer func() {
		loadEnv = originalLoadEnv
		loadConfig = originalLoadConfig
		initTelemetry = originalInitTelemetry
		setupRoutes = originalSetupRoutes
		listenAndServe = originalListenAndServe
		logFatal = originalLogFatal
	}()

	main()
}

func TestMainFunctionError(t *testing.T) {
	t.Setenv("APP_ENV", "dev")
	originalLoadEnv := loadEnv
	originalLoadConfig := loadConfig
	originalLogFatal := logFatal
	loadEnv = func(_ ...string) error { return nil }
	loadConfig = func() (config.Config, error) { return config.Config{}, errors.New("config error") }
	called := false
	logFatal = func(args ...interface{}) {
		called = true
	}
	defer func() {
		loadEnv = originalLoadEnv
		loadConfig = originalLoadConfig
		logFatal = originalLogFatal
	}()

	main()
	assert.True(t, called)
}
