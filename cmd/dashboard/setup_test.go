package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ougirez/energy-dashboard/internal/pkg/config"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runLoadConfig executes a throwaway subcommand under the real root so that
// persistent flags are parsed exactly as for serve and export.
func runLoadConfig(t *testing.T, args ...string) config.Config {
	t.Helper()

	var (
		configFile string
		cfg        config.Config
	)
	root := newRootCmd(&configFile)
	root.AddCommand(&cobra.Command{
		Use: "load",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			cfg, err = loadConfig(cmd, configFile)
			return err
		},
	})
	root.SetArgs(append([]string{"load"}, args...))

	require.NoError(t, root.Execute())
	return cfg
}

func TestFlagOverridesEnvironment(t *testing.T) {
	t.Setenv("TRIPHORIUM_API_URL", "http://env.local")

	cfg := runLoadConfig(t, "--api-url", "http://flag.local")
	assert.Equal(t, "http://flag.local", cfg.APIURL)
}

func TestUnsetFlagKeepsEnvironment(t *testing.T) {
	t.Setenv("TRIPHORIUM_API_URL", "http://env.local")
	t.Setenv("TRIPHORIUM_LOG_LEVEL", "warn")

	cfg := runLoadConfig(t)
	assert.Equal(t, "http://env.local", cfg.APIURL)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestFlagOverridesConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dashboard.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api_url: http://file.local\nlog:\n  level: error\n"), 0o600))

	cfg := runLoadConfig(t, "--config", path, "--log-level", "debug")
	assert.Equal(t, "http://file.local", cfg.APIURL)
	assert.Equal(t, "debug", cfg.Log.Level)
}
