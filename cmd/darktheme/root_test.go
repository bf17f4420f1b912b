package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags restores every flag to its default between runs, since cobra
// keeps flag state on the package-level commands.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return stdout.String(), err
}

type cliEnv struct {
	statePath  string
	configPath string
}

func newCLIEnv(t *testing.T) cliEnv {
	t.Helper()
	dir := t.TempDir()
	// Keep detection away from the host's settings
	t.Setenv("DARKTHEME_PREFERS_DARK", "")
	return cliEnv{
		statePath:  filepath.Join(dir, "state.json"),
		configPath: filepath.Join(dir, "config.toml"),
	}
}

func (e cliEnv) run(t *testing.T, args ...string) string {
	t.Helper()
	full := append([]string{"--state-file", e.statePath, "--config", e.configPath}, args...)
	out, err := runCLI(t, full...)
	require.NoError(t, err)
	return strings.TrimSpace(out)
}

func TestCLI_InitScenarios(t *testing.T) {
	env := newCLIEnv(t)

	assert.Equal(t, "dark", env.run(t, "init", "--prefers-dark"))
	assert.Equal(t, "unset", env.run(t, "init", "--prefers-light"))
	assert.Equal(t, "unset", env.run(t, "--prefers-light"), "root command resolves like init")

	// init never writes the state file
	_, err := os.Stat(env.statePath)
	assert.True(t, os.IsNotExist(err))

	env.run(t, "light", "--prefers-light")
	assert.Equal(t, "light", env.run(t, "init", "--prefers-dark"), "stored light overrides system dark")
}

func TestCLI_Toggle(t *testing.T) {
	env := newCLIEnv(t)

	// Unset + click -> dark
	assert.Equal(t, "dark", env.run(t, "toggle", "--prefers-light"))
	// Stored dark + click -> light
	assert.Equal(t, "light", env.run(t, "toggle", "--prefers-light"))
	// Stored light + click -> dark
	assert.Equal(t, "dark", env.run(t, "toggle", "--prefers-dark"))

	assert.Equal(t, "", env.run(t, "toggle", "-q", "--prefers-dark"))
	assert.Equal(t, "light", env.run(t, "init", "--prefers-dark"))
}

func TestCLI_DarkIsIdempotent(t *testing.T) {
	env := newCLIEnv(t)

	assert.Equal(t, "dark", env.run(t, "dark", "--prefers-light"))
	assert.Equal(t, "dark", env.run(t, "dark", "--prefers-light"))
	assert.Equal(t, "dark", env.run(t, "init", "--prefers-light"))
}

func TestCLI_StatusJSON(t *testing.T) {
	env := newCLIEnv(t)
	env.run(t, "toggle", "--prefers-light")

	out := env.run(t, "status", "--format", "json", "--prefers-light")

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "dark", got["stored"])
	assert.Equal(t, "dark", got["applied"])
	assert.Equal(t, map[string]any{"prefers_dark": false, "source": "flag"}, got["system"])

	tr, ok := got["last_transition"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "dark", tr["to"])
	assert.Equal(t, "toggle", tr["source"])
}

func TestCLI_StatusInvalidFormat(t *testing.T) {
	env := newCLIEnv(t)
	_, err := runCLI(t, "--state-file", env.statePath, "--config", env.configPath,
		"status", "--format", "xml", "--prefers-dark")
	assert.ErrorContains(t, err, "invalid format")
}

func TestCLI_StatusEmptyConfigFormatIsPlain(t *testing.T) {
	env := newCLIEnv(t)
	require.NoError(t, os.WriteFile(env.configPath, []byte("[output]\nformat = \"\"\n"), 0644))

	out := env.run(t, "status", "--prefers-dark")
	assert.Contains(t, out, "Theme: dark")
	assert.Contains(t, out, "System prefers dark: true (source: flag)")
}

func TestCLI_System(t *testing.T) {
	env := newCLIEnv(t)
	out := env.run(t, "system", "--prefers-dark")
	assert.Equal(t, "prefers dark: true (source: flag, detectors: flag)", out)
}

func TestCLI_SystemFromEnv(t *testing.T) {
	env := newCLIEnv(t)
	require.NoError(t, os.WriteFile(env.configPath, []byte("[system]\ndetectors = [\"env\"]\n"), 0644))
	t.Setenv("DARKTHEME_PREFERS_DARK", "1")

	assert.Equal(t, "dark", env.run(t, "init"))
	assert.Equal(t, "prefers dark: true (source: env, detectors: env)", env.run(t, "system"))
}

func TestCLI_ConflictingPreferenceFlags(t *testing.T) {
	env := newCLIEnv(t)
	_, err := runCLI(t, "--state-file", env.statePath, "--config", env.configPath,
		"init", "--prefers-dark", "--prefers-light")
	assert.Error(t, err)
}

func TestCLI_InvalidConfig(t *testing.T) {
	env := newCLIEnv(t)
	require.NoError(t, os.WriteFile(env.configPath, []byte("[system]\ntimeout = \"later\"\n"), 0644))

	_, err := runCLI(t, "--state-file", env.statePath, "--config", env.configPath, "init")
	assert.ErrorContains(t, err, "failed to load config")
}
