package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

const darkPaletteYAML = `version: "1.0.0"
name: night
colors:
  - name: nearblack
    value: "rgb(20, 22, 30)"
  - name: charcoal
    value: "rgb(34, 37, 48)"
  - name: slateshadow
    value: "rgb(47, 51, 65)"
  - name: paper
    value: "rgb(235, 237, 243)"
  - name: mist
    value: "rgb(185, 190, 204)"
  - name: edge
    value: "rgb(56, 60, 76)"
  - name: steel
    value: "rgb(108, 114, 132)"
  - name: azure
    value: "rgb(96, 156, 255)"
  - name: deepsea
    value: "rgb(38, 62, 110)"
  - name: brick
    value: "rgb(168, 84, 72)"
`

func writePaletteFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "palette.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func executeCommand(cmd *cobra.Command, args ...string) (string, error) {
	cmd.SetArgs(args)
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	err := cmd.Execute()
	return buf.String(), err
}

func TestDeriveCommandPrintsConfigurations(t *testing.T) {
	path := writePaletteFile(t, darkPaletteYAML)

	out, err := executeCommand(newRootCmd(), "derive", "--palette", path, "--mode", "dark", "--seed", "7")
	require.NoError(t, err)

	require.Contains(t, out, "4 dark-mode configuration(s)")
	require.Contains(t, out, "bgApp")
	require.Contains(t, out, "nearblack")
	require.Contains(t, out, "destructive")
	require.Contains(t, out, "brick")
}

func TestDeriveCommandJSONOutput(t *testing.T) {
	path := writePaletteFile(t, darkPaletteYAML)

	out, err := executeCommand(newRootCmd(), "derive", "--palette", path, "--mode", "dark", "--seed", "7", "--json")
	require.NoError(t, err)

	var payload deriveJSONPayload
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	require.Len(t, payload.Configurations, 4)
	require.Equal(t, "nearblack", payload.Configurations[0].Tokens["bgApp"].Name)
	require.Equal(t, "brick", payload.Destructive.Name)
}

func TestDeriveCommandIsReproducibleWithSeed(t *testing.T) {
	path := writePaletteFile(t, darkPaletteYAML)

	first, err := executeCommand(newRootCmd(), "derive", "--palette", path, "--seed", "42")
	require.NoError(t, err)
	second, err := executeCommand(newRootCmd(), "derive", "--palette", path, "--seed", "42")
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestDeriveCommandRejectsMissingPalette(t *testing.T) {
	_, err := executeCommand(newRootCmd(), "derive", "--palette", "/path/does/not/exist")
	require.Error(t, err)
	require.Contains(t, err.Error(), "does not exist")
}

func TestDeriveCommandRejectsUnknownMode(t *testing.T) {
	path := writePaletteFile(t, darkPaletteYAML)

	_, err := executeCommand(newRootCmd(), "derive", "--palette", path, "--mode", "sepia")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown mode")
}
