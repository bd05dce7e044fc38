package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/jaimeyzzz/qiwurun/internal/launcher"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewListCmd(t *testing.T) {
	t.Parallel()

	log := zerolog.New(io.Discard)
	cmd := NewListCmd(testConfig(t), &log)

	assert.NotNil(t, cmd)
	assert.Equal(t, "list", cmd.Use)
	assert.NotNil(t, cmd.Flags().Lookup("json"))
	assert.NotNil(t, cmd.Flags().Lookup("config-root"))
}

func TestListCmd_JSONOutput(t *testing.T) {
	root := t.TempDir()
	expsDir := filepath.Join(root, "resources", "exps")
	require.NoError(t, os.MkdirAll(filepath.Join(expsDir, "cloth"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(expsDir, "basic.yaml"), []byte("a: 1\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(expsDir, "cloth", "drape.yml"), []byte("b: 2\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(expsDir, "notes.txt"), []byte("skip"), 0644))

	log := zerolog.New(io.Discard)
	cmd := NewListCmd(testConfig(t), &log)

	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs([]string{"--config-root", root, "--json"})

	require.NoError(t, cmd.Execute())

	var entries []launcher.ConfigEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, "basic", entries[0].Name)
	assert.Equal(t, "drape", entries[1].Name)
}

func TestListCmd_TableOutput(t *testing.T) {
	root := t.TempDir()
	expsDir := filepath.Join(root, "resources", "exps")
	require.NoError(t, os.MkdirAll(expsDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(expsDir, "demo.yaml"), []byte("a: 1\n"), 0644))

	log := zerolog.New(io.Discard)
	cmd := NewListCmd(testConfig(t), &log)

	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs([]string{"--config-root", root})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "demo")
}

func TestListCmd_MissingDirIsEmptyState(t *testing.T) {
	root := t.TempDir()

	log := zerolog.New(io.Discard)
	cmd := NewListCmd(testConfig(t), &log)

	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs([]string{"--config-root", root})

	// Missing resources dir is a reportable empty state, not a failure
	assert.NoError(t, cmd.Execute())
}

func TestListCmd_MissingDirJSON(t *testing.T) {
	root := t.TempDir()

	log := zerolog.New(io.Discard)
	cmd := NewListCmd(testConfig(t), &log)

	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs([]string{"--config-root", root, "--json"})

	require.NoError(t, cmd.Execute())

	// Missing and empty config dirs must serialize the same way
	assert.Equal(t, "[]\n", buf.String())
}

func TestListCmd_EmptyDirJSON(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "resources", "exps"), 0755))

	log := zerolog.New(io.Discard)
	cmd := NewListCmd(testConfig(t), &log)

	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs([]string{"--config-root", root, "--json"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "[]\n", buf.String())
}
