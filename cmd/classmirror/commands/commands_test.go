package commands_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/classmirror/cmd/classmirror/commands"
	"go.trai.ch/classmirror/internal/adapters/config"
	"go.trai.ch/classmirror/internal/adapters/fs"
	adapterlog "go.trai.ch/classmirror/internal/adapters/logger"
	"go.trai.ch/classmirror/internal/adapters/manifest"
	"go.trai.ch/classmirror/internal/adapters/report"
	"go.trai.ch/classmirror/internal/adapters/telemetry"
	"go.trai.ch/classmirror/internal/app"
	"go.trai.ch/classmirror/internal/engine/mirror"
)

func newCLI(t *testing.T) *commands.CLI {
	t.Helper()
	tracer := telemetry.NewSwitch()
	logger := adapterlog.NewWithWriter(&bytes.Buffer{})
	engine := mirror.NewEngine(
		fs.NewWalker(),
		fs.NewResolver(),
		fs.NewCopier(),
		fs.NewHasher(),
		report.NewWithWriter(&bytes.Buffer{}),
		manifest.NewStore(),
		tracer,
		adapterlog.NewWithWriter(&bytes.Buffer{}),
	)
	a := app.New(config.NewLoader(), engine, logger)
	return commands.New(app.NewComponents(a, logger, tracer))
}

func TestRun_Success(t *testing.T) {
	sourceDir := t.TempDir()
	classDir := t.TempDir()
	outputDir := filepath.Join(t.TempDir(), "out")

	require.NoError(t, os.WriteFile(filepath.Join(sourceDir, "Main.java"), []byte("src"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(classDir, "Main.class"),
		[]byte{0xCA, 0xFE, 0xBA, 0xBE, 0x00, 0x00, 0x00, 0x37}, 0o600))

	cli := newCLI(t)
	cli.SetArgs([]string{
		"run",
		"--source", sourceDir,
		"--classes", classDir,
		"--output", outputDir,
	})

	err := cli.Execute(context.Background())
	require.NoError(t, err)

	_, statErr := os.Stat(filepath.Join(outputDir, "Main.class"))
	assert.NoError(t, statErr)
}

func TestRun_MissingFlags(t *testing.T) {
	cli := newCLI(t)
	cli.SetArgs([]string{"run"})

	err := cli.Execute(context.Background())
	assert.Error(t, err)
}

func TestRun_MissingSourceDir(t *testing.T) {
	cli := newCLI(t)
	cli.SetArgs([]string{
		"run",
		"-s", filepath.Join(t.TempDir(), "absent"),
		"-c", t.TempDir(),
		"-o", filepath.Join(t.TempDir(), "out"),
	})

	err := cli.Execute(context.Background())
	assert.Error(t, err)
}

func TestRun_ProgressFlag(t *testing.T) {
	sourceDir := t.TempDir()
	classDir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(sourceDir, "Main.java"), []byte("src"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(classDir, "Main.class"),
		[]byte{0xCA, 0xFE, 0xBA, 0xBE, 0x00, 0x00, 0x00, 0x37}, 0o600))

	var stderr bytes.Buffer
	cli := newCLI(t)
	cli.SetErr(&stderr)
	cli.SetArgs([]string{
		"run",
		"--source", sourceDir,
		"--classes", classDir,
		"--output", filepath.Join(t.TempDir(), "out"),
		"--progress",
	})

	require.NoError(t, cli.Execute(context.Background()))

	// The progress stream names the run phases as they complete.
	assert.Contains(t, stderr.String(), "resolve artifacts")
	assert.Contains(t, stderr.String(), "copy artifacts")
}

func TestVersion(t *testing.T) {
	cli := newCLI(t)
	cli.SetArgs([]string{"version"})

	err := cli.Execute(context.Background())
	assert.NoError(t, err)
}
