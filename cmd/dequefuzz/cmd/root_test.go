package cmd_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucasgdosr/deque/v2/cmd/dequefuzz/cmd"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := cmd.NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRootPrintsEverySubject(t *testing.T) {
	out, err := execute(t, "--steps", "256", "--workers", "2", "--seed", "7")
	require.NoError(t, err)
	for _, name := range []string{"reference", "deque<0>", "deque<1>", "deque<2>", "deque<4>", "deque<16>", "deque<64>"} {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "all subjects agree")
}

func TestRootMetrics(t *testing.T) {
	out, err := execute(t, "--steps", "128", "--workers", "1", "--metrics")
	require.NoError(t, err)
	assert.Contains(t, out, "deque_allocator_constructs_total")
	assert.Contains(t, out, "deque<4>/0")
}

func TestRootConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dequefuzz.yaml")
	require.NoError(t, os.WriteFile(path, []byte("steps: 64\nworkers: 3\nmax_target: 4\n"), 0o600))

	out, err := execute(t, "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "3 workers x 64 steps")
}

func TestRootEnvironment(t *testing.T) {
	t.Setenv("DEQUEFUZZ_WORKERS", "0")
	_, err := execute(t, "--steps", "16")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "workers must be at least 1")
}

func TestRootFlagsOverrideEnvironment(t *testing.T) {
	t.Setenv("DEQUEFUZZ_WORKERS", "0")
	out, err := execute(t, "--steps", "16", "--workers", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "1 workers x 16 steps")
}

func TestRootRejectsBadLogFormat(t *testing.T) {
	_, err := execute(t, "--steps", "16", "--log-format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown log format")
}

func TestRootMissingConfigFile(t *testing.T) {
	_, err := execute(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}
