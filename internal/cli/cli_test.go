package cli_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-es-collections/collections"
	"github.com/hasbyte1/go-es-collections/internal/cli"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := cli.NewCLI()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestBackends(t *testing.T) {
	out, err := execute(t, "backends")
	require.NoError(t, err)
	require.Contains(t, out, "NAME")
	for _, name := range []collections.BackendName{collections.BackendLinear, collections.BackendHashed, collections.BackendNative} {
		require.Contains(t, out, string(name))
	}
}

func TestProbe(t *testing.T) {
	out, err := execute(t, "probe")
	require.NoError(t, err)
	require.Contains(t, out, "STATUS")
	require.NotContains(t, out, "FAIL")

	out, err = execute(t, "probe", "--select", "hashed")
	require.NoError(t, err)
	require.Equal(t, "hashed\n", out)

	_, err = execute(t, "probe", "missing")
	require.ErrorIs(t, err, cli.ErrProbeFailures)
}

func TestRun_Default(t *testing.T) {
	out, err := execute(t, "run", "--compact-threshold", "2")
	require.NoError(t, err)
	require.Contains(t, out, "PASSED")
	require.NotContains(t, out, "SCENARIO")
}

func TestRun_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenarios.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
- name: wrong order
  kind: map
  seed: [[a, 1], [b, 2]]
  steps:
    - {op: keys, want: [b, a]}
`), 0o644))

	out, err := execute(t, "run", "-b", "linear", path)
	require.ErrorIs(t, err, cli.ErrScenarioFailures)
	require.Contains(t, out, "wrong order")
}

func TestRun_BadFlags(t *testing.T) {
	_, err := execute(t, "run", "-b", "missing")
	require.ErrorIs(t, err, collections.ErrBackendNotFound)

	_, err = execute(t, "run", "--compact-threshold", "-1")
	require.ErrorIs(t, err, collections.ErrInvalidOption)

	_, err = execute(t, "run", filepath.Join(t.TempDir(), "none.yaml"))
	require.Error(t, err)
}
