package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRoot builds a fresh root+medoids command pair per test so flag
// state from one invocation never leaks into the next.
func newTestRoot() *cobra.Command {
	root := &cobra.Command{Use: "parnas"}
	root.PersistentFlags().String("config", "", "path to a TOML configuration file")
	root.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")
	root.AddCommand(newMedoidsCmd())
	return root
}

func writeTempTree(t *testing.T, newick string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tree.nwk")
	require.NoError(t, os.WriteFile(path, []byte(newick), 0o600))
	return path
}

func TestMedoidsCmd_NewickOutput(t *testing.T) {
	treePath := writeTempTree(t, "((A:2,B:3):4,(C:5,(D:7,E:1):7):11);")

	root := newTestRoot()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs([]string{"medoids", "--input-tree", treePath, "--p", "3", "--output-format", "newick"})

	require.NoError(t, root.Execute())

	out := stdout.String()
	assert.Contains(t, out, "*C*", "leaf C is in every tied optimal solution for this tree")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), ";"))
}

func TestMedoidsCmd_JSONOutput(t *testing.T) {
	treePath := writeTempTree(t, "((A:1,B:1):1,(C:1,D:1):1);")

	root := newTestRoot()
	var stdout bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"medoids", "--input-tree", treePath, "--p", "2", "--output-format", "json"})

	require.NoError(t, root.Execute())
	assert.Contains(t, stdout.String(), `"objective":`)
	assert.Contains(t, stdout.String(), `"medoids":[`)
}

func TestMedoidsCmd_ExcludeFlag(t *testing.T) {
	treePath := writeTempTree(t, "((A:1,B:1):1,(C:1,D:1):1);")

	root := newTestRoot()
	var stdout bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{
		"medoids", "--input-tree", treePath, "--p", "1",
		"--output-format", "newick", "--exclude", "^A$",
	})

	require.NoError(t, root.Execute())
	assert.NotContains(t, stdout.String(), "*A*")
}

func TestMedoidsCmd_InvalidInputTreePath(t *testing.T) {
	root := newTestRoot()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"medoids", "--input-tree", "/no/such/file.nwk", "--p", "1"})

	err := root.Execute()
	assert.Error(t, err)
}

func TestVersionCmd(t *testing.T) {
	root := newTestRoot()
	root.AddCommand(newVersionCmd())
	var stdout bytes.Buffer
	root.SetOut(&stdout)
	root.SetArgs([]string{"version"})

	require.NoError(t, root.Execute())
	assert.Contains(t, stdout.String(), appVersion)
}
