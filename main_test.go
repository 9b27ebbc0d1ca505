package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"searchpath/internal/report"
	"searchpath/internal/searchpath"
)

func list(parts ...string) string {
	return strings.Join(parts, string(searchpath.ListSeparator))
}

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	t.Setenv("SEARCHPATH_LOG_LEVEL", "")
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func binDirs(t *testing.T) (string, string) {
	t.Helper()
	root := t.TempDir()
	usrBin := filepath.Join(root, "usr", "bin")
	bin := filepath.Join(root, "bin")
	require.NoError(t, os.MkdirAll(usrBin, 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(bin, "lib"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(bin, "ls"), nil, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(usrBin, "tool"), nil, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(bin, "tool"), nil, 0o755))
	return usrBin, bin
}

func TestLookupFromEnv(t *testing.T) {
	usrBin, bin := binDirs(t)
	t.Setenv("TESTPATH", list(usrBin, bin))

	code, out, _ := runCLI(t, "-e", "TESTPATH", "ls")
	assert.Equal(t, 0, code)
	assert.Equal(t, filepath.Join(bin, "ls")+"\n", out)
}

func TestLookupMissingExitsNonZero(t *testing.T) {
	usrBin, bin := binDirs(t)
	code, out, _ := runCLI(t, "-p", list(usrBin, bin), "ls", "missing")
	assert.Equal(t, 1, code)
	assert.Equal(t, filepath.Join(bin, "ls")+"\nmissing: not found\n", out)
}

func TestLookupAll(t *testing.T) {
	usrBin, bin := binDirs(t)
	code, out, _ := runCLI(t, "-p", list(usrBin, bin), "-a", "tool")
	assert.Equal(t, 0, code)
	assert.Equal(t, filepath.Join(usrBin, "tool")+"\n"+filepath.Join(bin, "tool")+"\n", out)
}

func TestLookupKinds(t *testing.T) {
	usrBin, bin := binDirs(t)
	path := list(usrBin, bin)

	code, out, _ := runCLI(t, "-p", path, "-d", "lib")
	assert.Equal(t, 0, code)
	assert.Equal(t, filepath.Join(bin, "lib")+"\n", out)

	code, _, _ = runCLI(t, "-p", path, "-f", "lib")
	assert.Equal(t, 1, code)

	code, _, errOut := runCLI(t, "-p", path, "-f", "-d", "lib")
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "cannot be combined")
}

func TestNameOnly(t *testing.T) {
	usrBin, bin := binDirs(t)
	root := filepath.Dir(bin)
	code, out, _ := runCLI(t, "-p", root, "-n", "bin/ls")
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "bin/ls: not found")

	code, _, _ = runCLI(t, "-p", root, "bin/ls")
	assert.Equal(t, 0, code)

	code, _, _ = runCLI(t, "-p", list(usrBin, bin), "-n", "ls")
	assert.Equal(t, 0, code)
}

func TestMutationFlags(t *testing.T) {
	usrBin, bin := binDirs(t)

	// --prepend moves bin ahead of usrBin
	code, out, _ := runCLI(t, "-p", list(usrBin, bin), "--prepend", bin, "tool")
	assert.Equal(t, 0, code)
	assert.Equal(t, filepath.Join(bin, "tool")+"\n", out)

	// --remove drops every occurrence
	code, out, _ = runCLI(t, "-p", list(usrBin, bin, usrBin), "--remove", usrBin, "-a", "tool")
	assert.Equal(t, 0, code)
	assert.Equal(t, filepath.Join(bin, "tool")+"\n", out)

	// --dedup keeps the first occurrence
	code, out, _ = runCLI(t, "-p", list(bin, usrBin, bin), "-D", "-a", "tool")
	assert.Equal(t, 0, code)
	assert.Equal(t, filepath.Join(bin, "tool")+"\n"+filepath.Join(usrBin, "tool")+"\n", out)
}

func TestBuildSearchPathOrder(t *testing.T) {
	sp, err := buildSearchPath(options{
		path:    list("/b", "/x", "/b"),
		pathSet: true,
		remove:  []string{"/x"},
		prepend: []string{"/p1", "/p2"},
		append:  []string{"/z"},
		cwd:     true,
		dedup:   true,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"/p1", "/p2", "/b", "/z", "."}, sp.Paths())
}

func TestMissingVariable(t *testing.T) {
	code, _, errOut := runCLI(t, "-e", "UNLIKELY_THIS_VAR_EXISTS", "ls")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "UNLIKELY_THIS_VAR_EXISTS")

	_, err := buildSearchPath(options{envVar: "UNLIKELY_THIS_VAR_EXISTS"})
	assert.ErrorIs(t, err, searchpath.ErrVariableNotFound)

	// Explicit additions make an unset variable an empty starting point.
	sp, err := buildSearchPath(options{envVar: "UNLIKELY_THIS_VAR_EXISTS", append: []string{"/a"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"/a"}, sp.Paths())
}

func TestJSONLookup(t *testing.T) {
	usrBin, bin := binDirs(t)
	code, out, _ := runCLI(t, "-p", list(usrBin, bin), "-j", "-a", "tool", "nope")
	assert.Equal(t, 1, code)

	var results []report.Result
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 2)
	assert.True(t, results[0].Found)
	assert.Len(t, results[0].Matches, 2)
	assert.False(t, results[1].Found)
	assert.Empty(t, results[1].Matches)
}

func TestListMode(t *testing.T) {
	usrBin, bin := binDirs(t)
	missing := filepath.Join(filepath.Dir(bin), "missing")

	code, out, _ := runCLI(t, "-p", list(usrBin, missing, usrBin))
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "(missing)")
	assert.Contains(t, out, "(duplicate of 1)")
	assert.Contains(t, out, "3 entries, 1 missing, 1 duplicates")

	code, out, _ = runCLI(t, "-p", list(usrBin, bin), "-l", "-j")
	assert.Equal(t, 0, code)
	var entries []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	assert.Len(t, entries, 2)
	assert.Equal(t, usrBin, entries[0]["Value"])
}

func TestOutputFile(t *testing.T) {
	usrBin, bin := binDirs(t)
	dest := filepath.Join(t.TempDir(), "out.txt")
	code, out, _ := runCLI(t, "-p", list(usrBin, bin), "-o", dest, "ls")
	assert.Equal(t, 0, code)
	assert.Empty(t, out)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(bin, "ls")+"\n", string(data))
}

func TestVersionAndHelp(t *testing.T) {
	code, out, _ := runCLI(t, "-V")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "searchpath version")

	code, _, errOut := runCLI(t, "-h")
	assert.Equal(t, 0, code)
	assert.Contains(t, errOut, "Usage: searchpath")

	code, _, _ = runCLI(t, "--no-such-flag")
	assert.Equal(t, 2, code)
}

func TestUpdateNotConfigured(t *testing.T) {
	code, _, errOut := runCLI(t, "-u")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "not configured")
}
