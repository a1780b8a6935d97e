package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, string, int) {
	t.Helper()

	var out, errOut bytes.Buffer
	code := newApp().execute(args, &out, &errOut)
	return out.String(), errOut.String(), code
}

func writeSeed(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestList(t *testing.T) {
	out, errOut, code := run(t, "list", "--log-level", "error")
	require.Equal(t, 0, code, errOut)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "Cook")
	assert.Contains(t, lines[1], "Chemist")
	assert.Contains(t, lines[2], "Blacksmith")
	assert.Empty(t, errOut)
}

func TestGet_Found(t *testing.T) {
	out, errOut, code := run(t, "get", "C416A1F5-9BCF-4F6D-B6EB-A74FE88EF6AC", "--log-level", "error", "--cache-ttl", "1m")
	require.Equal(t, 0, code, errOut)
	assert.Equal(t, "c416a1f5-9bcf-4f6d-b6eb-a74fe88ef6ac\tChemist\n", out)
}

func TestGet_NotFound(t *testing.T) {
	_, errOut, code := run(t, "get", "00000000-0000-0000-0000-000000000001", "--log-level", "error")
	assert.Equal(t, 1, code)
	assert.Equal(t, "not found\n", errOut, "message must be printed exactly once")
}

func TestGet_InvalidID(t *testing.T) {
	_, errOut, code := run(t, "get", "cook", "--log-level", "error")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, `Error: invalid id "cook"`)
	assert.Equal(t, 1, strings.Count(errOut, "invalid id"))
}

func TestList_SeedFile(t *testing.T) {
	path := writeSeed(t, "professions:\n  - id: 0f8b4d6e-2f65-4b1a-9a59-1c0d6f4e7a21\n    name: Tailor\n")

	out, errOut, code := run(t, "list", "--seed", path, "--log-level", "error")
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "Tailor")
	assert.NotContains(t, out, "Cook")
}

func TestList_BadSeedEntryIsReported(t *testing.T) {
	path := writeSeed(t, "professions:\n  - id: x\n    name: Tailor\n")

	out, errOut, code := run(t, "list", "--seed", path, "--log-level", "error")
	assert.Equal(t, 1, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "Error: load seed "+path)
	assert.Contains(t, errOut, "invalid_id")
}

func TestList_MissingSeedFileIsReported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.yaml")

	_, errOut, code := run(t, "list", "--seed", path, "--log-level", "error")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "Error: ")
	assert.Contains(t, errOut, "nope.yaml")
}

func TestList_MissingConfigFileIsReported(t *testing.T) {
	_, errOut, code := run(t, "list", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "Error: read config file")
}
