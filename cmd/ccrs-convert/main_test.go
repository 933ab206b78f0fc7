package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtureRecord = `{
	"admin": {
		"assessmentType": "initial",
		"patientOperation": "USE",
		"patientId": "pat-1",
		"encounterId": "enc-1"
	},
	"fields": {"B2": "2024-01-05", "iA7a": "X"}
}`

func writeFixture(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "record.json")
	require.NoError(t, os.WriteFile(path, []byte(fixtureRecord), 0o644))
	return path
}

func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	outputPath = ""

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestConvertToStdout(t *testing.T) {
	recPath := writeFixture(t, t.TempDir())

	out, err := runRoot(t, recPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.Contains(t, out, `<reference value="Patient/pat-1">`)
	assert.Contains(t, out, `<fullUrl value="urn:uuid:enc-1">`)
}

func TestConvertToFile(t *testing.T) {
	dir := t.TempDir()
	recPath := writeFixture(t, dir)
	outPath := filepath.Join(dir, "bundle.xml")

	stdout, err := runRoot(t, recPath, "-o", outPath)
	require.NoError(t, err)
	assert.Empty(t, stdout)

	doc, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(doc), `<type value="transaction">`)
	assert.Contains(t, string(doc), `<Coverage>`)
}

func TestConvertMissingFile(t *testing.T) {
	_, err := runRoot(t, filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read record")
}

func TestConvertMalformedRecord(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o644))

	_, err := runRoot(t, path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse record")
}
