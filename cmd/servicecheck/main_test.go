package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdirTemp keeps stray configuration files in the working directory from
// being picked up through viper's "." search path.
func chdirTemp(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() {
		require.NoError(t, os.Chdir(wd))
	})
}

// captureStdout runs f while redirecting os.Stdout, returning everything
// written to it.
func captureStdout(t *testing.T, f func()) string {
	reader, writer, err := os.Pipe()
	require.NoError(t, err)

	original := os.Stdout
	os.Stdout = writer
	defer func() {
		os.Stdout = original
	}()

	f()
	require.NoError(t, writer.Close())

	output, err := io.ReadAll(reader)
	require.NoError(t, err)
	return string(output)
}

func TestServicecheckMain(t *testing.T) {
	chdirTemp(t)

	var (
		assert  = assert.New(t)
		require = require.New(t)

		confDir = t.TempDir()
	)

	require.NoError(os.WriteFile(
		filepath.Join(confDir, "server.properties"),
		[]byte("# managed by the agent\nbroker.id=0\nlisteners=PLAINTEXT://:9092\n"),
		0o600,
	))

	var testData = []struct {
		description  string
		arguments    []string
		expectedCode int
	}{
		{
			"check only",
			[]string{"--service", "kafka", "--conf-dir", confDir},
			0,
		},
		{
			"check with properties",
			[]string{"--service", "kafka", "--conf-dir", confDir, "--print-properties"},
			0,
		},
		{
			"missing properties file",
			[]string{"--service", "kafka", "--conf-dir", t.TempDir(), "--print-properties"},
			1,
		},
		{
			"unparseable command line",
			[]string{"--no-such-flag"},
			1,
		},
		{
			"missing configuration file",
			[]string{"--file", filepath.Join(t.TempDir(), "nosuchconfig.json")},
			1,
		},
	}

	for _, record := range testData {
		t.Run(record.description, func(t *testing.T) {
			assert.Equal(record.expectedCode, servicecheckMain(record.arguments))
		})
	}
}

func TestServicecheckMainPrintsProperties(t *testing.T) {
	chdirTemp(t)

	var (
		assert  = assert.New(t)
		require = require.New(t)

		confDir = t.TempDir()
	)

	require.NoError(os.WriteFile(
		filepath.Join(confDir, "server.properties"),
		[]byte("broker.id=0\nlisteners=PLAINTEXT://:9092\n"),
		0o600,
	))

	// no log level configured: the listing must still reach stdout
	output := captureStdout(t, func() {
		assert.Equal(0, servicecheckMain([]string{"--conf-dir", confDir, "--print-properties"}))
	})

	assert.Contains(output, "broker.id")
	assert.Contains(output, "PLAINTEXT://:9092")
}

func TestServicecheckMainMalformedProperties(t *testing.T) {
	chdirTemp(t)

	var (
		assert  = assert.New(t)
		require = require.New(t)

		confDir = t.TempDir()
	)

	require.NoError(os.WriteFile(
		filepath.Join(confDir, "server.properties"),
		[]byte("broker.id=0\nthis line is not an assignment\n"),
		0o600,
	))

	assert.Equal(1, servicecheckMain([]string{"--conf-dir", confDir, "--print-properties"}))
}
