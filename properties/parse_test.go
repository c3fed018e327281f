package properties

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xmidt-org/servicecheck/resource"
)

func TestParseString(t *testing.T) {
	assert := assert.New(t)
	var testData = []struct {
		source   string
		expected Properties
	}{
		{"", Properties{}},
		{"\n\n\n", Properties{}},
		{"   \n\t\n", Properties{}},
		{"# comment\n\nfoo=bar\nbaz=qux\n", Properties{"foo": "bar", "baz": "qux"}},
		{"key=value1\nkey=value2\n", Properties{"key": "value2"}},
		{"#broker.id=0\nbroker.id=1\n", Properties{"broker.id": "1"}},
		{"listeners=PLAINTEXT://:9092", Properties{"listeners": "PLAINTEXT://:9092"}},
		{"spaced key = spaced value \n", Properties{"spaced key ": " spaced value "}},
		{"empty=\n=empty\n", Properties{"empty": "", "": "empty"}},
		{"windows=line\r\nnext=one\r\n", Properties{"windows": "line", "next": "one"}},
	}

	for _, record := range testData {
		t.Run(record.source, func(t *testing.T) {
			actual, err := ParseString(record.source)
			assert.NoError(err)
			assert.Equal(record.expected, actual)
		})
	}
}

func TestParseStringMalformed(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)
	var testData = []struct {
		source       string
		expectedLine int
		expectedText string
	}{
		{"badline\n", 1, "badline"},
		{"foo=bar\nbadline\n", 2, "badline"},
		{"foo=bar\n\n# skip me\nalso bad\n", 4, "also bad"},
		{"zookeeper.connect=localhost:2181=extra\n", 1, "zookeeper.connect=localhost:2181=extra"},
		{" # not a comment\n", 1, " # not a comment"},
	}

	for _, record := range testData {
		t.Run(record.source, func(t *testing.T) {
			actual, err := ParseString(record.source)
			assert.Nil(actual)
			require.Error(err)

			var parseError *ParseError
			require.ErrorAs(err, &parseError)
			assert.Equal(record.expectedLine, parseError.Line)
			assert.Equal(record.expectedText, parseError.Text)
			assert.Contains(parseError.Error(), record.expectedText)
		})
	}
}

func TestParseLongLine(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)

		// well past bufio's default 64KiB token limit
		value = strings.Repeat("PLAINTEXT://broker.example.com:9092,", 4096)
	)

	actual, err := ParseString("advertised.listeners=" + value + "\n")
	require.NoError(err)
	assert.Equal(value, actual["advertised.listeners"])
}

func TestParseBytes(t *testing.T) {
	assert := assert.New(t)

	actual, err := ParseBytes([]byte("num.partitions=8\n"))
	assert.NoError(err)
	assert.Equal(Properties{"num.partitions": "8"}, actual)
}

func TestReadLoader(t *testing.T) {
	t.Run("Data", func(t *testing.T) {
		assert := assert.New(t)

		actual, err := ReadLoader(resource.Data("foo=bar\n"))
		assert.NoError(err)
		assert.Equal(Properties{"foo": "bar"}, actual)
	})

	t.Run("OpenError", func(t *testing.T) {
		assert := assert.New(t)

		actual, err := ReadLoader(resource.Location(filepath.Join(t.TempDir(), "nosuchfile")))
		assert.Nil(actual)
		assert.True(errors.Is(err, os.ErrNotExist))
	})
}

func TestReadServerProperties(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		var (
			assert  = assert.New(t)
			require = require.New(t)

			confDir = t.TempDir()
		)

		require.NoError(os.WriteFile(
			filepath.Join(confDir, ServerPropertiesName),
			[]byte("# kafka broker\nbroker.id=0\nlog.dirs=/var/kafka-logs\n"),
			0o600,
		))

		actual, err := ReadServerProperties(confDir)
		assert.NoError(err)
		assert.Equal(Properties{"broker.id": "0", "log.dirs": "/var/kafka-logs"}, actual)
	})

	t.Run("Missing", func(t *testing.T) {
		assert := assert.New(t)

		actual, err := ReadServerProperties(t.TempDir())
		assert.Nil(actual)
		assert.True(errors.Is(err, os.ErrNotExist))
	})

	t.Run("Malformed", func(t *testing.T) {
		var (
			assert  = assert.New(t)
			require = require.New(t)

			confDir = t.TempDir()
		)

		require.NoError(os.WriteFile(
			filepath.Join(confDir, ServerPropertiesName),
			[]byte("broker.id=0\ngarbage\n"),
			0o600,
		))

		actual, err := ReadServerProperties(confDir)
		assert.Nil(actual)

		var parseError *ParseError
		require.ErrorAs(err, &parseError)
		assert.Equal(2, parseError.Line)
	})
}
