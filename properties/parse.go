package properties

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xmidt-org/servicecheck/resource"
)

// ServerPropertiesName is the conventional file name for a managed
// component's property file within its configuration directory.
const ServerPropertiesName = "server.properties"

// maxLineLength bounds a single property line.  bufio's 64KiB default is
// too small for values like long listener or quota lists.
const maxLineLength = 1024 * 1024

// ParseError indicates a line that could not be split into a key and a value.
// Line numbers are 1-based.
type ParseError struct {
	Line int
	Text string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed property at line %d: %q: expected exactly one '='", e.Line, e.Text)
}

// Parse reads key=value assignments from the given source, one per line.
//
// Lines beginning with '#' and blank or whitespace-only lines are skipped.
// A '#' preceded by whitespace does not start a comment.  Every other line
// must contain exactly one '=': the text before it is the key, the text
// after it is the value with any trailing newline characters removed.
// Neither keys nor values are otherwise trimmed.  When the same key occurs
// on multiple lines, the last occurrence wins.
//
// On the first malformed line, Parse stops and returns a nil mapping
// together with a *ParseError describing that line.  Errors from the
// source itself are returned as-is.
func Parse(source io.Reader) (Properties, error) {
	var (
		parsed  = make(Properties)
		scanner = bufio.NewScanner(source)
		line    int
	)

	scanner.Buffer(nil, maxLineLength)
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if strings.HasPrefix(text, "#") || len(strings.TrimSpace(text)) == 0 {
			continue
		}

		if strings.Count(text, "=") != 1 {
			return nil, &ParseError{Line: line, Text: text}
		}

		separator := strings.IndexByte(text, '=')
		parsed[text[:separator]] = strings.TrimRight(text[separator+1:], "\r\n")
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return parsed, nil
}

// ParseString parses property assignments from a string.
func ParseString(source string) (Properties, error) {
	return Parse(strings.NewReader(source))
}

// ParseBytes parses property assignments from a byte slice.
func ParseBytes(source []byte) (Properties, error) {
	return Parse(bytes.NewReader(source))
}

// ReadLoader obtains the raw property text from the given loader and
// parses it.  Errors opening the resource propagate unmodified so that
// callers can inspect the underlying cause, e.g. with os.IsNotExist.
func ReadLoader(loader resource.Loader) (Properties, error) {
	reader, err := loader.Open()
	if err != nil {
		return nil, err
	}

	defer reader.Close()
	return Parse(reader)
}

// ReadServerProperties reads and parses <confDir>/server.properties.
func ReadServerProperties(confDir string) (Properties, error) {
	return ReadLoader(resource.Location(filepath.Join(confDir, ServerPropertiesName)))
}
