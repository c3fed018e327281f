package resource

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

// Loader represents a source of raw text, potentially outside the
// running process.
type Loader interface {
	// Location identifies where this Loader gets its data from.
	Location() string

	// Open returns a ReadCloser for this resource's data.  The caller
	// is responsible for closing it.
	Open() (io.ReadCloser, error)
}

// ReadAll reads the entire resource identified by the given Loader
// into a single byte slice.
func ReadAll(loader Loader) ([]byte, error) {
	reader, err := loader.Open()
	if err != nil {
		return nil, err
	}

	defer reader.Close()
	return io.ReadAll(reader)
}

// Location is a Loader backed by a string naming the resource.  Values
// beginning with http:// or https:// are fetched with an HTTP GET.
// Anything else is treated as a system file path.
type Location string

func (l Location) Location() string {
	return string(l)
}

func (l Location) Open() (io.ReadCloser, error) {
	value := string(l)
	if strings.HasPrefix(value, "http://") || strings.HasPrefix(value, "https://") {
		response, err := http.Get(value)
		if err != nil {
			return nil, err
		}

		if response.StatusCode != http.StatusOK && response.StatusCode != http.StatusNoContent {
			response.Body.Close()
			return nil, fmt.Errorf("unable to access [%s]: server returned %s", value, response.Status)
		}

		return response.Body, nil
	}

	return os.Open(value)
}

// Data is an in-memory Loader, useful for tests and embedded defaults.
type Data []byte

func (d Data) Location() string {
	return "data"
}

func (d Data) Open() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(d)), nil
}
