package properties

import (
	"sort"
	"time"

	"github.com/spf13/cast"
)

// Properties is a flat mapping of configuration keys to raw string values,
// as produced by Parse.  Each Properties is built fresh per invocation and
// is never persisted.
type Properties map[string]string

// GetString returns the raw value for the given key, or the empty
// string if the key is absent.
func (p Properties) GetString(key string) string {
	return p[key]
}

// GetInt converts the value for the given key to an int.  Absent keys
// and unconvertible values yield 0.
func (p Properties) GetInt(key string) int {
	return cast.ToInt(p[key])
}

// GetBool converts the value for the given key to a bool.  Absent keys
// and unconvertible values yield false.
func (p Properties) GetBool(key string) bool {
	return cast.ToBool(p[key])
}

// GetDuration converts the value for the given key to a time.Duration.
func (p Properties) GetDuration(key string) time.Duration {
	return cast.ToDuration(p[key])
}

// Keys returns the set of keys in this mapping, sorted lexically.
func (p Properties) Keys() []string {
	keys := make([]string, 0, len(p))
	for key := range p {
		keys = append(keys, key)
	}

	sort.Strings(keys)
	return keys
}
