package xconfig

import (
	"errors"

	"github.com/spf13/viper"
	"github.com/xmidt-org/servicecheck/logging"
)

var (
	// ErrServiceRequired indicates a Config with no managed service name.
	ErrServiceRequired = errors.New("a service name is required")

	// ErrConfDirRequired indicates a Config with no configuration directory.
	ErrConfDirRequired = errors.New("a configuration directory is required")
)

// Config carries everything a service-check entry point needs.  It is
// built once, at startup, and passed explicitly to collaborators.
type Config struct {
	// Service is the name of the managed component being checked,
	// e.g. "kafka".
	Service string `json:"service" mapstructure:"service"`

	// ConfDir is the directory holding the managed component's
	// configuration, including its server.properties file.
	ConfDir string `json:"confDir" mapstructure:"conf-dir"`

	// Listen is an optional address, e.g. ":6060".  When set, the entry
	// point serves check results over HTTP instead of running once and
	// exiting.
	Listen string `json:"listen" mapstructure:"listen"`

	// Log configures the go-kit logger for the entry point.
	Log logging.Options `json:"log" mapstructure:"log"`
}

// Validate checks that the required Config fields are populated.
func (c *Config) Validate() error {
	if len(c.Service) == 0 {
		return ErrServiceRequired
	}

	if len(c.ConfDir) == 0 {
		return ErrConfDirRequired
	}

	return nil
}

// Unmarshaler is the subset of Viper behavior dealing with unmarshalling
// into arbitrary struct targets.  *viper.Viper satisfies this interface.
type Unmarshaler interface {
	Unmarshal(interface{}, ...viper.DecoderConfigOption) error
}

// Unmarshal produces a Config from the given source, typically a viper
// instance built with New.
func Unmarshal(u Unmarshaler) (*Config, error) {
	c := new(Config)
	if err := u.Unmarshal(c); err != nil {
		return nil, err
	}

	return c, nil
}
