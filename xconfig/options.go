package xconfig

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// DefaultFileFlag is the conventional longhand flag naming the
	// fully-qualified configuration file.
	DefaultFileFlag = "file"

	// DefaultNameFlag is the conventional longhand flag naming the
	// configuration file to search for, without extension.
	DefaultNameFlag = "name"
)

// Option configures a viper instance prior to reading configuration.
type Option func(*viper.Viper) error

// AddConfigPaths appends the given search paths.
func AddConfigPaths(paths ...string) Option {
	return func(v *viper.Viper) error {
		for _, p := range paths {
			v.AddConfigPath(p)
		}

		return nil
	}
}

// SetEnvPrefix sets the prefix for environment variable overrides.
func SetEnvPrefix(prefix string) Option {
	return func(v *viper.Viper) error {
		v.SetEnvPrefix(prefix)
		return nil
	}
}

// AutomaticEnv enables environment variable overrides.
func AutomaticEnv(v *viper.Viper) error {
	v.AutomaticEnv()
	return nil
}

// SetConfigName sets the base name of the configuration file to search for.
func SetConfigName(name string) Option {
	return func(v *viper.Viper) error {
		v.SetConfigName(name)
		return nil
	}
}

// SetConfigFile sets the fully-qualified configuration file path.
func SetConfigFile(file string) Option {
	return func(v *viper.Viper) error {
		v.SetConfigFile(file)
		return nil
	}
}

// BindPFlags binds the given flag set to viper keys.
func BindPFlags(fs *pflag.FlagSet) Option {
	return func(v *viper.Viper) error {
		return v.BindPFlags(fs)
	}
}

// BindConfigFile passes the value of the given flag, when set, to
// viper's SetConfigFile.
func BindConfigFile(fs *pflag.FlagSet, flag string) Option {
	return func(v *viper.Viper) error {
		if f := fs.Lookup(flag); f != nil {
			configFile := f.Value.String()
			if len(configFile) > 0 {
				v.SetConfigFile(configFile)
			}
		}

		return nil
	}
}

// BindConfigName passes the value of the given flag, when set, to
// viper's SetConfigName.
func BindConfigName(fs *pflag.FlagSet, flag string) Option {
	return func(v *viper.Viper) error {
		if f := fs.Lookup(flag); f != nil {
			configName := f.Value.String()
			if len(configName) > 0 {
				v.SetConfigName(configName)
			}
		}

		return nil
	}
}

// StdOptions is the standard bootstrap used by service-check entry points:
// *nix-style search paths, environment overrides prefixed with the
// application name, the application name as the default config name, and
// the supplied flag set bound to viper keys.
func StdOptions(applicationName string, fs *pflag.FlagSet) Option {
	return func(v *viper.Viper) error {
		err := AddConfigPaths(
			fmt.Sprintf("/etc/%s", applicationName),
			fmt.Sprintf("$HOME/.%s", applicationName),
			".",
		)(v)

		if err == nil {
			err = SetEnvPrefix(applicationName)(v)
		}

		if err == nil {
			err = AutomaticEnv(v)
		}

		if err == nil {
			err = SetConfigName(applicationName)(v)
		}

		if err == nil {
			err = BindPFlags(fs)(v)
		}

		return err
	}
}

// New creates a viper instance configured with the given options.
func New(o ...Option) (*viper.Viper, error) {
	return Configure(viper.New(), o...)
}

// Configure applies options to an existing viper instance.  A nil viper
// is passed through untouched.
func Configure(v *viper.Viper, o ...Option) (*viper.Viper, error) {
	if v != nil {
		for _, f := range o {
			if err := f(v); err != nil {
				return nil, err
			}
		}
	}

	return v, nil
}
