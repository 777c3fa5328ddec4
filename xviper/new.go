// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package xviper

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DefaultNameFlag = "name"
	DefaultFileFlag = "file"
)

// Option is a configuration step applied to a Viper instance
type Option func(*viper.Viper) error

func AddConfigPaths(paths ...string) Option {
	return func(v *viper.Viper) error {
		for _, p := range paths {
			v.AddConfigPath(p)
		}

		return nil
	}
}

// SetEnvPrefix sets the prefix for environment variables.  Nested keys are addressed with
// underscores, e.g. RESOURCECAT_RESOURCE_ENCODING for resource.encoding.
func SetEnvPrefix(prefix string) Option {
	return func(v *viper.Viper) error {
		v.SetEnvPrefix(prefix)
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		return nil
	}
}

func AutomaticEnv(v *viper.Viper) error {
	v.AutomaticEnv()
	return nil
}

// BindConfig uses the file flag, if set, as the exact configuration file.  Otherwise the name
// flag, if set, overrides the name of the configuration file that viper searches for.
func BindConfig(fs *pflag.FlagSet, fileFlag, nameFlag string) Option {
	return func(v *viper.Viper) error {
		if f := fs.Lookup(fileFlag); f != nil && len(f.Value.String()) > 0 {
			v.SetConfigFile(f.Value.String())
		} else if f := fs.Lookup(nameFlag); f != nil && len(f.Value.String()) > 0 {
			v.SetConfigName(f.Value.String())
		}

		return nil
	}
}

// StdOptions returns the usual configuration steps for an application: the /etc, $HOME, and
// current directory search paths, a config name equal to the application name, environment
// variables prefixed with the application name, and the flags in fs.
func StdOptions(applicationName string, fs *pflag.FlagSet) []Option {
	return []Option{
		AddConfigPaths(
			fmt.Sprintf("/etc/%s", applicationName),
			fmt.Sprintf("$HOME/.%s", applicationName),
			".",
		),
		func(v *viper.Viper) error {
			v.SetConfigName(applicationName)
			return nil
		},
		SetEnvPrefix(applicationName),
		AutomaticEnv,
		BindConfig(fs, DefaultFileFlag, DefaultNameFlag),
	}
}

func New(o ...Option) (*viper.Viper, error) {
	return Configure(viper.New(), o...)
}

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

// ReadInConfig reads the configuration.  A configuration file that cannot be found by searching is
// not an error, since every setting has a default.  An explicitly named file that is missing is.
func ReadInConfig(v *viper.Viper) error {
	err := v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return nil
	}

	return err
}
