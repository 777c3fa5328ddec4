// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package resource

import (
	"github.com/go-kit/kit/log"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
	"github.com/xmidt-org/resourceloader/xhttp"
)

const (
	// ResourceKey is the Viper subkey under which loader configuration is stored.
	// FromViper *does not* assume this key.
	ResourceKey = "resource"
)

// Options is the external configuration of a Loader
type Options struct {
	// Encoding is the default text encoding.  If unset, DefaultEncoding is used.
	Encoding string `json:"encoding"`

	// HTTP configures the client used for remote resources
	HTTP xhttp.ClientOptions `json:"http"`
}

// Sub returns the standard child Viper, using ResourceKey, for this package.
// If passed nil, this function returns nil.
func Sub(v *viper.Viper) *viper.Viper {
	if v != nil {
		return v.Sub(ResourceKey)
	}

	return nil
}

// FromViper produces an Options from a (possibly nil) Viper instance.  Durations may be
// given as strings such as "15s".  An unknown encoding is rejected here rather than on first use.
func FromViper(v *viper.Viper) (*Options, error) {
	o := new(Options)
	if v != nil {
		err := v.Unmarshal(o, viper.DecodeHook(
			mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
		))

		if err != nil {
			return nil, err
		}
	}

	if _, err := Decode(nil, o.Encoding); err != nil {
		return nil, err
	}

	return o, nil
}

// NewLoader creates a Loader from these options.  Logger and Measures may be nil.
// A nil Options produces a Loader with all defaults.
func (o *Options) NewLoader(logger log.Logger, m *Measures) *Loader {
	l := &Loader{
		Logger:   logger,
		Measures: m,
	}

	if o != nil {
		l.Encoding = o.Encoding
		l.HTTPClient = xhttp.NewClient(&o.HTTP)
	}

	return l
}
