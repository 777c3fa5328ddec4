// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package resource

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xmidt-org/resourceloader/logging"
)

func TestSub(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
		v       = viper.New()
	)

	assert.Nil(Sub(nil))
	assert.Nil(Sub(v))

	v.SetConfigType("json")
	require.NoError(v.ReadConfig(strings.NewReader(`
		{"resource": {
			"encoding": "latin1"
		}}
	`)))

	child := Sub(v)
	require.NotNil(child)
	assert.Equal("latin1", child.GetString("encoding"))
}

func testFromViperNil(t *testing.T) {
	assert := assert.New(t)
	o, err := FromViper(nil)
	assert.NotNil(o)
	assert.NoError(err)
}

func testFromViperUnmarshal(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
		v       = viper.New()
	)

	v.SetConfigType("yaml")
	require.NoError(v.ReadConfig(strings.NewReader(`
encoding: windows-1252
http:
  timeout: 15s
  maxIdleConnsPerHost: 7
  tracing: true
`)))

	o, err := FromViper(v)
	require.NoError(err)
	require.NotNil(o)
	assert.Equal("windows-1252", o.Encoding)
	assert.Equal(15*time.Second, o.HTTP.Timeout)
	assert.Equal(7, o.HTTP.MaxIdleConnsPerHost)
	assert.True(o.HTTP.Tracing)
}

func testFromViperBadEncoding(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
		v       = viper.New()
	)

	v.SetConfigType("json")
	require.NoError(v.ReadConfig(strings.NewReader(`{"encoding": "nosuchencoding"}`)))

	o, err := FromViper(v)
	assert.Nil(o)
	assert.Error(err)
}

func testFromViperBadTimeout(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
		v       = viper.New()
	)

	v.SetConfigType("json")
	require.NoError(v.ReadConfig(strings.NewReader(`{"http": {"timeout": "not a duration"}}`)))

	o, err := FromViper(v)
	assert.Nil(o)
	assert.Error(err)
}

func TestFromViper(t *testing.T) {
	t.Run("Nil", testFromViperNil)
	t.Run("Unmarshal", testFromViperUnmarshal)
	t.Run("BadEncoding", testFromViperBadEncoding)
	t.Run("BadTimeout", testFromViperBadTimeout)
}

func TestOptionsNewLoader(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
		logger  = logging.NewTestLogger(nil, t)
	)

	var nilOptions *Options
	l := nilOptions.NewLoader(logger, nil)
	require.NotNil(l)
	assert.Nil(l.HTTPClient)
	assert.Equal(logger, l.Logger)

	o := &Options{Encoding: "hex"}
	o.HTTP.Timeout = 5 * time.Second
	l = o.NewLoader(nil, nil)
	require.NotNil(l)
	assert.Equal("hex", l.Encoding)

	client, ok := l.HTTPClient.(*http.Client)
	require.True(ok)
	assert.Equal(5*time.Second, client.Timeout)

	text, err := l.LoadTextResource(context.Background(), testFileURL, "")
	require.NoError(err)
	assert.Equal("686572652069732061206c6f76656c79206c6974746c6520746573742066696c65", text)
}
