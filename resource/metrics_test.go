// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package resource

import (
	"context"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMeasures(t *testing.T) {
	var (
		assert   = assert.New(t)
		require  = require.New(t)
		registry = prometheus.NewPedanticRegistry()
	)

	m, err := NewMeasures(registry)
	require.NoError(err)
	require.NotNil(m)
	assert.NotNil(m.Loads)
	assert.NotNil(m.LoadBytes)

	m, err = NewMeasures(registry)
	assert.Nil(m)
	assert.Error(err)
}

func TestLoaderMeasures(t *testing.T) {
	var (
		assert   = assert.New(t)
		require  = require.New(t)
		registry = prometheus.NewPedanticRegistry()
		memFs    = afero.NewMemMapFs()
	)

	m, err := NewMeasures(registry)
	require.NoError(err)
	require.NoError(afero.WriteFile(memFs, "/data/a.bin", []byte("0123456789"), 0644))

	loader := Loader{Fs: memFs, Measures: m}
	for _, location := range []string{"/data/a.bin", "file:///data/a.bin"} {
		_, err = loader.LoadResource(context.Background(), location)
		require.NoError(err)
	}

	_, err = loader.LoadResource(context.Background(), "ftp://host/path")
	require.Error(err)

	_, err = loader.LoadResource(context.Background(), "/data/missing.bin")
	require.Error(err)

	expected := `
# HELP resource_loads_total The total number of resource loads, by scheme and outcome
# TYPE resource_loads_total counter
resource_loads_total{outcome="failure",scheme="file"} 1
resource_loads_total{outcome="failure",scheme="unsupported"} 1
resource_loads_total{outcome="success",scheme="file"} 2
# HELP resource_load_bytes_total The total number of bytes returned by successful resource loads
# TYPE resource_load_bytes_total counter
resource_load_bytes_total{scheme="file"} 20
`

	assert.NoError(testutil.GatherAndCompare(registry, strings.NewReader(expected), LoadCounter, LoadBytesCounter))
}
