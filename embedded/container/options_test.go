/*
Copyright 2025 Codenotary Inc. All rights reserved.

SPDX-License-Identifier: BUSL-1.1
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    https://mariadb.com/bsl11/

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package container

import (
	"testing"

	"github.com/codenotary/dsa/embedded/logger"
	"github.com/codenotary/dsa/embedded/metrics"
	"github.com/stretchr/testify/require"
)

func TestInvalidOptions(t *testing.T) {
	for _, d := range []struct {
		n    string
		opts *Options
	}{
		{"nil", nil},
		{"empty", &Options{}},
		{"logger", DefaultOptions().WithLogger(nil)},
		{"metrics", DefaultOptions().WithMetrics(nil)},
		{"InitialCapacity", DefaultOptions().WithInitialCapacity(-1)},
		{"GrowthFactor", DefaultOptions().WithGrowthFactor(1)},
		{"MaxCapacity", DefaultOptions().WithMaxCapacity(-1)},
		{"InitialCapacity>MaxCapacity", DefaultOptions().WithInitialCapacity(10).WithMaxCapacity(5)},
	} {
		t.Run(d.n, func(t *testing.T) {
			require.ErrorIs(t, d.opts.Validate(), ErrInvalidOptions)
			require.ErrorIs(t, d.opts.Validate(), ErrIllegalArguments)
		})
	}
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	require.NoError(t, opts.Validate())

	require.Equal(t, DefaultInitialCapacity, opts.InitialCapacity())
	require.Equal(t, DefaultGrowthFactor, opts.GrowthFactor())
	require.Equal(t, DefaultMaxCapacity, opts.MaxCapacity())
	require.Equal(t, "default", opts.ID())
}

func TestValidOptions(t *testing.T) {
	opts := &Options{}

	l := logger.NewMemoryLogger()
	m := metrics.NewNopContainerMetrics()

	require.Equal(t, "arr", opts.WithID("arr").id)
	require.Equal(t, l, opts.WithLogger(l).logger)
	require.Equal(t, m, opts.WithMetrics(m).metrics)
	require.Equal(t, 0, opts.WithInitialCapacity(0).initialCapacity)
	require.Equal(t, 3, opts.WithGrowthFactor(3).growthFactor)
	require.Equal(t, 64, opts.WithMaxCapacity(64).maxCapacity)

	require.NoError(t, opts.Validate())
}

func TestDefaultOptionsLogger(t *testing.T) {
	for _, d := range []struct {
		n        string
		format   string
		expected logger.Logger
	}{
		{"unset", "", &logger.SimpleLogger{}},
		{"text", "text", &logger.SimpleLogger{}},
		{"memory", "MEMORY", &logger.MemoryLogger{}},
		{"unknown", "json", &logger.SimpleLogger{}},
	} {
		t.Run(d.n, func(t *testing.T) {
			t.Setenv("LOG_FORMAT", d.format)
			t.Setenv("LOG_LEVEL", "error")

			opts := DefaultOptions()
			require.NoError(t, opts.Validate())
			require.IsType(t, d.expected, opts.logger)
		})
	}
}
