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
	"fmt"
	"os"

	"github.com/codenotary/dsa/embedded/logger"
	"github.com/codenotary/dsa/embedded/metrics"
)

const (
	DefaultInitialCapacity = 8
	DefaultGrowthFactor    = 2

	// DefaultMaxCapacity of zero means growth is unbounded.
	DefaultMaxCapacity = 0
)

type Options struct {
	logger  logger.Logger
	metrics metrics.ContainerMetrics

	id string

	initialCapacity int
	growthFactor    int
	maxCapacity     int
}

func DefaultOptions() *Options {
	return &Options{
		logger:          defaultLogger(),
		metrics:         metrics.NewNopContainerMetrics(),
		id:              "default",
		initialCapacity: DefaultInitialCapacity,
		growthFactor:    DefaultGrowthFactor,
		maxCapacity:     DefaultMaxCapacity,
	}
}

// defaultLogger honours LOG_LEVEL and LOG_FORMAT. An unknown format falls
// back to text output on stderr.
func defaultLogger() logger.Logger {
	logFormat := logger.LogFormatFromEnvironment()

	l, err := logger.NewLogger(&logger.Options{
		Name:      "container",
		Level:     logger.LogLevelFromEnvironment(),
		Output:    os.Stderr,
		LogFormat: logFormat,
	})
	if err != nil {
		l = logger.NewSimpleLogger("container", os.Stderr)
		l.Warningf("unsupported log format %q, using %q: %v", logFormat, logger.LogFormatText, err)
	}

	return l
}

func (opts *Options) Validate() error {
	if opts == nil {
		return fmt.Errorf("%w: nil options", ErrInvalidOptions)
	}

	if opts.logger == nil {
		return fmt.Errorf("%w: invalid Logger", ErrInvalidOptions)
	}

	if opts.metrics == nil {
		return fmt.Errorf("%w: invalid Metrics", ErrInvalidOptions)
	}

	if opts.initialCapacity < 0 {
		return fmt.Errorf("%w: invalid InitialCapacity", ErrInvalidOptions)
	}

	if opts.growthFactor < 2 {
		return fmt.Errorf("%w: invalid GrowthFactor", ErrInvalidOptions)
	}

	if opts.maxCapacity < 0 {
		return fmt.Errorf("%w: invalid MaxCapacity", ErrInvalidOptions)
	}

	if opts.maxCapacity > 0 && opts.initialCapacity > opts.maxCapacity {
		return fmt.Errorf("%w: InitialCapacity exceeds MaxCapacity", ErrInvalidOptions)
	}

	return nil
}

func (opts *Options) WithID(id string) *Options {
	opts.id = id
	return opts
}

func (opts *Options) WithLogger(logger logger.Logger) *Options {
	opts.logger = logger
	return opts
}

func (opts *Options) WithMetrics(metrics metrics.ContainerMetrics) *Options {
	opts.metrics = metrics
	return opts
}

func (opts *Options) WithInitialCapacity(initialCapacity int) *Options {
	opts.initialCapacity = initialCapacity
	return opts
}

func (opts *Options) WithGrowthFactor(growthFactor int) *Options {
	opts.growthFactor = growthFactor
	return opts
}

// WithMaxCapacity bounds the number of element slots a container may allocate.
// Zero disables the bound.
func (opts *Options) WithMaxCapacity(maxCapacity int) *Options {
	opts.maxCapacity = maxCapacity
	return opts
}

func (opts *Options) ID() string {
	return opts.id
}

func (opts *Options) InitialCapacity() int {
	return opts.initialCapacity
}

func (opts *Options) GrowthFactor() int {
	return opts.growthFactor
}

func (opts *Options) MaxCapacity() int {
	return opts.maxCapacity
}
