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

package logger

import (
	"errors"
	"io"
	"os"
	"strings"
)

const (
	LogFormatText   = "text"
	LogFormatMemory = "memory"
)

var ErrInvalidLoggerType = errors.New("invalid logger type")

// LogLevel ...
type LogLevel int8

// Log levels
const (
	LogDebug LogLevel = iota
	LogInfo
	LogWarn
	LogError
)

func (l LogLevel) String() string {
	switch l {
	case LogDebug:
		return "debug"
	case LogInfo:
		return "info"
	case LogWarn:
		return "warn"
	case LogError:
		return "error"
	}
	return "unknown"
}

// Logger ...
type Logger interface {
	Errorf(string, ...interface{})
	Warningf(string, ...interface{})
	Infof(string, ...interface{})
	Debugf(string, ...interface{})
	Close() error
}

// LogLevelFromEnvironment reads LOG_LEVEL, falling back to info.
func LogLevelFromEnvironment() LogLevel {
	logLevel, _ := os.LookupEnv("LOG_LEVEL")
	switch strings.ToLower(logLevel) {
	case "error":
		return LogError
	case "warn":
		return LogWarn
	case "info":
		return LogInfo
	case "debug":
		return LogDebug
	}
	return LogInfo
}

// LogFormatFromEnvironment reads LOG_FORMAT, falling back to text.
func LogFormatFromEnvironment() string {
	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	if !ok || logFormat == "" {
		return LogFormatText
	}
	return strings.ToLower(logFormat)
}

// Options can be used to configure a new logger.
type Options struct {
	// Name of the subsystem to prefix logs with
	Name string

	// The threshold for the logger. Anything less severe is supressed
	Level LogLevel

	// Where to write the logs to. Defaults to os.Stderr if nil
	Output io.Writer

	// The format in which logs will be produced (text/memory)
	LogFormat string
}

// NewLogger is a factory for selecting a logger based on options
func NewLogger(opts *Options) (Logger, error) {
	if opts == nil {
		return nil, ErrInvalidLoggerType
	}

	switch opts.LogFormat {
	case LogFormatText, "":
		out := opts.Output
		if out == nil {
			out = os.Stderr
		}
		return NewSimpleLoggerWithLevel(opts.Name, out, opts.Level), nil
	case LogFormatMemory:
		return NewMemoryLoggerWithLevel(opts.Level), nil
	default:
		return nil, ErrInvalidLoggerType
	}
}
