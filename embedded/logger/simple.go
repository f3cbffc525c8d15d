/*
Copyright 2022 Codenotary Inc. All rights reserved.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package logger

import (
	"io"
	"log"
)

// SimpleLogger writes leveled lines through a stdlib log.Logger.
type SimpleLogger struct {
	Logger   *log.Logger
	LogLevel LogLevel
}

// NewSimpleLogger ...
func NewSimpleLogger(name string, out io.Writer) Logger {
	return NewSimpleLoggerWithLevel(name, out, LogLevelFromEnvironment())
}

// NewSimpleLoggerWithLevel ...
func NewSimpleLoggerWithLevel(name string, out io.Writer, level LogLevel) Logger {
	return &SimpleLogger{
		Logger:   log.New(out, name+" ", log.LstdFlags),
		LogLevel: level,
	}
}

func (l *SimpleLogger) Errorf(f string, v ...interface{}) {
	l.logf(LogError, "ERROR: ", f, v)
}

func (l *SimpleLogger) Warningf(f string, v ...interface{}) {
	l.logf(LogWarn, "WARNING: ", f, v)
}

func (l *SimpleLogger) Infof(f string, v ...interface{}) {
	l.logf(LogInfo, "INFO: ", f, v)
}

func (l *SimpleLogger) Debugf(f string, v ...interface{}) {
	l.logf(LogDebug, "DEBUG: ", f, v)
}

func (l *SimpleLogger) logf(level LogLevel, prefix, f string, v []interface{}) {
	if level < l.LogLevel {
		return
	}
	l.Logger.Printf(prefix+f, v...)
}

// Close the logger ...
func (l *SimpleLogger) Close() error {
	return nil
}
