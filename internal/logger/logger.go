// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package logger creates charmbracelet/log loggers.
package logger

import (
	"io"

	"github.com/charmbracelet/log"
)

// New creates a new logger that writes text to w at the info level.
func New(prefix string, w io.Writer) *log.Logger {
	return NewWithLevel(prefix, w, log.InfoLevel)
}

// NewWithLevel creates a new logger that writes text to w at the given level.
func NewWithLevel(prefix string, w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix:          prefix,
		Level:           level,
		ReportCaller:    false,
		ReportTimestamp: false,
		Formatter:       log.TextFormatter,
	})
}

// Discard returns a logger that drops all messages.
func Discard() *log.Logger {
	return New("", io.Discard)
}
