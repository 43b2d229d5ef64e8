/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package logger provides the CLI's stderr logger. It can be silenced for
// tests and for commands whose stdout is the payload.
package logger

import (
	"io"
	"log"
	"os"

	"github.com/fatih/color"
)

var (
	output  io.Writer = os.Stderr
	logger  *log.Logger
	verbose bool

	errorPrefix = color.New(color.FgRed, color.Bold).SprintFunc()
	warnPrefix  = color.New(color.FgYellow).SprintFunc()
)

func init() {
	logger = log.New(output, "", 0)
}

// SetOutput configures the logger output destination.
// Use io.Discard to silence all logging.
func SetOutput(w io.Writer) {
	output = w
	logger = log.New(output, "", 0)
}

// SetVerbose enables Debug messages.
func SetVerbose(v bool) {
	verbose = v
}

// Error logs a failure with a red prefix.
func Error(format string, args ...any) {
	logger.Printf(errorPrefix("error:")+" "+format, args...)
}

// Warn logs a warning message.
func Warn(format string, args ...any) {
	logger.Printf(warnPrefix("warning:")+" "+format, args...)
}

// Info logs an informational message.
func Info(format string, args ...any) {
	logger.Printf(format, args...)
}

// Debug logs only when verbose output is enabled.
func Debug(format string, args ...any) {
	if verbose {
		logger.Printf(format, args...)
	}
}
