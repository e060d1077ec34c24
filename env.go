// Copyright (c) 2012-present The upper.io/db authors. All rights reserved.
//
// Permission is hereby granted, free of charge, to any person obtaining
// a copy of this software and associated documentation files (the
// "Software"), to deal in the Software without restriction, including
// without limitation the rights to use, copy, modify, merge, publish,
// distribute, sublicense, and/or sell copies of the Software, and to
// permit persons to whom the Software is furnished to do so, subject to
// the following conditions:
//
// The above copyright notice and this permission notice shall be
// included in all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
// EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
// MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND
// NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE
// LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION
// OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION
// WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

package returning

import (
	"os"

	"github.com/sirupsen/logrus"
)

// EnvEnableDebug enables debug logging of every executed statement when set
// to a non-empty value.
//
// Example:
//
//	UPPERIO_DB_DEBUG=1 go test
const EnvEnableDebug = `UPPERIO_DB_DEBUG`

// EnvLogLevel sets the log level by name ("trace", "debug", "info",
// "warning", "error").
const EnvLogLevel = `UPPERIO_DB_LOG`

func envEnabled(name string) bool {
	return os.Getenv(name) != ""
}

// levelFromEnv returns the log level configured in the environment.
func levelFromEnv() (LogLevel, bool) {
	if envEnabled(EnvEnableDebug) {
		return LogLevelDebug, true
	}

	name := os.Getenv(EnvLogLevel)
	if name == "" {
		return 0, false
	}

	level, err := logrus.ParseLevel(name)
	if err != nil {
		defaultLogger.Warnf("ignoring %s=%q: %v", EnvLogLevel, name, err)
		return 0, false
	}

	switch level {
	case logrus.TraceLevel:
		return LogLevelTrace, true
	case logrus.DebugLevel:
		return LogLevelDebug, true
	case logrus.InfoLevel:
		return LogLevelInfo, true
	case logrus.WarnLevel:
		return LogLevelWarn, true
	case logrus.ErrorLevel:
		return LogLevelError, true
	case logrus.FatalLevel:
		return LogLevelFatal, true
	}
	return LogLevelPanic, true
}

func init() {
	if level, ok := levelFromEnv(); ok {
		defaultLogger.SetLevel(logrusLevel(level))
		LC().SetLevel(level)
	}
}
