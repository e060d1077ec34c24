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
	"context"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// LogLevel represents a verbosity level for logs
type LogLevel int8

// Log levels
const (
	LogLevelTrace LogLevel = -1

	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
	LogLevelFatal
	LogLevelPanic
)

var logLevels = map[LogLevel]string{
	LogLevelTrace: "TRACE",
	LogLevelDebug: "DEBUG",
	LogLevelInfo:  "INFO",
	LogLevelWarn:  "WARNING",
	LogLevelError: "ERROR",
	LogLevelFatal: "FATAL",
	LogLevelPanic: "PANIC",
}

func (ll LogLevel) String() string {
	return logLevels[ll]
}

const (
	defaultLogLevel LogLevel = LogLevelWarn
)

var defaultLogger = logrus.New()

// Logger represents a logging interface that is compatible with the standard
// "log" and with many other logging libraries, like logrus.
type Logger interface {
	Fatal(v ...interface{})
	Fatalf(format string, v ...interface{})

	Print(v ...interface{})
	Printf(format string, v ...interface{})

	Panic(v ...interface{})
	Panicf(format string, v ...interface{})
}

// LoggingCollector provides different methods for collecting and classifying
// log messages.
type LoggingCollector interface {
	Enabled(LogLevel) bool

	Level() LogLevel

	SetLogger(Logger)
	SetLevel(LogLevel)

	Trace(v ...interface{})
	Tracef(format string, v ...interface{})

	Debug(v ...interface{})
	Debugf(format string, v ...interface{})

	Info(v ...interface{})
	Infof(format string, v ...interface{})

	Warn(v ...interface{})
	Warnf(format string, v ...interface{})

	Error(v ...interface{})
	Errorf(format string, v ...interface{})

	Fatal(v ...interface{})
	Fatalf(format string, v ...interface{})

	Panic(v ...interface{})
	Panicf(format string, v ...interface{})
}

type loggingCollector struct {
	mu     sync.RWMutex
	level  LogLevel
	logger Logger
}

func (c *loggingCollector) Enabled(level LogLevel) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return level >= c.level
}

func (c *loggingCollector) Level() LogLevel {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.level
}

func (c *loggingCollector) SetLevel(level LogLevel) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.level = level
}

// SetLogger sets the logger that receives the messages, nil restores the
// default logger.
func (c *loggingCollector) SetLogger(logger Logger) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if logger == nil {
		logger = defaultLogger
	}
	c.logger = logger
}

func (c *loggingCollector) getLogger() Logger {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.logger
}

// leveledLogger is satisfied by *logrus.Logger and *logrus.Entry.
type leveledLogger interface {
	Log(level logrus.Level, args ...interface{})
	Logf(level logrus.Level, format string, args ...interface{})
}

func (c *loggingCollector) logf(level LogLevel, f string, v ...interface{}) {
	if !c.Enabled(level) {
		return
	}
	logger := c.getLogger()

	switch level {
	case LogLevelFatal:
		logger.Fatalf(f, v...)
		return
	case LogLevelPanic:
		logger.Panicf(f, v...)
		return
	}

	if ll, ok := logger.(leveledLogger); ok {
		ll.Logf(logrusLevel(level), f, v...)
		return
	}
	logger.Printf("%s: %s", level, fmt.Sprintf(f, v...))
}

func (c *loggingCollector) log(level LogLevel, v ...interface{}) {
	if !c.Enabled(level) {
		return
	}
	logger := c.getLogger()

	switch level {
	case LogLevelFatal:
		logger.Fatal(v...)
		return
	case LogLevelPanic:
		logger.Panic(v...)
		return
	}

	if ll, ok := logger.(leveledLogger); ok {
		ll.Log(logrusLevel(level), v...)
		return
	}
	logger.Print(append([]interface{}{level.String() + ": "}, v...)...)
}

func (c *loggingCollector) Debugf(format string, v ...interface{}) {
	c.logf(LogLevelDebug, format, v...)
}

func (c *loggingCollector) Debug(v ...interface{}) {
	c.log(LogLevelDebug, v...)
}

func (c *loggingCollector) Tracef(format string, v ...interface{}) {
	c.logf(LogLevelTrace, format, v...)
}

func (c *loggingCollector) Trace(v ...interface{}) {
	c.log(LogLevelTrace, v...)
}

func (c *loggingCollector) Infof(format string, v ...interface{}) {
	c.logf(LogLevelInfo, format, v...)
}

func (c *loggingCollector) Info(v ...interface{}) {
	c.log(LogLevelInfo, v...)
}

func (c *loggingCollector) Warnf(format string, v ...interface{}) {
	c.logf(LogLevelWarn, format, v...)
}

func (c *loggingCollector) Warn(v ...interface{}) {
	c.log(LogLevelWarn, v...)
}

func (c *loggingCollector) Errorf(format string, v ...interface{}) {
	c.logf(LogLevelError, format, v...)
}

func (c *loggingCollector) Error(v ...interface{}) {
	c.log(LogLevelError, v...)
}

func (c *loggingCollector) Fatalf(format string, v ...interface{}) {
	c.logf(LogLevelFatal, format, v...)
}

func (c *loggingCollector) Fatal(v ...interface{}) {
	c.log(LogLevelFatal, v...)
}

func (c *loggingCollector) Panicf(format string, v ...interface{}) {
	c.logf(LogLevelPanic, format, v...)
}

func (c *loggingCollector) Panic(v ...interface{}) {
	c.log(LogLevelPanic, v...)
}

func logrusLevel(level LogLevel) logrus.Level {
	switch level {
	case LogLevelTrace:
		return logrus.TraceLevel
	case LogLevelDebug:
		return logrus.DebugLevel
	case LogLevelInfo:
		return logrus.InfoLevel
	case LogLevelWarn:
		return logrus.WarnLevel
	case LogLevelError:
		return logrus.ErrorLevel
	case LogLevelFatal:
		return logrus.FatalLevel
	}
	return logrus.PanicLevel
}

var defaultLoggingCollector LoggingCollector = &loggingCollector{
	level:  defaultLogLevel,
	logger: defaultLogger,
}

// LC returns the logging collector.
func LC() LoggingCollector {
	return defaultLoggingCollector
}

// SlowQueryThreshold is the duration after which a query is reported as slow.
var SlowQueryThreshold = time.Millisecond * 200

// QueryStatus represents the status of a query after being executed.
type QueryStatus struct {
	Backend string

	RowsAffected *int64

	Query string
	Args  []interface{}

	Err error

	Start time.Time
	End   time.Time

	Context context.Context
}

var reInvisibleChars = regexp.MustCompile(`[\s\r\n\t]+`)

// String returns a formatted log message.
func (q *QueryStatus) String() string {
	lines := make([]string, 0, 8)

	if q.Backend != "" {
		lines = append(lines, fmt.Sprintf("Backend: %s", q.Backend))
	}

	if q.RowsAffected != nil {
		lines = append(lines, fmt.Sprintf("Rows affected: %d", *q.RowsAffected))
	}

	if query := strings.TrimSpace(reInvisibleChars.ReplaceAllString(q.Query, " ")); query != "" {
		lines = append(lines, fmt.Sprintf("Q: %s", query))
	}

	if len(q.Args) > 0 {
		lines = append(lines, fmt.Sprintf("A: %#v", q.Args))
	}

	if q.Err != nil {
		lines = append(lines, fmt.Sprintf("E: %q", q.Err))
	}

	lines = append(lines, fmt.Sprintf("T: %0.5fs", float64(q.End.UnixNano()-q.Start.UnixNano())/float64(1e9)))

	return strings.Join(lines, "\n")
}

// logQueryStatus reports the query to the logging collector, with a level
// that depends on its outcome.
func logQueryStatus(q *QueryStatus) {
	if q.End.IsZero() {
		q.End = time.Now()
	}

	switch {
	case q.Err != nil:
		LC().Errorf("\n\t%s\n", strings.ReplaceAll(q.String(), "\n", "\n\t"))
	case q.End.Sub(q.Start) >= SlowQueryThreshold:
		LC().Warnf("%v\n\t%s\n", ErrWarnSlowQuery, strings.ReplaceAll(q.String(), "\n", "\n\t"))
	default:
		LC().Debugf("\n\t%s\n", strings.ReplaceAll(q.String(), "\n", "\n\t"))
	}
}
