// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package log

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/apex/log"
)

const (
	FormatText = "text"
	FormatJSON = "json"

	tracePrefix = "TRACE: "
	timeLayout  = "2006-01-02 15:04:05,000"
)

var traceEnabled bool

// Config selects how log entries are rendered and which are kept. It is read
// once at startup and handed to New or Init; nothing below this package reads
// the environment.
type Config struct {
	// Format is "text" or "json".
	Format string
	// Level is a level name such as DEBUG, INFO or WARNING.
	Level string
}

// ConfigFromEnv builds a Config from LOG_FORMAT and LOG_LEVEL using the
// supplied lookup, typically os.Getenv.
func ConfigFromEnv(getenv func(string) string) Config {
	format := strings.ToLower(strings.TrimSpace(getenv("LOG_FORMAT")))
	if format == "" {
		format = FormatText
	}
	level := strings.ToUpper(strings.TrimSpace(getenv("LOG_LEVEL")))
	if level == "" {
		level = "INFO"
	}
	return Config{Format: format, Level: level}
}

// IsJSON reports whether JSON rendering was requested.
func (c Config) IsJSON() bool {
	return c.Format == FormatJSON
}

// ApexLevel maps the configured level name onto an apex level. TRACE maps to
// debug; unknown names fall back to info.
func (c Config) ApexLevel() log.Level {
	switch strings.ToUpper(c.Level) {
	case "TRACE", "DEBUG":
		return log.DebugLevel
	case "INFO":
		return log.InfoLevel
	case "WARN", "WARNING":
		return log.WarnLevel
	case "ERROR":
		return log.ErrorLevel
	case "CRITICAL", "FATAL":
		return log.FatalLevel
	default:
		return log.InfoLevel
	}
}

// New builds a logger writing to w according to cfg.
func New(cfg Config, w io.Writer) *log.Logger {
	if w == nil {
		w = os.Stderr
	}

	var h log.Handler
	if cfg.IsJSON() {
		h = &JSONHandler{w: w}
	} else {
		h = &TextHandler{w: w}
	}

	return &log.Logger{Handler: h, Level: cfg.ApexLevel()}
}

// Init builds the process logger from cfg, writing to stderr, and installs it
// as the apex default so the package helpers below use it too.
func Init(cfg Config) *log.Logger {
	logger := New(cfg, os.Stderr)
	traceEnabled = strings.EqualFold(cfg.Level, "TRACE")
	log.SetHandler(logger.Handler)
	log.SetLevel(logger.Level)
	return logger
}

// levelName returns the upper-case name printed for an entry.
func levelName(e *log.Entry) (string, string) {
	msg := e.Message
	if strings.HasPrefix(msg, tracePrefix) {
		return "TRACE", msg[len(tracePrefix):]
	}
	switch e.Level {
	case log.DebugLevel:
		return "DEBUG", msg
	case log.InfoLevel:
		return "INFO", msg
	case log.WarnLevel:
		return "WARNING", msg
	case log.ErrorLevel:
		return "ERROR", msg
	case log.FatalLevel:
		return "CRITICAL", msg
	}
	return "?", msg
}

// TextHandler writes "LEVEL: message" lines, followed by any fields as
// key=value pairs.
type TextHandler struct {
	mu sync.Mutex
	w  io.Writer
}

// HandleLog writes one text line for e.
func (h *TextHandler) HandleLog(e *log.Entry) error {
	level, msg := levelName(e)

	var b strings.Builder
	b.WriteString(level)
	b.WriteString(": ")
	b.WriteString(msg)
	for _, name := range e.Fields.Names() {
		fmt.Fprintf(&b, " %s=%v", name, e.Fields.Get(name))
	}
	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, b.String())
	return err
}

// JSONHandler writes one JSON object per entry with level, message and
// timestamp keys. Fields are added as extra keys.
type JSONHandler struct {
	mu sync.Mutex
	w  io.Writer
}

// HandleLog writes e as one JSON object followed by a newline.
func (h *JSONHandler) HandleLog(e *log.Entry) error {
	level, msg := levelName(e)

	record := make(map[string]any, len(e.Fields)+3)
	for name, v := range e.Fields {
		if err, ok := v.(error); ok {
			v = err.Error()
		}
		record[name] = v
	}
	record["level"] = level
	record["message"] = msg
	record["timestamp"] = e.Timestamp.Format(timeLayout)

	b, err := json.Marshal(record)
	if err != nil {
		return err
	}
	b = append(b, '\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err = h.w.Write(b)
	return err
}

// Tracef logs at Trace level (below Debug).
func Tracef(format string, args ...interface{}) {
	if traceEnabled {
		log.Debug(tracePrefix + fmt.Sprintf(format, args...))
	}
}

// Debugf logs at Debug level.
func Debugf(format string, args ...interface{}) {
	log.Debugf(format, args...)
}

// Infof logs at Info level.
func Infof(format string, args ...interface{}) {
	log.Infof(format, args...)
}

// Errorf logs at Error level.
func Errorf(format string, args ...interface{}) {
	log.Errorf(format, args...)
}

// Debug logs at Debug level.
func Debug(msg string) {
	log.Debug(msg)
}

// Warnf logs at Warn level.
func Warnf(format string, args ...interface{}) {
	log.Warn(fmt.Sprintf(format, args...))
}

// WithError returns an entry with error.
func WithError(err error) *log.Entry {
	return log.WithError(err)
}
