package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

const defaultLogFile = "termselect.log"

var (
	mu           sync.Mutex
	traceEnabled bool
	logPath      = defaultLogFile
	sink         io.Writer
	ownsSink     bool
)

// Error writes errors to the shared log file.
func Error(err error) {
	if err == nil {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	logger, ok := loggerLocked()
	if !ok {
		return
	}
	logger.Error().Err(err).Send()
}

// SetTraceEnabled toggles emission of structured trace entries.
func SetTraceEnabled(enabled bool) {
	mu.Lock()
	traceEnabled = enabled
	mu.Unlock()
}

// TraceEnabled reports whether trace entries are being written.
func TraceEnabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return traceEnabled
}

// Trace appends a structured JSON entry to the shared log when tracing is enabled.
func Trace(event string, payload map[string]interface{}) {
	mu.Lock()
	defer mu.Unlock()
	if !traceEnabled {
		return
	}
	logger, ok := loggerLocked()
	if !ok {
		return
	}
	logger.Debug().Str("event", event).Fields(payload).Send()
}

// Configure sets the log destination. Empty values fall back to the default
// path. Directories are created automatically when missing.
func Configure(path string) {
	mu.Lock()
	defer mu.Unlock()
	closeSinkLocked()
	if strings.TrimSpace(path) == "" {
		logPath = defaultLogFile
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "unable to create log directory: %v\n", err)
		logPath = defaultLogFile
		return
	}
	logPath = path
}

// SetOutput redirects log entries to w instead of the log file. A nil writer
// restores file output.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	closeSinkLocked()
	sink = w
	ownsSink = false
}

// Close releases the log file, if one is open.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	closeSinkLocked()
}

// loggerLocked lazily opens the log file so nothing is created until the
// first entry is written.
func loggerLocked() (zerolog.Logger, bool) {
	if sink == nil {
		f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "logging failed: %v\n", err)
			return zerolog.Nop(), false
		}
		sink = f
		ownsSink = true
	}
	return zerolog.New(sink).With().Timestamp().Logger(), true
}

func closeSinkLocked() {
	if f, ok := sink.(*os.File); ok && ownsSink {
		_ = f.Close()
	}
	sink = nil
	ownsSink = false
}
