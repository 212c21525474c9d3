// Package logger records toolchain invocations as newline delimited JSON so
// a compile session can be reviewed after the fact.
package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"
)

// RunEntry is one recorded invocation.
type RunEntry struct {
	TimestampMicros int64    `json:"timestamp_micros"`
	Argv            []string `json:"argv"`
	Payload         string   `json:"payload"`
	DurationMillis  int64    `json:"duration_millis"`
	ExitCode        int      `json:"exit_code"`
	Error           string   `json:"error,omitempty"`
}

func (e *RunEntry) String() string {
	ts := time.UnixMicro(e.TimestampMicros).UTC().Format(time.RFC3339)
	return fmt.Sprintf("%s exit=%d %dms argv=%q payload=%q",
		ts, e.ExitCode, e.DurationMillis, strings.Join(e.Argv, " "), e.Payload)
}

// RunRecorder is a callback that stores entries in an external datastore.
type RunRecorder func(entry *RunEntry) error

// Logger captures invocation records for the harness.
type Logger struct {
	Record RunRecorder
}

// NewJsonLinesLogRecorder creates a Logger that exports records in newline
// delimited JSON object format.
func NewJsonLinesLogRecorder(w io.Writer) *Logger {
	return &Logger{
		Record: func(entry *RunEntry) error {
			line, err := json.Marshal(entry)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(w, string(line))
			return err
		},
	}
}

// LogRun stamps the entry if needed and records it.
func (l *Logger) LogRun(entry *RunEntry) error {
	if entry.TimestampMicros == 0 {
		entry.TimestampMicros = time.Now().UnixMicro()
	}
	return l.Record(entry)
}

// ReadJSONLinesLog parses a newline delimited JSON run log.
func ReadJSONLinesLog(r io.Reader, handler func(entry *RunEntry)) error {
	decoder := json.NewDecoder(r)
	for decoder.More() {
		var entry RunEntry
		if err := decoder.Decode(&entry); err != nil {
			return err
		}
		handler(&entry)
	}
	return nil
}
