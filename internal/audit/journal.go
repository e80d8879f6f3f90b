// Package audit keeps the optional append-only record of mutating calls made
// at the console boundary. It observes outcomes and never changes them.
package audit

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// Journal writes one logfmt line per recorded call: timestamp, operation,
// arguments and result.
type Journal struct {
	log    *log.Logger
	closer io.Closer
}

// New records into w.
func New(w io.Writer) *Journal {
	return &Journal{
		log: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      time.RFC3339,
			Formatter:       log.LogfmtFormatter,
			Level:           log.InfoLevel,
		}),
	}
}

// Open appends to the file at path, creating it if needed. An empty path
// gives a journal that discards everything.
func Open(path string) (*Journal, error) {
	if path == "" {
		return New(io.Discard), nil
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open audit log: %w", err)
	}

	j := New(f)
	j.closer = f
	return j, nil
}

// Record writes op with its key/value arguments and the result.
func (j *Journal) Record(op string, result any, args ...any) {
	kv := make([]any, 0, len(args)+2)
	kv = append(kv, args...)
	kv = append(kv, "result", result)
	j.log.Info(op, kv...)
}

func (j *Journal) Close() error {
	if j.closer == nil {
		return nil
	}
	return j.closer.Close()
}
