package audit

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"

	"tally/internal/receipt"
)

// lineHandler is a slog handler that writes each record as a single JSON
// object per line (JSONL), with time in "2006-01-02 15:04:05" format and
// without the log level field. All attributes land at the top level.
type lineHandler struct {
	opts slog.HandlerOptions
	out  io.Writer
}

// newLineHandler creates a lineHandler writing to out. opts may be nil.
func newLineHandler(out io.Writer, opts *slog.HandlerOptions) *lineHandler {
	if opts == nil {
		opts = &slog.HandlerOptions{}
	}
	return &lineHandler{
		opts: *opts,
		out:  out,
	}
}

// Handle serializes a record to a single JSON line.
func (h *lineHandler) Handle(_ context.Context, r slog.Record) error {
	attrs := make(map[string]interface{})
	attrs["time"] = r.Time.Format("2006-01-02 15:04:05")

	r.Attrs(func(a slog.Attr) bool {
		if a.Key != "" && a.Value.Any() != nil {
			attrs[a.Key] = a.Value.Any()
		}
		return true
	})

	data, err := json.Marshal(attrs)
	if err != nil {
		return err
	}

	_, err = h.out.Write(append(data, '\n'))
	return err
}

// WithAttrs is not supported
func (h *lineHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	panic("WithAttrs is not supported by lineHandler")
}

// WithGroup is not supported
func (h *lineHandler) WithGroup(name string) slog.Handler {
	panic("WithGroup is not supported by lineHandler")
}

// Enabled always returns true; every audit entry is written.
func (h *lineHandler) Enabled(_ context.Context, _ slog.Level) bool {
	return true
}

// JSONLTrail appends each accepted receipt as a JSON line to a file with
// rotation and compression via lumberjack. Suitable for long-running
// deployments where the audit file would otherwise grow without bound.
type JSONLTrail struct {
	lumberjack *lumberjack.Logger
	logger     *slog.Logger
}

// Record writes an audit line for the receipt stored under id. Thread
// safety comes from lumberjack and slog.
func (t *JSONLTrail) Record(id string, r receipt.Receipt, points int64) {
	t.logger.Info("",
		"id", id,
		"retailer", r.Retailer,
		"total", r.Total.String(),
		"items", len(r.Items),
		"points", points,
	)
}

// Close closes the underlying file, completing any pending rotation.
func (t *JSONLTrail) Close() {
	t.lumberjack.Close()
}

// NewJSONLTrail creates an audit trail writing to the given file.
// Parameters:
// - file: path of the audit file
// - maxSize: maximum file size in MB before rotation
// - maxBackups: maximum number of rotated files to keep
func NewJSONLTrail(file string, maxSize, maxBackups int) *JSONLTrail {
	trail := JSONLTrail{}
	trail.lumberjack = &lumberjack.Logger{
		Filename:   file,
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
		Compress:   true,
	}

	handler := newLineHandler(trail.lumberjack, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	trail.logger = slog.New(handler)
	return &trail
}

// Compile-time checks.
var (
	_ Trail = (*JSONLTrail)(nil)
	_ Trail = NopTrail{}
)
