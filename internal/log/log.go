package log

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync/atomic"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/lmittmann/tint"
)

var current atomic.Pointer[slog.Logger] //nolint:gochecknoglobals

func init() {
	current.Store(slog.New(tint.NewHandler(os.Stdout, &tint.Options{Level: slog.LevelInfo, TimeFormat: time.DateTime})))
}

// Setup replaces the process logger. JSON output is meant for files and log
// shippers, the tinted text handler for terminals.
func Setup(w io.Writer, level slog.Leveler, json bool) *slog.Logger {
	var h slog.Handler
	if json {
		h = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	} else {
		h = tint.NewHandler(w, &tint.Options{Level: level, TimeFormat: time.DateTime})
	}
	l := slog.New(h)
	current.Store(l)
	slog.SetDefault(l)
	return l
}

func Logger() *slog.Logger { return current.Load() }

func write(level slog.Level, c *fiber.Ctx, action string, err error, fields map[string]any) {
	attrs := make([]slog.Attr, 0, 8)
	if c != nil {
		attrs = append(attrs,
			slog.String("ip", c.IP()),
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.Int("status", c.Response().StatusCode()),
		)
		if rid, ok := c.Locals("requestid").(string); ok && rid != "" {
			attrs = append(attrs, slog.String("req_id", rid))
		}
	}
	if err != nil {
		attrs = append(attrs, tint.Err(err))
	}
	if len(fields) > 0 {
		group := make([]any, 0, len(fields))
		for k, v := range fields {
			group = append(group, slog.Any(k, v))
		}
		attrs = append(attrs, slog.Group("fields", group...))
	}
	current.Load().LogAttrs(ctxOf(c), level, action, attrs...)
}

func ctxOf(c *fiber.Ctx) context.Context {
	if c == nil {
		return context.Background()
	}
	return c.UserContext()
}

func Info(c *fiber.Ctx, action string, fields map[string]any) { write(slog.LevelInfo, c, action, nil, fields) }

// Audit records a state change a user made (favorites, purchases).
func Audit(c *fiber.Ctx, action string, fields map[string]any) {
	if fields == nil {
		fields = map[string]any{}
	}
	fields["audit"] = true
	write(slog.LevelInfo, c, action, nil, fields)
}

func Security(c *fiber.Ctx, action string, fields map[string]any) {
	write(slog.LevelWarn, c, action, nil, fields)
}

func Error(c *fiber.Ctx, action string, err error, fields map[string]any) {
	write(slog.LevelError, c, action, err, fields)
}
