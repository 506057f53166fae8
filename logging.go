package gatewayz

import (
	"fmt"
	"log"
	"log/slog"
	"strings"
)

// Logger is a printf-style logger such as *log.Logger. Use WrapPrintfLogger
// to pass one to WithLogger.
type Logger interface {
	Printf(format string, v ...any)
}

// StructuredLogger is the leveled logger the client writes to. Arguments are
// alternating keys and values, as with log/slog.
//
//	client, _ := gatewayz.New(
//	    gatewayz.WithLogger(gatewayz.NewSlogAdapter(slog.Default())),
//	)
type StructuredLogger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// sensitiveKeys are log keys whose values are always masked.
var sensitiveKeys = map[string]bool{
	"api_key":       true,
	"apikey":        true,
	"credential":    true,
	"token":         true,
	"authorization": true,
}

// redact returns args with the values of sensitive keys masked. The input is
// not modified.
func redact(args []any) []any {
	var out []any
	for i := 0; i+1 < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok || !sensitiveKeys[strings.ToLower(key)] {
			continue
		}
		if out == nil {
			out = append([]any(nil), args...)
		}
		value := fmt.Sprint(args[i+1])
		if strings.EqualFold(key, "authorization") {
			out[i+1] = MaskAuthHeader(value)
		} else {
			out[i+1] = MaskCredential(value)
		}
	}
	if out == nil {
		return args
	}
	return out
}

type printfLogger struct {
	logger Logger
}

// WrapPrintfLogger adapts a printf-style Logger. Each line carries a level
// prefix followed by " | key=value" pairs.
func WrapPrintfLogger(l Logger) StructuredLogger {
	return printfLogger{logger: l}
}

// WrapStdLogger adapts a *log.Logger.
func WrapStdLogger(l *log.Logger) StructuredLogger {
	return printfLogger{logger: l}
}

func (p printfLogger) Debug(msg string, args ...any) { p.print("DEBUG", msg, args) }
func (p printfLogger) Info(msg string, args ...any)  { p.print("INFO", msg, args) }
func (p printfLogger) Warn(msg string, args ...any)  { p.print("WARN", msg, args) }
func (p printfLogger) Error(msg string, args ...any) { p.print("ERROR", msg, args) }

func (p printfLogger) print(level, msg string, args []any) {
	p.logger.Printf("[%s] %s%s", level, msg, formatArgs(redact(args)))
}

func formatArgs(args []any) string {
	if len(args) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(" |")
	for i := 0; i < len(args); i += 2 {
		var value any = "<missing>"
		if i+1 < len(args) {
			value = args[i+1]
		}
		fmt.Fprintf(&b, " %v=%v", args[i], value)
	}
	return b.String()
}

// NopLogger discards everything. It is the default logger.
type NopLogger struct{}

func (NopLogger) Printf(string, ...any) {}
func (NopLogger) Debug(string, ...any)  {}
func (NopLogger) Info(string, ...any)   {}
func (NopLogger) Warn(string, ...any)   {}
func (NopLogger) Error(string, ...any)  {}

var (
	_ Logger           = NopLogger{}
	_ StructuredLogger = NopLogger{}
	_ StructuredLogger = printfLogger{}
)

// MaskCredential hides all but the tail of an API key. A prefix ending in
// '_' or '-' within the first eight characters stays visible.
//
//	MaskCredential("gw_live_1234567890abcdef") => "gw_live_************cdef"
//	MaskCredential("secret-token-value")       => "secret-*******alue"
//	MaskCredential("short")                    => "****hort"
func MaskCredential(s string) string {
	const tail = 4

	switch {
	case s == "":
		return ""
	case len(s) <= tail:
		return "****"
	case len(s) <= 2*tail:
		return "****" + s[len(s)-tail:]
	}

	keep := 0
	for i := 0; i < len(s)-tail && i < 8; i++ {
		if s[i] == '_' || s[i] == '-' {
			keep = i + 1
		}
	}
	return s[:keep] + strings.Repeat("*", len(s)-keep-tail) + s[len(s)-tail:]
}

// MaskAuthHeader masks an Authorization header value, keeping the scheme
// when it is Bearer.
func MaskAuthHeader(header string) string {
	if strings.HasPrefix(header, "Bearer ") && len(header) > len("Bearer ") {
		return "Bearer ********"
	}
	return "********"
}

// SlogAdapter sends client logs to a *slog.Logger, masking sensitive values.
//
//	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
//	client, _ := gatewayz.New(gatewayz.WithLogger(gatewayz.NewSlogAdapter(logger)))
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter wraps logger, or slog.Default() when nil.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogAdapter{logger: logger}
}

func (a *SlogAdapter) Debug(msg string, args ...any) { a.logger.Debug(msg, redact(args)...) }
func (a *SlogAdapter) Info(msg string, args ...any)  { a.logger.Info(msg, redact(args)...) }
func (a *SlogAdapter) Warn(msg string, args ...any)  { a.logger.Warn(msg, redact(args)...) }
func (a *SlogAdapter) Error(msg string, args ...any) { a.logger.Error(msg, redact(args)...) }

// With returns an adapter that adds args to every record.
func (a *SlogAdapter) With(args ...any) *SlogAdapter {
	return &SlogAdapter{logger: a.logger.With(redact(args)...)}
}

// WithGroup returns an adapter that nests attributes under name.
func (a *SlogAdapter) WithGroup(name string) *SlogAdapter {
	return &SlogAdapter{logger: a.logger.WithGroup(name)}
}
