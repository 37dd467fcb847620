// Package logging builds the logr.Logger shared by the engine, the recorder
// and the CLI, and forwards log lines to an optional observer hook.
package logging

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
)

var nameStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)

// Hook receives every line a forwarded logger emits, after level filtering.
type Hook func(level, line string)

// New returns a logger that writes one line per entry to w. Entries above
// verbosity are dropped.
func New(w io.Writer, verbosity int) logr.Logger {
	var mu sync.Mutex
	return funcr.New(func(prefix, args string) {
		mu.Lock()
		defer mu.Unlock()
		if prefix != "" {
			fmt.Fprintf(w, "%s %s\n", nameStyle.Render(prefix), args)
			return
		}
		fmt.Fprintln(w, args)
	}, funcr.Options{
		Verbosity:       verbosity,
		LogTimestamp:    true,
		TimestampFormat: "15:04:05.000",
	})
}

func Discard() logr.Logger { return logr.Discard() }

// Forward wraps base so every entry it emits is also passed to hook.
func Forward(base logr.Logger, hook Hook) logr.Logger {
	if hook == nil {
		return base
	}
	sink := base.GetSink()
	if sink == nil {
		sink = nopSink{}
	}
	return logr.New(&forwardSink{LogSink: sink, hook: hook})
}

// WriterHook returns a hook that appends "level line" records to w.
func WriterHook(w io.Writer) Hook {
	var mu sync.Mutex
	return func(level, line string) {
		mu.Lock()
		defer mu.Unlock()
		fmt.Fprintf(w, "%s %s\n", level, line)
	}
}

// LevelName maps a logr verbosity to the name handed to hooks.
func LevelName(level int) string {
	switch {
	case level <= 0:
		return "info"
	case level == 1:
		return "debug"
	default:
		return "trace"
	}
}

type forwardSink struct {
	logr.LogSink
	hook   Hook
	name   string
	values []any
}

func (s *forwardSink) Info(level int, msg string, kv ...any) {
	s.LogSink.Info(level, msg, kv...)
	s.hook(LevelName(level), s.format(msg, nil, kv))
}

func (s *forwardSink) Error(err error, msg string, kv ...any) {
	s.LogSink.Error(err, msg, kv...)
	s.hook("error", s.format(msg, err, kv))
}

func (s *forwardSink) WithValues(kv ...any) logr.LogSink {
	values := make([]any, 0, len(s.values)+len(kv))
	values = append(values, s.values...)
	values = append(values, kv...)
	return &forwardSink{LogSink: s.LogSink.WithValues(kv...), hook: s.hook, name: s.name, values: values}
}

func (s *forwardSink) WithName(name string) logr.LogSink {
	full := name
	if s.name != "" {
		full = s.name + "/" + name
	}
	return &forwardSink{LogSink: s.LogSink.WithName(name), hook: s.hook, name: full, values: s.values}
}

func (s *forwardSink) format(msg string, err error, kv []any) string {
	var b strings.Builder
	if s.name != "" {
		b.WriteString(s.name)
		b.WriteString(": ")
	}
	b.WriteString(msg)
	writePairs(&b, s.values)
	writePairs(&b, kv)
	if err != nil {
		fmt.Fprintf(&b, " error=%q", err.Error())
	}
	return b.String()
}

func writePairs(b *strings.Builder, kv []any) {
	for i := 0; i+1 < len(kv); i += 2 {
		fmt.Fprintf(b, " %v=%v", kv[i], kv[i+1])
	}
}

type nopSink struct{}

func (nopSink) Init(logr.RuntimeInfo)            {}
func (nopSink) Enabled(int) bool                 { return false }
func (nopSink) Info(int, string, ...any)         {}
func (nopSink) Error(error, string, ...any)      {}
func (n nopSink) WithValues(...any) logr.LogSink { return n }
func (n nopSink) WithName(string) logr.LogSink   { return n }
