// Copyright (C) 2022-2026 Jan Gosmann
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package logging provides structured logging for the aoc CLI.
//
// The package is a thin layer over the standard library slog package. It
// adds a small configuration surface (level, JSON output, quiet mode) and
// an exporter hook so tests can capture log records without scraping
// stderr.
//
// Basic usage:
//
//	logger := logging.Default()
//	logger.Warn("couldn't locate cache directory", "fallback", "./aoc-cache")
//
// Tests capture output with a BufferedExporter:
//
//	exporter := logging.NewBufferedExporter()
//	logger := logging.New(logging.Config{Exporter: exporter})
//	logger.Info("fetching input", "year", 2022, "day", 11)
//	entries := exporter.Entries()
package logging

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"
)

// Config configures Logger behavior. The zero value logs warnings and
// errors to stderr in text format.
type Config struct {
	// Level sets the minimum level; records below it are discarded.
	Level slog.Level

	// JSON switches stderr output to JSON objects instead of text.
	JSON bool

	// Quiet suppresses everything below error level regardless of Level.
	Quiet bool

	// Exporter additionally receives every record, if set.
	Exporter LogExporter
}

// LogEntry is the exporter-facing representation of a log record.
type LogEntry struct {
	Timestamp time.Time
	Level     slog.Level
	Message   string
	Attrs     map[string]any
}

// LogExporter receives log entries in addition to the console output.
// Implementations must be safe for concurrent use.
type LogExporter interface {
	Export(entry LogEntry) error
}

// Logger wraps slog.Logger with the configured destinations.
type Logger struct {
	*slog.Logger
}

// New creates a Logger according to cfg.
func New(cfg Config) *Logger {
	level := cfg.Level
	if cfg.Quiet {
		level = slog.LevelError
	}
	opts := &slog.HandlerOptions{Level: level}

	var console slog.Handler
	if cfg.JSON {
		console = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		console = slog.NewTextHandler(os.Stderr, opts)
	}

	handler := console
	if cfg.Exporter != nil {
		handler = &multiHandler{handlers: []slog.Handler{
			console,
			&exporterHandler{exporter: cfg.Exporter, level: level},
		}}
	}

	return &Logger{Logger: slog.New(handler)}
}

// ParseLevel maps a config-file level name to a slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", name)
	}
}

var (
	defaultLogger   *Logger
	defaultLoggerMu sync.Mutex
)

// Default returns the process-wide logger, creating a warn-level text
// logger on first use.
func Default() *Logger {
	defaultLoggerMu.Lock()
	defer defaultLoggerMu.Unlock()
	if defaultLogger == nil {
		defaultLogger = New(Config{Level: slog.LevelWarn})
	}
	return defaultLogger
}

// SetDefault installs l as the process-wide logger. It also becomes the
// slog default so package-level slog calls flow through the same handler.
func SetDefault(l *Logger) {
	defaultLoggerMu.Lock()
	defaultLogger = l
	defaultLoggerMu.Unlock()
	slog.SetDefault(l.Logger)
}

// multiHandler fans out records to several slog handlers.
type multiHandler struct {
	handlers []slog.Handler
}

func (h *multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h *multiHandler) Handle(ctx context.Context, r slog.Record) error {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, r.Level) {
			if err := handler.Handle(ctx, r); err != nil {
				return err
			}
		}
	}
	return nil
}

func (h *multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	handlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		handlers[i] = handler.WithAttrs(attrs)
	}
	return &multiHandler{handlers: handlers}
}

func (h *multiHandler) WithGroup(name string) slog.Handler {
	handlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		handlers[i] = handler.WithGroup(name)
	}
	return &multiHandler{handlers: handlers}
}

// exporterHandler adapts a LogExporter to the slog.Handler interface.
// Export errors are dropped so a failing exporter cannot disrupt logging.
type exporterHandler struct {
	exporter LogExporter
	level    slog.Level
	attrs    []slog.Attr
}

func (h *exporterHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *exporterHandler) Handle(_ context.Context, r slog.Record) error {
	attrs := make(map[string]any, r.NumAttrs()+len(h.attrs))
	for _, attr := range h.attrs {
		attrs[attr.Key] = attr.Value.Any()
	}
	r.Attrs(func(attr slog.Attr) bool {
		attrs[attr.Key] = attr.Value.Any()
		return true
	})
	_ = h.exporter.Export(LogEntry{
		Timestamp: r.Time,
		Level:     r.Level,
		Message:   r.Message,
		Attrs:     attrs,
	})
	return nil
}

func (h *exporterHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	combined := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	combined = append(combined, h.attrs...)
	combined = append(combined, attrs...)
	return &exporterHandler{exporter: h.exporter, level: h.level, attrs: combined}
}

func (h *exporterHandler) WithGroup(string) slog.Handler {
	return h
}

// NopExporter discards all entries.
type NopExporter struct{}

// Export discards the entry.
func (NopExporter) Export(LogEntry) error { return nil }

var _ LogExporter = NopExporter{}

// BufferedExporter collects entries in memory for test assertions.
type BufferedExporter struct {
	mu      sync.Mutex
	entries []LogEntry
}

// NewBufferedExporter creates an empty BufferedExporter.
func NewBufferedExporter() *BufferedExporter {
	return &BufferedExporter{}
}

// Export appends the entry to the buffer.
func (e *BufferedExporter) Export(entry LogEntry) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.entries = append(e.entries, entry)
	return nil
}

// Entries returns a copy of all collected entries.
func (e *BufferedExporter) Entries() []LogEntry {
	e.mu.Lock()
	defer e.mu.Unlock()
	result := make([]LogEntry, len(e.entries))
	copy(result, e.entries)
	return result
}

var _ LogExporter = (*BufferedExporter)(nil)
