// Copyright (c) Commune
// SPDX-License-Identifier: Apache-2.0

// Package logger contains a constructor for the structured logger shared by
// all services.
package logger

import (
	"io"
	"log/slog"
	"os"
)

// New returns a JSON slog logger writing to w at the given textual level.
func New(w io.Writer, levelText string) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(levelText)); err != nil {
		return nil, err
	}

	logHandler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})

	return slog.New(logHandler), nil
}

// NewMock returns a logger that discards all records. Used in tests.
func NewMock() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ExitWithError terminates the process with the given code after all deferred
// cleanups have run. Intended to be deferred first in main.
func ExitWithError(code *int) {
	os.Exit(*code)
}
