// seehuhn.de/go/chartwheel - astrological chart wheels
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package logging holds the logger shared by all chartwheel packages.
// By default nothing is logged.
package logging

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discard drops all records.  Enabled returns false, so callers skip the
// formatting of arguments.
type discard struct{}

func (discard) Enabled(context.Context, slog.Level) bool  { return false }
func (discard) Handle(context.Context, slog.Record) error { return nil }
func (discard) WithAttrs([]slog.Attr) slog.Handler        { return discard{} }
func (discard) WithGroup(string) slog.Handler             { return discard{} }

var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(slog.New(discard{}))
}

// Set replaces the shared logger.  A nil logger disables logging.
func Set(l *slog.Logger) {
	if l == nil {
		l = slog.New(discard{})
	}
	current.Store(l)
}

// Logger returns the shared logger.
func Logger() *slog.Logger {
	return current.Load()
}
