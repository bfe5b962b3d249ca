// Foodiug - Restaurant Directory API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/foodiug

package badgerstore

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/tomtom215/foodiug/internal/logging"
)

// badgerLogger routes Badger's printf-style logging into zerolog.
// Badger is chatty at info level, so info is demoted to debug.
type badgerLogger struct {
	log zerolog.Logger
}

func newLogger() *badgerLogger {
	return &badgerLogger{log: logging.WithComponent("badger")}
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.log.Error().Msg(trim(format, args))
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.log.Warn().Msg(trim(format, args))
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.log.Debug().Msg(trim(format, args))
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.log.Trace().Msg(trim(format, args))
}

func trim(format string, args []interface{}) string {
	return strings.TrimRight(fmt.Sprintf(format, args...), "\n")
}
