package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	FormatConsole = "console"
	FormatJSON    = "json"

	defaultLevel = zerolog.WarnLevel
)

// Logger: логгер, которым пользуются все слои приложения.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(err error, format string, args ...any)
	// With возвращает дочерний логгер с дополнительным полем.
	With(key, value string) Logger
	SetLevel(level string) error
}

type zerologLogger struct {
	zl *zerolog.Logger
}

// NewZerologLogger создаёт логгер поверх zerolog.
// Вывод интерактивной сессии идёт в stdout, поэтому логи по умолчанию пишутся в stderr.
func NewZerologLogger(w io.Writer, format string) Logger {
	if w == nil {
		w = os.Stderr
	}

	zerolog.TimeFieldFormat = time.RFC3339

	out := w
	if format != FormatJSON {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	zl := zerolog.New(out).Level(defaultLevel).With().Timestamp().Logger()
	return &zerologLogger{zl: &zl}
}

// NewNopLogger возвращает логгер, который ничего не пишет. Используется в тестах.
func NewNopLogger() Logger {
	zl := zerolog.Nop()
	return &zerologLogger{zl: &zl}
}

func (l *zerologLogger) Debugf(format string, args ...any) {
	l.zl.Debug().Msg(fmt.Sprintf(format, args...))
}

func (l *zerologLogger) Infof(format string, args ...any) {
	l.zl.Info().Msg(fmt.Sprintf(format, args...))
}

func (l *zerologLogger) Warnf(format string, args ...any) {
	l.zl.Warn().Msg(fmt.Sprintf(format, args...))
}

func (l *zerologLogger) Errorf(err error, format string, args ...any) {
	l.zl.Error().Err(err).Msg(fmt.Sprintf(format, args...))
}

func (l *zerologLogger) With(key, value string) Logger {
	child := l.zl.With().Str(key, value).Logger()
	return &zerologLogger{zl: &child}
}

// SetLevel меняет уровень логирования: debug, info, warn, error, disabled.
func (l *zerologLogger) SetLevel(level string) error {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "" {
		return nil
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("unknown log level %q: %w", level, err)
	}

	*l.zl = l.zl.Level(lvl)
	return nil
}
