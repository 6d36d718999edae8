package common

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/lni/dragonboat/v4/logger"
)

// Loggers lists the packages whose level InitLoggers sets
var Loggers = []string{"ditto", "cover", "mdl", "search", "index", "cli"}

// levels maps the accepted level names, lower case, to dragonboat levels
var levels = map[string]logger.LogLevel{
	"debug":   logger.DEBUG,
	"info":    logger.INFO,
	"warn":    logger.WARNING,
	"warning": logger.WARNING,
	"error":   logger.ERROR,
}

// --------------------------------------------------------------------------
// Line logger
// --------------------------------------------------------------------------

// lineLogger writes one "LEVEL | package | message" line per call
type lineLogger struct {
	name  string
	level logger.LogLevel
	out   *log.Logger
}

func newLogger(pkgName string, w io.Writer, flags int) *lineLogger {
	return &lineLogger{
		name:  pkgName,
		level: logger.INFO,
		out:   log.New(w, "", flags),
	}
}

// CreateLogger is the dragonboat logger factory. Lines go to stderr so that
// stdout stays free for exported results.
func CreateLogger(pkgName string) logger.ILogger {
	return newLogger(pkgName, os.Stderr, log.Ldate|log.Ltime)
}

func (l *lineLogger) SetLevel(level logger.LogLevel) {
	l.level = level
}

func (l *lineLogger) Debugf(format string, args ...interface{}) {
	l.write(logger.DEBUG, "DEBUG", format, args)
}

func (l *lineLogger) Infof(format string, args ...interface{}) {
	l.write(logger.INFO, "INFO", format, args)
}

func (l *lineLogger) Warningf(format string, args ...interface{}) {
	l.write(logger.WARNING, "WARN", format, args)
}

func (l *lineLogger) Errorf(format string, args ...interface{}) {
	l.write(logger.ERROR, "ERROR", format, args)
}

// Panicf logs at error level regardless of the configured level, then panics
func (l *lineLogger) Panicf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	l.out.Printf("%-5s | %-8s | %s", "PANIC", l.name, msg)
	panic(msg)
}

// write emits the line if the logger is at least as verbose as level
func (l *lineLogger) write(level logger.LogLevel, tag string, format string, args []interface{}) {
	if l.level < level {
		return
	}
	l.out.Printf("%-5s | %-8s | %s", tag, l.name, fmt.Sprintf(format, args...))
}

// --------------------------------------------------------------------------
// Levels
// --------------------------------------------------------------------------

// ParseLogLevel converts a level name (case-insensitive) to logger.LogLevel
func ParseLogLevel(level string) (logger.LogLevel, error) {
	lvl, ok := levels[strings.ToLower(level)]
	if !ok {
		return 0, fmt.Errorf("%w: log level %q must be one of debug, info, warn, error", ErrInvalidConfig, level)
	}
	return lvl, nil
}

// InitLoggers installs CreateLogger as the dragonboat factory and sets level on every engine logger
func InitLoggers(level string) error {
	lvl, err := ParseLogLevel(level)
	if err != nil {
		return err
	}

	logger.SetLoggerFactory(CreateLogger)
	for _, name := range Loggers {
		logger.GetLogger(name).SetLevel(lvl)
	}
	return nil
}
