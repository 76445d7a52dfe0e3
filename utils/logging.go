package utils

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/natefinch/lumberjack"
)

// LogConfig selects where diagnostics go. Without a Logfile they are written
// to stderr only.
type LogConfig struct {
	Logfile string
	MaxSize int // megabytes
	MaxAge  int // days
	Verbose bool
}

type Logger struct {
	*log.Logger
	rotate  *lumberjack.Logger
	verbose bool
}

var logger = NewLogger(os.Stderr, false)

func NewLogger(w io.Writer, verbose bool) *Logger {
	return &Logger{
		Logger:  log.New(w, "", 0),
		verbose: verbose,
	}
}

// SetLogger replaces the package logger. The log file, when given, receives a
// copy of everything written to stderr.
func (c *LogConfig) SetLogger() *Logger {
	if c == nil {
		logger = NewLogger(os.Stderr, false)
		return logger
	}
	if c.Logfile == "" {
		logger = NewLogger(os.Stderr, c.Verbose)
		return logger
	}
	l := &lumberjack.Logger{
		Filename: c.Logfile,
		MaxSize:  c.MaxSize,
		MaxAge:   c.MaxAge,
	}
	logger = NewLogger(io.MultiWriter(os.Stderr, l), c.Verbose)
	logger.rotate = l
	return logger
}

func SetOutput(w io.Writer, verbose bool) *Logger {
	logger = NewLogger(w, verbose)
	return logger
}

func (l *Logger) Infof(format string, args ...interface{}) {
	l.Output(2, fmt.Sprintf(format, args...))
}

func (l *Logger) Debugf(format string, args ...interface{}) {
	if l.verbose {
		l.Output(2, fmt.Sprintf(format, args...))
	}
}

func (l *Logger) Close() error {
	if l.rotate != nil {
		return l.rotate.Close()
	}
	return nil
}

func Infof(format string, args ...interface{})  { logger.Infof(format, args...) }
func Debugf(format string, args ...interface{}) { logger.Debugf(format, args...) }
func CloseLog() error                           { return logger.Close() }
