package log

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var Default *logrus.Logger

type Logger = logrus.Logger
type Fields = logrus.Fields
type Entry = logrus.Entry

func init() {
	Default = logrus.New()
	Default.SetOutput(os.Stderr)
	Default.SetLevel(logrus.InfoLevel)
}

// SetFile tees log output into a rotating file. An empty filename keeps stderr only.
func SetFile(filename string) {
	if filename == "" {
		Default.SetOutput(os.Stderr)
		return
	}
	output := &lumberjack.Logger{
		Filename:   filename,
		MaxSize:    50, // megabytes
		MaxBackups: 4,
		MaxAge:     7, // days
		Compress:   false,
		LocalTime:  true,
	}
	Default.SetOutput(io.MultiWriter(os.Stderr, output))
}

// SetQuiet sends log output to the rotating file only, for binaries that own the terminal.
func SetQuiet(filename string) {
	if filename == "" {
		Default.SetOutput(io.Discard)
		return
	}
	Default.SetOutput(&lumberjack.Logger{
		Filename:  filename,
		MaxSize:   50,
		LocalTime: true,
	})
}

func SetLevel(lvstr string) {
	lv, err := logrus.ParseLevel(lvstr)
	if err != nil {
		Default.Error(err)
	} else {
		Default.SetLevel(lv)
	}
}

func WithField(key string, value interface{}) *logrus.Entry {
	return Default.WithField(key, value)
}

func WithFields(fields Fields) *logrus.Entry {
	return Default.WithFields(fields)
}

// Debugf logs a message at level Debug on the standard logger.
func Debugf(format string, args ...interface{}) {
	Default.Debugf(format, args...)
}

// Infof logs a message at level Info on the standard logger.
func Infof(format string, args ...interface{}) {
	Default.Infof(format, args...)
}

// Warnf logs a message at level Warn on the standard logger.
func Warnf(format string, args ...interface{}) {
	Default.Warnf(format, args...)
}

// Errorf logs a message at level Error on the standard logger.
func Errorf(format string, args ...interface{}) {
	Default.Errorf(format, args...)
}

// Fatalf logs a message at level Fatal on the standard logger then the process will exit with status set to 1.
func Fatalf(format string, args ...interface{}) {
	Default.Fatalf(format, args...)
}

func Info(args ...interface{}) {
	Default.Info(args...)
}

func Error(args ...interface{}) {
	Default.Error(args...)
}
