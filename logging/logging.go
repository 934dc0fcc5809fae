package logging

import (
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
)

var logger = newDiscard()

func newDiscard() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.InfoLevel)
	return l
}

// Setup configures logging.
// If filename is empty, logging is disabled.
// If filename is set, logs go to that file and Bubble Tea logs are enabled too.
func Setup(filename, level string) (cleanup func(), err error) {
	lvl := logrus.InfoLevel
	if level != "" {
		lvl, err = logrus.ParseLevel(level)
		if err != nil {
			return nil, err
		}
	}

	if filename == "" {
		logger = newDiscard()
		return func() {}, nil
	}

	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}

	l := logrus.New()
	l.SetOutput(f)
	l.SetLevel(lvl)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, DisableColors: true})
	logger = l

	// Bubble Tea logs to the same file
	tf, err := tea.LogToFile(filename, "tea")
	if err != nil {
		f.Close()
		logger = newDiscard()
		return nil, err
	}

	cleanup = func() {
		tf.Close()
		f.Close()
		logger = newDiscard()
	}
	return cleanup, nil
}

// SetOutput points the logger at w. Tests use it to capture output.
func SetOutput(w io.Writer, level logrus.Level) {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(level)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, DisableColors: true})
	logger = l
}

func IsDebugMode() bool { return logger.IsLevelEnabled(logrus.DebugLevel) }

func WithField(key string, value any) *logrus.Entry { return logger.WithField(key, value) }

func Debugf(format string, args ...any) { logger.Debugf(format, args...) }
func Infof(format string, args ...any)  { logger.Infof(format, args...) }
func Warnf(format string, args ...any)  { logger.Warnf(format, args...) }
func Errorf(format string, args ...any) { logger.Errorf(format, args...) }
