package config

import (
	"fmt"
	"os"
	"path"
	"runtime"

	"github.com/sirupsen/logrus"
)

// SetupLogging configures the global logger from the validated
// configuration.
func SetupLogging(conf Config) error {
	level, err := logrus.ParseLevel(conf.LoggingLevel)
	if err != nil {
		return fmt.Errorf("logging level: %w", err)
	}
	logrus.SetLevel(level)
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&CallerTextFormatter{
		logrus.TextFormatter{ForceColors: true},
	})
	return nil
}

// CallerTextFormatter prefixes every entry with its call site.
type CallerTextFormatter struct {
	logrus.TextFormatter
}

// Format renders a single log entry
func (f *CallerTextFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	_, file, no, ok := runtime.Caller(5)
	if ok {
		entry.Message = fmt.Sprintf("[%-15s:%03d] %s", path.Base(file), no, entry.Message)
	}
	return f.TextFormatter.Format(entry)
}
