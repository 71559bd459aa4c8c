package logrusconfig

import (
	"io"
	"os"

	prefixed "github.com/BertoldVdb/logrus-prefixed-formatter"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

var loglevel *int

// BindFlags registers --loglevel. Call it before the flags are parsed.
func BindFlags(flags *pflag.FlagSet) {
	loglevel = flags.Int("loglevel", int(logrus.WarnLevel), "The loglevel to use. Valid values are from 0 to 6. Higher values output more information")
}

// GetLogger creates a logger writing to stderr. The --loglevel flag overrides
// level if it was bound.
func GetLogger(level logrus.Level) *logrus.Entry {
	return NewLogger(os.Stderr, level)
}

func NewLogger(out io.Writer, level logrus.Level) *logrus.Entry {
	logrus.ErrorKey = "$error"
	logger := logrus.New()
	logger.SetOutput(out)
	if loglevel == nil {
		logger.SetLevel(level)
	} else {
		logger.SetLevel(logrus.Level(*loglevel))
	}
	customFormatter := new(prefixed.TextFormatter)
	customFormatter.TimestampFormat = "2006-01-02 15:04:05"
	customFormatter.FullTimestamp = true
	customFormatter.PrefixPadding = 20
	customFormatter.SpacePadding = 50
	logger.SetFormatter(customFormatter)
	return logrus.NewEntry(logger)
}

// WithPrefix tags entry with the prefix shown by the formatter.
func WithPrefix(entry *logrus.Entry, prefix string) *logrus.Entry {
	return entry.WithField("prefix", prefix)
}
