package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the process-wide logger. It is usable before Init, with logrus
// defaults.
var Log = logrus.New()

// Init configures Log. level is a logrus level name, falling back to info;
// format "json" selects the JSON formatter, anything else full-timestamp text.
func Init(level, format string) {
	InitTo(os.Stderr, level, format)
}

// InitTo is Init with an explicit output. The terminal host logs to a file so
// log lines do not tear the screen.
func InitTo(out io.Writer, level, format string) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	Log.SetLevel(lvl)

	if strings.ToLower(format) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	Log.SetOutput(out)
}
