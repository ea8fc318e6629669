package logging

import (
	"io"
	"os"

	log "github.com/sirupsen/logrus"
)

// Setup configures the shared logrus logger. Diagnostics go to stderr so they
// never mix with the demo output on stdout. Unknown levels fall back to warn.
func Setup(level string, out io.Writer) {
	if out == nil {
		out = os.Stderr
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.WarnLevel
	}
	log.SetOutput(out)
	log.SetLevel(lvl)
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "15:04:05",
	})
}
