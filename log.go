package tether

import (
	"os"

	"github.com/charmbracelet/log"
)

// logger is shared by every tracker and updater. Output only happens for
// trackers with debug enabled.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "tether",
	Level:  log.InfoLevel,
})

// SetLogger replaces the logger used for debug output. A nil logger restores
// the default.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.NewWithOptions(os.Stderr, log.Options{Prefix: "tether", Level: log.InfoLevel})
	}
	logger = l
}

// Logger returns the logger used for debug output.
func Logger() *log.Logger {
	return logger
}
