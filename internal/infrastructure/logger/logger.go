package logger

import (
	"io"
	"log"
	"os"
	"strings"
)

var (
	Info  *log.Logger
	Error *log.Logger
	Debug *log.Logger
	Warn  *log.Logger
)

const logFlags = log.Ldate | log.Ltime | log.LUTC | log.Lshortfile

func init() {
	Info = log.New(os.Stdout, "INFO: ", logFlags)
	Error = log.New(os.Stdout, "ERROR: ", logFlags)
	Debug = log.New(io.Discard, "DEBUG: ", logFlags)
	Warn = log.New(os.Stdout, "WARN: ", logFlags)
}

// Configure enables the debug logger when level is "debug". Any other value
// keeps debug output discarded.
func Configure(level string) {
	if strings.EqualFold(strings.TrimSpace(level), "debug") {
		Debug.SetOutput(os.Stdout)
		return
	}
	Debug.SetOutput(io.Discard)
}

// SetOutput redirects every logger to w. Tests use it to capture log lines.
func SetOutput(w io.Writer) {
	for _, l := range []*log.Logger{Info, Error, Debug, Warn} {
		l.SetOutput(w)
	}
}
