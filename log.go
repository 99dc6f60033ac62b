package sh

import "github.com/op/go-logging"

// LoggerModule is the go-logging module name used for diagnostics.
const LoggerModule = "sh"

var log = logging.MustGetLogger(LoggerModule)

func init() {
	logging.SetLevel(logging.WARNING, LoggerModule)
}
