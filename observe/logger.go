package observe

// Logger is the leveled logger used by the transports and the CLI. It is
// compatible with log.Log in apex/log.
type Logger interface {
	Debug(msg string)
	Debugf(format string, v ...any)
	Info(msg string)
	Infof(format string, v ...any)
	Warn(msg string)
	Warnf(format string, v ...any)
}

// DiscardLogger discards its input.
var DiscardLogger Logger = logDiscarder{}

type logDiscarder struct{}

func (logDiscarder) Debug(msg string) {}
func (logDiscarder) Debugf(format string, v ...any) {}
func (logDiscarder) Info(msg string) {}
func (logDiscarder) Infof(format string, v ...any) {}
func (logDiscarder) Warn(msg string) {}
func (logDiscarder) Warnf(format string, v ...any) {}

// ValidLoggerOrDefault returns logger, or DiscardLogger when it is nil.
func ValidLoggerOrDefault(logger Logger) Logger {
	if logger != nil {
		return logger
	}
	return DiscardLogger
}
