package logger

import "log"

// A LoggerOptFn is a functional option configuring a FolioLogger when constructing a new one.
type LoggerOptFn func(*FolioLogger)

// WithEnv sets the environment FolioLogger is operating in.
func WithEnv(env string) LoggerOptFn {
	return func(l *FolioLogger) {
		l.env = env
	}
}

// WithLevel sets the log level FolioLogger uses.
// LogLevelUnk leaves the default in place.
func WithLevel(level LogLevel) LoggerOptFn {
	return func(l *FolioLogger) {
		if level != LogLevelUnk {
			l.ll = level
		}
	}
}

// WithLogger sets the log.Logger FolioLogger uses.
func WithLogger(log *log.Logger) LoggerOptFn {
	return func(l *FolioLogger) {
		l.l = log
	}
}

// WithSkip sets the number of frames in the call stack
// to skip in order to log the desired file and line number
// of the calling code.
func WithSkip(skip int) LoggerOptFn {
	return func(l *FolioLogger) {
		l.skip = skip
	}
}
